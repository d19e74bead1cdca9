// Package debug reports non-fatal diagnostics about bad data or misuse.
// Messages go to the standard logger and can be captured in tests.
package debug

import (
	"fmt"
	"log"
)

var (
	captured  []string
	capturing bool
)

// Msg reports a diagnostic. Execution always continues.
func Msg(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if capturing {
		captured = append(captured, msg)
		return
	}
	log.Printf("DEBUG: %s", msg)
}

// Capture starts recording diagnostics instead of logging them.
// The returned function stops recording and returns everything recorded.
func Capture() func() []string {
	capturing = true
	captured = nil
	return func() []string {
		capturing = false
		out := captured
		captured = nil
		return out
	}
}
