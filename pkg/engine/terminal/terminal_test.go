package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSize_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("IsTerminal(file) = true, want false")
	}
	if w, h := Size(f); w != FallbackWidth || h != FallbackHeight {
		t.Errorf("Size(file) = %d, %d, want %d, %d", w, h, FallbackWidth, FallbackHeight)
	}
}
