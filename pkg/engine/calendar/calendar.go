// Package calendar provides turn-based game time.
// One turn is one second of game time.
package calendar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Duration is a span of game time measured in turns.
type Duration int64

// Common durations
const (
	Turn   Duration = 1
	Second Duration = 1
	Minute          = 60 * Second
	Hour            = 60 * Minute
	Day             = 24 * Hour
)

// Point is an absolute moment in game time, in turns since the epoch.
type Point int64

// Add returns the point d turns later.
func (p Point) Add(d Duration) Point {
	return p + Point(d)
}

// Sub returns the duration between two points.
func (p Point) Sub(q Point) Duration {
	return Duration(p - q)
}

// Turns returns the duration as a plain turn count
func (d Duration) Turns() int {
	return int(d)
}

var units = map[string]Duration{
	"t":       Turn,
	"turn":    Turn,
	"turns":   Turn,
	"s":       Second,
	"sec":     Second,
	"second":  Second,
	"seconds": Second,
	"m":       Minute,
	"min":     Minute,
	"minute":  Minute,
	"minutes": Minute,
	"h":       Hour,
	"hour":    Hour,
	"hours":   Hour,
	"d":       Day,
	"day":     Day,
	"days":    Day,
}

// ParseDuration parses strings like "30 minutes", "1 h 30 m" or "90s".
// A bare number is a turn count.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Duration(n), nil
	}

	var total Duration
	rest := s
	for rest != "" {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		i := 0
		if i < len(rest) && (rest[i] == '-' || rest[i] == '+') {
			i++
		}
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 || (i == 1 && (rest[0] == '-' || rest[0] == '+')) {
			return 0, fmt.Errorf("duration %q: expected number at %q", s, rest)
		}
		n, err := strconv.ParseInt(rest[:i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("duration %q: %w", s, err)
		}
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
		j := 0
		for j < len(rest) && unicode.IsLetter(rune(rest[j])) {
			j++
		}
		unit, ok := units[strings.ToLower(rest[:j])]
		if !ok {
			return 0, fmt.Errorf("duration %q: unknown unit %q", s, rest[:j])
		}
		total += Duration(n) * unit
		rest = rest[j:]
	}
	return total, nil
}

// String renders the duration in the largest whole units
func (d Duration) String() string {
	switch {
	case d == 0:
		return "0 turns"
	case d%Day == 0:
		return fmt.Sprintf("%d days", d/Day)
	case d%Hour == 0:
		return fmt.Sprintf("%d hours", d/Hour)
	case d%Minute == 0:
		return fmt.Sprintf("%d minutes", d/Minute)
	default:
		return fmt.Sprintf("%d turns", int64(d))
	}
}

// UnmarshalJSON accepts either a turn count or a duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*d = Duration(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a number or string: %w", err)
	}
	parsed, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
