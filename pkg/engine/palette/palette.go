// Package palette maps the color names used in data files onto terminal styles.
package palette

import (
	"encoding/json"
	"strings"

	"github.com/gookit/color"

	"wasteland/pkg/engine/debug"
)

// Color is one of the sixteen data palette colors
type Color uint8

// Palette colors
const (
	LightGray Color = iota
	Black
	White
	DarkGray
	Red
	Green
	Blue
	Cyan
	Magenta
	Brown
	LightRed
	LightGreen
	LightBlue
	LightCyan
	Pink
	Yellow
	numColors
)

type colorInfo struct {
	Name  string
	Style color.Style
}

var colors = [numColors]colorInfo{
	LightGray:  {"light_gray", color.Style{color.FgWhite}},
	Black:      {"black", color.Style{color.FgBlack}},
	White:      {"white", color.Style{color.FgLightWhite, color.OpBold}},
	DarkGray:   {"dark_gray", color.Style{color.FgGray}},
	Red:        {"red", color.Style{color.FgRed}},
	Green:      {"green", color.Style{color.FgGreen}},
	Blue:       {"blue", color.Style{color.FgBlue}},
	Cyan:       {"cyan", color.Style{color.FgCyan}},
	Magenta:    {"magenta", color.Style{color.FgMagenta}},
	Brown:      {"brown", color.Style{color.FgYellow}},
	LightRed:   {"light_red", color.Style{color.FgLightRed}},
	LightGreen: {"light_green", color.Style{color.FgLightGreen}},
	LightBlue:  {"light_blue", color.Style{color.FgLightBlue}},
	LightCyan:  {"light_cyan", color.Style{color.FgLightCyan}},
	Pink:       {"pink", color.Style{color.FgLightMagenta}},
	Yellow:     {"yellow", color.Style{color.FgLightYellow, color.OpBold}},
}

var aliases = map[string]Color{
	"light_grey":    LightGray,
	"ltgray":        LightGray,
	"dark_grey":     DarkGray,
	"dkgray":        DarkGray,
	"ltred":         LightRed,
	"ltgreen":       LightGreen,
	"ltblue":        LightBlue,
	"ltcyan":        LightCyan,
	"light_magenta": Pink,
}

// FromName parses a data color name such as "c_light_red" or "yellow".
func FromName(name string) (Color, bool) {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "c_")
	for i, c := range colors {
		if c.Name == n {
			return Color(i), true
		}
	}
	c, ok := aliases[n]
	return c, ok
}

// Name returns the canonical data name of the color
func (c Color) Name() string {
	if c >= numColors {
		return colors[LightGray].Name
	}
	return colors[c].Name
}

// Style returns the terminal style for the color
func (c Color) Style() color.Style {
	if c >= numColors {
		return colors[LightGray].Style
	}
	return colors[c].Style
}

// Sprint renders s in the color
func (c Color) Sprint(s string) string {
	return c.Style().Sprint(s)
}

// UnmarshalJSON accepts a color name. Unknown names fall back to light gray with a diagnostic.
func (c *Color) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, ok := FromName(s)
	if !ok {
		debug.Msg("unknown color %q", s)
		parsed = LightGray
	}
	*c = parsed
	return nil
}

// MarshalJSON writes the canonical color name
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Name())
}
