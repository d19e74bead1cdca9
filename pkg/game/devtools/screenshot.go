package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wasteland/pkg/engine/palette"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/submap"
)

var cssColors = map[palette.Color]string{
	palette.LightGray:  "#aaaaaa",
	palette.Black:      "#222222",
	palette.White:      "#ffffff",
	palette.DarkGray:   "#666666",
	palette.Red:        "#aa0000",
	palette.Green:      "#00aa00",
	palette.Blue:       "#3344cc",
	palette.Cyan:       "#00aaaa",
	palette.Magenta:    "#aa00aa",
	palette.Brown:      "#aa5500",
	palette.LightRed:   "#ff5555",
	palette.LightGreen: "#55ff55",
	palette.LightBlue:  "#5599ff",
	palette.LightCyan:  "#55ffff",
	palette.Pink:       "#ff55ff",
	palette.Yellow:     "#ffff55",
}

// SaveScreenshotHTML saves the submap as an HTML file in dir and returns its path.
// Messages are shown under the map with terminal styling removed.
func SaveScreenshotHTML(dir string, pos world.Tripoint, sm *submap.Submap, messages []string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))
	if err := os.WriteFile(filename, []byte(screenshotHTML(pos, sm, messages)), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

func screenshotHTML(pos world.Tripoint, sm *submap.Submap, messages []string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Wasteland - Screenshot</title>
    <style>
        body {
            background-color: #1a1a1a;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #d9a441;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f0f;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
`)
	for c := palette.LightGray; c <= palette.Yellow; c++ {
		fmt.Fprintf(&b, "        .c-%s { color: %s; }\n", c.Name(), cssColors[c])
	}
	b.WriteString(`    </style>
</head>
<body>
`)
	fmt.Fprintf(&b, `    <div class="header">Submap %s</div>`+"\n", pos)

	b.WriteString(`    <div class="map-container">` + "\n")
	for y := range submap.SEEY {
		b.WriteString(`        <div class="map-row">`)
		for x := range submap.SEEX {
			r, c := Glyph(sm, world.Pt(x, y))
			fmt.Fprintf(&b, `<span class="c-%s">%s</span>`, c.Name(), html.EscapeString(string(r)))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	if len(messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(stripANSI(msg)))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString(`</body>
</html>
`)
	return b.String()
}

// stripANSI removes ANSI escape codes from a string
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
