// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"io"
	"unicode/utf8"

	"wasteland/pkg/engine/palette"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/submap"
)

// Glyph returns what a tile looks like: a vehicle, then the top field, then items,
// then furniture, then a trap, then the terrain. Fields that let items show
// through give way to items.
func Glyph(sm *submap.Submap, p world.Point) (rune, palette.Color) {
	for _, v := range sm.Vehicles() {
		if v.Pos == p {
			return 'v', palette.LightBlue
		}
	}
	fd := sm.Field(p)
	items := sm.Items(p)
	if top := fd.Symbol(); !top.IsNull() && (len(items) == 0 || !top.Obj().DisplayItems) {
		e := fd.Find(top)
		return e.Symbol(), e.Color()
	}
	if len(items) > 0 {
		return '*', palette.White
	}
	if f := sm.Furn(p); !f.IsNull() {
		return f.Obj().Symbol, f.Obj().Color
	}
	if tr := sm.Trap(p); !tr.IsNull() {
		r, _ := utf8.DecodeRuneInString(tr.Obj().Symbol)
		return r, tr.Obj().Color
	}
	t := sm.Ter(p).Obj()
	return t.Symbol, t.Color
}

// Render writes the submap one row per line. With colored set every glyph carries
// its terminal style.
func Render(w io.Writer, sm *submap.Submap, colored bool) error {
	return RenderRow(w, []*submap.Submap{sm}, 0, colored)
}

// RenderRow writes submaps side by side, one blank column between them. When width
// is positive, submaps that would pass it wrap onto a new band below.
func RenderRow(w io.Writer, sms []*submap.Submap, width int, colored bool) error {
	per := len(sms)
	if width > 0 {
		per = max(1, (width+1)/(submap.SEEX+1))
	}
	var buf []byte
	for start := 0; start < len(sms); start += per {
		band := sms[start:min(start+per, len(sms))]
		if start > 0 {
			buf = append(buf, '\n')
		}
		for y := range submap.SEEY {
			for i, sm := range band {
				if i > 0 {
					buf = append(buf, ' ')
				}
				for x := range submap.SEEX {
					r, c := Glyph(sm, world.Pt(x, y))
					if colored {
						buf = append(buf, c.Sprint(string(r))...)
					} else {
						buf = utf8.AppendRune(buf, r)
					}
				}
			}
			buf = append(buf, '\n')
		}
	}
	_, err := w.Write(buf)
	return err
}
