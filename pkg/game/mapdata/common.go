// Package mapdata holds the static property tables for terrain and furniture.
//
// Tables are filled from data files, frozen by Finalize and read-only during
// play. Ids are dense integers; index 0 of each table is an inert null entry
// that stands in for anything unknown.
package mapdata

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"wasteland/pkg/engine/palette"
)

// tr translates a name loaded from data. Names are not format strings.
var tr = gotext.Get

// Range is an inclusive integer range. In data it is either a number or a [min, max] pair.
type Range struct {
	Min int
	Max int
}

// UnmarshalJSON accepts 3 or [1, 3]
func (r *Range) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*r = Range{n, n}
		return nil
	}
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("range must be a number or [min, max]: %w", err)
	}
	if len(pair) != 2 || pair[0] > pair[1] {
		return fmt.Errorf("range %v must be [min, max] with min <= max", pair)
	}
	*r = Range{pair[0], pair[1]}
	return nil
}

// ItemDrop is an item produced by bashing or deconstructing.
type ItemDrop struct {
	Item    string `json:"item"`
	Count   Range  `json:"count"`
	Charges Range  `json:"charges"`
}

// BashInfo describes what happens when a tile is smashed.
type BashInfo struct {
	StrMin          int        `json:"str_min"`
	StrMax          int        `json:"str_max"`
	StrMinBlocked   int        `json:"str_min_blocked"`
	StrMaxBlocked   int        `json:"str_max_blocked"`
	StrMinSupported int        `json:"str_min_supported"`
	StrMaxSupported int        `json:"str_max_supported"`
	Explosive       int        `json:"explosive"`
	SoundVol        int        `json:"sound_vol"`
	SoundFailVol    int        `json:"sound_fail_vol"`
	CollapseRadius  int        `json:"collapse_radius"`
	DestroyOnly     bool       `json:"destroy_only"`
	BashBelow       bool       `json:"bash_below"`
	Sound           string     `json:"sound"`
	SoundFail       string     `json:"sound_fail"`
	TerSet          string     `json:"ter_set"`
	FurnSet         string     `json:"furn_set"`
	Items           []ItemDrop `json:"items"`

	terSet  TerID
	furnSet FurnID
}

// TerSetID returns the terrain left behind after a successful bash
func (b *BashInfo) TerSetID() TerID {
	return b.terSet
}

// FurnSetID returns the furniture left behind after a successful bash
func (b *BashInfo) FurnSetID() FurnID {
	return b.furnSet
}

// DeconstructInfo describes what careful disassembly of a tile yields.
type DeconstructInfo struct {
	CanDo            bool       `json:"can_do"`
	DeconstructAbove bool       `json:"deconstruct_above"`
	TerSet           string     `json:"ter_set"`
	FurnSet          string     `json:"furn_set"`
	Items            []ItemDrop `json:"items"`

	terSet  TerID
	furnSet FurnID
}

// TerSetID returns the terrain left behind after deconstruction
func (d *DeconstructInfo) TerSetID() TerID {
	return d.terSet
}

// FurnSetID returns the furniture left behind after deconstruction
func (d *DeconstructInfo) FurnSetID() FurnID {
	return d.furnSet
}

// MapDataCommon holds the properties shared by terrain and furniture.
type MapDataCommon struct {
	ID           string
	Name         string
	Description  string
	Symbol       rune
	Color        palette.Color
	MoveCost     int
	Coverage     int
	LightEmitted int
	MaxVolume    int
	Examine      ExamineAction
	HarvestItem  string
	LooksLike    string
	Bash         *BashInfo
	Deconstruct  *DeconstructInfo

	bits  FlagSet
	extra *mapset.Set[string]
}

// HasFlag reports whether the flag is set. Built-in names are answered from the bitset,
// anything else from the overflow set.
func (m *MapDataCommon) HasFlag(name string) bool {
	if f, ok := FlagFromName(name); ok {
		return m.bits.Test(f)
	}
	return m.extra != nil && m.extra.Has(name)
}

// HasFlagBit reports whether a built-in flag is set
func (m *MapDataCommon) HasFlagBit(f TerFurnFlag) bool {
	return m.bits.Test(f)
}

// SetFlag sets a flag by data name
func (m *MapDataCommon) SetFlag(name string) {
	if f, ok := FlagFromName(name); ok {
		m.bits.Set(f)
		return
	}
	if m.extra == nil {
		s := mapset.New[string]()
		m.extra = &s
	}
	m.extra.Put(name)
}

// UnsetFlag clears a flag by data name
func (m *MapDataCommon) UnsetFlag(name string) {
	if f, ok := FlagFromName(name); ok {
		m.bits.Clear(f)
		return
	}
	if m.extra != nil {
		m.extra.Remove(name)
	}
}

// Bits returns the built-in flags as a bitset
func (m *MapDataCommon) Bits() FlagSet {
	return m.bits
}

// FlagNames lists every set flag: built-ins in enum order, then others sorted.
func (m *MapDataCommon) FlagNames() []string {
	var names []string
	m.bits.Each(func(f TerFurnFlag) {
		names = append(names, f.String())
	})
	if m.extra != nil {
		var extra []string
		m.extra.Each(func(name string) {
			extra = append(extra, name)
		})
		sort.Strings(extra)
		names = append(names, extra...)
	}
	return names
}

// DisplayName returns the translated name
func (m *MapDataCommon) DisplayName() string {
	if m.Name == "" {
		return ""
	}
	return tr(m.Name)
}

// IsBashable reports whether the tile can be smashed at all
func (m *MapDataCommon) IsBashable() bool {
	return m.Bash != nil && m.Bash.StrMax > 0
}

// commonJSON is the data file form of MapDataCommon.
type commonJSON struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Symbol       string           `json:"symbol"`
	Color        *palette.Color   `json:"color"`
	MoveCost     *int             `json:"move_cost"`
	Coverage     int              `json:"coverage"`
	LightEmitted int              `json:"light_emitted"`
	MaxVolume    int              `json:"max_volume"`
	Flags        []string         `json:"flags"`
	Examine      string           `json:"examine_action"`
	HarvestItem  string           `json:"harvest_item"`
	LooksLike    string           `json:"looks_like"`
	Bash         *BashInfo        `json:"bash"`
	Deconstruct  *DeconstructInfo `json:"deconstruct"`
}

func (c *commonJSON) build(src string, defaultMoveCost int) (MapDataCommon, error) {
	if c.ID == "" {
		return MapDataCommon{}, fmt.Errorf("missing id")
	}
	m := MapDataCommon{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Symbol:       parseSymbol(c.Symbol),
		Color:        palette.LightGray,
		MoveCost:     defaultMoveCost,
		Coverage:     c.Coverage,
		LightEmitted: c.LightEmitted,
		MaxVolume:    c.MaxVolume,
		HarvestItem:  c.HarvestItem,
		LooksLike:    c.LooksLike,
		Bash:         c.Bash,
		Deconstruct:  c.Deconstruct,
	}
	if c.Color != nil {
		m.Color = *c.Color
	}
	if c.MoveCost != nil {
		m.MoveCost = *c.MoveCost
	}
	for _, f := range c.Flags {
		m.SetFlag(strings.TrimSpace(f))
	}
	m.Examine = examineFromName(c.Examine, src, c.ID)
	return m, nil
}

// parseSymbol takes the first rune of a data symbol. Line drawing names become '#'.
func parseSymbol(s string) rune {
	if s == "" {
		return ' '
	}
	if strings.HasPrefix(s, "LINE_") {
		return '#'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
