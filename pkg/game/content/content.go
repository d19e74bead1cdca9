// Package content bundles the builtin game data and loads it into the global tables.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"wasteland/pkg/engine/data"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/trap"
)

//go:embed json
var builtin embed.FS

// Builtin returns the embedded data files
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "json")
	if err != nil {
		panic(err)
	}
	return sub
}

// Summary counts what a load produced.
type Summary struct {
	Traps      int
	FieldTypes int
	Terrain    int
	Furniture  int
	// Problems are consistency errors found after finalizing. None of them stop the game.
	Problems []error
}

// Load rebuilds every table from the builtin data followed by the given extra sources.
// Traps are finalized first, then field types, then terrain and furniture, because the
// later tables resolve ids into the earlier ones. The returned error covers files that
// could not be read or parsed; consistency problems are in the Summary.
func Load(extra ...fs.FS) (Summary, error) {
	trap.Reset()
	field.Reset()
	mapdata.Reset()

	l := data.NewLoader()
	trap.Register(l)
	field.Register(l)
	mapdata.Register(l)

	var errs []error
	if err := l.LoadFS(Builtin(), "."); err != nil {
		errs = append(errs, fmt.Errorf("builtin data: %w", err))
	}
	for i, fsys := range extra {
		if err := l.LoadFS(fsys, "."); err != nil {
			errs = append(errs, fmt.Errorf("data source %d: %w", i, err))
		}
	}

	trap.Finalize()
	field.Finalize()
	mapdata.Finalize()

	s := Summary{
		Traps:      trap.Count() - 1,
		FieldTypes: field.Count() - 1,
		Terrain:    mapdata.TerrainCount() - 1,
		Furniture:  mapdata.FurnitureCount() - 1,
	}
	s.Problems = append(s.Problems, trap.CheckConsistency()...)
	s.Problems = append(s.Problems, field.CheckConsistency()...)
	s.Problems = append(s.Problems, mapdata.CheckConsistency()...)
	return s, errors.Join(errs...)
}
