package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"wasteland/pkg/engine/calendar"
	"wasteland/pkg/engine/terminal"
	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/content"
	"wasteland/pkg/game/devtools"
	"wasteland/pkg/game/field"
	"wasteland/pkg/game/mapbuffer"
	"wasteland/pkg/game/mapgen"
	"wasteland/pkg/game/persistence"
	"wasteland/pkg/game/submap"
)

// renderArea draws the surface submaps of the buffer, one line of submaps per y,
// wrapped to the terminal width when stdout is a terminal.
func renderArea(ctx context.Context, buf *mapbuffer.Buffer) error {
	colored := terminal.IsTerminal(os.Stdout)
	width := 0
	if colored {
		width, _ = terminal.Size(os.Stdout)
	}
	var row []*submap.Submap
	rowY := 0
	flush := func() error {
		if len(row) == 0 {
			return nil
		}
		err := devtools.RenderRow(os.Stdout, row, width, colored)
		row = row[:0]
		return err
	}
	for _, pos := range buf.Positions() {
		if pos.Z != 0 {
			continue
		}
		if len(row) > 0 && pos.Y != rowY {
			if err := flush(); err != nil {
				return err
			}
			fmt.Println()
		}
		sm, err := buf.Lookup(ctx, pos)
		if err != nil {
			return err
		}
		rowY = pos.Y
		row = append(row, sm)
	}
	return flush()
}

func initGettext(cfg config) {
	gotext.Configure(cfg.Locale, cfg.Lang, "default")
}

// parseFlags builds the run config. Flags that were given win over the config file.
func parseFlags() (config, error) {
	cfg := defaultConfig()
	configPath := flag.String("config", "", "YAML config file")
	data := flag.String("data", "", "directory of extra data files loaded after the builtin data")
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	turns := flag.Int("turns", cfg.Turns, "number of turns to simulate")
	radius := flag.Int("radius", cfg.Radius, "submaps kept around the origin in each direction")
	store := flag.String("store", "", "store type: json or postgres")
	dump := flag.String("dump", "", "write a debug dump of the origin submap to this file")
	html := flag.String("html", "", "save an HTML screenshot of the origin submap in this directory")
	locale := flag.String("locale", cfg.Locale, "directory of translations")
	lang := flag.String("lang", cfg.Lang, "language of messages")
	flag.Parse()

	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	applyEnv(&cfg)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *data
		case "seed":
			cfg.Seed = *seed
		case "turns":
			cfg.Turns = *turns
		case "radius":
			cfg.Radius = *radius
		case "store":
			cfg.Store.Type = *store
		case "dump":
			cfg.Dump = *dump
		case "html":
			cfg.HTML = *html
		case "locale":
			cfg.Locale = *locale
		case "lang":
			cfg.Lang = *lang
		}
	})
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func loadContent(cfg config) {
	var summary content.Summary
	var err error
	if cfg.Data != "" {
		summary, err = content.Load(os.DirFS(cfg.Data))
	} else {
		summary, err = content.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}
	for _, p := range summary.Problems {
		log.Printf("data problem: %v", p)
	}
	log.Printf("Loaded %d terrain, %d furniture, %d field types, %d traps",
		summary.Terrain, summary.Furniture, summary.FieldTypes, summary.Traps)
}

// loadArea brings every submap within radius of the origin into the buffer,
// generating the ones the store does not have. The origin is a building.
func loadArea(ctx context.Context, buf *mapbuffer.Buffer, gen *mapgen.Generator, radius int) error {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			pos := world.Tripoint{X: x, Y: y}
			_, err := buf.Lookup(ctx, pos)
			if errors.Is(err, persistence.ErrNotFound) {
				if pos == (world.Tripoint{}) {
					buf.Add(pos, gen.GenerateBuilding(pos))
				} else {
					buf.Add(pos, gen.Generate(pos))
				}
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ignite starts a fire in the middle of the origin submap with smoke around it
func ignite(sm *submap.Submap) {
	center := world.Pt(submap.SEEX/2, submap.SEEY/2)
	sm.AddField(center, field.Fire, 2, 0)
	for _, n := range world.Neighbors(center) {
		if sm.InBounds(n) && sm.MoveCost(n) > 0 {
			sm.AddField(n, field.Smoke, 1, 0)
		}
	}
}

func simulate(buf *mapbuffer.Buffer, rng *rand.Rand, turns int) calendar.Point {
	turn := calendar.Point(0)
	for i := 0; i < turns; i++ {
		turn++
		for _, pos := range buf.Positions() {
			sm, _ := buf.Lookup(context.Background(), pos)
			sm.ProcessFields(rng, turn)
		}
	}
	return turn
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}

	initGettext(cfg)
	loadContent(cfg)

	ctx := context.Background()
	store, err := persistence.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	buf := mapbuffer.New(store)
	gen := mapgen.New(cfg.Seed)
	if err := loadArea(ctx, buf, gen, cfg.Radius); err != nil {
		log.Fatalf("Failed to load submaps: %v", err)
	}

	origin := world.Tripoint{}
	sm, err := buf.Lookup(ctx, origin)
	if err != nil {
		log.Fatalf("Failed to load origin submap: %v", err)
	}
	if sm.FieldCount() == 0 {
		ignite(sm)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	turn := simulate(buf, rng, cfg.Turns)
	log.Printf("Simulated %d turns over %d submaps, %d fields left at the origin", cfg.Turns, buf.Len(), sm.FieldCount())

	if err := renderArea(ctx, buf); err != nil {
		log.Printf("Failed to render: %v", err)
	}
	if cfg.Dump != "" {
		path, err := devtools.DumpToFile(cfg.Dump, origin, sm, turn)
		if err != nil {
			log.Printf("Failed to write dump: %v", err)
		} else {
			fmt.Println(gotext.Get("Dump written to %s", path))
		}
	}
	if cfg.HTML != "" {
		path, err := devtools.SaveScreenshotHTML(cfg.HTML, origin, sm, nil)
		if err != nil {
			log.Printf("Failed to save screenshot: %v", err)
		} else {
			fmt.Println(gotext.Get("Screenshot saved to %s", path))
		}
	}

	if err := buf.Save(ctx); err != nil {
		log.Fatalf("Failed to save world: %v", err)
	}
}
