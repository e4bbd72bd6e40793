// Command explorer runs one scripted exploration session: it restores or
// generates the maps, walks the current player's unit toward the nearest
// independent village, digs, swears villages, forages against a minutes
// budget and saves everything back.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/talgya/expedition/internal/config"
	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/exploration"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/hunting"
	"github.com/talgya/expedition/internal/mapgen"
	"github.com/talgya/expedition/internal/pathfind"
	"github.com/talgya/expedition/internal/persistence"
	"github.com/talgya/expedition/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	slog.Info("expedition explorer", "seed", cfg.Seed, "rows", cfg.Rows, "columns", cfg.Columns)

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	store, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Maps ──────────────────────────────────────────────────────────
	names, mainMap, subs, err := loadOrGenerate(store, cfg)
	if err != nil {
		slog.Error("failed to prepare maps", "error", err)
		os.Exit(1)
	}
	counts := world.TerrainCounts(mainMap)
	for _, t := range world.TileTypes {
		slog.Info("terrain", "type", t.String(), "count", counts[t])
	}

	turn := 1
	if !cfg.Regenerate {
		if v, err := store.GetMeta("turn"); err == nil {
			if n, err := strconv.Atoi(v); err == nil {
				turn = n
			}
		}
	}

	// A zero seed stays zero so the session draws a crypto seed.
	rngSeed := cfg.Seed
	if rngSeed != 0 {
		rngSeed += 300
	}
	rng := entropy.New(rngSeed)
	model := exploration.NewModel(mainMap, rng)
	for _, sub := range subs {
		model.AddSubordinateMap(sub)
	}

	spent := 0
	model.OnMovementCost(func(cost int) { spent += cost })
	model.OnSelectionChange(func(previous, current exploration.Selection) {
		slog.Debug("selection changed", "from", previous.Point, "to", current.Point)
	})

	unit, ok := currentUnit(mainMap)
	if !ok {
		slog.Error("no unit for the current player")
		os.Exit(1)
	}
	model.Select(unit)
	slog.Info("unit selected", "unit", unit.String(), "location", model.Selection().Point,
		"turn", turn, "orders", unit.LatestOrders(turn))

	// ── Travel ────────────────────────────────────────────────────────
	finders := pathfind.NewCache()
	walk(model, finders, rng, cfg.Steps, cfg.Pace())

	// ── Discovery ─────────────────────────────────────────────────────
	dug := "nothing"
	if found, err := model.Dig(); err != nil {
		slog.Warn("dig failed", "error", err)
	} else if found == nil {
		slog.Info("dug and found nothing")
	} else {
		dug = found.String()
		slog.Info("dug", "found", dug)
	}
	sworn, err := model.SwearVillages()
	if err != nil {
		slog.Warn("swearing villages failed", "error", err)
	} else {
		slog.Info("villages sworn", "count", sworn)
	}

	// ── Foraging ──────────────────────────────────────────────────────
	hunt := hunting.NewModel(mainMap, rng, cfg.NothingProportion)
	foraged := forage(hunt, model.Selection().Point, cfg.Minutes)

	// ── Save ──────────────────────────────────────────────────────────
	slog.Info("session finished", "movement_points", spent, "dismissed", len(model.Dismissed()))
	unit.SetResults(turn, fmt.Sprintf("Spent %d movement points. Dug %s. Swore %d villages. Found %d things foraging.",
		spent, dug, sworn, foraged))
	mainMap.SetModified(true)
	if err := saveAll(store, names, model); err != nil {
		slog.Error("failed to save maps", "error", err)
		os.Exit(1)
	}
	if err := store.SaveMeta("movement_points", strconv.Itoa(spent)); err != nil {
		slog.Error("failed to save metadata", "error", err)
	}
	if err := store.SaveMeta("seed", fmt.Sprintf("%d", cfg.Seed)); err != nil {
		slog.Error("failed to save metadata", "error", err)
	}
	if err := store.SaveMeta("turn", strconv.Itoa(turn+1)); err != nil {
		slog.Error("failed to save metadata", "error", err)
	}
}

// loadOrGenerate restores every stored map, or generates a fresh main map
// and derives the configured number of subordinate maps from it.
func loadOrGenerate(store *persistence.Store, cfg config.Config) ([]string, *world.Map, []*world.Map, error) {
	names, err := store.MapNames()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(names) > 0 && !cfg.Regenerate {
		slog.Info("found saved maps, loading...", "maps", len(names))
		var maps []*world.Map
		for _, name := range names {
			m, err := store.LoadMap(name)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("load %s: %w", name, err)
			}
			maps = append(maps, m)
		}
		return names, maps[0], maps[1:], nil
	}

	slog.Info("generating new maps...")
	genCfg := mapgen.DefaultConfig()
	genCfg.Seed = cfg.Seed
	genCfg.Dimensions = world.MapDimensions{Rows: cfg.Rows, Columns: cfg.Columns}
	genCfg.Players = []fixture.Player{
		{ID: 1, Name: "Explorer", Current: true},
		{ID: 2, Name: "Rival"},
	}
	mainMap := mapgen.Generate(genCfg)

	names = []string{"main"}
	var subs []*world.Map
	for i := range cfg.SubordinateMaps {
		player := genCfg.Players[i%len(genCfg.Players)]
		subs = append(subs, deriveSubordinate(mainMap, player))
		names = append(names, fmt.Sprintf("view-%d-%d", player.ID, i))
	}
	return names, mainMap, subs, nil
}

func saveAll(store *persistence.Store, names []string, model *exploration.Model) error {
	for i, m := range model.Maps() {
		if err := store.SaveMap(names[i], i == 0, m); err != nil {
			return fmt.Errorf("save %s: %w", names[i], err)
		}
	}
	return nil
}
