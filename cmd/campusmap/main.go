package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"campusmap/internal/config"
	"campusmap/internal/location"
	"campusmap/internal/logger"
	"campusmap/internal/pathway"
	"campusmap/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "campusmap:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log, err := logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, "campusmap: logging disabled:", err)
	}
	defer logger.Close()

	// registry: first argument, then CAMPUSMAP_REGISTRY, then the built-in campus
	regPath := cfg.RegistryPath
	if len(os.Args) > 1 {
		regPath = os.Args[1]
	}
	reg := pathway.Campus()
	if regPath != "" {
		if reg, err = pathway.Load(regPath); err != nil {
			return fmt.Errorf("load registry: %w", err)
		}
	}
	reg.WithLogger(log)
	log.Info("registry_loaded", "source", sourceName(regPath), "pathways", reg.Len())

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m := tui.New(tui.Options{Registry: reg, Store: store, Logger: log})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return err
	}
	return nil
}

// openStore picks Postgres when configured, otherwise an in-memory store
// seeded from CAMPUSMAP_LOCATIONS_CSV.
func openStore(cfg config.Config, log *slog.Logger) (location.Store, func(), error) {
	if cfg.UsePostgres() {
		pg, err := location.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = pg.Close()
			return nil, nil, err
		}
		log.Info("store_ready", "kind", "postgres")
		return pg, func() { _ = pg.Close() }, nil
	}
	var seed []location.Location
	if cfg.LocationsCSV != "" {
		locs, err := location.LoadCSV(cfg.LocationsCSV)
		if err != nil {
			return nil, nil, fmt.Errorf("seed locations: %w", err)
		}
		seed = locs
	}
	log.Info("store_ready", "kind", "memory", "seeded", len(seed))
	return location.NewMemoryStore(seed...), func() {}, nil
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
