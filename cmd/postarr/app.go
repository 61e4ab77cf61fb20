package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/config"
	"github.com/vmunix/postarr/internal/history"
	"github.com/vmunix/postarr/internal/orchestrator"
	"github.com/vmunix/postarr/internal/plex"
	"github.com/vmunix/postarr/internal/policy"
	"github.com/vmunix/postarr/internal/sink"
)

// app holds everything a command needs after loading the config.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	plex    *plex.Client
	history *history.Store // nil when disabled
}

func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	loc, err := config.Discover()
	if err != nil {
		return "", err
	}
	return loc.Path, nil
}

func loadApp(withHistory bool) (*app, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	a := &app{
		cfg:  cfg,
		log:  logger,
		plex: plex.New(cfg.Plex.URL, cfg.Plex.Token, logger),
	}
	if withHistory && cfg.History.Path != "" {
		a.history, err = history.Open(cfg.History.Path)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *app) Close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.log.Warn("close history", "error", err)
		}
	}
}

func (a *app) orchestrator() *orchestrator.Orchestrator {
	return orchestrator.New(a.plex, orchestratorConfig(a.cfg), sink.NewLimits(intervals(a.cfg)), a.log)
}

func orchestratorConfig(cfg *config.Config) orchestrator.Config {
	return orchestrator.Config{
		MovieLibraries: cfg.Plex.MovieLibraries,
		ShowLibraries:  cfg.Plex.TVLibraries,
		Defaults:       sourceDefaults(cfg.Filters),
		Track:          cfg.Tracking.Enabled,
		ResetOverlay:   cfg.Tracking.ResetOverlay,
		Assets: orchestrator.Assets{
			BaseDir:          cfg.Assets.BaseDir,
			TempDir:          cfg.Assets.TempDir,
			Stage:            cfg.Assets.StageAssets,
			StageSpecials:    cfg.Assets.StageSpecials,
			StageCollections: cfg.Assets.StageCollections,
			LibraryPaths:     cfg.Assets.LibraryPaths,
		},
	}
}

// sourceDefaults converts the validated [filters] lists.
func sourceDefaults(f config.FiltersConfig) policy.Defaults {
	d := policy.Defaults{}
	for src, names := range map[artwork.Source][]string{
		artwork.SourceThePosterDB: f.ThePosterDB,
		artwork.SourceMediux:      f.Mediux,
	} {
		for _, n := range names {
			if k, err := artwork.ParseKind(n); err == nil {
				d[src] = append(d[src], k)
			}
		}
	}
	return d
}

// intervals merges configured rate limits over the built-in ones.
func intervals(cfg *config.Config) map[artwork.Source]time.Duration {
	out := make(map[artwork.Source]time.Duration, len(sink.DefaultIntervals)+len(cfg.RateLimits))
	for src, d := range sink.DefaultIntervals {
		out[src] = d
	}
	for src, d := range cfg.RateLimits {
		out[artwork.Source(src)] = d
	}
	return out
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
