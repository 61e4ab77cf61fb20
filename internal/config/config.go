// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Plex       PlexConfig               `toml:"plex"`
	Filters    FiltersConfig            `toml:"filters"`
	Assets     AssetsConfig             `toml:"assets"`
	Tracking   TrackingConfig           `toml:"tracking"`
	RateLimits map[string]time.Duration `toml:"rate_limits"`
	Log        LogConfig                `toml:"log"`
	History    HistoryConfig            `toml:"history"`
}

type PlexConfig struct {
	URL            string   `toml:"url"`
	Token          string   `toml:"token"`
	MovieLibraries []string `toml:"movie_libraries"`
	TVLibraries    []string `toml:"tv_libraries"`
}

// FiltersConfig lists, per catalog source, the artwork kinds delivered
// when a run names no filters. An empty list allows every kind.
type FiltersConfig struct {
	ThePosterDB []string `toml:"theposterdb"`
	Mediux      []string `toml:"mediux"`
}

type AssetsConfig struct {
	BaseDir          string            `toml:"base_dir"`
	TempDir          string            `toml:"temp_dir"`
	StageAssets      bool              `toml:"stage_assets"`
	StageSpecials    bool              `toml:"stage_specials"`
	StageCollections bool              `toml:"stage_collections"`
	LibraryPaths     map[string]string `toml:"library_paths"`
}

type TrackingConfig struct {
	Enabled      bool `toml:"enabled"`
	ResetOverlay bool `toml:"reset_overlay"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// HistoryConfig locates the run journal. An empty path disables it.
type HistoryConfig struct {
	Path string `toml:"path"`
}

// defaults returns a Config carrying every default. Decoding into it
// keeps the defaults for keys the file leaves out.
func defaults() Config {
	return Config{
		Assets:   AssetsConfig{StageAssets: true},
		Tracking: TrackingConfig{Enabled: true},
		RateLimits: map[string]time.Duration{
			"theposterdb": 6 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Invalid: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file without
// validating it. Missing environment variables are still an error.
func LoadWithoutValidation(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	cfg := defaults()
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Syntax: err}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return &cfg, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references and reports the ones
// that could not be resolved. Unresolved references are left in place.
// Empty values count as unset for the :- and :? forms.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
