package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// ErrExists is returned by WriteDefault when the target exists and
// Overwrite is not set.
var ErrExists = errors.New("config already exists")

// Seed fills values into the generated config. Empty fields keep the
// template's environment references.
type Seed struct {
	PlexURL   string
	PlexToken string
	BaseDir   string
	Overwrite bool
}

// template lines replaced by Seed values.
const (
	urlLine     = `url = "${PLEX_URL:-http://localhost:32400}"`
	tokenLine   = `token = "${PLEX_TOKEN}"`
	baseDirLine = `base_dir = "/data/assets"`
)

// Render returns the default config with seed values applied.
func Render(seed Seed) string {
	out := defaultConfig
	if seed.PlexURL != "" {
		out = strings.Replace(out, urlLine, "url = "+quote(seed.PlexURL), 1)
	}
	if seed.PlexToken != "" {
		out = strings.Replace(out, tokenLine, "token = "+quote(seed.PlexToken), 1)
	}
	if seed.BaseDir != "" {
		out = strings.Replace(out, baseDirLine, "base_dir = "+quote(seed.BaseDir), 1)
	}
	return out
}

// WriteDefault writes the rendered default config to path, creating
// parent directories. The file holds the Plex token, so it is private to
// the owner.
func WriteDefault(path string, seed Seed) error {
	if !seed.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	return writeFile(path, []byte(Render(seed)))
}

// Write serializes the config to TOML at path.
func (c *Config) Write(path string) error {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return writeFile(path, []byte(b.String()))
}

// writeFile replaces path through a temp file so a crash never leaves a
// truncated config behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".postarr-config-*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}

// quote renders s as a TOML basic string.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
