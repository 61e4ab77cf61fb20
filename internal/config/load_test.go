package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[plex]
url = "http://plex.local:32400"
token = "abc"
movie_libraries = ["Movies"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://plex.local:32400", cfg.Plex.URL)
	assert.Equal(t, []string{"Movies"}, cfg.Plex.MovieLibraries)
	assert.True(t, cfg.Assets.StageAssets, "staging defaults on")
	assert.False(t, cfg.Assets.StageSpecials)
	assert.True(t, cfg.Tracking.Enabled, "tracking defaults on")
	assert.Equal(t, 6*time.Second, cfg.RateLimits["theposterdb"])
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.History.Path)
}

func TestLoad_AllSections(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
tv_libraries = ["TV Shows", "Anime"]

[filters]
theposterdb = ["poster", "season_cover"]
mediux = ["title_card"]

[assets]
base_dir = "/assets"
temp_dir = "/assets-temp"
stage_assets = false
stage_specials = true
stage_collections = true

[assets.library_paths]
"Movies" = "movies"

[tracking]
enabled = false
reset_overlay = true

[rate_limits]
theposterdb = "2s"
mediux = "500ms"

[log]
level = "debug"

[history]
path = "/var/lib/postarr/history.db"
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"TV Shows", "Anime"}, cfg.Plex.TVLibraries)
	assert.Equal(t, []string{"poster", "season_cover"}, cfg.Filters.ThePosterDB)
	assert.Equal(t, []string{"title_card"}, cfg.Filters.Mediux)
	assert.Equal(t, AssetsConfig{
		BaseDir:          "/assets",
		TempDir:          "/assets-temp",
		StageSpecials:    true,
		StageCollections: true,
		LibraryPaths:     map[string]string{"Movies": "movies"},
	}, cfg.Assets)
	assert.Equal(t, TrackingConfig{ResetOverlay: true}, cfg.Tracking)
	assert.Equal(t, 2*time.Second, cfg.RateLimits["theposterdb"])
	assert.Equal(t, 500*time.Millisecond, cfg.RateLimits["mediux"])
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/lib/postarr/history.db", cfg.History.Path)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	_, err := Load(writeConfig(t, `
[plex]
url = "http://plex.local:32400"
token = "${POSTARR_TEST_MISSING_TOKEN}"
movie_libraries = ["Movies"]
`))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"POSTARR_TEST_MISSING_TOKEN"}, cfgErr.Missing)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("POSTARR_TEST_TOKEN", "from-env")
	cfg, err := Load(writeConfig(t, `
[plex]
url = "${POSTARR_TEST_URL:-http://localhost:32400}"
token = "${POSTARR_TEST_TOKEN}"
tv_libraries = ["TV Shows"]
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Plex.Token)
	assert.Equal(t, "http://localhost:32400", cfg.Plex.URL)
}

func TestLoad_ValidationError(t *testing.T) {
	_, err := Load(writeConfig(t, `
[plex]
url = "http://plex.local:32400"

[log]
level = "verbose"
`))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Invalid, "plex.token: required")
	assert.Contains(t, err.Error(), "[plex]\n    - token: required")
	assert.Contains(t, err.Error(), "[log]")
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[plex\nurl="))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Error(t, cfgErr.Syntax)
	assert.Contains(t, err.Error(), "syntax: line ")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadWithoutValidation(t *testing.T) {
	cfg, err := LoadWithoutValidation(writeConfig(t, "[log]\nlevel = \"debug\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Validate())
}
