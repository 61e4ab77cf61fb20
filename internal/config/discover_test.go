package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const discoverConfig = `
[plex]
url = "http://plex.local:32400"
token = "${PLEX_TOKEN:?set PLEX_TOKEN to your X-Plex-Token}"
movie_libraries = ["Movies"]

[assets]
base_dir = "/data/assets"
`

// chdir moves into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// isolate clears every discovery input and returns an empty working dir.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func TestUserPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/postarr/config.toml", UserPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, UserPath(), filepath.Join(".config", "postarr", "config.toml"))
}

func TestSearchPath_Order(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	var origins []Origin
	var paths []string
	for _, l := range SearchPath() {
		origins = append(origins, l.Origin)
		paths = append(paths, l.Path)
	}
	assert.Equal(t, []Origin{OriginWorkDir, OriginWorkDir, OriginUser, OriginSystem}, origins)
	assert.Equal(t, []string{"postarr.toml", "config.toml", "/xdg/postarr/config.toml", "/etc/postarr/config.toml"}, paths)
}

func TestDiscover_EnvFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "plex-home.toml")
	require.NoError(t, os.WriteFile(path, []byte(discoverConfig), 0o600))
	t.Setenv(EnvConfig, path)

	loc, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, Location{Path: path, Origin: OriginEnv}, loc)

	t.Setenv("PLEX_TOKEN", "abc")
	cfg, err := Load(loc.Path)
	require.NoError(t, err)
	assert.Equal(t, "/data/assets", cfg.Assets.BaseDir)
}

func TestDiscover_EnvDirectory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(discoverConfig), 0o600))
	t.Setenv(EnvConfig, dir)

	loc, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), loc.Path)
	assert.Equal(t, OriginEnv, loc.Origin)
}

func TestDiscover_EnvMissing(t *testing.T) {
	isolate(t)
	// A config in the working dir does not rescue a bad override.
	require.NoError(t, os.WriteFile("config.toml", []byte(discoverConfig), 0o600))
	t.Setenv(EnvConfig, "/nonexistent/postarr.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTARR_CONFIG=/nonexistent/postarr.toml")

	empty := t.TempDir()
	t.Setenv(EnvConfig, empty)
	_, err = Discover()
	require.Error(t, err, "a directory without config.toml is not a config")
}

func TestDiscover_PrefersPostarrToml(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("config.toml", []byte("[log]\nlevel = \"info\"\n"), 0o600))
	require.NoError(t, os.WriteFile("postarr.toml", []byte(discoverConfig), 0o600))

	loc, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, Location{Path: "postarr.toml", Origin: OriginWorkDir}, loc)
	assert.Equal(t, "postarr.toml (workdir)", loc.String())
}

func TestDiscover_UserConfig(t *testing.T) {
	isolate(t)
	t.Setenv("PLEX_TOKEN", "")
	require.NoError(t, os.MkdirAll(filepath.Dir(UserPath()), 0o755))
	require.NoError(t, os.WriteFile(UserPath(), []byte(discoverConfig), 0o600))

	loc, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, OriginUser, loc.Origin)

	_, err = Load(loc.Path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr, "PLEX_TOKEN is unset")
	assert.Equal(t, []string{"PLEX_TOKEN: set PLEX_TOKEN to your X-Plex-Token"}, cfgErr.Missing)
}

func TestDiscover_NotFound(t *testing.T) {
	isolate(t)
	// A directory named like a candidate is skipped.
	require.NoError(t, os.Mkdir("config.toml", 0o755))

	_, err := Discover()
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "postarr.toml, config.toml")
}
