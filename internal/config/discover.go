package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names the environment variable that overrides discovery. It
// may point at a file or at a directory holding config.toml, which is how
// container images mount their config volume.
const EnvConfig = "POSTARR_CONFIG"

const fileName = "config.toml"

// ErrNotFound is returned by Discover when no candidate exists.
var ErrNotFound = errors.New("config not found")

// Origin records which rule located a config file.
type Origin string

const (
	OriginEnv     Origin = "env"
	OriginWorkDir Origin = "workdir"
	OriginUser    Origin = "user"
	OriginSystem  Origin = "system"
)

// Location is a config file candidate.
type Location struct {
	Path   string
	Origin Origin
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%s)", l.Path, l.Origin)
}

// UserPath is the per-user config file under $XDG_CONFIG_HOME, falling
// back to ~/.config.
func UserPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", fileName)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "postarr", fileName)
}

// SearchPath lists the candidates Discover checks after the environment
// override. postarr.toml is preferred over config.toml in the working
// directory so postarr can share a directory with other tools' configs.
func SearchPath() []Location {
	return []Location{
		{Path: "postarr.toml", Origin: OriginWorkDir},
		{Path: fileName, Origin: OriginWorkDir},
		{Path: UserPath(), Origin: OriginUser},
		{Path: filepath.Join("/etc", "postarr", fileName), Origin: OriginSystem},
	}
}

// Discover locates the config file. POSTARR_CONFIG wins when set and must
// exist; otherwise the first existing SearchPath entry is used.
func Discover() (Location, error) {
	if env := os.Getenv(EnvConfig); env != "" {
		path, err := resolveEnvPath(env)
		if err != nil {
			return Location{}, fmt.Errorf("%s=%s: %w", EnvConfig, env, err)
		}
		return Location{Path: path, Origin: OriginEnv}, nil
	}

	candidates := SearchPath()
	checked := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if fi, err := os.Stat(c.Path); err == nil && !fi.IsDir() {
			return c, nil
		}
		checked = append(checked, c.Path)
	}
	return Location{}, fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(checked, ", "))
}

func resolveEnvPath(p string) (string, error) {
	fi, err := os.Stat(p)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return p, nil
	}
	file := filepath.Join(p, fileName)
	if _, err := os.Stat(file); err != nil {
		return "", err
	}
	return file, nil
}
