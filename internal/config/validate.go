package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vmunix/postarr/internal/artwork"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var knownSources = map[string]bool{
	string(artwork.SourceThePosterDB): true,
	string(artwork.SourceMediux):      true,
	string(artwork.SourceUpload):      true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Plex.URL == "" {
		errs = append(errs, "plex.url: required")
	} else if u, err := url.Parse(c.Plex.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("plex.url: must be an absolute URL, got %q", c.Plex.URL))
	}
	if c.Plex.Token == "" {
		errs = append(errs, "plex.token: required")
	}
	if len(c.Plex.MovieLibraries) == 0 && len(c.Plex.TVLibraries) == 0 {
		errs = append(errs, "plex: at least one of movie_libraries or tv_libraries must be configured")
	}

	errs = append(errs, validateKinds("filters.theposterdb", c.Filters.ThePosterDB)...)
	errs = append(errs, validateKinds("filters.mediux", c.Filters.Mediux)...)

	for lib, dir := range c.Assets.LibraryPaths {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, fmt.Sprintf("assets.library_paths.%s: must not be empty", lib))
		}
	}

	for src, d := range c.RateLimits {
		if !knownSources[src] {
			errs = append(errs, fmt.Sprintf("rate_limits.%s: unknown source", src))
		}
		if d < 0 {
			errs = append(errs, fmt.Sprintf("rate_limits.%s: must not be negative, got %s", src, d))
		}
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}

func validateKinds(key string, names []string) []string {
	var errs []string
	for _, n := range names {
		if _, err := artwork.ParseKind(n); err != nil {
			errs = append(errs, fmt.Sprintf("%s: unknown artwork type %q", key, n))
		}
	}
	return errs
}
