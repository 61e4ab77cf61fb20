package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigError reports everything wrong with one config file. Syntax
// errors stop loading early, so a ConfigError carries either Syntax or
// some mix of Missing and Invalid.
type ConfigError struct {
	Path string
	// Syntax is the TOML decode error, if any.
	Syntax error
	// Missing lists unresolved environment references, with the message
	// of ${VAR:?message} forms.
	Missing []string
	// Invalid lists validation failures as "section.key: problem".
	Invalid []string
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "config %s:", e.Path)
	if e.Syntax != nil {
		fmt.Fprintf(&b, "\n  syntax: %s", describeSyntax(e.Syntax))
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\n  missing environment variables: %s", strings.Join(e.Missing, ", "))
	}
	for _, section := range e.Sections() {
		fmt.Fprintf(&b, "\n  [%s]", section.Name)
		for _, msg := range section.Problems {
			fmt.Fprintf(&b, "\n    - %s", msg)
		}
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Syntax }

// HasErrors reports whether anything was recorded.
func (e *ConfigError) HasErrors() bool {
	return e.Syntax != nil || len(e.Missing) > 0 || len(e.Invalid) > 0
}

// SectionProblems groups validation failures of one config table.
type SectionProblems struct {
	Name     string
	Problems []string
}

// Sections groups Invalid by their leading table name, in table order of
// the default config file.
func (e *ConfigError) Sections() []SectionProblems {
	byName := map[string][]string{}
	for _, msg := range e.Invalid {
		section, rest := "general", msg
		if i := strings.IndexAny(msg, ".:"); i > 0 {
			section, rest = msg[:i], strings.TrimSpace(msg[i+1:])
		}
		byName[section] = append(byName[section], rest)
	}

	out := make([]SectionProblems, 0, len(byName))
	for name, problems := range byName {
		out = append(out, SectionProblems{Name: name, Problems: problems})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sectionRank(out[i].Name) < sectionRank(out[j].Name) ||
			sectionRank(out[i].Name) == sectionRank(out[j].Name) && out[i].Name < out[j].Name
	})
	return out
}

var sectionOrder = []string{"plex", "filters", "assets", "tracking", "rate_limits", "log", "history"}

func sectionRank(name string) int {
	for i, s := range sectionOrder {
		if s == name {
			return i
		}
	}
	return len(sectionOrder)
}

func describeSyntax(err error) string {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return fmt.Sprintf("line %d: %s", perr.Position.Line, perr.Message)
	}
	return err.Error()
}
