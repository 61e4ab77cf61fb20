package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/postarr/internal/library"
)

var plexCmd = &cobra.Command{
	Use:   "plex",
	Short: "Plex media server commands",
}

var plexStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show Plex connection status and libraries",
	RunE:  runPlexStatusCmd,
}

func init() {
	rootCmd.AddCommand(plexCmd)
	plexCmd.AddCommand(plexStatusCmd)
}

type plexLibrary struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	Locations  []string `json:"locations,omitempty"`
	Configured bool     `json:"configured"`
}

type plexStatus struct {
	Connected  bool          `json:"connected"`
	ServerName string        `json:"server_name,omitempty"`
	Version    string        `json:"version,omitempty"`
	Libraries  []plexLibrary `json:"libraries,omitempty"`
	Missing    []string      `json:"missing,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func runPlexStatusCmd(cmd *cobra.Command, args []string) error {
	a, err := loadApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	status := plexStatus{}
	id, err := a.plex.Identity(cmd.Context())
	if err != nil {
		status.Error = err.Error()
	} else {
		status.Connected = true
		status.ServerName, status.Version = id.Name, id.Version
		sections, err := a.plex.Sections(cmd.Context())
		if err != nil {
			status.Error = err.Error()
		}
		status.Libraries, status.Missing = describeSections(sections, a.cfg.Plex.MovieLibraries, a.cfg.Plex.TVLibraries)
	}

	if jsonOutput {
		printJSON(status)
	} else {
		printPlexStatusHuman(status)
	}
	if !status.Connected {
		return fmt.Errorf("plex unreachable")
	}
	return nil
}

// describeSections marks configured sections and lists configured names
// the server does not have.
func describeSections(sections []library.Section, movies, shows []string) ([]plexLibrary, []string) {
	configured := func(s library.Section) bool {
		names := movies
		if s.Type == library.TypeShow {
			names = shows
		}
		return slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, s.Title) })
	}

	libs := make([]plexLibrary, 0, len(sections))
	for _, s := range sections {
		libs = append(libs, plexLibrary{
			Key:        s.Key,
			Title:      s.Title,
			Type:       string(s.Type),
			Locations:  s.Locations,
			Configured: configured(s),
		})
	}

	var missing []string
	check := func(names []string, typ library.ItemType) {
		for _, n := range names {
			if !slices.ContainsFunc(sections, func(s library.Section) bool {
				return s.Type == typ && strings.EqualFold(s.Title, n)
			}) {
				missing = append(missing, n)
			}
		}
	}
	check(movies, library.TypeMovie)
	check(shows, library.TypeShow)
	return libs, missing
}

func printPlexStatusHuman(s plexStatus) {
	if !s.Connected {
		fmt.Printf("Plex: connection failed\n")
		fmt.Printf("  Error: %s\n", s.Error)
		return
	}

	fmt.Printf("Plex: %s (%s)\n", s.ServerName, s.Version)
	fmt.Println()

	if len(s.Libraries) == 0 {
		fmt.Println("No libraries found")
	} else {
		fmt.Println("Libraries:")
		for _, lib := range s.Libraries {
			mark := " "
			if lib.Configured {
				mark = "*"
			}
			fmt.Printf(" %s %-24s %-6s %s\n", mark, lib.Title, lib.Type, strings.Join(lib.Locations, ", "))
		}
		fmt.Println()
		fmt.Println("* configured for delivery")
	}

	for _, m := range s.Missing {
		fmt.Printf("Warning: configured library %q not found on server\n", m)
	}
}
