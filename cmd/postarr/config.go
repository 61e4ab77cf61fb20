package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/postarr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without contacting Plex.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	loc := config.Location{Path: configFile}
	switch {
	case len(args) > 0:
		loc.Path = args[0]
	case configFile == "":
		var err error
		if loc, err = config.Discover(); err != nil {
			return err
		}
	}
	path := loc.Path

	if loc.Origin != "" {
		fmt.Printf("Validating %s...\n\n", loc)
	} else {
		fmt.Printf("Validating %s...\n\n", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			printConfigErrors(cfgErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(cfg)
	fmt.Println("\nConfiguration valid!")
	return nil
}

func printConfigErrors(e *config.ConfigError) {
	if e.Syntax != nil {
		fmt.Printf("Syntax error: %v\n\n", e.Syntax)
	}
	if len(e.Missing) > 0 {
		fmt.Println("Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Printf("  - %s\n", m)
		}
		fmt.Println()
	}
	for _, section := range e.Sections() {
		fmt.Printf("[%s]\n", section.Name)
		for _, p := range section.Problems {
			fmt.Printf("  - %s\n", p)
		}
		fmt.Println()
	}
}

func printConfigSummary(cfg *config.Config) {
	fmt.Println("Configuration Summary:")
	fmt.Printf("  Plex:       %s\n", cfg.Plex.URL)
	fmt.Printf("  Movies:     %s\n", orNone(cfg.Plex.MovieLibraries))
	fmt.Printf("  TV:         %s\n", orNone(cfg.Plex.TVLibraries))
	fmt.Printf("  Tracking:   %s\n", onOff(cfg.Tracking.Enabled))
	if cfg.Assets.BaseDir != "" {
		fmt.Printf("  Assets:     %s (staging %s)\n", cfg.Assets.BaseDir, onOff(cfg.Assets.StageAssets))
	}
	if cfg.History.Path != "" {
		fmt.Printf("  History:    %s\n", cfg.History.Path)
	}
	fmt.Printf("  Log level:  %s\n", cfg.Log.Level)
}

func orNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
