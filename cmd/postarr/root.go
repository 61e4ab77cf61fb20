package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configFile string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "postarr",
	Short: "Deliver curated artwork to your media library",
	Long: `postarr - artwork delivery for Plex

Reads artwork records (from ThePosterDB, MediUX or uploads), resolves them
against your Plex libraries and uploads them, or writes them into an asset
directory tree for tools that read local artwork.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("postarr {{.Version}}\n")
}
