package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/postarr/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example config file",
	Long:  "Writes a commented example config (default ./config.toml). Edit it, then run 'postarr config check'.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config")
	initCmd.Flags().String("plex-url", "", "Plex server URL to write instead of ${PLEX_URL}")
	initCmd.Flags().String("plex-token", "", "Plex token to write instead of ${PLEX_TOKEN}")
	initCmd.Flags().String("assets", "", "Asset directory for the filesystem sink")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	var seed config.Seed
	seed.Overwrite, _ = cmd.Flags().GetBool("force")
	seed.PlexURL, _ = cmd.Flags().GetString("plex-url")
	seed.PlexToken, _ = cmd.Flags().GetString("plex-token")
	seed.BaseDir, _ = cmd.Flags().GetString("assets")

	path := "config.toml"
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, seed); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	if seed.PlexToken == "" {
		fmt.Println("Set PLEX_TOKEN (and PLEX_URL) in your environment, then run 'postarr config check'.")
	} else {
		fmt.Println("Run 'postarr config check' to verify it.")
	}
	return nil
}
