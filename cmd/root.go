package cmd

import (
	"fmt"
	"os"

	"github.com/podqueue/playlist-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playlist-api",
	Short: "Playlist API server",
	Long: `Playlist API - A backend service for managing playlists of podcast episodes

The service provides playlist creation and listing, appending episodes to
playlists, and atomic reordering of items within a playlist.

Features:
  • Playlist management with soft deletion
  • Append-only item placement with monotonic positions
  • Atomic position reordering within a playlist
  • Dynamic playlists with externally computed ordering`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig loads the configuration when a command needs it.
// Called lazily by commands that actually touch config or the database,
// so version and help keep working with no config present.
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}
	return nil
}
