package cmd

import (
	"fmt"
	"strings"

	"github.com/podqueue/playlist-api/internal/database"
	"github.com/podqueue/playlist-api/internal/models"
	"github.com/podqueue/playlist-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Playlist API.

Available subcommands:
  up      - Apply the schema, creating or updating tables as needed
  down    - Drop all managed tables
  status  - Show which tables exist in the database`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the database schema",
	Long: `Apply the database schema.

Creates the playlist tables if they do not exist and adds any missing
columns and indexes. Existing data is preserved.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the managed tables
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop all managed tables",
	Long: `Drop all tables managed by the Playlist API.

All playlist and playlist item data will be lost. A confirmation prompt
is shown unless --dry-run is set.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	Long:  `Display which managed tables currently exist in the database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// managedModels lists every model the migrate commands operate on.
func managedModels() []interface{} {
	return []interface{}{
		&models.Playlist{},
		&models.PlaylistItem{},
	}
}

func openDatabase() (*database.DB, error) {
	if err := loadConfig(); err != nil {
		return nil, err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, model := range managedModels() {
			table := tableNameFor(model)
			if db.DB.Migrator().HasTable(model) {
				fmt.Printf("  %s: up to date check would run\n", table)
			} else {
				fmt.Printf("  %s: would be created\n", table)
			}
		}
		return nil
	}

	if err := db.AutoMigrate(managedModels()...); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	fmt.Println("Schema applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, model := range managedModels() {
			fmt.Printf("  %s: would be dropped\n", tableNameFor(model))
		}
		return nil
	}

	// Confirmation prompt for destructive action
	fmt.Print("WARNING: This will drop all playlist tables and their data. Continue? (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Cancelled")
		return nil
	}

	// Drop items before playlists so foreign key constraints never block.
	for i := len(managedModels()) - 1; i >= 0; i-- {
		model := managedModels()[i]
		if err := db.DB.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tableNameFor(model), err)
		}
	}

	fmt.Println("Tables dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Database Schema Status")
	fmt.Println(strings.Repeat("=", 40))

	for _, model := range managedModels() {
		state := "missing"
		if db.DB.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Printf("  %-20s %s\n", tableNameFor(model), state)
	}

	return nil
}

func tableNameFor(model interface{}) string {
	if named, ok := model.(interface{ TableName() string }); ok {
		return named.TableName()
	}
	return fmt.Sprintf("%T", model)
}
