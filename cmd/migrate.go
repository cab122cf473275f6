package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauiplayer/radio-api/internal/database"
	"github.com/mauiplayer/radio-api/internal/models"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema of the Radio API.

The server migrates on startup; these subcommands let the schema be
applied or inspected ahead of a deploy.

Available subcommands:
  up      - Apply the schema of every model
  status  - Show which model tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the database schema",
	Long: `Apply the database schema of every model.

Missing tables, columns and indexes are created; existing data is kept.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

Every model table is listed as present or missing.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("db", "", "database path (overrides config)")
	migrateUpCmd.Flags().Bool("dry-run", false, "show what would be done without making changes")
}

// openDatabase opens the configured database, or the one named by --db
func openDatabase(cmd *cobra.Command) (*database.DB, error) {
	path, _ := cmd.Flags().GetString("db")
	verbose := false

	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		setupLogging(cmd, cfg)
		path = cfg.Database.Path
		verbose = cfg.Database.Verbose
	}

	return database.Initialize(path, verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, name := range modelTables() {
			fmt.Fprintf(out, "  would migrate %s\n", name)
		}
		return nil
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Migrated %d model(s)\n", len(models.All()))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	migrator := db.DB.Migrator()
	for _, model := range models.All() {
		state := "missing"
		if migrator.HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-20s %s\n", tableName(db, model), state)
	}

	return nil
}

func modelTables() []string {
	names := make([]string, 0, len(models.All()))
	for _, model := range models.All() {
		names = append(names, fmt.Sprintf("%T", model))
	}
	return names
}

func tableName(db *database.DB, model any) string {
	stmt := db.DB.Model(model).Statement
	if err := stmt.Parse(model); err != nil || stmt.Schema == nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}
