package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"blogicum-backend/internal/config"
	"blogicum-backend/migrations"
)

var (
	databaseURL string

	rootCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Blogicum database schema",
	}

	upCmd = &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				return ignoreNoChange(m.Up())
			})
		},
	}

	downCmd = &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (all when steps is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				if len(args) == 0 {
					return ignoreNoChange(m.Down())
				}
				steps, err := strconv.Atoi(args[0])
				if err != nil || steps <= 0 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				return ignoreNoChange(m.Steps(-steps))
			})
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("no migrations applied")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Printf("version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "postgres URL (defaults to DB_* env vars)")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withMigrator mở kết nối database/sql (lib/pq) và chạy fn trên migrator
func withMigrator(fn func(m *migrate.Migrate) error) error {
	dsn := databaseURL
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dsn = cfg.Database.DSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer m.Close()

	if err := fn(m); err != nil {
		return err
	}
	log.Println("✅ Done")
	return nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("no change")
		return nil
	}
	return err
}
