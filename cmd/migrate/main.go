package main

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/propertyhub/backend/internal/infrastructure/config"
	"github.com/propertyhub/backend/internal/infrastructure/logger"
	"github.com/propertyhub/backend/internal/infrastructure/migration"
	"github.com/propertyhub/backend/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	dir      string
	logLevel string
}

func main() {
	_ = godotenv.Load()

	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "PropertyHub database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.dir, "path", "", "read migrations from this directory instead of the embedded set")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		upCmd(opts),
		downCmd(opts),
		stepsCmd(opts),
		versionCmd(opts),
		forceCmd(opts),
		createCmd(opts),
		listCmd(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func upCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(opts, func(m *migration.Migrator, _ *zap.Logger) error {
				return m.Up()
			})
		},
	}
}

func downCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(opts, func(m *migration.Migrator, _ *zap.Logger) error {
				return m.Down()
			})
		},
	}
}

func stepsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "steps <n>",
		Short: "Apply n migrations (negative rolls back)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return withMigrator(opts, func(m *migration.Migrator, _ *zap.Logger) error {
				return m.Steps(n)
			})
		},
	}
}

func versionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(opts, func(m *migration.Migrator, log *zap.Logger) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if version == 0 {
					log.Info("No migrations applied")
					return nil
				}
				log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
				if dirty {
					log.Warn("Database is dirty; fix the failed migration and run 'force <version>'")
				}
				return nil
			})
		},
	}
}

func forceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Set the version without running migrations (repairs a dirty state)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return withMigrator(opts, func(m *migration.Migrator, _ *zap.Logger) error {
				return m.Force(version)
			})
		},
	}
}

func createCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty up/down migration pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.dir
			if dir == "" {
				dir = "migrations"
			}
			mf, err := migration.CreateMigration(dir, args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Created %s\n        %s\n", mf.UpPath, mf.DownPath)
			return nil
		},
	}
}

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				list []migration.MigrationInfo
				err  error
			)
			if opts.dir != "" {
				list, err = migration.ListMigrations(os.DirFS(opts.dir))
			} else {
				list, err = migration.ListMigrations(migrations.FS)
			}
			if err != nil {
				return err
			}
			if len(list) == 0 {
				cmd.Println("No migrations found")
				return nil
			}
			for _, m := range list {
				cmd.Printf("  %06d  %s\n", m.Version, m.Name)
			}
			return nil
		},
	}
}

// withMigrator connects to the configured database and runs fn
func withMigrator(opts *options, fn func(m *migration.Migrator, log *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := cfg.Log
	logCfg.Level = opts.logLevel
	logCfg.Format = "console"
	log := logger.New(logCfg)
	defer func() { _ = log.Sync() }()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	var m *migration.Migrator
	if opts.dir != "" {
		m, err = migration.NewWithDir(db, opts.dir, log)
	} else {
		m, err = migration.New(db, log)
	}
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m, log)
}
