package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mworkman/scheduleme/cmd/cli/commands"
	"github.com/mworkman/scheduleme/internal/config"
	"github.com/mworkman/scheduleme/pkg/csvstore"
	"github.com/mworkman/scheduleme/pkg/postgres"
	"github.com/mworkman/scheduleme/pkg/utils/logging"
)

var (
	env     string
	session string
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scheduleme",
		Short: "ScheduleMe CLI - Generate and inspect employee schedules",
		Long:  `A CLI tool for generating employee rosters, building rule-driven shift schedules across locations, and inspecting coverage.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Close != nil {
					app.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment name, prefixes log files")
	rootCmd.PersistentFlags().StringVarP(&session, "session", "s", "", "Session ID for the CSV store (new session when empty)")

	rootCmd.AddCommand(commands.GenerateEmployeesCmd(appRef))
	rootCmd.AddCommand(commands.RunSchedulerCmd(appRef))
	rootCmd.AddCommand(commands.ViewScheduleCmd(appRef))
	rootCmd.AddCommand(commands.ViewCoverageCmd(appRef))
	rootCmd.AddCommand(commands.ListEmployeesCmd(appRef))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef defers AppContext access until after PersistentPreRunE has run
func appRef() *commands.AppContext {
	return app
}

// initApp sets up the logger, configuration and store
func initApp() error {
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	app = &commands.AppContext{
		Cfg:    cfg,
		Logger: logger,
		Ctx:    ctx,
	}

	if cfg.DatabaseURL != "" {
		database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(ctx); err != nil {
			database.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Store = database
		app.Close = database.Close
		logger.Debug("using postgres store")
		return nil
	}

	store := csvstore.NewStore(cfg.DataDir, session)
	app.Store = store
	logger.Debug("using csv store",
		zap.String("data_dir", cfg.DataDir),
		zap.String("session_id", store.SessionID()))
	fmt.Printf("Session: %s\n", store.SessionID())
	return nil
}
