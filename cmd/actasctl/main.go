// Command actasctl is the operator CLI: schema migrations, moderator
// overrides, acta maintenance and development tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	"github.com/heartmarshall/actas-backend/internal/app"
	"github.com/heartmarshall/actas-backend/internal/config"
)

const programName = "actasctl"

func timeNow() time.Time { return time.Now().UTC() }

// env is populated by the root command before any subcommand runs.
var env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	var configPath string
	root := &cobra.Command{
		Use:           programName,
		Short:         "Operate the tally-sheet verification backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				configPath = os.Getenv("CONFIG_PATH")
			}
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			env.cfg = cfg
			env.logger = app.NewLogger(cfg.Log).With("component", programName)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		migrateCommand(),
		moderatorCommand(),
		actaCommand(),
		leaseCommand(),
		tokenCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withContainer connects to the database, wires the services and runs fn.
func withContainer(ctx context.Context, fn func(ctx context.Context, c *app.Container) error) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, env.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, app.Wire(env.cfg, env.logger, pool))
}
