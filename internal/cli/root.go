// Package cli implements the quadro command line interface. Commands load
// the persisted collections, run one engine operation, and flush the
// result back to storage.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadro-app/quadro/internal/config"
	"github.com/quadro-app/quadro/internal/factory"
	"github.com/quadro-app/quadro/internal/model"
	redisstorage "github.com/quadro-app/quadro/internal/storage/redis"
)

var (
	cfg   *config.Config
	app   *factory.App
	actor string
	// actorAccount is resolved from actor during pre-run when the
	// username is registered; unregistered actors still get audited,
	// with an empty role.
	actorAccount *model.Account

	outputFormat string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadro",
		Short: "Scoring and lifecycle engine for the designer evaluation panel",
		Long: `quadro manages the evaluation panel: rooms and seats, designer
scoring and history, coordinator evaluation consolidation, rankings, and
the inactive roster.

Configuration is read from defaults, an optional YAML file (QUADRO_CONFIG),
and QUADRO_* environment variables.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}

			logger := newLogger(cfg.LogLevel)

			factoryCfg := factory.Config{
				Logger:    logger,
				Bootstrap: cfg.Bootstrap,
			}
			switch cfg.Storage {
			case config.StorageRedis:
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				redisCfg.PoolSize = cfg.RedisPoolSize
				redisCfg.AuditMaxEntries = cfg.AuditMaxEntries
				factoryCfg.StorageType = factory.StorageTypeRedis
				factoryCfg.RedisConfig = &redisCfg
			default:
				factoryCfg.StorageType = factory.StorageTypeMemory
			}

			app, err = factory.New(cmd.Context(), factoryCfg)
			if err != nil {
				return err
			}

			if actor != "" {
				if account, err := app.Auth.Get(actor); err == nil {
					actorAccount = &account
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&actor, "actor", "", "Username performing the operation (audited)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json")

	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newDesignerCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newRankingCmd())
	rootCmd.AddCommand(newCriteriaCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newAuditCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// requireActor guards mutating commands
func requireActor() error {
	if actor == "" {
		return fmt.Errorf("--actor is required for this command")
	}
	return nil
}

// persist records the audit entry and flushes every collection. Mutating
// commands call it exactly once, after the engine operation succeeded.
func persist(ctx context.Context, action, details string) error {
	var role model.Role
	if actorAccount != nil {
		role = actorAccount.Role
	}
	if err := app.Audit.Record(ctx, actor, role, action, details); err != nil {
		return err
	}
	return app.Flush(ctx)
}
