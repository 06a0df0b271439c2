package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"appraisal/internal/auth"
	"appraisal/internal/cache"
	"appraisal/internal/config"
	"appraisal/internal/db"
	"appraisal/internal/logger"
	"appraisal/internal/repository"
	"appraisal/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the sample faculty, evaluator and student accounts",
		Long: "Migrates the configured database and registers the sample users " +
			"(john, jane, mike) when no users exist yet.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), reset)
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "drop all tables before seeding")
	return cmd
}

func run(ctx context.Context, reset bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.Info().Str("driver", cfg.DBDriver).Msg("starting seed")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Error().Err(err).Msg("connect to database")
		return err
	}
	defer db.Close(gormDB)

	if reset {
		logger.Warn().Msg("dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Error().Err(err).Msg("reset database")
			return err
		}
		if cfg.RedisOn {
			rc := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
			n, err := service.ClearCachedState(ctx, rc)
			if err != nil {
				logger.Warn().Err(err).Msg("clear cached state")
			}
			logger.Info().Int("keys", n).Msg("cached state cleared")
			_ = rc.Close()
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Error().Err(err).Msg("migrate database")
		return err
	}

	// Registration never touches the token store, so no cache is wired.
	identity := service.NewIdentityService(
		repository.NewUserRepository(gormDB),
		auth.NewJWTService(cfg.JWTSecret),
		auth.NewTokenStore(nil),
		nil,
	)

	created, err := identity.SeedSampleUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("seed sample users")
		return err
	}
	if created == 0 {
		logger.Info().Msg("users already present, nothing to seed")
		return nil
	}

	for _, u := range service.SampleUsers {
		logger.Info().Str("username", u.Username).Str("role", string(u.Role)).Msg("sample user")
	}
	logger.Info().Int("created", created).Msg("seed completed")
	return nil
}
