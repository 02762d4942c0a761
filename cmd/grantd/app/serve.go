// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quayside/grantd/pkg/config"
	"github.com/quayside/grantd/pkg/flow"
	"github.com/quayside/grantd/pkg/grants"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/registrar"
	"github.com/quayside/grantd/pkg/secrets"
	"github.com/quayside/grantd/pkg/server"
	"github.com/quayside/grantd/pkg/storage/sqlite"
	"github.com/quayside/grantd/pkg/telemetry"
	"github.com/quayside/grantd/pkg/versions"
)

// newServeCmd creates the serve command for starting the authorization server.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the authorization server",
		Long: `Start the authorization server and serve the token, client administration,
health, and metrics endpoints until interrupted.

All settings can also be supplied as GRANTD_* environment variables, for
example GRANTD_DATABASE_PATH or GRANTD_LISTEN_ADDRESS.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", "", "Address to listen on (host:port)")
	if err := viper.BindPFlag(config.KeyListenAddress, cmd.Flags().Lookup("address")); err != nil {
		logger.Errorf("Error binding address flag: %v", err)
	}

	cmd.Flags().Bool("rotate-refresh-tokens", true, "Replace the refresh token on every use")
	if err := viper.BindPFlag(config.KeyRotateRefreshTokens, cmd.Flags().Lookup("rotate-refresh-tokens")); err != nil {
		logger.Errorf("Error binding rotate-refresh-tokens flag: %v", err)
	}

	cmd.Flags().Bool("revoke-family-on-reuse", false,
		"Revoke the whole token family when a revoked refresh token is replayed")
	if err := viper.BindPFlag(config.KeyRevokeFamilyOnReuse, cmd.Flags().Lookup("revoke-family-on-reuse")); err != nil {
		logger.Errorf("Error binding revoke-family-on-reuse flag: %v", err)
	}

	return cmd
}

// runServe implements the serve command logic
func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	store, err := sqlite.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorw("closing storage", "error", err)
		}
	}()

	logger.Infow("grantd starting",
		"version", versions.GetVersionInfo().Version,
		"address", cfg.ListenAddress,
		"database", cfg.DatabasePath,
		"rotate_refresh_tokens", cfg.RotateRefreshTokens,
		"revoke_family_on_reuse", cfg.RevokeFamilyOnReuse)

	return server.Serve(ctx, cfg.ListenAddress, buildDependencies(store, cfg))
}

// buildDependencies wires the dependency record the server runs on. Every
// collaborator is constructed here, once; nothing hides behind a package
// singleton.
func buildDependencies(store *sqlite.Store, cfg *config.Config) server.Dependencies {
	hasherOpts := []secrets.HasherOption{
		secrets.WithParams(cfg.Hasher.Time, cfg.Hasher.MemoryKiB, cfg.Hasher.Parallelism),
	}
	if cfg.Hasher.MaxConcurrent > 0 {
		hasherOpts = append(hasherOpts, secrets.WithMaxConcurrent(cfg.Hasher.MaxConcurrent))
	}
	hasher := secrets.NewArgon2Hasher(hasherOpts...)
	generator := secrets.NewGenerator()
	clock := clockwork.NewRealClock()
	metrics := telemetry.NewMetrics()

	grant := grants.NewRefreshTokenGrant(store, hasher, generator, clock, metrics, grants.Policy{
		RotateRefreshTokens: cfg.RotateRefreshTokens,
		RevokeFamilyOnReuse: cfg.RevokeFamilyOnReuse,
		TokenLength:         cfg.SecretLength,
	})

	return server.Dependencies{
		Engine:    flow.NewEngine(store, metrics, clock, grant),
		Registrar: registrar.New(store, generator, hasher, clock, metrics, registrar.WithSecretLength(cfg.SecretLength)),
		Metrics:   metrics,
		Store:     store,
	}
}
