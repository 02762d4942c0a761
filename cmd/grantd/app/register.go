// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quayside/grantd/pkg/config"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/registrar"
	"github.com/quayside/grantd/pkg/secrets"
	"github.com/quayside/grantd/pkg/storage/sqlite"
	"github.com/quayside/grantd/pkg/telemetry"
)

// newRegisterClientCmd creates the register-client command.
func newRegisterClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-client",
		Short: "Register an OAuth client",
		Long: `Register an OAuth client directly against the database and print the
provisioned record as JSON.

For confidential clients the record includes the generated client secret.
It is shown exactly once and never stored; only its Argon2id hash is kept.`,
		RunE: runRegisterClient,
	}

	cmd.Flags().String("user-id", "", "Owning user id")
	cmd.Flags().String("identifier", "", "Public client identifier")
	cmd.Flags().Bool("confidential", false, "Provision a confidential client with a generated secret")
	cmd.Flags().StringSlice("redirect-uri", nil, "Allowed redirect URI (repeatable)")
	cmd.Flags().StringSlice("grant-type", []string{"authorization_code", "refresh_token"},
		"Allowed grant type (repeatable)")
	cmd.Flags().StringSlice("scope", nil, "Grantable scope (repeatable)")
	cmd.Flags().Int64("access-token-ttl", 0, "Access token lifetime in seconds (0 for the default)")
	cmd.Flags().Int64("max-active-access-tokens", 0,
		"Active access tokens allowed per refresh token (0 for the default)")

	return cmd
}

// runRegisterClient implements the register-client command logic
func runRegisterClient(cmd *cobra.Command, _ []string) error {
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

	flags := cmd.Flags()
	req := registrar.RegistrationRequest{}
	req.UserID, _ = flags.GetString("user-id")
	req.ClientIdentifier, _ = flags.GetString("identifier")
	req.IsConfidential, _ = flags.GetBool("confidential")
	req.RedirectURIs, _ = flags.GetStringSlice("redirect-uri")
	req.GrantTypes, _ = flags.GetStringSlice("grant-type")
	req.Scopes, _ = flags.GetStringSlice("scope")
	req.AccessTokenTTL, _ = flags.GetInt64("access-token-ttl")
	req.MaxActiveAccessTokens, _ = flags.GetInt64("max-active-access-tokens")

	hasher := secrets.NewArgon2Hasher(
		secrets.WithParams(cfg.Hasher.Time, cfg.Hasher.MemoryKiB, cfg.Hasher.Parallelism))
	reg := registrar.New(store, secrets.NewGenerator(), hasher, clockwork.NewRealClock(),
		telemetry.NewMetrics(), registrar.WithSecretLength(cfg.SecretLength))

	res := reg.Register(ctx, uuid.NewString(), req)
	if res.Failed() {
		return fmt.Errorf("registration failed: %s", res.Message)
	}

	out, err := json.MarshalIndent(res.Value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling client record: %w", err)
	}
	cmd.Println(string(out))

	if res.Value.ClientSecret != "" {
		logger.Warn("the client secret above is shown once and cannot be recovered")
	}
	return nil
}
