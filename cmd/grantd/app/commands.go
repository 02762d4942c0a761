// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the grantd command-line
// application.
package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quayside/grantd/pkg/config"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/versions"
)

var rootCmd = &cobra.Command{
	Use:               "grantd",
	DisableAutoGenTag: true,
	Short:             "OAuth 2.0 authorization server with opaque tokens",
	Long: `grantd is an OAuth 2.0 authorization server. It issues opaque access
tokens against rotating refresh tokens, enforces per-token quotas, and keeps
an append-only audit trail of every security-relevant event.

Client secrets and tokens are stored only as Argon2id hashes or opaque
values; plaintext secrets are shown exactly once, at registration.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Initialize()
	},
}

// NewRootCmd creates a new root command for the grantd CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database file")
	if err := viper.BindPFlag(config.KeyDatabasePath, rootCmd.PersistentFlags().Lookup("db")); err != nil {
		logger.Errorf("Error binding db flag: %v", err)
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRegisterClientCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Silence printing the usage on error
	rootCmd.SilenceUsage = true

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display version information for grantd",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			info := versions.GetVersionInfo()
			if asJSON {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				cmd.Println(string(out))
				return nil
			}
			cmd.Printf("grantd %s (commit %s, built %s, %s, %s)\n",
				info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output version information as JSON")
	return cmd
}
