// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/grantd/pkg/config"
	"github.com/quayside/grantd/pkg/registrar"
	"github.com/quayside/grantd/pkg/storage/sqlite"
	"github.com/quayside/grantd/pkg/versions"
)

func TestVersionCommandJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--json"})
	require.NoError(t, cmd.Execute())

	var info versions.VersionInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info), "output: %s", out.String())
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}

func TestBuildDependencies(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(t.Context(), filepath.Join(t.TempDir(), "deps-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{
		DatabasePath:        "unused-here",
		ListenAddress:       "127.0.0.1:0",
		RotateRefreshTokens: true,
		SecretLength:        32,
		Hasher: config.HasherConfig{
			Time:        1,
			MemoryKiB:   64,
			Parallelism: 1,
		},
	}

	deps := buildDependencies(store, cfg)
	assert.NotNil(t, deps.Engine)
	assert.NotNil(t, deps.Registrar)
	assert.NotNil(t, deps.Metrics)
	assert.NotNil(t, deps.Store)
}

func TestRegisterClientCommand(t *testing.T) { //nolint:paralleltest // reads the global viper via env
	dbPath := filepath.Join(t.TempDir(), "register-test.db")
	t.Setenv("GRANTD_DATABASE_PATH", dbPath)
	t.Setenv("GRANTD_HASHER_TIME", "1")
	t.Setenv("GRANTD_HASHER_MEMORY_KIB", "64")

	var out bytes.Buffer
	cmd := newRegisterClientCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--user-id", "user_123",
		"--identifier", "cli-tool",
		"--confidential",
		"--redirect-uri", "https://cli.example/cb",
	})
	require.NoError(t, cmd.ExecuteContext(t.Context()))

	var view registrar.RegisteredClient
	require.NoError(t, json.Unmarshal(out.Bytes(), &view), "output: %s", out.String())
	assert.Equal(t, "cli-tool", view.ClientIdentifier)
	assert.NotEmpty(t, view.ClientSecret, "one-time secret should be printed")
	assert.True(t, view.IsConfidential)

	// The record must be in the database, sans plaintext.
	store, err := sqlite.Open(t.Context(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	res := store.Clients().GetByClientIdentifier(t.Context(), "ray-verify", "cli-tool")
	require.False(t, res.Failed(), res.Message)
	assert.NotEmpty(t, res.Value.SecretHash)
	assert.NotContains(t, res.Value.SecretHash, view.ClientSecret)
}
