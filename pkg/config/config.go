// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates the process configuration. Values come
// from flags bound by the CLI, the GRANTD_* environment, and defaults, in
// that precedence. Invalid configuration fails startup; the server never
// runs on a partially valid config.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Viper keys. The CLI binds its flags to these; the environment overlays
// them with GRANTD_ plus the key uppercased (dots become underscores).
const (
	KeyDatabasePath        = "database_path"
	KeyListenAddress       = "listen_address"
	KeyRotateRefreshTokens = "rotate_refresh_tokens"
	KeyRevokeFamilyOnReuse = "revoke_family_on_reuse"
	KeySecretLength        = "secret_length"
	KeyHasherTime          = "hasher.time"
	KeyHasherMemoryKiB     = "hasher.memory_kib"
	KeyHasherParallelism   = "hasher.parallelism"
	KeyHasherMaxConcurrent = "hasher.max_concurrent"
)

const envPrefix = "GRANTD"

// HasherConfig holds the Argon2id cost parameters and the concurrency cap.
type HasherConfig struct {
	Time        uint32
	MemoryKiB   uint32
	Parallelism uint8
	// MaxConcurrent bounds simultaneous key derivations. Zero means derive
	// from GOMAXPROCS.
	MaxConcurrent int64
}

// Config is the validated process configuration.
type Config struct {
	// DatabasePath is the SQLite database file. Required.
	DatabasePath string
	// ListenAddress is the HTTP bind address.
	ListenAddress string
	// RotateRefreshTokens replaces the presented refresh token on every
	// refresh-token grant.
	RotateRefreshTokens bool
	// RevokeFamilyOnReuse revokes all tokens of a (client, user) pair when
	// a revoked refresh token is replayed.
	RevokeFamilyOnReuse bool
	// SecretLength is the byte length of generated tokens and secrets.
	SecretLength int
	// Hasher carries the Argon2id parameters.
	Hasher HasherConfig
}

// SetDefaults registers every configuration key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "")
	v.SetDefault(KeyListenAddress, "127.0.0.1:8087")
	v.SetDefault(KeyRotateRefreshTokens, true)
	v.SetDefault(KeyRevokeFamilyOnReuse, false)
	v.SetDefault(KeySecretLength, 32)
	v.SetDefault(KeyHasherTime, 3)
	v.SetDefault(KeyHasherMemoryKiB, 64*1024)
	v.SetDefault(KeyHasherParallelism, 1)
	v.SetDefault(KeyHasherMaxConcurrent, 0)
}

// Load reads the configuration from v, overlays the GRANTD_* environment,
// and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DatabasePath:        v.GetString(KeyDatabasePath),
		ListenAddress:       v.GetString(KeyListenAddress),
		RotateRefreshTokens: v.GetBool(KeyRotateRefreshTokens),
		RevokeFamilyOnReuse: v.GetBool(KeyRevokeFamilyOnReuse),
		SecretLength:        v.GetInt(KeySecretLength),
		Hasher: HasherConfig{
			Time:          v.GetUint32(KeyHasherTime),
			MemoryKiB:     v.GetUint32(KeyHasherMemoryKiB),
			Parallelism:   uint8(min(v.GetUint(KeyHasherParallelism), 255)), //nolint:gosec // clamped
			MaxConcurrent: v.GetInt64(KeyHasherMaxConcurrent),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%s is required", KeyDatabasePath)
	}
	if c.ListenAddress == "" {
		return fmt.Errorf("%s is required", KeyListenAddress)
	}
	if c.SecretLength < 32 {
		return fmt.Errorf("%s must be at least 32, got %d", KeySecretLength, c.SecretLength)
	}
	if c.Hasher.Time == 0 {
		return fmt.Errorf("%s must be positive", KeyHasherTime)
	}
	if c.Hasher.MemoryKiB == 0 {
		return fmt.Errorf("%s must be positive", KeyHasherMemoryKiB)
	}
	if c.Hasher.Parallelism == 0 {
		return fmt.Errorf("%s must be positive", KeyHasherParallelism)
	}
	if c.Hasher.MaxConcurrent < 0 {
		return fmt.Errorf("%s must not be negative", KeyHasherMaxConcurrent)
	}
	return nil
}
