// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/storage"
)

type clientConfigStore struct {
	s *Store
}

var _ storage.ClientConfigStore = (*clientConfigStore)(nil)

const clientConfigColumns = `client_id, response_types, require_pkce, pkce_methods,
	access_token_ttl, refresh_token_ttl, authorization_code_ttl,
	device_code_ttl, device_poll_interval,
	max_active_access_tokens, max_active_refresh_tokens, metadata,
	created_at, created_by, updated_at, updated_by`

// Insert stores a new client config.
func (c *clientConfigStore) Insert(ctx context.Context, rayID string, config *core.ClientConfig) core.Result {
	metadata := config.Metadata
	if metadata == "" {
		metadata = "{}"
	}
	_, err := c.s.q.ExecContext(ctx, `
		INSERT INTO oauth_client_configs (
			client_id, response_types, require_pkce, pkce_methods,
			access_token_ttl, refresh_token_ttl, authorization_code_ttl,
			device_code_ttl, device_poll_interval,
			max_active_access_tokens, max_active_refresh_tokens, metadata,
			created_at, created_by, updated_at, updated_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		config.ClientID,
		joinList(config.ResponseTypes),
		boolToInt(config.RequirePKCE),
		joinList(config.PKCEMethods),
		config.AccessTokenTTL,
		config.RefreshTokenTTL,
		config.AuthorizationCodeTTL,
		config.DeviceCodeTTL,
		config.DevicePollInterval,
		config.MaxActiveAccessTokens,
		config.MaxActiveRefreshTokens,
		metadata,
		config.CreatedAt,
		config.CreatedBy,
		config.UpdatedAt,
		config.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Failure(rayID, storage.CodeInsertFailed, "client config already exists")
		}
		logger.Errorw("inserting client config", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not store client config")
	}
	return core.Success(rayID)
}

// GetByClientID retrieves the config for a client.
func (c *clientConfigStore) GetByClientID(ctx context.Context, rayID, clientID string) core.ValueResult[*core.ClientConfig] {
	row := c.s.q.QueryRowContext(ctx,
		`SELECT `+clientConfigColumns+` FROM oauth_client_configs WHERE client_id = ?`, clientID)

	config, err := scanClientConfig(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FailureOf[*core.ClientConfig](rayID, storage.CodeNotFound, "client config not found")
	}
	if err != nil {
		logger.Errorw("fetching client config", "ray_id", rayID, "error", err)
		return core.FailureOf[*core.ClientConfig](rayID, storage.CodeFetchFailed, "could not fetch client config")
	}
	return core.SuccessOf(rayID, config)
}

// Update rewrites the config row.
func (c *clientConfigStore) Update(ctx context.Context, rayID string, config *core.ClientConfig) core.Result {
	res, err := c.s.q.ExecContext(ctx, `
		UPDATE oauth_client_configs SET
			response_types = ?, require_pkce = ?, pkce_methods = ?,
			access_token_ttl = ?, refresh_token_ttl = ?, authorization_code_ttl = ?,
			device_code_ttl = ?, device_poll_interval = ?,
			max_active_access_tokens = ?, max_active_refresh_tokens = ?, metadata = ?,
			updated_at = ?, updated_by = ?
		WHERE client_id = ?`,
		joinList(config.ResponseTypes),
		boolToInt(config.RequirePKCE),
		joinList(config.PKCEMethods),
		config.AccessTokenTTL,
		config.RefreshTokenTTL,
		config.AuthorizationCodeTTL,
		config.DeviceCodeTTL,
		config.DevicePollInterval,
		config.MaxActiveAccessTokens,
		config.MaxActiveRefreshTokens,
		config.Metadata,
		config.UpdatedAt,
		config.UpdatedBy,
		config.ClientID,
	)
	if err != nil {
		logger.Errorw("updating client config", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update client config")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update client config")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeNotFound, "client config not found")
	}
	return core.Success(rayID)
}

// Delete removes the config row.
func (c *clientConfigStore) Delete(ctx context.Context, rayID, clientID string) core.Result {
	res, err := c.s.q.ExecContext(ctx, `DELETE FROM oauth_client_configs WHERE client_id = ?`, clientID)
	if err != nil {
		logger.Errorw("deleting client config", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete client config")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete client config")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeNotFound, "client config not found")
	}
	return core.Success(rayID)
}

func scanClientConfig(row scanner) (*core.ClientConfig, error) {
	var (
		config        core.ClientConfig
		responseTypes string
		requirePKCE   int64
		pkceMethods   string
	)
	if err := row.Scan(
		&config.ClientID,
		&responseTypes,
		&requirePKCE,
		&pkceMethods,
		&config.AccessTokenTTL,
		&config.RefreshTokenTTL,
		&config.AuthorizationCodeTTL,
		&config.DeviceCodeTTL,
		&config.DevicePollInterval,
		&config.MaxActiveAccessTokens,
		&config.MaxActiveRefreshTokens,
		&config.Metadata,
		&config.CreatedAt,
		&config.CreatedBy,
		&config.UpdatedAt,
		&config.UpdatedBy,
	); err != nil {
		return nil, err
	}

	config.ResponseTypes = splitList(responseTypes)
	config.RequirePKCE = requirePKCE != 0
	config.PKCEMethods = splitList(pkceMethods)
	return &config, nil
}
