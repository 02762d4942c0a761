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

type clientStore struct {
	s *Store
}

var _ storage.ClientStore = (*clientStore)(nil)

const clientColumns = `id, client_identifier, client_secret_hash, is_confidential,
	redirect_uris, grant_types, scopes, is_enabled,
	created_at, created_by, updated_at, updated_by`

// Insert stores a new client identity.
func (c *clientStore) Insert(ctx context.Context, rayID string, client *core.Client) core.Result {
	_, err := c.s.q.ExecContext(ctx, `
		INSERT INTO oauth_clients (
			id, client_identifier, client_secret_hash, is_confidential,
			redirect_uris, grant_types, scopes, is_enabled,
			created_at, created_by, updated_at, updated_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID,
		client.ClientIdentifier,
		nullableText(client.SecretHash),
		boolToInt(client.IsConfidential),
		joinList(client.RedirectURIs),
		joinList(client.GrantTypes),
		joinList(client.Scopes),
		boolToInt(client.IsEnabled),
		client.CreatedAt,
		client.CreatedBy,
		client.UpdatedAt,
		client.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Warnw("duplicate client identifier", "ray_id", rayID, "client_identifier", client.ClientIdentifier)
			return core.Failure(rayID, storage.CodeInsertFailed, storage.MsgDuplicateClientIdentifier)
		}
		logger.Errorw("inserting client", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not store client")
	}
	return core.Success(rayID)
}

// InsertWithConfig stores identity and config in one transaction.
func (c *clientStore) InsertWithConfig(ctx context.Context, rayID string, client *core.Client, config *core.ClientConfig) core.Result {
	res := core.Success(rayID)
	err := c.s.InTx(ctx, func(txs storage.Store) error {
		if r := txs.Clients().Insert(ctx, rayID, client); r.Failed() {
			res = r
			return errEnvelope
		}
		if r := txs.ClientConfigs().Insert(ctx, rayID, config); r.Failed() {
			res = r
			return errEnvelope
		}
		return nil
	})
	if err != nil && !errors.Is(err, errEnvelope) {
		logger.Errorw("client registration transaction", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not store client")
	}
	return res
}

// GetByID retrieves a client by primary key.
func (c *clientStore) GetByID(ctx context.Context, rayID, id string) core.ValueResult[*core.Client] {
	row := c.s.q.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM oauth_clients WHERE id = ?`, id)
	return c.scanOne(row, rayID)
}

// GetByClientIdentifier retrieves a client by its public identifier.
func (c *clientStore) GetByClientIdentifier(ctx context.Context, rayID, identifier string) core.ValueResult[*core.Client] {
	row := c.s.q.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM oauth_clients WHERE client_identifier = ?`, identifier)
	return c.scanOne(row, rayID)
}

func (*clientStore) scanOne(row scanner, rayID string) core.ValueResult[*core.Client] {
	client, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FailureOf[*core.Client](rayID, storage.CodeNotFound, "client not found")
	}
	if err != nil {
		logger.Errorw("fetching client", "ray_id", rayID, "error", err)
		return core.FailureOf[*core.Client](rayID, storage.CodeFetchFailed, "could not fetch client")
	}
	return core.SuccessOf(rayID, client)
}

// Update rewrites the identity row.
func (c *clientStore) Update(ctx context.Context, rayID string, client *core.Client) core.Result {
	res, err := c.s.q.ExecContext(ctx, `
		UPDATE oauth_clients SET
			client_identifier = ?, client_secret_hash = ?, is_confidential = ?,
			redirect_uris = ?, grant_types = ?, scopes = ?, is_enabled = ?,
			updated_at = ?, updated_by = ?
		WHERE id = ?`,
		client.ClientIdentifier,
		nullableText(client.SecretHash),
		boolToInt(client.IsConfidential),
		joinList(client.RedirectURIs),
		joinList(client.GrantTypes),
		joinList(client.Scopes),
		boolToInt(client.IsEnabled),
		client.UpdatedAt,
		client.UpdatedBy,
		client.ID,
	)
	if err != nil {
		logger.Errorw("updating client", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update client")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update client")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeNotFound, "client not found")
	}
	return core.Success(rayID)
}

// Delete removes the identity row; the config row cascades.
func (c *clientStore) Delete(ctx context.Context, rayID, id string) core.Result {
	res, err := c.s.q.ExecContext(ctx, `DELETE FROM oauth_clients WHERE id = ?`, id)
	if err != nil {
		logger.Errorw("deleting client", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete client")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete client")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeNotFound, "client not found")
	}
	return core.Success(rayID)
}

func scanClient(row scanner) (*core.Client, error) {
	var (
		client         core.Client
		secretHash     sql.NullString
		redirectURIs   string
		grantTypes     string
		scopes         string
		isConfidential int64
		isEnabled      int64
	)
	if err := row.Scan(
		&client.ID,
		&client.ClientIdentifier,
		&secretHash,
		&isConfidential,
		&redirectURIs,
		&grantTypes,
		&scopes,
		&isEnabled,
		&client.CreatedAt,
		&client.CreatedBy,
		&client.UpdatedAt,
		&client.UpdatedBy,
	); err != nil {
		return nil, err
	}

	client.SecretHash = secretHash.String
	client.IsConfidential = isConfidential != 0
	client.RedirectURIs = splitList(redirectURIs)
	client.GrantTypes = splitList(grantTypes)
	client.Scopes = splitList(scopes)
	client.IsEnabled = isEnabled != 0
	return &client, nil
}
