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

type accessTokenStore struct {
	s *Store
}

var _ storage.AccessTokenStore = (*accessTokenStore)(nil)

const accessTokenColumns = `id, token, client_id, user_id, scopes,
	refresh_token_id, expires_at, revoked_at, created_at`

// Insert stores a new access token.
func (a *accessTokenStore) Insert(ctx context.Context, rayID string, token *core.AccessToken) core.Result {
	_, err := a.s.q.ExecContext(ctx, `
		INSERT INTO oauth_access_tokens (
			id, token, client_id, user_id, scopes,
			refresh_token_id, expires_at, revoked_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		token.ID,
		token.Token,
		token.ClientID,
		nullableText(token.UserID),
		nullableText(joinList(token.Scopes)),
		nullableText(token.RefreshTokenID),
		token.ExpiresAt,
		nullableStamp(token.RevokedAt),
		token.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Failure(rayID, storage.CodeInsertFailed, "access token already exists")
		}
		logger.Errorw("inserting access token", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not store access token")
	}
	return core.Success(rayID)
}

// GetByToken retrieves an access token by its value.
func (a *accessTokenStore) GetByToken(ctx context.Context, rayID, token string) core.ValueResult[*core.AccessToken] {
	row := a.s.q.QueryRowContext(ctx,
		`SELECT `+accessTokenColumns+` FROM oauth_access_tokens WHERE token = ?`, token)

	at, err := scanAccessToken(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FailureOf[*core.AccessToken](rayID, storage.CodeNotFound, "access token not found")
	}
	if err != nil {
		logger.Errorw("fetching access token", "ray_id", rayID, "error", err)
		return core.FailureOf[*core.AccessToken](rayID, storage.CodeFetchFailed, "could not fetch access token")
	}
	return core.SuccessOf(rayID, at)
}

// Revoke stamps revoked_at on a live token.
func (a *accessTokenStore) Revoke(ctx context.Context, rayID, id string, now int64) core.Result {
	res, err := a.s.q.ExecContext(ctx,
		`UPDATE oauth_access_tokens SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`,
		now, id)
	if err != nil {
		logger.Errorw("revoking access token", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not revoke access token")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not revoke access token")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeUpdateFailed, "access token is not active")
	}
	return core.Success(rayID)
}

// CountActiveByRefreshToken counts live tokens issued under a refresh token.
func (a *accessTokenStore) CountActiveByRefreshToken(ctx context.Context, rayID, refreshTokenID string, now int64) core.ValueResult[int64] {
	var count int64
	err := a.s.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM oauth_access_tokens
		WHERE refresh_token_id = ? AND revoked_at IS NULL AND expires_at > ?`,
		refreshTokenID, now,
	).Scan(&count)
	if err != nil {
		logger.Errorw("counting active access tokens", "ray_id", rayID, "error", err)
		return core.FailureOf[int64](rayID, storage.CodeFetchFailed, "could not count access tokens")
	}
	return core.SuccessOf(rayID, count)
}

// OldestActiveByRefreshToken returns the FIFO eviction candidate.
func (a *accessTokenStore) OldestActiveByRefreshToken(ctx context.Context, rayID, refreshTokenID string, now int64) core.ValueResult[*core.AccessToken] {
	row := a.s.q.QueryRowContext(ctx, `
		SELECT `+accessTokenColumns+` FROM oauth_access_tokens
		WHERE refresh_token_id = ? AND revoked_at IS NULL AND expires_at > ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1`,
		refreshTokenID, now)

	at, err := scanAccessToken(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FailureOf[*core.AccessToken](rayID, storage.CodeNotFound, "no active access token")
	}
	if err != nil {
		logger.Errorw("fetching oldest access token", "ray_id", rayID, "error", err)
		return core.FailureOf[*core.AccessToken](rayID, storage.CodeFetchFailed, "could not fetch access token")
	}
	return core.SuccessOf(rayID, at)
}

// RevokeAllForClientUser stamps every live token for the pair.
func (a *accessTokenStore) RevokeAllForClientUser(ctx context.Context, rayID, clientID, userID string, now int64) core.ValueResult[int64] {
	res, err := a.s.q.ExecContext(ctx, `
		UPDATE oauth_access_tokens SET revoked_at = ?
		WHERE client_id = ? AND user_id = ? AND revoked_at IS NULL`,
		now, clientID, userID)
	if err != nil {
		logger.Errorw("revoking access tokens for client/user", "ray_id", rayID, "error", err)
		return core.FailureOf[int64](rayID, storage.CodeUpdateFailed, "could not revoke access tokens")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("reading revocation count", "ray_id", rayID, "error", err)
		return core.FailureOf[int64](rayID, storage.CodeUpdateFailed, "could not revoke access tokens")
	}
	return core.SuccessOf(rayID, n)
}

func scanAccessToken(row scanner) (*core.AccessToken, error) {
	var (
		at             core.AccessToken
		userID         sql.NullString
		scopes         sql.NullString
		refreshTokenID sql.NullString
		revokedAt      sql.NullInt64
	)
	if err := row.Scan(
		&at.ID,
		&at.Token,
		&at.ClientID,
		&userID,
		&scopes,
		&refreshTokenID,
		&at.ExpiresAt,
		&revokedAt,
		&at.CreatedAt,
	); err != nil {
		return nil, err
	}
	at.UserID = userID.String
	at.Scopes = splitList(scopes.String)
	at.RefreshTokenID = refreshTokenID.String
	at.RevokedAt = stampPtr(revokedAt)
	return &at, nil
}
