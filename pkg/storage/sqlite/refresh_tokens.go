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

type refreshTokenStore struct {
	s *Store
}

var _ storage.RefreshTokenStore = (*refreshTokenStore)(nil)

const refreshTokenColumns = `id, token, client_id, user_id, scopes,
	revoked_at, created_at, updated_at`

// Insert stores a new refresh token.
func (r *refreshTokenStore) Insert(ctx context.Context, rayID string, token *core.RefreshToken) core.Result {
	_, err := r.s.q.ExecContext(ctx, `
		INSERT INTO oauth_refresh_tokens (
			id, token, client_id, user_id, scopes,
			revoked_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		token.ID,
		token.Token,
		token.ClientID,
		token.UserID,
		nullableText(joinList(token.Scopes)),
		nullableStamp(token.RevokedAt),
		token.CreatedAt,
		token.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Failure(rayID, storage.CodeInsertFailed, "refresh token already exists")
		}
		logger.Errorw("inserting refresh token", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not store refresh token")
	}
	return core.Success(rayID)
}

// GetByToken retrieves a refresh token by its value.
func (r *refreshTokenStore) GetByToken(ctx context.Context, rayID, token string) core.ValueResult[*core.RefreshToken] {
	row := r.s.q.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM oauth_refresh_tokens WHERE token = ?`, token)

	rt, err := scanRefreshToken(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FailureOf[*core.RefreshToken](rayID, storage.CodeNotFound, "refresh token not found")
	}
	if err != nil {
		logger.Errorw("fetching refresh token", "ray_id", rayID, "error", err)
		return core.FailureOf[*core.RefreshToken](rayID, storage.CodeFetchFailed, "could not fetch refresh token")
	}
	return core.SuccessOf(rayID, rt)
}

// Revoke stamps revoked_at where it is still NULL. Under concurrent rotation
// exactly one caller sees success; everyone else gets UPDATE_FAILED.
func (r *refreshTokenStore) Revoke(ctx context.Context, rayID, id string, now int64) core.Result {
	res, err := r.s.q.ExecContext(ctx,
		`UPDATE oauth_refresh_tokens SET revoked_at = ?, updated_at = ? WHERE id = ? AND revoked_at IS NULL`,
		now, now, id)
	if err != nil {
		logger.Errorw("revoking refresh token", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not revoke refresh token")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not revoke refresh token")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeUpdateFailed, "refresh token is no longer active")
	}
	return core.Success(rayID)
}

// Touch bumps updated_at on a live token (rotation disabled path).
func (r *refreshTokenStore) Touch(ctx context.Context, rayID, id string, now int64) core.Result {
	res, err := r.s.q.ExecContext(ctx,
		`UPDATE oauth_refresh_tokens SET updated_at = ? WHERE id = ? AND revoked_at IS NULL`,
		now, id)
	if err != nil {
		logger.Errorw("touching refresh token", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update refresh token")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update refresh token")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeUpdateFailed, "refresh token is no longer active")
	}
	return core.Success(rayID)
}

// RevokeAllForClientUser stamps every live refresh token for the pair.
func (r *refreshTokenStore) RevokeAllForClientUser(ctx context.Context, rayID, clientID, userID string, now int64) core.ValueResult[int64] {
	res, err := r.s.q.ExecContext(ctx, `
		UPDATE oauth_refresh_tokens SET revoked_at = ?, updated_at = ?
		WHERE client_id = ? AND user_id = ? AND revoked_at IS NULL`,
		now, now, clientID, userID)
	if err != nil {
		logger.Errorw("revoking refresh tokens for client/user", "ray_id", rayID, "error", err)
		return core.FailureOf[int64](rayID, storage.CodeUpdateFailed, "could not revoke refresh tokens")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("reading revocation count", "ray_id", rayID, "error", err)
		return core.FailureOf[int64](rayID, storage.CodeUpdateFailed, "could not revoke refresh tokens")
	}
	return core.SuccessOf(rayID, n)
}

func scanRefreshToken(row scanner) (*core.RefreshToken, error) {
	var (
		rt        core.RefreshToken
		scopes    sql.NullString
		revokedAt sql.NullInt64
	)
	if err := row.Scan(
		&rt.ID,
		&rt.Token,
		&rt.ClientID,
		&rt.UserID,
		&scopes,
		&revokedAt,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	rt.Scopes = splitList(scopes.String)
	rt.RevokedAt = stampPtr(revokedAt)
	return &rt, nil
}
