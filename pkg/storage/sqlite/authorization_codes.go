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

type authorizationCodeStore struct {
	s *Store
}

var _ storage.AuthorizationCodeStore = (*authorizationCodeStore)(nil)

const authorizationCodeColumns = `id, code, client_id, user_id, redirect_uri, scopes,
	code_challenge, code_challenge_method, expires_at, used_at, created_at`

// Insert stores a new authorization code.
func (a *authorizationCodeStore) Insert(ctx context.Context, rayID string, code *core.AuthorizationCode) core.Result {
	_, err := a.s.q.ExecContext(ctx, `
		INSERT INTO oauth_authorization_codes (
			id, code, client_id, user_id, redirect_uri, scopes,
			code_challenge, code_challenge_method, expires_at, used_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		code.ID,
		code.Code,
		code.ClientID,
		code.UserID,
		code.RedirectURI,
		joinList(code.Scopes),
		code.CodeChallenge,
		code.CodeChallengeMethod,
		code.ExpiresAt,
		nullableStamp(code.UsedAt),
		code.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Failure(rayID, storage.CodeInsertFailed, "authorization code already exists")
		}
		logger.Errorw("inserting authorization code", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not store authorization code")
	}
	return core.Success(rayID)
}

// GetByCode retrieves an authorization code by its value.
func (a *authorizationCodeStore) GetByCode(ctx context.Context, rayID, code string) core.ValueResult[*core.AuthorizationCode] {
	row := a.s.q.QueryRowContext(ctx,
		`SELECT `+authorizationCodeColumns+` FROM oauth_authorization_codes WHERE code = ?`, code)

	ac, err := scanAuthorizationCode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FailureOf[*core.AuthorizationCode](rayID, storage.CodeNotFound, "authorization code not found")
	}
	if err != nil {
		logger.Errorw("fetching authorization code", "ray_id", rayID, "error", err)
		return core.FailureOf[*core.AuthorizationCode](rayID, storage.CodeFetchFailed, "could not fetch authorization code")
	}
	return core.SuccessOf(rayID, ac)
}

// MarkUsed stamps a code as redeemed exactly once.
func (a *authorizationCodeStore) MarkUsed(ctx context.Context, rayID, id string, now int64) core.Result {
	res, err := a.s.q.ExecContext(ctx,
		`UPDATE oauth_authorization_codes SET used_at = ? WHERE id = ? AND used_at IS NULL`,
		now, id)
	if err != nil {
		logger.Errorw("marking authorization code used", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not mark authorization code used")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not mark authorization code used")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeUpdateFailed, "authorization code is not redeemable")
	}
	return core.Success(rayID)
}

// Delete removes an authorization code row.
func (a *authorizationCodeStore) Delete(ctx context.Context, rayID, id string) core.Result {
	res, err := a.s.q.ExecContext(ctx, `DELETE FROM oauth_authorization_codes WHERE id = ?`, id)
	if err != nil {
		logger.Errorw("deleting authorization code", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete authorization code")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete authorization code")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeNotFound, "authorization code not found")
	}
	return core.Success(rayID)
}

func scanAuthorizationCode(row scanner) (*core.AuthorizationCode, error) {
	var (
		ac     core.AuthorizationCode
		scopes string
		usedAt sql.NullInt64
	)
	if err := row.Scan(
		&ac.ID,
		&ac.Code,
		&ac.ClientID,
		&ac.UserID,
		&ac.RedirectURI,
		&scopes,
		&ac.CodeChallenge,
		&ac.CodeChallengeMethod,
		&ac.ExpiresAt,
		&usedAt,
		&ac.CreatedAt,
	); err != nil {
		return nil, err
	}
	ac.Scopes = splitList(scopes)
	ac.UsedAt = stampPtr(usedAt)
	return &ac, nil
}
