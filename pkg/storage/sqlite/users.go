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

type userStore struct {
	s *Store
}

var _ storage.UserStore = (*userStore)(nil)

const userColumns = `id, username, password_hash, is_active,
	created_at, created_by, updated_at, updated_by`

// Insert stores a new user.
func (u *userStore) Insert(ctx context.Context, rayID string, user *core.User) core.Result {
	_, err := u.s.q.ExecContext(ctx, `
		INSERT INTO oauth_users (
			id, username, password_hash, is_active,
			created_at, created_by, updated_at, updated_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.PasswordHash,
		boolToInt(user.IsActive),
		user.CreatedAt,
		user.CreatedBy,
		user.UpdatedAt,
		user.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return core.Failure(rayID, storage.CodeInsertFailed, "username already exists")
		}
		logger.Errorw("inserting user", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeInsertFailed, "could not store user")
	}
	return core.Success(rayID)
}

// GetByID retrieves a user by primary key.
func (u *userStore) GetByID(ctx context.Context, rayID, id string) core.ValueResult[*core.User] {
	row := u.s.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM oauth_users WHERE id = ?`, id)
	return u.scanOne(row, rayID)
}

// GetByUsername retrieves a user by username.
func (u *userStore) GetByUsername(ctx context.Context, rayID, username string) core.ValueResult[*core.User] {
	row := u.s.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM oauth_users WHERE username = ?`, username)
	return u.scanOne(row, rayID)
}

func (*userStore) scanOne(row scanner, rayID string) core.ValueResult[*core.User] {
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.FailureOf[*core.User](rayID, storage.CodeNotFound, "user not found")
	}
	if err != nil {
		logger.Errorw("fetching user", "ray_id", rayID, "error", err)
		return core.FailureOf[*core.User](rayID, storage.CodeFetchFailed, "could not fetch user")
	}
	return core.SuccessOf(rayID, user)
}

// Update rewrites a user row.
func (u *userStore) Update(ctx context.Context, rayID string, user *core.User) core.Result {
	res, err := u.s.q.ExecContext(ctx, `
		UPDATE oauth_users SET
			username = ?, password_hash = ?, is_active = ?,
			updated_at = ?, updated_by = ?
		WHERE id = ?`,
		user.Username,
		user.PasswordHash,
		boolToInt(user.IsActive),
		user.UpdatedAt,
		user.UpdatedBy,
		user.ID,
	)
	if err != nil {
		logger.Errorw("updating user", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update user")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeUpdateFailed, "could not update user")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeNotFound, "user not found")
	}
	return core.Success(rayID)
}

// Delete removes a user row.
func (u *userStore) Delete(ctx context.Context, rayID, id string) core.Result {
	res, err := u.s.q.ExecContext(ctx, `DELETE FROM oauth_users WHERE id = ?`, id)
	if err != nil {
		logger.Errorw("deleting user", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete user")
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Errorw("checking rows affected", "ray_id", rayID, "error", err)
		return core.Failure(rayID, storage.CodeDeleteFailed, "could not delete user")
	}
	if n == 0 {
		return core.Failure(rayID, storage.CodeNotFound, "user not found")
	}
	return core.Success(rayID)
}

func scanUser(row scanner) (*core.User, error) {
	var (
		user     core.User
		isActive int64
	)
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&isActive,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.UpdatedAt,
		&user.UpdatedBy,
	); err != nil {
		return nil, err
	}
	user.IsActive = isActive != 0
	return &user, nil
}
