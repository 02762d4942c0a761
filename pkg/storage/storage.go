// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package storage defines the persistence boundary of the authorization
// server. Repositories are narrow per-entity interfaces; every operation
// takes the request's ray id and returns a Result envelope. Infrastructure
// errors are logged inside the implementation and mapped to envelope codes,
// so callers branch on outcomes rather than driver errors.
package storage

import (
	"context"

	"github.com/quayside/grantd/pkg/core"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks -source=storage.go

// ClientStore persists client identities.
type ClientStore interface {
	// Insert stores a new client identity.
	Insert(ctx context.Context, rayID string, client *core.Client) core.Result
	// InsertWithConfig stores a client identity and its config in a single
	// transaction: both rows commit or neither does.
	InsertWithConfig(ctx context.Context, rayID string, client *core.Client, config *core.ClientConfig) core.Result
	// GetByID retrieves a client by primary key.
	GetByID(ctx context.Context, rayID, id string) core.ValueResult[*core.Client]
	// GetByClientIdentifier retrieves a client by its public identifier.
	GetByClientIdentifier(ctx context.Context, rayID, identifier string) core.ValueResult[*core.Client]
	// Update rewrites a client identity row.
	Update(ctx context.Context, rayID string, client *core.Client) core.Result
	// Delete removes a client row (configs cascade).
	Delete(ctx context.Context, rayID, id string) core.Result
}

// ClientConfigStore persists per-client policy records.
type ClientConfigStore interface {
	Insert(ctx context.Context, rayID string, config *core.ClientConfig) core.Result
	GetByClientID(ctx context.Context, rayID, clientID string) core.ValueResult[*core.ClientConfig]
	Update(ctx context.Context, rayID string, config *core.ClientConfig) core.Result
	Delete(ctx context.Context, rayID, clientID string) core.Result
}

// UserStore persists resource owners.
type UserStore interface {
	Insert(ctx context.Context, rayID string, user *core.User) core.Result
	GetByID(ctx context.Context, rayID, id string) core.ValueResult[*core.User]
	GetByUsername(ctx context.Context, rayID, username string) core.ValueResult[*core.User]
	Update(ctx context.Context, rayID string, user *core.User) core.Result
	Delete(ctx context.Context, rayID, id string) core.Result
}

// AuthorizationCodeStore persists one-time authorization codes.
type AuthorizationCodeStore interface {
	Insert(ctx context.Context, rayID string, code *core.AuthorizationCode) core.Result
	GetByCode(ctx context.Context, rayID, code string) core.ValueResult[*core.AuthorizationCode]
	// MarkUsed stamps the code as redeemed. A code already used or unknown
	// yields an UPDATE_FAILED envelope.
	MarkUsed(ctx context.Context, rayID, id string, now int64) core.Result
	Delete(ctx context.Context, rayID, id string) core.Result
}

// AccessTokenQuota bundles the two reads the per-refresh-token quota needs.
type AccessTokenQuota interface {
	// CountActiveByRefreshToken counts unrevoked, unexpired access tokens
	// issued under the given refresh token.
	CountActiveByRefreshToken(ctx context.Context, rayID, refreshTokenID string, now int64) core.ValueResult[int64]
	// OldestActiveByRefreshToken returns the oldest active access token
	// under the refresh token (created_at then id order), or NOT_FOUND.
	OldestActiveByRefreshToken(ctx context.Context, rayID, refreshTokenID string, now int64) core.ValueResult[*core.AccessToken]
}

// AccessTokenStore persists access tokens.
type AccessTokenStore interface {
	AccessTokenQuota

	Insert(ctx context.Context, rayID string, token *core.AccessToken) core.Result
	GetByToken(ctx context.Context, rayID, token string) core.ValueResult[*core.AccessToken]
	// Revoke stamps revoked_at on an unrevoked token. Revoking an already
	// revoked or unknown token yields UPDATE_FAILED.
	Revoke(ctx context.Context, rayID, id string, now int64) core.Result
	// RevokeAllForClientUser revokes every active token for the pair and
	// returns how many rows were stamped.
	RevokeAllForClientUser(ctx context.Context, rayID, clientID, userID string, now int64) core.ValueResult[int64]
}

// RefreshTokenStore persists refresh tokens.
type RefreshTokenStore interface {
	Insert(ctx context.Context, rayID string, token *core.RefreshToken) core.Result
	GetByToken(ctx context.Context, rayID, token string) core.ValueResult[*core.RefreshToken]
	// Revoke is a conditional update: it stamps revoked_at only where it is
	// still NULL. When two rotations race, exactly one caller sees success;
	// the other gets UPDATE_FAILED and must treat the grant as spent.
	Revoke(ctx context.Context, rayID, id string, now int64) core.Result
	// Touch bumps updated_at, used when rotation is disabled and the
	// presented token rides on.
	Touch(ctx context.Context, rayID, id string, now int64) core.Result
	RevokeAllForClientUser(ctx context.Context, rayID, clientID, userID string, now int64) core.ValueResult[int64]
}

// AuditStore appends to the audit log. There is deliberately no update or
// delete: the log is append-only and the schema enforces it with triggers.
type AuditStore interface {
	Append(ctx context.Context, rayID string, entry *core.AuditEntry) core.Result
	// ListByRayID returns all entries recorded under one request,
	// oldest first.
	ListByRayID(ctx context.Context, rayID, target string) core.ValueResult[[]*core.AuditEntry]
}

// Store is the persistence facade handed to the engine and registrar.
type Store interface {
	Clients() ClientStore
	ClientConfigs() ClientConfigStore
	Users() UserStore
	AuthorizationCodes() AuthorizationCodeStore
	AccessTokens() AccessTokenStore
	RefreshTokens() RefreshTokenStore
	Audit() AuditStore

	// InTx runs fn against transaction-bound repositories. A non-nil error
	// from fn rolls the transaction back and is returned unchanged. Nested
	// calls join the enclosing transaction.
	InTx(ctx context.Context, fn func(Store) error) error

	// Close releases the underlying database.
	Close() error
}
