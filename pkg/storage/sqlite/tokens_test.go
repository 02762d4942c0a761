// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/storage"
)

// seedRefreshToken inserts a live refresh token for the given client.
func seedRefreshToken(t *testing.T, store *Store, clientID, id string) {
	t.Helper()
	res := store.RefreshTokens().Insert(t.Context(), testRay, &core.RefreshToken{
		ID:        id,
		Token:     "rt-value-" + id,
		ClientID:  clientID,
		UserID:    "u1",
		Scopes:    []string{"read", "write"},
		CreatedAt: 100,
	})
	require.False(t, res.Failed(), res.Message)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")
	seedRefreshToken(t, store, clientID, "rt1")

	got := store.RefreshTokens().GetByToken(ctx, testRay, "rt-value-rt1")
	require.False(t, got.Failed())
	rt := got.Value
	assert.Equal(t, "rt1", rt.ID)
	assert.Equal(t, clientID, rt.ClientID)
	assert.Equal(t, "u1", rt.UserID)
	assert.Equal(t, []string{"read", "write"}, rt.Scopes)
	assert.False(t, rt.Revoked())

	missing := store.RefreshTokens().GetByToken(ctx, testRay, "nope")
	assert.Equal(t, storage.CodeNotFound, missing.Code)
}

func TestRefreshTokenRevokeIsConditional(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")
	seedRefreshToken(t, store, clientID, "rt1")

	first := store.RefreshTokens().Revoke(ctx, testRay, "rt1", 1000)
	require.False(t, first.Failed())

	// The second revocation finds no live row: this is how the rotation
	// race resolves to a single winner.
	second := store.RefreshTokens().Revoke(ctx, testRay, "rt1", 1001)
	require.True(t, second.Failed())
	assert.Equal(t, storage.CodeUpdateFailed, second.Code)

	got := store.RefreshTokens().GetByToken(ctx, testRay, "rt-value-rt1")
	require.False(t, got.Failed())
	require.NotNil(t, got.Value.RevokedAt)
	assert.Equal(t, int64(1000), *got.Value.RevokedAt, "loser must not overwrite the winner's stamp")
}

func TestRefreshTokenTouch(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")
	seedRefreshToken(t, store, clientID, "rt1")

	require.False(t, store.RefreshTokens().Touch(ctx, testRay, "rt1", 1234).Failed())

	got := store.RefreshTokens().GetByToken(ctx, testRay, "rt-value-rt1")
	require.False(t, got.Failed())
	assert.Equal(t, int64(1234), got.Value.UpdatedAt)

	// Touching a revoked token fails.
	require.False(t, store.RefreshTokens().Revoke(ctx, testRay, "rt1", 2000).Failed())
	assert.True(t, store.RefreshTokens().Touch(ctx, testRay, "rt1", 3000).Failed())
}

func TestAccessTokenRoundtrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")
	seedRefreshToken(t, store, clientID, "rt1")

	res := store.AccessTokens().Insert(ctx, testRay, &core.AccessToken{
		ID:             "at1",
		Token:          "at-value-1",
		ClientID:       clientID,
		UserID:         "u1",
		Scopes:         []string{"read"},
		RefreshTokenID: "rt1",
		ExpiresAt:      4600,
		CreatedAt:      1000,
	})
	require.False(t, res.Failed())

	got := store.AccessTokens().GetByToken(ctx, testRay, "at-value-1")
	require.False(t, got.Failed())
	at := got.Value
	assert.Equal(t, "rt1", at.RefreshTokenID)
	assert.Equal(t, []string{"read"}, at.Scopes)
	assert.True(t, at.Active(1000))
	assert.False(t, at.Active(4600))
}

func TestAccessTokenWithoutUserOrScopes(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")

	res := store.AccessTokens().Insert(ctx, testRay, &core.AccessToken{
		ID:        "at1",
		Token:     "at-value-1",
		ClientID:  clientID,
		ExpiresAt: 4600,
		CreatedAt: 1000,
	})
	require.False(t, res.Failed())

	got := store.AccessTokens().GetByToken(ctx, testRay, "at-value-1")
	require.False(t, got.Failed())
	assert.Empty(t, got.Value.UserID)
	assert.Nil(t, got.Value.Scopes)
	assert.Empty(t, got.Value.RefreshTokenID)
}

// insertAccessToken is a shorthand for quota tests.
func insertAccessToken(t *testing.T, store *Store, id string, refreshTokenID string, createdAt, expiresAt int64) {
	t.Helper()
	res := store.AccessTokens().Insert(t.Context(), testRay, &core.AccessToken{
		ID:             id,
		Token:          "tok-" + id,
		ClientID:       "client-acme",
		UserID:         "u1",
		Scopes:         []string{"read"},
		RefreshTokenID: refreshTokenID,
		ExpiresAt:      expiresAt,
		CreatedAt:      createdAt,
	})
	require.False(t, res.Failed(), res.Message)
}

func TestAccessTokenQuotaReads(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")
	seedRefreshToken(t, store, clientID, "rt1")
	seedRefreshToken(t, store, clientID, "rt2")

	now := int64(1000)

	// Three tokens under rt1: one expired, two active with equal
	// created_at (id breaks the tie). One more under rt2 must not count.
	insertAccessToken(t, store, "at-expired", "rt1", 10, 500)
	insertAccessToken(t, store, "at-b", "rt1", 100, 5000)
	insertAccessToken(t, store, "at-a", "rt1", 100, 5000)
	insertAccessToken(t, store, "at-other", "rt2", 50, 5000)

	count := store.AccessTokens().CountActiveByRefreshToken(ctx, testRay, "rt1", now)
	require.False(t, count.Failed())
	assert.Equal(t, int64(2), count.Value)

	oldest := store.AccessTokens().OldestActiveByRefreshToken(ctx, testRay, "rt1", now)
	require.False(t, oldest.Failed())
	assert.Equal(t, "at-a", oldest.Value.ID, "ties on created_at resolve by id")

	// Revoking the oldest moves the cursor.
	require.False(t, store.AccessTokens().Revoke(ctx, testRay, "at-a", now).Failed())
	oldest = store.AccessTokens().OldestActiveByRefreshToken(ctx, testRay, "rt1", now)
	require.False(t, oldest.Failed())
	assert.Equal(t, "at-b", oldest.Value.ID)

	require.False(t, store.AccessTokens().Revoke(ctx, testRay, "at-b", now).Failed())
	empty := store.AccessTokens().OldestActiveByRefreshToken(ctx, testRay, "rt1", now)
	assert.Equal(t, storage.CodeNotFound, empty.Code)
}

func TestAccessTokenRevokeIsConditional(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	seedClient(t, store, "acme")
	insertAccessToken(t, store, "at1", "", 100, 5000)

	require.False(t, store.AccessTokens().Revoke(ctx, testRay, "at1", 1000).Failed())
	second := store.AccessTokens().Revoke(ctx, testRay, "at1", 2000)
	assert.Equal(t, storage.CodeUpdateFailed, second.Code)
}

func TestRevokeAllForClientUser(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")
	otherID := seedClient(t, store, "other")

	for i := 0; i < 3; i++ {
		seedRefreshToken(t, store, clientID, fmt.Sprintf("rt%d", i))
	}
	seedRefreshToken(t, store, otherID, "rt-other")
	insertAccessToken(t, store, "at1", "rt0", 100, 5000)
	insertAccessToken(t, store, "at2", "rt1", 100, 5000)

	now := int64(1000)

	rts := store.RefreshTokens().RevokeAllForClientUser(ctx, testRay, clientID, "u1", now)
	require.False(t, rts.Failed())
	assert.Equal(t, int64(3), rts.Value)

	ats := store.AccessTokens().RevokeAllForClientUser(ctx, testRay, clientID, "u1", now)
	require.False(t, ats.Failed())
	assert.Equal(t, int64(2), ats.Value)

	// The other client's token is untouched.
	got := store.RefreshTokens().GetByToken(ctx, testRay, "rt-value-rt-other")
	require.False(t, got.Failed())
	assert.False(t, got.Value.Revoked())

	// Second sweep finds nothing live.
	again := store.RefreshTokens().RevokeAllForClientUser(ctx, testRay, clientID, "u1", now+1)
	require.False(t, again.Failed())
	assert.Zero(t, again.Value)
}

func TestAuthorizationCodeMarkUsedOnce(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	clientID := seedClient(t, store, "acme")

	res := store.AuthorizationCodes().Insert(ctx, testRay, &core.AuthorizationCode{
		ID:        "ac1",
		Code:      "code-1",
		ClientID:  clientID,
		UserID:    "u1",
		Scopes:    []string{"read"},
		ExpiresAt: 1600,
		CreatedAt: 1000,
	})
	require.False(t, res.Failed())

	require.False(t, store.AuthorizationCodes().MarkUsed(ctx, testRay, "ac1", 1100).Failed())

	second := store.AuthorizationCodes().MarkUsed(ctx, testRay, "ac1", 1200)
	require.True(t, second.Failed())
	assert.Equal(t, storage.CodeUpdateFailed, second.Code)

	got := store.AuthorizationCodes().GetByCode(ctx, testRay, "code-1")
	require.False(t, got.Failed())
	require.NotNil(t, got.Value.UsedAt)
	assert.Equal(t, int64(1100), *got.Value.UsedAt)
}
