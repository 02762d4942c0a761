// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/storage"
)

func TestClientRoundtrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	seedClient(t, store, "acme")

	byID := store.Clients().GetByID(ctx, testRay, "client-acme")
	require.False(t, byID.Failed())
	byIdent := store.Clients().GetByClientIdentifier(ctx, testRay, "acme")
	require.False(t, byIdent.Failed())

	client := byIdent.Value
	assert.Equal(t, byID.Value, client)
	assert.Equal(t, "acme", client.ClientIdentifier)
	assert.True(t, client.IsConfidential)
	assert.True(t, client.IsEnabled)
	assert.Equal(t, []string{"https://example.com/cb"}, client.RedirectURIs)
	assert.Equal(t, []string{"refresh_token"}, client.GrantTypes)
	assert.Equal(t, []string{"read", "write"}, client.Scopes)
	assert.NotEmpty(t, client.SecretHash)
}

func TestClientDuplicateIdentifier(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	seedClient(t, store, "acme")

	res := store.Clients().Insert(ctx, testRay, &core.Client{
		ID:               "other-id",
		ClientIdentifier: "acme",
		IsEnabled:        true,
		CreatedAt:        1,
		UpdatedAt:        1,
	})
	require.True(t, res.Failed())
	assert.Equal(t, storage.CodeInsertFailed, res.Code)
	assert.Equal(t, storage.MsgDuplicateClientIdentifier, res.Message)
}

func TestInsertWithConfigIsAtomic(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	seedClient(t, store, "acme")

	// The config insert collides with acme's existing config row, so the
	// whole pair must roll back: no orphaned identity.
	res := store.Clients().InsertWithConfig(ctx, testRay,
		&core.Client{
			ID:               "client-two",
			ClientIdentifier: "two",
			IsEnabled:        true,
			CreatedAt:        1,
			UpdatedAt:        1,
		},
		&core.ClientConfig{
			ClientID:  "client-acme",
			CreatedAt: 1,
			UpdatedAt: 1,
		},
	)
	require.True(t, res.Failed())
	assert.Equal(t, storage.CodeInsertFailed, res.Code)

	orphan := store.Clients().GetByID(ctx, testRay, "client-two")
	assert.Equal(t, storage.CodeNotFound, orphan.Code, "identity row must not survive the failed pair")
}

func TestClientUpdateAndDelete(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	seedClient(t, store, "acme")

	got := store.Clients().GetByID(ctx, testRay, "client-acme")
	require.False(t, got.Failed())

	client := got.Value
	client.IsEnabled = false
	client.UpdatedAt = 200
	client.UpdatedBy = "admin"
	require.False(t, store.Clients().Update(ctx, testRay, client).Failed())

	reread := store.Clients().GetByID(ctx, testRay, "client-acme")
	require.False(t, reread.Failed())
	assert.False(t, reread.Value.IsEnabled)
	assert.Equal(t, int64(200), reread.Value.UpdatedAt)
	assert.Equal(t, "admin", reread.Value.UpdatedBy)

	// Deleting the identity cascades to the config.
	require.False(t, store.Clients().Delete(ctx, testRay, "client-acme").Failed())
	assert.Equal(t, storage.CodeNotFound, store.Clients().GetByID(ctx, testRay, "client-acme").Code)
	assert.Equal(t, storage.CodeNotFound, store.ClientConfigs().GetByClientID(ctx, testRay, "client-acme").Code)
}

func TestClientUpdateMissing(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	res := store.Clients().Update(t.Context(), testRay, &core.Client{ID: "ghost"})
	assert.Equal(t, storage.CodeNotFound, res.Code)

	res = store.Clients().Delete(t.Context(), testRay, "ghost")
	assert.Equal(t, storage.CodeNotFound, res.Code)
}

func TestClientConfigRoundtrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()
	seedClient(t, store, "acme")

	got := store.ClientConfigs().GetByClientID(ctx, testRay, "client-acme")
	require.False(t, got.Failed())

	config := got.Value
	assert.Equal(t, []string{"code"}, config.ResponseTypes)
	assert.Equal(t, []string{"S256"}, config.PKCEMethods)
	assert.Equal(t, int64(3600), config.AccessTokenTTL)
	assert.Equal(t, int64(10), config.MaxActiveAccessTokens)
	assert.Equal(t, "{}", config.Metadata)

	config.AccessTokenTTL = 7200
	config.RequirePKCE = true
	config.UpdatedAt = 300
	require.False(t, store.ClientConfigs().Update(ctx, testRay, config).Failed())

	reread := store.ClientConfigs().GetByClientID(ctx, testRay, "client-acme")
	require.False(t, reread.Failed())
	assert.Equal(t, int64(7200), reread.Value.AccessTokenTTL)
	assert.True(t, reread.Value.RequirePKCE)
}

func TestUserRoundtrip(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	res := store.Users().Insert(ctx, testRay, &core.User{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: "$argon2id$v=19$m=64,t=1,p=1$c2FsdA$aGFzaA",
		IsActive:     true,
		CreatedAt:    1,
		UpdatedAt:    1,
	})
	require.False(t, res.Failed())

	dup := store.Users().Insert(ctx, testRay, &core.User{
		ID: "u2", Username: "alice", CreatedAt: 1, UpdatedAt: 1,
	})
	require.True(t, dup.Failed())
	assert.Equal(t, "username already exists", dup.Message)

	got := store.Users().GetByUsername(ctx, testRay, "alice")
	require.False(t, got.Failed())
	assert.Equal(t, "u1", got.Value.ID)
	assert.True(t, got.Value.IsActive)
}
