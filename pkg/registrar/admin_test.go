// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package registrar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/oauth"
	"github.com/quayside/grantd/pkg/storage"
)

func TestLookupsScrubSecretHash(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	registered := f.reg.Register(ctx, testRay, webAppRequest())
	require.True(t, registered.OK)
	id := registered.Value.ID

	byID := f.reg.GetByID(ctx, testRay, id)
	require.True(t, byID.OK)
	assert.Empty(t, byID.Value.SecretHash)
	assert.Equal(t, "web-app", byID.Value.ClientIdentifier)

	byIdent := f.reg.GetByClientIdentifier(ctx, testRay, "web-app")
	require.True(t, byIdent.OK)
	assert.Empty(t, byIdent.Value.SecretHash)

	// The stored row still has its hash; only the view is scrubbed.
	raw := f.store.Clients().GetByID(ctx, testRay, id)
	require.True(t, raw.OK)
	assert.NotEmpty(t, raw.Value.SecretHash)

	missing := f.reg.GetByID(ctx, testRay, "no-such-id")
	assert.Equal(t, storage.CodeNotFound, missing.Code)
}

func TestSetEnabledLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	registered := f.reg.Register(ctx, "ray-reg-0", webAppRequest())
	require.True(t, registered.OK)
	id := registered.Value.ID

	res := f.reg.SetEnabled(ctx, "ray-disable", id, false, "admin-1")
	require.True(t, res.OK, res.Message)

	stored := f.store.Clients().GetByID(ctx, testRay, id)
	require.True(t, stored.OK)
	assert.False(t, stored.Value.IsEnabled)
	assert.Equal(t, "admin-1", stored.Value.UpdatedBy)
	assert.Equal(t, int64(1000), stored.Value.UpdatedAt)

	entries := f.store.Audit().ListByRayID(ctx, testRay, "ray-disable")
	require.True(t, entries.OK)
	require.Len(t, entries.Value, 1)
	assert.Equal(t, core.EventClientDisabled, entries.Value[0].EventType)
	assert.Equal(t, "admin-1", entries.Value[0].Actor)

	// Disabling an already disabled client changes nothing and writes no
	// audit entry.
	res = f.reg.SetEnabled(ctx, "ray-noop", id, false, "admin-1")
	require.True(t, res.OK)
	noop := f.store.Audit().ListByRayID(ctx, testRay, "ray-noop")
	require.True(t, noop.OK)
	assert.Empty(t, noop.Value)

	res = f.reg.SetEnabled(ctx, "ray-enable", id, true, "admin-2")
	require.True(t, res.OK)
	stored = f.store.Clients().GetByID(ctx, testRay, id)
	require.True(t, stored.OK)
	assert.True(t, stored.Value.IsEnabled)

	entries = f.store.Audit().ListByRayID(ctx, testRay, "ray-enable")
	require.True(t, entries.OK)
	require.Len(t, entries.Value, 1)
	assert.Equal(t, core.EventClientEnabled, entries.Value[0].EventType)

	res = f.reg.SetEnabled(ctx, testRay, "no-such-id", false, "admin-1")
	require.True(t, res.Failed())
	assert.Equal(t, storage.CodeNotFound, res.Code)
}

func TestRotateSecret(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	registered := f.reg.Register(ctx, "ray-reg-0", webAppRequest())
	require.True(t, registered.OK)
	id := registered.Value.ID
	oldSecret := registered.Value.ClientSecret
	oldHash := f.store.Clients().GetByID(ctx, testRay, id).Value.SecretHash

	rotated := f.reg.RotateSecret(ctx, "ray-rotate", id, "admin-1")
	require.True(t, rotated.OK, rotated.Message)
	newSecret := rotated.Value
	require.NotEmpty(t, newSecret)
	assert.NotEqual(t, oldSecret, newSecret)

	stored := f.store.Clients().GetByID(ctx, testRay, id)
	require.True(t, stored.OK)
	assert.NotEqual(t, oldHash, stored.Value.SecretHash)
	assert.Equal(t, "admin-1", stored.Value.UpdatedBy)

	// The new secret verifies under the registration binding; the old one
	// no longer does.
	ok, err := f.hasher.Verify(ctx, newSecret, stored.Value.SecretHash, "user_123", id)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.hasher.Verify(ctx, oldSecret, stored.Value.SecretHash, "user_123", id)
	require.NoError(t, err)
	assert.False(t, ok)

	entries := f.store.Audit().ListByRayID(ctx, testRay, "ray-rotate")
	require.True(t, entries.OK)
	require.Len(t, entries.Value, 1)
	assert.Equal(t, core.EventClientSecretRotated, entries.Value[0].EventType)
}

func TestRotateSecretRejectsPublicClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	registered := f.reg.Register(ctx, testRay, RegistrationRequest{
		UserID:           "user_123",
		ClientIdentifier: "cli-tool",
		RedirectURIs:     []string{"http://127.0.0.1/cb"},
		GrantTypes:       []string{"refresh_token"},
	})
	require.True(t, registered.OK)

	res := f.reg.RotateSecret(ctx, testRay, registered.Value.ID, "admin-1")
	require.True(t, res.Failed())
	assert.Equal(t, oauth.CodeInvalidRequest, res.Code)
	assert.Equal(t, "Public clients have no secret to rotate", res.Message)

	missing := f.reg.RotateSecret(ctx, testRay, "no-such-id", "admin-1")
	assert.Equal(t, storage.CodeNotFound, missing.Code)
}
