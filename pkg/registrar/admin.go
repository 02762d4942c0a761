// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package registrar

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/oauth"
)

// GetByID returns the stored client identity, with the secret hash
// scrubbed.
func (r *Registrar) GetByID(ctx context.Context, rayID, id string) core.ValueResult[*core.Client] {
	res := r.store.Clients().GetByID(ctx, rayID, id)
	if res.Failed() {
		return res
	}
	return core.SuccessOf(rayID, scrubSecret(res.Value))
}

// GetByClientIdentifier returns the stored client identity by its public
// identifier, with the secret hash scrubbed.
func (r *Registrar) GetByClientIdentifier(ctx context.Context, rayID, identifier string) core.ValueResult[*core.Client] {
	res := r.store.Clients().GetByClientIdentifier(ctx, rayID, identifier)
	if res.Failed() {
		return res
	}
	return core.SuccessOf(rayID, scrubSecret(res.Value))
}

// SetEnabled flips the soft-delete switch on a client. Disabled clients
// keep their rows and tokens but fail authentication until re-enabled.
// Setting the current state again is a no-op.
func (r *Registrar) SetEnabled(ctx context.Context, rayID, clientID string, enabled bool, actor string) core.Result {
	res := r.store.Clients().GetByID(ctx, rayID, clientID)
	if res.Failed() {
		return res.Result
	}
	client := res.Value
	if client.IsEnabled == enabled {
		return core.Success(rayID)
	}

	now := r.clock.Now().Unix()
	client.IsEnabled = enabled
	client.UpdatedAt = now
	client.UpdatedBy = actor
	if upd := r.store.Clients().Update(ctx, rayID, client); upd.Failed() {
		return upd
	}

	event := core.EventClientDisabled
	if enabled {
		event = core.EventClientEnabled
	}
	r.audit(ctx, rayID, &core.AuditEntry{
		ID:        uuid.NewString(),
		EventType: event,
		Actor:     actor,
		ClientID:  client.ID,
		RayID:     rayID,
		Detail:    fmt.Sprintf(`{"client_identifier":%q}`, client.ClientIdentifier),
		CreatedAt: now,
	})
	logger.Infow("client enablement changed",
		"ray_id", rayID,
		"client_id", clientID,
		"enabled", enabled)
	return core.Success(rayID)
}

// RotateSecret replaces a confidential client's secret and returns the new
// plaintext exactly once. Existing tokens stay valid; only future
// authentications need the new secret.
func (r *Registrar) RotateSecret(ctx context.Context, rayID, clientID, actor string) core.ValueResult[string] {
	res := r.store.Clients().GetByID(ctx, rayID, clientID)
	if res.Failed() {
		return core.FailureOf[string](rayID, res.Code, res.Message)
	}
	client := res.Value
	if !client.IsConfidential {
		return core.FailureOf[string](rayID, oauth.CodeInvalidRequest, "Public clients have no secret to rotate")
	}

	// The hash binding is (created_by, client id); rotation keeps it so
	// verification stays symmetric with registration.
	plaintext, err := r.generator.Generate(client.CreatedBy, r.secretLength)
	if err != nil {
		logger.Errorw("generating client secret", "ray_id", rayID, "error", err)
		return core.FailureOf[string](rayID, oauth.CodeServerError, "internal server error")
	}
	hash, err := r.hasher.Hash(ctx, plaintext, client.CreatedBy, client.ID)
	if err != nil {
		logger.Errorw("hashing client secret", "ray_id", rayID, "error", err)
		return core.FailureOf[string](rayID, oauth.CodeServerError, "internal server error")
	}

	now := r.clock.Now().Unix()
	client.SecretHash = hash
	client.UpdatedAt = now
	client.UpdatedBy = actor
	if upd := r.store.Clients().Update(ctx, rayID, client); upd.Failed() {
		return core.FailureOf[string](rayID, upd.Code, upd.Message)
	}

	r.audit(ctx, rayID, &core.AuditEntry{
		ID:        uuid.NewString(),
		EventType: core.EventClientSecretRotated,
		Actor:     actor,
		ClientID:  client.ID,
		RayID:     rayID,
		Detail:    fmt.Sprintf(`{"client_identifier":%q}`, client.ClientIdentifier),
		CreatedAt: now,
	})
	logger.Infow("client secret rotated", "ray_id", rayID, "client_id", clientID)
	return core.SuccessOf(rayID, plaintext)
}

// scrubSecret returns a copy of the client without its secret hash.
func scrubSecret(c *core.Client) *core.Client {
	out := *c
	out.SecretHash = ""
	return &out
}
