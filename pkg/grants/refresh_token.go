// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package grants

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/flow"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/oauth"
	"github.com/quayside/grantd/pkg/secrets"
	"github.com/quayside/grantd/pkg/storage"
	"github.com/quayside/grantd/pkg/telemetry"
)

// KindRefreshToken is the grant_type value of the refresh-token grant.
const KindRefreshToken = "refresh_token"

// errRotationLost marks the losing side of two concurrent rotations of the
// same refresh token. It maps to invalid_grant: the token was spent.
var errRotationLost = errors.New("refresh token already rotated")

// Policy carries the process-level switches the refresh-token grant
// honors. Per-client numbers (TTLs, quota) come from the client config.
type Policy struct {
	// RotateRefreshTokens replaces the presented refresh token on every
	// issuance when enabled; otherwise the presented token is kept alive.
	RotateRefreshTokens bool
	// RevokeFamilyOnReuse cuts every active token for the (client, user)
	// pair when a revoked refresh token is replayed (RFC 6819 §5.2.2.3).
	RevokeFamilyOnReuse bool
	// TokenLength is the byte length handed to the secret generator.
	TokenLength int
}

// RefreshTokenGrant implements grant_type=refresh_token on the flow
// engine's hook surface.
type RefreshTokenGrant struct {
	store         storage.Store
	generator     secrets.Generator
	clock         clockwork.Clock
	metrics       *telemetry.Metrics
	policy        Policy
	preconditions flow.Chain
}

var _ flow.Grant = (*RefreshTokenGrant)(nil)

// NewRefreshTokenGrant wires the grant and its fixed condition chain.
func NewRefreshTokenGrant(
	store storage.Store,
	hasher secrets.Hasher,
	generator secrets.Generator,
	clock clockwork.Clock,
	metrics *telemetry.Metrics,
	policy Policy,
) *RefreshTokenGrant {
	if policy.TokenLength < secrets.MinSecretBytes {
		policy.TokenLength = secrets.MinSecretBytes
	}
	return &RefreshTokenGrant{
		store:     store,
		generator: generator,
		clock:     clock,
		metrics:   metrics,
		policy:    policy,
		preconditions: flow.Chain{
			refreshTokenPresence{},
			NewClientAuthentication(store, hasher),
			&refreshTokenValidity{
				store:        store,
				metrics:      metrics,
				clock:        clock,
				revokeFamily: policy.RevokeFamilyOnReuse,
			},
			scopeSubset{},
			&accessTokenQuota{store: store, metrics: metrics, clock: clock},
		},
	}
}

// Kind implements flow.Grant.
func (g *RefreshTokenGrant) Kind() string { return KindRefreshToken }

// Preconditions implements flow.Grant.
func (g *RefreshTokenGrant) Preconditions(ctx context.Context, ex *flow.Exchange) error {
	return g.preconditions.Check(ctx, ex)
}

// Run implements flow.Grant: it computes the issuance without persisting
// anything. Token values come from the generator, bound to the owning
// user.
func (g *RefreshTokenGrant) Run(_ context.Context, ex *flow.Exchange) (*flow.Issuance, error) {
	accessToken, err := g.generator.Generate(ex.Token.UserID, g.policy.TokenLength)
	if err != nil {
		return nil, oauth.ServerError(ex.RayID, fmt.Errorf("generating access token: %w", err))
	}

	iss := &flow.Issuance{
		AccessToken:   accessToken,
		TokenType:     "Bearer",
		ExpiresIn:     ex.Config.AccessTokenTTL,
		RefreshToken:  ex.Token.Token,
		Scope:         oauth.JoinScope(ex.EffectiveScope),
		PredecessorID: ex.Token.ID,
		UserID:        ex.Token.UserID,
	}

	if g.policy.RotateRefreshTokens {
		replacement, err := g.generator.Generate(ex.Token.UserID, g.policy.TokenLength)
		if err != nil {
			return nil, oauth.ServerError(ex.RayID, fmt.Errorf("generating refresh token: %w", err))
		}
		iss.RefreshToken = replacement
		iss.Rotated = true
	}

	return iss, nil
}

// Postconditions implements flow.Grant. Everything durable happens in one
// transaction: the access-token insert, the rotation (or touch) of the
// refresh token, and the token.issued audit entry. A lost rotation race
// rolls the whole step back and surfaces as invalid_grant.
func (g *RefreshTokenGrant) Postconditions(ctx context.Context, ex *flow.Exchange, iss *flow.Issuance) error {
	now := g.clock.Now().Unix()

	err := g.store.InTx(ctx, func(tx storage.Store) error {
		access := &core.AccessToken{
			ID:             uuid.NewString(),
			Token:          iss.AccessToken,
			ClientID:       ex.Client.ID,
			UserID:         iss.UserID,
			Scopes:         ex.EffectiveScope,
			RefreshTokenID: iss.PredecessorID,
			ExpiresAt:      now + iss.ExpiresIn,
			CreatedAt:      now,
		}
		if res := tx.AccessTokens().Insert(ctx, ex.RayID, access); res.Failed() {
			return fmt.Errorf("inserting access token: %s", res.Message)
		}

		if iss.Rotated {
			if res := tx.RefreshTokens().Revoke(ctx, ex.RayID, iss.PredecessorID, now); res.Failed() {
				if res.Code == storage.CodeUpdateFailed {
					return errRotationLost
				}
				return fmt.Errorf("revoking predecessor refresh token: %s", res.Message)
			}
			// The replacement carries the predecessor's full grant, not the
			// narrowed scope of this issuance.
			replacement := &core.RefreshToken{
				ID:        uuid.NewString(),
				Token:     iss.RefreshToken,
				ClientID:  ex.Client.ID,
				UserID:    iss.UserID,
				Scopes:    ex.Token.Scopes,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if res := tx.RefreshTokens().Insert(ctx, ex.RayID, replacement); res.Failed() {
				return fmt.Errorf("inserting replacement refresh token: %s", res.Message)
			}
		} else {
			if res := tx.RefreshTokens().Touch(ctx, ex.RayID, iss.PredecessorID, now); res.Failed() {
				if res.Code == storage.CodeUpdateFailed {
					return errRotationLost
				}
				return fmt.Errorf("touching refresh token: %s", res.Message)
			}
		}

		entry := &core.AuditEntry{
			ID:        uuid.NewString(),
			EventType: core.EventTokenIssued,
			Actor:     ex.ClientID,
			ClientID:  ex.Client.ID,
			UserID:    iss.UserID,
			TokenID:   access.ID,
			RayID:     ex.RayID,
			Detail:    fmt.Sprintf(`{"grant_type":%q,"rotated":%t}`, g.Kind(), iss.Rotated),
			CreatedAt: now,
		}
		if res := tx.Audit().Append(ctx, ex.RayID, entry); res.Failed() {
			return fmt.Errorf("appending audit entry: %s", res.Message)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, errRotationLost) {
			logger.Infow("rotation race lost",
				"ray_id", ex.RayID,
				"refresh_token_id", iss.PredecessorID)
			return oauth.InvalidGrant(ex.RayID, "Refresh token revoked")
		}
		return oauth.ServerError(ex.RayID, err)
	}

	if iss.Rotated {
		g.metrics.TokensRevoked.WithLabelValues(telemetry.ReasonRotation).Inc()
	}
	return nil
}
