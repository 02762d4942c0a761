// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package grants

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/flow"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/oauth"
	"github.com/quayside/grantd/pkg/storage"
	"github.com/quayside/grantd/pkg/telemetry"
)

// refreshTokenPresence rejects requests without a refresh_token parameter.
type refreshTokenPresence struct{}

func (refreshTokenPresence) Name() string { return "refresh_token_presence" }

func (refreshTokenPresence) Check(_ context.Context, ex *flow.Exchange) error {
	if ex.RefreshToken == "" {
		return oauth.InvalidRequest(ex.RayID, "Missing refresh_token parameter")
	}
	return nil
}

// refreshTokenValidity resolves the presented token and verifies it is
// live and owned by the authenticated client. When revokeFamily is set, a
// replayed revoked token additionally revokes every active token for the
// token's (client, user) pair before the request is rejected.
type refreshTokenValidity struct {
	store        storage.Store
	metrics      *telemetry.Metrics
	clock        clockwork.Clock
	revokeFamily bool
}

func (c *refreshTokenValidity) Name() string { return "refresh_token_validity" }

func (c *refreshTokenValidity) Check(ctx context.Context, ex *flow.Exchange) error {
	res := c.store.RefreshTokens().GetByToken(ctx, ex.RayID, ex.RefreshToken)
	if res.Failed() {
		if res.Code == storage.CodeNotFound {
			return oauth.InvalidGrant(ex.RayID, "Invalid refresh token")
		}
		return oauth.ServerError(ex.RayID, fmt.Errorf("fetching refresh token: %s", res.Message))
	}
	token := res.Value

	if token.Revoked() {
		if c.revokeFamily {
			c.sweepFamily(ctx, ex, token)
		}
		return oauth.InvalidGrant(ex.RayID, "Refresh token revoked")
	}

	if token.ClientID != ex.Client.ID {
		return oauth.InvalidGrant(ex.RayID, "Refresh token does not belong to client")
	}

	ex.Token = token
	return nil
}

// sweepFamily revokes every active access and refresh token belonging to
// the replayed token's (client, user) pair and records the detection. The
// sweep is best effort: a failure is logged and the replay is still
// rejected, it just leaves the family for the next detection.
func (c *refreshTokenValidity) sweepFamily(ctx context.Context, ex *flow.Exchange, token *core.RefreshToken) {
	now := c.clock.Now().Unix()

	var accessRevoked, refreshRevoked int64
	err := c.store.InTx(ctx, func(tx storage.Store) error {
		res := tx.AccessTokens().RevokeAllForClientUser(ctx, ex.RayID, token.ClientID, token.UserID, now)
		if res.Failed() {
			return fmt.Errorf("revoking access tokens: %s", res.Message)
		}
		accessRevoked = res.Value

		res = tx.RefreshTokens().RevokeAllForClientUser(ctx, ex.RayID, token.ClientID, token.UserID, now)
		if res.Failed() {
			return fmt.Errorf("revoking refresh tokens: %s", res.Message)
		}
		refreshRevoked = res.Value

		entry := &core.AuditEntry{
			ID:        uuid.NewString(),
			EventType: core.EventTokenReuseDetected,
			Actor:     ex.ClientID,
			ClientID:  token.ClientID,
			UserID:    token.UserID,
			TokenID:   token.ID,
			RayID:     ex.RayID,
			Detail: fmt.Sprintf(`{"access_tokens_revoked":%d,"refresh_tokens_revoked":%d}`,
				accessRevoked, refreshRevoked),
			CreatedAt: now,
		}
		if ares := tx.Audit().Append(ctx, ex.RayID, entry); ares.Failed() {
			return fmt.Errorf("appending audit entry: %s", ares.Message)
		}
		return nil
	})
	if err != nil {
		logger.Errorw("token family revocation failed",
			"ray_id", ex.RayID,
			"client_id", token.ClientID,
			"user_id", token.UserID,
			"error", err)
		return
	}

	c.metrics.TokensRevoked.WithLabelValues(telemetry.ReasonReuse).Add(float64(accessRevoked + refreshRevoked))
	logger.Warnw("revoked refresh token replayed, family revoked",
		"ray_id", ex.RayID,
		"client_id", token.ClientID,
		"user_id", token.UserID,
		"access_tokens_revoked", accessRevoked,
		"refresh_tokens_revoked", refreshRevoked)
}

// scopeSubset narrows the issued scope. An absent scope parameter inherits
// the refresh token's grant; anything beyond that grant is rejected.
type scopeSubset struct{}

func (scopeSubset) Name() string { return "scope_subset" }

func (scopeSubset) Check(_ context.Context, ex *flow.Exchange) error {
	requested := oauth.ParseScope(ex.Scope)
	if len(requested) == 0 {
		ex.EffectiveScope = ex.Token.Scopes
		return nil
	}

	requested = oauth.UniqueScope(requested)
	if !oauth.ScopeSubset(requested, ex.Token.Scopes) {
		return oauth.InvalidScope(ex.RayID, "Requested scope exceeds granted scope")
	}
	ex.EffectiveScope = requested
	return nil
}

// accessTokenQuota enforces max_active_access_tokens per refresh token by
// revoking the oldest active access tokens until the new issuance fits.
// This is the one precondition that writes; evicting to make room is part
// of admitting the request, not of fulfilling it.
type accessTokenQuota struct {
	store   storage.Store
	metrics *telemetry.Metrics
	clock   clockwork.Clock
}

func (c *accessTokenQuota) Name() string { return "access_token_quota" }

func (c *accessTokenQuota) Check(ctx context.Context, ex *flow.Exchange) error {
	limit := ex.Config.MaxActiveAccessTokens
	if limit <= 0 {
		return nil
	}

	now := c.clock.Now().Unix()
	for {
		count := c.store.AccessTokens().CountActiveByRefreshToken(ctx, ex.RayID, ex.Token.ID, now)
		if count.Failed() {
			return oauth.ServerError(ex.RayID, fmt.Errorf("counting active access tokens: %s", count.Message))
		}
		if count.Value < limit {
			return nil
		}

		oldest := c.store.AccessTokens().OldestActiveByRefreshToken(ctx, ex.RayID, ex.Token.ID, now)
		if oldest.Failed() {
			if oldest.Code == storage.CodeNotFound {
				return nil
			}
			return oauth.ServerError(ex.RayID, fmt.Errorf("finding oldest access token: %s", oldest.Message))
		}

		res := c.store.AccessTokens().Revoke(ctx, ex.RayID, oldest.Value.ID, now)
		if res.Failed() {
			if res.Code == storage.CodeUpdateFailed {
				// Someone else revoked it first; recount and retry.
				continue
			}
			return oauth.ServerError(ex.RayID, fmt.Errorf("revoking access token: %s", res.Message))
		}

		c.metrics.TokensRevoked.WithLabelValues(telemetry.ReasonQuota).Inc()
		logger.Infow("evicted access token for quota",
			"ray_id", ex.RayID,
			"refresh_token_id", ex.Token.ID,
			"access_token_id", oldest.Value.ID,
			"limit", limit)
	}
}
