// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package grants implements the grant types served by the flow engine,
// plus the conditions they are assembled from. The client-authentication
// condition is shared; the rest belong to their grant.
package grants

import (
	"context"
	"fmt"

	"github.com/quayside/grantd/pkg/flow"
	"github.com/quayside/grantd/pkg/oauth"
	"github.com/quayside/grantd/pkg/secrets"
	"github.com/quayside/grantd/pkg/storage"
)

// clientAuthentication resolves the requesting client, verifies its
// credentials, and loads its configuration into the exchange. Confidential
// clients must present a secret matching the stored Argon2id hash; public
// clients pass on identity alone.
type clientAuthentication struct {
	store  storage.Store
	hasher secrets.Hasher
}

// NewClientAuthentication builds the shared client-authentication
// condition.
func NewClientAuthentication(store storage.Store, hasher secrets.Hasher) flow.Condition {
	return &clientAuthentication{store: store, hasher: hasher}
}

func (c *clientAuthentication) Name() string { return "client_authentication" }

func (c *clientAuthentication) Check(ctx context.Context, ex *flow.Exchange) error {
	if ex.ClientID == "" {
		return oauth.InvalidClient(ex.RayID, "Missing client_id")
	}

	res := c.store.Clients().GetByClientIdentifier(ctx, ex.RayID, ex.ClientID)
	if res.Failed() {
		if res.Code == storage.CodeNotFound {
			return oauth.InvalidClient(ex.RayID, "Invalid client")
		}
		return oauth.ServerError(ex.RayID, fmt.Errorf("fetching client: %s", res.Message))
	}
	client := res.Value

	if !client.IsEnabled {
		return oauth.InvalidClient(ex.RayID, "Client is disabled")
	}

	if client.IsConfidential {
		if ex.ClientSecret == "" {
			return oauth.InvalidClient(ex.RayID, "Missing client_secret")
		}
		if client.SecretHash == "" {
			return oauth.InvalidClient(ex.RayID, "Invalid client credentials")
		}
		ok, err := c.hasher.Verify(ctx, ex.ClientSecret, client.SecretHash, client.CreatedBy, client.ID)
		if err != nil {
			return oauth.ServerError(ex.RayID, fmt.Errorf("verifying client secret: %w", err))
		}
		if !ok {
			return oauth.InvalidClient(ex.RayID, "Invalid client credentials")
		}
	}

	cfg := c.store.ClientConfigs().GetByClientID(ctx, ex.RayID, client.ID)
	if cfg.Failed() {
		return oauth.ServerError(ex.RayID, fmt.Errorf("loading client config: %s", cfg.Message))
	}

	ex.Client = client
	ex.Config = cfg.Value
	return nil
}
