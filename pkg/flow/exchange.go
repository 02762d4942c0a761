// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package flow implements the grant lifecycle shared by every grant type:
// an ordered precondition chain, a side-effect-free run step, and a
// transactional postcondition step. Grants plug into the Engine as hook
// implementations; the Engine owns dispatch, logging, audit, and metrics.
package flow

import (
	"github.com/quayside/grantd/pkg/core"
)

// Exchange is the per-request record threaded through a grant execution.
// The request fields are filled by the transport; the resolved fields are
// written by passing conditions and read by later conditions and the run
// and postcondition steps.
type Exchange struct {
	RayID string

	// Request parameters as presented on the wire.
	GrantType    string
	RefreshToken string
	Scope        string
	ClientID     string // client_id parameter: the public client identifier
	ClientSecret string

	// Resolved during the precondition chain.
	Client *core.Client
	Config *core.ClientConfig
	Token  *core.RefreshToken

	// EffectiveScope is the scope the issuance will carry, in first-seen
	// order. Set by the scope condition.
	EffectiveScope []string
}

// Issuance is the product of a successful grant execution. The first five
// fields are the RFC 6749 token response; the rest is bookkeeping for the
// postcondition step and never reaches the wire.
type Issuance struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`

	Rotated       bool   `json:"-"`
	PredecessorID string `json:"-"`
	UserID        string `json:"-"`
}
