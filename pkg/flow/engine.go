// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/oauth"
	"github.com/quayside/grantd/pkg/storage"
	"github.com/quayside/grantd/pkg/telemetry"
)

// Grant is the hook surface a grant type implements. The Engine drives the
// lifecycle; grants only fill in the three steps.
type Grant interface {
	// Kind returns the grant_type value this grant serves.
	Kind() string
	// Preconditions validates the exchange. The only writes allowed here
	// are the ones the grant explicitly owns (quota eviction, reuse
	// response); nothing of the issuance itself is persisted.
	Preconditions(ctx context.Context, ex *Exchange) error
	// Run computes the issuance without touching storage.
	Run(ctx context.Context, ex *Exchange) (*Issuance, error)
	// Postconditions persists the issuance in a single transaction.
	Postconditions(ctx context.Context, ex *Exchange, iss *Issuance) error
}

// Engine dispatches token requests to registered grants and runs them
// through the fixed lifecycle. Execute is a concrete method; grants cannot
// alter the ordering.
type Engine struct {
	store   storage.Store
	metrics *telemetry.Metrics
	clock   clockwork.Clock
	grants  map[string]Grant
}

// NewEngine builds an engine serving exactly the given grants.
func NewEngine(store storage.Store, metrics *telemetry.Metrics, clock clockwork.Clock, grants ...Grant) *Engine {
	byKind := make(map[string]Grant, len(grants))
	for _, g := range grants {
		byKind[g.Kind()] = g
	}
	return &Engine{store: store, metrics: metrics, clock: clock, grants: byKind}
}

// Execute runs the named grant: preconditions, run, postconditions. The
// returned error is always an *oauth.Error; infrastructure faults and
// panics inside hooks surface as server_error, never as a raw failure.
func (e *Engine) Execute(ctx context.Context, grantType string, ex *Exchange) (iss *Issuance, err error) {
	start := e.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("grant panicked",
				"grant_type", grantType,
				"ray_id", ex.RayID,
				"panic", r)
			iss, err = nil, oauth.ServerError(ex.RayID, fmt.Errorf("grant panic: %v", r))
		}
		e.finish(ctx, grantType, ex, start, err)
	}()

	grant, ok := e.grants[grantType]
	if !ok {
		return nil, oauth.UnsupportedGrantType(ex.RayID, grantType)
	}

	logger.Infow("executing grant",
		"grant_type", grant.Kind(),
		"ray_id", ex.RayID,
		"client_id", ex.ClientID)

	if cerr := grant.Preconditions(ctx, ex); cerr != nil {
		return nil, e.toOAuthError(ex, cerr)
	}

	issuance, rerr := grant.Run(ctx, ex)
	if rerr != nil {
		return nil, e.toOAuthError(ex, rerr)
	}

	if perr := grant.Postconditions(ctx, ex, issuance); perr != nil {
		return nil, e.toOAuthError(ex, perr)
	}

	logger.Infow("grant succeeded",
		"grant_type", grant.Kind(),
		"ray_id", ex.RayID,
		"client_id", ex.ClientID)
	return issuance, nil
}

// toOAuthError normalizes hook errors: anything that is not already an
// *oauth.Error is an infrastructure fault.
func (e *Engine) toOAuthError(ex *Exchange, err error) error {
	if oerr, ok := oauth.AsError(err); ok {
		return oerr
	}
	return oauth.ServerError(ex.RayID, err)
}

// finish records metrics for the execution and audits the failure classes
// that matter: failed client authentication and internal faults. Audit
// writes here are best-effort; a failing append is logged and dropped.
func (e *Engine) finish(ctx context.Context, grantType string, ex *Exchange, start time.Time, err error) {
	e.metrics.GrantDuration.WithLabelValues(grantType).Observe(e.clock.Since(start).Seconds())

	if err == nil {
		e.metrics.GrantRequests.WithLabelValues(grantType, telemetry.OutcomeSuccess).Inc()
		return
	}

	oerr, ok := oauth.AsError(err)
	if !ok {
		oerr = oauth.ServerError(ex.RayID, err)
	}
	e.metrics.GrantRequests.WithLabelValues(grantType, oerr.WireCode()).Inc()

	switch oerr.Code {
	case oauth.CodeInvalidClient:
		e.audit(ctx, ex, core.EventClientAuthFailed, oerr)
	case oauth.CodeServerError:
		logger.Errorw("grant failed",
			"grant_type", grantType,
			"ray_id", ex.RayID,
			"error", oerr.Unwrap())
		e.audit(ctx, ex, core.EventServerError, oerr)
	}
}

func (e *Engine) audit(ctx context.Context, ex *Exchange, event string, oerr *oauth.Error) {
	entry := &core.AuditEntry{
		ID:        uuid.NewString(),
		EventType: event,
		Actor:     ex.ClientID,
		RayID:     ex.RayID,
		Detail:    auditDetail(oerr),
		CreatedAt: e.clock.Now().Unix(),
	}
	if ex.Client != nil {
		entry.ClientID = ex.Client.ID
	}
	if ex.Token != nil {
		entry.UserID = ex.Token.UserID
	}
	if res := e.store.Audit().Append(ctx, ex.RayID, entry); res.Failed() {
		logger.Errorw("audit append failed",
			"event", event,
			"ray_id", ex.RayID,
			"code", res.Code,
			"message", res.Message)
	}
}

func auditDetail(oerr *oauth.Error) string {
	detail, err := json.Marshal(struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	}{Code: oerr.Code, Description: oerr.Description})
	if err != nil {
		return "{}"
	}
	return string(detail)
}
