// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package registrar provisions OAuth clients: validated registration with
// one-time secret issuance, lookups, and the administrative lifecycle
// (enable/disable, secret rotation).
package registrar

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/oauth"
	"github.com/quayside/grantd/pkg/secrets"
	"github.com/quayside/grantd/pkg/storage"
	"github.com/quayside/grantd/pkg/telemetry"
)

// Defaults applied to registration requests that leave the field zero.
const (
	defaultAccessTokenTTL       int64 = 3600
	defaultRefreshTokenTTL      int64 = 30 * 24 * 3600
	defaultAuthorizationCodeTTL int64 = 600
	defaultDeviceCodeTTL        int64 = 600
	defaultDevicePollInterval   int64 = 5
	defaultMaxActiveTokens      int64 = 10
)

// Registration whitelists. Values outside these sets are rejected rather
// than stored for a later flow to trip over.
var (
	allowedGrantTypes = map[string]bool{
		"authorization_code": true,
		"refresh_token":      true,
		"client_credentials": true,
		"device_code":        true,
	}
	allowedResponseTypes = map[string]bool{
		"code":  true,
		"token": true,
	}
	allowedPKCEMethods = map[string]bool{
		"S256":  true,
		"plain": true,
	}
)

// RegistrationRequest is the caller's view of a client to provision.
// Zero-valued policy fields pick up defaults; RequirePKCE is a pointer so
// an explicit false survives next to the public-client default of true.
type RegistrationRequest struct {
	UserID           string   `json:"user_id"`
	ClientIdentifier string   `json:"client_identifier"`
	IsConfidential   bool     `json:"is_confidential"`
	RedirectURIs     []string `json:"redirect_uris"`
	GrantTypes       []string `json:"grant_types"`
	ResponseTypes    []string `json:"response_types,omitempty"`
	Scopes           []string `json:"scopes,omitempty"`
	RequirePKCE      *bool    `json:"require_pkce,omitempty"`
	PKCEMethods      []string `json:"pkce_methods,omitempty"`

	AccessTokenTTL         int64  `json:"access_token_ttl,omitempty"`
	RefreshTokenTTL        int64  `json:"refresh_token_ttl,omitempty"`
	AuthorizationCodeTTL   int64  `json:"authorization_code_ttl,omitempty"`
	DeviceCodeTTL          int64  `json:"device_code_ttl,omitempty"`
	DevicePollInterval     int64  `json:"device_poll_interval,omitempty"`
	MaxActiveAccessTokens  int64  `json:"max_active_access_tokens,omitempty"`
	MaxActiveRefreshTokens int64  `json:"max_active_refresh_tokens,omitempty"`
	Metadata               string `json:"metadata,omitempty"`
}

// RegisteredClient is the response view of a provisioned client.
// ClientSecret carries the plaintext exactly once, on the Register return;
// it is never persisted and lookups never produce it.
type RegisteredClient struct {
	ID               string   `json:"id"`
	ClientIdentifier string   `json:"client_identifier"`
	UserID           string   `json:"user_id"`
	IsConfidential   bool     `json:"is_confidential"`
	ClientSecret     string   `json:"client_secret,omitempty"`
	RedirectURIs     []string `json:"redirect_uris"`
	GrantTypes       []string `json:"grant_types"`
	ResponseTypes    []string `json:"response_types"`
	Scopes           []string `json:"scopes,omitempty"`
	RequirePKCE      bool     `json:"require_pkce"`
	PKCEMethods      []string `json:"pkce_methods,omitempty"`

	AccessTokenTTL         int64 `json:"access_token_ttl"`
	RefreshTokenTTL        int64 `json:"refresh_token_ttl"`
	AuthorizationCodeTTL   int64 `json:"authorization_code_ttl"`
	DeviceCodeTTL          int64 `json:"device_code_ttl"`
	DevicePollInterval     int64 `json:"device_poll_interval"`
	MaxActiveAccessTokens  int64 `json:"max_active_access_tokens"`
	MaxActiveRefreshTokens int64 `json:"max_active_refresh_tokens"`

	IsEnabled bool  `json:"is_enabled"`
	CreatedAt int64 `json:"created_at"`
}

// Registrar carries the registration dependencies as an explicit record.
type Registrar struct {
	store        storage.Store
	generator    secrets.Generator
	hasher       secrets.Hasher
	clock        clockwork.Clock
	metrics      *telemetry.Metrics
	secretLength int
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithSecretLength sets the byte length of generated client secrets.
// Values below the generator minimum are ignored.
func WithSecretLength(n int) Option {
	return func(r *Registrar) {
		if n >= secrets.MinSecretBytes {
			r.secretLength = n
		}
	}
}

// New builds a Registrar.
func New(
	store storage.Store,
	generator secrets.Generator,
	hasher secrets.Hasher,
	clock clockwork.Clock,
	metrics *telemetry.Metrics,
	opts ...Option,
) *Registrar {
	r := &Registrar{
		store:        store,
		generator:    generator,
		hasher:       hasher,
		clock:        clock,
		metrics:      metrics,
		secretLength: secrets.MinSecretBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register provisions a new client. On success the returned view carries
// the plaintext secret for confidential clients; this is the only moment
// the plaintext exists outside the hasher.
func (r *Registrar) Register(ctx context.Context, rayID string, req RegistrationRequest) core.ValueResult[*RegisteredClient] {
	req = req.withDefaults()
	if msg := validateRequest(req); msg != "" {
		return core.FailureOf[*RegisteredClient](rayID, oauth.CodeInvalidRequest, msg)
	}

	probe := r.store.Clients().GetByClientIdentifier(ctx, rayID, req.ClientIdentifier)
	if probe.OK {
		return core.FailureOf[*RegisteredClient](rayID, oauth.CodeDuplicateClientIdentifier, storage.MsgDuplicateClientIdentifier)
	}
	if probe.Code != storage.CodeNotFound {
		return core.FailureOf[*RegisteredClient](rayID, probe.Code, probe.Message)
	}

	id := uuid.NewString()
	var plaintext, hash string
	if req.IsConfidential {
		var err error
		plaintext, err = r.generator.Generate(req.UserID, r.secretLength)
		if err != nil {
			logger.Errorw("generating client secret", "ray_id", rayID, "error", err)
			return core.FailureOf[*RegisteredClient](rayID, oauth.CodeServerError, "internal server error")
		}
		hash, err = r.hasher.Hash(ctx, plaintext, req.UserID, id)
		if err != nil {
			logger.Errorw("hashing client secret", "ray_id", rayID, "error", err)
			return core.FailureOf[*RegisteredClient](rayID, oauth.CodeServerError, "internal server error")
		}
	}

	now := r.clock.Now().Unix()
	client := &core.Client{
		ID:               id,
		ClientIdentifier: req.ClientIdentifier,
		SecretHash:       hash,
		IsConfidential:   req.IsConfidential,
		RedirectURIs:     req.RedirectURIs,
		GrantTypes:       req.GrantTypes,
		Scopes:           req.Scopes,
		IsEnabled:        true,
		CreatedAt:        now,
		CreatedBy:        req.UserID,
		UpdatedAt:        now,
		UpdatedBy:        req.UserID,
	}
	config := &core.ClientConfig{
		ClientID:               id,
		ResponseTypes:          req.ResponseTypes,
		RequirePKCE:            *req.RequirePKCE,
		PKCEMethods:            req.PKCEMethods,
		AccessTokenTTL:         req.AccessTokenTTL,
		RefreshTokenTTL:        req.RefreshTokenTTL,
		AuthorizationCodeTTL:   req.AuthorizationCodeTTL,
		DeviceCodeTTL:          req.DeviceCodeTTL,
		DevicePollInterval:     req.DevicePollInterval,
		MaxActiveAccessTokens:  req.MaxActiveAccessTokens,
		MaxActiveRefreshTokens: req.MaxActiveRefreshTokens,
		Metadata:               req.Metadata,
		CreatedAt:              now,
		CreatedBy:              req.UserID,
		UpdatedAt:              now,
		UpdatedBy:              req.UserID,
	}

	if res := r.store.Clients().InsertWithConfig(ctx, rayID, client, config); res.Failed() {
		// Two registrations can pass the probe together; the unique
		// constraint decides on commit.
		if res.Message == storage.MsgDuplicateClientIdentifier {
			return core.FailureOf[*RegisteredClient](rayID, oauth.CodeDuplicateClientIdentifier, res.Message)
		}
		return core.FailureOf[*RegisteredClient](rayID, res.Code, res.Message)
	}

	r.audit(ctx, rayID, &core.AuditEntry{
		ID:        uuid.NewString(),
		EventType: core.EventClientRegistered,
		Actor:     req.UserID,
		ClientID:  id,
		UserID:    req.UserID,
		RayID:     rayID,
		Detail:    fmt.Sprintf(`{"client_identifier":%q,"is_confidential":%t}`, req.ClientIdentifier, req.IsConfidential),
		CreatedAt: now,
	})
	r.metrics.ClientsRegistered.Inc()
	logger.Infow("client registered",
		"ray_id", rayID,
		"client_id", id,
		"client_identifier", req.ClientIdentifier,
		"is_confidential", req.IsConfidential)

	return core.SuccessOf(rayID, newRegisteredClient(client, config, plaintext))
}

// withDefaults fills zero-valued policy fields. It operates on a copy.
func (req RegistrationRequest) withDefaults() RegistrationRequest {
	if req.AccessTokenTTL == 0 {
		req.AccessTokenTTL = defaultAccessTokenTTL
	}
	if req.RefreshTokenTTL == 0 {
		req.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if req.AuthorizationCodeTTL == 0 {
		req.AuthorizationCodeTTL = defaultAuthorizationCodeTTL
	}
	if req.DeviceCodeTTL == 0 {
		req.DeviceCodeTTL = defaultDeviceCodeTTL
	}
	if req.DevicePollInterval == 0 {
		req.DevicePollInterval = defaultDevicePollInterval
	}
	if req.MaxActiveAccessTokens == 0 {
		req.MaxActiveAccessTokens = defaultMaxActiveTokens
	}
	if req.MaxActiveRefreshTokens == 0 {
		req.MaxActiveRefreshTokens = defaultMaxActiveTokens
	}
	if len(req.ResponseTypes) == 0 {
		req.ResponseTypes = []string{"code"}
	}
	if req.RequirePKCE == nil {
		// Public clients cannot hold a secret, so PKCE is on by default.
		v := !req.IsConfidential
		req.RequirePKCE = &v
	}

	req.GrantTypes = oauth.UniqueScope(req.GrantTypes)
	req.ResponseTypes = oauth.UniqueScope(req.ResponseTypes)
	req.PKCEMethods = oauth.UniqueScope(req.PKCEMethods)
	req.Scopes = oauth.UniqueScope(req.Scopes)
	return req
}

// validateRequest returns the first failing rule's message, or empty when
// the request is acceptable.
func validateRequest(req RegistrationRequest) string {
	if strings.TrimSpace(req.UserID) == "" {
		return "user_id is required"
	}
	if strings.TrimSpace(req.ClientIdentifier) == "" {
		return "client_identifier is required"
	}
	if len(req.RedirectURIs) == 0 {
		return "At least one redirect_uri is required"
	}
	if len(req.GrantTypes) == 0 {
		return "At least one grant_type is required"
	}
	if req.AccessTokenTTL <= 0 {
		return "access_token_ttl must be positive"
	}
	if req.AuthorizationCodeTTL <= 0 {
		return "authorization_code_ttl must be positive"
	}
	for _, gt := range req.GrantTypes {
		if !allowedGrantTypes[gt] {
			return fmt.Sprintf("Unsupported grant_type: %s", gt)
		}
	}
	for _, rt := range req.ResponseTypes {
		if !allowedResponseTypes[rt] {
			return fmt.Sprintf("Unsupported response_type: %s", rt)
		}
	}
	for _, m := range req.PKCEMethods {
		if !allowedPKCEMethods[m] {
			return fmt.Sprintf("Unsupported pkce_method: %s", m)
		}
	}
	return ""
}

func newRegisteredClient(client *core.Client, config *core.ClientConfig, plaintext string) *RegisteredClient {
	return &RegisteredClient{
		ID:               client.ID,
		ClientIdentifier: client.ClientIdentifier,
		UserID:           client.CreatedBy,
		IsConfidential:   client.IsConfidential,
		ClientSecret:     plaintext,
		RedirectURIs:     client.RedirectURIs,
		GrantTypes:       client.GrantTypes,
		ResponseTypes:    config.ResponseTypes,
		Scopes:           client.Scopes,
		RequirePKCE:      config.RequirePKCE,
		PKCEMethods:      config.PKCEMethods,

		AccessTokenTTL:         config.AccessTokenTTL,
		RefreshTokenTTL:        config.RefreshTokenTTL,
		AuthorizationCodeTTL:   config.AuthorizationCodeTTL,
		DeviceCodeTTL:          config.DeviceCodeTTL,
		DevicePollInterval:     config.DevicePollInterval,
		MaxActiveAccessTokens:  config.MaxActiveAccessTokens,
		MaxActiveRefreshTokens: config.MaxActiveRefreshTokens,

		IsEnabled: client.IsEnabled,
		CreatedAt: client.CreatedAt,
	}
}

// audit appends an entry without letting an audit failure fail the caller.
func (r *Registrar) audit(ctx context.Context, rayID string, entry *core.AuditEntry) {
	if res := r.store.Audit().Append(ctx, rayID, entry); res.Failed() {
		logger.Errorw("audit append failed",
			"ray_id", rayID,
			"event_type", entry.EventType,
			"message", res.Message)
	}
}
