// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package core holds the persisted entities of the authorization server and
// the Result envelope every repository operation returns. It has no
// dependencies on storage, transport, or the grant engine.
package core

// Client is the identity half of a registered OAuth client. SecretHash is
// an Argon2id PHC string for confidential clients and empty for public
// ones; the plaintext secret is never stored.
type Client struct {
	ID               string
	ClientIdentifier string
	SecretHash       string
	IsConfidential   bool
	RedirectURIs     []string
	GrantTypes       []string
	Scopes           []string
	IsEnabled        bool
	CreatedAt        int64
	CreatedBy        string
	UpdatedAt        int64
	UpdatedBy        string
}

// ClientConfig is the per-client policy record, stored 1:1 with Client and
// removed with it.
type ClientConfig struct {
	ClientID               string
	ResponseTypes          []string
	RequirePKCE            bool
	PKCEMethods            []string
	AccessTokenTTL         int64
	RefreshTokenTTL        int64
	AuthorizationCodeTTL   int64
	DeviceCodeTTL          int64
	DevicePollInterval     int64
	MaxActiveAccessTokens  int64
	MaxActiveRefreshTokens int64
	Metadata               string
	CreatedAt              int64
	CreatedBy              string
	UpdatedAt              int64
	UpdatedBy              string
}

// User is a resource owner. Password hashing shares the Argon2id hasher
// used for client secrets.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsActive     bool
	CreatedAt    int64
	CreatedBy    string
	UpdatedAt    int64
	UpdatedBy    string
}

// AuthorizationCode is a short-lived one-time code. UsedAt is nil until the
// code is redeemed.
type AuthorizationCode struct {
	ID                  string
	Code                string
	ClientID            string
	UserID              string
	RedirectURI         string
	Scopes              []string
	CodeChallenge       string
	CodeChallengeMethod string
	ExpiresAt           int64
	UsedAt              *int64
	CreatedAt           int64
}

// AccessToken is an opaque bearer token. RefreshTokenID links the token to
// the refresh token that issued it, which is what makes the per-refresh-token
// active quota enforceable. RevokedAt is nil while the token is live;
// revocation stamps it and never deletes the row.
type AccessToken struct {
	ID             string
	Token          string
	ClientID       string
	UserID         string
	Scopes         []string
	RefreshTokenID string
	ExpiresAt      int64
	RevokedAt      *int64
	CreatedAt      int64
}

// Active reports whether the token is unrevoked and unexpired at now.
func (t *AccessToken) Active(now int64) bool {
	return t.RevokedAt == nil && t.ExpiresAt > now
}

// RefreshToken is an opaque long-lived token. It carries no expiry column;
// its life ends by revocation (rotation, reuse response, or admin action).
type RefreshToken struct {
	ID        string
	Token     string
	ClientID  string
	UserID    string
	Scopes    []string
	RevokedAt *int64
	CreatedAt int64
	UpdatedAt int64
}

// Revoked reports whether the token has been revoked.
func (t *RefreshToken) Revoked() bool {
	return t.RevokedAt != nil
}

// AuditEntry is one append-only record of a security-relevant event.
type AuditEntry struct {
	ID        string
	EventType string
	Actor     string
	ClientID  string
	UserID    string
	TokenID   string
	RayID     string
	Detail    string
	CreatedAt int64
}
