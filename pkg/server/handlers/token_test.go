// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/flow"
	"github.com/quayside/grantd/pkg/grants"
	"github.com/quayside/grantd/pkg/registrar"
	"github.com/quayside/grantd/pkg/secrets"
	"github.com/quayside/grantd/pkg/storage/sqlite"
	"github.com/quayside/grantd/pkg/telemetry"
)

const (
	fixtureRay    = "ray-fixture"
	fixtureUser   = "user_123"
	fixtureSecret = "valid_secret"
)

// fixture wires the routers exactly as the server mounts them, backed by a
// real database, so requests exercise the full stack.
type fixture struct {
	store  *sqlite.Store
	hasher secrets.Hasher
	token  http.Handler
	admin  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.Open(t.Context(), filepath.Join(t.TempDir(), "handlers-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hasher := secrets.NewArgon2Hasher(secrets.WithParams(1, 64, 1))
	generator := secrets.NewGenerator()
	clock := clockwork.NewFakeClockAt(time.Unix(1000, 0))
	metrics := telemetry.NewMetrics()

	grant := grants.NewRefreshTokenGrant(store, hasher, generator, clock, metrics,
		grants.Policy{RotateRefreshTokens: true})
	engine := flow.NewEngine(store, metrics, clock, grant)
	reg := registrar.New(store, generator, hasher, clock, metrics)

	return &fixture{
		store:  store,
		hasher: hasher,
		token:  RayID(TokenRouter(engine)),
		admin:  RayID(AdminRouter(reg)),
	}
}

// seedClient inserts a confidential client whose secret is fixtureSecret,
// together with its config, and returns the client row.
func (f *fixture) seedClient(t *testing.T, identifier string) *core.Client {
	t.Helper()
	ctx := t.Context()

	id := "client-" + identifier
	hash, err := f.hasher.Hash(ctx, fixtureSecret, fixtureUser, id)
	require.NoError(t, err)

	client := &core.Client{
		ID:               id,
		ClientIdentifier: identifier,
		SecretHash:       hash,
		IsConfidential:   true,
		RedirectURIs:     []string{"https://a/cb"},
		GrantTypes:       []string{"authorization_code", "refresh_token"},
		Scopes:           []string{"read", "write"},
		IsEnabled:        true,
		CreatedAt:        500,
		CreatedBy:        fixtureUser,
		UpdatedAt:        500,
		UpdatedBy:        fixtureUser,
	}
	config := &core.ClientConfig{
		ClientID:               id,
		ResponseTypes:          []string{"code"},
		RequirePKCE:            false,
		PKCEMethods:            []string{"S256"},
		AccessTokenTTL:         3600,
		RefreshTokenTTL:        2592000,
		AuthorizationCodeTTL:   600,
		DeviceCodeTTL:          600,
		DevicePollInterval:     5,
		MaxActiveAccessTokens:  10,
		MaxActiveRefreshTokens: 10,
		CreatedAt:              500,
		CreatedBy:              fixtureUser,
		UpdatedAt:              500,
		UpdatedBy:              fixtureUser,
	}
	res := f.store.Clients().InsertWithConfig(ctx, fixtureRay, client, config)
	require.False(t, res.Failed(), res.Message)
	return client
}

func (f *fixture) seedRefreshToken(t *testing.T, clientID, id, token string) {
	t.Helper()
	res := f.store.RefreshTokens().Insert(t.Context(), fixtureRay, &core.RefreshToken{
		ID:        id,
		Token:     token,
		ClientID:  clientID,
		UserID:    fixtureUser,
		Scopes:    []string{"read", "write"},
		CreatedAt: 500,
		UpdatedAt: 500,
	})
	require.False(t, res.Failed(), res.Message)
}

// issuanceBody is the wire shape of a successful token response.
type issuanceBody struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

func decodeAs[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func basicAuth(id, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(id+":"+secret))
}

func TestTokenEndpointJSONBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	client := f.seedClient(t, "web-app")
	f.seedRefreshToken(t, client.ID, "rt-1", "valid")

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"grant_type":"refresh_token","refresh_token":"valid","client_id":"web-app","client_secret":"valid_secret"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRayID, "ray-json")
	rec := httptest.NewRecorder()
	f.token.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
	assert.Equal(t, "ray-json", rec.Header().Get(HeaderRayID))

	body := decodeAs[issuanceBody](t, rec)
	assert.NotEmpty(t, body.AccessToken)
	assert.Equal(t, "Bearer", body.TokenType)
	assert.Equal(t, int64(3600), body.ExpiresIn)
	assert.Equal(t, "read write", body.Scope)
	assert.NotEmpty(t, body.RefreshToken)
	assert.NotEqual(t, "valid", body.RefreshToken, "rotation should replace the refresh token")
}

func TestTokenEndpointFormBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	client := f.seedClient(t, "web-app")
	f.seedRefreshToken(t, client.ID, "rt-1", "valid")

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {"valid"},
		"client_id":     {"web-app"},
		"client_secret": {"valid_secret"},
		"scope":         {"read"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.token.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeAs[issuanceBody](t, rec)
	assert.Equal(t, "read", body.Scope, "narrowed scope should be honored")
}

func TestTokenEndpointBasicAuthPrecedence(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	client := f.seedClient(t, "web-app")
	f.seedRefreshToken(t, client.ID, "rt-1", "valid")

	t.Run("header credentials used over body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/",
			strings.NewReader(`{"grant_type":"refresh_token","refresh_token":"valid","client_id":"someone-else","client_secret":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", basicAuth("web-app", fixtureSecret))
		rec := httptest.NewRecorder()
		f.token.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("bad header credentials fail despite valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/",
			strings.NewReader(`{"grant_type":"refresh_token","refresh_token":"valid","client_id":"web-app","client_secret":"valid_secret"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", basicAuth("web-app", "wrong"))
		rec := httptest.NewRecorder()
		f.token.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeAs[errorBody](t, rec)
		assert.Equal(t, "invalid_client", body.Error)
		assert.Equal(t, "Invalid client credentials", body.ErrorDescription)
	})
}

func TestTokenEndpointMalformedBasicHeader(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "not base64", header: "Basic %%%not-base64%%%"},
		{name: "no colon separator", header: "Basic " + base64.StdEncoding.EncodeToString([]byte("justuser"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/",
				strings.NewReader(`{"grant_type":"refresh_token","refresh_token":"valid"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			f.token.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, `Basic realm="grantd"`, rec.Header().Get("WWW-Authenticate"))
			body := decodeAs[errorBody](t, rec)
			assert.Equal(t, "invalid_client", body.Error)
			assert.Equal(t, "Invalid Basic Auth header", body.ErrorDescription)
		})
	}
}

func TestTokenEndpointErrorStatuses(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	client := f.seedClient(t, "web-app")
	f.seedRefreshToken(t, client.ID, "rt-1", "valid")

	tests := []struct {
		name            string
		body            string
		wantStatus      int
		wantError       string
		wantDescription string
		wantChallenge   bool
	}{
		{
			name:            "unsupported grant type",
			body:            `{"grant_type":"password","client_id":"web-app","client_secret":"valid_secret"}`,
			wantStatus:      http.StatusBadRequest,
			wantError:       "unsupported_grant_type",
			wantDescription: `grant_type "password" is not supported`,
		},
		{
			name:            "missing refresh token",
			body:            `{"grant_type":"refresh_token","client_id":"web-app","client_secret":"valid_secret"}`,
			wantStatus:      http.StatusBadRequest,
			wantError:       "invalid_request",
			wantDescription: "Missing refresh_token parameter",
		},
		{
			name:            "wrong client secret",
			body:            `{"grant_type":"refresh_token","refresh_token":"valid","client_id":"web-app","client_secret":"nope"}`,
			wantStatus:      http.StatusUnauthorized,
			wantError:       "invalid_client",
			wantDescription: "Invalid client credentials",
			wantChallenge:   true,
		},
		{
			name:            "unknown refresh token",
			body:            `{"grant_type":"refresh_token","refresh_token":"bogus","client_id":"web-app","client_secret":"valid_secret"}`,
			wantStatus:      http.StatusBadRequest,
			wantError:       "invalid_grant",
			wantDescription: "Invalid refresh token",
		},
		{
			name:            "scope exceeds grant",
			body:            `{"grant_type":"refresh_token","refresh_token":"valid","scope":"admin","client_id":"web-app","client_secret":"valid_secret"}`,
			wantStatus:      http.StatusBadRequest,
			wantError:       "invalid_scope",
			wantDescription: "Requested scope exceeds granted scope",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			f.token.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			body := decodeAs[errorBody](t, rec)
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantDescription, body.ErrorDescription)
			if tt.wantChallenge {
				assert.Equal(t, `Basic realm="grantd"`, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestTokenEndpointBodyDecoding(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	t.Run("rejects unsupported content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("grant_type=refresh_token"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		f.token.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeAs[errorBody](t, rec)
		assert.Equal(t, "invalid_request", body.Error)
		assert.Equal(t, "Content-Type must be application/json or application/x-www-form-urlencoded", body.ErrorDescription)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"grant_type":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		f.token.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeAs[errorBody](t, rec)
		assert.Equal(t, "invalid_request", body.Error)
		assert.Equal(t, "Invalid JSON body", body.ErrorDescription)
	})
}

func TestRayIDGeneratedWhenAbsent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.token.ServeHTTP(rec, req)

	ray := rec.Header().Get(HeaderRayID)
	require.NotEmpty(t, ray)
	_, err := uuid.Parse(ray)
	assert.NoError(t, err, "generated ray id should be a uuid")
}
