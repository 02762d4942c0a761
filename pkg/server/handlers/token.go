// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quayside/grantd/pkg/flow"
	"github.com/quayside/grantd/pkg/oauth"
)

// TokenRoutes serves the token endpoint.
type TokenRoutes struct {
	engine *flow.Engine
}

// TokenRouter creates the router for the token endpoint.
func TokenRouter(engine *flow.Engine) http.Handler {
	routes := TokenRoutes{engine: engine}
	r := chi.NewRouter()
	r.Post("/", routes.issueToken)
	return r
}

// tokenRequest is the body of a token request. The same field set is
// accepted as JSON and as form parameters.
type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// issueToken
//
//	@Summary		Issue tokens
//	@Description	Exchange a grant for an access token (RFC 6749 §3.2)
//	@Tags			oauth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	flow.Issuance
//	@Failure		400	{object}	errorBody
//	@Failure		401	{object}	errorBody
//	@Router			/token [post]
func (t *TokenRoutes) issueToken(w http.ResponseWriter, r *http.Request) {
	rayID := RayIDFromContext(r.Context())

	req, oerr := decodeTokenRequest(r, rayID)
	if oerr != nil {
		writeOAuthError(w, oerr)
		return
	}

	ex := &flow.Exchange{
		RayID:        rayID,
		GrantType:    req.GrantType,
		RefreshToken: req.RefreshToken,
		Scope:        req.Scope,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
	}
	iss, err := t.engine.Execute(r.Context(), req.GrantType, ex)
	if err != nil {
		if oerr, ok := oauth.AsError(err); ok {
			writeOAuthError(w, oerr)
			return
		}
		writeOAuthError(w, oauth.ServerError(rayID, err))
		return
	}

	writeJSON(w, http.StatusOK, iss)
}

// decodeTokenRequest reads the request parameters from the body and applies
// credential precedence: a Basic Authorization header overrides client_id
// and client_secret from the body.
func decodeTokenRequest(r *http.Request, rayID string) (*tokenRequest, *oauth.Error) {
	var req tokenRequest

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, oauth.InvalidRequest(rayID, "Invalid JSON body")
		}
	case contentType == "" || strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return nil, oauth.InvalidRequest(rayID, "Invalid form body")
		}
		req = tokenRequest{
			GrantType:    r.PostFormValue("grant_type"),
			RefreshToken: r.PostFormValue("refresh_token"),
			Scope:        r.PostFormValue("scope"),
			ClientID:     r.PostFormValue("client_id"),
			ClientSecret: r.PostFormValue("client_secret"),
		}
	default:
		return nil, oauth.InvalidRequest(rayID,
			"Content-Type must be application/json or application/x-www-form-urlencoded")
	}

	id, secret, ok, oerr := basicCredentials(r, rayID)
	if oerr != nil {
		return nil, oerr
	}
	if ok {
		req.ClientID, req.ClientSecret = id, secret
	}
	return &req, nil
}

// basicCredentials extracts client credentials from a Basic Authorization
// header. ok is false when no Basic header is present; a header that is
// present but undecodable or missing the colon separator is rejected
// outright instead of falling back to body credentials.
func basicCredentials(r *http.Request, rayID string) (id, secret string, ok bool, oerr *oauth.Error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Basic ") {
		return "", "", false, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", "", false, oauth.InvalidClient(rayID, "Invalid Basic Auth header")
	}
	id, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false, oauth.InvalidClient(rayID, "Invalid Basic Auth header")
	}
	return id, secret, true, nil
}
