// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quayside/grantd/pkg/core"
	"github.com/quayside/grantd/pkg/oauth"
	"github.com/quayside/grantd/pkg/registrar"
	"github.com/quayside/grantd/pkg/storage"
)

// AdminRoutes serves client administration.
type AdminRoutes struct {
	registrar *registrar.Registrar
}

// AdminRouter creates the router for client administration.
func AdminRouter(reg *registrar.Registrar) http.Handler {
	routes := AdminRoutes{registrar: reg}
	r := chi.NewRouter()
	r.Post("/", routes.registerClient)
	r.Get("/{id}", routes.getClient)
	r.Post("/{id}/enable", routes.enableClient)
	r.Post("/{id}/disable", routes.disableClient)
	r.Post("/{id}/rotate-secret", routes.rotateSecret)
	return r
}

// registerClient
//
//	@Summary		Register a client
//	@Description	Provision an OAuth client and return its one-time secret
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	registrar.RegisteredClient
//	@Failure		400	{object}	errorBody
//	@Failure		409	{object}	errorBody
//	@Router			/admin/clients [post]
func (a *AdminRoutes) registerClient(w http.ResponseWriter, r *http.Request) {
	rayID := RayIDFromContext(r.Context())

	var req registrar.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOAuthError(w, oauth.InvalidRequest(rayID, "Invalid JSON body"))
		return
	}

	res := a.registrar.Register(r.Context(), rayID, req)
	if res.Failed() {
		writeEnvelopeError(w, res.Result)
		return
	}

	writeJSON(w, http.StatusCreated, res.Value)
}

// clientView is the wire shape of a client on lookups. The secret hash has
// no field here at all.
type clientView struct {
	ID               string   `json:"id"`
	ClientIdentifier string   `json:"client_identifier"`
	IsConfidential   bool     `json:"is_confidential"`
	RedirectURIs     []string `json:"redirect_uris"`
	GrantTypes       []string `json:"grant_types"`
	Scopes           []string `json:"scopes,omitempty"`
	IsEnabled        bool     `json:"is_enabled"`
	CreatedAt        int64    `json:"created_at"`
	UpdatedAt        int64    `json:"updated_at"`
}

func newClientView(c *core.Client) clientView {
	return clientView{
		ID:               c.ID,
		ClientIdentifier: c.ClientIdentifier,
		IsConfidential:   c.IsConfidential,
		RedirectURIs:     c.RedirectURIs,
		GrantTypes:       c.GrantTypes,
		Scopes:           c.Scopes,
		IsEnabled:        c.IsEnabled,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// getClient
//
//	@Summary		Get a client
//	@Description	Fetch a client by id; the secret hash is never included
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	clientView
//	@Failure		404	{object}	errorBody
//	@Router			/admin/clients/{id} [get]
func (a *AdminRoutes) getClient(w http.ResponseWriter, r *http.Request) {
	rayID := RayIDFromContext(r.Context())

	res := a.registrar.GetByID(r.Context(), rayID, chi.URLParam(r, "id"))
	if res.Failed() {
		writeEnvelopeError(w, res.Result)
		return
	}
	writeJSON(w, http.StatusOK, newClientView(res.Value))
}

// enableClient
//
//	@Summary	Enable a client
//	@Tags		admin
//	@Produce	json
//	@Success	204	{string}	string	"No Content"
//	@Failure	404	{object}	errorBody
//	@Router		/admin/clients/{id}/enable [post]
func (a *AdminRoutes) enableClient(w http.ResponseWriter, r *http.Request) {
	a.setEnabled(w, r, true)
}

// disableClient
//
//	@Summary	Disable a client
//	@Tags		admin
//	@Produce	json
//	@Success	204	{string}	string	"No Content"
//	@Failure	404	{object}	errorBody
//	@Router		/admin/clients/{id}/disable [post]
func (a *AdminRoutes) disableClient(w http.ResponseWriter, r *http.Request) {
	a.setEnabled(w, r, false)
}

func (a *AdminRoutes) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	rayID := RayIDFromContext(r.Context())

	res := a.registrar.SetEnabled(r.Context(), rayID, chi.URLParam(r, "id"), enabled, actor(r))
	if res.Failed() {
		writeEnvelopeError(w, res)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// rotateSecret
//
//	@Summary		Rotate a client secret
//	@Description	Replace the secret of a confidential client and return the new plaintext once
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	errorBody
//	@Failure		404	{object}	errorBody
//	@Router			/admin/clients/{id}/rotate-secret [post]
func (a *AdminRoutes) rotateSecret(w http.ResponseWriter, r *http.Request) {
	rayID := RayIDFromContext(r.Context())

	res := a.registrar.RotateSecret(r.Context(), rayID, chi.URLParam(r, "id"), actor(r))
	if res.Failed() {
		writeEnvelopeError(w, res.Result)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"client_secret": res.Value})
}

// actor names the administrative caller for audit entries. There is no
// operator identity on this surface yet, so the caller address stands in.
func actor(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return "admin@" + host
}

// writeEnvelopeError maps a repository or registrar envelope onto the wire.
// Storage codes stay internal; anything that is not a request fault, a
// duplicate, or a missing row renders as a generic server error.
func writeEnvelopeError(w http.ResponseWriter, res core.Result) {
	switch res.Code {
	case oauth.CodeInvalidRequest:
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:            "invalid_request",
			ErrorDescription: res.Message,
		})
	case oauth.CodeDuplicateClientIdentifier:
		writeJSON(w, http.StatusConflict, errorBody{
			Error:            "duplicate_client_identifier",
			ErrorDescription: res.Message,
		})
	case storage.CodeNotFound:
		writeJSON(w, http.StatusNotFound, errorBody{
			Error:            "not_found",
			ErrorDescription: res.Message,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error:            "server_error",
			ErrorDescription: "internal server error",
		})
	}
}
