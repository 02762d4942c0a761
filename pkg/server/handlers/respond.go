// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/oauth"
)

// errorBody is the RFC 6749 §5.2 error shape.
type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// writeJSON renders body with the cache headers RFC 6749 §5.1 requires on
// token responses. Both endpoints return secrets, so every JSON response
// gets them.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorw("encoding response body", "error", err)
	}
}

// writeOAuthError renders an *oauth.Error on the wire. 401 responses carry
// the challenge header RFC 6749 §5.2 requires when Basic auth failed.
func writeOAuthError(w http.ResponseWriter, oerr *oauth.Error) {
	status := oerr.HTTPStatus()
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Basic realm="grantd"`)
	}
	writeJSON(w, status, errorBody{
		Error:            oerr.WireCode(),
		ErrorDescription: oerr.Description,
	})
}
