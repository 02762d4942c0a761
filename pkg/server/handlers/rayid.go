// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package handlers implements the HTTP endpoints of the authorization
// server: the token endpoint, client administration, liveness, and the ray
// id plumbing they share.
package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderRayID is the header carrying the request's ray id, both inbound
// and echoed on every response.
const HeaderRayID = "X-Request-ID"

type contextKey int

const rayIDKey contextKey = iota

// RayID is middleware assigning every request a ray id: the caller's
// X-Request-ID when present, a fresh uuid otherwise. The id rides the
// request context and is echoed as a response header.
func RayID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ray := r.Header.Get(HeaderRayID)
		if ray == "" {
			ray = uuid.NewString()
		}
		w.Header().Set(HeaderRayID, ray)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), rayIDKey, ray)))
	})
}

// RayIDFromContext returns the request's ray id. A handler reached without
// the middleware gets a fresh uuid so envelopes are never blank.
func RayIDFromContext(ctx context.Context) string {
	if ray, ok := ctx.Value(rayIDKey).(string); ok && ray != "" {
		return ray
	}
	return uuid.NewString()
}
