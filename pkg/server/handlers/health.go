// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quayside/grantd/pkg/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthRouter creates the router for the health endpoint.
func HealthRouter(store Pinger) http.Handler {
	routes := &healthRoutes{store: store}
	r := chi.NewRouter()
	r.Get("/", routes.getHealth)
	return r
}

type healthRoutes struct {
	store Pinger
}

// getHealth
//
//	@Summary		Health check
//	@Description	Check if the server and its database are healthy
//	@Tags			system
//	@Success		204	{string}	string	"No Content"
//	@Router			/health [get]
func (h *healthRoutes) getHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logger.Errorw("health check failed", "error", err)
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
