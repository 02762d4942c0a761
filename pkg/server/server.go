// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package server assembles the HTTP surface of grantd.
package server

// @title           grantd API
// @version         1.0
// @description     OAuth 2.0 token, client administration, and health endpoints.

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quayside/grantd/pkg/flow"
	"github.com/quayside/grantd/pkg/logger"
	"github.com/quayside/grantd/pkg/registrar"
	"github.com/quayside/grantd/pkg/server/handlers"
	"github.com/quayside/grantd/pkg/telemetry"
)

const (
	middlewareTimeout = 60 * time.Second
	readHeaderTimeout = 10 * time.Second
	gracefulTimeout   = 30 * time.Second
)

// Dependencies is the explicit record of collaborators the HTTP surface
// needs. There are no package-level singletons; the caller builds one record
// and hands it over.
type Dependencies struct {
	Engine    *flow.Engine
	Registrar *registrar.Registrar
	Metrics   *telemetry.Metrics
	Store     handlers.Pinger
}

// Router assembles the full route tree. Split out of Serve so tests can
// drive the exact handler the server runs.
func Router(deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(
		handlers.RayID,
		deps.Metrics.HTTPMetrics(),
		middleware.Timeout(middlewareTimeout),
	)

	routers := map[string]http.Handler{
		"/token":         handlers.TokenRouter(deps.Engine),
		"/admin/clients": handlers.AdminRouter(deps.Registrar),
		"/health":        handlers.HealthRouter(deps.Store),
		"/metrics":       deps.Metrics.Handler(),
	}
	for prefix, router := range routers {
		r.Mount(prefix, router)
	}
	return r
}

// Serve starts the server on the given address and blocks until ctx is
// cancelled, then shuts down gracefully. It is assumed that the caller sets
// up appropriate signal handling.
func Serve(ctx context.Context, address string, deps Dependencies) error {
	srv := &http.Server{
		BaseContext:       func(net.Listener) context.Context { return ctx },
		Addr:              address,
		Handler:           Router(deps),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", address, err)
	}

	logger.Infow("starting http server", "address", listener.Addr().String())

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server stopped with error", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Infow("http server stopped")
	return nil
}
