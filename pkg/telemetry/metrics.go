// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package telemetry exposes the server's Prometheus instrumentation. The
// collectors hang off an explicit Metrics record with a private registry,
// so tests and parallel instances never contend for global registration.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Revocation reasons recorded on the tokens-revoked counter.
const (
	ReasonRotation = "rotation"
	ReasonQuota    = "quota"
	ReasonReuse    = "reuse"
)

// OutcomeSuccess labels successful grant executions; failures are labelled
// with the wire code of the error.
const OutcomeSuccess = "success"

// Metrics is the set of collectors the engine, registrar, and HTTP surface
// record into.
type Metrics struct {
	registry *prometheus.Registry

	GrantRequests     *prometheus.CounterVec
	GrantDuration     *prometheus.HistogramVec
	ClientsRegistered prometheus.Counter
	TokensRevoked     *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewMetrics builds a Metrics record backed by a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		GrantRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grantd",
			Name:      "grant_requests_total",
			Help:      "Grant executions by grant type and outcome.",
		}, []string{"grant_type", "outcome"}),
		GrantDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "grantd",
			Name:      "grant_duration_seconds",
			Help:      "Grant execution latency by grant type.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"grant_type"}),
		ClientsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "grantd",
			Name:      "clients_registered_total",
			Help:      "Successful client registrations.",
		}),
		TokensRevoked: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grantd",
			Name:      "tokens_revoked_total",
			Help:      "Tokens revoked, by reason.",
		}, []string{"reason"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grantd",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method, and status code.",
		}, []string{"route", "method", "code"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "grantd",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Handler serves the private registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
