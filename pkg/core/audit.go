// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package core

// Audit event types. The audit log is append-only; these names are the
// stable vocabulary operators filter on.
const (
	EventTokenIssued        = "token.issued"
	EventTokenReuseDetected = "token.reuse_detected"

	EventClientRegistered    = "client.registered"
	EventClientEnabled       = "client.enabled"
	EventClientDisabled      = "client.disabled"
	EventClientSecretRotated = "client.secret_rotated"
	EventClientAuthFailed    = "client.auth_failed"

	EventServerError = "server.error"
)
