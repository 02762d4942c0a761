// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package oauth defines the error taxonomy and scope algebra shared by the
// grant engine, the registrar, and the HTTP transport.
package oauth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Internal error codes. Codes are namespaced so log lines and audit entries
// can be filtered by origin; the transport strips the namespace before
// putting a code on the wire (RFC 6749 §5.2).
const (
	CodeInvalidRequest       = "oauth.invalid_request"
	CodeInvalidClient        = "oauth.invalid_client"
	CodeInvalidGrant         = "oauth.invalid_grant"
	CodeInvalidScope         = "oauth.invalid_scope"
	CodeUnsupportedGrantType = "oauth.unsupported_grant_type"
	CodeServerError          = "oauth.server_error"

	CodeDuplicateClientIdentifier = "registration.duplicate_client_identifier"
)

// Error is a business failure carried as a value. It crosses the flow and
// registrar boundaries instead of panics or raw errors; the transport maps
// it onto the RFC 6749 wire shape. Description must stay client-safe: no
// hashes, no secrets, no SQL.
type Error struct {
	Code        string
	Description string
	RayID       string

	// cause is the underlying infrastructure error, kept for logs only.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// WireCode returns the code with its namespace stripped, which is the form
// RFC 6749 defines for the error field of a token response.
func (e *Error) WireCode() string {
	if i := strings.IndexByte(e.Code, '.'); i >= 0 {
		return e.Code[i+1:]
	}
	return e.Code
}

// HTTPStatus maps the code onto the transport status: failed client
// authentication is 401, internal faults are 500, everything else is a 400.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidClient:
		return http.StatusUnauthorized
	case CodeServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// NewError builds an Error with an arbitrary code.
func NewError(rayID, code, description string) *Error {
	return &Error{Code: code, Description: description, RayID: rayID}
}

// InvalidRequest reports a malformed or incomplete request.
func InvalidRequest(rayID, description string) *Error {
	return &Error{Code: CodeInvalidRequest, Description: description, RayID: rayID}
}

// InvalidClient reports failed client authentication.
func InvalidClient(rayID, description string) *Error {
	return &Error{Code: CodeInvalidClient, Description: description, RayID: rayID}
}

// InvalidGrant reports an unusable grant: unknown, revoked, or owned by a
// different client.
func InvalidGrant(rayID, description string) *Error {
	return &Error{Code: CodeInvalidGrant, Description: description, RayID: rayID}
}

// InvalidScope reports a scope request exceeding the original grant.
func InvalidScope(rayID, description string) *Error {
	return &Error{Code: CodeInvalidScope, Description: description, RayID: rayID}
}

// UnsupportedGrantType reports a grant type the engine does not serve.
func UnsupportedGrantType(rayID, grantType string) *Error {
	return &Error{
		Code:        CodeUnsupportedGrantType,
		Description: fmt.Sprintf("grant_type %q is not supported", grantType),
		RayID:       rayID,
	}
}

// ServerError reports an infrastructure fault. The cause is retained for
// logging; the description stays generic so internals never reach a client.
func ServerError(rayID string, cause error) *Error {
	return &Error{
		Code:        CodeServerError,
		Description: "internal server error",
		RayID:       rayID,
		cause:       cause,
	}
}

// AsError unwraps err into an *Error if one is in the chain.
func AsError(err error) (*Error, bool) {
	var oe *Error
	if errors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}
