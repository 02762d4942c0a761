// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

// Envelope error codes for repository outcomes. These are the storage
// layer's vocabulary; they are distinct from OAuth protocol codes and never
// reach the wire directly.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeInsertFailed = "INSERT_FAILED"
	CodeFetchFailed  = "FETCH_FAILED"
	CodeUpdateFailed = "UPDATE_FAILED"
	CodeDeleteFailed = "DELETE_FAILED"
)

// MsgDuplicateClientIdentifier is the envelope message implementations
// attach to a client_identifier uniqueness violation. The registrar matches
// on it to turn the storage failure into a registration duplicate.
const MsgDuplicateClientIdentifier = "client_identifier already exists"
