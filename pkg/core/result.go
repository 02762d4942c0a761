// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package core

// Result is the uniform outcome envelope for repository operations. A
// failed Result carries a machine-readable Code, a client-safe Message, and
// the ray id of the request that produced it. Infrastructure details stay
// in logs; they never ride in the envelope.
type Result struct {
	OK      bool
	Code    string
	Message string
	RayID   string
}

// Failed reports whether the operation did not succeed.
func (r Result) Failed() bool {
	return !r.OK
}

// Success builds a passing Result.
func Success(rayID string) Result {
	return Result{OK: true, RayID: rayID}
}

// Failure builds a failed Result with a machine code and client-safe message.
func Failure(rayID, code, message string) Result {
	return Result{OK: false, Code: code, Message: message, RayID: rayID}
}

// ValueResult is a Result that carries a payload on success. The payload is
// the zero value whenever Failed() is true.
type ValueResult[T any] struct {
	Result
	Value T
}

// SuccessOf builds a passing ValueResult carrying value.
func SuccessOf[T any](rayID string, value T) ValueResult[T] {
	return ValueResult[T]{Result: Success(rayID), Value: value}
}

// FailureOf builds a failed ValueResult.
func FailureOf[T any](rayID, code, message string) ValueResult[T] {
	return ValueResult[T]{Result: Failure(rayID, code, message)}
}
