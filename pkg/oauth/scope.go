// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import "strings"

// ParseScope splits a space-separated scope string into its values,
// preserving first-seen order. Empty input yields nil.
func ParseScope(scope string) []string {
	return strings.Fields(scope)
}

// JoinScope renders scope values in canonical form: single-space separated,
// insertion order preserved.
func JoinScope(scopes []string) string {
	return strings.Join(scopes, " ")
}

// NormalizeScope collapses whitespace in a scope string to canonical form.
func NormalizeScope(scope string) string {
	return JoinScope(ParseScope(scope))
}

// UniqueScope drops repeated values, keeping first-seen order.
func UniqueScope(scopes []string) []string {
	if len(scopes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(scopes))
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ScopeSubset reports whether every requested value is contained in the
// granted set. Comparison is set-based; duplicates and ordering do not
// matter. An empty request is a subset of anything.
func ScopeSubset(requested, granted []string) bool {
	if len(requested) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(granted))
	for _, s := range granted {
		set[s] = struct{}{}
	}
	for _, s := range requested {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}
