// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv map[string]string

func (f fakeEnv) Getenv(key string) string {
	return f[key]
}

func TestSetCapturesOutput(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(Initialize)

	Infow("token issued", "ray_id", "ray-1", "grant_type", "refresh_token")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "token issued", entry["msg"])
	assert.Equal(t, "ray-1", entry["ray_id"])
	assert.Equal(t, "refresh_token", entry["grant_type"])
}

func TestInitializeWithEnv(t *testing.T) {
	t.Cleanup(Initialize)

	tests := []struct {
		name string
		env  fakeEnv
	}{
		{name: "default is unstructured", env: fakeEnv{}},
		{name: "explicit structured", env: fakeEnv{"UNSTRUCTURED_LOGS": "false"}},
		{name: "explicit unstructured", env: fakeEnv{"UNSTRUCTURED_LOGS": "true"}},
		{name: "garbage falls back to unstructured", env: fakeEnv{"UNSTRUCTURED_LOGS": "not-a-bool"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitializeWithEnv(tt.env)
			require.NotNil(t, Get())
		})
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(Initialize)

	Debugw("should not appear", "key", "value")
	assert.Zero(t, buf.Len())
}
