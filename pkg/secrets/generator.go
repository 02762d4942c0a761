// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package secrets generates and hashes the opaque credentials the server
// hands out: client secrets, access tokens, and refresh tokens.
package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// MinSecretBytes is the smallest entropy the generator will accept.
const MinSecretBytes = 32

// Generator produces opaque secret strings bound to a requesting principal.
type Generator interface {
	// Generate returns a URL-safe secret of byteLength random bytes mixed
	// with the principal's identity. byteLength below MinSecretBytes is
	// refused.
	Generate(userID string, byteLength int) (string, error)
}

// RandomGenerator is the production Generator, backed by crypto/rand.
type RandomGenerator struct {
	rand io.Reader
}

// GeneratorOption configures a RandomGenerator.
type GeneratorOption func(*RandomGenerator)

// WithGeneratorRand replaces the entropy source. Tests use this to make
// output deterministic; production code never should.
func WithGeneratorRand(r io.Reader) GeneratorOption {
	return func(g *RandomGenerator) {
		g.rand = r
	}
}

// NewGenerator builds a RandomGenerator with crypto/rand entropy.
func NewGenerator(opts ...GeneratorOption) *RandomGenerator {
	g := &RandomGenerator{rand: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements Generator. The random bytes are XOR-mixed with
// SHA-256(userID), cycling the digest across the full length, then encoded
// as unpadded base64url. Mixing ties the value to the principal without
// reducing entropy; the digest is public-derivable, the randomness is not.
func (g *RandomGenerator) Generate(userID string, byteLength int) (string, error) {
	if byteLength < MinSecretBytes {
		return "", fmt.Errorf("secret length %d is below the %d-byte minimum", byteLength, MinSecretBytes)
	}

	buf := make([]byte, byteLength)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", fmt.Errorf("reading entropy: %w", err)
	}

	mask := sha256.Sum256([]byte(userID))
	for i := range buf {
		buf[i] ^= mask[i%len(mask)]
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
