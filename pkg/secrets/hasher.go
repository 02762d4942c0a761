// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

package secrets

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

// Argon2id defaults. 64 MiB per hash is deliberate; the semaphore below is
// what keeps a burst of token requests from multiplying that.
const (
	defaultTime        = 3
	defaultMemoryKiB   = 64 * 1024
	defaultParallelism = 1
	defaultKeyLen      = 32
	defaultSaltLen     = 16
)

// Hasher hashes and verifies secrets bound to a (user, client) pair.
type Hasher interface {
	// Hash returns a PHC-encoded Argon2id hash of secret. The error path is
	// infrastructure only (entropy, cancelled context).
	Hash(ctx context.Context, secret, userID, clientID string) (string, error)
	// Verify reports whether secret matches encoded under the same
	// (user, client) binding. Mismatches and malformed encodings both
	// return (false, nil); errors are infrastructure only.
	Verify(ctx context.Context, secret, encoded, userID, clientID string) (bool, error)
}

// Argon2Hasher is the production Hasher.
type Argon2Hasher struct {
	time        uint32
	memoryKiB   uint32
	parallelism uint8
	keyLen      uint32
	saltLen     uint32

	rand io.Reader
	// sem caps concurrent key derivations so memory use stays bounded.
	sem *semaphore.Weighted
}

// HasherOption configures an Argon2Hasher.
type HasherOption func(*Argon2Hasher)

// WithParams overrides the Argon2id cost parameters. Tests use cheap values;
// production keeps the defaults.
func WithParams(time, memoryKiB uint32, parallelism uint8) HasherOption {
	return func(h *Argon2Hasher) {
		h.time = time
		h.memoryKiB = memoryKiB
		h.parallelism = parallelism
	}
}

// WithMaxConcurrent bounds how many hashes may run at once. Values below 1
// are ignored.
func WithMaxConcurrent(n int64) HasherOption {
	return func(h *Argon2Hasher) {
		if n >= 1 {
			h.sem = semaphore.NewWeighted(n)
		}
	}
}

// WithHasherRand replaces the salt entropy source for tests.
func WithHasherRand(r io.Reader) HasherOption {
	return func(h *Argon2Hasher) {
		h.rand = r
	}
}

// NewArgon2Hasher builds a Hasher with production parameters and a
// concurrency bound of GOMAXPROCS.
func NewArgon2Hasher(opts ...HasherOption) *Argon2Hasher {
	h := &Argon2Hasher{
		time:        defaultTime,
		memoryKiB:   defaultMemoryKiB,
		parallelism: defaultParallelism,
		keyLen:      defaultKeyLen,
		saltLen:     defaultSaltLen,
		rand:        rand.Reader,
		sem:         semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// contextualize binds the secret to its (user, client) pair before key
// derivation. A hash produced under one pair can never verify under another,
// even for an identical plaintext.
func contextualize(secret, userID, clientID string) []byte {
	binding := sha256.Sum256([]byte(userID + ":" + clientID))
	return []byte(secret + ":" + hex.EncodeToString(binding[:]))
}

// Hash implements Hasher.
func (h *Argon2Hasher) Hash(ctx context.Context, secret, userID, clientID string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquiring hasher slot: %w", err)
	}
	defer h.sem.Release(1)

	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("reading salt entropy: %w", err)
	}

	key := argon2.IDKey(contextualize(secret, userID, clientID), salt, h.time, h.memoryKiB, h.parallelism, h.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memoryKiB, h.time, h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements Hasher. Cost parameters come from the encoded hash, not
// from the hasher, so parameter upgrades never orphan existing credentials.
func (h *Argon2Hasher) Verify(ctx context.Context, secret, encoded, userID, clientID string) (bool, error) {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		// A hash we cannot parse is a failed verification, not a fault.
		return false, nil
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("acquiring hasher slot: %w", err)
	}
	defer h.sem.Release(1)

	candidate := argon2.IDKey(contextualize(secret, userID, clientID), salt, params.time, params.memoryKiB, params.parallelism, uint32(len(key))) // #nosec G115 -- key length is bounded by decodeHash

	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

type argon2Params struct {
	time        uint32
	memoryKiB   uint32
	parallelism uint8
}

// decodeHash parses a PHC-formatted Argon2id string:
// $argon2id$v=19$m=65536,t=3,p=1$<salt>$<key>
func decodeHash(encoded string) (argon2Params, []byte, []byte, error) {
	var p argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return p, nil, nil, fmt.Errorf("malformed hash: expected 6 segments, got %d", len(parts))
	}
	if parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("unsupported hash variant %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("parsing version: %w", err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("incompatible argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memoryKiB, &p.time, &p.parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("parsing parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decoding salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decoding key: %w", err)
	}
	if len(key) == 0 || len(key) > 512 {
		return p, nil, nil, fmt.Errorf("implausible key length %d", len(key))
	}

	return p, salt, key, nil
}
