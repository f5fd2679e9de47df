// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"
	"sync"
)

// Algorithm names a digest function. The canonical form is lowercase
// without separators ("sha256", "blake3"); [ParseAlgorithm] folds
// user spellings like "SHA-256" into it.
type Algorithm string

// Built-in algorithms. Output sizes are 20, 32, 48, and 64 bytes
// respectively.
const (
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// UnsupportedAlgorithmError reports a digest request for an algorithm
// that is neither built in nor registered.
type UnsupportedAlgorithmError struct {
	Algorithm Algorithm
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported digest algorithm %q", string(e.Algorithm))
}

var (
	tableMu sync.RWMutex
	table   = map[Algorithm]func() hash.Hash{
		SHA1:   sha1.New,
		SHA256: sha256.New,
		SHA384: sha512.New384,
		SHA512: sha512.New,
	}
)

// Register adds an algorithm to the dispatch table. The constructor
// must return a fresh hash.Hash per call. Registering an existing
// name replaces it; collaborators use this to supply MD5, SHA-3, and
// other non-core digests at program startup.
func Register(algorithm Algorithm, constructor func() hash.Hash) {
	tableMu.Lock()
	defer tableMu.Unlock()
	table[algorithm] = constructor
}

// Algorithms returns the registered algorithm names in sorted order.
func Algorithms() []Algorithm {
	tableMu.RLock()
	defer tableMu.RUnlock()
	names := make([]Algorithm, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParseAlgorithm folds a user-supplied spelling ("SHA-256", "Sha256")
// into canonical form and verifies it is registered.
func ParseAlgorithm(name string) (Algorithm, error) {
	canonical := Algorithm(strings.ReplaceAll(strings.ToLower(name), "-", ""))
	tableMu.RLock()
	_, ok := table[canonical]
	tableMu.RUnlock()
	if !ok {
		return "", &UnsupportedAlgorithmError{Algorithm: canonical}
	}
	return canonical, nil
}

// Size returns the digest length in bytes for the given algorithm.
func Size(algorithm Algorithm) (int, error) {
	constructor, err := lookup(algorithm)
	if err != nil {
		return 0, err
	}
	return constructor().Size(), nil
}

// Sum computes the digest of data under the named algorithm. The
// whole buffer is hashed in one pass; there is no incremental or
// streaming mode. Respects context cancellation before starting —
// an in-flight hash is not interruptible and simply completes.
func Sum(ctx context.Context, algorithm Algorithm, data []byte) ([]byte, error) {
	constructor, err := lookup(algorithm)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hasher := constructor()
	hasher.Write(data)
	return hasher.Sum(nil), nil
}

func lookup(algorithm Algorithm) (func() hash.Hash, error) {
	tableMu.RLock()
	constructor, ok := table[algorithm]
	tableMu.RUnlock()
	if !ok {
		return nil, &UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	return constructor, nil
}
