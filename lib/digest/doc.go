// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes message digests for in-memory byte buffers
// under a named algorithm.
//
// The four SHA algorithms (SHA-1, SHA-256, SHA-384, SHA-512) are
// built in. Anything else — MD5, SHA-3, BLAKE3 — is contributed by a
// collaborator through [Register]; this package never reimplements a
// digest, it only dispatches through its algorithm table. Unknown
// names fail with [*UnsupportedAlgorithmError] and never return a
// partial buffer.
//
// [Sum] takes a context because digesting is the one suspension point
// of the transform core: callers await it, and several calls may be
// in flight at once. Each call owns its input and output buffers, so
// no synchronization beyond the algorithm table's own lock is needed.
package digest
