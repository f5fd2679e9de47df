// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package extra contributes the non-core digest algorithms to the
// digest dispatch table: MD5 (legacy, needed for v3 UUIDs), SHA-3,
// and BLAKE3. Binaries that want these call [RegisterAll] at startup;
// the transform core itself never depends on this package.
package extra

import (
	"crypto/md5"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/hexkit-project/hexkit/lib/digest"
)

// Algorithm names contributed by this package.
const (
	MD5     digest.Algorithm = "md5"
	SHA3256 digest.Algorithm = "sha3256"
	SHA3512 digest.Algorithm = "sha3512"
	BLAKE3  digest.Algorithm = "blake3"
)

// RegisterAll adds MD5, SHA3-256, SHA3-512, and BLAKE3 to the digest
// table. Safe to call more than once.
func RegisterAll() {
	digest.Register(MD5, md5.New)
	digest.Register(SHA3256, sha3.New256)
	digest.Register(SHA3512, sha3.New512)
	digest.Register(BLAKE3, func() hash.Hash { return blake3.New() })
}

// MD5Sum computes an MD5 digest in one call. This is the capability
// handed to the UUID engine for v3 generation; MD5 is used there for
// deterministic derivation only, not integrity protection.
func MD5Sum(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}
