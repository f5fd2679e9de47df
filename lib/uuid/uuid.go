// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package uuid

import (
	"context"
	"fmt"
	"strings"

	"github.com/hexkit-project/hexkit/lib/byteutil"
	"github.com/hexkit-project/hexkit/lib/digest"
)

// UUID is a 128-bit RFC 4122 identifier. Fixed-size value type:
// copy, compare, and use as a map key freely.
type UUID [16]byte

// Well-known namespaces for name-based generation (RFC 4122
// appendix C). Process-wide immutable constants.
var (
	NamespaceDNS  = mustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = mustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = mustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = mustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// MD5Func is the digest capability required by [NewV3]. The function
// must return the full 16-byte MD5 sum of its input.
type MD5Func func(data []byte) []byte

// MissingPrimitiveError reports that an optional digest primitive
// needed by a generator was not supplied.
type MissingPrimitiveError struct {
	// Primitive names the absent capability ("md5").
	Primitive string
}

func (e *MissingPrimitiveError) Error() string {
	return fmt.Sprintf("digest primitive %q not available", e.Primitive)
}

// String renders the canonical lowercase 8-4-4-4-12 form.
func (u UUID) String() string {
	hex := byteutil.BytesToHex(u[:])
	return hex[0:8] + "-" + hex[8:12] + "-" + hex[12:16] + "-" + hex[16:20] + "-" + hex[20:32]
}

// Version returns the version nibble from byte 6.
func (u UUID) Version() int {
	return int(u[6] >> 4)
}

// Bytes returns the identifier as a fresh 16-byte slice.
func (u UUID) Bytes() []byte {
	return append([]byte(nil), u[:]...)
}

// stamp writes the version nibble and the RFC 4122 variant bits into
// a raw 16-byte value. Every generator applies this last.
func stamp(raw [16]byte, version int) UUID {
	raw[6] = (raw[6] & 0x0F) | byte(version)<<4
	raw[8] = (raw[8] & 0x3F) | 0x80
	return UUID(raw)
}

// NewV4 returns a random identifier: 16 bytes from the secure RNG
// with version 4 and the variant bits stamped in. Distinctness across
// calls is probabilistic (122 random bits).
func NewV4() (UUID, error) {
	random, err := byteutil.RandomBytes(16)
	if err != nil {
		return UUID{}, fmt.Errorf("generating v4 UUID: %w", err)
	}
	var raw [16]byte
	copy(raw[:], random)
	return stamp(raw, 4), nil
}

// NewV3 derives a deterministic identifier from MD5(namespace ++
// name). The MD5 capability is supplied by the caller; a nil md5
// yields *MissingPrimitiveError. The empty name is valid and hashes
// the namespace bytes alone.
func NewV3(md5 MD5Func, namespace UUID, name string) (UUID, error) {
	if md5 == nil {
		return UUID{}, &MissingPrimitiveError{Primitive: "md5"}
	}
	sum := md5(append(namespace.Bytes(), byteutil.TextToBytes(name)...))
	var raw [16]byte
	copy(raw[:], sum)
	return stamp(raw, 3), nil
}

// NewV5 derives a deterministic identifier from the first 16 bytes of
// SHA-1(namespace ++ name). Same contract as NewV3 with a core
// digest, so no capability is needed.
func NewV5(ctx context.Context, namespace UUID, name string) (UUID, error) {
	sum, err := digest.Sum(ctx, digest.SHA1, append(namespace.Bytes(), byteutil.TextToBytes(name)...))
	if err != nil {
		return UUID{}, fmt.Errorf("deriving v5 UUID: %w", err)
	}
	var raw [16]byte
	copy(raw[:], sum[:16])
	return stamp(raw, 5), nil
}

// Parse accepts an identifier in any dash placement: all dashes are
// stripped and the remaining text must decode as exactly 32 hex
// digits. Canonical grouping is not enforced. Returns
// *byteutil.FormatError on malformed input.
func Parse(text string) (UUID, error) {
	stripped := strings.ReplaceAll(text, "-", "")
	if len(stripped) != 32 {
		return UUID{}, &byteutil.FormatError{
			Encoding: "uuid",
			Reason:   fmt.Sprintf("want 32 hex digits, got %d", len(stripped)),
		}
	}
	decoded, err := byteutil.HexToBytes(stripped)
	if err != nil {
		return UUID{}, &byteutil.FormatError{
			Encoding: "uuid",
			Reason:   err.Error(),
		}
	}
	var u UUID
	copy(u[:], decoded)
	return u, nil
}

// mustParse parses a UUID literal known to be valid at compile time.
// Panics on failure; only used for package constants.
func mustParse(text string) UUID {
	u, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("invalid UUID constant %q: %v", text, err))
	}
	return u
}
