// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package uuid constructs and parses RFC 4122 identifiers.
//
// Three independent pure generators are provided: [NewV4] (random),
// [NewV3] (MD5 name-based), and [NewV5] (SHA-1 name-based). All three
// share the same post-processing: the version nibble is written into
// byte 6 and the variant bits 10 into byte 8, then the value renders
// as the canonical lowercase 8-4-4-4-12 grouping.
//
// MD5 is not part of the transform core's digest set, so [NewV3]
// takes the MD5 primitive as an explicit capability ([MD5Func]); a
// nil capability yields [*MissingPrimitiveError] instead of a runtime
// lookup failure. [NewV5] routes through the digest package's SHA-1.
//
// [Parse] is deliberately lenient about grouping: it strips all
// dashes and validates only that 32 hex digits remain, matching how
// the rest of the toolkit accepts identifiers pasted in any shape.
package uuid
