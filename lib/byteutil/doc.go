// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package byteutil provides the encode/decode primitives every other
// hexkit package is built on: text/byte conversion, hex and Base64
// codecs, and cryptographically-strong random fill.
//
// All conversions are total except the decoders, which return a
// [*FormatError] describing the first malformed position. Decoders
// never produce partial output: on error the returned slice is nil.
//
// [ByteView] is the ownership wrapper handed across component
// boundaries. Buffers inside a ByteView are never mutated after
// construction; ByteSlice returns a copy so callers cannot reach the
// backing array.
//
// This package has no dependencies on other hexkit packages.
package byteutil
