// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package byteutil

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// TextToBytes returns the UTF-8 encoding of text. Go strings are
// already UTF-8 byte sequences, so this is a copy; the function
// exists so the text/byte boundary is explicit at call sites.
func TextToBytes(text string) []byte {
	return []byte(text)
}

// BytesToText decodes buf as UTF-8. Malformed sequences are replaced
// with U+FFFD per the standard replacement policy; the function never
// fails. This is Go's native string conversion behavior for display
// purposes (range/printing replace invalid sequences).
func BytesToText(buf []byte) string {
	return string(buf)
}

// BytesToHex encodes buf as lowercase hex, two digits per byte. An
// empty buffer yields an empty string.
func BytesToHex(buf []byte) string {
	return hex.EncodeToString(buf)
}

// HexToBytes decodes a lowercase or uppercase hex string. The input
// must have even length and contain only hex digits; otherwise a
// *FormatError is returned and the slice is nil.
func HexToBytes(hexString string) ([]byte, error) {
	if len(hexString)%2 != 0 {
		return nil, formatErrorf("hex", "odd length %d", len(hexString))
	}
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		if invalid, ok := err.(hex.InvalidByteError); ok {
			return nil, formatErrorf("hex", "invalid character %q", rune(invalid))
		}
		return nil, formatErrorf("hex", "%v", err)
	}
	return decoded, nil
}

// Base64Encode encodes buf with the standard alphabet and padding.
func Base64Encode(buf []byte) string {
	return base64.StdEncoding.EncodeToString(buf)
}

// Base64URLEncode encodes buf with the URL-safe alphabet, unpadded.
func Base64URLEncode(buf []byte) string {
	return base64.RawURLEncoding.EncodeToString(buf)
}

// Base64Decode decodes text in either the standard or URL-safe
// alphabet, with or without padding. Surrounding whitespace is
// ignored. Returns a *FormatError on any other malformed input.
func Base64Decode(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	for _, encoding := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if decoded, err := encoding.DecodeString(trimmed); err == nil {
			return decoded, nil
		}
	}
	return nil, formatErrorf("base64", "input is not valid in any base64 alphabet")
}

// RandomBytes returns n bytes from the platform's cryptographically
// secure random source. Never falls back to a weak generator: a
// failing entropy source is surfaced as an error.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("reading %d random bytes: %w", n, err)
	}
	return buf, nil
}
