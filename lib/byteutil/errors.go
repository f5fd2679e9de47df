// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package byteutil

import "fmt"

// FormatError reports malformed textual input to a decoder (hex,
// Base64, UUID). It is a recoverable input-validation failure, never
// an internal fault.
type FormatError struct {
	// Encoding names the codec that rejected the input ("hex",
	// "base64", "uuid").
	Encoding string

	// Reason describes what was wrong, suitable for direct display.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s input: %s", e.Encoding, e.Reason)
}

// formatErrorf constructs a FormatError for the given encoding.
func formatErrorf(encoding, format string, args ...any) *FormatError {
	return &FormatError{Encoding: encoding, Reason: fmt.Sprintf(format, args...)}
}
