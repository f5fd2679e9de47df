// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package byteutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	buffers := [][]byte{
		nil,
		{0x00},
		{0xff},
		{0xde, 0xad, 0xbe, 0xef},
		bytes.Repeat([]byte{0x00, 0x7f, 0x80, 0xff}, 64),
	}
	for _, buf := range buffers {
		encoded := BytesToHex(buf)
		decoded, err := HexToBytes(encoded)
		if err != nil {
			t.Fatalf("HexToBytes(%q): %v", encoded, err)
		}
		if !bytes.Equal(decoded, buf) {
			t.Errorf("round trip of %x produced %x", buf, decoded)
		}
	}
}

func TestBytesToHexLowercase(t *testing.T) {
	got := BytesToHex([]byte{0xAB, 0xCD, 0xEF})
	if got != "abcdef" {
		t.Errorf("BytesToHex = %q, want %q", got, "abcdef")
	}
}

func TestBytesToHexEmpty(t *testing.T) {
	if got := BytesToHex(nil); got != "" {
		t.Errorf("BytesToHex(nil) = %q, want empty", got)
	}
}

func TestHexToBytesRejectsOddLength(t *testing.T) {
	_, err := HexToBytes("abc")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	if formatErr.Encoding != "hex" {
		t.Errorf("FormatError.Encoding = %q, want hex", formatErr.Encoding)
	}
}

func TestHexToBytesRejectsNonHex(t *testing.T) {
	for _, input := range []string{"zz", "12g4", "0x12"} {
		if _, err := HexToBytes(input); err == nil {
			t.Errorf("HexToBytes(%q) succeeded, want error", input)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", "日本語", "a\x00b"} {
		if got := BytesToText(TextToBytes(s)); got != s {
			t.Errorf("text round trip of %q produced %q", s, got)
		}
	}
}

func TestBase64RoundTrip(t *testing.T) {
	data := []byte("any + carnal / pleasure")
	decoded, err := Base64Decode(Base64Encode(data))
	if err != nil {
		t.Fatalf("Base64Decode: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("round trip produced %q", decoded)
	}
}

func TestBase64DecodeURLAlphabet(t *testing.T) {
	// "?>" encodes to "Pz4" in the URL-safe alphabet.
	decoded, err := Base64Decode("Pz4")
	if err != nil {
		t.Fatalf("Base64Decode: %v", err)
	}
	if string(decoded) != "?>" {
		t.Errorf("decoded %q, want %q", decoded, "?>")
	}
}

func TestBase64DecodeMalformed(t *testing.T) {
	_, err := Base64Decode("not*base64!")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if len(a) != 32 {
		t.Fatalf("RandomBytes returned %d bytes, want 32", len(a))
	}
	b, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two RandomBytes calls returned identical buffers")
	}
}

func TestByteViewImmutability(t *testing.T) {
	original := []byte{1, 2, 3}
	view := NewByteView(original)
	original[0] = 99
	if view.At(0) != 1 {
		t.Error("mutating the source slice was visible through the view")
	}
	slice := view.ByteSlice()
	slice[1] = 99
	if view.At(1) != 2 {
		t.Error("mutating ByteSlice output was visible through the view")
	}
}
