// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package byteutil

// ByteView holds an immutable view of a byte buffer. The zero value
// is an empty view. Copy a ByteView freely; the backing bytes are
// shared but never written after construction.
type ByteView struct {
	b []byte
}

// NewByteView wraps data in an immutable view. The input is copied so
// later mutation by the caller cannot be observed through the view.
func NewByteView(data []byte) ByteView {
	return ByteView{b: cloneBytes(data)}
}

// Len returns the view's length in bytes.
func (v ByteView) Len() int {
	return len(v.b)
}

// ByteSlice returns a copy of the data as a byte slice, preventing
// external mutation of the view.
func (v ByteView) ByteSlice() []byte {
	return cloneBytes(v.b)
}

// String returns the data as a string.
func (v ByteView) String() string {
	return string(v.b)
}

// At returns the byte at index i. Panics if i is out of range, same
// as slice indexing.
func (v ByteView) At(i int) byte {
	return v.b[i]
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
