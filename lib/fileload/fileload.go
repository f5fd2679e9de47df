// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package fileload reads files into immutable byte views for the
// transform core, enforcing a size cap before any bytes reach a
// renderer or digest. Oversized input is rejected with a
// human-readable message; it never panics the toolkit or truncates
// silently.
//
// Gzip-compressed files are detected by magic number and, when
// enabled, transparently decompressed — the cap then applies to the
// decompressed size, since that is what the core would hold in
// memory.
package fileload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"

	"github.com/hexkit-project/hexkit/lib/byteutil"
)

// DefaultMaxSize is the default input cap: 50 MiB. The whole buffer
// is held in memory, so the cap bounds the toolkit's footprint.
const DefaultMaxSize = 50 << 20

// SizeExceededError reports input larger than the configured cap.
type SizeExceededError struct {
	// Path is the rejected file.
	Path string

	// Size is the input size in bytes. For compressed input this is
	// the decompressed size at the point the cap was crossed.
	Size int64

	// Limit is the configured cap in bytes.
	Limit int64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("%s is %s, larger than the %s limit",
		e.Path, humanize.IBytes(uint64(e.Size)), humanize.IBytes(uint64(e.Limit)))
}

// Loader reads whole files under a size cap. The zero value uses
// DefaultMaxSize with decompression off.
type Loader struct {
	// MaxSize caps the bytes held in memory; 0 means DefaultMaxSize.
	MaxSize int64

	// Decompress enables transparent gzip decompression for files
	// starting with the gzip magic number.
	Decompress bool
}

var gzipMagic = []byte{0x1f, 0x8b}

// Load reads the file at path into an immutable view. The context is
// checked once up front: file reading is the collaborator's single
// suspension point and is not interruptible mid-read.
func (l Loader) Load(ctx context.Context, path string) (byteutil.ByteView, error) {
	if err := ctx.Err(); err != nil {
		return byteutil.ByteView{}, err
	}
	limit := l.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return byteutil.ByteView{}, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.Size() > limit && !l.Decompress {
		return byteutil.ByteView{}, &SizeExceededError{Path: path, Size: info.Size(), Limit: limit}
	}

	file, err := os.Open(path)
	if err != nil {
		return byteutil.ByteView{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if l.Decompress {
		header := make([]byte, 2)
		n, err := io.ReadFull(file, header)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return byteutil.ByteView{}, fmt.Errorf("reading %s: %w", path, err)
		}
		reader = io.MultiReader(bytes.NewReader(header[:n]), file)
		if n == 2 && bytes.Equal(header, gzipMagic) {
			gz, err := gzip.NewReader(reader)
			if err != nil {
				return byteutil.ByteView{}, fmt.Errorf("opening gzip stream in %s: %w", path, err)
			}
			defer gz.Close()
			reader = gz
		} else if info.Size() > limit {
			return byteutil.ByteView{}, &SizeExceededError{Path: path, Size: info.Size(), Limit: limit}
		}
	}

	// Read one byte past the cap so crossing it is detectable even
	// when the pre-read size is unknown (compressed input).
	data, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return byteutil.ByteView{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) > limit {
		return byteutil.ByteView{}, &SizeExceededError{Path: path, Size: int64(len(data)), Limit: limit}
	}
	return byteutil.NewByteView(data), nil
}
