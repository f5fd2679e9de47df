// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package fileload

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	content := []byte("hello, hexkit")
	path := writeFile(t, "input.bin", content)

	view, err := Loader{}.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(view.ByteSlice(), content) {
		t.Errorf("Load = %q, want %q", view.ByteSlice(), content)
	}
}

func TestLoadSizeExceeded(t *testing.T) {
	path := writeFile(t, "big.bin", make([]byte, 2048))

	_, err := Loader{MaxSize: 1024}.Load(context.Background(), path)
	var exceeded *SizeExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected *SizeExceededError, got %v", err)
	}
	if exceeded.Size != 2048 || exceeded.Limit != 1024 {
		t.Errorf("error = %+v, want size 2048 limit 1024", exceeded)
	}
	// Message is human-readable, not raw byte counts.
	if !strings.Contains(exceeded.Error(), "KiB") {
		t.Errorf("error message %q lacks humanized size", exceeded.Error())
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Loader{}.Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoadCancelledContext(t *testing.T) {
	path := writeFile(t, "input.bin", []byte("x"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Loader{}).Load(ctx, path); err == nil {
		t.Error("Load with cancelled context succeeded")
	}
}

func TestLoadGzip(t *testing.T) {
	content := bytes.Repeat([]byte("compressible "), 100)
	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	if _, err := writer.Write(content); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	path := writeFile(t, "input.gz", compressed.Bytes())

	view, err := Loader{Decompress: true}.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(view.ByteSlice(), content) {
		t.Error("decompressed content does not match original")
	}

	// Without Decompress the raw gzip bytes come back.
	raw, err := Loader{}.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load raw: %v", err)
	}
	if !bytes.Equal(raw.ByteSlice(), compressed.Bytes()) {
		t.Error("raw load does not match file bytes")
	}
}

func TestLoadGzipDecompressedCap(t *testing.T) {
	// Small on disk, over the cap once decompressed.
	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	if _, err := writer.Write(make([]byte, 8192)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	path := writeFile(t, "bomb.gz", compressed.Bytes())

	_, err := Loader{MaxSize: 1024, Decompress: true}.Load(context.Background(), path)
	var exceeded *SizeExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected *SizeExceededError, got %v", err)
	}
}
