// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package hexui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Example is one entry in the tabbed example switcher: a code
// snippet demonstrating a toolkit operation.
type Example struct {
	// Title is the tab label.
	Title string

	// Language is the chroma lexer name.
	Language string

	// Code is the raw snippet source.
	Code string
}

// BuiltinExamples are the snippets shown in the viewer's example
// pane, one per transform surface.
var BuiltinExamples = []Example{
	{
		Title:    "hex",
		Language: "go",
		Code: `view := hexview.Render(data, hexview.DefaultConfig())
for _, row := range view.Rows {
	fmt.Printf("%s  % X\n", row.OffsetLabel(), row.Bytes)
}
if view.Truncated {
	fmt.Printf("(%d bytes omitted)\n", view.Omitted())
}`,
	},
	{
		Title:    "hash",
		Language: "go",
		Code: `sum, err := digest.Sum(ctx, digest.SHA256, data)
if err != nil {
	return err
}
fmt.Println(byteutil.BytesToHex(sum))`,
	},
	{
		Title:    "uuid",
		Language: "go",
		Code: `id, err := uuid.NewV5(ctx, uuid.NamespaceDNS, "example.com")
if err != nil {
	return err
}
fmt.Println(id) // cfbff0d1-9375-5685-968c-48ce8b15ae17`,
	},
	{
		Title:    "base64",
		Language: "go",
		Code: `encoded := byteutil.Base64Encode(data)
decoded, err := byteutil.Base64Decode(encoded)
if err != nil {
	return err
}`,
	},
}

// renderExample syntax-highlights a snippet for a 256-color
// terminal. Falls back to the raw source when highlighting fails; an
// unstyled snippet beats an error pane.
func renderExample(example Example, dark bool) string {
	styleName := "friendly"
	if dark {
		styleName = "monokai"
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, example.Code, example.Language, "terminal256", styleName); err != nil {
		return example.Code
	}
	return buffer.String()
}
