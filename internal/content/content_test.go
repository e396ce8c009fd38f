// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_DropsCommentsAndBlankLines(t *testing.T) {
	f := New("//")
	in := strings.Join([]string{"  // comment", "", "let x = 1;", "   "}, "\n")

	assert.Equal(t, "let x = 1;", f.Text(in))
}

func TestText_PreservesIndentationAndOrder(t *testing.T) {
	f := New("//")
	in := "fn main() {   \n\t// note\n    let a = 1; // trailing stays\n\n    call(a);\r\n}\n"

	want := "fn main() {\n    let a = 1; // trailing stays\n    call(a);\n}"
	assert.Equal(t, want, f.Text(in))
}

func TestText_EmptyMarkerKeepsComments(t *testing.T) {
	f := New("")

	assert.Equal(t, "// kept\nx", f.Text("// kept\n\nx\n"))
}

func TestText_OnlyCommentsYieldsEmpty(t *testing.T) {
	f := New("#")

	assert.Equal(t, "", f.Text("# a\n   # b\n\n"))
}

func TestFile_ReadsAndFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.rs")
	require.NoError(t, os.WriteFile(path, []byte("// header\nfn main() {}\n"), 0o644))

	assert.Equal(t, "fn main() {}", New("//").File(path))
}

func TestFile_MissingFileDegrades(t *testing.T) {
	out := New("//").File(filepath.Join(t.TempDir(), "missing.rs"))

	assert.True(t, strings.HasPrefix(out, "[Error reading file: "), out)
	assert.True(t, strings.HasSuffix(out, "]"))
	assert.NotContains(t, out, "\n")
}

func TestFile_InvalidUTF8Degrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 'a'}, 0o644))

	out := New("//").File(path)
	assert.Contains(t, out, "[Error reading file: ")
	assert.Contains(t, out, ErrNotUTF8.Error())
}
