// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codemap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/codemap/pkg/types"
)

var fixedNow = func() time.Time { return time.Date(2026, 10, 19, 14, 30, 0, 0, time.Local) }

func TestNew_MissingRoot(t *testing.T) {
	out := t.TempDir()

	_, err := New(Config{Root: filepath.Join(out, "src"), OutputDir: out})
	assert.ErrorIs(t, err, ErrRootNotFound)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries, "no report may be written")
}

func TestNew_RootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := New(Config{Root: file})
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestNew_EmptyRoot(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRun_WritesReport(t *testing.T) {
	root := setupTestRepo(t, map[string]string{
		"main.rs":           "// entry point\n\nfn main() {\n    run();\n}\n",
		"net/tcp.rs":        "pub struct Conn {\n    fd: i32,\n}\n\npub fn dial(addr: &str) -> Conn {\n    Conn { fd: 0 }\n}\n",
		"visualizer/ui.rs":  "fn draw() {}\n",
		"target/debug.rs":   "fn junk() {}\n",
		"test_helpers.rs":   "fn helper() {}\n",
		"code_map_old.txt":  "old report\n",
		"config/Cargo.lock": "lock\n",
	})
	out := t.TempDir()

	rules := types.RuleSet{
		ExcludedDirs:     []string{"target"},
		ExcludedCodeDirs: []string{"visualizer"},
		SignatureOnly:    []string{"net"},
		ExcludedFiles:    []string{filepath.Join("config", "Cargo.lock")},
		ExcludedPrefixes: []string{"test", "code_map"},
		CommentMarker:    "//",
	}
	m, err := New(Config{Root: root, OutputDir: out, Rules: &rules, Now: fixedNow})
	require.NoError(t, err)

	result, err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "code_map_2026-10-19_14-30-00.txt"), result.OutputPath)
	assert.Equal(t, 3, result.Files)
	assert.Equal(t, 1, result.CodeExcluded)
	assert.Equal(t, 1, result.SignatureOnly)
	assert.NoError(t, result.EstimateErr)

	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	text := string(data)

	assert.Equal(t, len(data), result.Bytes)
	assert.Equal(t, len(data)/4, result.TokenEstimate)

	assert.True(t, strings.HasPrefix(text, "===== PROJECT STRUCTURE MAP =====\n\n"))
	assert.Contains(t, text, "===== FILE CONTENTS =====")
	assert.Contains(t, text, root+"/main.rs:\nfn main() {\n    run();\n}\n")
	assert.NotContains(t, text, "entry point")

	assert.Contains(t, text, "pub struct Conn { ... }\npub fn dial(addr: &str) -> Conn;")
	assert.NotContains(t, text, "fd: i32")

	assert.Contains(t, text, filepath.Join("visualizer", "ui.rs")+":\n[CODE EXCLUDED]\n")
	assert.NotContains(t, text, "fn draw")

	for _, gone := range []string{"target", "debug.rs", "test_helpers.rs", "code_map_old.txt", "Cargo.lock"} {
		assert.NotContains(t, text, gone)
	}
	assert.Contains(t, text, "    ui.rs")
}

func TestRun_DefaultRules(t *testing.T) {
	root := setupTestRepo(t, map[string]string{
		"main.rs":      "fn main() {}\n",
		".git/HEAD":    "ref\n",
		"test_util.rs": "fn t() {}\n",
	})

	m, err := New(Config{Root: root, OutputDir: t.TempDir(), Now: fixedNow})
	require.NoError(t, err)

	result, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Files)
}

func TestTree_MatchesReportTree(t *testing.T) {
	root := setupTestRepo(t, map[string]string{
		"a.rs":   "fn a() {}\n",
		"b/c.rs": "fn c() {}\n",
	})
	out := t.TempDir()

	m, err := New(Config{Root: root, OutputDir: out, Now: fixedNow})
	require.NoError(t, err)

	tree, err := m.Tree(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root)+"/\n    a.rs\nb/\n    c.rs", tree)

	result, err := m.Run(context.Background())
	require.NoError(t, err)
	data, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), tree)
}

// --- Test helpers ---

func setupTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
