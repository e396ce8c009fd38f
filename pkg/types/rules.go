// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across codemap packages.
package types

import "path/filepath"

// RuleSet holds the path rules for one run. It is built once at startup and
// never mutated afterwards.
type RuleSet struct {
	ExcludedDirs     []string // Directory names pruned everywhere (structure and content)
	ExcludedCodeDirs []string // Path prefixes whose content is hidden but still listed
	SignatureOnly    []string // Files or directories rendered as declaration headers
	ExcludedFiles    []string // Relative paths removed entirely
	ExcludedPrefixes []string // File name prefixes removed entirely
	IncludeOnly      []string // Optional allowlist; empty means everything
	CommentMarker    string   // Single-line comment marker dropped by the content filter
}

// DefaultRoot is the directory mapped by the codemap command.
const DefaultRoot = "./src"

// DefaultRuleSet returns the rule tables compiled into the codemap binary.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		ExcludedDirs: []string{".git", "target", "venv", "vendor", "__pycache__"},
		ExcludedCodeDirs: []string{
			filepath.Join("src", "decoders", "phoenix.rs"),
			".gitignore",
			"collect.py",
			"code_map",
			".env",
			"graph.dot",
			"solana_pools.json",
			filepath.Join("src", "visualizer"),
		},
		SignatureOnly: nil,
		ExcludedFiles: []string{
			"collect.py",
			"Cargo.lock",
			"test1.py",
			"test2.py",
			"test3.py",
			"test4.py",
			"graph.png",
		},
		ExcludedPrefixes: []string{"code_map", "vendor", "test", ".cache"},
		IncludeOnly:      nil,
		CommentMarker:    "//",
	}
}

// RenderMode says how a file's content appears in the report.
type RenderMode int

const (
	Full           RenderMode = iota // Filtered file content
	CodeExcluded                     // Placeholder only, content never read
	SignaturesOnly                   // Extracted declaration headers
)

// String returns the human-readable name of the render mode.
func (m RenderMode) String() string {
	switch m {
	case Full:
		return "full"
	case CodeExcluded:
		return "code_excluded"
	case SignaturesOnly:
		return "signatures_only"
	default:
		return "unknown"
	}
}
