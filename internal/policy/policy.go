// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package policy decides which paths appear in the project map and how
// their content is rendered. All decisions are pure functions of the rule
// set and the queried path.
package policy

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/codemap/pkg/types"
)

const sep = string(os.PathSeparator)

// Policy answers inclusion and rendering questions for relative paths.
type Policy struct {
	excludedDirs     map[string]bool
	excludedFiles    map[string]bool
	excludedPrefixes []string
	codeExcluded     []string
	signatureOnly    []string
	includeOnly      []string
	commentMarker    string
}

// New compiles a rule set into a Policy. Path entries are cleaned so that
// "./a" and "a/" compare equal to "a".
func New(rules types.RuleSet) *Policy {
	p := &Policy{
		excludedDirs:     make(map[string]bool, len(rules.ExcludedDirs)),
		excludedFiles:    make(map[string]bool, len(rules.ExcludedFiles)),
		excludedPrefixes: append([]string(nil), rules.ExcludedPrefixes...),
		codeExcluded:     cleanAll(rules.ExcludedCodeDirs),
		signatureOnly:    cleanAll(rules.SignatureOnly),
		includeOnly:      cleanAll(rules.IncludeOnly),
		commentMarker:    rules.CommentMarker,
	}
	for _, d := range rules.ExcludedDirs {
		p.excludedDirs[d] = true
	}
	for _, f := range rules.ExcludedFiles {
		p.excludedFiles[filepath.Clean(f)] = true
	}
	return p
}

// CommentMarker returns the single-line comment marker of the rule set.
func (p *Policy) CommentMarker() string {
	return p.commentMarker
}

// IsIncluded reports whether rel passes the include-only allowlist. With an
// empty allowlist every path passes. The root always passes so traversal can
// reach allowlisted subpaths. Otherwise rel must equal an entry, be an
// ancestor of one, or be a descendant of one.
func (p *Policy) IsIncluded(rel string) bool {
	if len(p.includeOnly) == 0 {
		return true
	}
	rel = normalize(rel)
	if rel == "" {
		return true
	}
	for _, incl := range p.includeOnly {
		if rel == incl {
			return true
		}
		if strings.HasPrefix(incl, rel+sep) {
			return true
		}
		if strings.HasPrefix(rel, incl+sep) {
			return true
		}
	}
	return false
}

// IsCodeExcluded reports whether rel starts with any code-excluded entry.
// The comparison is a raw string prefix, so "src/vis" also hides
// "src/visual.rs".
func (p *Policy) IsCodeExcluded(rel string) bool {
	rel = normalize(rel)
	for _, excluded := range p.codeExcluded {
		if strings.HasPrefix(rel, excluded) {
			return true
		}
	}
	return false
}

// IsSignatureOnly reports whether rel is, or lies under, a signature-only
// entry. Unlike IsCodeExcluded the match stops at separator boundaries.
func (p *Policy) IsSignatureOnly(rel string) bool {
	rel = normalize(rel)
	for _, sig := range p.signatureOnly {
		if rel == sig || strings.HasPrefix(rel, sig+sep) {
			return true
		}
	}
	return false
}

// IsExcludedDir reports whether a directory with this name is pruned.
func (p *Policy) IsExcludedDir(name string) bool {
	return p.excludedDirs[name]
}

// IsExcludedFile reports whether a file is removed from the map entirely,
// either by its exact relative path or by a name prefix.
func (p *Policy) IsExcludedFile(rel, name string) bool {
	if p.excludedFiles[normalize(rel)] {
		return true
	}
	for _, prefix := range p.excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// AcceptFile combines the exclusion and allowlist checks applied to every
// file the walker sees.
func (p *Policy) AcceptFile(rel, name string) bool {
	return !p.IsExcludedFile(rel, name) && p.IsIncluded(rel)
}

// Mode returns how rel is rendered. Code exclusion takes precedence over
// signature extraction.
func (p *Policy) Mode(rel string) types.RenderMode {
	switch {
	case p.IsCodeExcluded(rel):
		return types.CodeExcluded
	case p.IsSignatureOnly(rel):
		return types.SignaturesOnly
	default:
		return types.Full
	}
}

// normalize cleans rel and maps the root ("." or "") to "".
func normalize(rel string) string {
	if rel == "" {
		return ""
	}
	rel = filepath.Clean(rel)
	if rel == "." {
		return ""
	}
	return rel
}

func cleanAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, filepath.Clean(p))
	}
	return out
}
