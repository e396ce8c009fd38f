// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signature pulls declaration headers out of Rust-style source
// text. Matching is done with regular expressions over the raw file, not a
// parser: headers with braces in strings or comments can over-match, and
// unusually formatted multi-line headers can be missed.
package signature

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/petar-djukic/codemap/internal/content"
)

// NoSignatures is returned when a file has no recognizable declarations.
const NoSignatures = "[No signatures found]"

var (
	// Type, enum, trait and impl blocks, up to the opening brace.
	blockRe = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?(struct|enum|trait|impl)[^;{]*\{`)

	// Functions with optional visibility, async and unsafe qualifiers, up to
	// the body brace or the terminating semicolon of a bodiless declaration.
	fnRe = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?(async\s+)?(unsafe\s+)?fn\s+[^(]+\([^)]*\)[^{;]*[{;]`)

	attrRe  = regexp.MustCompile(`#\[[^\]]*\]\s*`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Extractor extracts declaration headers from files.
type Extractor struct {
	stats ExtractStats
}

// ExtractStats tracks extraction statistics.
type ExtractStats struct {
	FilesProcessed int
	ReadFailures   int
	Empty          int // Files with no matches
	Signatures     int
}

// NewExtractor creates a new signature extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Stats returns the statistics accumulated so far.
func (e *Extractor) Stats() ExtractStats {
	return e.stats
}

// File reads path and returns its declaration headers, one per line. Read
// failures come back as an inline placeholder rather than an error.
func (e *Extractor) File(path string) string {
	src, err := content.ReadText(path)
	if err != nil {
		e.stats.ReadFailures++
		slog.Warn("Signature read failed", "path", path, "error", err)
		return content.ReadErrorPlaceholder(err)
	}

	e.stats.FilesProcessed++
	sigs := e.Extract(src)
	if len(sigs) == 0 {
		e.stats.Empty++
		return NoSignatures
	}
	e.stats.Signatures += len(sigs)
	return strings.Join(sigs, "\n")
}

// Extract returns the block declarations followed by the callable
// declarations found in src, with duplicates removed. The first occurrence
// of each header keeps its position.
func (e *Extractor) Extract(src string) []string {
	var sigs []string

	for _, m := range blockRe.FindAllString(src, -1) {
		header := oneLine(beforeBrace(m))
		sigs = append(sigs, header+" { ... }")
	}

	for _, m := range fnRe.FindAllString(src, -1) {
		header := strings.TrimSpace(beforeBrace(m))
		header = attrRe.ReplaceAllString(header, "")
		header = strings.TrimRight(strings.TrimSpace(header), ";")
		sigs = append(sigs, oneLine(header)+";")
	}

	return dedup(sigs)
}

// beforeBrace returns the part of a match preceding its first '{'.
func beforeBrace(match string) string {
	header, _, _ := strings.Cut(match, "{")
	return header
}

// oneLine trims a header and collapses internal whitespace, including line
// breaks, to single spaces.
func oneLine(header string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(header), " ")
}

func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
