// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package content strips blank lines and whole-line comments from source
// files before they are copied into the project map.
package content

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNotUTF8 is returned when a file's bytes are not valid UTF-8 text.
var ErrNotUTF8 = errors.New("invalid UTF-8")

// Filter drops lines that carry no code.
type Filter struct {
	commentMarker string
}

// New creates a filter that treats lines starting with commentMarker, after
// leading whitespace, as comments. An empty marker disables comment removal.
func New(commentMarker string) *Filter {
	return &Filter{commentMarker: commentMarker}
}

// File reads path and returns its filtered text. Read and decode failures
// are returned as a one-line placeholder so a single bad file never stops
// the report.
func (f *Filter) File(path string) string {
	text, err := ReadText(path)
	if err != nil {
		slog.Warn("Content read failed", "path", path, "error", err)
		return ReadErrorPlaceholder(err)
	}
	return f.Text(text)
}

// Text filters already loaded text. Kept lines retain their indentation and
// lose trailing whitespace; order is preserved.
func (f *Filter) Text(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		if stripped == "" {
			continue
		}
		if f.commentMarker != "" && strings.HasPrefix(stripped, f.commentMarker) {
			continue
		}
		kept = append(kept, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return strings.Join(kept, "\n")
}

// ReadText loads a file and checks that it decodes as UTF-8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}
	return string(data), nil
}

// ReadErrorPlaceholder renders a read failure as the inline diagnostic used
// in place of file content.
func ReadErrorPlaceholder(err error) string {
	return fmt.Sprintf("[Error reading file: %v]", err)
}
