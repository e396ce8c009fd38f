// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/petar-djukic/codemap/pkg/types"
)

const (
	structureHeader = "===== PROJECT STRUCTURE MAP ====="
	contentsHeader  = "===== FILE CONTENTS ====="
	filePrefix      = "code_map_"
	timeLayout      = "2006-01-02_15-04-05"
	charsPerToken   = 4
)

var separator = strings.Repeat("-", 80)

// Filename returns the report file name for the given time.
func Filename(now time.Time) string {
	return filePrefix + now.Format(timeLayout) + ".txt"
}

// Write renders r. Each section is headed by "<root>/<relPath>:" and closed
// by an 80-dash separator line.
func Write(w io.Writer, root string, r types.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n\n", structureHeader)
	bw.WriteString(r.Tree)
	fmt.Fprintf(bw, "\n\n%s\n\n", contentsHeader)

	for _, s := range r.Sections {
		fmt.Fprintf(bw, "%s/%s:\n", root, s.RelPath)
		bw.WriteString(s.Body)
		if s.Mode == types.CodeExcluded {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "\n%s\n", separator)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteFile writes r into dir under a timestamped name and returns the path.
func WriteFile(dir, root string, r types.Report, now time.Time) (string, error) {
	path := filepath.Join(dir, Filename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	if err := Write(f, root, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing report file: %w", err)
	}
	return path, nil
}

// EstimateTokens approximates the token count of n bytes of text, one
// token per four bytes, rounded down.
func EstimateTokens(n int) int {
	return n / charsPerToken
}

// EstimateFile reads a written report back and estimates its token count.
// It also returns the byte length.
func EstimateFile(path string) (tokens, size int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("reading report for estimate: %w", err)
	}
	return EstimateTokens(len(data)), len(data), nil
}
