// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package codemap defines the public interface for codemap, which writes a
// single text snapshot of a source tree: its folder structure followed by
// the filtered content, or only the declaration headers, of every file.
package codemap

import (
	"context"
	"errors"
	"time"

	"github.com/petar-djukic/codemap/pkg/types"
)

// Error types for the codemap API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrRootNotFound  = errors.New("root directory not found")
)

// Config configures a Mapper.
type Config struct {
	Root      string           // Directory to map (required)
	OutputDir string           // Where the report is written (default ".")
	Rules     *types.RuleSet   // Path rules (default types.DefaultRuleSet())
	Now       func() time.Time // Clock for the report name (default time.Now)
}

// Result holds the outcome of a Mapper.Run invocation.
type Result struct {
	OutputPath    string // Written report file
	Files         int    // Sections in the report
	CodeExcluded  int    // Sections rendered as the code-excluded marker
	SignatureOnly int    // Sections rendered as declaration headers
	Bytes         int    // Size of the written report
	TokenEstimate int    // Bytes / 4
	EstimateErr   error  // Set when the report could not be read back for the estimate
}

// Mapper builds project maps for one root.
type Mapper interface {
	// Run walks the root, assembles the report and writes it to a
	// timestamped file in the output directory.
	Run(ctx context.Context) (*Result, error)

	// Tree returns only the rendered folder tree.
	Tree(ctx context.Context) (string, error)
}
