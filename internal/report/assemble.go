// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report assembles the project map from the walker's output and
// writes it as a plain-text file.
package report

import (
	"context"
	"log/slog"

	"github.com/petar-djukic/codemap/internal/content"
	"github.com/petar-djukic/codemap/internal/policy"
	"github.com/petar-djukic/codemap/internal/signature"
	"github.com/petar-djukic/codemap/pkg/types"
)

// CodeExcludedMarker replaces the content of code-excluded files.
const CodeExcludedMarker = "[CODE EXCLUDED]"

// Assembler renders one section per file according to the policy.
type Assembler struct {
	policy    *policy.Policy
	filter    *content.Filter
	extractor *signature.Extractor
}

// NewAssembler creates an assembler that filters content with the policy's
// comment marker.
func NewAssembler(p *policy.Policy) *Assembler {
	return &Assembler{
		policy:    p,
		filter:    content.New(p.CommentMarker()),
		extractor: signature.NewExtractor(),
	}
}

// Assemble builds the report. Code-excluded files are never read, and
// signature-only files never show raw content.
func (a *Assembler) Assemble(ctx context.Context, tree string, files []types.FileEntry) (types.Report, error) {
	r := types.Report{Tree: tree, Sections: make([]types.Section, 0, len(files))}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return types.Report{}, err
		}

		mode := a.policy.Mode(f.RelPath)
		var body string
		switch mode {
		case types.CodeExcluded:
			body = CodeExcludedMarker
		case types.SignaturesOnly:
			body = a.extractor.File(f.AbsPath)
		default:
			body = a.filter.File(f.AbsPath)
		}
		slog.Debug("Rendered file", "path", f.RelPath, "mode", mode.String(), "bytes", len(body))

		r.Sections = append(r.Sections, types.Section{RelPath: f.RelPath, Mode: mode, Body: body})
	}
	return r, nil
}

// SignatureStats returns the extractor statistics for the files assembled
// so far.
func (a *Assembler) SignatureStats() signature.ExtractStats {
	return a.extractor.Stats()
}
