// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package codemap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/petar-djukic/codemap/internal/policy"
	"github.com/petar-djukic/codemap/internal/report"
	"github.com/petar-djukic/codemap/internal/walker"
	"github.com/petar-djukic/codemap/pkg/types"
)

const defaultOutputDir = "."

// New validates the config and returns a ready-to-use Mapper. A missing
// root is reported here, before anything is written.
func New(cfg Config) (Mapper, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	p := policy.New(*cfg.Rules)
	return &mapper{
		cfg:    cfg,
		policy: p,
		walker: walker.New(cfg.Root, p),
	}, nil
}

type mapper struct {
	cfg    Config
	policy *policy.Policy
	walker *walker.Walker
}

func (m *mapper) Run(ctx context.Context) (*Result, error) {
	files, err := m.walker.BuildFileList(ctx)
	if err != nil {
		return nil, fmt.Errorf("building file list: %w", err)
	}
	tree, err := m.walker.BuildFolderTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("building folder tree: %w", err)
	}

	asm := report.NewAssembler(m.policy)
	rep, err := asm.Assemble(ctx, tree, files)
	if err != nil {
		return nil, fmt.Errorf("assembling report: %w", err)
	}

	path, err := report.WriteFile(m.cfg.OutputDir, m.cfg.Root, rep, m.cfg.Now())
	if err != nil {
		return nil, err
	}

	counts := rep.Counts()
	result := &Result{
		OutputPath:    path,
		Files:         len(rep.Sections),
		CodeExcluded:  counts[types.CodeExcluded],
		SignatureOnly: counts[types.SignaturesOnly],
	}

	// The report exists at this point; an estimate failure is reported, not returned.
	result.TokenEstimate, result.Bytes, result.EstimateErr = report.EstimateFile(path)

	sigStats := asm.SignatureStats()
	slog.Info("Project map written",
		"path", path,
		"files", result.Files,
		"code_excluded", result.CodeExcluded,
		"signature_only", result.SignatureOnly,
		"signatures", sigStats.Signatures,
		"read_failures", sigStats.ReadFailures,
	)
	return result, nil
}

func (m *mapper) Tree(ctx context.Context) (string, error) {
	return m.walker.BuildFolderTree(ctx)
}

// validateConfig checks that required fields are present and the root is a
// directory.
func validateConfig(cfg Config) error {
	if cfg.Root == "" {
		return fmt.Errorf("%w: Root is required", ErrInvalidConfig)
	}
	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrRootNotFound, cfg.Root)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if cfg.Rules == nil {
		rules := types.DefaultRuleSet()
		cfg.Rules = &rules
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
}
