// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/codemap/pkg/codemap"
	"github.com/petar-djukic/codemap/pkg/types"
)

// runMap builds the report for the fixed root.
func runMap(cmd *cobra.Command, args []string) error {
	m, err := newMapper(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := m.Run(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project map written to '%s'.\n", result.OutputPath)
	if result.EstimateErr != nil {
		fmt.Fprintf(out, "Token estimate failed: %v\n", result.EstimateErr)
		return nil
	}
	fmt.Fprintf(out, "Estimated token count: %d\n", result.TokenEstimate)
	return nil
}

// newTreeCmd creates the "tree" command.
func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the folder tree without writing a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMapper(cmd)
			if err != nil {
				return err
			}
			tree, err := m.Tree(cmd.Context())
			if err != nil {
				return fmt.Errorf("building folder tree: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree)
			return nil
		},
	}
}

// newMapper creates a mapper for the compiled-in root and rules, writing
// into the working directory.
func newMapper(cmd *cobra.Command) (codemap.Mapper, error) {
	m, err := codemap.New(codemap.Config{Root: types.DefaultRoot})
	if errors.Is(err, codemap.ErrRootNotFound) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: directory '%s' not found.\n", types.DefaultRoot)
	}
	return m, err
}
