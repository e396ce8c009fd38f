// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command codemap writes a project map of ./src: the folder tree followed
// by the filtered content of every file, into code_map_<timestamp>.txt.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/codemap/internal/logger"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the command tree. Path rules are compiled in; only
// logging is configurable, through flags or CODEMAP_* environment variables.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "codemap",
		Short:         "Write a project map of ./src",
		Long:          "codemap writes the folder structure of ./src followed by the filtered content of each file into a timestamped text file, and prints a rough token estimate.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logger.Setup(logger.Config{
				Level:  v.GetString("log-level"),
				Format: v.GetString("log-format"),
			}, cmd.ErrOrStderr())
			return err
		},
		RunE: runMap,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Bind flags to viper.
	v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Env vars: CODEMAP_LOG_LEVEL, CODEMAP_LOG_FORMAT.
	v.SetEnvPrefix("CODEMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print codemap version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "codemap %s\n", version)
		},
	}
}
