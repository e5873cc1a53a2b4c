// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/ggetv/cfg4j/discovery"
	"github.com/ggetv/cfg4j/environment"
	"github.com/ggetv/cfg4j/internal/logger"
	"github.com/ggetv/cfg4j/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfg4j",
	Short: "Inspect environment-scoped configuration trees",
	Long: `cfg4j merges the configuration files of an environment the same way the
library does (environment resolution, per-format parsing, last-file-wins
merge) and prints the result, so override precedence can be inspected
without running the consuming application.`,
	// Errors are printed once by us; suppress cobra's usage dump on them.
	SilenceUsage: true,
}

var flags struct {
	rootDir string
	files   []string
	verbose bool
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.rootDir, "root", "r", "", "configuration tree root directory (env: CFG4J_ROOT)")
	rootCmd.PersistentFlags().StringSliceVarP(&flags.files, "file", "f", nil, "config file to merge, repeatable, later wins (env: CFG4J_FILES)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging to stderr (env: CFG4J_VERBOSE)")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newGetCmd())
}

// newFilesSource assembles the source from env settings overridden by flags.
func newFilesSource() (*source.FilesSource, *logger.Logger, error) {
	s, err := parseSettings()
	if err != nil {
		return nil, nil, err
	}

	if flags.rootDir != "" {
		s.RootDir = flags.rootDir
	}
	if len(flags.files) > 0 {
		s.Files = flags.files
	}
	if flags.verbose {
		s.Verbose = true
	}

	level := zerolog.WarnLevel
	if s.Verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewLogger("cfg4j", level)

	if s.RootDir == "" {
		return nil, nil, fmt.Errorf("configuration root is required (--root or CFG4J_ROOT)")
	}

	cfg := source.FilesConfig{
		RootDir: s.RootDir,
		Logger:  log.Logger,
	}
	if len(s.Files) > 0 {
		cfg.FilesProvider = discovery.StaticFilesProvider{Files: s.Files}
	}

	src, err := source.NewFilesSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	return src, log, nil
}

func newDumpCmd() *cobra.Command {
	var showProvenance bool

	cmd := &cobra.Command{
		Use:   "dump <environment>",
		Short: "Print the merged configuration of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, log, err := newFilesSource()
			if err != nil {
				return err
			}

			cfg, err := src.Configuration(environment.New(args[0]))
			if err != nil {
				log.Error().Err(err).Str("environment", args[0]).Msg("configuration query failed")
				return err
			}

			for _, key := range cfg.Keys() {
				v, _ := cfg.Get(key)
				if showProvenance {
					origin, _ := cfg.Provenance(key)
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\t# %s\n", key, v, origin)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, v)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&showProvenance, "provenance", false, "annotate every key with the file its value came from")

	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <environment> <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, log, err := newFilesSource()
			if err != nil {
				return err
			}

			cfg, err := src.Configuration(environment.New(args[0]))
			if err != nil {
				log.Error().Err(err).Str("environment", args[0]).Msg("configuration query failed")
				return err
			}

			v, err := cfg.Get(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}
