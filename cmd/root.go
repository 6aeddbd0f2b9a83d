// Copyright (C) 2025 Mono Technologies Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.

// Package cmd implements the CLI commands for Shade using cobra.
// It provides the root fade command, the device listing command and
// version management.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/we-are-mono/shade/backlight"
	"github.com/we-are-mono/shade/fade"
	"github.com/we-are-mono/shade/types"
)

// Version is the application version string.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	restoreMode  bool
	stepSize     uint64
	tickInterval time.Duration
	presets      map[string]string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "shade",
	Short: "Shade - Backlight Fader",
	Long: `Shade fades sysfs backlight devices instead of snapping them.

By default every discovered device dims smoothly to zero; with --restore
each device fades back to its preset level instead.`,
	Version: Version,
	Run:     runFade,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("Shade v%s (built: %s)\n", Version, BuildTime))

	rootCmd.Flags().BoolVarP(&restoreMode, "restore", "r", false, "Restore devices to their preset level instead of dimming")
	rootCmd.Flags().Uint64Var(&stepSize, "step", uint64(fade.DefaultStep), "Brightness units to drop per tick while dimming")
	rootCmd.Flags().DurationVar(&tickInterval, "interval", fade.DefaultInterval, "Delay between ramp ticks")
	rootCmd.Flags().StringToStringVar(&presets, "preset", fade.DefaultPresets, "Per-device restore level as name=value (value may be a percentage)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command and handles any errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion updates the version and build time for display in help and
// version output.
func SetVersion(version, buildTime string) {
	Version = version
	BuildTime = buildTime
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("Shade v%s (built: %s)\n", version, buildTime))
}

// exitWithError is a helper function that exits with code 1.
// It can be overridden in tests to avoid actual exit.
var exitWithError = func() {
	os.Exit(1)
}

// newLogger builds the run logger. The default level keeps the output
// down to the completion line; --verbose opens up per-tick detail.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "shade",
		Level: level,
	})
}

func runFade(cmd *cobra.Command, args []string) {
	if err := executeFade(cmd.OutOrStdout(), backlight.NewDefaultFilesystemClient()); err != nil {
		cmd.PrintErrln(fmt.Sprintf("[ERROR] %v", err))
		exitWithError()
	}
}

// executeFade performs a full fade run against the given filesystem and
// prints the per-device failures and the completion line.
func executeFade(w io.Writer, fs backlight.FilesystemClient) error {
	mode := fade.ModeDim
	if restoreMode {
		mode = fade.ModeRestore
	}

	ctrl := fade.NewController(fade.Config{
		Root:     backlight.Root(),
		Step:     types.Brightness(stepSize),
		Interval: tickInterval,
		Policy:   fade.Policy{Mode: mode, Presets: presets},
		Logger:   newLogger(),
	}, fs)

	results, err := ctrl.Run()
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if !res.Converged() {
			fmt.Fprintf(w, "[FAIL] %s: %v\n", res.Device.Name, res.Err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d devices failed to converge", failed, len(results))
	}

	fmt.Fprintln(w, "Ok!")
	return nil
}
