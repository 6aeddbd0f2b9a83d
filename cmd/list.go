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
package cmd

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/we-are-mono/shade/backlight"
	"github.com/we-are-mono/shade/fade"
)

var listCurve bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered backlight devices",
	Long:  `Shows every backlight device with its current level, maximum and writability.`,
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listCurve, "curve", false, "Plot the dim ramp each device would follow")
}

func runList(cmd *cobra.Command, args []string) {
	if err := executeList(cmd.OutOrStdout(), backlight.NewDefaultFilesystemClient()); err != nil {
		cmd.PrintErrln(fmt.Sprintf("[ERROR] %v", err))
		exitWithError()
	}
}

// executeList prints the device inventory, optionally with the dim
// ramp each device would follow from its current level.
func executeList(w io.Writer, fs backlight.FilesystemClient) error {
	devices, err := backlight.Scan(backlight.Root(), fs)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Fprintln(w, "No backlight devices found")
		return nil
	}

	for _, dev := range devices {
		current, err := dev.Actual()
		if err != nil {
			return err
		}
		max, err := dev.Max()
		if err != nil {
			return err
		}

		access := "read-only"
		if dev.Writable() {
			access = "writable"
		}
		percent := 0
		if max > 0 {
			percent = int(float64(current) / float64(max) * 100.0)
		}

		fmt.Fprintf(w, "%s  %s/%s (%d%%, %s)\n", dev.Name, current, max, percent, access)

		if listCurve && current > 0 {
			values := []float64{float64(current)}
			for _, v := range fade.DimSequence(current, fade.DefaultStep) {
				values = append(values, float64(v))
			}
			graph := asciigraph.Plot(values,
				asciigraph.Height(8),
				asciigraph.Caption(fmt.Sprintf("%s dim ramp (%d ticks)", dev.Name, len(values)-1)))
			fmt.Fprintln(w, graph)
			fmt.Fprintln(w)
		}
	}
	return nil
}
