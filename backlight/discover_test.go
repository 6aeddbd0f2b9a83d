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

package backlight

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScan tests device discovery under a root
func TestScan(t *testing.T) {
	fs := NewMockFilesystemClient()
	fs.AddDevice("/sys/class/backlight", "intel_backlight", 480, 937)
	fs.AddDevice("/sys/class/backlight", "ddcci9", 50, 100)
	// A directory without a brightness counter is not a device.
	fs.Files["/sys/class/backlight/stray/max_brightness"] = "100\n"

	devices, err := Scan("/sys/class/backlight", fs)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	names := []string{devices[0].Name, devices[1].Name}
	assert.Contains(t, names, "intel_backlight")
	assert.Contains(t, names, "ddcci9")
	assert.Equal(t, 1, fs.GlobCalls)
}

// TestScanNoDevices tests that zero matches is a valid, empty result
func TestScanNoDevices(t *testing.T) {
	fs := NewMockFilesystemClient()

	devices, err := Scan("/sys/class/backlight", fs)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

// TestScanGlobFailure tests that a failing glob is reported
func TestScanGlobFailure(t *testing.T) {
	fs := NewMockFilesystemClient()
	fs.GlobError = errors.New("glob exploded")

	_, err := Scan("/sys/class/backlight", fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan /sys/class/backlight")
}

// TestRoot tests the environment override for the sysfs root
func TestRoot(t *testing.T) {
	original := os.Getenv("SHADE_BACKLIGHT_ROOT")
	defer os.Setenv("SHADE_BACKLIGHT_ROOT", original)

	os.Unsetenv("SHADE_BACKLIGHT_ROOT")
	assert.Equal(t, DefaultRoot, Root())

	os.Setenv("SHADE_BACKLIGHT_ROOT", "/tmp/fake-backlight")
	assert.Equal(t, "/tmp/fake-backlight", Root())
}
