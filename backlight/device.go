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
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/we-are-mono/shade/types"
)

// Counter file names within a device directory.
const (
	brightnessFile = "brightness"
	actualFile     = "actual_brightness"
	maxFile        = "max_brightness"
)

// Device describes one backlight class device and its three counters.
// Devices are independent of each other; after discovery each one is
// handed to exactly one ramp worker.
type Device struct {
	// Name is the device directory name, e.g. "intel_backlight" or "ddcci9".
	Name string
	// Dir is the device directory containing the counters.
	Dir string

	fs FilesystemClient
}

// NewDevice creates a Device for the given sysfs directory.
func NewDevice(dir string, fs FilesystemClient) *Device {
	return &Device{
		Name: filepath.Base(dir),
		Dir:  dir,
		fs:   fs,
	}
}

// BrightnessPath returns the path of the writable brightness counter.
func (d *Device) BrightnessPath() string {
	return filepath.Join(d.Dir, brightnessFile)
}

// Actual reads the live brightness, the starting point for a ramp.
func (d *Device) Actual() (types.Brightness, error) {
	return d.readCounter(actualFile)
}

// Max reads the device's upper bound. All targets are clamped to it.
func (d *Device) Max() (types.Brightness, error) {
	return d.readCounter(maxFile)
}

func (d *Device) readCounter(name string) (types.Brightness, error) {
	path := filepath.Join(d.Dir, name)
	data, err := d.fs.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	b, err := types.ParseCounter(data)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return b, nil
}

// SetBrightness writes value as decimal text to the brightness counter,
// replacing the previous content. The kernel interface takes the bare
// number, no trailing newline.
func (d *Device) SetBrightness(value types.Brightness) error {
	path := d.BrightnessPath()
	if err := d.fs.WriteFile(path, []byte(value.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Writable reports whether the current process may write the brightness
// counter. Unprivileged runs typically see read-only devices.
func (d *Device) Writable() bool {
	return d.fs.Access(d.BrightnessPath(), unix.W_OK) == nil
}
