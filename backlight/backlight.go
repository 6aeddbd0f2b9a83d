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

// Package backlight provides discovery of and access to the backlight
// class devices the kernel exposes under sysfs. Each device is a
// directory holding three plain-text counters: brightness (writable),
// actual_brightness and max_brightness (read-only).
package backlight

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// DefaultRoot is where the kernel exposes backlight class devices.
const DefaultRoot = "/sys/class/backlight"

// FilesystemClient abstracts the sysfs file operations for testability.
// This interface allows mocking of all filesystem access.
type FilesystemClient interface {
	// ReadFile reads the entire file content
	ReadFile(path string) ([]byte, error)
	// WriteFile writes data to a file, replacing prior content
	WriteFile(path string, data []byte, perm os.FileMode) error
	// Glob returns the paths matching a shell pattern
	Glob(pattern string) ([]string, error)
	// Access checks file accessibility for the given mode (e.g. unix.W_OK)
	Access(path string, mode uint32) error
}

// DefaultFilesystemClient implements FilesystemClient against the real
// filesystem.
type DefaultFilesystemClient struct{}

// NewDefaultFilesystemClient creates a new DefaultFilesystemClient.
func NewDefaultFilesystemClient() *DefaultFilesystemClient {
	return &DefaultFilesystemClient{}
}

func (c *DefaultFilesystemClient) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (c *DefaultFilesystemClient) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (c *DefaultFilesystemClient) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

func (c *DefaultFilesystemClient) Access(path string, mode uint32) error {
	return unix.Access(path, mode)
}

// Root returns the backlight class directory, honouring the
// SHADE_BACKLIGHT_ROOT environment override.
func Root() string {
	if root := os.Getenv("SHADE_BACKLIGHT_ROOT"); root != "" {
		return root
	}
	return DefaultRoot
}
