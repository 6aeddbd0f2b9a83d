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
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
)

// MockFilesystemClient is a mock implementation of FilesystemClient for
// testing. It serves reads and globs from an in-memory file map and
// records every write in order.
type MockFilesystemClient struct {
	mu sync.Mutex

	// State
	Files      map[string]string
	Writes     map[string][]string
	Unwritable map[string]bool

	// Call counters for verification
	ReadFileCalls  int
	WriteFileCalls int
	GlobCalls      int
	AccessCalls    int

	// Error injection for testing error paths
	ReadFileError  error
	WriteFileError error
	GlobError      error
	// WriteFileErrorOn fails writes only for the given path.
	WriteFileErrorOn string
}

// NewMockFilesystemClient creates a new MockFilesystemClient.
func NewMockFilesystemClient() *MockFilesystemClient {
	return &MockFilesystemClient{
		Files:      make(map[string]string),
		Writes:     make(map[string][]string),
		Unwritable: make(map[string]bool),
	}
}

// AddDevice seeds the three counters for a device directory under root.
func (m *MockFilesystemClient) AddDevice(root, name string, actual, max int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Join(root, name)
	m.Files[filepath.Join(dir, brightnessFile)] = strconv.Itoa(actual) + "\n"
	m.Files[filepath.Join(dir, actualFile)] = strconv.Itoa(actual) + "\n"
	m.Files[filepath.Join(dir, maxFile)] = strconv.Itoa(max) + "\n"
}

func (m *MockFilesystemClient) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadFileCalls++
	if m.ReadFileError != nil {
		return nil, m.ReadFileError
	}
	content, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return []byte(content), nil
}

func (m *MockFilesystemClient) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteFileCalls++
	if m.WriteFileError != nil {
		return m.WriteFileError
	}
	if m.WriteFileErrorOn != "" && m.WriteFileErrorOn == path {
		return fmt.Errorf("write %s: %w", path, os.ErrPermission)
	}
	m.Files[path] = string(data)
	m.Writes[path] = append(m.Writes[path], string(data))
	return nil
}

func (m *MockFilesystemClient) Glob(pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GlobCalls++
	if m.GlobError != nil {
		return nil, m.GlobError
	}
	var matches []string
	for path := range m.Files {
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			matches = append(matches, path)
		}
	}
	// Deterministic order for tests; the real glob sorts too.
	sort.Strings(matches)
	return matches, nil
}

func (m *MockFilesystemClient) Access(path string, mode uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AccessCalls++
	if m.Unwritable[path] {
		return os.ErrPermission
	}
	if _, ok := m.Files[path]; !ok {
		return os.ErrNotExist
	}
	return nil
}
