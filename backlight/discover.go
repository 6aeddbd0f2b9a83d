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
)

// Scan discovers every backlight device under root by globbing for
// brightness counters one directory deep. Zero matches is not an error;
// callers get an empty slice and have nothing to do. Only a failure of
// the glob itself is reported.
func Scan(root string, fs FilesystemClient) ([]*Device, error) {
	pattern := filepath.Join(root, "*", brightnessFile)
	matches, err := fs.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	devices := make([]*Device, 0, len(matches))
	for _, match := range matches {
		devices = append(devices, NewDevice(filepath.Dir(match), fs))
	}
	return devices, nil
}
