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

// Package types defines the core value types for Shade.
// It includes the Brightness type and its parsing rules for absolute and
// percentage-based specifications.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPercentage is returned when a percentage specification falls
// outside the range [0, 100].
var ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")

// Brightness is a brightness level on a device-defined scale. The unit is
// whatever the device's max_brightness counter defines, so values are only
// meaningful relative to counters from the same device.
type Brightness uint64

// String renders the brightness as the decimal text the sysfs counters use.
func (b Brightness) String() string {
	return strconv.FormatUint(uint64(b), 10)
}

// ParseBrightness parses a decimal string into a Brightness. Negative or
// non-numeric input is rejected.
func ParseBrightness(input string) (Brightness, error) {
	v, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid brightness %q: %w", input, err)
	}
	return Brightness(v), nil
}

// ParseWithPercentage parses a brightness specification that is either an
// absolute value or, with a '%' suffix, a percentage of max. Percentages
// outside [0, 100] fail with ErrInvalidPercentage. Absolute values are not
// clamped here; clamping against the device maximum happens at policy
// resolution.
func ParseWithPercentage(input string, max Brightness) (Brightness, error) {
	pct, ok := strings.CutSuffix(input, "%")
	if !ok {
		return ParseBrightness(input)
	}
	v, err := strconv.ParseUint(pct, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", input, err)
	}
	if v > 100 {
		return 0, fmt.Errorf("percentage %q out of range: %w", input, ErrInvalidPercentage)
	}
	return Brightness(float64(v) / 100.0 * float64(max)), nil
}

// ParseCounter parses the contents of a sysfs counter file, which hold a
// single decimal integer optionally followed by trailing whitespace.
func ParseCounter(data []byte) (Brightness, error) {
	return ParseBrightness(strings.TrimSpace(string(data)))
}
