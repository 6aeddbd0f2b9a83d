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

package fade

import (
	"fmt"

	"github.com/we-are-mono/shade/types"
)

// Mode selects what a run does with each device.
type Mode int

const (
	// ModeDim fades every device to zero.
	ModeDim Mode = iota
	// ModeRestore fades every device back to its preset level.
	ModeRestore
)

// DefaultPresets is the built-in restore table. The ddcci9 monitor
// restores to 70% rather than full brightness.
var DefaultPresets = map[string]string{
	"ddcci9": "70%",
}

// Policy resolves the ramp target for each device. Restore levels come
// from a per-device preset table with a 100% default, so device
// exceptions live in data rather than in code.
type Policy struct {
	Mode Mode

	// Presets maps a device name to its restore level, either absolute
	// or a percentage of the device maximum. Devices without an entry
	// restore to 100%.
	Presets map[string]string
}

// TargetFor computes the ramp target for the named device. The result
// is clamped to max: percentage presets cannot exceed it by
// construction, but absolute presets can.
func (p *Policy) TargetFor(name string, max types.Brightness) (types.Brightness, error) {
	spec := "0"
	if p.Mode == ModeRestore {
		spec = "100%"
		if preset, ok := p.Presets[name]; ok {
			spec = preset
		}
	}

	target, err := types.ParseWithPercentage(spec, max)
	if err != nil {
		return 0, fmt.Errorf("preset for %s: %w", name, err)
	}
	if target > max {
		target = max
	}
	return target, nil
}
