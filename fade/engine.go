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

// Package fade implements the per-device brightness ramp and the run
// orchestration around it. Each discovered device gets its own Engine
// running in its own goroutine; engines share nothing and converge
// independently.
package fade

import (
	"time"

	"github.com/hashicorp/go-hclog"
	"k8s.io/utils/clock"

	"github.com/we-are-mono/shade/backlight"
	"github.com/we-are-mono/shade/types"
)

const (
	// DefaultStep is the per-tick decrement while dimming to zero.
	DefaultStep types.Brightness = 4

	// DefaultInterval is the delay between ramp ticks.
	DefaultInterval = 10 * time.Millisecond
)

// Engine ramps a single device from a starting brightness to a target,
// one write per tick. The clock is injected so tests can run without
// real sleeps.
type Engine struct {
	step     types.Brightness
	interval time.Duration
	clock    clock.Clock
	logger   hclog.Logger
}

// NewEngine creates an Engine with the given step size and tick
// interval. A nil clock selects the real clock; a nil logger is silent.
func NewEngine(step types.Brightness, interval time.Duration, clk clock.Clock, logger hclog.Logger) *Engine {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{
		step:     step,
		interval: interval,
		clock:    clk,
		logger:   logger,
	}
}

// next applies one tick of the transition rule.
//
// Dimming to zero steps down linearly, clamped at zero. Any nonzero
// target is reached in a single jump on the first tick; the gap is not
// subdivided. The asymmetry is long-standing observed behavior and is
// kept as-is rather than silently changed to a symmetric ramp.
func (e *Engine) next(current, target types.Brightness) types.Brightness {
	if target == 0 {
		if current < e.step {
			return 0
		}
		return current - e.step
	}
	return target
}

// Run ramps dev from start to target and returns the values written, in
// order. A device already at its target produces no writes. A write
// failure stops this engine immediately; the error carries the counter
// path.
func (e *Engine) Run(dev *backlight.Device, start, target types.Brightness) ([]types.Brightness, error) {
	var written []types.Brightness

	current := start
	for current != target {
		current = e.next(current, target)
		if err := dev.SetBrightness(current); err != nil {
			return written, err
		}
		written = append(written, current)
		e.logger.Debug("wrote brightness",
			"device", dev.Name, "value", current.String(), "target", target.String())
		e.clock.Sleep(e.interval)
	}
	return written, nil
}
