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
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"k8s.io/utils/clock"

	"github.com/we-are-mono/shade/backlight"
	"github.com/we-are-mono/shade/types"
)

// Result is the outcome of one device's ramp.
type Result struct {
	Device *backlight.Device
	Target types.Brightness
	// Writes is the number of counter writes the ramp performed.
	Writes int
	Err    error
}

// Converged reports whether the ramp reached its target.
func (r Result) Converged() bool {
	return r.Err == nil
}

// Config carries the knobs for a fade run.
type Config struct {
	// Root is the backlight class directory to scan.
	Root string
	// Step is the per-tick decrement while dimming to zero.
	Step types.Brightness
	// Interval is the delay between ramp ticks.
	Interval time.Duration
	// Policy resolves each device's target.
	Policy Policy
	// Clock is injected into every engine; nil selects the real clock.
	Clock clock.Clock
	// Logger for run progress; nil is silent.
	Logger hclog.Logger
}

// Controller discovers devices and drives one ramp engine per device.
type Controller struct {
	cfg Config
	fs  backlight.FilesystemClient
}

// NewController creates a Controller with reasonable defaults for any
// zero-valued config fields.
func NewController(cfg Config, fs backlight.FilesystemClient) *Controller {
	if cfg.Root == "" {
		cfg.Root = backlight.DefaultRoot
	}
	if cfg.Step == 0 {
		cfg.Step = DefaultStep
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	return &Controller{
		cfg: cfg,
		fs:  fs,
	}
}

// job is the per-device setup a worker needs, resolved before any
// worker starts so that setup failures abort the whole run cleanly.
type job struct {
	dev    *backlight.Device
	start  types.Brightness
	target types.Brightness
}

// Run performs a complete fade run: discover devices, resolve each
// device's start and target, then ramp all devices concurrently and
// wait for every worker to finish. Discovery, read and parse failures
// abort before any worker starts. Once workers are running, a failure
// is contained to its own device and reported in that device's Result.
// Zero discovered devices yields an empty result set and no writes.
func (c *Controller) Run() ([]Result, error) {
	devices, err := backlight.Scan(c.cfg.Root, c.fs)
	if err != nil {
		return nil, err
	}

	jobs := make([]job, 0, len(devices))
	for _, dev := range devices {
		j, err := c.prepare(dev)
		if err != nil {
			return nil, err
		}
		if j == nil {
			continue
		}
		jobs = append(jobs, *j)
	}

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = c.ramp(j)
		}(i, j)
	}
	wg.Wait()

	return results, nil
}

// prepare reads a device's counters and resolves its target. Devices
// reporting a zero maximum are skipped with a warning; the kernel
// contract makes them meaningless.
func (c *Controller) prepare(dev *backlight.Device) (*job, error) {
	start, err := dev.Actual()
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", dev.Name, err)
	}
	max, err := dev.Max()
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", dev.Name, err)
	}
	if max == 0 {
		c.cfg.Logger.Warn("skipping device with zero max brightness", "device", dev.Name)
		return nil, nil
	}

	target, err := c.cfg.Policy.TargetFor(dev.Name, max)
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", dev.Name, err)
	}

	c.cfg.Logger.Info("discovered device",
		"device", dev.Name, "current", start.String(), "max", max.String(), "target", target.String())

	return &job{dev: dev, start: start, target: target}, nil
}

// ramp runs one engine to convergence and packages the outcome.
func (c *Controller) ramp(j job) Result {
	engine := NewEngine(c.cfg.Step, c.cfg.Interval, c.cfg.Clock, c.cfg.Logger)
	written, err := engine.Run(j.dev, j.start, j.target)

	if err != nil {
		c.cfg.Logger.Error("ramp failed", "device", j.dev.Name, "error", err)
	} else {
		c.cfg.Logger.Debug("ramp converged", "device", j.dev.Name, "writes", len(written))
	}

	return Result{
		Device: j.dev,
		Target: j.target,
		Writes: len(written),
		Err:    err,
	}
}

// DimSequence returns the values a dim-to-zero ramp writes starting
// from start. Used to preview the curve without touching a device.
func DimSequence(start, step types.Brightness) []types.Brightness {
	if step == 0 {
		step = DefaultStep
	}
	e := Engine{step: step}

	var values []types.Brightness
	for current := start; current != 0; {
		current = e.next(current, 0)
		values = append(values, current)
	}
	return values
}
