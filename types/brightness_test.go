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

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseBrightness tests absolute brightness parsing
func TestParseBrightness(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Brightness
		wantErr  bool
	}{
		{
			name:     "zero",
			input:    "0",
			expected: 0,
		},
		{
			name:     "typical sysfs value",
			input:    "7500",
			expected: 7500,
		},
		{
			name:    "non-numeric",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "negative",
			input:   "-5",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "embedded whitespace",
			input:   "12 34",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseBrightness(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestParseWithPercentage tests percentage-relative parsing against a maximum
func TestParseWithPercentage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      Brightness
		expected Brightness
		wantErr  bool
		errIs    error
	}{
		{
			name:     "half of max",
			input:    "50%",
			max:      200,
			expected: 100,
		},
		{
			name:     "full brightness",
			input:    "100%",
			max:      937,
			expected: 937,
		},
		{
			name:     "zero percent",
			input:    "0%",
			max:      937,
			expected: 0,
		},
		{
			name:     "rounds toward zero",
			input:    "33%",
			max:      100,
			expected: 33,
		},
		{
			name:     "truncates fractional result",
			input:    "70%",
			max:      255,
			expected: 178,
		},
		{
			name:    "over 100 percent",
			input:   "150%",
			max:     200,
			wantErr: true,
			errIs:   ErrInvalidPercentage,
		},
		{
			name:     "absolute value passes through unclamped",
			input:    "200",
			max:      50,
			expected: 200,
		},
		{
			name:    "garbage before percent sign",
			input:   "abc%",
			max:     100,
			wantErr: true,
		},
		{
			name:    "bare percent sign",
			input:   "%",
			max:     100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseWithPercentage(tt.input, tt.max)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.True(t, errors.Is(err, tt.errIs))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestParseCounter tests parsing of raw sysfs counter file contents
func TestParseCounter(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Brightness
		wantErr  bool
	}{
		{
			name:     "trailing newline",
			data:     []byte("120\n"),
			expected: 120,
		},
		{
			name:     "surrounding whitespace",
			data:     []byte("  42 \n"),
			expected: 42,
		},
		{
			name:    "empty file",
			data:    []byte(""),
			wantErr: true,
		},
		{
			name:    "non-numeric content",
			data:    []byte("on\n"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCounter(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestBrightnessString tests decimal rendering
func TestBrightnessString(t *testing.T) {
	assert.Equal(t, "0", Brightness(0).String())
	assert.Equal(t, "4095", Brightness(4095).String())
}
