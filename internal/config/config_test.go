package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "defaults",
			args: nil,
			want: Options{Clock: 500, Scale: 10, Title: "CHIP-8", Frames: 300},
		},
		{
			name: "positional rom",
			args: []string{"games/pong.ch8"},
			want: Options{ROM: "games/pong.ch8", Clock: 500, Scale: 10, Title: "CHIP-8", Frames: 300},
		},
		{
			name: "rom flag",
			args: []string{"-rom", "brix.ch8", "-clock", "700", "-scale", "4"},
			want: Options{ROM: "brix.ch8", Clock: 700, Scale: 4, Title: "CHIP-8", Frames: 300},
		},
		{
			name: "headless",
			args: []string{"-headless", "-frames", "60", "-outpng", "out.png", "-expect", "0x1234abcd", "-seed", "7", "ibm.ch8"},
			want: Options{
				ROM: "ibm.ch8", Clock: 500, Scale: 10, Title: "CHIP-8", Seed: 7,
				Headless: true, Frames: 60, PNGOut: "out.png", Expect: "0x1234abcd",
			},
		},
		{
			name: "invalid values fall back to defaults",
			args: []string{"-clock", "0", "-scale", "-1", "-frames", "0"},
			want: Options{Clock: 500, Scale: 10, Title: "CHIP-8", Frames: 300},
		},
		{
			name: "log levels",
			args: []string{"-debug", "-q"},
			want: Options{Clock: 500, Scale: 10, Title: "CHIP-8", Frames: 300, Debug: true, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags("chip8", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "unknown flag", args: []string{"-nope"}, msg: "nope"},
		{name: "two roms", args: []string{"a.ch8", "b.ch8"}, msg: "unexpected arguments"},
		{name: "rom twice", args: []string{"-rom", "a.ch8", "b.ch8"}, msg: "both"},
		{name: "headless without rom", args: []string{"-headless"}, msg: "requires a ROM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("chip8", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			assert.True(t, strings.Contains(err.Error(), tt.msg))
		})
	}
}

func TestShowUsage(t *testing.T) {
	_, err := ParseFlags("chip8", []string{"-nope"})

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))

	var buf bytes.Buffer
	usageErr.ShowUsage(&buf)
	assert.True(t, strings.Contains(buf.String(), "usage: chip8"))
	assert.True(t, strings.Contains(buf.String(), "-headless"))
}

func TestTicksPerFrame(t *testing.T) {
	tests := []struct {
		clock int
		want  int
	}{
		{clock: 500, want: 8},
		{clock: 600, want: 10},
		{clock: 1000, want: 16},
		{clock: 30, want: 1},
	}

	for _, tt := range tests {
		opts := Options{Clock: tt.clock}
		assert.Equal(t, tt.want, opts.TicksPerFrame())
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
