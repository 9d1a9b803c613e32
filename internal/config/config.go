/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Package config handles command line options and logger setup.
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultClock is the number of instructions executed per second. The
	// RCA 1802 interpreted roughly 500 CHIP-8 instructions a second.
	DefaultClock = 500

	// FrameRate is the timer and video refresh rate in Hz.
	FrameRate = 60
)

// Options contains all settings of the emulator.
type Options struct {
	ROM   string // path to the ROM, empty to pick one with a dialog
	Clock int    // instructions per second
	Scale int    // window pixels per CHIP-8 pixel
	Title string // window title
	Seed  int64  // random seed, 0 to seed from the clock

	// headless
	Headless bool
	Frames   int
	PNGOut   string
	Expect   string // expected framebuffer CRC32 hex

	Debug bool
	Quiet bool
}

// Defaults fills missing fields with reasonable defaults.
func (o *Options) Defaults() {
	if o.Clock <= 0 {
		o.Clock = DefaultClock
	}
	if o.Scale <= 0 {
		o.Scale = 10
	}
	if o.Title == "" {
		o.Title = "CHIP-8"
	}
	if o.Frames <= 0 {
		o.Frames = 300
	}
}

// TicksPerFrame returns how many instructions run between two timer
// updates at the configured clock.
func (o Options) TicksPerFrame() int {
	n := o.Clock / FrameRate
	if n < 1 {
		return 1
	}
	return n
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: chip8 [options] [rom file]\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	_, _ = fmt.Fprintln(w)
}

// ParseFlags parses the command line arguments, not including the program
// name. A single positional argument is taken as the ROM path.
func ParseFlags(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	switch rest := flags.Args(); len(rest) {
	case 0:
	case 1:
		if opts.ROM != "" {
			return opts, &UsageError{flags: flags, msg: "ROM given both as -rom and as argument"}
		}
		opts.ROM = rest[0]
	default:
		return opts, &UsageError{flags: flags, msg: fmt.Sprintf("unexpected arguments: %v", rest[1:])}
	}

	if opts.Headless && opts.ROM == "" {
		return opts, &UsageError{flags: flags, msg: "headless mode requires a ROM"}
	}

	opts.Defaults()
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.ROM, "rom", "", "path to the ROM to run, a file dialog is shown if none is given")
	flags.IntVar(&opts.Clock, "clock", DefaultClock, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", 10, "window scale")
	flags.StringVar(&opts.Title, "title", "CHIP-8", "window title")
	flags.Int64Var(&opts.Seed, "seed", 0, "random number seed, 0 seeds from the clock")

	// headless options
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window")
	flags.IntVar(&opts.Frames, "frames", 300, "frames to run in headless mode")
	flags.StringVar(&opts.PNGOut, "outpng", "", "write last framebuffer to PNG at path")
	flags.StringVar(&opts.Expect, "expect", "", "assert framebuffer CRC32 (hex)")

	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
