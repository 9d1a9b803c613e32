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

// Command chip8 runs CHIP-8 programs in an SDL window, or headless for
// automated checks.
package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/retroenv/retrogolib/log"

	"github.com/retrochip/chip8/chip8"
	"github.com/retrochip/chip8/internal/config"
	"github.com/retrochip/chip8/internal/diag"
	"github.com/retrochip/chip8/internal/driver"
)

var (
	// VM is the CHIP-8 virtual machine.
	VM *chip8.CHIP_8

	// Driver paces the virtual machine.
	Driver *driver.Driver

	// Logger is the structured application log.
	Logger *log.Logger

	// Diagnostics records unknown instructions seen while running.
	Diagnostics *diag.Recorder
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			_, _ = os.Stderr.WriteString(usageErr.Error() + "\n")
			usageErr.ShowUsage(os.Stderr)
		}
		os.Exit(2)
	}

	Logger = config.CreateLogger(opts.Debug, opts.Quiet)
	Diagnostics = diag.New(Logger, 100)

	// create a new CHIP-8 virtual machine, must happen early!
	VM = chip8.New(
		chip8.WithRand(newRand(opts.Seed)),
		chip8.WithDiagnostics(Diagnostics),
	)
	Driver = driver.New(VM, opts.TicksPerFrame(), Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.Headless {
		err = RunHeadless(ctx, opts)
	} else {
		err = RunWindow(ctx, opts)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			Logger.Info("Operation cancelled")
			return
		}
		stop()
		Logger.Fatal(err.Error())
	}
}

// newRand seeds the random number generator for the RND instruction.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
