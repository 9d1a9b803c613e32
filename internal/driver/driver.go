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

// Package driver paces a CHIP-8 virtual machine: a fixed number of
// instructions per 60 Hz frame followed by one timer update.
package driver

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"

	"github.com/retrochip/chip8/chip8"
)

const (
	// MinTicksPerFrame and MaxTicksPerFrame bound the speed controls.
	MinTicksPerFrame = 1
	MaxTicksPerFrame = 64
)

// Frame reports what the host has to present after a frame.
type Frame struct {
	// Draw is true if video memory changed and needs rendering. The host
	// calls ClearDrawPending on the machine once it has rendered.
	Draw bool

	// Beep is true if the sound timer expired during this frame.
	Beep bool
}

// Driver runs a virtual machine frame by frame.
type Driver struct {
	vm     *chip8.CHIP_8
	logger *log.Logger

	ticks  int
	paused bool

	// frames counts the frames run since creation.
	frames int
}

// New returns a driver executing ticksPerFrame instructions every frame.
func New(vm *chip8.CHIP_8, ticksPerFrame int, logger *log.Logger) *Driver {
	d := &Driver{
		vm:     vm,
		logger: logger,
	}
	d.setTicks(ticksPerFrame)
	return d
}

// VM returns the driven virtual machine.
func (d *Driver) VM() *chip8.CHIP_8 {
	return d.vm
}

// Frame runs one frame: the frame's instructions unless paused, then the
// timer update. A stack fault stops the frame early and pauses the driver;
// the timers still advance so the host keeps its cadence.
func (d *Driver) Frame() (Frame, error) {
	var err error

	if !d.paused {
		for i := 0; i < d.ticks; i++ {
			if err = d.vm.Step(); err != nil {
				d.paused = true
				d.logger.Error("Execution halted", log.Err(err), log.Hex("pc", d.vm.PC))
				err = fmt.Errorf("frame %d: %w", d.frames, err)
				break
			}
		}
	}

	d.vm.UpdateTimers()
	d.frames++

	f := Frame{
		Draw: d.vm.DrawPending(),
		Beep: d.vm.Beep(),
	}
	if f.Beep {
		d.logger.Debug("Beep", log.Int("frame", d.frames))
	}

	return f, err
}

// Run executes frames back to back, without pacing, until frames have
// run, the context is done, or onFrame or a frame fails. onFrame may be nil.
func (d *Driver) Run(ctx context.Context, frames int, onFrame func(Frame) error) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := d.Frame()
		if err != nil {
			return err
		}

		if onFrame != nil {
			if err := onFrame(f); err != nil {
				return err
			}
		}
	}

	return nil
}

// StepInstruction executes a single instruction while paused.
func (d *Driver) StepInstruction() error {
	if !d.paused {
		return nil
	}
	return d.vm.Step()
}

// Paused is true while instructions are not executed.
func (d *Driver) Paused() bool {
	return d.paused
}

// Pause stops instruction execution. Timers keep running.
func (d *Driver) Pause() {
	d.paused = true
}

// Resume continues instruction execution.
func (d *Driver) Resume() {
	d.paused = false
}

// TogglePause flips between paused and running.
func (d *Driver) TogglePause() {
	d.paused = !d.paused
}

// Frames returns the number of frames run.
func (d *Driver) Frames() int {
	return d.frames
}

// TicksPerFrame returns the instructions executed per frame.
func (d *Driver) TicksPerFrame() int {
	return d.ticks
}

// IncSpeed executes one more instruction per frame.
func (d *Driver) IncSpeed() {
	d.setTicks(d.ticks + 1)
	d.logger.Info("Speed", log.Int("ticks_per_frame", d.ticks))
}

// DecSpeed executes one less instruction per frame.
func (d *Driver) DecSpeed() {
	d.setTicks(d.ticks - 1)
	d.logger.Info("Speed", log.Int("ticks_per_frame", d.ticks))
}

func (d *Driver) setTicks(n int) {
	switch {
	case n < MinTicksPerFrame:
		n = MinTicksPerFrame
	case n > MaxTicksPerFrame:
		n = MaxTicksPerFrame
	}
	d.ticks = n
}
