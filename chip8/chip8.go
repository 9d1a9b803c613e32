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

// Package chip8 implements the CHIP-8 virtual machine: memory, registers,
// timers and the fetch-decode-execute cycle. The host drives it by calling
// Step once per instruction and UpdateTimers once per 60 Hz frame.
package chip8

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 0x1000

	// FontBase is where the hex digit sprites are stored.
	FontBase = 0x050

	// ProgramBase is where programs are loaded and execution begins.
	ProgramBase = 0x200

	// MaxProgramSize is the largest program Load accepts.
	MaxProgramSize = 0xFFF - ProgramBase

	// ScreenWidth and ScreenHeight are the video resolution in pixels.
	ScreenWidth  = 64
	ScreenHeight = 32

	NumKeys      = 16
	NumRegisters = 16
	StackSize    = 16

	addressMask = MemorySize - 1
)

var (
	// ErrProgramTooLarge is returned by Load when a program will not fit
	// between ProgramBase and the end of memory.
	ErrProgramTooLarge = errors.New("program too large to fit in memory")

	// ErrStackOverflow is returned by Step when a call is made with all
	// stack cells in use.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned by Step when returning with an empty
	// stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// CHIP_8 virtual machine emulator.
type CHIP_8 struct {
	// Memory addressable by CHIP-8. The font sprites live at FontBase and
	// programs are loaded to ProgramBase.
	Memory [MemorySize]byte

	// Video memory, one byte per pixel, row-major. A set pixel is 1.
	Video [ScreenWidth * ScreenHeight]byte

	// V are the 16 virtual registers. VF doubles as the carry, borrow and
	// collision flag.
	V [NumRegisters]byte

	// I is the address register. It is not range checked; memory accesses
	// through it wrap at MemorySize.
	I uint16

	// PC is the program counter. All programs begin at ProgramBase.
	PC uint16

	// Stack holds return addresses. SP is the next free cell.
	Stack [StackSize]uint16
	SP    uint

	// DT and ST are the delay and sound timers, counting down at 60 Hz.
	DT byte
	ST byte

	// Keys hold the current state for the 16-key pad keys.
	Keys [NumKeys]bool

	// draw is set whenever video memory is written and cleared by the host.
	draw bool

	// beep is raised by UpdateTimers when the sound timer expires.
	beep bool

	rng  *rand.Rand
	diag DiagnosticHandler
}

// Option configures a CHIP_8 at construction.
type Option func(*CHIP_8)

// WithRand sets the random source used by the RND instruction.
func WithRand(r *rand.Rand) Option {
	return func(vm *CHIP_8) {
		vm.rng = r
	}
}

// WithDiagnostics sets the handler notified of unknown or unsupported
// instructions.
func WithDiagnostics(h DiagnosticHandler) Option {
	return func(vm *CHIP_8) {
		vm.diag = h
	}
}

// New creates a reset CHIP-8 virtual machine with no program loaded.
func New(opts ...Option) *CHIP_8 {
	vm := &CHIP_8{}

	for _, opt := range opts {
		opt(vm)
	}

	if vm.rng == nil {
		vm.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	vm.Reset()

	return vm
}

// LoadROM creates a new virtual machine with program loaded.
func LoadROM(program []byte, opts ...Option) (*CHIP_8, error) {
	vm := New(opts...)

	if err := vm.Load(program); err != nil {
		return nil, err
	}

	return vm, nil
}

// Reset clears memory, video, registers, stack, keys and timers, then
// reloads the font sprites. Any loaded program is erased.
func (vm *CHIP_8) Reset() {
	vm.Memory = [MemorySize]byte{}
	vm.Video = [ScreenWidth * ScreenHeight]byte{}
	vm.V = [NumRegisters]byte{}
	vm.Stack = [StackSize]uint16{}
	vm.Keys = [NumKeys]bool{}

	vm.PC = ProgramBase
	vm.I = 0
	vm.SP = 0

	vm.DT = 0
	vm.ST = 0

	vm.draw = false
	vm.beep = false

	copy(vm.Memory[FontBase:], font[:])
}

// Load copies program into memory at ProgramBase. Nothing else is reset.
// Memory is left untouched if the program is too large.
func (vm *CHIP_8) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, %d available", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	copy(vm.Memory[ProgramBase:], program)

	return nil
}

// Fetch returns the big-endian instruction at the program counter.
func (vm *CHIP_8) Fetch() uint16 {
	return uint16(vm.read(vm.PC))<<8 | uint16(vm.read(vm.PC+1))
}

// Step the CHIP-8 virtual machine a single instruction. Unknown
// instructions are reported to the diagnostics handler and skipped. The
// only errors are stack faults, after which the machine is unchanged.
func (vm *CHIP_8) Step() error {
	inst := vm.Fetch()

	// 12-bit address operand
	a := inst & 0xFFF

	// byte and nibble operands
	b := byte(inst & 0xFF)
	n := byte(inst & 0xF)

	// x and y register operands
	x := uint(inst >> 8 & 0xF)
	y := uint(inst >> 4 & 0xF)

	switch inst & 0xF000 {
	case 0x0000:
		switch inst {
		case 0x00E0:
			vm.cls()
		case 0x00EE:
			return vm.ret()
		default:
			vm.sys(inst)
		}
	case 0x1000:
		vm.jump(a)
	case 0x2000:
		return vm.call(a)
	case 0x3000:
		vm.skip(vm.V[x] == b)
	case 0x4000:
		vm.skip(vm.V[x] != b)
	case 0x5000:
		vm.skip(vm.V[x] == vm.V[y])
	case 0x6000:
		vm.loadX(x, b)
	case 0x7000:
		vm.addX(x, b)
	case 0x8000:
		switch n {
		case 0x0:
			vm.loadXY(x, y)
		case 0x1:
			vm.or(x, y)
		case 0x2:
			vm.and(x, y)
		case 0x3:
			vm.xor(x, y)
		case 0x4:
			vm.addXY(x, y)
		case 0x5:
			vm.subXY(x, y)
		case 0x6:
			vm.shr(x)
		case 0x7:
			vm.subYX(x, y)
		case 0xE:
			vm.shl(x)
		default:
			vm.unknown(inst)
		}
	case 0x9000:
		vm.skip(vm.V[x] != vm.V[y])
	case 0xA000:
		vm.loadI(a)
	case 0xB000:
		vm.jumpV0(a)
	case 0xC000:
		vm.rnd(x, b)
	case 0xD000:
		vm.drw(x, y, n)
	case 0xE000:
		switch b {
		case 0x9E:
			vm.skip(vm.KeyDown(uint(vm.V[x])))
		case 0xA1:
			vm.skip(!vm.KeyDown(uint(vm.V[x])))
		default:
			vm.unknown(inst)
		}
	case 0xF000:
		switch b {
		case 0x07:
			vm.loadXDT(x)
		case 0x0A:
			vm.loadXK(x)
		case 0x15:
			vm.loadDTX(x)
		case 0x18:
			vm.loadSTX(x)
		case 0x1E:
			vm.addIX(x)
		case 0x29:
			vm.loadF(x)
		case 0x33:
			vm.loadB(x)
		case 0x55:
			vm.saveRegs(x)
		case 0x65:
			vm.loadRegs(x)
		default:
			vm.unknown(inst)
		}
	}

	return nil
}

// UpdateTimers counts both timers down by one, stopping at zero. The beep
// signal is raised for this call only if the sound timer went from 1 to 0.
func (vm *CHIP_8) UpdateTimers() {
	vm.beep = false

	if vm.DT > 0 {
		vm.DT--
	}

	if vm.ST > 0 {
		vm.beep = vm.ST == 1
		vm.ST--
	}
}

// Beep is true if the last UpdateTimers expired the sound timer.
func (vm *CHIP_8) Beep() bool {
	return vm.beep
}

// DrawPending is true if video memory changed since ClearDrawPending.
func (vm *CHIP_8) DrawPending() bool {
	return vm.draw
}

// ClearDrawPending is called by the host once video memory is rendered.
func (vm *CHIP_8) ClearDrawPending() {
	vm.draw = false
}

// PressKey emulates a CHIP-8 key being pressed.
func (vm *CHIP_8) PressKey(key uint) {
	if key < NumKeys {
		vm.Keys[key] = true
	}
}

// ReleaseKey emulates a CHIP-8 key being released.
func (vm *CHIP_8) ReleaseKey(key uint) {
	if key < NumKeys {
		vm.Keys[key] = false
	}
}

// KeyDown reports the state of a key. Only the low nibble of key is used.
func (vm *CHIP_8) KeyDown(key uint) bool {
	return vm.Keys[key&0xF]
}

// Pixel returns the video memory at x, y or 0 if off screen.
func (vm *CHIP_8) Pixel(x, y int) byte {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return 0
	}

	return vm.Video[y*ScreenWidth+x]
}

// read a byte of memory, wrapping the address at MemorySize.
func (vm *CHIP_8) read(address uint16) byte {
	return vm.Memory[address&addressMask]
}

// write a byte of memory, wrapping the address at MemorySize.
func (vm *CHIP_8) write(address uint16, b byte) {
	vm.Memory[address&addressMask] = b
}

// next advances past the current instruction.
func (vm *CHIP_8) next() {
	vm.PC += 2
}

// skip the following instruction if cond holds.
func (vm *CHIP_8) skip(cond bool) {
	if cond {
		vm.PC += 4
	} else {
		vm.PC += 2
	}
}
