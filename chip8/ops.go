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

package chip8

import "fmt"

// clear the video display memory.
func (vm *CHIP_8) cls() {
	vm.Video = [ScreenWidth * ScreenHeight]byte{}
	vm.draw = true
	vm.next()
}

// system call an RCA 1802 program at address. Not emulated.
func (vm *CHIP_8) sys(inst uint16) {
	vm.report(Unsupported, inst)
	vm.next()
}

// unknown instruction, reported and skipped.
func (vm *CHIP_8) unknown(inst uint16) {
	vm.report(Unrecognized, inst)
	vm.next()
}

// call a subroutine at address. The address of the call itself is pushed.
func (vm *CHIP_8) call(address uint16) error {
	if vm.SP >= StackSize {
		return fmt.Errorf("%w: call at #%04X", ErrStackOverflow, vm.PC)
	}

	vm.Stack[vm.SP] = vm.PC
	vm.SP++

	vm.PC = address

	return nil
}

// return from subroutine, resuming after the call.
func (vm *CHIP_8) ret() error {
	if vm.SP == 0 {
		return fmt.Errorf("%w: return at #%04X", ErrStackUnderflow, vm.PC)
	}

	vm.SP--
	vm.PC = vm.Stack[vm.SP]
	vm.next()

	return nil
}

// jump to address.
func (vm *CHIP_8) jump(address uint16) {
	vm.PC = address
}

// jump to address + v0.
func (vm *CHIP_8) jumpV0(address uint16) {
	vm.PC = address + uint16(vm.V[0])
}

// load n into vx.
func (vm *CHIP_8) loadX(x uint, b byte) {
	vm.V[x] = b
	vm.next()
}

// load y into vx.
func (vm *CHIP_8) loadXY(x, y uint) {
	vm.V[x] = vm.V[y]
	vm.next()
}

// load delay timer into vx.
func (vm *CHIP_8) loadXDT(x uint) {
	vm.V[x] = vm.DT
	vm.next()
}

// load vx into delay timer.
func (vm *CHIP_8) loadDTX(x uint) {
	vm.DT = vm.V[x]
	vm.next()
}

// load vx into sound timer.
func (vm *CHIP_8) loadSTX(x uint) {
	vm.ST = vm.V[x]
	vm.next()
}

// load vx with the lowest key down. Without a key down the program
// counter stays put, so the host's next Step waits again.
func (vm *CHIP_8) loadXK(x uint) {
	for k, down := range vm.Keys {
		if down {
			vm.V[x] = byte(k)
			vm.next()
			return
		}
	}
}

// load address register.
func (vm *CHIP_8) loadI(address uint16) {
	vm.I = address
	vm.next()
}

// load address with BCD of vx.
func (vm *CHIP_8) loadB(x uint) {
	n := vm.V[x]

	vm.write(vm.I+0, n/100)
	vm.write(vm.I+1, n/10%10)
	vm.write(vm.I+2, n%10)
	vm.next()
}

// load font sprite for vx into I.
func (vm *CHIP_8) loadF(x uint) {
	vm.I = FontBase + uint16(vm.V[x]&0xF)*fontHeight
	vm.next()
}

// or vx with vy into vx.
func (vm *CHIP_8) or(x, y uint) {
	vm.V[x] |= vm.V[y]
	vm.next()
}

// and vx with vy into vx.
func (vm *CHIP_8) and(x, y uint) {
	vm.V[x] &= vm.V[y]
	vm.next()
}

// xor vx with vy into vx.
func (vm *CHIP_8) xor(x, y uint) {
	vm.V[x] ^= vm.V[y]
	vm.next()
}

// shl vx 1 bit, set carry to MSB of vx before shift.
func (vm *CHIP_8) shl(x uint) {
	vm.V[0xF] = vm.V[x] >> 7
	vm.V[x] <<= 1
	vm.next()
}

// shr vx 1 bit, set carry to LSB of vx before shift.
func (vm *CHIP_8) shr(x uint) {
	vm.V[0xF] = vm.V[x] & 1
	vm.V[x] >>= 1
	vm.next()
}

// add n to vx, no carry.
func (vm *CHIP_8) addX(x uint, b byte) {
	vm.V[x] += b
	vm.next()
}

// add vy to vx and set carry.
func (vm *CHIP_8) addXY(x, y uint) {
	sum := uint(vm.V[x]) + uint(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = flag(sum > 0xFF)
	vm.next()
}

// add vx to i, set carry if i leaves the address space.
func (vm *CHIP_8) addIX(x uint) {
	vm.I += uint16(vm.V[x])
	vm.V[0xF] = flag(vm.I > addressMask)
	vm.next()
}

// subtract vy from vx, set carry if no borrow.
func (vm *CHIP_8) subXY(x, y uint) {
	c := flag(vm.V[x] >= vm.V[y])

	vm.V[x] -= vm.V[y]
	vm.V[0xF] = c
	vm.next()
}

// subtract vx from vy and store in vx, set carry if no borrow.
func (vm *CHIP_8) subYX(x, y uint) {
	c := flag(vm.V[y] >= vm.V[x])

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = c
	vm.next()
}

// load a random number & n into vx.
func (vm *CHIP_8) rnd(x uint, b byte) {
	vm.V[x] = byte(vm.rng.Intn(0x100)) & b
	vm.next()
}

// draw an n-row sprite at I to video memory at vx, vy. Pixels are
// addressed linearly, so columns past the right edge continue on the next
// row, and anything past the end of video memory is clipped.
func (vm *CHIP_8) drw(x, y uint, n byte) {
	ox := int(vm.V[x])
	oy := int(vm.V[y])

	vm.V[0xF] = 0

	for row := 0; row < int(n); row++ {
		s := vm.read(vm.I + uint16(row))

		for col := 0; col < 8; col++ {
			if s&(0x80>>uint(col)) == 0 {
				continue
			}

			p := ox + col + (oy+row)*ScreenWidth
			if p >= len(vm.Video) {
				continue
			}

			if vm.Video[p] == 1 {
				vm.V[0xF] = 1
			}

			vm.Video[p] ^= 1
		}
	}

	vm.draw = true
	vm.next()
}

// save registers v0..vx to I, then advance I past them.
func (vm *CHIP_8) saveRegs(x uint) {
	for i := uint(0); i <= x; i++ {
		vm.write(vm.I+uint16(i), vm.V[i])
	}

	vm.I += uint16(x) + 1
	vm.next()
}

// load registers v0..vx from I, then advance I past them.
func (vm *CHIP_8) loadRegs(x uint) {
	for i := uint(0); i <= x; i++ {
		vm.V[i] = vm.read(vm.I + uint16(i))
	}

	vm.I += uint16(x) + 1
	vm.next()
}

// flag converts a condition to a VF value.
func flag(c bool) byte {
	if c {
		return 1
	}

	return 0
}
