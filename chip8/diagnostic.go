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

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind uint

const (
	// Unrecognized is an instruction that matches no known pattern.
	Unrecognized DiagnosticKind = iota

	// Unsupported is a machine code SYS call, which is not emulated.
	Unsupported
)

func (k DiagnosticKind) String() string {
	switch k {
	case Unrecognized:
		return "unknown opcode"
	case Unsupported:
		return "unsupported opcode"
	}

	return fmt.Sprintf("diagnostic(%d)", uint(k))
}

// Diagnostic is a non-fatal event raised while executing an instruction.
// The instruction is skipped and execution continues.
type Diagnostic struct {
	Kind DiagnosticKind

	// PC is the address of the instruction.
	PC uint16

	// Opcode is the instruction itself.
	Opcode uint16
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %04X at #%04X", d.Kind, d.Opcode, d.PC)
}

// DiagnosticHandler receives diagnostics from a running virtual machine.
type DiagnosticHandler interface {
	HandleDiagnostic(Diagnostic)
}

// DiagnosticFunc adapts a function to a DiagnosticHandler.
type DiagnosticFunc func(Diagnostic)

// HandleDiagnostic calls f(d).
func (f DiagnosticFunc) HandleDiagnostic(d Diagnostic) {
	f(d)
}

// report sends a diagnostic for the instruction at PC, if anyone listens.
func (vm *CHIP_8) report(kind DiagnosticKind, inst uint16) {
	if vm.diag == nil {
		return
	}

	vm.diag.HandleDiagnostic(Diagnostic{
		Kind:   kind,
		PC:     vm.PC,
		Opcode: inst,
	})
}
