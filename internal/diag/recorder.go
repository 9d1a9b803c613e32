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

// Package diag collects diagnostics raised by the virtual machine into a
// scrollable log and forwards them to the structured logger.
package diag

import (
	"github.com/retroenv/retrogolib/log"

	"github.com/retrochip/chip8/chip8"
)

// Recorder keeps a scrollback of diagnostic lines. It implements
// chip8.DiagnosticHandler.
type Recorder struct {
	logger *log.Logger

	// buf contains each line of logged text, oldest first.
	buf []string

	// events holds the structured diagnostics matching buf.
	events []chip8.Diagnostic

	// limit is the maximum number of lines kept.
	limit int

	// pos is the current user read position within the log.
	pos int
}

// New creates a Recorder keeping at most limit lines. Older lines are
// dropped once the limit is reached.
func New(logger *log.Logger, limit int) *Recorder {
	if limit <= 0 {
		limit = 100
	}

	return &Recorder{
		logger: logger,
		buf:    make([]string, 0, limit),
		events: make([]chip8.Diagnostic, 0, limit),
		limit:  limit,
	}
}

// HandleDiagnostic records a diagnostic and logs it at debug level.
func (r *Recorder) HandleDiagnostic(d chip8.Diagnostic) {
	if r.logger != nil {
		r.logger.Debug(d.Kind.String(),
			log.Hex("pc", d.PC),
			log.Hex("opcode", d.Opcode))
	}

	scroll := r.pos == len(r.buf)

	if len(r.buf) == r.limit {
		r.buf = r.buf[1:]
		r.events = r.events[1:]

		// keep the read position on the same line
		if !scroll && r.pos > 0 {
			r.pos--
		}
	}

	r.buf = append(r.buf, d.String())
	r.events = append(r.events, d)

	if scroll {
		r.pos = len(r.buf)
	}
}

// Len returns the number of recorded lines.
func (r *Recorder) Len() int {
	return len(r.buf)
}

// Events returns a copy of the recorded diagnostics, oldest first.
func (r *Recorder) Events() []chip8.Diagnostic {
	return append([]chip8.Diagnostic(nil), r.events...)
}

// Window returns n lines ending at the read position, or the first n
// lines when scrolled close to the beginning.
func (r *Recorder) Window(n int) []string {
	start := r.pos - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	if start+n >= len(r.buf) {
		return r.buf[start:]
	}

	return r.buf[start : start+n]
}

// Home scrolls the log to the beginning.
func (r *Recorder) Home() {
	r.pos = 0
}

// End scrolls the log to the end.
func (r *Recorder) End() {
	r.pos = len(r.buf)
}

// ScrollUp scrolls the log back one position.
func (r *Recorder) ScrollUp() {
	r.pos--

	// clamp to home
	if r.pos < 0 {
		r.Home()
	}
}

// ScrollDown scrolls the log forward one position.
func (r *Recorder) ScrollDown() {
	r.pos++

	// clamp to end
	if r.pos >= len(r.buf) {
		r.End()
	}
}

// Reset drops all recorded lines.
func (r *Recorder) Reset() {
	r.buf = r.buf[:0]
	r.events = r.events[:0]
	r.pos = 0
}
