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

package main

import (
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// diagnosticLines is how many diagnostic lines are shown at once.
const diagnosticLines = 8

var (
	// KeyMap maps a modern keyboard to the COSMAC VIP hex keypad:
	//
	//	1 2 3 4      1 2 3 C
	//	Q W E R  ->  4 5 6 D
	//	A S D F      7 8 9 E
	//	Z X C V      A 0 B F
	KeyMap = map[sdl.Scancode]uint{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

// ProcessEvents from SDL and map keys to the CHIP-8 VM. Returns false once
// the user quits.
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			key, mapped := KeyMap[ev.Keysym.Scancode]

			switch {
			case ev.Type == sdl.KEYUP && mapped:
				VM.ReleaseKey(key)
			case ev.Type != sdl.KEYDOWN:
			case mapped:
				VM.PressKey(key)
			case ev.Repeat != 0:
			case ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE:
				return false
			default:
				EmulatorKey(ev.Keysym.Scancode, ev.Keysym.Mod&uint16(sdl.KMOD_CTRL) != 0)
			}
		}
	}

	return true
}

// EmulatorKey handles a key press that is not part of the keypad.
func EmulatorKey(code sdl.Scancode, ctrl bool) {
	switch code {
	case sdl.SCANCODE_BACKSPACE:
		Reboot()

		// holding control during reset will reboot paused
		if ctrl {
			Driver.Pause()
		}
		UpdateTitle()
	case sdl.SCANCODE_F2:
		if err := Load(File); err != nil {
			ShowError(err)
		}
		UpdateTitle()
	case sdl.SCANCODE_F3:
		if _, err := LoadDialog(); err != nil {
			ShowError(err)
		}
		UpdateTitle()
	case sdl.SCANCODE_H, sdl.SCANCODE_F1:
		ShowHelp()
	case sdl.SCANCODE_LEFTBRACKET:
		Driver.DecSpeed()
	case sdl.SCANCODE_RIGHTBRACKET:
		Driver.IncSpeed()
	case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
		Driver.TogglePause()
		UpdateTitle()
	case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
		if err := Driver.StepInstruction(); err != nil {
			ShowError(err)
		}
		if VM.DrawPending() {
			RefreshScreen()
			VM.ClearDrawPending()
		}
	case sdl.SCANCODE_PAGEUP:
		Diagnostics.ScrollUp()
		ShowDiagnostics()
	case sdl.SCANCODE_PAGEDOWN:
		Diagnostics.ScrollDown()
		ShowDiagnostics()
	case sdl.SCANCODE_HOME:
		Diagnostics.Home()
		ShowDiagnostics()
	case sdl.SCANCODE_END:
		Diagnostics.End()
		ShowDiagnostics()
	}
}

// ShowDiagnostics logs the visible window of recorded diagnostics.
func ShowDiagnostics() {
	lines := Diagnostics.Window(diagnosticLines)
	if len(lines) == 0 {
		Logger.Info("No diagnostics")
		return
	}

	for _, line := range lines {
		Logger.Info("Diagnostic", log.String("event", line))
	}
}

// ShowHelp logs the key bindings.
func ShowHelp() {
	Logger.Info("Virtual keys: 1-2-3-4 / Q-W-E-R / A-S-D-F / Z-X-C-V")
	Logger.Info("Emulation keys:")
	Logger.Info("  ESC       - Quit")
	Logger.Info("  BS        - Reboot (Ctrl: paused)")
	Logger.Info("  F2        - Reload ROM")
	Logger.Info("  F3        - Load ROM")
	Logger.Info("  SPACE/F5  - Pause")
	Logger.Info("  F6/F10    - Step")
	Logger.Info("  [ ]       - Speed")
	Logger.Info("  PgUp/PgDn - Scroll diagnostics")
}
