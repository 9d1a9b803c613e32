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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
)

var (
	// File is the path of the loaded ROM.
	File string

	// Program is the loaded ROM, kept to reload it on reboot.
	Program []byte
)

// Load a ROM file into a freshly reset virtual machine.
func Load(file string) error {
	program, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading ROM %s: %w", file, err)
	}

	VM.Reset()
	if err := VM.Load(program); err != nil {
		return fmt.Errorf("loading ROM %s: %w", file, err)
	}

	File = file
	Program = program
	Diagnostics.Reset()

	Logger.Info("Loaded ROM",
		log.String("file", file),
		log.Int("size", len(program)))
	return nil
}

// LoadDialog asks for a ROM file and loads it. Returns false if the user
// cancelled.
func LoadDialog() (bool, error) {
	dir := "."
	if File != "" {
		dir = filepath.Dir(File)
	}

	file, err := dialog.File().
		Title("Load CHIP-8 ROM").
		Filter("CHIP-8 ROMs", "ch8", "c8", "rom").
		Filter("All files", "*").
		SetStartDir(dir).
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return false, nil
		}
		return false, fmt.Errorf("opening file dialog: %w", err)
	}

	return true, Load(file)
}

// Reboot resets the virtual machine and reloads the current ROM.
func Reboot() {
	VM.Reset()

	// the program was validated when first loaded
	_ = VM.Load(Program)

	Logger.Info("Reboot", log.String("file", File))
}

// ShowError reports an error in a message box as well as the log.
func ShowError(err error) {
	Logger.Error("Error", log.Err(err))
	dialog.Message("%s", err).Title("CHIP-8").Error()
}
