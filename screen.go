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
	"fmt"

	"github.com/retrochip/chip8/chip8"
)

// InitScreen scales the renderer so one logical pixel is one CHIP-8 pixel.
func InitScreen() error {
	if err := Renderer.SetLogicalSize(chip8.ScreenWidth, chip8.ScreenHeight); err != nil {
		return fmt.Errorf("setting logical size: %w", err)
	}

	RefreshScreen()
	return nil
}

// RefreshScreen with the CHIP-8 video memory.
func RefreshScreen() {
	// the background color for the screen
	_ = Renderer.SetDrawColor(143, 145, 133, 255)
	_ = Renderer.Clear()

	// set the pixel color
	_ = Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the pixels
	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			if VM.Pixel(x, y) != 0 {
				_ = Renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	Renderer.Present()
}
