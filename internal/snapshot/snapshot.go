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

// Package snapshot exports the CHIP-8 framebuffer for headless checks.
package snapshot

import (
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/retrochip/chip8/chip8"
)

// CRC32 returns the IEEE CRC32 of the video memory.
func CRC32(vm *chip8.CHIP_8) uint32 {
	return crc32.ChecksumIEEE(vm.Video[:])
}

// ParseCRC parses a CRC32 given as hex, with or without a 0x prefix.
func ParseCRC(s string) (uint32, error) {
	want := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")

	v, err := strconv.ParseUint(want, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid CRC32 %q: %w", s, err)
	}
	return uint32(v), nil
}

// Image renders the video memory as a grayscale image with every pixel
// scaled to a scale x scale block.
func Image(vm *chip8.CHIP_8, scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}

	img := image.NewGray(image.Rect(0, 0, chip8.ScreenWidth*scale, chip8.ScreenHeight*scale))

	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			if vm.Pixel(x, y) == 0 {
				continue
			}

			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x*scale+dx, y*scale+dy, color.Gray{Y: 0xFF})
				}
			}
		}
	}

	return img
}

// WritePNG writes the video memory to a PNG file.
func WritePNG(vm *chip8.CHIP_8, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	if err := png.Encode(f, Image(vm, scale)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}
