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
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"

	"github.com/retrochip/chip8/internal/config"
	"github.com/retrochip/chip8/internal/snapshot"
)

// RunHeadless runs the configured number of frames without a window, then
// reports, saves and optionally checks the final framebuffer.
func RunHeadless(ctx context.Context, opts config.Options) error {
	var want uint32
	if opts.Expect != "" {
		var err error
		if want, err = snapshot.ParseCRC(opts.Expect); err != nil {
			return err
		}
	}

	if err := Load(opts.ROM); err != nil {
		return err
	}

	if err := Driver.Run(ctx, opts.Frames, nil); err != nil {
		return err
	}

	crc := snapshot.CRC32(VM)
	Logger.Info("Headless run finished",
		log.Int("frames", Driver.Frames()),
		log.Int("diagnostics", Diagnostics.Len()),
		log.Hex("fb_crc32", crc))

	if opts.PNGOut != "" {
		if err := snapshot.WritePNG(VM, opts.PNGOut, opts.Scale); err != nil {
			return err
		}
		Logger.Info("Wrote framebuffer", log.String("file", opts.PNGOut))
	}

	if opts.Expect != "" && crc != want {
		return fmt.Errorf("framebuffer CRC32 mismatch: got %08x want %08x", crc, want)
	}
	return nil
}
