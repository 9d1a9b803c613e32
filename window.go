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
	"path/filepath"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrochip/chip8/chip8"
	"github.com/retrochip/chip8/internal/config"
)

var (
	// Window and Renderer of the SDL display.
	Window   *sdl.Window
	Renderer *sdl.Renderer

	// Title is the base window title.
	Title string
)

// RunWindow opens the SDL window and runs until it is closed.
func RunWindow(ctx context.Context, opts config.Options) error {
	if opts.ROM != "" {
		if err := Load(opts.ROM); err != nil {
			return err
		}
	} else {
		ok, err := LoadDialog()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	w := int32(chip8.ScreenWidth * opts.Scale)
	h := int32(chip8.ScreenHeight * opts.Scale)

	var err error
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_SHOWN); err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer func() {
		_ = Renderer.Destroy()
		_ = Window.Destroy()
	}()

	Title = opts.Title
	UpdateTitle()

	if err := InitScreen(); err != nil {
		return err
	}
	if err := InitAudio(); err != nil {
		// run silent rather than not at all
		Logger.Error("Audio unavailable", log.Err(err))
	}
	defer CloseAudio()

	// timers and video refresh at 60 Hz, instructions are run per frame
	video := time.NewTicker(time.Second / config.FrameRate)
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-video.C:
		}

		f, err := Driver.Frame()
		if err != nil {
			UpdateTitle()
			ShowError(err)
		}

		if f.Draw {
			RefreshScreen()
			VM.ClearDrawPending()
		}

		UpdateAudio(f)
	}

	return nil
}

// UpdateTitle shows the ROM and run state in the window title.
func UpdateTitle() {
	if Window == nil {
		return
	}

	title := Title
	if File != "" {
		title = fmt.Sprintf("%s - %s", Title, filepath.Base(File))
	}
	if Driver.Paused() {
		title += " [paused]"
	}

	Window.SetTitle(title)
}
