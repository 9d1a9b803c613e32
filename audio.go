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

	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrochip/chip8/internal/config"
	"github.com/retrochip/chip8/internal/driver"
)

const (
	sampleRate = 22050
	toneHz     = 440
	volume     = 32
)

var (
	// Audio is the queued audio device playing the buzzer, 0 if none.
	Audio sdl.AudioDeviceID

	// tone is one frame of square wave.
	tone []byte
)

// InitAudio opens an audio device for the CHIP-8 buzzer.
func InitAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S8,
		Channels: 1,
		Samples:  512,
	}

	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	Audio = dev
	tone = squareWave(sampleRate/config.FrameRate, sampleRate/toneHz)

	// start playing, silent until samples are queued
	sdl.PauseAudioDevice(Audio, false)
	return nil
}

// UpdateAudio keeps the tone queued while the sound timer runs and cuts
// it once the timer expires.
func UpdateAudio(f driver.Frame) {
	if Audio == 0 {
		return
	}

	if f.Beep || VM.ST == 0 {
		sdl.ClearQueuedAudio(Audio)
		return
	}

	// keep about two frames buffered
	if sdl.GetQueuedAudioSize(Audio) < uint32(2*len(tone)) {
		_ = sdl.QueueAudio(Audio, tone)
	}
}

// CloseAudio releases the audio device.
func CloseAudio() {
	if Audio != 0 {
		sdl.CloseAudioDevice(Audio)
		Audio = 0
	}
}

// squareWave returns n signed 8-bit samples of a square wave.
func squareWave(n, period int) []byte {
	buf := make([]byte, n)
	v := int8(volume)

	for i := range buf {
		if i%period < period/2 {
			buf[i] = byte(v)
		} else {
			buf[i] = byte(-v)
		}
	}

	return buf
}
