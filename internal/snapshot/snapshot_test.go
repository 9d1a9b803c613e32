package snapshot

import (
	"hash/crc32"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/retrochip/chip8/chip8"
)

func TestCRC32(t *testing.T) {
	vm := chip8.New()
	blank := CRC32(vm)
	assert.Equal(t, crc32.ChecksumIEEE(make([]byte, chip8.ScreenWidth*chip8.ScreenHeight)), blank)

	vm.Video[0] = 1
	assert.True(t, CRC32(vm) != blank)
}

func TestParseCRC(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		err  bool
	}{
		{in: "1a2b3c4d", want: 0x1a2b3c4d},
		{in: "0x1A2B3C4D", want: 0x1a2b3c4d},
		{in: " 0XFF ", want: 0xff},
		{in: "xyz", err: true},
		{in: "123456789", err: true},
	}

	for _, tt := range tests {
		got, err := ParseCRC(tt.in)
		if tt.err {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestImage(t *testing.T) {
	vm := chip8.New()
	vm.Video[1*chip8.ScreenWidth+2] = 1

	img := Image(vm, 3)
	assert.Equal(t, chip8.ScreenWidth*3, img.Bounds().Dx())
	assert.Equal(t, chip8.ScreenHeight*3, img.Bounds().Dy())
	assert.Equal(t, uint8(0xFF), img.GrayAt(6, 3).Y)
	assert.Equal(t, uint8(0xFF), img.GrayAt(8, 5).Y)
	assert.Equal(t, uint8(0), img.GrayAt(9, 3).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
}

func TestWritePNG(t *testing.T) {
	vm := chip8.New()
	vm.Video[0] = 1
	path := filepath.Join(t.TempDir(), "frame.png")

	assert.NoError(t, WritePNG(vm, path, 2))

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	assert.NoError(t, err)
	assert.Equal(t, chip8.ScreenWidth*2, img.Bounds().Dx())

	assert.Error(t, WritePNG(vm, filepath.Join(t.TempDir(), "missing", "frame.png"), 1))
}
