package diag

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/retrochip/chip8/chip8"
)

func diagnostic(i int) chip8.Diagnostic {
	return chip8.Diagnostic{Kind: chip8.Unrecognized, PC: uint16(0x200 + 2*i), Opcode: 0xF0FF}
}

func TestRecorderFromMachine(t *testing.T) {
	rec := New(log.NewTestLogger(t), 10)

	vm, err := chip8.LoadROM([]byte{0x80, 0x0F, 0x00, 0x00}, chip8.WithDiagnostics(rec))
	assert.NoError(t, err)
	assert.NoError(t, vm.Step())
	assert.NoError(t, vm.Step())

	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, "unknown opcode 800F at #0200", rec.Window(1)[0])

	events := rec.Events()
	assert.Len(t, events, 2)
	assert.Equal(t, chip8.Unsupported, events[1].Kind)
	assert.Equal(t, uint16(0x202), events[1].PC)
}

func TestRecorderLimit(t *testing.T) {
	rec := New(nil, 3)

	for i := 0; i < 5; i++ {
		rec.HandleDiagnostic(diagnostic(i))
	}

	assert.Equal(t, 3, rec.Len())
	lines := rec.Window(3)
	assert.Len(t, lines, 3)
	assert.Equal(t, diagnostic(2).String(), lines[0])
	assert.Equal(t, diagnostic(4).String(), lines[2])
}

func TestRecorderScroll(t *testing.T) {
	rec := New(nil, 0)

	for i := 0; i < 10; i++ {
		rec.HandleDiagnostic(diagnostic(i))
	}

	// follows the end while at the end
	lines := rec.Window(2)
	assert.Equal(t, fmt.Sprint(diagnostic(8)), lines[0])
	assert.Equal(t, fmt.Sprint(diagnostic(9)), lines[1])

	rec.ScrollUp()
	lines = rec.Window(2)
	assert.Equal(t, diagnostic(7).String(), lines[0])
	assert.Equal(t, diagnostic(8).String(), lines[1])

	// scrolled back, new lines don't move the window
	rec.HandleDiagnostic(diagnostic(10))
	lines = rec.Window(2)
	assert.Equal(t, diagnostic(7).String(), lines[0])

	rec.Home()
	rec.ScrollUp()
	lines = rec.Window(2)
	assert.Equal(t, diagnostic(0).String(), lines[0])
	assert.Equal(t, diagnostic(1).String(), lines[1])

	rec.End()
	rec.ScrollDown()
	lines = rec.Window(1)
	assert.Equal(t, diagnostic(10).String(), lines[0])

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
	assert.Len(t, rec.Window(5), 0)
}
