package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Move(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(4)
	assert.NoError(tape.Move(3))
	assert.Equal(3, tape.Pos)

	assert.ErrorIs(tape.Move(1), ErrTapeOverflow)
	assert.Equal(3, tape.Pos)

	assert.NoError(tape.Move(-3))
	assert.ErrorIs(tape.Move(-1), ErrTapeUnderflow)
	assert.Equal(0, tape.Pos)
}

func TestTape_Add(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(2)
	tape.Add(-1)
	assert.Equal(byte(255), tape.Get())
	tape.Add(2)
	assert.Equal(byte(1), tape.Get())
	tape.Add(512)
	assert.Equal(byte(1), tape.Get())

	tape.Reset()
	assert.Equal([]byte{0, 0}, tape.Cells)
}

func TestTape_ReceiveSend(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(2)
	tape.Cells[0] = 9

	// No input attached.
	assert.NoError(tape.Receive())
	assert.Equal(byte(0), tape.Get())

	tape.Input = bytes.NewReader([]byte{7})
	assert.NoError(tape.Receive())
	assert.Equal(byte(7), tape.Get())

	// End of input.
	assert.NoError(tape.Receive())
	assert.Equal(byte(0), tape.Get())

	// No output attached.
	assert.NoError(tape.Send())

	out := &bytes.Buffer{}
	tape.Output = out
	tape.Cells[0] = 65
	assert.NoError(tape.Send())
	assert.NoError(tape.Send())
	assert.Equal("AA", out.String())
}

func TestTape_Dump(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape(3)
	tape.Cells[1] = 200
	tape.Pos = 1

	var sb strings.Builder
	tape.Dump(&sb, 0, nil)
	assert.Equal("0   1*  2   \n0   200 0   \n", sb.String())

	sb.Reset()
	tape.Dump(&sb, 2, func(offset int) string {
		return []string{"RUN", "PC"}[offset]
	})
	assert.Equal("RUN PC* \n0   200 \n", sb.String())
}
