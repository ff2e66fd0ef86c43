package emulator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct {
	left int
}

var errFull = errors.New("full")

func (fw *failWriter) Write(data []byte) (int, error) {
	if fw.left == 0 {
		return 0, errFull
	}
	fw.left--
	return len(data), nil
}

func TestNumberWriter(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	nw := &NumberWriter{W: out}
	n, err := nw.Write([]byte{5, 0, 255})
	assert.NoError(err)
	assert.Equal(3, n)
	assert.Equal("5 0 255 ", out.String())

	nw = &NumberWriter{W: &failWriter{left: 1}}
	n, err = nw.Write([]byte{1, 2, 3})
	assert.ErrorIs(err, errFull)
	assert.Equal(1, n)
}

func TestNumberWriter_Tape(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(4)
	assert.NoError(emu.Load("++.+."))
	emu.Tape.Output = &NumberWriter{W: &failWriter{}}

	err := emu.Run()
	assert.ErrorIs(err, errFull)

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(2, runtime.Offset)
	}
}
