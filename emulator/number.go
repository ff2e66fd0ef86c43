package emulator

import (
	"fmt"
	"io"
)

// NumberWriter writes each byte as a decimal number followed by a space.
type NumberWriter struct {
	W io.Writer
}

// Write returns the count of bytes written out in full.
func (nw *NumberWriter) Write(data []byte) (n int, err error) {
	for _, b := range data {
		_, err = fmt.Fprintf(nw.W, "%d ", b)
		if err != nil {
			return
		}
		n++
	}
	return
}
