package io

import (
	"io"
)

// Tape is a Console over an output stream.
type Tape struct {
	Output io.Writer

	written int
}

var _ Console = (*Tape)(nil)

// Print writes the text to the output stream.
func (tc *Tape) Print(text string) (err error) {
	if tc.Output == nil {
		err = ErrConsoleDetached
		return
	}

	n, err := io.WriteString(tc.Output, text)
	tc.written += n

	return
}

// Println writes the text and a trailing newline to the output stream.
func (tc *Tape) Println(text string) (err error) {
	return tc.Print(text + "\n")
}

// Written returns the number of bytes written since the last Rewind.
func (tc *Tape) Written() int {
	return tc.written
}

// Rewind clears the output statistics.
func (tc *Tape) Rewind() {
	tc.written = 0
}
