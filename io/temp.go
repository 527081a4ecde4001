package io

import (
	"iter"
	"strings"
)

// Temporary is an in-memory console of fixed capacity. Output past the
// capacity is refused with ErrConsoleFull.
type Temporary struct {
	Capacity int // Capacity in bytes.

	Data []byte
}

var _ Console = (*Temporary)(nil)

// Rewind resets the temporary storage to empty.
func (temp *Temporary) Rewind() {
	temp.Data = make([]byte, 0, temp.Capacity)
}

// Print appends the text to the buffer. If the text does not fit, as much
// as fits is kept and ErrConsoleFull is returned.
func (temp *Temporary) Print(text string) (err error) {
	room := temp.Capacity - len(temp.Data)
	if len(text) > room {
		temp.Data = append(temp.Data, text[:max(room, 0)]...)
		err = ErrConsoleFull
		return
	}

	temp.Data = append(temp.Data, text...)

	return
}

// Println appends the text and a trailing newline to the buffer.
func (temp *Temporary) Println(text string) (err error) {
	return temp.Print(text + "\n")
}

// String returns the buffered output.
func (temp *Temporary) String() string {
	return string(temp.Data)
}

// Lines returns an iterator over the complete lines in the buffer.
func (temp *Temporary) Lines() iter.Seq[string] {
	return func(yield func(line string) bool) {
		text := string(temp.Data)
		for {
			line, rest, ok := strings.Cut(text, "\n")
			if !ok {
				return
			}
			if !yield(line) {
				return
			}
			text = rest
		}
	}
}
