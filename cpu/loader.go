// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"log"
	"strings"
)

// SOURCE_MINIMUM is the shortest source text accepted by Parse.
const SOURCE_MINIMUM = 2

// Loader tokenizes bunny source text into a Program.
type Loader struct {
	Verbose bool // If set, logs each label as it is assigned.
}

// DefaultProgram is run when no source is supplied at all.
func DefaultProgram() *Program {
	return &Program{
		Thread: []Statement{{Index: 1, Words: []string{"exit"}}},
	}
}

// Parse reads an entire input stream and tokenizes it.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		err = errors.Join(ErrLoad, err)
		return
	}

	if len(data) < SOURCE_MINIMUM {
		err = errors.Join(ErrLoad, ErrSourceEmpty)
		return
	}

	prog = ld.ParseString(string(data))
	return
}

// ParseString tokenizes source text. Statements are separated by commas and
// words by single spaces; blank statements are dropped. Nothing else is
// checked here, bad statements surface when they are executed.
func (ld *Loader) ParseString(text string) (prog *Program) {
	prog = &Program{}

	for _, line := range strings.Split(text, ",") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		st := Statement{
			Index: len(prog.Thread) + 1,
			Words: strings.Split(line, " "),
		}

		if st.IsLabel() {
			if ld.Verbose {
				log.Printf("loader: label '%v' at %d", st.Words[0], st.Index)
			}
			prog.Functions = append(prog.Functions, Label{Name: st.Words[0], Index: st.Index})
		}

		prog.Thread = append(prog.Thread, st)
	}

	return
}
