package cpu

import (
	"iter"
	"strconv"
	"strings"
)

// Statement is one comma separated entry of a program.
type Statement struct {
	Index int      // 1-based position in the program.
	Words []string // Space separated tokens.
}

// IsLabel returns true if the statement declares a label.
func (st Statement) IsLabel() bool {
	return IsLabel(st.Words)
}

func (st Statement) String() string {
	return strings.Join(st.Words, " ")
}

// Label maps a label declaration to its goto target.
type Label struct {
	Name  string // Full first word of the declaration, colon included.
	Index int    // Position of the declaration.
}

// Program is a loaded statement list and its label table.
type Program struct {
	Thread    []Statement
	Functions []Label
}

// Len returns the number of statements.
func (prog *Program) Len() int {
	return len(prog.Thread)
}

// Fetch returns the statement at a 1-based counter.
func (prog *Program) Fetch(counter int) (st Statement, ok bool) {
	if counter < 1 || counter > len(prog.Thread) {
		return
	}

	return prog.Thread[counter-1], true
}

// Lookup resolves a goto destination, either a label name or the decimal
// text of a label's target index. The first matching label wins.
func (prog *Program) Lookup(dest string) (target int, ok bool) {
	for _, label := range prog.Functions {
		if dest == label.Name || dest == strconv.Itoa(label.Index) {
			return label.Index, true
		}
	}

	return
}

// Labels returns an iterator over the label table.
func (prog *Program) Labels() iter.Seq2[string, int] {
	return func(yield func(name string, index int) bool) {
		for _, label := range prog.Functions {
			if !yield(label.Name, label.Index) {
				return
			}
		}
	}
}

// String returns the program as loadable source text.
func (prog *Program) String() string {
	lines := make([]string, len(prog.Thread))
	for n, st := range prog.Thread {
		lines[n] = st.String()
	}
	return strings.Join(lines, ",\n")
}
