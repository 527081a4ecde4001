package cpu

import (
	"strings"
)

// CodeOp is a decoded instruction operation.
//
//go:generate go tool stringer -linecomment -type=CodeOp
type CodeOp int

const (
	OP_LABEL    = CodeOp(0)  // label
	OP_RETURN   = CodeOp(1)  // return
	OP_EXIT     = CodeOp(2)  // exit
	OP_BUNNY    = CodeOp(3)  // bunny
	OP_VIEW     = CodeOp(4)  // view
	OP_JUMP     = CodeOp(5)  // jump
	OP_GOTO     = CodeOp(6)  // goto
	OP_PRINT    = CodeOp(7)  // print
	OP_PRINTL   = CodeOp(8)  // printl
	OP_DEL      = CodeOp(9)  // del
	OP_SET      = CodeOp(10) // set
	OP_ADD      = CodeOp(11) // add
	OP_SUB      = CodeOp(12) // sub
	OP_MOVE     = CodeOp(13) // move
	OP_JUMP_EQ  = CodeOp(14) // jump_eq
	OP_JUMP_NEQ = CodeOp(15) // jump_neq
)

// Control returns true if the operation may set the counter itself.
func (op CodeOp) Control() bool {
	switch op {
	case OP_RETURN, OP_JUMP, OP_GOTO, OP_JUMP_EQ, OP_JUMP_NEQ:
		return true
	}
	return false
}

// opMap maps mnemonics to operations, indexed by the statement's word count.
var opMap = [...]map[string]CodeOp{
	1: {
		"return": OP_RETURN,
		"exit":   OP_EXIT,
		"bunny":  OP_BUNNY,
		"printl": OP_PRINTL,
	},
	2: {
		"view":   OP_VIEW,
		"jump":   OP_JUMP,
		"goto":   OP_GOTO,
		"print":  OP_PRINT,
		"printl": OP_PRINTL,
		"del":    OP_DEL,
	},
	3: {
		"set":    OP_SET,
		"add":    OP_ADD,
		"sub":    OP_SUB,
		"move":   OP_MOVE,
		"print":  OP_PRINT,
		"printl": OP_PRINTL,
	},
	4: {
		"jump_eq":  OP_JUMP_EQ,
		"jump_neq": OP_JUMP_NEQ,
		"print":    OP_PRINT,
		"printl":   OP_PRINTL,
	},
}

// Code is a decoded statement: the operation and its operand words.
type Code struct {
	Op   CodeOp
	Args []string
}

// IsLabel returns true if the words declare a label.
func IsLabel(words []string) bool {
	return len(words) > 0 && strings.Contains(words[0], ":")
}

// Decode selects the operation for a statement, first by word count and
// then by mnemonic.
func Decode(words []string) (code Code, err error) {
	if IsLabel(words) {
		code = Code{Op: OP_LABEL}
		return
	}

	if len(words) < 1 || len(words) >= len(opMap) {
		err = ErrCommand(strings.Join(words, " "))
		return
	}

	op, ok := opMap[len(words)][words[0]]
	if !ok {
		err = ErrCommand(words[0])
		return
	}

	code = Code{Op: op, Args: words[1:]}
	return
}

func (code Code) String() string {
	if len(code.Args) == 0 {
		return code.Op.String()
	}
	return code.Op.String() + " " + strings.Join(code.Args, " ")
}
