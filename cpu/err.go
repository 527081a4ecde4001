package cpu

import (
	"errors"

	"github.com/ezrec/bunny/translate"
)

var f = translate.From

var (
	// Run state
	ErrHalt      = errors.New(f("halted"))
	ErrNoProgram = errors.New(f("no program"))

	// Fatal categories
	ErrNotACommand   = errors.New(f("NaC: not a command"))
	ErrNotANumber    = errors.New(f("NaN: not a number"))
	ErrNotARegister  = errors.New(f("NaR: not a register"))
	ErrLabelNotFound = errors.New(f("NaF: label not found"))

	// Engine errors
	ErrOverflow  = errors.New(f("arithmetic overflow"))
	ErrStackFull = errors.New(f("call stack full"))

	// Loader errors
	ErrLoad        = errors.New(f("load"))
	ErrSourceEmpty = errors.New(f("unexpected end of source"))
)

// ErrCommand is a statement that does not decode to an instruction.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("NaC: '%v'", string(err))
}

func (err ErrCommand) Is(target error) bool {
	return target == ErrNotACommand
}

// ErrNumber is a literal that does not parse as the required number type.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("NaN: '%v' is not a number", string(err))
}

func (err ErrNumber) Is(target error) bool {
	return target == ErrNotANumber
}

// ErrRegister is a name that is not a register usable in its position.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("NaR: '%v' is not a register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrNotARegister
}

// ErrLabelMissing is a goto destination that matches no label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("NaF: label '%v' missing", string(el))
}

func (el ErrLabelMissing) Is(target error) bool {
	return target == ErrLabelNotFound
}

// ErrClass is a pair of operands that are not both unsigned or both signed.
type ErrClass struct {
	A string
	B string
}

func (err ErrClass) Error() string {
	return f("NaR: '%v'/'%v' mixes register classes", err.A, err.B)
}

func (err ErrClass) Is(target error) bool {
	return target == ErrNotARegister
}

// ErrValue is a register read while it holds no value of its own kind.
type ErrValue struct {
	Name  string
	Value Value
}

func (err ErrValue) Error() string {
	return f("NaN: %v holds %v", err.Name, err.Value.String())
}

func (err ErrValue) Is(target error) bool {
	return target == ErrNotANumber
}
