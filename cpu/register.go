package cpu

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/bunny/internal"
)

// Kind is the fixed numeric class of a register.
//
//go:generate go tool stringer -linecomment -type=Kind
type Kind int

const (
	KIND_UNSIGNED = Kind(0) // unsigned
	KIND_SIGNED   = Kind(1) // signed
	KIND_PROCESS  = Kind(2) // process
)

// Tag returns the value tag a register of this kind stores.
func (kind Kind) Tag() Tag {
	switch kind {
	case KIND_UNSIGNED:
		return TAG_U8
	case KIND_SIGNED:
		return TAG_I8
	case KIND_PROCESS:
		return TAG_I32
	}
	return TAG_NULL
}

// Tag identifies the type of the payload held in a Value.
type Tag int

const (
	TAG_NULL = Tag(0) // null
	TAG_U8   = Tag(1) // u8
	TAG_I8   = Tag(2) // i8
	TAG_I32  = Tag(3) // i32
)

// Value is a tagged register payload. The payload bits are interpreted
// according to the tag; a Null value carries no payload.
type Value struct {
	Tag  Tag
	Bits uint32
}

// U8 makes an unsigned 8-bit value.
func U8(v uint8) Value {
	return Value{Tag: TAG_U8, Bits: uint32(v)}
}

// I8 makes a signed 8-bit value.
func I8(v int8) Value {
	return Value{Tag: TAG_I8, Bits: uint32(uint8(v))}
}

// I32 makes a signed 32-bit value.
func I32(v int32) Value {
	return Value{Tag: TAG_I32, Bits: uint32(v)}
}

// IsNull returns true if the value is unset.
func (v Value) IsNull() bool {
	return v.Tag == TAG_NULL
}

func (v Value) String() string {
	switch v.Tag {
	case TAG_U8:
		return fmt.Sprintf("U8(%d)", uint8(v.Bits))
	case TAG_I8:
		return fmt.Sprintf("I8(%d)", int8(v.Bits))
	case TAG_I32:
		return fmt.Sprintf("I32(%d)", int32(v.Bits))
	}
	return "Null"
}

// parseNumber parses a decimal literal into the range of a signed or
// unsigned integer of the given bit size.
func parseNumber(literal string, signed bool, size int) (n int64, err error) {
	if signed {
		n, err = strconv.ParseInt(literal, 10, size)
	} else {
		var u uint64
		u, err = strconv.ParseUint(strings.TrimPrefix(literal, "+"), 10, size)
		n = int64(u)
	}
	if err != nil {
		err = ErrNumber(literal)
	}

	return
}

// Register is a single typed storage cell.
type Register struct {
	Name  string
	Kind  Kind
	Value Value
}

// Set parses the literal as the register's kind and stores it.
func (reg *Register) Set(literal string) (err error) {
	var n int64
	switch reg.Kind {
	case KIND_UNSIGNED:
		n, err = parseNumber(literal, false, 8)
		if err == nil {
			reg.Value = U8(uint8(n))
		}
	case KIND_SIGNED:
		n, err = parseNumber(literal, true, 8)
		if err == nil {
			reg.Value = I8(int8(n))
		}
	case KIND_PROCESS:
		n, err = parseNumber(literal, true, 32)
		if err == nil {
			reg.Value = I32(int32(n))
		}
	default:
		err = ErrRegister(reg.Name)
	}

	return
}

// Store writes a value through the typed path. The value's tag must match
// the register's kind.
func (reg *Register) Store(value Value) (err error) {
	if value.Tag != reg.Kind.Tag() {
		err = ErrRegister(reg.Name)
		return
	}

	reg.Value = value
	return
}

// Load returns the value if it is tagged for the register's kind.
func (reg *Register) Load() (value Value, err error) {
	if reg.Value.Tag != reg.Kind.Tag() {
		err = ErrValue{Name: reg.Name, Value: reg.Value}
		return
	}

	value = reg.Value
	return
}

// Unsigned reads an unsigned 8-bit payload.
func (reg *Register) Unsigned() (v uint8, err error) {
	if reg.Value.Tag != TAG_U8 {
		err = ErrValue{Name: reg.Name, Value: reg.Value}
		return
	}

	v = uint8(reg.Value.Bits)
	return
}

// Signed reads a signed 8-bit payload.
func (reg *Register) Signed() (v int8, err error) {
	if reg.Value.Tag != TAG_I8 {
		err = ErrValue{Name: reg.Name, Value: reg.Value}
		return
	}

	v = int8(reg.Value.Bits)
	return
}

// Process reads a signed 32-bit payload.
func (reg *Register) Process() (v int32, err error) {
	if reg.Value.Tag != TAG_I32 {
		err = ErrValue{Name: reg.Name, Value: reg.Value}
		return
	}

	v = int32(reg.Value.Bits)
	return
}

// Format returns the decimal text of the register's typed value.
func (reg *Register) Format() (text string, err error) {
	switch reg.Kind {
	case KIND_UNSIGNED:
		var v uint8
		v, err = reg.Unsigned()
		text = strconv.FormatUint(uint64(v), 10)
	case KIND_SIGNED:
		var v int8
		v, err = reg.Signed()
		text = strconv.FormatInt(int64(v), 10)
	case KIND_PROCESS:
		var v int32
		v, err = reg.Process()
		text = strconv.FormatInt(int64(v), 10)
	}
	if err != nil {
		text = ""
	}

	return
}

// Clear resets the register to Null.
func (reg *Register) Clear() {
	reg.Value = Value{}
}

// PROC is the name of the process register.
const PROC = "proc"

var unsignedNames = [4]string{"uia", "uib", "uic", "uid"}
var signedNames = [4]string{"sia", "sib", "sic", "sid"}

// Bank is the register file of the machine.
type Bank struct {
	Unsigned [4]Register
	Signed   [4]Register
	Proc     Register
}

// Reset names every register, fixes its kind, and sets it to Null.
func (bank *Bank) Reset() {
	for n, name := range unsignedNames {
		bank.Unsigned[n] = Register{Name: name, Kind: KIND_UNSIGNED}
	}
	for n, name := range signedNames {
		bank.Signed[n] = Register{Name: name, Kind: KIND_SIGNED}
	}
	bank.Proc = Register{Name: PROC, Kind: KIND_PROCESS}
}

// Names returns an iterator over every register name, in bank order.
func (bank *Bank) Names() iter.Seq[string] {
	return internal.Concat(
		slices.Values(unsignedNames[:]),
		slices.Values(signedNames[:]),
		slices.Values([]string{PROC}),
	)
}

// State returns an iterator of register names and their printed values.
func (bank *Bank) State() iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		for name := range bank.Names() {
			reg, _ := bank.Register(name)
			if !yield(name, reg.Value.String()) {
				return
			}
		}
	}
}

// Register looks up a register by name.
func (bank *Bank) Register(name string) (reg *Register, err error) {
	if n := slices.Index(unsignedNames[:], name); n >= 0 {
		reg = &bank.Unsigned[n]
		return
	}
	if n := slices.Index(signedNames[:], name); n >= 0 {
		reg = &bank.Signed[n]
		return
	}
	if name == PROC {
		reg = &bank.Proc
		return
	}

	err = ErrRegister(name)
	return
}

// Class returns the kind of a general purpose register. The process
// register has no class.
func (bank *Bank) Class(name string) (kind Kind, ok bool) {
	switch {
	case slices.Contains(unsignedNames[:], name):
		kind, ok = KIND_UNSIGNED, true
	case slices.Contains(signedNames[:], name):
		kind, ok = KIND_SIGNED, true
	}
	return
}

// Pair looks up two general purpose registers of the same class.
func (bank *Bank) Pair(a, b string) (ra, rb *Register, err error) {
	ka, ok_a := bank.Class(a)
	kb, ok_b := bank.Class(b)
	if !ok_a || !ok_b || ka != kb {
		err = ErrClass{A: a, B: b}
		return
	}

	ra, _ = bank.Register(a)
	rb, _ = bank.Register(b)
	return
}

// Set parses a literal into the named register.
func (bank *Bank) Set(name string, literal string) (err error) {
	reg, err := bank.Register(name)
	if err != nil {
		return
	}

	return reg.Set(literal)
}

// Read returns the typed value of the named register.
func (bank *Bank) Read(name string) (value Value, err error) {
	reg, err := bank.Register(name)
	if err != nil {
		return
	}

	return reg.Load()
}

// Move copies the raw value of src into dst. The destination kind is not
// checked, so a mistagged value may be left behind in dst.
func (bank *Bank) Move(src string, dst string) (err error) {
	from, err := bank.Register(src)
	if err != nil {
		return
	}
	to, err := bank.Register(dst)
	if err != nil {
		return
	}

	to.Value = from.Value
	return
}

// Delete resets the named register to Null.
func (bank *Bank) Delete(name string) (err error) {
	reg, err := bank.Register(name)
	if err != nil {
		return
	}

	reg.Clear()
	return
}
