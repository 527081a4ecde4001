package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/bunny/internal"
	"github.com/ezrec/bunny/io"
)

// Console is the output device of the machine.
type Console io.Console

// ENTRY_LABEL is where execution starts.
const ENTRY_LABEL = "main:"

// BUNNY is printed by the bunny instruction.
const BUNNY = "(\\ /)\n( . .)\nC(\")(\")"

// Cpu is the execution engine: the register bank, the statement counter and
// the return slot.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Checked bool // Set to make 8-bit add/sub overflow fatal instead of wrapping.
	Nested  bool // Set to save return slots on a stack across nested gotos.

	Console Console // Output for view, print, printl and bunny.

	Bank  Bank  // Register bank.
	Ip    int   // 1-based counter of the statement to execute.
	Past  int   // Return slot, set by goto and used by return.
	Stack Stack // Saved return slots, only used when Nested.

	Ticks int // Statements executed since reset.

	program *Program
}

// NewCpu creates a CPU writing to standard output.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Console: &io.Tape{Output: os.Stdout},
	}
	cpu.Bank.Reset()

	return
}

// Program returns the program installed by the last Reset.
func (cpu *Cpu) Program() *Program {
	return cpu.program
}

// Reset the CPU state.
// - Sets all registers to Null.
// - Clears the return slot, call stack and tick counter.
// - Installs the program.
// - Enters the program through an implicit goto of ENTRY_LABEL.
func (cpu *Cpu) Reset(prog *Program) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Bank.Reset()
	cpu.Stack.Reset()
	cpu.Ticks = 0
	cpu.Ip = 1
	cpu.Past = 0
	cpu.program = prog

	if prog == nil {
		err = ErrNoProgram
		return
	}

	next, err := cpu.call(ENTRY_LABEL)
	if err != nil {
		return
	}
	cpu.Ip = next

	if cpu.Verbose {
		log.Printf("cpu: enter %v at %d", ENTRY_LABEL, cpu.Ip)
	}

	return
}

// State returns an iterator over the control and register state, as
// printable name/value pairs.
func (cpu *Cpu) State() iter.Seq2[string, string] {
	var control iter.Seq2[string, string] = func(yield func(name, value string) bool) {
		_ = yield("ip", strconv.Itoa(cpu.Ip)) &&
			yield("past", strconv.Itoa(cpu.Past)) &&
			yield("stack", strconv.Itoa(cpu.Stack.Depth())) &&
			yield("ticks", strconv.Itoa(cpu.Ticks))
	}

	return internal.Concat2(control, cpu.Bank.State())
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	for name, value := range cpu.State() {
		text += fmt.Sprintf("% 5s: %v\n", name, value)
	}

	return
}

// FetchStatement fetches the statement at the counter. Once the counter
// leaves the program, ErrHalt is returned.
func (cpu *Cpu) FetchStatement() (st Statement, err error) {
	if cpu.program == nil {
		err = ErrNoProgram
		return
	}

	st, ok := cpu.program.Fetch(cpu.Ip)
	if !ok {
		err = ErrHalt
		return
	}

	return
}

// Tick executes a single statement.
func (cpu *Cpu) Tick() (err error) {
	st, err := cpu.FetchStatement()
	if err != nil {
		return
	}

	return cpu.Execute(st)
}

// ExitCode returns the value of the process register.
func (cpu *Cpu) ExitCode() (code int32, err error) {
	return cpu.Bank.Proc.Process()
}

// Execute executes a single statement. Control flow operations set the
// next counter directly, all others advance it by one. ErrHalt is returned
// by exit; the counter is left on the exit statement.
func (cpu *Cpu) Execute(st Statement) (err error) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, st)
	}

	code, err := Decode(st.Words)
	if err != nil {
		return
	}

	cpu.Ticks += 1

	next_ip := cpu.Ip + 1
	args := code.Args

	switch code.Op {
	case OP_LABEL:
		// no-op
	case OP_RETURN:
		next_ip = cpu.ret()
	case OP_EXIT:
		_, err = cpu.ExitCode()
		if err == nil {
			err = ErrHalt
		}
	case OP_BUNNY:
		err = cpu.println(BUNNY)
	case OP_VIEW:
		err = cpu.view(args[0])
	case OP_JUMP:
		next_ip, err = parseTarget(args[0], 0)
	case OP_GOTO:
		next_ip, err = cpu.call(args[0])
	case OP_PRINT:
		err = cpu.print(strings.Join(args, " "))
	case OP_PRINTL:
		err = cpu.println(strings.Join(args, " "))
	case OP_DEL:
		err = cpu.Bank.Delete(args[0])
	case OP_SET:
		err = cpu.Bank.Set(args[0], args[1])
	case OP_ADD, OP_SUB:
		err = cpu.arith(code.Op, args[0], args[1])
	case OP_MOVE:
		err = cpu.Bank.Move(args[0], args[1])
	case OP_JUMP_EQ, OP_JUMP_NEQ:
		var equal bool
		equal, err = cpu.compare(args[0], args[1])
		if err == nil && equal == (code.Op == OP_JUMP_EQ) {
			next_ip, err = parseTarget(args[2], 1)
		}
	default:
		err = ErrCommand(code.Op.String())
	}

	if err != nil {
		return
	}

	if cpu.Verbose && code.Op.Control() {
		log.Printf("cpu: %v: %d -> %d", code, cpu.Ip, next_ip)
	}

	cpu.Ip = next_ip

	return
}

// parseTarget parses a statement number for a jump. Targets below min are
// not valid.
func parseTarget(word string, min int) (target int, err error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(word, "+"), 10, strconv.IntSize-1)
	if err != nil || int(n) < min {
		err = ErrNumber(word)
		return
	}

	target = int(n)
	return
}

// call resolves a goto destination and saves the return slot.
func (cpu *Cpu) call(dest string) (next_ip int, err error) {
	target, ok := cpu.program.Lookup(dest)
	if !ok {
		err = ErrLabelMissing(dest)
		return
	}

	if cpu.Nested {
		if cpu.Stack.Full() {
			err = errors.Join(ErrNotACommand, ErrStackFull)
			return
		}
		cpu.Stack.Push(cpu.Past)
	}

	cpu.Past = cpu.Ip + 1
	next_ip = target

	return
}

// ret returns the counter saved by the last goto.
func (cpu *Cpu) ret() (next_ip int) {
	next_ip = cpu.Past

	if cpu.Nested {
		past, ok := cpu.Stack.Pop()
		if ok {
			cpu.Past = past
		}
	}

	return
}

func (cpu *Cpu) print(text string) error {
	if cpu.Console == nil {
		return io.ErrConsoleDetached
	}
	return cpu.Console.Print(text)
}

func (cpu *Cpu) println(text string) error {
	if cpu.Console == nil {
		return io.ErrConsoleDetached
	}
	return cpu.Console.Println(text)
}

// view prints the typed value of a register.
func (cpu *Cpu) view(name string) (err error) {
	reg, err := cpu.Bank.Register(name)
	if err != nil {
		return
	}

	text, err := reg.Format()
	if err != nil {
		return
	}

	return cpu.println(text)
}

// compare tests two registers of the same class for equal values.
func (cpu *Cpu) compare(a, b string) (equal bool, err error) {
	ra, rb, err := cpu.Bank.Pair(a, b)
	if err != nil {
		return
	}

	va, err := ra.Load()
	if err != nil {
		return
	}
	vb, err := rb.Load()
	if err != nil {
		return
	}

	equal = va == vb
	return
}

// arith applies add or sub between two registers of the same class. The
// result lands in src: add computes dest + src, sub computes dest - src.
func (cpu *Cpu) arith(op CodeOp, dest, src string) (err error) {
	if dest == PROC {
		err = ErrRegister(dest)
		return
	}

	rd, rs, err := cpu.Bank.Pair(dest, src)
	if err != nil {
		return
	}

	var x, y, lo, hi int
	switch rd.Kind {
	case KIND_UNSIGNED:
		var a, b uint8
		if a, err = rd.Unsigned(); err != nil {
			return
		}
		if b, err = rs.Unsigned(); err != nil {
			return
		}
		x, y, lo, hi = int(a), int(b), 0, 0xff
	case KIND_SIGNED:
		var a, b int8
		if a, err = rd.Signed(); err != nil {
			return
		}
		if b, err = rs.Signed(); err != nil {
			return
		}
		x, y, lo, hi = int(a), int(b), -0x80, 0x7f
	}

	result := x + y
	if op == OP_SUB {
		result = x - y
	}

	if result < lo || result > hi {
		if cpu.Checked {
			err = errors.Join(ErrNotANumber, ErrOverflow,
				fmt.Errorf("%v %v %v", op, dest, src))
			return
		}
		if cpu.Verbose {
			log.Printf("cpu: %v %v %v wraps", op, dest, src)
		}
	}

	switch rs.Kind {
	case KIND_UNSIGNED:
		err = rs.Store(U8(uint8(result)))
	case KIND_SIGNED:
		err = rs.Store(I8(int8(result)))
	}

	return
}
