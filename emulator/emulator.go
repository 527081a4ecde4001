// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"
	"os"

	"github.com/ezrec/bunny/cpu"
	"github.com/ezrec/bunny/io"
)

// Process exit codes for runs that end in an error.
const (
	EXIT_FAILURE        = 1  // Load failure, or any other error.
	EXIT_NOT_A_COMMAND  = -5 // NaC
	EXIT_NOT_A_NUMBER   = -6 // NaN
	EXIT_NOT_A_REGISTER = -7 // NaR
	EXIT_LABEL_MISSING  = -8 // NaF
)

// Emulator state. CPU + program + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program.

	Tape io.Tape // Console of the CPU.
}

// NewEmulator creates a new emulator, printing to standard output.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Tape.Output = os.Stdout
	emu.Cpu.Console = &emu.Tape

	return
}

// Reset the CPU and enter the current program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Tape.Rewind()

	if emu.Verbose && emu.Program != nil {
		for name, index := range emu.Program.Labels() {
			log.Printf("emulator: label %v at %d", name, index)
		}
	}

	err = emu.Cpu.Reset(emu.Program)
	if err != nil {
		err = &ErrRuntime{Index: emu.Cpu.Ip, Err: err}
		return
	}

	return
}

// Statement returns the statement at the counter, if any.
func (emu *Emulator) Statement() (st cpu.Statement) {
	if emu.Program == nil {
		return
	}

	st, _ = emu.Program.Fetch(emu.Cpu.Ip)
	return
}

// Tick performs a single tick of the emulator. done is set once the
// program has halted without error.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	st := emu.Statement()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}
	if err != nil {
		err = &ErrRuntime{Index: emu.Cpu.Ip, Statement: st, Err: err}
		return
	}

	return
}

// ExitCode returns the exit code of a halted program: the value of the
// process register.
func (emu *Emulator) ExitCode() (code int32, err error) {
	code, err = emu.Cpu.ExitCode()
	if err != nil {
		err = &ErrRuntime{Index: emu.Cpu.Ip, Statement: emu.Statement(), Err: err}
		return
	}

	return
}

// Run resets the emulator and ticks until the program halts, returning
// the exit code.
func (emu *Emulator) Run() (code int32, err error) {
	defer func() {
		if err != nil {
			code = Status(err)
		}
	}()

	err = emu.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted at %d after %d ticks, %d bytes written",
			emu.Cpu.Ip, emu.Cpu.Ticks, emu.Tape.Written())
	}

	return emu.ExitCode()
}

// Status maps an error to a process exit code.
func Status(err error) (code int32) {
	switch {
	case err == nil:
		code = 0
	case errors.Is(err, cpu.ErrNotACommand):
		code = EXIT_NOT_A_COMMAND
	case errors.Is(err, cpu.ErrNotANumber):
		code = EXIT_NOT_A_NUMBER
	case errors.Is(err, cpu.ErrNotARegister):
		code = EXIT_NOT_A_REGISTER
	case errors.Is(err, cpu.ErrLabelNotFound):
		code = EXIT_LABEL_MISSING
	default:
		code = EXIT_FAILURE
	}

	return
}
