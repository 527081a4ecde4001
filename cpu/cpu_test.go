package cpu

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bunny/io"
)

const TICK_LIMIT = 100_000

type testCpu struct {
	*Cpu
	Output bytes.Buffer
}

func newTestCpu(t *testing.T, source string, options ...func(cpu *Cpu)) (tc *testCpu) {
	t.Helper()

	tc = &testCpu{Cpu: NewCpu()}
	tc.Console = &io.Tape{Output: &tc.Output}
	for _, option := range options {
		option(tc.Cpu)
	}

	ld := &Loader{}
	err := tc.Reset(ld.ParseString(source))
	assert.NoError(t, err)

	return
}

// run ticks until the program halts or fails. Running out of ticks is
// reported as an error.
func (tc *testCpu) run() (err error) {
	for range TICK_LIMIT {
		err = tc.Tick()
		if errors.Is(err, ErrHalt) {
			return nil
		}
		if err != nil {
			return
		}
	}

	return fmt.Errorf("still running at %d", tc.Ip)
}

func TestCpu_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.ErrorIs(cpu.Reset(nil), ErrNoProgram)
	assert.ErrorIs(cpu.Tick(), ErrNoProgram)

	ld := &Loader{}
	assert.ErrorIs(cpu.Reset(ld.ParseString("set uia 1,exit")), ErrLabelNotFound)
	assert.ErrorIs(cpu.Reset(DefaultProgram()), ErrLabelNotFound)

	err := cpu.Reset(ld.ParseString("set uia 1,main:,view uia"))
	assert.NoError(err)
	assert.Equal(2, cpu.Ip)
	assert.Equal(2, cpu.Past)
	assert.Equal(0, cpu.Ticks)
}

func TestCpu_Straight(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,set uia 5,view uia")
	assert.NoError(tc.run())
	assert.Equal("5\n", tc.Output.String())
	assert.Equal(4, tc.Ip)
	assert.Equal(3, tc.Ticks)
}

func TestCpu_Exit(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,set proc 42,exit,view uia")
	assert.NoError(tc.run())
	assert.Equal(3, tc.Ip)

	code, err := tc.ExitCode()
	assert.NoError(err)
	assert.Equal(int32(42), code)
	assert.Empty(tc.Output.String())

	tc = newTestCpu(t, "main:,exit")
	assert.ErrorIs(tc.run(), ErrNotANumber)
}

func TestCpu_GotoReturn(t *testing.T) {
	assert := assert.New(t)

	for _, dest := range []string{"f:", "6"} {
		tc := newTestCpu(t, "main:,set proc 0,goto "+dest+",view uia,exit,f:,set uia 7,return")
		assert.NoError(tc.run(), dest)
		assert.Equal("7\n", tc.Output.String(), dest)
		assert.Equal(4, tc.Past, dest)
		assert.Equal(5, tc.Ip, dest)
	}

	tc := newTestCpu(t, "main:,goto nowhere:")
	err := tc.run()
	assert.ErrorIs(err, ErrLabelNotFound)
	assert.Equal(2, tc.Ip)
}

func TestCpu_ReturnSlot(t *testing.T) {
	assert := assert.New(t)

	const source = "main:,set proc 0,goto a:,exit,a:,goto b:,return,b:,return"

	// A single return slot is overwritten by the inner goto, so the outer
	// return comes back to itself.
	tc := newTestCpu(t, source)
	assert.Error(tc.run())
	assert.Equal(7, tc.Ip)
	assert.Equal(7, tc.Past)

	tc = newTestCpu(t, source, func(cpu *Cpu) { cpu.Nested = true })
	assert.Equal(1, tc.Stack.Depth())
	assert.NoError(tc.run())
	assert.Equal(4, tc.Ip)
	assert.Equal(2, tc.Past)
	assert.Equal(1, tc.Stack.Depth())
}

func TestCpu_StackFull(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,goto main:", func(cpu *Cpu) { cpu.Nested = true })

	err := tc.run()
	assert.ErrorIs(err, ErrNotACommand)
	assert.ErrorIs(err, ErrStackFull)
	assert.Equal(STACK_LIMIT, tc.Stack.Depth())
	assert.Equal(2, tc.Ip)
}

func TestCpu_Jump(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,set uia 0,set uib 1,set uic 3,add uib uia,view uia,jump_neq uia uic 5")
	assert.NoError(tc.run())
	assert.Equal("1\n2\n3\n", tc.Output.String())
	assert.Equal(8, tc.Ip)

	tc = newTestCpu(t, "main:,jump 4,printl skipped,printl landed")
	assert.NoError(tc.run())
	assert.Equal("landed\n", tc.Output.String())

	tc = newTestCpu(t, "main:,jump 0,printl skipped")
	assert.NoError(tc.run())
	assert.Equal(0, tc.Ip)
	assert.Empty(tc.Output.String())

	tc = newTestCpu(t, "main:,set sia 1,set sib 1,jump_eq sia sib 6,printl skipped,printl landed")
	assert.NoError(tc.run())
	assert.Equal("landed\n", tc.Output.String())

	for _, source := range []string{
		"main:,jump x",
		"main:,jump -1",
		"main:,set uia 1,jump_eq uia uia 0",
		"main:,set uia 1,jump_eq uia uia two",
		"main:,set uia 1,jump_eq uia uib 1",
	} {
		tc = newTestCpu(t, source)
		assert.ErrorIs(tc.run(), ErrNotANumber, source)
	}

	for _, source := range []string{
		"main:,set uia 1,set sia 1,jump_eq uia sia 1",
		"main:,set proc 1,jump_neq proc proc 1",
		"main:,jump_eq uia uix 1",
	} {
		tc = newTestCpu(t, source)
		assert.ErrorIs(tc.run(), ErrNotARegister, source)
	}
}

func TestCpu_UnsignedRange(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,set uia 0,set uib 1,set uic 255,view uia,jump_eq uia uic 9,add uib uia,jump 5")
	assert.NoError(tc.run())

	lines := strings.Split(strings.TrimSuffix(tc.Output.String(), "\n"), "\n")
	assert.Len(lines, 256)
	for n, line := range lines {
		assert.Equal(fmt.Sprint(n), line)
	}
}

func TestCpu_SignedRange(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,set sia -128,set sib 1,set sic 127,view sia,jump_eq sia sic 9,add sib sia,jump 5")
	assert.NoError(tc.run())

	lines := strings.Split(strings.TrimSuffix(tc.Output.String(), "\n"), "\n")
	assert.Len(lines, 256)
	for n, line := range lines {
		assert.Equal(fmt.Sprint(n-128), line)
	}
}

func TestCpu_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		source string
		view   string
	}{
		{"set uia 3,set uib 5,add uia uib,view uib", "8"},
		{"set uia 3,set uib 5,sub uia uib,view uib", "254"},
		{"set uia 5,set uib 3,sub uia uib,view uib", "2"},
		{"set uia 5,set uib 2,sub uia uib,view uib", "3"},
		{"set uia 5,set uib 2,sub uia uib,view uia", "5"},
		{"set uia 255,set uib 1,add uib uia,view uia", "0"},
		{"set sia 127,set sib 1,add sib sia,view sia", "-128"},
		{"set sia -128,set sib 1,sub sia sib,view sib", "127"},
		{"set sia 1,set sib -128,sub sia sib,view sib", "-127"},
		{"set sia -5,set sib 3,add sia sib,view sib", "-2"},
		{"set uia 9,add uia uia,view uia", "18"},
	}

	for _, entry := range table {
		tc := newTestCpu(t, "main:,"+entry.source)
		assert.NoError(tc.run(), entry.source)
		assert.Equal(entry.view+"\n", tc.Output.String(), entry.source)
	}
}

func TestCpu_Checked(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{
		"set uia 255,set uib 1,add uib uia",
		"set uia 0,set uib 1,sub uia uib",
		"set sia 127,set sib 1,add sib sia",
	} {
		tc := newTestCpu(t, "main:,"+source, func(cpu *Cpu) { cpu.Checked = true })

		err := tc.run()
		assert.ErrorIs(err, ErrNotANumber, source)
		assert.ErrorIs(err, ErrOverflow, source)
	}
}

func TestCpu_ArithmeticErrors(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{
		"set uia 1,set sia 1,add uia sia",
		"set proc 1,set uia 1,add proc uia",
		"set proc 1,set uia 1,sub uia proc",
		"add uia uiz",
	} {
		tc := newTestCpu(t, "main:,"+source)
		assert.ErrorIs(tc.run(), ErrNotARegister, source)
	}

	for _, source := range []string{
		"set uia 1,add uia uib",
		"set uib 1,add uia uib",
		"set uia 1,move uia sia,set sib 1,add sib sia",
	} {
		tc := newTestCpu(t, "main:,"+source)
		assert.ErrorIs(tc.run(), ErrNotANumber, source)
	}
}

func TestCpu_Registers(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,set uia 200,move uia uib,view uib,del uia,view uia")
	err := tc.run()
	assert.ErrorIs(err, ErrNotANumber)
	assert.Equal("200\n", tc.Output.String())
	assert.Equal(6, tc.Ip)

	tc = newTestCpu(t, "main:,set uia 200,move uia sia,view sia")
	assert.ErrorIs(tc.run(), ErrNotANumber)

	for _, source := range []string{"view r1", "set r1 2", "del r1", "move uia r1"} {
		tc = newTestCpu(t, "main:,"+source)
		assert.ErrorIs(tc.run(), ErrNotARegister, source)
	}

	tc = newTestCpu(t, "main:,set uia 256")
	assert.ErrorIs(tc.run(), ErrNotANumber)
}

func TestCpu_Print(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,print a,print b c,printl,printl x y z,bunny")
	assert.NoError(tc.run())
	assert.Equal("ab c\nx y z\n"+BUNNY+"\n", tc.Output.String())

	tc = newTestCpu(t, "main:,print a b c d")
	assert.ErrorIs(tc.run(), ErrNotACommand)
	assert.Empty(tc.Output.String())

	tc = newTestCpu(t, "main:,print detached")
	tc.Console = nil
	assert.ErrorIs(tc.run(), io.ErrConsoleDetached)
}

func TestCpu_NotACommand(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,printl before,fly away,printl after")
	err := tc.run()
	assert.ErrorIs(err, ErrNotACommand)
	assert.Equal("before\n", tc.Output.String())
	assert.Equal(3, tc.Ip)
	assert.Equal(2, tc.Ticks)
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	tc := newTestCpu(t, "main:,set uia 7,set proc 3")
	assert.NoError(tc.run())

	text := tc.String()
	assert.Contains(text, "ip: 4\n")
	assert.Contains(text, "ticks: 3\n")
	assert.Contains(text, "uia: U8(7)\n")
	assert.Contains(text, "sid: Null\n")
	assert.Contains(text, "proc: I32(3)\n")
	assert.Equal(4+9, strings.Count(text, "\n"))
}
