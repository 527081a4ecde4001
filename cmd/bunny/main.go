// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/text/language"

	"github.com/ezrec/bunny/cpu"
	"github.com/ezrec/bunny/emulator"
	console "github.com/ezrec/bunny/io"
	"github.com/ezrec/bunny/translate"
)

const LOGO = "(\\ /)\n( . .) Bunny Unit Processing Central\nC(\")(\")\n"

// LOGOD is shown before reading a script typed at a terminal.
const LOGOD = "(\\ /)\n( . .) Bunny Unit Processing Central\nC(\")(\")\tPress Ctrl+D to execute!\n"

const ABOUT = "An assembly-like interpreted language of registers, labels and gotos.\n"

const HELP = `Runs a bunny script, read from FILE or from standard input.

A script is a comma separated list of statements. Execution starts at the
'main:' label and ends on 'exit', which returns the value of the 'proc'
register as the exit status.

Commands:
  about     view about information
  help      view help information
  [FILE]    executes the given script
`

type options struct {
	Verbose bool
	Nested  bool
	Checked bool
	Limit   int
	Lang    string

	code int32
}

func newCommand(opt *options) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:           "bunny [FILE]",
		Short:         "Bunny Unit Processing Central",
		Long:          HELP,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opt.language()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opt.run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&opt.Verbose, "verbose", "v", false, "Verbose mode")
	cmd.Flags().BoolVarP(&opt.Nested, "nested", "n", false, "Save return slots across nested gotos")
	cmd.Flags().BoolVarP(&opt.Checked, "checked", "c", false, "Make 8-bit overflow fatal")
	cmd.Flags().IntVarP(&opt.Limit, "limit", "l", 0, "Stop the script once it prints more than this many bytes")
	cmd.PersistentFlags().StringVar(&opt.Lang, "lang", "", "Language of diagnostics, as a BCP 47 tag")

	cmd.AddCommand(&cobra.Command{
		Use:   "about",
		Short: "View about information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), LOGO)
			fmt.Fprint(cmd.OutOrStdout(), ABOUT)
		},
	})

	return
}

// language selects the diagnostic language, if one was given.
func (opt *options) language() (err error) {
	if len(opt.Lang) == 0 {
		return
	}

	tag, err := language.Parse(opt.Lang)
	if err != nil {
		err = fmt.Errorf("--lang %v: %w", opt.Lang, err)
		return
	}

	translate.Use(tag)
	return
}

// isTerminal returns true if the reader is an interactive device.
func isTerminal(input io.Reader) bool {
	inf, ok := input.(*os.File)
	if !ok {
		return false
	}

	info, err := inf.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// load reads the script from the named file, or from standard input.
func (opt *options) load(cmd *cobra.Command, args []string) (prog *cpu.Program, err error) {
	ld := &cpu.Loader{Verbose: opt.Verbose}

	if len(args) == 1 {
		var inf *os.File
		inf, err = os.Open(args[0])
		if err != nil {
			err = errors.Join(cpu.ErrLoad, err)
			return
		}
		defer inf.Close()

		prog, err = ld.Parse(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", args[0], err)
		}
		return
	}

	stdin := cmd.InOrStdin()
	if isTerminal(stdin) {
		fmt.Fprint(cmd.OutOrStdout(), LOGOD)
	}

	prog, err = ld.Parse(stdin)
	if errors.Is(err, cpu.ErrSourceEmpty) {
		prog, err = cpu.DefaultProgram(), nil
	}

	return
}

func (opt *options) run(cmd *cobra.Command, args []string) (err error) {
	prog, err := opt.load(cmd, args)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opt.Verbose
	emu.Nested = opt.Nested
	emu.Checked = opt.Checked
	emu.Tape.Output = cmd.OutOrStdout()
	emu.Program = prog

	// With a limit, output is held until the run ends.
	var temp *console.Temporary
	if opt.Limit > 0 {
		temp = &console.Temporary{Capacity: opt.Limit}
		temp.Rewind()
		emu.Cpu.Console = temp
	}

	opt.code, err = emu.Run()

	if temp != nil {
		cmd.OutOrStdout().Write(temp.Data)
	}

	if opt.Verbose {
		log.Printf("state:\n%v", emu.Cpu.String())
	}

	return
}

// execute runs the command line, and returns the process exit status.
func execute(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFlags(0)
	log.SetPrefix("bunny: ")

	opt := &options{}
	cmd := newCommand(opt)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		log.Print(err)
		return int(emulator.Status(err))
	}

	return int(opt.code)
}

func main() {
	atexit.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
