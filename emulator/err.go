package emulator

import (
	"github.com/ezrec/bunny/cpu"
	"github.com/ezrec/bunny/translate"
)

var f = translate.From

// ErrRuntime indicates the statement at which a runtime error occurred.
type ErrRuntime struct {
	Index     int
	Statement cpu.Statement
	Err       error
}

func (err *ErrRuntime) Error() string {
	return f("statement %d '%v' %v", err.Index, err.Statement.String(), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
