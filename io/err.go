package io

import (
	"errors"

	"github.com/ezrec/bunny/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleDetached = errors.New(f("console has no output"))
	ErrConsoleFull     = errors.New(f("console full"))
)
