// Package io provides the consoles the bunny machine writes its output to.
// Tape writes through to an io.Writer; Temporary keeps a bounded copy in
// memory.
package io

// Console defines the interface the machine prints through.
type Console interface {
	// Print writes text as-is.
	Print(text string) error
	// Println writes text followed by a newline.
	Println(text string) error
}
