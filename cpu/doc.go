// Package cpu implements the register machine and loader for the bunny
// language.
//
// The machine consists of a statement counter, a single return slot (past),
// and a bank of nine typed registers: four unsigned 8-bit (uia-uid), four
// signed 8-bit (sia-sid) and the 32-bit process register (proc), whose value
// becomes the exit code of the run.
//
// The loader tokenizes comma separated statements of space separated words.
// A statement whose first word contains a ':' is a label; execution starts
// at the label "main:".
package cpu
