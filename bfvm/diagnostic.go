package bfvm

import (
	"errors"
	"fmt"
)

type DiagnosticKind uint8

const (
	// end of input stream or an empty chunk
	DiagnosticNoInput DiagnosticKind = iota + 1
	// first character has no single-byte representation
	DiagnosticNotByte
	DiagnosticReadFailed
)

func (d DiagnosticKind) String() string {
	switch d {
	case DiagnosticNoInput:
		return "no input"
	case DiagnosticNotByte:
		return "not a byte"
	case DiagnosticReadFailed:
		return "read failed"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", d)
}

var (
	ErrNoInput = errors.New("please enter at least one character")
	ErrNotByte = errors.New("character cannot be represented as a single byte")
)

// Diagnostic reports an input instruction that left the cell unchanged
type Diagnostic struct {
	Kind DiagnosticKind
	IP   int
	Err  error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("input at instruction %d: %s: %v", d.IP, d.Kind, d.Err)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}
