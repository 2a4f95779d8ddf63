package bfvm

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/reusee/bf/bfprog"
)

var ErrEmptyTape = errors.New("tape has no cells")

// Run executes until the instruction pointer passes the last instruction.
// Input diagnostics are yielded and execution continues if yield returns true.
// Fatal errors are yielded once and end the run.
func (v *VM) Run(yield func(*Diagnostic, error) bool) {
	if len(v.Tape) == 0 && len(v.Program) > 0 {
		yield(nil, ErrEmptyTape)
		return
	}

	for v.IP < len(v.Program) {
		inst := v.Program[v.IP]

		switch inst.Op {
		case bfprog.OpMoveRight:
			if v.TP+1 >= len(v.Tape) {
				v.fail(yield, v.outOfRange(v.TP+1))
				return
			}
			v.TP++

		case bfprog.OpMoveLeft:
			if v.TP == 0 {
				v.fail(yield, v.outOfRange(-1))
				return
			}
			v.TP--

		case bfprog.OpIncrement:
			v.Tape[v.TP]++

		case bfprog.OpDecrement:
			v.Tape[v.TP]--

		case bfprog.OpOutputByte:
			if err := v.Output.WriteByte(v.Tape[v.TP]); err != nil {
				yield(nil, err)
				return
			}

		case bfprog.OpInputByte:
			// make pending output visible before blocking on input
			if err := v.Output.Flush(); err != nil {
				yield(nil, err)
				return
			}
			b, diag := v.readByte()
			if diag != nil {
				if !yield(diag, nil) {
					return
				}
			} else {
				v.Tape[v.TP] = b
			}

		case bfprog.OpJumpIfZero:
			if v.Tape[v.TP] == 0 {
				v.IP = inst.Target
			}

		case bfprog.OpJumpIfNonZero:
			if v.Tape[v.TP] != 0 {
				v.IP = inst.Target
			}
		}

		v.IP++
	}

	if err := v.Output.Flush(); err != nil {
		yield(nil, err)
	}
}

func (v *VM) outOfRange(pos int) error {
	return &OutOfRangeError{
		Position: pos,
		TapeSize: len(v.Tape),
		IP:       v.IP,
	}
}

func (v *VM) fail(yield func(*Diagnostic, error) bool, err error) {
	if flushErr := v.Output.Flush(); flushErr != nil {
		err = errors.Join(err, flushErr)
	}
	yield(nil, err)
}

// readByte consumes one line and converts its first character
func (v *VM) readByte() (byte, *Diagnostic) {
	line, err := v.Input.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return 0, v.diagnostic(DiagnosticNoInput, ErrNoInput)
		}
		return 0, v.diagnostic(DiagnosticReadFailed, err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return 0, v.diagnostic(DiagnosticNoInput, ErrNoInput)
	}

	r, size := utf8.DecodeRuneInString(line)
	if r == utf8.RuneError && size == 1 || r > 0xff {
		return 0, v.diagnostic(DiagnosticNotByte, ErrNotByte)
	}
	return byte(r), nil
}

func (v *VM) diagnostic(kind DiagnosticKind, err error) *Diagnostic {
	return &Diagnostic{
		Kind: kind,
		IP:   v.IP,
		Err:  err,
	}
}
