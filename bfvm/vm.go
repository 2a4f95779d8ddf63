package bfvm

import (
	"bufio"
	"io"

	"github.com/reusee/bf/bfprog"
)

type Tape []byte

type VM struct {
	Program bfprog.Program
	Tape    Tape
	// tape pointer
	TP int
	// instruction pointer
	IP     int
	Input  *bufio.Reader
	Output *bufio.Writer
}

func NewVM(program bfprog.Program, tapeSize int, input io.Reader, output io.Writer) *VM {
	return &VM{
		Program: program,
		Tape:    make(Tape, tapeSize),
		Input:   bufio.NewReader(input),
		Output:  bufio.NewWriter(output),
	}
}

func (v *VM) Halted() bool {
	return v.IP >= len(v.Program)
}

func (v *VM) Cell() byte {
	return v.Tape[v.TP]
}
