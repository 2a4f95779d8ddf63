package bfprog

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedOpeningBracket = errors.New("unmatched opening bracket")
	ErrUnmatchedClosingBracket = errors.New("unmatched closing bracket")
)

type StructuralError struct {
	Err    error
	Offset int
	Line   int
	Column int
	// instruction index of the bracket
	Index int
}

func (s *StructuralError) Error() string {
	return fmt.Sprintf("%v at %d:%d (offset %d)", s.Err, s.Line, s.Column, s.Offset)
}

func (s *StructuralError) Unwrap() error {
	return s.Err
}
