package bfvm

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("tape pointer out of range")

type OutOfRangeError struct {
	// the index the pointer would have moved to
	Position int
	TapeSize int
	IP       int
}

func (o *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: position %d, tape size %d, instruction %d",
		ErrOutOfRange, o.Position, o.TapeSize, o.IP)
}

func (o *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
