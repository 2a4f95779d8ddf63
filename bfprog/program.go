package bfprog

import (
	"io"
	"strings"
)

type Program []Instruction

func (p Program) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, inst := range p {
		b.WriteString(inst.Op.String())
	}
	return b.String()
}

func LoadReader(r io.Reader) (Program, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Load(string(content))
}

func Load(source string) (Program, error) {
	var program Program
	// indexes of unmatched JumpIfZero
	var opening []int
	// source positions of unmatched brackets, parallel to opening
	var positions []position

	pos := position{
		Line:   1,
		Column: 1,
	}
	for offset, c := range source {
		pos.Offset = offset
		op := opOf(c)

		switch op {
		case 0:

		case OpJumpIfZero:
			opening = append(opening, len(program))
			positions = append(positions, pos)
			program = append(program, Instruction{
				Op:     OpJumpIfZero,
				Target: -1,
			})

		case OpJumpIfNonZero:
			if len(opening) == 0 {
				return nil, &StructuralError{
					Err:    ErrUnmatchedClosingBracket,
					Offset: pos.Offset,
					Line:   pos.Line,
					Column: pos.Column,
					Index:  len(program),
				}
			}
			open := opening[len(opening)-1]
			opening = opening[:len(opening)-1]
			positions = positions[:len(positions)-1]
			program[open].Target = len(program)
			program = append(program, Instruction{
				Op:     OpJumpIfNonZero,
				Target: open,
			})

		default:
			program = append(program, Instruction{
				Op: op,
			})
		}

		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	if len(opening) > 0 {
		pos := positions[len(positions)-1]
		return nil, &StructuralError{
			Err:    ErrUnmatchedOpeningBracket,
			Offset: pos.Offset,
			Line:   pos.Line,
			Column: pos.Column,
			Index:  opening[len(opening)-1],
		}
	}

	return program, nil
}

type position struct {
	Offset int
	Line   int
	Column int
}
