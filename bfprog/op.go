package bfprog

type OpCode uint8

const (
	OpMoveRight OpCode = iota + 1
	OpMoveLeft
	OpIncrement
	OpDecrement
	OpOutputByte
	OpInputByte
	OpJumpIfZero
	OpJumpIfNonZero
)

var opChars = [...]byte{
	OpMoveRight:     '>',
	OpMoveLeft:      '<',
	OpIncrement:     '+',
	OpDecrement:     '-',
	OpOutputByte:    '.',
	OpInputByte:     ',',
	OpJumpIfZero:    '[',
	OpJumpIfNonZero: ']',
}

func (o OpCode) String() string {
	if o == 0 || int(o) >= len(opChars) {
		return "?"
	}
	return string(opChars[o])
}

// opOf returns 0 for characters that are not commands
func opOf(c rune) OpCode {
	switch c {
	case '>':
		return OpMoveRight
	case '<':
		return OpMoveLeft
	case '+':
		return OpIncrement
	case '-':
		return OpDecrement
	case '.':
		return OpOutputByte
	case ',':
		return OpInputByte
	case '[':
		return OpJumpIfZero
	case ']':
		return OpJumpIfNonZero
	}
	return 0
}

type Instruction struct {
	Op OpCode
	// index of the partner bracket, jumps only
	Target int
}

func (i Instruction) IsJump() bool {
	return i.Op == OpJumpIfZero || i.Op == OpJumpIfNonZero
}
