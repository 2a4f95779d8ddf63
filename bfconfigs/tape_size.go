package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

const DefaultTapeSize = 30000

type TapeSize int

var _ configs.Configurable = TapeSize(0)

func (t TapeSize) ConfigKey() string {
	return "tape_size"
}

type GetTapeSize func() (TapeSize, error)

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func init() {
	cmds.Describe("-tape-size", fmt.Sprintf("number of tape cells, default %d", DefaultTapeSize))
}

func (Module) GetTapeSize(
	loader configs.Loader,
) GetTapeSize {
	return func() (TapeSize, error) {
		configured, err := configs.First[int](loader, TapeSize(0).ConfigKey())
		if err != nil {
			return 0, err
		}
		size := vars.FirstNonZero(
			*tapeSizeFlag,
			configured,
			DefaultTapeSize,
		)
		if size <= 0 {
			return 0, fmt.Errorf("invalid tape size: %d", size)
		}
		return TapeSize(size), nil
	}
}
