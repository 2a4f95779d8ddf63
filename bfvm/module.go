package bfvm

import (
	"context"
	"io"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfprog"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}

type Input io.Reader

func (Module) Input() Input {
	return os.Stdin
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

// Execute runs a loaded program to completion against the injected streams
type Execute func(ctx context.Context, program bfprog.Program) error

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
	getTapeSize bfconfigs.GetTapeSize,
	input Input,
	output Output,
) Execute {
	return func(ctx context.Context, program bfprog.Program) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		tapeSize, err := getTapeSize()
		if err != nil {
			return err
		}

		vm := NewVM(program, int(tapeSize), input, output)
		logger.DebugContext(ctx, "run",
			"instructions", len(program),
			"tape_size", int(tapeSize),
		)

		var diagnostics int
		for diag, err := range vm.Run {
			if err != nil {
				logger.DebugContext(ctx, "run aborted",
					"ip", vm.IP,
					"tp", vm.TP,
					"error", err,
				)
				return err
			}
			diagnostics++
			logger.WarnContext(ctx, diag.Err.Error(),
				"kind", diag.Kind.String(),
				"ip", diag.IP,
			)
		}

		logger.DebugContext(ctx, "halted",
			"diagnostics", diagnostics,
		)
		return nil
	}
}
