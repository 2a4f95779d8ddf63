package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/bf/bfprog"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

var fileFlag = cmds.Var[string]("-file")

func init() {
	cmds.Describe("-file", "read the program from a file instead of the first argument")
}

var errNoProgram = errors.New("a program is required: bf <program> [options]")

func main() {
	positional, err := cmds.GlobalExecutor.Parse(os.Args[1:])
	if err != nil {
		exit(err)
	}

	program, err := loadProgram(positional, *fileFlag)
	if err != nil {
		if errors.Is(err, errNoProgram) {
			fmt.Fprintln(os.Stderr, err)
			cmds.PrintUsage()
			os.Exit(1)
		}
		exit(err)
	}

	dscope.New(
		new(bfvm.Module),
		modes.ForProduction(),
	).Call(func(
		execute bfvm.Execute,
	) {
		if err := execute(context.Background(), program); err != nil {
			exit(err)
		}
	})
}

func loadProgram(positional []string, file string) (bfprog.Program, error) {
	if file != "" {
		if len(positional) > 0 {
			return nil, fmt.Errorf("unexpected argument: %s", positional[0])
		}
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		program, err := bfprog.LoadReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return program, nil
	}

	if len(positional) == 0 {
		return nil, errNoProgram
	}
	if len(positional) > 1 {
		return nil, fmt.Errorf("unexpected argument: %s", positional[1])
	}
	return bfprog.Load(positional[0])
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
