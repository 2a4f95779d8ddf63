package bfvm

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfprog"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, input string, output *bytes.Buffer, logBuf *bytes.Buffer, tapeSize bfconfigs.TapeSize) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() Input {
			return strings.NewReader(input)
		},
		func() Output {
			return output
		},
		func() logs.Writer {
			return logBuf
		},
		func() bfconfigs.GetTapeSize {
			return func() (bfconfigs.TapeSize, error) {
				return tapeSize, nil
			}
		},
	)
}

func TestExecute(t *testing.T) {
	out := new(bytes.Buffer)
	logBuf := new(bytes.Buffer)
	testScope(t, "a\n", out, logBuf, 8).Call(func(
		execute Execute,
	) {
		program, err := bfprog.Load(",+.")
		if err != nil {
			t.Fatal(err)
		}
		if err := execute(context.Background(), program); err != nil {
			t.Fatal(err)
		}
		if out.String() != "b" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestExecuteLogsDiagnostics(t *testing.T) {
	out := new(bytes.Buffer)
	logBuf := new(bytes.Buffer)
	testScope(t, "", out, logBuf, 8).Call(func(
		execute Execute,
	) {
		program, err := bfprog.Load(",.")
		if err != nil {
			t.Fatal(err)
		}
		if err := execute(context.Background(), program); err != nil {
			t.Fatal(err)
		}
		if out.String() != "\x00" {
			t.Fatalf("got %q", out.String())
		}
		log := logBuf.String()
		if !strings.Contains(log, "level=WARN") || !strings.Contains(log, `kind="no input"`) {
			t.Fatalf("got %s", log)
		}
		if !strings.Contains(log, "logs.span=") {
			t.Fatalf("got %s", log)
		}
	})
}

func TestExecuteOutOfRange(t *testing.T) {
	out := new(bytes.Buffer)
	logBuf := new(bytes.Buffer)
	testScope(t, "", out, logBuf, 4).Call(func(
		execute Execute,
	) {
		program, err := bfprog.Load(">>>>")
		if err != nil {
			t.Fatal(err)
		}
		err = execute(context.Background(), program)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestExecuteTapeSizeError(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
		func() bfconfigs.GetTapeSize {
			return func() (bfconfigs.TapeSize, error) {
				return 0, errors.New("bad config")
			}
		},
	).Call(func(
		execute Execute,
	) {
		err := execute(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "bad config") {
			t.Fatalf("got %v", err)
		}
	})
}
