package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	buf := new(bytes.Buffer)
	old := UsageWriter
	UsageWriter = buf
	defer func() {
		UsageWriter = old
	}()

	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(int, *string) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, want := range []string{
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux <int> [string]\tQUX",
		"-h (help, -help, --help)\tprint this usage",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got %s", out)
	}
}
