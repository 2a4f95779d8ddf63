package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{
		"test2.cue",
		"test.cue",
	}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "foo" {
		t.Fatalf("got %q", str)
	}

	// only defined in the later file
	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("got %v", list)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"not-exists.cue",
	}, "")
	var str string
	if err := loader.AssignFirst("str", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	var str string
	if err := loader.AssignFirst("str", &str); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}
