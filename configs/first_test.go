package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	list, err := First[[]int](loader, "not")
	if err != nil {
		t.Fatal(err)
	}
	if list != nil {
		t.Fatalf("got %v", list)
	}
}

func TestFirstDecodeError(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	_, err := First[int](loader, "str")
	if err == nil {
		t.Fatal("should error")
	}
}
