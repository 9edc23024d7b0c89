package benchmarks

import (
	"bytes"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, impl := range Impls {
		got, ok := Lookup(impl.Name)
		if !ok || got.Name != impl.Name {
			t.Errorf("Lookup(%q) = %v, %v, want %q", impl.Name, got.Name, ok, impl.Name)
		}
	}
	if _, ok := Lookup("does-not-exist"); ok {
		t.Errorf("Lookup(\"does-not-exist\") succeeded")
	}
}

func TestImpls(t *testing.T) {
	x := []byte("a\nb\nc\n")
	y := []byte("a\nB\nc\n")
	for _, impl := range Impls {
		t.Run(impl.Name, func(t *testing.T) {
			out := impl.Diff(x, y)
			if !bytes.Contains(out, []byte("-b\n")) || !bytes.Contains(out, []byte("+B\n")) {
				t.Errorf("%s diff is missing the change:\n%s", impl.Name, out)
			}
		})
	}
}
