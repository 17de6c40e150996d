package scratch

import "testing"

func TestArenaCopyIndependence(t *testing.T) {
	a := &Arena{}

	left := a.Copy([]byte("abc"))
	right := a.Copy([]byte("xyz"))

	if string(left) != "abc" || string(right) != "xyz" {
		t.Fatalf("got %q/%q, want abc/xyz", left, right)
	}

	// A later Copy must not corrupt earlier returned slices, even when
	// it grows the arena's backing buffer.
	third := a.Copy([]byte("123"))
	if string(left) != "abc" || string(right) != "xyz" {
		t.Errorf("earlier copies mutated after a later Copy: left=%q right=%q", left, right)
	}
	if string(third) != "123" {
		t.Errorf("third = %q, want 123", third)
	}
}

func TestArenaReset(t *testing.T) {
	a := &Arena{}
	a.Copy([]byte("abc"))
	a.Reset()

	out := a.Copy([]byte("d"))
	if string(out) != "d" {
		t.Errorf("got %q, want d", out)
	}
	if cap(a.buf) == 0 {
		t.Error("Reset should keep the backing array, not nil it out")
	}
}

func TestArenaGetRelease(t *testing.T) {
	a := Get()
	a.Copy([]byte("hello"))
	a.Release()

	b := Get()
	if len(b.buf) != 0 {
		t.Error("an Arena pulled from the pool should start empty")
	}
	b.Release()
}
