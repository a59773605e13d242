package ixsort

import "testing"

func TestFamilyMakeRoundTrip(t *testing.T) {
	// A family with 8 sorts gets 4 tag bits (bit_length(8) = 4).
	f := NewFamily("test", 8)

	tests := []struct {
		sort, position uint32
	}{
		{0, 0},
		{3, 1},
		{7, 1 << 20},
	}

	for _, tt := range tests {
		idx, err := f.Make(tt.sort, tt.position)
		if err != nil {
			t.Fatalf("Make(%d, %d): unexpected error: %v", tt.sort, tt.position, err)
		}
		if got := f.Sort(idx); got != tt.sort {
			t.Errorf("Sort() = %d, want %d", got, tt.sort)
		}
		if got := f.Position(idx); got != tt.position {
			t.Errorf("Position() = %d, want %d", got, tt.position)
		}
	}
}

func TestFamilyMakeOverflow(t *testing.T) {
	f := NewFamily("test", 8) // 4 tag bits, 28 position bits available
	if _, err := f.Make(0, 1<<30); err == nil {
		t.Fatal("expected overflow error for a position needing more than 28 bits")
	}
}

func TestRepPerRoundTrip(t *testing.T) {
	for _, x := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF} {
		if got := Rep(Per(x)); got != x {
			t.Errorf("Rep(Per(%#x)) = %#x, want %#x", x, got, x)
		}
	}
}

func TestNullIsZeroBitPattern(t *testing.T) {
	var zero Index
	if !IsNull(zero) {
		t.Error("zero-valued Index must be null")
	}
	if !IsNull(Null) {
		t.Error("Null constant must report IsNull")
	}
}

type pointedDecl uint32

func TestPointedInjectRetract(t *testing.T) {
	for _, n := range []uint32{0, 1, 41} {
		p := InjectPointed[pointedDecl](n)
		if PointedIsNull(p) {
			t.Fatalf("Inject(%d) must not be null", n)
		}
		if got := RetractPointed(p); got != n {
			t.Errorf("Retract(Inject(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestPointedRetractNullPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("RetractPointed(0) must panic")
		}
	}()
	var zero pointedDecl
	RetractPointed(zero)
}
