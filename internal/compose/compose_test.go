package compose

import (
	"testing"

	"github.com/gogpu/gcdc/backend"
)

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want uint8
	}{
		{0, 255, 0},
		{255, 255, 255},
		{128, 255, 128},
		{255, 128, 128},
		{128, 128, 64},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	for m := backend.CompositionClear; m <= backend.CompositionDiff; m++ {
		if _, ok := Lookup(m); !ok {
			t.Errorf("Lookup(%v) not found", m)
		}
	}
	if _, ok := Lookup(backend.CompositionInvalid); ok {
		t.Error("Lookup(invalid) found a function")
	}
}

func TestOperators(t *testing.T) {
	red := [4]uint8{255, 0, 0, 255}
	blue := [4]uint8{0, 0, 255, 255}
	none := [4]uint8{0, 0, 0, 0}

	tests := []struct {
		mode     backend.CompositionMode
		src, dst [4]uint8
		want     [4]uint8
	}{
		{backend.CompositionClear, red, blue, none},
		{backend.CompositionSource, red, blue, red},
		{backend.CompositionOver, red, blue, red},
		{backend.CompositionOver, none, blue, blue},
		{backend.CompositionDest, red, blue, blue},
		{backend.CompositionDestOver, red, blue, blue},
		{backend.CompositionDestOver, red, none, red},
		{backend.CompositionIn, red, none, none},
		{backend.CompositionOut, red, none, red},
		{backend.CompositionXor, red, blue, none},
		{backend.CompositionXor, red, none, red},
		{backend.CompositionAdd, red, blue, [4]uint8{255, 0, 255, 255}},
		{backend.CompositionDiff, red, red, [4]uint8{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		fn, _ := Lookup(tt.mode)
		r, g, b, a := fn(tt.src[0], tt.src[1], tt.src[2], tt.src[3], tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
		if got := [4]uint8{r, g, b, a}; got != tt.want {
			t.Errorf("%v(%v, %v) = %v, want %v", tt.mode, tt.src, tt.dst, got, tt.want)
		}
	}
}

func TestApplyCoverage(t *testing.T) {
	fn, _ := Lookup(backend.CompositionClear)

	r, g, b, a := Apply(fn, 0, 0, 0, 0, 200, 100, 50, 255, 0)
	if r != 200 || g != 100 || b != 50 || a != 255 {
		t.Errorf("zero coverage changed pixel to %d,%d,%d,%d", r, g, b, a)
	}

	_, _, _, a = Apply(fn, 0, 0, 0, 0, 200, 100, 50, 255, 255)
	if a != 0 {
		t.Errorf("full coverage clear alpha = %d, want 0", a)
	}

	_, _, _, a = Apply(fn, 0, 0, 0, 0, 200, 100, 50, 255, 128)
	if a != 127 {
		t.Errorf("half coverage clear alpha = %d, want 127", a)
	}
}
