package paint

import (
	"image"
	"image/color"
	"testing"
)

func TestZeroValuesAreNull(t *testing.T) {
	if (Color{}).IsOk() {
		t.Error("zero Color IsOk() = true, want false")
	}
	if (Pen{}).IsOk() {
		t.Error("zero Pen IsOk() = true, want false")
	}
	if (Brush{}).IsOk() {
		t.Error("zero Brush IsOk() = true, want false")
	}
	if (Font{}).IsOk() {
		t.Error("zero Font IsOk() = true, want false")
	}
	var b *Bitmap
	if b.IsOk() {
		t.Error("nil Bitmap IsOk() = true, want false")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", RGB(255, 255, 255)},
		{"#102030", RGB(0x10, 0x20, 0x30)},
		{"#10203040", RGBA(0x10, 0x20, 0x30, 0x40)},
		{"red", RGB(255, 0, 0)},
		{"SteelBlue", RGB(70, 130, 180)},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "notacolour"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) error = nil, want error", in)
		}
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.RGBA{R: 128, G: 0, B: 0, A: 255})
	if c != RGB(128, 0, 0) {
		t.Errorf("FromColor = %v, want #800000ff", c)
	}
	if FromColor(nil).IsOk() {
		t.Error("FromColor(nil).IsOk() = true, want false")
	}
}

func TestPenTransparency(t *testing.T) {
	if !TransparentPen.IsTransparent() {
		t.Error("TransparentPen.IsTransparent() = false")
	}
	if NewPen(Black, 1).IsTransparent() {
		t.Error("solid pen IsTransparent() = true")
	}
	if !(Pen{}).IsTransparent() {
		t.Error("null pen IsTransparent() = false")
	}
}

func TestDashPattern(t *testing.T) {
	p := NewPen(Black, 2)
	if p.DashPattern() != nil {
		t.Errorf("solid DashPattern() = %v, want nil", p.DashPattern())
	}

	p.Style = PenStyleShortDash
	got := p.DashPattern()
	if len(got) != 2 || got[0] != 6 || got[1] != 6 {
		t.Errorf("short dash pattern = %v, want [6 6]", got)
	}

	p.Style = PenStyleUserDash
	p.Dashes = []float64{1, 2, 3}
	got = p.DashPattern()
	if len(got) != 3 || got[2] != 6 {
		t.Errorf("user dash pattern = %v, want [2 4 6]", got)
	}
}

func TestGradientAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0, RGB(0, 0, 0), RGB(200, 100, 50))

	if got := g.At(-1); got != RGB(0, 0, 0) {
		t.Errorf("At(-1) = %v, want start colour", got)
	}
	if got := g.At(2); got != RGB(200, 100, 50) {
		t.Errorf("At(2) = %v, want end colour", got)
	}
	if got := g.At(0.5); got != RGB(100, 50, 25) {
		t.Errorf("At(0.5) = %v, want #643219ff", got)
	}
}

func TestBitmapSubBitmap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 8))
	img.Set(3, 2, color.RGBA{255, 0, 0, 255})
	b := NewBitmap(img)
	b.Mask = image.NewAlpha(img.Bounds())

	sub := b.SubBitmap(image.Rect(2, 1, 6, 20))
	if sub.Width() != 4 || sub.Height() != 7 {
		t.Fatalf("SubBitmap size = %dx%d, want 4x7", sub.Width(), sub.Height())
	}
	if r, _, _, _ := sub.Image.At(1, 1).RGBA(); r != 0xffff {
		t.Errorf("SubBitmap pixel (1,1) red = %#x, want 0xffff", r)
	}
	if !sub.HasMask() {
		t.Error("SubBitmap dropped the mask")
	}
	if sub.WithoutMask().HasMask() {
		t.Error("WithoutMask().HasMask() = true")
	}
	if b.SubBitmap(image.Rect(20, 20, 30, 30)) != nil {
		t.Error("SubBitmap outside bounds should be nil")
	}
}
