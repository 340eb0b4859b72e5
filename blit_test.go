package gcdc

import (
	"image"
	"testing"

	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/backend/recording"
	"github.com/gogpu/gcdc/paint"
)

// unreadableSource is a valid source whose pixels cannot be read back.
type unreadableSource struct{}

func (unreadableSource) IsOk() bool                               { return true }
func (unreadableSource) LogicalToDevice(x, y int) (int, int)      { return x, y }
func (unreadableSource) LogicalToDeviceRel(dx, dy int) (int, int) { return dx, dy }
func (unreadableSource) Size() (int, int)                         { return 50, 50 }
func (unreadableSource) AsBitmap(image.Rectangle) (*paint.Bitmap, bool) {
	return nil, false
}

func newSource(t *testing.T) *GCDC {
	t.Helper()
	src := NewFromContext(recording.NewRecorder(50, 50))
	if !src.IsOk() {
		t.Fatal("source IsOk() = false")
	}
	return src
}

func TestBlitNoOp(t *testing.T) {
	d, rec := newTestDC(t)
	if !d.Blit(0, 0, 10, 10, newSource(t), 0, 0, RasterNoOp, false) {
		t.Error("Blit(noop) = false, want true")
	}
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands for a no-op blit, want 0", n)
	}
}

func TestBlitUnsupportedOp(t *testing.T) {
	d, rec := newTestDC(t)
	if d.Blit(0, 0, 10, 10, newSource(t), 0, 0, RasterAnd, false) {
		t.Error("Blit(and) = true, want false")
	}
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands for an unsupported blit, want 0", n)
	}
}

func TestBlitCopy(t *testing.T) {
	d, rec := newTestDC(t)
	if !d.Blit(5, 5, 10, 10, newSource(t), 0, 0, RasterCopy, false) {
		t.Fatal("Blit(copy) = false")
	}

	want := []recording.CommandType{
		recording.CmdSetCompositionMode,
		recording.CmdDrawBitmap,
		recording.CmdSetCompositionMode,
	}
	got := commandTypes(rec)
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	c := lastOfType[recording.DrawBitmapCommand](t, rec, recording.CmdDrawBitmap)
	if c.X != 5 || c.Y != 5 || c.W != 10 || c.H != 10 {
		t.Errorf("DrawBitmap at (%v, %v, %v, %v), want (5, 5, 10, 10)", c.X, c.Y, c.W, c.H)
	}
	if c.Bitmap.Width() != 10 || c.Bitmap.Height() != 10 {
		t.Errorf("bitmap is %d x %d, want 10 x 10", c.Bitmap.Width(), c.Bitmap.Height())
	}
	if r, _ := d.BoundingBox(); r != image.Rect(5, 5, 15, 15) {
		t.Errorf("BoundingBox() = %v, want (5,5)-(15,15)", r)
	}
}

func TestStretchBlitClipsSource(t *testing.T) {
	tests := []struct {
		name       string
		dw, dh     int
		xsrc, ysrc int
		x, y, w, h float64
		bmpW, bmpH int
	}{
		{"past right and bottom", 20, 20, 40, 40, 0, 0, 10, 10, 10, 10},
		{"before left", 40, 40, -10, 0, 20, 0, 20, 40, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDC(t)
			if !d.StretchBlit(0, 0, tt.dw, tt.dh, newSource(t), tt.xsrc, tt.ysrc, 20, 20, RasterCopy, false) {
				t.Fatal("StretchBlit() = false")
			}
			c := lastOfType[recording.DrawBitmapCommand](t, rec, recording.CmdDrawBitmap)
			if c.X != tt.x || c.Y != tt.y || c.W != tt.w || c.H != tt.h {
				t.Errorf("DrawBitmap at (%v, %v, %v, %v), want (%v, %v, %v, %v)",
					c.X, c.Y, c.W, c.H, tt.x, tt.y, tt.w, tt.h)
			}
			if c.Bitmap.Width() != tt.bmpW || c.Bitmap.Height() != tt.bmpH {
				t.Errorf("bitmap is %d x %d, want %d x %d",
					c.Bitmap.Width(), c.Bitmap.Height(), tt.bmpW, tt.bmpH)
			}
		})
	}
}

func TestStretchBlitOutsideSource(t *testing.T) {
	d, rec := newTestDC(t)
	if !d.StretchBlit(0, 0, 10, 10, newSource(t), 100, 0, 10, 10, RasterCopy, false) {
		t.Error("StretchBlit(outside) = false, want true")
	}
	if n := len(rec.CommandsOfType(recording.CmdDrawBitmap)); n != 0 {
		t.Errorf("%d bitmaps drawn, want 0", n)
	}
}

func TestBlitXorTogglesAntialias(t *testing.T) {
	d, rec := newTestDC(t)
	if !d.Blit(0, 0, 10, 10, newSource(t), 0, 0, RasterXor, false) {
		t.Fatal("Blit(xor) = false")
	}
	aa := rec.CommandsOfType(recording.CmdSetAntialiasMode)
	if len(aa) != 2 {
		t.Fatalf("%d antialias changes, want 2", len(aa))
	}
	if m := aa[0].(recording.SetAntialiasModeCommand).Mode; m != backend.AntialiasNone {
		t.Errorf("blit antialias = %v, want none", m)
	}
	if rec.AntialiasMode() != backend.AntialiasDefault {
		t.Errorf("antialias after blit = %v, want default", rec.AntialiasMode())
	}
	if rec.CompositionMode() != backend.CompositionOver {
		t.Errorf("composition after blit = %v, want over", rec.CompositionMode())
	}
}

func TestBlitUnreadableSource(t *testing.T) {
	d, rec := newTestDC(t)
	if d.Blit(0, 0, 10, 10, unreadableSource{}, 0, 0, RasterCopy, false) {
		t.Error("Blit(unreadable) = true, want false")
	}
	if rec.CompositionMode() != backend.CompositionOver {
		t.Errorf("composition = %v, want over restored", rec.CompositionMode())
	}
	if d.Blit(0, 0, 10, 10, NewFromContext(nil), 0, 0, RasterCopy, false) {
		t.Error("Blit(invalid source) = true, want false")
	}
	if d.Blit(0, 0, 10, 10, nil, 0, 0, RasterCopy, false) {
		t.Error("Blit(nil) = true, want false")
	}
}

func TestDrawMonoBitmap(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetTextForeground(paint.Blue)
	d.SetTextBackground(paint.Red)
	rec.Reset()

	d.DrawBitmap(paint.NewMonoBitmap(image.NewAlpha(image.Rect(0, 0, 4, 4))), 1, 1, false)

	want := []recording.CommandType{
		recording.CmdSetPen,
		recording.CmdSetBrush,
		recording.CmdDrawRectangle,
		recording.CmdSetBrush,
		recording.CmdDrawBitmap,
		recording.CmdSetBrush,
		recording.CmdSetPen,
	}
	got := commandTypes(rec)
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
	brushes := rec.CommandsOfType(recording.CmdSetBrush)
	if c := brushes[0].(recording.SetBrushCommand).Brush.Color; c != paint.Red {
		t.Errorf("stencil background = %v, want red", c)
	}
	if c := brushes[1].(recording.SetBrushCommand).Brush.Color; c != paint.Blue {
		t.Errorf("stencil foreground = %v, want blue", c)
	}
	if r, _ := d.BoundingBox(); r != image.Rect(1, 1, 5, 5) {
		t.Errorf("BoundingBox() = %v, want (1,1)-(5,5)", r)
	}
}

func TestDrawBitmapMask(t *testing.T) {
	bmp := paint.NewBitmap(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	bmp.Mask = image.NewAlpha(image.Rect(0, 0, 4, 4))

	d, rec := newTestDC(t)
	d.DrawBitmap(bmp, 0, 0, false)
	if c := lastOfType[recording.DrawBitmapCommand](t, rec, recording.CmdDrawBitmap); c.Bitmap.HasMask() {
		t.Error("mask kept with useMask false")
	}
	if !bmp.HasMask() {
		t.Error("DrawBitmap removed the caller's mask")
	}

	d.DrawIcon(bmp, 0, 0)
	if c := lastOfType[recording.DrawBitmapCommand](t, rec, recording.CmdDrawBitmap); !c.Bitmap.HasMask() {
		t.Error("DrawIcon dropped the mask")
	}

	rec.Reset()
	d.DrawBitmap(nil, 0, 0, true)
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands for a nil bitmap, want 0", n)
	}
}

func TestAsBitmap(t *testing.T) {
	d := NewFromContext(recording.NewRecorder(30, 20))

	bmp, ok := d.AsBitmap(image.Rectangle{})
	if !ok || bmp.Width() != 30 || bmp.Height() != 20 {
		t.Errorf("AsBitmap(whole) = %d x %d, %v, want 30 x 20", bmp.Width(), bmp.Height(), ok)
	}
	bmp, ok = d.AsBitmap(image.Rect(5, 5, 15, 10))
	if !ok || bmp.Width() != 10 || bmp.Height() != 5 {
		t.Errorf("AsBitmap(sub) = %d x %d, %v, want 10 x 5", bmp.Width(), bmp.Height(), ok)
	}
	if w, h := d.Size(); w != 30 || h != 20 {
		t.Errorf("Size() = %d, %d, want 30, 20", w, h)
	}
}
