package gcdc

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/backend/recording"
	"github.com/gogpu/gcdc/paint"
)

// The recorder measures every rune as half an em wide and lines as 1.2
// em high; the default 10 pt font at 72 DPI gives 5 x 12 per rune.

func textCommands(rec *recording.Recorder) []recording.DrawTextCommand {
	var out []recording.DrawTextCommand
	for _, c := range rec.CommandsOfType(recording.CmdDrawText) {
		out = append(out, c.(recording.DrawTextCommand))
	}
	return out
}

func TestDrawText(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawText("hi", 1, 2)

	texts := textCommands(rec)
	if len(texts) != 1 {
		t.Fatalf("%d text commands, want 1", len(texts))
	}
	c := texts[0]
	if c.Text != "hi" || c.X != 1 || c.Y != 2 || c.Angle != 0 {
		t.Errorf("DrawText = %+v, want \"hi\" at (1, 2)", c)
	}
	if c.Background != nil {
		t.Errorf("background = %+v, want none in transparent mode", c.Background)
	}
	if r, ok := d.BoundingBox(); !ok || r != image.Rect(1, 2, 11, 14) {
		t.Errorf("BoundingBox() = %v, %v, want (1,2)-(11,14)", r, ok)
	}

	rec.Reset()
	d.DrawText("", 0, 0)
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands for empty text, want 0", n)
	}
}

func TestDrawTextIgnoresLogicalFunction(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetLogicalFunction(RasterXor)
	d.DrawText("x", 0, 0)

	c := textCommands(rec)[0]
	if c.Mode != backend.CompositionOver {
		t.Errorf("text drawn in %v, want over", c.Mode)
	}
	if m := rec.CompositionMode(); m != backend.CompositionXor {
		t.Errorf("composition after text = %v, want xor restored", m)
	}
}

func TestDrawTextSolidBackground(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetBackgroundMode(BackgroundSolid)
	d.SetTextBackground(paint.Red)
	d.DrawText("x", 0, 0)

	c := textCommands(rec)[0]
	if c.Background == nil || c.Background.Color != paint.Red {
		t.Errorf("background = %+v, want red", c.Background)
	}
}

func TestDrawTextMultiLine(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawText("ab\ncd", 3, 4)

	texts := textCommands(rec)
	if len(texts) != 2 {
		t.Fatalf("%d text commands, want 2", len(texts))
	}
	if texts[0].Text != "ab" || texts[0].X != 3 || texts[0].Y != 4 {
		t.Errorf("line 0 = %+v, want \"ab\" at (3, 4)", texts[0])
	}
	if texts[1].Text != "cd" || texts[1].X != 3 || texts[1].Y != 16 {
		t.Errorf("line 1 = %+v, want \"cd\" at (3, 16)", texts[1])
	}
}

func TestDrawRotatedText(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawRotatedText("ab\ncd", 10, 10, 90)

	texts := textCommands(rec)
	if len(texts) != 2 {
		t.Fatalf("%d text commands, want 2", len(texts))
	}
	for _, c := range texts {
		if !near(c.Angle, math.Pi/2) {
			t.Errorf("angle = %v, want pi/2", c.Angle)
		}
	}
	// Lines stack along the rotated vertical axis.
	if texts[0].X != 10 || texts[0].Y != 10 {
		t.Errorf("line 0 at (%v, %v), want (10, 10)", texts[0].X, texts[0].Y)
	}
	if texts[1].X != 22 || texts[1].Y != 10 {
		t.Errorf("line 1 at (%v, %v), want (22, 10)", texts[1].X, texts[1].Y)
	}

	rec.Reset()
	d.DrawRotatedText("ab", 0, 0, 0)
	if c := textCommands(rec); len(c) != 1 || c[0].Angle != 0 {
		t.Errorf("unrotated text = %+v, want one line at angle 0", c)
	}
}

func TestDrawLabel(t *testing.T) {
	r := image.Rect(0, 0, 100, 50)
	tests := []struct {
		name   string
		align  Alignment
		bounds image.Rectangle
		second image.Point
	}{
		{"top left", AlignLeft | AlignTop, image.Rect(0, 0, 10, 24), image.Pt(0, 12)},
		{"bottom right", AlignRight | AlignBottom, image.Rect(89, 25, 99, 49), image.Pt(94, 37)},
		{"centre", AlignCenter, image.Rect(45, 13, 55, 37), image.Pt(47, 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDC(t)
			got := d.DrawLabel("ab\nc", r, tt.align)
			if got != tt.bounds {
				t.Errorf("DrawLabel() = %v, want %v", got, tt.bounds)
			}
			texts := textCommands(rec)
			if len(texts) != 2 {
				t.Fatalf("%d text commands, want 2", len(texts))
			}
			if p := image.Pt(int(texts[1].X), int(texts[1].Y)); p != tt.second {
				t.Errorf("second line at %v, want %v", p, tt.second)
			}
		})
	}
}

func TestTextExtent(t *testing.T) {
	d, _ := newTestDC(t)
	d.SetFont(paint.NewFont(20, paint.FamilyDefault))

	w, h, descent, leading := d.TextExtent("abcd")
	if w != 40 || h != 24 || descent != 4 || leading != 0 {
		t.Errorf("TextExtent(abcd) = %d, %d, %d, %d, want 40, 24, 4, 0", w, h, descent, leading)
	}
	if got := d.CharHeight(); got != 24 {
		t.Errorf("CharHeight() = %d, want 24", got)
	}
	if got := d.CharWidth(); got != 10 {
		t.Errorf("CharWidth() = %d, want 10", got)
	}
}

func TestMultiLineTextExtent(t *testing.T) {
	d, _ := newTestDC(t)
	w, h, lineHeight := d.MultiLineTextExtent("ab\n\nabc")
	if w != 15 || h != 36 || lineHeight != 12 {
		t.Errorf("MultiLineTextExtent() = %d, %d, %d, want 15, 36, 12", w, h, lineHeight)
	}
}

func TestPartialTextExtents(t *testing.T) {
	d, _ := newTestDC(t)
	got := d.PartialTextExtents("abc")
	want := []int{5, 10, 15}
	if len(got) != len(want) {
		t.Fatalf("PartialTextExtents(abc) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PartialTextExtents(abc)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSetTextForeground(t *testing.T) {
	d, rec := newTestDC(t)

	d.SetTextForeground(paint.Color{})
	if d.TextForeground() != paint.Black {
		t.Errorf("TextForeground() = %v, want black kept", d.TextForeground())
	}
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands for an invalid colour, want 0", n)
	}

	d.SetTextForeground(paint.Red)
	if _, c := rec.Font(); c != paint.Red {
		t.Errorf("backend text colour = %v, want red", c)
	}
}

func TestTextOnInvalidDC(t *testing.T) {
	d := NewFromContext(nil)
	if w, h, _, _ := d.TextExtent("abc"); w != 0 || h != 0 {
		t.Errorf("TextExtent() = %d, %d, want 0, 0", w, h)
	}
	if got := d.PartialTextExtents("abc"); got != nil {
		t.Errorf("PartialTextExtents() = %v, want nil", got)
	}
	if r := d.DrawLabel("a", image.Rect(0, 0, 10, 10), AlignCenter); !r.Empty() {
		t.Errorf("DrawLabel() = %v, want empty", r)
	}
}
