package gcdc

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/backend/recording"
	"github.com/gogpu/gcdc/paint"
)

func TestDrawRectangleShrinksForOutline(t *testing.T) {
	tests := []struct {
		name string
		pen  paint.Pen
		w, h float64
	}{
		{"solid pen", paint.NewPen(paint.Black, 1), 49, 29},
		{"wide pen", paint.NewPen(paint.Black, 5), 49, 29},
		{"transparent pen", paint.TransparentPen, 50, 30},
		{"zero width pen", paint.NewPen(paint.Black, 0), 50, 30},
		{"null pen", paint.Pen{}, 50, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDC(t)
			d.SetPen(tt.pen)
			d.SetBrush(paint.NewBrush(paint.Red))
			d.DrawRectangle(10, 10, 50, 30)

			c := lastOfType[recording.ShapeCommand](t, rec, recording.CmdDrawRectangle)
			if c.X != 10 || c.Y != 10 || c.W != tt.w || c.H != tt.h {
				t.Errorf("DrawRectangle(%v, %v, %v, %v), want (10, 10, %v, %v)", c.X, c.Y, c.W, c.H, tt.w, tt.h)
			}
			if r, ok := d.BoundingBox(); !ok || r != image.Rect(10, 10, 60, 40) {
				t.Errorf("BoundingBox() = %v, %v, want (10,10)-(60,40), true", r, ok)
			}
		})
	}
}

func TestDrawRectangleEmpty(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawRectangle(10, 10, 0, 30)
	d.DrawRectangle(10, 10, 50, 0)
	d.DrawRoundedRectangle(10, 10, 0, 0, 4)

	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands recorded for empty rectangles, want 0", n)
	}
	if _, ok := d.BoundingBox(); ok {
		t.Error("BoundingBox() ok = true after empty rectangles")
	}
}

func TestDrawRoundedRectangleRadius(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawRoundedRectangle(0, 0, 40, 20, -0.25)

	c := lastOfType[recording.ShapeCommand](t, rec, recording.CmdDrawRoundedRectangle)
	if c.Radius != 5 {
		t.Errorf("radius = %v, want 5 (a quarter of the smaller side)", c.Radius)
	}
	if c.W != 39 || c.H != 19 {
		t.Errorf("size = %v x %v, want 39 x 19", c.W, c.H)
	}

	d.DrawRoundedRectangle(0, 0, 40, 20, 3)
	c = lastOfType[recording.ShapeCommand](t, rec, recording.CmdDrawRoundedRectangle)
	if c.Radius != 3 {
		t.Errorf("radius = %v, want 3", c.Radius)
	}
}

func arcOf(t *testing.T, p *backend.Path) backend.ArcTo {
	t.Helper()
	for _, e := range p.Elements() {
		if a, ok := e.(backend.ArcTo); ok {
			return a
		}
	}
	t.Fatal("path has no arc")
	return backend.ArcTo{}
}

func TestDrawArcFullCircle(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawArc(10, 10, 10, 10, 0, 0)

	c := lastOfType[recording.PathCommand](t, rec, recording.CmdDrawPath)
	elems := c.Path.Elements()
	if len(elems) != 1 {
		t.Fatalf("full circle path has %d elements, want 1 (no pie)", len(elems))
	}
	a := arcOf(t, c.Path)
	if a.Radius != 14 {
		t.Errorf("radius = %v, want 14 (truncated)", a.Radius)
	}
	if a.Start != 0 || !near(a.End, 2*math.Pi) {
		t.Errorf("angles = %v, %v, want 0, 2pi", a.Start, a.End)
	}
	if !near(a.Sweep(), 2*math.Pi) {
		t.Errorf("Sweep() = %v, want 2pi", a.Sweep())
	}
	if r, ok := d.BoundingBox(); !ok || r != image.Rect(-14, -14, 14, 14) {
		t.Errorf("BoundingBox() = %v, %v, want (-14,-14)-(14,14)", r, ok)
	}
}

func TestDrawArcPie(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawArc(10, 0, 0, 10, 0, 0)

	c := lastOfType[recording.PathCommand](t, rec, recording.CmdDrawPath)
	elems := c.Path.Elements()
	if len(elems) != 3 {
		t.Fatalf("pie path has %d elements, want 3", len(elems))
	}
	if _, ok := elems[0].(backend.MoveTo); !ok {
		t.Errorf("element 0 = %T, want MoveTo to the centre", elems[0])
	}
	if _, ok := elems[2].(backend.LineTo); !ok {
		t.Errorf("element 2 = %T, want LineTo back to the centre", elems[2])
	}
	a := arcOf(t, c.Path)
	if a.Clockwise {
		t.Error("arc is clockwise, want counter-clockwise")
	}
	if !near(a.Start, 0) || !near(a.End, math.Pi/2) {
		t.Errorf("angles = %v, %v, want 0, pi/2", a.Start, a.End)
	}
	// Counter-clockwise on screen from +x to +y is three quarters of a turn.
	if !near(a.Sweep(), -3*math.Pi/2) {
		t.Errorf("Sweep() = %v, want -3pi/2", a.Sweep())
	}
}

func TestDrawArcTransparentBrush(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetBrush(paint.TransparentBrush)
	d.DrawArc(10, 0, 0, 10, 0, 0)

	c := lastOfType[recording.PathCommand](t, rec, recording.CmdDrawPath)
	if n := len(c.Path.Elements()); n != 1 {
		t.Errorf("open arc path has %d elements, want 1", n)
	}
}

func TestDrawArcZeroRadius(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawArc(5, 5, 6, 6, 5, 5)

	c := lastOfType[recording.PathCommand](t, rec, recording.CmdDrawPath)
	a := arcOf(t, c.Path)
	if a.Radius != 0 || a.Start != 0 || a.End != 0 {
		t.Errorf("arc = %+v, want radius 0 from 0 to 0", a)
	}
}

func TestDrawEllipticArc(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawEllipticArc(0, 0, 40, 20, 0, 90)

	want := []recording.CommandType{
		recording.CmdPushState,
		recording.CmdConcatTransform,
		recording.CmdConcatTransform,
		recording.CmdFillPath,
		recording.CmdStrokePath,
		recording.CmdPopState,
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

	fill := lastOfType[recording.PathCommand](t, rec, recording.CmdFillPath)
	if m := affine.New(2, 0, 0, 1, 20, 10); !fill.Transform.Equal(m) {
		t.Errorf("arc drawn under %v, want %v", fill.Transform, m)
	}
	a := arcOf(t, fill.Path)
	if a.Radius != 10 || a.Start != 0 || !near(a.End, -math.Pi/2) {
		t.Errorf("arc = %+v, want radius 10 from 0 to -pi/2", a)
	}
	if !rec.Transform().IsIdentity() {
		t.Errorf("transform after arc = %v, want identity", rec.Transform())
	}
}

func TestDrawEllipticArcWholeEllipse(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetBrush(paint.TransparentBrush)
	d.DrawEllipticArc(0, 0, 20, 20, 30, 30)

	c := lastOfType[recording.PathCommand](t, rec, recording.CmdDrawPath)
	a := arcOf(t, c.Path)
	if !near(a.End-a.Start, -2*math.Pi) {
		t.Errorf("arc spans %v, want a full turn", a.End-a.Start)
	}
}

func TestDrawPointIsOneDevicePixel(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetUserScale(2, 2)
	d.SetPen(paint.NewPen(paint.Blue, 3))
	rec.Reset()

	d.DrawPoint(5, 5)

	c := lastOfType[recording.ShapeCommand](t, rec, recording.CmdDrawRectangle)
	if c.X != 5 || c.Y != 5 || c.W != 0.5 || c.H != 0.5 {
		t.Errorf("DrawRectangle(%v, %v, %v, %v), want (5, 5, 0.5, 0.5)", c.X, c.Y, c.W, c.H)
	}
	brushes := rec.CommandsOfType(recording.CmdSetBrush)
	if b := brushes[0].(recording.SetBrushCommand).Brush; b.Color != paint.Blue {
		t.Errorf("point filled with %v, want the pen colour", b.Color)
	}
	if p := rec.Pen(); p.Width != 3 || p.Color != paint.Blue {
		t.Errorf("pen after DrawPoint = %+v, want restored", p)
	}
	if b := rec.Brush(); b.Color != paint.White {
		t.Errorf("brush after DrawPoint = %v, want restored", b.Color)
	}
}

func TestDrawLine(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawLine(1, 2, 30, 40)

	c := lastOfType[recording.StrokeLineCommand](t, rec, recording.CmdStrokeLine)
	if c.X1 != 1 || c.Y1 != 2 || c.X2 != 30 || c.Y2 != 40 {
		t.Errorf("StrokeLine(%v, %v, %v, %v), want (1, 2, 30, 40)", c.X1, c.Y1, c.X2, c.Y2)
	}
	if r, _ := d.BoundingBox(); r != image.Rect(1, 2, 30, 40) {
		t.Errorf("BoundingBox() = %v, want (1,2)-(30,40)", r)
	}
}

func TestCrossHair(t *testing.T) {
	d, rec := newTestDC(t)
	d.CrossHair(30, 40)

	lines := rec.CommandsOfType(recording.CmdStrokeLine)
	if len(lines) != 2 {
		t.Fatalf("%d lines, want 2", len(lines))
	}
	h := lines[0].(recording.StrokeLineCommand)
	v := lines[1].(recording.StrokeLineCommand)
	if h.X1 != 0 || h.Y1 != 40 || h.X2 != 100 || h.Y2 != 40 {
		t.Errorf("horizontal line = %+v, want (0,40)-(100,40)", h)
	}
	if v.X1 != 30 || v.Y1 != 0 || v.X2 != 30 || v.Y2 != 100 {
		t.Errorf("vertical line = %+v, want (30,0)-(30,100)", v)
	}
}

func TestDrawLinesOffset(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawLines([]image.Point{{0, 0}, {5, 5}}, 10, 20)

	c := lastOfType[recording.LinesCommand](t, rec, recording.CmdStrokeLines)
	want := []affine.Point2D{affine.Pt(10, 20), affine.Pt(15, 25)}
	if len(c.Points) != len(want) {
		t.Fatalf("points = %v, want %v", c.Points, want)
	}
	for i := range want {
		if c.Points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, c.Points[i], want[i])
		}
	}
	if r, _ := d.BoundingBox(); r != image.Rect(10, 20, 15, 25) {
		t.Errorf("BoundingBox() = %v, want (10,20)-(15,25)", r)
	}
}

func TestDrawPolygonCloses(t *testing.T) {
	tests := []struct {
		name   string
		points []image.Point
		want   int
	}{
		{"open", []image.Point{{0, 0}, {10, 0}, {10, 10}}, 4},
		{"closed", []image.Point{{0, 0}, {10, 0}, {0, 0}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDC(t)
			d.DrawPolygon(tt.points, 0, 0, backend.FillOddEven)

			c := lastOfType[recording.LinesCommand](t, rec, recording.CmdDrawLines)
			if len(c.Points) != tt.want {
				t.Fatalf("%d points, want %d", len(c.Points), tt.want)
			}
			if c.Points[len(c.Points)-1] != c.Points[0] {
				t.Errorf("last point %v, want %v", c.Points[len(c.Points)-1], c.Points[0])
			}
			if c.Rule != backend.FillOddEven {
				t.Errorf("rule = %v, want odd-even", c.Rule)
			}
		})
	}
}

func TestDrawPolygonInvisible(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetPen(paint.TransparentPen)
	d.SetBrush(paint.TransparentBrush)
	rec.Reset()

	d.DrawPolygon([]image.Point{{0, 0}, {10, 0}, {10, 10}}, 0, 0, backend.FillWinding)
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands for an invisible polygon, want 0", n)
	}
}

func TestDrawPolyPolygon(t *testing.T) {
	d, rec := newTestDC(t)
	outer := []image.Point{{0, 0}, {30, 0}, {30, 30}, {0, 30}}
	hole := []image.Point{{10, 10}, {20, 10}, {20, 20}, {10, 10}}
	d.DrawPolyPolygon([][]image.Point{outer, hole}, 5, 5, backend.FillOddEven)

	c := lastOfType[recording.PathCommand](t, rec, recording.CmdDrawPath)
	var moves int
	for _, e := range c.Path.Elements() {
		if _, ok := e.(backend.MoveTo); ok {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("%d subpaths, want 2", moves)
	}
	// Outer: move + 3 lines + closing line. Hole is already closed.
	if n := len(c.Path.Elements()); n != 9 {
		t.Errorf("%d elements, want 9", n)
	}
	if r, _ := d.BoundingBox(); r != image.Rect(5, 5, 35, 35) {
		t.Errorf("BoundingBox() = %v, want (5,5)-(35,35)", r)
	}
}

func TestDrawSpline(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawSpline([]image.Point{{0, 0}, {10, 0}, {20, 10}})

	c := lastOfType[recording.PathCommand](t, rec, recording.CmdStrokePath)
	elems := c.Path.Elements()
	if len(elems) != 4 {
		t.Fatalf("%d elements, want 4", len(elems))
	}
	if l, ok := elems[1].(backend.LineTo); !ok || l.Point != affine.Pt(5, 0) {
		t.Errorf("element 1 = %#v, want LineTo(5, 0)", elems[1])
	}
	q, ok := elems[2].(backend.QuadTo)
	if !ok || q.Control != affine.Pt(10, 0) || q.Point != affine.Pt(15, 5) {
		t.Errorf("element 2 = %#v, want QuadTo((10,0), (15,5))", elems[2])
	}
	if l, ok := elems[3].(backend.LineTo); !ok || l.Point != affine.Pt(20, 10) {
		t.Errorf("element 3 = %#v, want LineTo(20, 10)", elems[3])
	}

	rec.Reset()
	d.DrawSpline([]image.Point{{0, 0}})
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands for a one point spline, want 0", n)
	}
}

func TestDrawEllipseAndCircle(t *testing.T) {
	d, rec := newTestDC(t)
	d.DrawCircle(50, 50, 10)

	c := lastOfType[recording.ShapeCommand](t, rec, recording.CmdDrawEllipse)
	if c.X != 40 || c.Y != 40 || c.W != 20 || c.H != 20 {
		t.Errorf("DrawEllipse(%v, %v, %v, %v), want (40, 40, 20, 20)", c.X, c.Y, c.W, c.H)
	}
}

func TestClear(t *testing.T) {
	d, rec := newTestDC(t)
	d.SetBackground(paint.NewBrush(paint.Green))
	d.Clear()

	modes := rec.CommandsOfType(recording.CmdSetCompositionMode)
	if len(modes) != 2 {
		t.Fatalf("%d composition changes, want 2", len(modes))
	}
	if m := modes[0].(recording.SetCompositionModeCommand).Mode; m != backend.CompositionSource {
		t.Errorf("cleared with %v, want source", m)
	}
	if m := rec.CompositionMode(); m != backend.CompositionOver {
		t.Errorf("composition after Clear = %v, want over", m)
	}

	brushes := rec.CommandsOfType(recording.CmdSetBrush)
	if b := brushes[0].(recording.SetBrushCommand).Brush; b.Color != paint.Green {
		t.Errorf("cleared with %v, want green", b.Color)
	}
	c := lastOfType[recording.ShapeCommand](t, rec, recording.CmdDrawRectangle)
	if c.X > 0 || c.Y > 0 || c.X+c.W < 100 || c.Y+c.H < 100 {
		t.Errorf("clear rectangle %+v does not cover the surface", c)
	}
	if rec.Brush().Color != paint.White {
		t.Errorf("brush after Clear = %v, want white", rec.Brush().Color)
	}
	if _, ok := d.BoundingBox(); ok {
		t.Error("Clear touched the bounding box")
	}
}

func TestLogicalFunction(t *testing.T) {
	d, rec := newTestDC(t)

	d.SetLogicalFunction(RasterXor)
	if rec.CompositionMode() != backend.CompositionXor {
		t.Errorf("composition = %v, want xor", rec.CompositionMode())
	}
	if rec.AntialiasMode() != backend.AntialiasNone {
		t.Errorf("antialias = %v, want none under xor", rec.AntialiasMode())
	}
	d.DrawLine(0, 0, 1, 1)
	if n := len(rec.CommandsOfType(recording.CmdStrokeLine)); n != 1 {
		t.Errorf("%d lines drawn under xor, want 1", n)
	}

	d.SetLogicalFunction(RasterAnd)
	if d.LogicalFunction() != RasterAnd {
		t.Errorf("LogicalFunction() = %v, want and", d.LogicalFunction())
	}
	rec.Reset()
	d.DrawLine(0, 0, 1, 1)
	d.DrawRectangle(0, 0, 5, 5)
	d.DrawText("x", 0, 0)
	if n := len(rec.Commands()); n != 0 {
		t.Errorf("%d commands under an unsupported function, want 0", n)
	}

	d.SetLogicalFunction(RasterCopy)
	if rec.CompositionMode() != backend.CompositionOver {
		t.Errorf("composition = %v, want over", rec.CompositionMode())
	}
	if rec.AntialiasMode() != backend.AntialiasDefault {
		t.Errorf("antialias = %v, want default", rec.AntialiasMode())
	}
}

func TestRasterOpCompositionMode(t *testing.T) {
	tests := []struct {
		op   RasterOp
		want backend.CompositionMode
	}{
		{RasterCopy, backend.CompositionOver},
		{RasterOr, backend.CompositionAdd},
		{RasterNoOp, backend.CompositionDest},
		{RasterClear, backend.CompositionClear},
		{RasterXor, backend.CompositionXor},
		{RasterAnd, backend.CompositionInvalid},
		{RasterInvert, backend.CompositionInvalid},
		{RasterSet, backend.CompositionInvalid},
	}
	for _, tt := range tests {
		if got := tt.op.CompositionMode(); got != tt.want {
			t.Errorf("%v.CompositionMode() = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	d, _ := newTestDC(t)
	if _, ok := d.BoundingBox(); ok {
		t.Fatal("BoundingBox() ok = true before drawing")
	}
	d.CalcBoundingBox(5, 50)
	d.CalcBoundingBox(-3, 7)
	if d.MinX() != -3 || d.MinY() != 7 || d.MaxX() != 5 || d.MaxY() != 50 {
		t.Errorf("bounds = %d %d %d %d, want -3 7 5 50", d.MinX(), d.MinY(), d.MaxX(), d.MaxY())
	}
	d.ResetBoundingBox()
	if _, ok := d.BoundingBox(); ok {
		t.Error("BoundingBox() ok = true after reset")
	}
}
