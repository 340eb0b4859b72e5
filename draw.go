package gcdc

import (
	"image"
	"math"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// Clear fills the whole surface with the background brush, replacing
// what is there.
func (d *GCDC) Clear() {
	if !d.ready() {
		return
	}
	prev := d.ctx.CompositionMode()
	d.ctx.SetCompositionMode(backend.CompositionSource)
	d.ctx.SetBrush(d.background)
	d.ctx.SetPen(paint.TransparentPen)

	// Large enough to cover any surface, small enough for float32
	// rasterizers.
	const maxCoord = 1<<23 - 64
	d.ctx.DrawRectangle(-maxCoord/2, -maxCoord/2, maxCoord, maxCoord)

	d.ctx.SetPen(d.pen)
	d.ctx.SetBrush(d.brush)
	d.ctx.SetCompositionMode(prev)
}

// DrawLine draws a line from (x1, y1) to (x2, y2).
func (d *GCDC) DrawLine(x1, y1, x2, y2 int) {
	if !d.drawable() {
		return
	}
	d.ctx.StrokeLine(float64(x1), float64(y1), float64(x2), float64(y2))
	d.CalcBoundingBox(x1, y1)
	d.CalcBoundingBox(x2, y2)
}

// CrossHair draws a horizontal and a vertical line through (x, y)
// across the whole surface.
func (d *GCDC) CrossHair(x, y int) {
	if !d.drawable() {
		return
	}
	w, h := d.deviceSize()
	x0, y0 := d.DeviceToLogical(0, 0)
	x1, y1 := d.DeviceToLogical(w, h)
	d.ctx.StrokeLine(float64(x0), float64(y), float64(x1), float64(y))
	d.ctx.StrokeLine(float64(x), float64(y0), float64(x), float64(y1))
	d.CalcBoundingBox(x0, y0)
	d.CalcBoundingBox(x1, y1)
}

// DrawArc draws a circular arc counter-clockwise from (x1, y1) to
// (x2, y2) around (xc, yc). Equal end points draw a full circle. With a
// visible brush the arc is filled as a pie slice.
func (d *GCDC) DrawArc(x1, y1, x2, y2, xc, yc int) {
	if !d.drawable() {
		return
	}
	dx, dy := float64(x1-xc), float64(y1-yc)
	radius := math.Sqrt(dx*dx + dy*dy)
	rad := float64(int(radius))

	full := x1 == x2 && y1 == y2
	var start, end float64
	switch {
	case full:
		start, end = 0, 2*math.Pi
	case radius == 0:
		start, end = 0, 0
	default:
		start = math.Atan2(float64(y1-yc), float64(x1-xc))
		end = math.Atan2(float64(y2-yc), float64(x2-xc))
	}

	fill := !d.brush.IsTransparent() && !full
	p := backend.NewPath()
	if fill {
		p.MoveTo(float64(xc), float64(yc))
	}
	// Screen angles grow clockwise, so a counter-clockwise arc goes
	// against them. The full circle is the one case that sweeps forward.
	p.AddArc(float64(xc), float64(yc), rad, start, end, full)
	if fill {
		p.LineTo(float64(xc), float64(yc))
	}
	d.ctx.DrawPath(p, backend.FillWinding)

	r := int(rad)
	d.CalcBoundingBox(xc-r, yc-r)
	d.CalcBoundingBox(xc+r, yc+r)
}

// DrawEllipticArc draws the part of the ellipse inscribed in (x, y, w, h)
// from sa to ea degrees, counter-clockwise. Equal angles draw the whole
// ellipse.
func (d *GCDC) DrawEllipticArc(x, y, w, h int, sa, ea float64) {
	if !d.drawable() || w == 0 || h == 0 {
		return
	}
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	factor := float64(w) / float64(h)

	d.ctx.PushState()
	d.ctx.ConcatTransform(affine.NewTranslation(cx, cy))
	d.ctx.ConcatTransform(affine.NewScale(factor, 1))

	if ea == sa {
		ea += 360
	}
	r := float64(h) / 2
	start, end := degToRad(-sa), degToRad(-ea)
	if !d.brush.IsTransparent() {
		p := backend.NewPath()
		p.MoveTo(0, 0)
		p.AddArc(0, 0, r, start, end, false)
		p.LineTo(0, 0)
		d.ctx.FillPath(p, backend.FillWinding)

		p = backend.NewPath()
		p.AddArc(0, 0, r, start, end, false)
		d.ctx.StrokePath(p)
	} else {
		p := backend.NewPath()
		p.AddArc(0, 0, r, start, end, false)
		d.ctx.DrawPath(p, backend.FillWinding)
	}
	d.ctx.PopState()

	d.CalcBoundingBox(x, y)
	d.CalcBoundingBox(x+w, y+h)
}

// DrawPoint draws a single device pixel at (x, y) in the pen colour,
// whatever the scale.
func (d *GCDC) DrawPoint(x, y int) {
	if !d.drawable() {
		return
	}
	d.ctx.SetBrush(paint.NewBrush(d.pen.Color))
	d.ctx.SetPen(paint.TransparentPen)
	d.ctx.DrawRectangle(float64(x), float64(y), 1/d.scaleX, 1/d.scaleY)
	d.ctx.SetPen(d.pen)
	d.ctx.SetBrush(d.brush)
	d.CalcBoundingBox(x, y)
}

// DrawLines draws a polyline through points offset by (xoff, yoff).
func (d *GCDC) DrawLines(points []image.Point, xoff, yoff int) {
	if !d.drawable() || len(points) == 0 {
		return
	}
	pts := make([]affine.Point2D, len(points))
	for i, p := range points {
		x, y := p.X+xoff, p.Y+yoff
		pts[i] = affine.Pt(float64(x), float64(y))
		d.CalcBoundingBox(x, y)
	}
	d.ctx.StrokeLines(pts)
}

// DrawSpline draws a quadratic B-spline through the midpoints of
// successive control points, starting and ending at the first and last
// point.
func (d *GCDC) DrawSpline(points []image.Point) {
	if !d.drawable() || len(points) < 2 {
		return
	}
	x1, y1 := points[0].X, points[0].Y
	x2, y2 := points[1].X, points[1].Y
	p := backend.NewPath()
	p.MoveTo(float64(x1), float64(y1))
	p.LineTo(float64((x1+x2)/2), float64((y1+y2)/2))
	d.CalcBoundingBox(x1, y1)
	d.CalcBoundingBox(x2, y2)

	for _, pt := range points[2:] {
		x1, y1 = x2, y2
		x2, y2 = pt.X, pt.Y
		p.QuadTo(float64(x1), float64(y1), float64((x1+x2)/2), float64((y1+y2)/2))
		d.CalcBoundingBox(x2, y2)
	}
	p.LineTo(float64(x2), float64(y2))
	d.ctx.StrokePath(p)
}

// DrawPolygon draws a closed polygon through points offset by
// (xoff, yoff), filled with the brush according to rule.
func (d *GCDC) DrawPolygon(points []image.Point, xoff, yoff int, rule backend.FillRule) {
	if len(points) == 0 || (d.brush.IsTransparent() && d.pen.IsTransparent()) {
		return
	}
	if !d.drawable() {
		return
	}
	n := len(points)
	closeIt := points[n-1] != points[0]
	pts := make([]affine.Point2D, 0, n+1)
	for _, p := range points {
		x, y := p.X+xoff, p.Y+yoff
		pts = append(pts, affine.Pt(float64(x), float64(y)))
		d.CalcBoundingBox(x, y)
	}
	if closeIt {
		pts = append(pts, pts[0])
	}
	d.ctx.DrawLines(pts, rule)
}

// DrawPolyPolygon draws several closed polygons as one shape, so holes
// follow the fill rule.
func (d *GCDC) DrawPolyPolygon(polygons [][]image.Point, xoff, yoff int, rule backend.FillRule) {
	if len(polygons) == 0 || !d.drawable() {
		return
	}
	p := backend.NewPath()
	for _, poly := range polygons {
		if len(poly) == 0 {
			continue
		}
		start := poly[0]
		p.MoveTo(float64(start.X+xoff), float64(start.Y+yoff))
		d.CalcBoundingBox(start.X+xoff, start.Y+yoff)
		for _, pt := range poly[1:] {
			p.LineTo(float64(pt.X+xoff), float64(pt.Y+yoff))
			d.CalcBoundingBox(pt.X+xoff, pt.Y+yoff)
		}
		if start != poly[len(poly)-1] {
			p.LineTo(float64(start.X+xoff), float64(start.Y+yoff))
		}
	}
	d.ctx.DrawPath(p, rule)
}

// DrawRectangle draws a rectangle with the pen and fills it with the
// brush. Empty rectangles draw nothing. With a visible pen the rectangle
// passed to the backend is one unit narrower and shorter, so the outline
// covers the same pixels as on a raster device context.
func (d *GCDC) DrawRectangle(x, y, w, h int) {
	if !d.drawable() || w == 0 || h == 0 {
		return
	}
	d.CalcBoundingBox(x, y)
	d.CalcBoundingBox(x+w, y+h)
	fw, fh := d.outlineShrink(w, h)
	d.ctx.DrawRectangle(float64(x), float64(y), fw, fh)
}

// DrawRoundedRectangle draws a rectangle with rounded corners. A
// negative radius is a fraction of the smaller side.
func (d *GCDC) DrawRoundedRectangle(x, y, w, h int, radius float64) {
	if !d.drawable() {
		return
	}
	if radius < 0 {
		radius = -radius * float64(min(w, h))
	}
	if w == 0 || h == 0 {
		return
	}
	d.CalcBoundingBox(x, y)
	d.CalcBoundingBox(x+w, y+h)
	fw, fh := d.outlineShrink(w, h)
	d.ctx.DrawRoundedRectangle(float64(x), float64(y), fw, fh, radius)
}

func (d *GCDC) outlineShrink(w, h int) (float64, float64) {
	if d.pen.IsOk() && !d.pen.IsTransparent() && d.pen.Width > 0 {
		w--
		h--
	}
	return float64(w), float64(h)
}

// DrawEllipse draws the ellipse inscribed in (x, y, w, h).
func (d *GCDC) DrawEllipse(x, y, w, h int) {
	if !d.drawable() {
		return
	}
	d.ctx.DrawEllipse(float64(x), float64(y), float64(w), float64(h))
	d.CalcBoundingBox(x, y)
	d.CalcBoundingBox(x+w, y+h)
}

// DrawCircle draws a circle of radius r around (x, y).
func (d *GCDC) DrawCircle(x, y, r int) {
	d.DrawEllipse(x-r, y-r, 2*r, 2*r)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
