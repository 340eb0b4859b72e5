package gcdc

import (
	"image"

	"github.com/gogpu/gcdc/paint"
)

// Direction is the direction a linear gradient runs towards.
type Direction uint8

const (
	East Direction = iota
	West
	North
	South
)

// GradientFillLinear fills r with a linear gradient from initial to dest
// running in direction dir. The gradient ends one unit past the trailing
// edge so the last row or column gets the full dest colour.
func (d *GCDC) GradientFillLinear(r image.Rectangle, initial, dest paint.Color, dir Direction) {
	if !d.ready() {
		return
	}
	left, top := r.Min.X, r.Min.Y
	right, bottom := r.Max.X-1, r.Max.Y-1

	var start, end image.Point
	switch dir {
	case West:
		start, end = image.Pt(right+1, bottom), image.Pt(left, bottom)
	case East:
		start, end = image.Pt(left, bottom), image.Pt(right+1, bottom)
	case North:
		start, end = image.Pt(left, bottom+1), image.Pt(left, top)
	case South:
		start, end = image.Pt(left, top), image.Pt(left, bottom+1)
	}
	if r.Dx() == 0 || r.Dy() == 0 {
		return
	}

	g := paint.NewLinearGradient(float64(start.X), float64(start.Y), float64(end.X), float64(end.Y), initial, dest)
	d.ctx.SetBrush(paint.NewGradientBrush(g))
	d.ctx.SetPen(paint.TransparentPen)
	d.ctx.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	d.ctx.SetPen(d.pen)
	d.ctx.SetBrush(d.brush)

	d.CalcBoundingBox(r.Min.X, r.Min.Y)
	d.CalcBoundingBox(r.Max.X, r.Max.Y)
}

// GradientFillConcentric fills r with a radial gradient from initial at
// center, relative to the top-left corner of r, to dest at a radius of
// half the smaller side. The rest of r is filled with dest.
func (d *GCDC) GradientFillConcentric(r image.Rectangle, initial, dest paint.Color, center image.Point) {
	if !d.ready() {
		return
	}
	radius := min(r.Dx()/2, r.Dy()/2)
	x, y, w, h := float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy())

	d.ctx.SetPen(paint.TransparentPen)
	d.ctx.SetBrush(paint.NewBrush(dest))
	d.ctx.DrawRectangle(x, y, w, h)

	cx, cy := float64(r.Min.X+center.X), float64(r.Min.Y+center.Y)
	g := paint.NewRadialGradient(cx, cy, cx, cy, float64(radius), initial, dest)
	d.ctx.SetBrush(paint.NewGradientBrush(g))
	d.ctx.DrawRectangle(x, y, w, h)

	d.ctx.SetPen(d.pen)
	d.ctx.SetBrush(d.brush)

	d.CalcBoundingBox(r.Min.X, r.Min.Y)
	d.CalcBoundingBox(r.Max.X, r.Max.Y)
}
