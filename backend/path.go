package backend

import (
	"math"

	"github.com/gogpu/gcdc/affine"
)

// PathElement is a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point affine.Point2D
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment.
type LineTo struct {
	Point affine.Point2D
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control affine.Point2D
	Point   affine.Point2D
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 affine.Point2D
	Control2 affine.Point2D
	Point    affine.Point2D
}

func (CubicTo) isPathElement() {}

// ArcTo draws a circular arc. If the path has a current point, a
// straight segment joins it to the arc start. Angles are in radians,
// measured clockwise from the positive x axis (y axis pointing down).
// Clockwise arcs sweep with increasing angle.
type ArcTo struct {
	Center     affine.Point2D
	Radius     float64
	Start, End float64
	Clockwise  bool
}

func (ArcTo) isPathElement() {}

// StartPoint returns the point at the start angle.
func (a ArcTo) StartPoint() affine.Point2D {
	return affine.Pt(a.Center.X+a.Radius*math.Cos(a.Start), a.Center.Y+a.Radius*math.Sin(a.Start))
}

// EndPoint returns the point at the end angle.
func (a ArcTo) EndPoint() affine.Point2D {
	return affine.Pt(a.Center.X+a.Radius*math.Cos(a.End), a.Center.Y+a.Radius*math.Sin(a.End))
}

// Sweep returns the signed swept angle: positive for clockwise arcs.
// A clockwise arc whose end is at least a full turn past its start
// sweeps exactly one turn.
func (a ArcTo) Sweep() float64 {
	const twoPi = 2 * math.Pi
	d := a.End - a.Start
	if a.Clockwise {
		if d >= twoPi {
			return twoPi
		}
		for d < 0 {
			d += twoPi
		}
		return d
	}
	if d <= -twoPi {
		return -twoPi
	}
	for d > 0 {
		d -= twoPi
	}
	return d
}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a vector path in user space.
type Path struct {
	elements []PathElement
	start    affine.Point2D
	current  affine.Point2D
	hasCur   bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 8)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := affine.Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start, p.current, p.hasCur = pt, pt, true
}

// LineTo draws a line to (x, y). Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasCur {
		p.MoveTo(x, y)
		return
	}
	pt := affine.Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo draws a quadratic curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.hasCur {
		p.MoveTo(cx, cy)
	}
	pt := affine.Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: affine.Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasCur {
		p.MoveTo(c1x, c1y)
	}
	pt := affine.Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: affine.Pt(c1x, c1y),
		Control2: affine.Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// AddArc adds a circular arc around (xc, yc).
func (p *Path) AddArc(xc, yc, r, startAngle, endAngle float64, clockwise bool) {
	a := ArcTo{Center: affine.Pt(xc, yc), Radius: r, Start: startAngle, End: endAngle, Clockwise: clockwise}
	if !p.hasCur {
		p.start = a.StartPoint()
		p.hasCur = true
	}
	p.elements = append(p.elements, a)
	p.current = a.EndPoint()
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.hasCur {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// AddRectangle adds a closed rectangle.
func (p *Path) AddRectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddRoundedRectangle adds a rectangle with circular corners. The radius
// is clamped to half the smaller side.
func (p *Path) AddRoundedRectangle(x, y, w, h, r float64) {
	if r <= 0 {
		p.AddRectangle(x, y, w, h)
		return
	}
	if maxR := math.Min(math.Abs(w), math.Abs(h)) / 2; r > maxR {
		r = maxR
	}
	p.MoveTo(x+r, y)
	p.AddArc(x+w-r, y+r, r, -math.Pi/2, 0, true)
	p.AddArc(x+w-r, y+h-r, r, 0, math.Pi/2, true)
	p.AddArc(x+r, y+h-r, r, math.Pi/2, math.Pi, true)
	p.AddArc(x+r, y+r, r, math.Pi, 3*math.Pi/2, true)
	p.Close()
}

// AddEllipse adds an ellipse inscribed in the given rectangle.
func (p *Path) AddEllipse(x, y, w, h float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	ox, oy := rx*k, ry*k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// AddCircle adds a full circle.
func (p *Path) AddCircle(xc, yc, r float64) {
	p.AddEllipse(xc-r, yc-r, 2*r, 2*r)
}

// AddLines adds an open polyline.
func (p *Path) AddLines(points []affine.Point2D) {
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.elements = append([]PathElement(nil), p.elements...)
	return &c
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point and whether one exists.
func (p *Path) CurrentPoint() (affine.Point2D, bool) {
	return p.current, p.hasCur
}

// Transform returns a copy of the path with all curves flattened to
// cubic segments and mapped through m.
func (p *Path) Transform(m affine.Matrix) *Path {
	out := NewPath()
	p.walk(func(e PathElement) {
		switch e := e.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			out.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			out.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			out.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			out.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			out.Close()
		}
	})
	return out
}

// Bounds returns the bounding box of the control polygon.
func (p *Path) Bounds() (x, y, w, h float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt affine.Point2D) {
		minX, minY = math.Min(minX, pt.X), math.Min(minY, pt.Y)
		maxX, maxY = math.Max(maxX, pt.X), math.Max(maxY, pt.Y)
	}
	p.walk(func(e PathElement) {
		switch e := e.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	})
	if minX > maxX {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX - minX, maxY - minY
}

// Flatten converts the path into polylines in the space given by m.
// Each returned polyline is one subpath; closed subpaths repeat their
// first point at the end. tolerance is the maximum deviation in the
// output space.
func (p *Path) Flatten(m affine.Matrix, tolerance float64) [][]affine.Point2D {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out  [][]affine.Point2D
		cur  []affine.Point2D
		last affine.Point2D
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	p.walk(func(e PathElement) {
		switch e := e.(type) {
		case MoveTo:
			flush()
			last = m.TransformPoint(e.Point)
			cur = []affine.Point2D{last}
		case LineTo:
			last = m.TransformPoint(e.Point)
			cur = append(cur, last)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			end := m.TransformPoint(e.Point)
			cur = flattenQuad(cur, last, c, end, tolerance)
			last = end
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			end := m.TransformPoint(e.Point)
			cur = flattenCubic(cur, last, c1, c2, end, tolerance)
			last = end
		case Close:
			if len(cur) > 0 {
				first := cur[0]
				if cur[len(cur)-1] != first {
					cur = append(cur, first)
				}
				last = first
				flush()
				cur = []affine.Point2D{last}
			}
		}
	})
	flush()
	return out
}

// walk visits the elements with arcs expanded into LineTo/CubicTo.
func (p *Path) walk(fn func(PathElement)) {
	hasCur := false
	for _, e := range p.elements {
		switch e := e.(type) {
		case ArcTo:
			start := e.StartPoint()
			if hasCur {
				fn(LineTo{Point: start})
			} else {
				fn(MoveTo{Point: start})
				hasCur = true
			}
			arcToCubics(e, fn)
		case Close:
			fn(e)
		default:
			hasCur = true
			fn(e)
		}
	}
}

// arcToCubics emits cubic segments of at most 90 degrees each.
func arcToCubics(a ArcTo, fn func(PathElement)) {
	sweep := a.Sweep()
	if sweep == 0 || a.Radius == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	r := a.Radius
	cx, cy := a.Center.X, a.Center.Y

	for i := 0; i < n; i++ {
		a1 := a.Start + float64(i)*step
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)
		fn(CubicTo{
			Control1: affine.Pt(cx+r*(cos1-k*sin1), cy+r*(sin1+k*cos1)),
			Control2: affine.Pt(cx+r*(cos2+k*sin2), cy+r*(sin2-k*cos2)),
			Point:    affine.Pt(cx+r*cos2, cy+r*sin2),
		})
	}
}

func flattenQuad(dst []affine.Point2D, p0, p1, p2 affine.Point2D, tol float64) []affine.Point2D {
	dd := math.Hypot(p0.X-2*p1.X+p2.X, p0.Y-2*p1.Y+p2.Y)
	n := segmentCount(dd, tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		dst = append(dst, affine.Pt(
			mt*mt*p0.X+2*mt*t*p1.X+t*t*p2.X,
			mt*mt*p0.Y+2*mt*t*p1.Y+t*t*p2.Y,
		))
	}
	return dst
}

func flattenCubic(dst []affine.Point2D, p0, p1, p2, p3 affine.Point2D, tol float64) []affine.Point2D {
	d1 := math.Hypot(p0.X-2*p1.X+p2.X, p0.Y-2*p1.Y+p2.Y)
	d2 := math.Hypot(p1.X-2*p2.X+p3.X, p1.Y-2*p2.Y+p3.Y)
	n := segmentCount(1.5*math.Max(d1, d2), tol)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		dst = append(dst, affine.Pt(
			a*p0.X+b*p1.X+c*p2.X+d*p3.X,
			a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
		))
	}
	return dst
}

func segmentCount(curvature, tol float64) int {
	n := int(math.Ceil(math.Sqrt(curvature / (4 * tol))))
	if n < 1 {
		return 1
	}
	if n > 256 {
		return 256
	}
	return n
}
