package raster

import (
	"math"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/paint"
)

const miterLimit = 10

// stroker turns polylines into outline polygons. Every emitted polygon
// has positive orientation, so overlapping pieces add up under the
// rasterizer's accumulation instead of cancelling.
type stroker struct {
	hw   float64
	cap  paint.LineCap
	join paint.LineJoin
	tol  float64
	out  [][]affine.Point2D
}

// strokePolylines expands polylines into polygons covering a stroke of
// the given width.
func strokePolylines(polys [][]affine.Point2D, pen paint.Pen, width, tol float64) [][]affine.Point2D {
	s := &stroker{hw: width / 2, cap: pen.Cap, join: pen.Join, tol: tol}

	var pattern []float64
	if d := pen.DashPattern(); len(d) > 0 {
		k := width / pen.StrokeWidth()
		total := 0.0
		for _, v := range d {
			pattern = append(pattern, v*k)
			total += v * k
		}
		if total <= 0 {
			pattern = nil
		}
	}

	for _, poly := range polys {
		poly = dedupe(poly)
		if len(pattern) > 0 {
			for _, piece := range dash(poly, pattern) {
				s.polyline(piece, false)
			}
			continue
		}
		closed := len(poly) > 3 && poly[0] == poly[len(poly)-1]
		s.polyline(poly, closed)
	}
	return s.out
}

func (s *stroker) polyline(pts []affine.Point2D, closed bool) {
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		s.dot(pts[0])
		return
	}

	if closed {
		pts = pts[:len(pts)-1]
		n := len(pts)
		for i := 0; i < n; i++ {
			s.segment(pts[i], pts[(i+1)%n])
			s.joinAt(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
		return
	}

	if s.cap == paint.CapProjecting {
		pts = append([]affine.Point2D(nil), pts...)
		pts[0] = extend(pts[1], pts[0], s.hw)
		last := len(pts) - 1
		pts[last] = extend(pts[last-1], pts[last], s.hw)
	}
	for i := 1; i < len(pts); i++ {
		s.segment(pts[i-1], pts[i])
		if i < len(pts)-1 {
			s.joinAt(pts[i-1], pts[i], pts[i+1])
		}
	}
	if s.cap == paint.CapRound {
		s.circle(pts[0])
		s.circle(pts[len(pts)-1])
	}
}

// dot draws a zero-length stroke.
func (s *stroker) dot(p affine.Point2D) {
	switch s.cap {
	case paint.CapRound:
		s.circle(p)
	case paint.CapProjecting:
		h := s.hw
		s.add([]affine.Point2D{
			affine.Pt(p.X-h, p.Y-h), affine.Pt(p.X+h, p.Y-h),
			affine.Pt(p.X+h, p.Y+h), affine.Pt(p.X-h, p.Y+h),
		})
	}
}

func (s *stroker) segment(a, b affine.Point2D) {
	n, ok := normal(a, b)
	if !ok {
		return
	}
	n = scale(n, s.hw)
	s.add([]affine.Point2D{add(a, n), add(b, n), sub(b, n), sub(a, n)})
}

func (s *stroker) joinAt(prev, v, next affine.Point2D) {
	n1, ok1 := normal(prev, v)
	n2, ok2 := normal(v, next)
	if !ok1 || !ok2 {
		return
	}
	cross := n1.X*n2.Y - n1.Y*n2.X
	dot := n1.X*n2.X + n1.Y*n2.Y
	if math.Abs(cross) < 1e-12 && dot > 0 {
		return
	}
	if s.join == paint.JoinRound {
		s.circle(v)
		return
	}

	o := 1.0
	if cross > 0 {
		o = -1
	}
	p1 := add(v, scale(n1, o*s.hw))
	p2 := add(v, scale(n2, o*s.hw))

	if s.join == paint.JoinMiter {
		cosHalf := math.Sqrt((1 + dot) / 2)
		if cosHalf > 1/miterLimit {
			bis, ok := unit(add(n1, n2))
			if ok {
				tip := add(v, scale(bis, o*s.hw/cosHalf))
				s.add([]affine.Point2D{v, p1, tip, p2})
				return
			}
		}
	}
	s.add([]affine.Point2D{v, p1, p2})
}

func (s *stroker) circle(c affine.Point2D) {
	r := s.hw
	if r <= 0 {
		return
	}
	n := 8
	if s.tol < r {
		n = int(math.Ceil(2 * math.Pi / math.Acos(1-s.tol/r)))
	}
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	poly := make([]affine.Point2D, n)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = affine.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	s.add(poly)
}

func (s *stroker) add(poly []affine.Point2D) {
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	s.out = append(s.out, poly)
}

// dash splits a polyline into the "on" pieces of pattern.
func dash(pts []affine.Point2D, pattern []float64) [][]affine.Point2D {
	if len(pts) < 2 {
		return nil
	}
	var (
		out       [][]affine.Point2D
		idx       int
		remaining = pattern[0]
		on        = true
		cur       = []affine.Point2D{pts[0]}
	)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			t := pos / segLen
			p := affine.Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
			if on {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []affine.Point2D{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

func dedupe(pts []affine.Point2D) []affine.Point2D {
	if len(pts) < 2 {
		return pts
	}
	out := make([]affine.Point2D, 1, len(pts))
	out[0] = pts[0]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func signedArea(poly []affine.Point2D) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// extend moves end away from from by d along their direction.
func extend(from, end affine.Point2D, d float64) affine.Point2D {
	u, ok := unit(sub(end, from))
	if !ok {
		return end
	}
	return add(end, scale(u, d))
}

// normal returns the unit left normal of the segment a-b.
func normal(a, b affine.Point2D) (affine.Point2D, bool) {
	u, ok := unit(sub(b, a))
	if !ok {
		return affine.Point2D{}, false
	}
	return affine.Pt(-u.Y, u.X), true
}

func unit(v affine.Point2D) (affine.Point2D, bool) {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return affine.Point2D{}, false
	}
	return affine.Pt(v.X/l, v.Y/l), true
}

func add(a, b affine.Point2D) affine.Point2D { return affine.Pt(a.X+b.X, a.Y+b.Y) }
func sub(a, b affine.Point2D) affine.Point2D { return affine.Pt(a.X-b.X, a.Y-b.Y) }
func scale(v affine.Point2D, k float64) affine.Point2D { return affine.Pt(v.X*k, v.Y*k) }
