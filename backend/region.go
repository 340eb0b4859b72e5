package backend

import "image"

// Region is a union of integer rectangles.
type Region struct {
	rects []image.Rectangle
}

// NewRegion returns a region covering the given rectangles. Empty
// rectangles are dropped.
func NewRegion(rects ...image.Rectangle) Region {
	var r Region
	for _, rc := range rects {
		r.Union(rc)
	}
	return r
}

// Union adds a rectangle to the region.
func (r *Region) Union(rc image.Rectangle) {
	rc = rc.Canon()
	if rc.Empty() {
		return
	}
	for _, existing := range r.rects {
		if rc.In(existing) {
			return
		}
	}
	r.rects = append(r.rects, rc)
}

// Rects returns the rectangles making up the region. They may overlap.
func (r Region) Rects() []image.Rectangle {
	return r.rects
}

// IsEmpty reports whether the region covers no pixels.
func (r Region) IsEmpty() bool {
	return len(r.rects) == 0
}

// Bounds returns the smallest rectangle containing the region.
func (r Region) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, rc := range r.rects {
		b = b.Union(rc)
	}
	return b
}

// Contains reports whether the pixel at p is inside the region.
func (r Region) Contains(p image.Point) bool {
	for _, rc := range r.rects {
		if p.In(rc) {
			return true
		}
	}
	return false
}

// Translate returns the region moved by d.
func (r Region) Translate(d image.Point) Region {
	out := Region{rects: make([]image.Rectangle, len(r.rects))}
	for i, rc := range r.rects {
		out.rects[i] = rc.Add(d)
	}
	return out
}
