package gcdc

import "image"

// bbox accumulates the logical extent of everything drawn.
type bbox struct {
	valid                  bool
	minX, minY, maxX, maxY int
}

func (b *bbox) add(x, y int) {
	if !b.valid {
		b.minX, b.minY, b.maxX, b.maxY = x, y, x, y
		b.valid = true
		return
	}
	b.minX = min(b.minX, x)
	b.minY = min(b.minY, y)
	b.maxX = max(b.maxX, x)
	b.maxY = max(b.maxY, y)
}

// CalcBoundingBox adds a logical point to the bounding box.
func (d *GCDC) CalcBoundingBox(x, y int) {
	d.bbox.add(x, y)
}

// ResetBoundingBox empties the bounding box.
func (d *GCDC) ResetBoundingBox() {
	d.bbox = bbox{}
}

// BoundingBox returns the logical extent of everything drawn since the
// last reset, and false if nothing was drawn.
func (d *GCDC) BoundingBox() (image.Rectangle, bool) {
	if !d.bbox.valid {
		return image.Rectangle{}, false
	}
	return image.Rect(d.bbox.minX, d.bbox.minY, d.bbox.maxX, d.bbox.maxY), true
}

// MinX returns the smallest x drawn, or 0 before anything was drawn.
func (d *GCDC) MinX() int { return d.bbox.minX }

// MinY returns the smallest y drawn.
func (d *GCDC) MinY() int { return d.bbox.minY }

// MaxX returns the largest x drawn.
func (d *GCDC) MaxX() int { return d.bbox.maxX }

// MaxY returns the largest y drawn.
func (d *GCDC) MaxY() int { return d.bbox.maxY }
