package gcdc

import (
	"image"
	"math"

	"github.com/gogpu/gcdc/backend"
)

// SetClippingRegion intersects the clip with a logical rectangle.
// Negative extents are normalized first, so (50, 50, -20, -10) clips
// like (31, 41, 20, 10).
func (d *GCDC) SetClippingRegion(x, y, w, h int) {
	if !d.ready() {
		return
	}
	if w < 0 {
		w = -w
		x -= w - 1
	}
	if h < 0 {
		h = -h
		y -= h - 1
	}
	d.ctx.Clip(float64(x), float64(y), float64(w), float64(h))
	d.clipping = true
	d.updateClipBox()
}

// SetClippingRect is SetClippingRegion for an image.Rectangle in logical
// coordinates.
func (d *GCDC) SetClippingRect(r image.Rectangle) {
	d.SetClippingRegion(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// SetDeviceClippingRegion intersects the clip with a region given in
// device coordinates.
func (d *GCDC) SetDeviceClippingRegion(rgn backend.Region) {
	if !d.ready() {
		return
	}
	saved := d.ctx.Transform()
	d.ctx.SetTransform(d.original)
	d.ctx.ClipRegion(rgn)
	d.ctx.SetTransform(saved)
	d.clipping = true
	d.updateClipBox()
}

// DestroyClippingRegion removes the clip. The backend is then clipped to
// the surface, which is not the same as unclipped for backends drawing
// on a larger native surface.
func (d *GCDC) DestroyClippingRegion() {
	if !d.ready() {
		return
	}
	d.ctx.ResetClip()

	w, h := d.deviceSize()
	o := d.surfaceOrigin()
	x, y := d.DeviceToLogical(o.X, o.Y)
	lw, lh := d.DeviceToLogicalRel(w, h)
	d.ctx.Clip(float64(x), float64(y), float64(lw), float64(lh))

	d.ctx.SetPen(d.pen)
	d.ctx.SetBrush(d.brush)
	d.clipping = false
	d.clipValid = false
}

// ClippingBox returns the logical bounding box of the clip and whether a
// clip is set. Without a clip the box covers the whole surface.
func (d *GCDC) ClippingBox() (image.Rectangle, bool) {
	if !d.ready() {
		return image.Rectangle{}, false
	}
	if !d.clipping {
		w, h := d.deviceSize()
		x0, y0 := d.DeviceToLogical(0, 0)
		x1, y1 := d.DeviceToLogical(w, h)
		return image.Rect(x0, y0, x1, y1), false
	}
	if !d.clipValid {
		d.updateClipBox()
	}
	return image.Rect(d.clipX1, d.clipY1, d.clipX2, d.clipY2), true
}

// updateClipBox reads the clip box back from the backend. An empty box
// keeps the clipping flag as it is: an empty clip is still a clip.
func (d *GCDC) updateClipBox() {
	x, y, w, h := d.ctx.ClipBox()
	if w != 0 && h != 0 {
		d.clipping = true
	}
	d.clipX1 = int(math.Round(x))
	d.clipY1 = int(math.Round(y))
	d.clipX2 = int(math.Round(x + w))
	d.clipY2 = int(math.Round(y + h))
	d.clipValid = true
}

// surfaceOrigin returns the device position of the drawable area, taken
// from the target or the backend context when either is an Originer.
func (d *GCDC) surfaceOrigin() image.Point {
	if o, ok := d.target.(backend.Originer); ok {
		return o.Origin()
	}
	if o, ok := d.ctx.(backend.Originer); ok {
		return o.Origin()
	}
	return image.Point{}
}

// deviceSize returns the surface size in device pixels.
func (d *GCDC) deviceSize() (int, int) {
	w, h := d.ctx.Size()
	return int(w + 0.5), int(h + 0.5)
}
