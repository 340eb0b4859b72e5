package paint

import (
	"image"
	"image/draw"
)

// Bitmap is an image with an optional transparency mask and a colour
// depth. Depth 1 bitmaps are stencils: set pixels are drawn in the text
// foreground colour and clear pixels in the text background colour.
type Bitmap struct {
	Image image.Image
	Mask  *image.Alpha
	Depth int
}

// NewBitmap wraps a full-colour image.
func NewBitmap(img image.Image) *Bitmap {
	return &Bitmap{Image: img, Depth: 32}
}

// NewMonoBitmap wraps a stencil. Pixels with alpha above half are set.
func NewMonoBitmap(stencil *image.Alpha) *Bitmap {
	return &Bitmap{Image: stencil, Depth: 1}
}

// IsOk reports whether the bitmap has pixels.
func (b *Bitmap) IsOk() bool {
	return b != nil && b.Image != nil && !b.Image.Bounds().Empty()
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int {
	if b == nil || b.Image == nil {
		return 0
	}
	return b.Image.Bounds().Dx()
}

// Height returns the height in pixels.
func (b *Bitmap) Height() int {
	if b == nil || b.Image == nil {
		return 0
	}
	return b.Image.Bounds().Dy()
}

// HasMask reports whether a transparency mask is attached.
func (b *Bitmap) HasMask() bool {
	return b != nil && b.Mask != nil
}

// WithoutMask returns a shallow copy with the mask removed. The pixel
// data is shared.
func (b *Bitmap) WithoutMask() *Bitmap {
	if b == nil {
		return nil
	}
	c := *b
	c.Mask = nil
	return &c
}

// SubBitmap returns a copy of the pixels in r (in image coordinates),
// with the result's bounds starting at the origin.
func (b *Bitmap) SubBitmap(r image.Rectangle) *Bitmap {
	if !b.IsOk() {
		return nil
	}
	r = r.Intersect(b.Image.Bounds())
	if r.Empty() {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), b.Image, r.Min, draw.Src)
	out := &Bitmap{Image: dst, Depth: b.Depth}
	if b.Mask != nil {
		m := image.NewAlpha(dst.Bounds())
		draw.Draw(m, m.Bounds(), b.Mask, r.Min, draw.Src)
		out.Mask = m
	}
	return out
}
