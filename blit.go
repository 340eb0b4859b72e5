package gcdc

import (
	"image"

	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// DrawBitmap draws bmp at its natural size with its top-left corner at
// (x, y). Depth 1 bitmaps are stencils: clear pixels take the text
// background colour and set pixels the text foreground colour. With
// useMask false a colour bitmap's mask is ignored.
func (d *GCDC) DrawBitmap(bmp *paint.Bitmap, x, y int, useMask bool) {
	if !d.ready() || !bmp.IsOk() {
		return
	}
	w, h := bmp.Width(), bmp.Height()
	fx, fy, fw, fh := float64(x), float64(y), float64(w), float64(h)
	if bmp.Depth == 1 {
		d.ctx.SetPen(paint.TransparentPen)
		d.ctx.SetBrush(paint.NewBrush(d.textBg))
		d.ctx.DrawRectangle(fx, fy, fw, fh)
		d.ctx.SetBrush(paint.NewBrush(d.textFg))
		d.ctx.DrawBitmap(bmp, fx, fy, fw, fh)
		d.ctx.SetBrush(d.brush)
		d.ctx.SetPen(d.pen)
	} else {
		if !useMask && bmp.HasMask() {
			bmp = bmp.WithoutMask()
		}
		d.ctx.DrawBitmap(bmp, fx, fy, fw, fh)
	}
	d.CalcBoundingBox(x, y)
	d.CalcBoundingBox(x+w, y+h)
}

// DrawIcon draws an icon, always honouring its mask.
func (d *GCDC) DrawIcon(icon *paint.Bitmap, x, y int) {
	d.DrawBitmap(icon, x, y, true)
}

// AsBitmap returns a copy of the device pixels in subrect, or of the
// whole surface when subrect is empty. It fails when the backend cannot
// read its surface back.
func (d *GCDC) AsBitmap(subrect image.Rectangle) (*paint.Bitmap, bool) {
	if !d.ready() {
		return nil, false
	}
	s, ok := d.ctx.(backend.Snapshotter)
	if !ok {
		return nil, false
	}
	if subrect.Empty() {
		w, h := d.deviceSize()
		subrect = image.Rect(0, 0, w, h)
	}
	return s.Snapshot(subrect)
}

// Size returns the surface size in device pixels.
func (d *GCDC) Size() (w, h int) {
	if !d.ok {
		return 0, 0
	}
	return d.deviceSize()
}

// SizeMM returns the surface size in millimetres.
func (d *GCDC) SizeMM() (w, h int) {
	if !d.ok {
		return 0, 0
	}
	pw, ph := d.deviceSize()
	dx, dy := d.ctx.DPI()
	if dx <= 0 || dy <= 0 {
		return 0, 0
	}
	return roundInt(float64(pw) * mmPerInch / dx), roundInt(float64(ph) * mmPerInch / dy)
}

// PPI returns the resolution in pixels per inch.
func (d *GCDC) PPI() (x, y int) {
	if !d.ok {
		return 0, 0
	}
	dx, dy := d.ctx.DPI()
	return roundInt(dx), roundInt(dy)
}

// Blit copies a w by h area of src at (xsrc, ysrc) to (xdest, ydest).
// See StretchBlit.
func (d *GCDC) Blit(xdest, ydest, w, h int, src Source, xsrc, ysrc int, op RasterOp, useMask bool) bool {
	return d.StretchBlit(xdest, ydest, w, h, src, xsrc, ysrc, w, h, op, useMask)
}

// StretchBlit copies an area of src onto an area of d, scaling as
// needed, combined with op. The source rectangle is clipped to the
// source surface and the destination shrunk to match. A no-op raster
// operation succeeds without drawing; operations without a composition
// mode, and sources that cannot be read, fail.
func (d *GCDC) StretchBlit(xdest, ydest, dstWidth, dstHeight int,
	src Source, xsrc, ysrc, srcWidth, srcHeight int,
	op RasterOp, useMask bool) bool {
	if !d.ready() || src == nil || !src.IsOk() {
		return false
	}
	if op == RasterNoOp {
		return true
	}
	mode := op.CompositionMode()
	if mode == backend.CompositionInvalid {
		Logger().Debug("gcdc: blit with unsupported raster operation", "op", op)
		return false
	}

	sx, sy := src.LogicalToDevice(xsrc, ysrc)
	sw, sh := src.LogicalToDeviceRel(srcWidth, srcHeight)
	orig := image.Rect(sx, sy, sx+sw, sy+sh)
	sizeW, sizeH := src.Size()
	sub := orig.Intersect(image.Rect(0, 0, sizeW, sizeH))
	if sub.Dx() == 0 {
		return true
	}

	ok := true
	prevMode := d.ctx.CompositionMode()
	if d.ctx.SetCompositionMode(mode) {
		prevAA := d.ctx.AntialiasMode()
		if mode == backend.CompositionXor {
			d.ctx.SetAntialiasMode(backend.AntialiasNone)
		}
		if bmp, got := src.AsBitmap(sub); got && bmp.IsOk() {
			if !useMask && bmp.HasMask() {
				bmp = bmp.WithoutMask()
			}
			x, y := float64(xdest), float64(ydest)
			w, h := float64(dstWidth), float64(dstHeight)
			if sub != orig {
				x += float64(sub.Min.X-orig.Min.X) / float64(orig.Dx()) * float64(dstWidth)
				y += float64(sub.Min.Y-orig.Min.Y) / float64(orig.Dy()) * float64(dstHeight)
				w *= float64(sub.Dx()) / float64(orig.Dx())
				h *= float64(sub.Dy()) / float64(orig.Dy())
			}
			d.ctx.DrawBitmap(bmp, x, y, w, h)
		} else {
			Logger().Debug("gcdc: blit source has no readable contents")
			ok = false
		}
		if mode == backend.CompositionXor {
			d.ctx.SetAntialiasMode(prevAA)
		}
	}
	d.ctx.SetCompositionMode(prevMode)

	d.CalcBoundingBox(xdest, ydest)
	d.CalcBoundingBox(xdest+dstWidth, ydest+dstHeight)
	return ok
}
