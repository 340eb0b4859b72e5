package raster

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// DrawBitmap implements backend.Context. The bitmap is stretched over
// the user-space rectangle (x, y, w, h). Depth 1 bitmaps are stencils
// painted with the brush colour.
func (c *Context) DrawBitmap(bmp *paint.Bitmap, x, y, w, h float64) {
	if c.closed || !bmp.IsOk() || w == 0 || h == 0 {
		return
	}
	b := bmp.Image.Bounds()
	m := c.st.m
	m.Concat(affine.New(w/float64(b.Dx()), 0, 0, h/float64(b.Dy()), x, y))
	m.Concat(affine.NewTranslation(-float64(b.Min.X), -float64(b.Min.Y)))

	if bmp.Depth == 1 {
		c.drawMask(stencil(bmp.Image), m, solid(c.st.brush.Color))
		return
	}
	var src image.Image = bmp.Image
	if bmp.Mask != nil {
		src = applyMask(bmp.Image, bmp.Mask)
	}
	c.drawImage(src, m)
}

// drawImage composites src mapped into device space by m.
func (c *Context) drawImage(src image.Image, m affine.Matrix) {
	sb := src.Bounds()
	quad := transformRect(sb, m)
	r := polyBounds([][]affine.Point2D{quad}).Intersect(c.st.clipR)
	if r.Empty() {
		return
	}
	tmp := image.NewRGBA(r)
	c.interpolator(m).Transform(tmp, aff3(m), src, sb, xdraw.Src, nil)
	cov := c.coverage([][]affine.Point2D{quad}, r, backend.FillWinding)
	c.composite(r, cov, func(x, y int) (uint8, uint8, uint8, uint8) {
		i := tmp.PixOffset(x, y)
		return tmp.Pix[i], tmp.Pix[i+1], tmp.Pix[i+2], tmp.Pix[i+3]
	})
}

// drawMask paints src through a coverage mask mapped into device space
// by m.
func (c *Context) drawMask(mask *image.Alpha, m affine.Matrix, src source) {
	quad := transformRect(mask.Bounds(), m)
	r := polyBounds([][]affine.Point2D{quad}).Intersect(c.st.clipR)
	if r.Empty() {
		return
	}
	cov := image.NewAlpha(r)
	c.interpolator(m).Transform(cov, aff3(m), mask, mask.Bounds(), xdraw.Src, nil)
	if c.st.aa == backend.AntialiasNone {
		threshold(cov)
	}
	c.composite(r, cov, src)
}

func (c *Context) interpolator(m affine.Matrix) xdraw.Transformer {
	if c.st.aa == backend.AntialiasNone || isPixelAligned(m) {
		return xdraw.NearestNeighbor
	}
	return xdraw.ApproxBiLinear
}

// isPixelAligned reports whether m maps pixels one to one.
func isPixelAligned(m affine.Matrix) bool {
	return m.M11 == 1 && m.M22 == 1 && m.M12 == 0 && m.M21 == 0 &&
		m.Tx == math.Trunc(m.Tx) && m.Ty == math.Trunc(m.Ty)
}

func aff3(m affine.Matrix) f64.Aff3 {
	return f64.Aff3{m.M11, m.M21, m.Tx, m.M12, m.M22, m.Ty}
}

func transformRect(r image.Rectangle, m affine.Matrix) []affine.Point2D {
	return []affine.Point2D{
		m.TransformPoint(affine.Pt(float64(r.Min.X), float64(r.Min.Y))),
		m.TransformPoint(affine.Pt(float64(r.Max.X), float64(r.Min.Y))),
		m.TransformPoint(affine.Pt(float64(r.Max.X), float64(r.Max.Y))),
		m.TransformPoint(affine.Pt(float64(r.Min.X), float64(r.Max.Y))),
	}
}

// stencil converts img into a bi-level mask: pixels at least half
// opaque are set.
func stencil(img image.Image) *image.Alpha {
	b := img.Bounds()
	out := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a >= 0x8000 {
				out.Pix[out.PixOffset(x, y)] = 0xff
			}
		}
	}
	return out
}

// applyMask returns img with its alpha multiplied by mask.
func applyMask(img image.Image, mask *image.Alpha) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			k := mask.AlphaAt(x, y).A
			if k == 0 {
				continue
			}
			r, g, bb, a := img.At(x, y).RGBA()
			i := out.PixOffset(x, y)
			out.Pix[i] = mul8(uint8(r>>8), k)
			out.Pix[i+1] = mul8(uint8(g>>8), k)
			out.Pix[i+2] = mul8(uint8(bb>>8), k)
			out.Pix[i+3] = mul8(uint8(a>>8), k)
		}
	}
	return out
}
