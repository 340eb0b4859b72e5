package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/internal/compose"
	"github.com/gogpu/gcdc/paint"
)

// source yields the premultiplied colour of a paint at a device pixel.
type source func(x, y int) (r, g, b, a uint8)

func premul(col paint.Color) (r, g, b, a uint8) {
	rr, gg, bb, aa := col.RGBA()
	return uint8(rr >> 8), uint8(gg >> 8), uint8(bb >> 8), uint8(aa >> 8)
}

func solid(col paint.Color) source {
	r, g, b, a := premul(col)
	return func(int, int) (uint8, uint8, uint8, uint8) {
		return r, g, b, a
	}
}

// brushSource returns the paint of the current brush. Gradients are
// evaluated in user space at draw time.
func (c *Context) brushSource() source {
	br := c.st.brush
	switch br.Style {
	case paint.BrushStyleGradient:
		if br.Gradient != nil {
			if src := gradientSource(br.Gradient, c.st.m); src != nil {
				return src
			}
		}
	case paint.BrushStyleStipple:
		if br.Stipple.IsOk() {
			return stippleSource(br.Stipple, br.Color)
		}
	}
	return solid(br.Color)
}

func gradientSource(g *paint.Gradient, m affine.Matrix) source {
	inv := m
	if !inv.Invert() {
		return nil
	}
	var param func(p affine.Point2D) float64
	switch g.Kind {
	case paint.GradientLinear:
		dx, dy := g.X2-g.X1, g.Y2-g.Y1
		l2 := dx*dx + dy*dy
		if l2 == 0 {
			return nil
		}
		param = func(p affine.Point2D) float64 {
			return ((p.X-g.X1)*dx + (p.Y-g.Y1)*dy) / l2
		}
	case paint.GradientRadial:
		if g.R <= 0 {
			return nil
		}
		param = radialParam(g)
	default:
		return nil
	}
	return func(x, y int) (uint8, uint8, uint8, uint8) {
		p := inv.TransformPoint(affine.Pt(float64(x)+0.5, float64(y)+0.5))
		return premul(g.At(param(p)))
	}
}

// radialParam solves for the circle, interpolated from the focus
// (radius 0) to the outer circle, that passes through p.
func radialParam(g *paint.Gradient) func(affine.Point2D) float64 {
	cdx, cdy := g.X2-g.X1, g.Y2-g.Y1
	a := cdx*cdx + cdy*cdy - g.R*g.R
	return func(p affine.Point2D) float64 {
		pdx, pdy := p.X-g.X1, p.Y-g.Y1
		b := pdx*cdx + pdy*cdy
		c := pdx*pdx + pdy*pdy
		if a == 0 {
			if b == 0 {
				return 0
			}
			return c / (2 * b)
		}
		disc := b*b - a*c
		if disc < 0 {
			return 0
		}
		return (b - math.Sqrt(disc)) / a
	}
}

func stippleSource(bmp *paint.Bitmap, col paint.Color) source {
	b := bmp.Image.Bounds()
	w, h := b.Dx(), b.Dy()
	cr, cg, cb, ca := premul(col)
	return func(x, y int) (uint8, uint8, uint8, uint8) {
		sx := b.Min.X + mod(x, w)
		sy := b.Min.Y + mod(y, h)
		if bmp.Depth == 1 {
			_, _, _, a := bmp.Image.At(sx, sy).RGBA()
			if a < 0x8000 {
				return 0, 0, 0, 0
			}
			return cr, cg, cb, ca
		}
		r, g, bb, a := bmp.Image.At(sx, sy).RGBA()
		return uint8(r >> 8), uint8(g >> 8), uint8(bb >> 8), uint8(a >> 8)
	}
}

// fill paints device-space polygons, combining subpaths by rule.
func (c *Context) fill(polys [][]affine.Point2D, rule backend.FillRule, src source) {
	if c.closed {
		return
	}
	r := polyBounds(polys).Intersect(c.st.clipR)
	if r.Empty() {
		return
	}
	c.composite(r, c.coverage(polys, r, rule), src)
}

// coverage rasterizes device-space polygons over r. Non-zero fills use
// the vector rasterizer's signed-area accumulation; odd-even fills go
// through the scanline path.
func (c *Context) coverage(polys [][]affine.Point2D, r image.Rectangle, rule backend.FillRule) *image.Alpha {
	if rule == backend.FillOddEven {
		mask := scanCoverage(polys, r, rule)
		if c.st.aa == backend.AntialiasNone {
			threshold(mask)
		}
		return mask
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(r)
	z.Draw(mask, r, image.Opaque, image.Point{})
	if c.st.aa == backend.AntialiasNone {
		threshold(mask)
	}
	return mask
}

// composite blends src into the surface over r with the current
// composition mode. cov (may be nil for full coverage) and the clip
// weight each pixel.
func (c *Context) composite(r image.Rectangle, cov *image.Alpha, src source) {
	r = r.Intersect(c.st.clipR)
	op := c.st.op
	clip := c.st.clip
	pix := c.img.Pix
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			k := uint8(255)
			if cov != nil {
				k = cov.Pix[cov.PixOffset(x, y)]
			}
			if clip != nil && k != 0 {
				k = mul8(k, clip.Pix[clip.PixOffset(x, y)])
			}
			if k == 0 {
				continue
			}
			sr, sg, sb, sa := src(x, y)
			i := c.img.PixOffset(x, y)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = compose.Apply(op,
				sr, sg, sb, sa, pix[i], pix[i+1], pix[i+2], pix[i+3], k)
		}
	}
}

// polyBounds returns the smallest integer rectangle covering all
// polygons.
func polyBounds(polys [][]affine.Point2D) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
			maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || math.IsNaN(minX) || math.IsNaN(minY) {
		return image.Rectangle{}
	}
	const limit = 1 << 24
	return image.Rect(
		clampInt(math.Floor(minX), limit), clampInt(math.Floor(minY), limit),
		clampInt(math.Ceil(maxX), limit), clampInt(math.Ceil(maxY), limit),
	)
}

func clampInt(v, limit float64) int {
	return int(math.Max(-limit, math.Min(limit, v)))
}

func threshold(m *image.Alpha) {
	for i, a := range m.Pix {
		if a >= 128 {
			m.Pix[i] = 255
		} else {
			m.Pix[i] = 0
		}
	}
}

// mul8 returns a*b/255 rounded.
func mul8(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
