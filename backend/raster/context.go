package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/internal/compose"
	"github.com/gogpu/gcdc/paint"
)

// state is the part of a Context saved by PushState.
type state struct {
	m     affine.Matrix
	clip  *image.Alpha // nil when unclipped; never mutated once set
	clipR image.Rectangle

	pen       paint.Pen
	brush     paint.Brush
	font      paint.Font
	textColor paint.Color

	op compose.Func
	// mode is the composition mode op was looked up for.
	mode backend.CompositionMode
	aa   backend.AntialiasMode
}

// Context draws on a raster image. It implements backend.Context,
// backend.Snapshotter and backend.Pager.
type Context struct {
	r      *Renderer
	dst    draw.Image
	img    *image.RGBA
	shadow bool
	bounds image.Rectangle
	closed bool

	st    state
	stack []state

	faces  map[faceKey]font.Face
	shaper *shaping.HarfbuzzShaper
}

var (
	_ backend.Context     = (*Context)(nil)
	_ backend.Snapshotter = (*Context)(nil)
	_ backend.Pager       = (*Context)(nil)
)

func newContext(r *Renderer, dst draw.Image) *Context {
	img, shadow := surface(dst)
	over, _ := compose.Lookup(backend.CompositionOver)
	aa := backend.AntialiasDefault
	if !r.antialias {
		aa = backend.AntialiasNone
	}
	c := &Context{
		r:      r,
		dst:    dst,
		img:    img,
		shadow: shadow,
		bounds: img.Bounds(),
		faces:  make(map[faceKey]font.Face),
	}
	c.st = state{
		m:         affine.Identity(),
		clipR:     c.bounds,
		pen:       paint.NewPen(paint.Black, 1),
		brush:     paint.NewBrush(paint.White),
		font:      paint.NewFont(10, paint.FamilyDefault),
		textColor: paint.Black,
		op:        over,
		mode:      backend.CompositionOver,
		aa:        aa,
	}
	return c
}

// Image returns the pixel buffer the context draws on.
func (c *Context) Image() *image.RGBA {
	return c.img
}

// EncodePNG flushes pending output and writes the surface as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	c.Flush()
	return png.Encode(w, c.img)
}

// PushState implements backend.Context.
func (c *Context) PushState() {
	c.stack = append(c.stack, c.st)
}

// PopState implements backend.Context.
func (c *Context) PopState() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Clip implements backend.Context.
func (c *Context) Clip(x, y, w, h float64) {
	p := backend.NewPath()
	p.AddRectangle(x, y, w, h)
	c.clipTo(p.Flatten(c.st.m, c.tolerance()))
}

// ClipRegion implements backend.Context.
func (c *Context) ClipRegion(r backend.Region) {
	p := backend.NewPath()
	for _, rc := range r.Rects() {
		p.AddRectangle(float64(rc.Min.X), float64(rc.Min.Y), float64(rc.Dx()), float64(rc.Dy()))
	}
	c.clipTo(p.Flatten(c.st.m, c.tolerance()))
}

func (c *Context) clipTo(polys [][]affine.Point2D) {
	r := polyBounds(polys).Intersect(c.st.clipR)
	mask := image.NewAlpha(c.bounds)
	if !r.Empty() {
		cov := c.coverage(polys, r, backend.FillWinding)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				a := cov.Pix[cov.PixOffset(x, y)]
				if c.st.clip != nil {
					a = mul8(a, c.st.clip.Pix[c.st.clip.PixOffset(x, y)])
				}
				mask.Pix[mask.PixOffset(x, y)] = a
			}
		}
	}
	c.st.clip = mask
	c.st.clipR = r
}

// ResetClip implements backend.Context.
func (c *Context) ResetClip() {
	c.st.clip = nil
	c.st.clipR = c.bounds
}

// ClipBox implements backend.Context. The device bounds of the clip are
// mapped back through the inverse transform.
func (c *Context) ClipBox() (x, y, w, h float64) {
	r := c.st.clipR
	if r.Empty() {
		return 0, 0, 0, 0
	}
	inv := c.st.m
	if !inv.Invert() {
		return 0, 0, 0, 0
	}
	corners := [4]affine.Point2D{
		affine.Pt(float64(r.Min.X), float64(r.Min.Y)),
		affine.Pt(float64(r.Max.X), float64(r.Min.Y)),
		affine.Pt(float64(r.Max.X), float64(r.Max.Y)),
		affine.Pt(float64(r.Min.X), float64(r.Max.Y)),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		p = inv.TransformPoint(p)
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	return minX, minY, maxX - minX, maxY - minY
}

// Transform implements backend.Context.
func (c *Context) Transform() affine.Matrix {
	return c.st.m
}

// SetTransform implements backend.Context.
func (c *Context) SetTransform(m affine.Matrix) {
	c.st.m = m
}

// ConcatTransform implements backend.Context.
func (c *Context) ConcatTransform(m affine.Matrix) {
	c.st.m.Concat(m)
}

// CompositionMode implements backend.Context.
func (c *Context) CompositionMode() backend.CompositionMode {
	return c.st.mode
}

// SetCompositionMode implements backend.Context. Every valid mode is
// supported.
func (c *Context) SetCompositionMode(mode backend.CompositionMode) bool {
	fn, ok := compose.Lookup(mode)
	if !ok {
		return false
	}
	c.st.op, c.st.mode = fn, mode
	return true
}

// AntialiasMode implements backend.Context.
func (c *Context) AntialiasMode() backend.AntialiasMode {
	return c.st.aa
}

// SetAntialiasMode implements backend.Context.
func (c *Context) SetAntialiasMode(mode backend.AntialiasMode) bool {
	c.st.aa = mode
	return true
}

// SetPen implements backend.Context.
func (c *Context) SetPen(p paint.Pen) {
	c.st.pen = p
}

// SetBrush implements backend.Context.
func (c *Context) SetBrush(b paint.Brush) {
	c.st.brush = b
}

// SetFont implements backend.Context.
func (c *Context) SetFont(f paint.Font, col paint.Color) {
	c.st.font = f
	c.st.textColor = col
}

// StrokePath implements backend.Context.
func (c *Context) StrokePath(p *backend.Path) {
	if c.st.pen.IsTransparent() || p.IsEmpty() {
		return
	}
	m := c.st.m
	polys := p.Flatten(affine.Identity(), c.tolerance()/math.Max(m.ScaleFactor(), 1e-9))
	outline := strokePolylines(polys, c.st.pen, c.penWidth(), c.tolerance()/math.Max(m.ScaleFactor(), 1e-9))
	for i, poly := range outline {
		for j, pt := range poly {
			outline[i][j] = m.TransformPoint(pt)
		}
	}
	c.fill(outline, backend.FillWinding, solid(c.st.pen.Color))
}

// FillPath implements backend.Context.
func (c *Context) FillPath(p *backend.Path, rule backend.FillRule) {
	if c.st.brush.IsTransparent() || p.IsEmpty() {
		return
	}
	c.fill(p.Flatten(c.st.m, c.tolerance()), rule, c.brushSource())
}

// DrawPath implements backend.Context.
func (c *Context) DrawPath(p *backend.Path, rule backend.FillRule) {
	c.FillPath(p, rule)
	c.StrokePath(p)
}

// StrokeLine implements backend.Context.
func (c *Context) StrokeLine(x1, y1, x2, y2 float64) {
	p := backend.NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	c.StrokePath(p)
}

// StrokeLines implements backend.Context.
func (c *Context) StrokeLines(points []affine.Point2D) {
	if len(points) < 2 {
		return
	}
	p := backend.NewPath()
	p.AddLines(points)
	c.StrokePath(p)
}

// DrawLines implements backend.Context.
func (c *Context) DrawLines(points []affine.Point2D, rule backend.FillRule) {
	if len(points) < 2 {
		return
	}
	p := backend.NewPath()
	p.AddLines(points)
	c.DrawPath(p, rule)
}

// DrawRectangle implements backend.Context.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	p := backend.NewPath()
	p.AddRectangle(x, y, w, h)
	c.DrawPath(p, backend.FillWinding)
}

// DrawRoundedRectangle implements backend.Context.
func (c *Context) DrawRoundedRectangle(x, y, w, h, radius float64) {
	p := backend.NewPath()
	p.AddRoundedRectangle(x, y, w, h, radius)
	c.DrawPath(p, backend.FillWinding)
}

// DrawEllipse implements backend.Context.
func (c *Context) DrawEllipse(x, y, w, h float64) {
	p := backend.NewPath()
	p.AddEllipse(x, y, w, h)
	c.DrawPath(p, backend.FillWinding)
}

// DPI implements backend.Context.
func (c *Context) DPI() (x, y float64) {
	return c.r.dpi, c.r.dpi
}

// Size implements backend.Context.
func (c *Context) Size() (w, h float64) {
	return float64(c.bounds.Dx()), float64(c.bounds.Dy())
}

// Snapshot implements backend.Snapshotter.
func (c *Context) Snapshot(r image.Rectangle) (*paint.Bitmap, bool) {
	r = r.Intersect(c.bounds)
	if r.Empty() {
		return nil, false
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), c.img, r.Min, draw.Src)
	return paint.NewBitmap(out), true
}

// StartPage implements backend.Pager. A raster surface has a single
// page, so starting one clears it.
func (c *Context) StartPage(_, _ float64) error {
	if c.closed {
		return backend.ErrClosed
	}
	draw.Draw(c.img, c.bounds, image.Transparent, image.Point{}, draw.Src)
	return nil
}

// EndPage implements backend.Pager.
func (c *Context) EndPage() error {
	if c.closed {
		return backend.ErrClosed
	}
	c.Flush()
	return nil
}

// Flush implements backend.Context. It copies a buffered surface back to
// the target image.
func (c *Context) Flush() {
	if !c.shadow || c.closed {
		return
	}
	draw.Draw(c.dst, c.dst.Bounds(), c.img, image.Point{}, draw.Src)
}

// Close implements backend.Context.
func (c *Context) Close() error {
	if c.closed {
		return backend.ErrClosed
	}
	c.Flush()
	c.dropFaces()
	c.closed = true
	return nil
}

// tolerance is the flattening tolerance in device pixels.
func (c *Context) tolerance() float64 {
	return 0.2
}

// penWidth returns the stroke width in user units. Hairline pens are one
// device pixel wide whatever the transform.
func (c *Context) penWidth() float64 {
	if c.st.pen.Width <= 0 {
		if s := c.st.m.ScaleFactor(); s > 0 {
			return 1 / s
		}
		return 1
	}
	return c.st.pen.StrokeWidth()
}
