package backend

import (
	"errors"
	"image"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/paint"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrUnsupportedTarget is returned when a renderer cannot draw on a target.
	ErrUnsupportedTarget = errors.New("backend: unsupported target")

	// ErrClosed is returned by operations on a closed context.
	ErrClosed = errors.New("backend: context closed")
)

// Target is a drawable surface: a window surface, a memory bitmap or a
// printer page. Renderers type-assert targets to the concrete surfaces
// they know how to draw on.
type Target interface {
	Bounds() image.Rectangle
}

// Originer is implemented by targets whose drawable area does not start
// at the device origin (for example a window whose client area is offset
// inside its native surface).
type Originer interface {
	Origin() image.Point
}

// Renderer creates Contexts bound to targets.
type Renderer interface {
	// Name returns the renderer identifier (e.g. "raster").
	Name() string

	// NewContext binds a new Context to t. It returns
	// ErrUnsupportedTarget if t is not a surface this renderer handles.
	NewContext(t Target) (Context, error)
}

// Context is the native drawing capability a device context drives.
//
// All coordinates passed to a Context are in its user space, i.e. they
// are mapped through the current transform before reaching the surface.
// A Context is owned by a single device context and is not safe for
// concurrent use.
type Context interface {
	// State

	// PushState saves the transform, clip, pen, brush, font and modes.
	PushState()
	// PopState restores the most recently pushed state. It is a no-op on
	// an empty stack.
	PopState()

	// Clipping

	// Clip intersects the clip with a rectangle in user space.
	Clip(x, y, w, h float64)
	// ClipRegion intersects the clip with a region in user space.
	ClipRegion(r Region)
	// ResetClip removes all clipping.
	ResetClip()
	// ClipBox returns the bounding box of the clip in user space.
	ClipBox() (x, y, w, h float64)

	// Transform

	Transform() affine.Matrix
	SetTransform(m affine.Matrix)
	// ConcatTransform makes m the innermost part of the current transform.
	ConcatTransform(m affine.Matrix)

	// Modes

	CompositionMode() CompositionMode
	// SetCompositionMode returns false if the mode is not supported, in
	// which case the current mode is kept.
	SetCompositionMode(mode CompositionMode) bool
	AntialiasMode() AntialiasMode
	SetAntialiasMode(mode AntialiasMode) bool

	// Attributes

	SetPen(p paint.Pen)
	SetBrush(b paint.Brush)
	SetFont(f paint.Font, c paint.Color)

	// Drawing

	StrokePath(p *Path)
	FillPath(p *Path, rule FillRule)
	// DrawPath fills with the brush, then strokes with the pen.
	DrawPath(p *Path, rule FillRule)
	StrokeLine(x1, y1, x2, y2 float64)
	StrokeLines(points []affine.Point2D)
	// DrawLines fills the polygon and strokes its outline.
	DrawLines(points []affine.Point2D, rule FillRule)
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, radius float64)
	DrawEllipse(x, y, w, h float64)
	DrawBitmap(bmp *paint.Bitmap, x, y, w, h float64)
	// DrawText draws a single line of text with its top-left corner at
	// (x, y), rotated counter-clockwise on screen by angle radians around
	// that corner. A nil background leaves the area behind the glyphs
	// untouched.
	DrawText(s string, x, y, angle float64, background *paint.Brush)

	// Metrics

	// TextExtent measures s in the current font.
	TextExtent(s string) (w, h, descent, externalLeading float64)
	// PartialTextExtents returns, for each rune of s, the width of the
	// prefix ending with that rune.
	PartialTextExtents(s string) []float64
	DPI() (x, y float64)
	// Size returns the surface size in user space units at the original
	// transform.
	Size() (w, h float64)

	// Lifecycle

	Flush()
	Close() error
}

// Snapshotter is implemented by contexts that can return a copy of their
// surface. r is in device pixels.
type Snapshotter interface {
	Snapshot(r image.Rectangle) (*paint.Bitmap, bool)
}

// Pager is implemented by contexts that draw on paged media.
type Pager interface {
	StartPage(width, height float64) error
	EndPage() error
}
