package gcdc

import (
	"errors"
	"fmt"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// Errors returned by the page and lifecycle methods.
var (
	// ErrNotOk is returned by operations on a device context without a
	// backend.
	ErrNotOk = errors.New("gcdc: device context is not ok")

	// ErrNoPages is returned by StartPage and EndPage when the backend
	// does not draw on paged media.
	ErrNoPages = errors.New("gcdc: backend has no pages")
)

// BackgroundMode controls whether text is drawn over a filled background.
type BackgroundMode uint8

const (
	BackgroundTransparent BackgroundMode = iota
	BackgroundSolid
)

// GCDC is a device context drawing through a backend.Context.
//
// A GCDC exclusively owns its backend context and is not safe for
// concurrent use.
type GCDC struct {
	ctx    backend.Context
	target backend.Target
	ok     bool

	// original is the backend transform captured when ctx was attached.
	original affine.Matrix
	current  affine.Matrix
	inverse  affine.Matrix
	ext      affine.Matrix
	dirty    bool

	deviceOriginX, deviceOriginY   int
	logicalOriginX, logicalOriginY int
	userScaleX, userScaleY         float64
	logicalScaleX, logicalScaleY   float64
	scaleX, scaleY                 float64
	signX, signY                   float64
	mapMode                        MapMode

	clipping                       bool
	clipValid                      bool
	clipX1, clipY1, clipX2, clipY2 int

	pen        paint.Pen
	brush      paint.Brush
	background paint.Brush
	bgMode     BackgroundMode
	font       paint.Font
	textFg     paint.Color
	textBg     paint.Color

	logicalFunc RasterOp
	// opSupported caches whether logicalFunc maps to a composition mode
	// the backend accepted.
	opSupported bool

	bbox bbox
}

var _ DeviceContext = (*GCDC)(nil)

// New creates a device context drawing on t through a context created by
// r. If r is nil or cannot draw on t, the device context is returned
// anyway but IsOk reports false and every drawing call is a no-op.
func New(r backend.Renderer, t backend.Target, opts ...Option) *GCDC {
	d := newGCDC(opts)
	d.target = t
	if r == nil {
		Logger().Debug("gcdc: no renderer")
		return d
	}
	ctx, err := r.NewContext(t)
	if err != nil {
		Logger().Debug("gcdc: create backend context", "renderer", r.Name(), "err", err)
		return d
	}
	d.SetGraphicsContext(ctx)
	return d
}

// NewFromContext creates a device context drawing through ctx, which
// becomes owned by the device context. A nil ctx gives a device context
// that is not ok.
func NewFromContext(ctx backend.Context, opts ...Option) *GCDC {
	d := newGCDC(opts)
	d.SetGraphicsContext(ctx)
	return d
}

// NewFromRegistry creates a device context with the renderer registered
// under name. An empty name selects reg.Default().
func NewFromRegistry(reg *backend.Registry, name string, t backend.Target, opts ...Option) (*GCDC, error) {
	var (
		r   backend.Renderer
		err error
	)
	if name == "" {
		r, err = reg.Default()
	} else {
		r, err = reg.Get(name)
	}
	if err != nil {
		return nil, err
	}
	ctx, err := r.NewContext(t)
	if err != nil {
		return nil, fmt.Errorf("gcdc: %s: %w", r.Name(), err)
	}
	d := newGCDC(opts)
	d.target = t
	d.SetGraphicsContext(ctx)
	return d, nil
}

func newGCDC(opts []Option) *GCDC {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &GCDC{
		original:      affine.Identity(),
		current:       affine.Identity(),
		inverse:       affine.Identity(),
		ext:           affine.Identity(),
		userScaleX:    1,
		userScaleY:    1,
		logicalScaleX: 1,
		logicalScaleY: 1,
		scaleX:        1,
		scaleY:        1,
		signX:         1,
		signY:         1,
		deviceOriginX: o.origin.X,
		deviceOriginY: o.origin.Y,
		mapMode:       o.mapMode,
		pen:           o.pen,
		brush:         o.brush,
		background:    o.background,
		font:          o.font,
		textFg:        o.textFg,
		textBg:        o.textBg,
		logicalFunc:   RasterCopy,
		opSupported:   true,
	}
	return d
}

// SetGraphicsContext replaces the backend context. The previous context
// is closed. The new context's transform becomes the original transform
// on top of which the coordinate pipeline is applied, and the current
// attributes are pushed to it. A nil ctx leaves the device context not
// ok.
func (d *GCDC) SetGraphicsContext(ctx backend.Context) {
	if d.ctx != nil && d.ctx != ctx {
		if err := d.ctx.Close(); err != nil && !errors.Is(err, backend.ErrClosed) {
			Logger().Debug("gcdc: close previous backend context", "err", err)
		}
	}
	d.ctx = ctx
	d.ok = ctx != nil
	d.clipping = false
	d.clipValid = false
	if !d.ok {
		return
	}
	d.original = ctx.Transform()
	if d.mapMode != MapText {
		d.applyMapMode()
	}
	d.dirty = true
	d.RecomputeTransform()

	ctx.SetFont(d.font, d.textFg)
	ctx.SetPen(d.pen)
	ctx.SetBrush(d.brush)
	if d.logicalFunc != RasterCopy {
		d.SetLogicalFunction(d.logicalFunc)
	}
}

// GraphicsContext returns the backend context, or nil.
func (d *GCDC) GraphicsContext() backend.Context {
	return d.ctx
}

// IsOk reports whether the device context has a backend to draw on.
func (d *GCDC) IsOk() bool {
	return d.ok
}

// Close releases the backend context. Further drawing calls are no-ops.
// Close is idempotent.
func (d *GCDC) Close() error {
	if d.ctx == nil {
		return nil
	}
	err := d.ctx.Close()
	d.ctx = nil
	d.ok = false
	if errors.Is(err, backend.ErrClosed) {
		return nil
	}
	return err
}

// Flush forces pending backend output to the target.
func (d *GCDC) Flush() {
	if !d.ok {
		return
	}
	d.ctx.Flush()
}

// StartPage starts a new page on paged backends.
func (d *GCDC) StartPage() error {
	if !d.ok {
		return ErrNotOk
	}
	p, ok := d.ctx.(backend.Pager)
	if !ok {
		return ErrNoPages
	}
	w, h := d.ctx.Size()
	return p.StartPage(w, h)
}

// EndPage finishes the current page on paged backends.
func (d *GCDC) EndPage() error {
	if !d.ok {
		return ErrNotOk
	}
	p, ok := d.ctx.(backend.Pager)
	if !ok {
		return ErrNoPages
	}
	return p.EndPage()
}

// ready reports whether the device context can be used and brings the
// backend transform up to date.
func (d *GCDC) ready() bool {
	if !d.ok {
		return false
	}
	d.ensureTransform()
	return true
}

// drawable is ready plus a supported logical function.
func (d *GCDC) drawable() bool {
	return d.ready() && d.opSupported
}
