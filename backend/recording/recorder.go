package recording

import (
	"image"
	"math"
	"unicode/utf8"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// Name is the registry name of the recording renderer.
const Name = "recording"

// DefaultDPI is the resolution reported when none is configured. At 72
// DPI one point is one pixel, which keeps recorded text metrics simple.
const DefaultDPI = 72

// Option configures a Renderer.
type Option func(*Renderer)

// WithDPI sets the resolution reported by recorders.
func WithDPI(dpi float64) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// Renderer creates Recorders. It accepts any target and records at the
// target's size.
type Renderer struct {
	dpi float64
}

// New creates a recording renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds the recording renderer to reg under Name.
func Register(reg *backend.Registry, opts ...Option) {
	reg.Register(Name, func() backend.Renderer { return New(opts...) })
}

// Name implements backend.Renderer.
func (r *Renderer) Name() string {
	return Name
}

// NewContext implements backend.Renderer.
func (r *Renderer) NewContext(t backend.Target) (backend.Context, error) {
	if t == nil {
		return nil, backend.ErrUnsupportedTarget
	}
	b := t.Bounds()
	rec := NewRecorder(b.Dx(), b.Dy())
	rec.dpi = r.dpi
	return rec, nil
}

// recorderState is the part of a Recorder saved by PushState.
type recorderState struct {
	m    affine.Matrix
	clip rect // device space

	pen       paint.Pen
	brush     paint.Brush
	font      paint.Font
	textColor paint.Color

	mode backend.CompositionMode
	aa   backend.AntialiasMode
}

type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) intersect(o rect) rect {
	r.x0, r.y0 = math.Max(r.x0, o.x0), math.Max(r.y0, o.y0)
	r.x1, r.y1 = math.Min(r.x1, o.x1), math.Min(r.y1, o.y1)
	if r.x1 < r.x0 {
		r.x1 = r.x0
	}
	if r.y1 < r.y0 {
		r.y1 = r.y0
	}
	return r
}

func (r rect) empty() bool {
	return r.x1 <= r.x0 || r.y1 <= r.y0
}

// bounds returns the device bounding box of a user-space rectangle.
func bounds(m affine.Matrix, x, y, w, h float64) rect {
	pts := [4]affine.Point2D{
		m.TransformPoint(affine.Pt(x, y)),
		m.TransformPoint(affine.Pt(x+w, y)),
		m.TransformPoint(affine.Pt(x+w, y+h)),
		m.TransformPoint(affine.Pt(x, y+h)),
	}
	r := rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		r.x0, r.y0 = math.Min(r.x0, p.X), math.Min(r.y0, p.Y)
		r.x1, r.y1 = math.Max(r.x1, p.X), math.Max(r.y1, p.Y)
	}
	return r
}

// Recorder records backend calls as commands. It implements
// backend.Context, backend.Snapshotter and backend.Pager.
type Recorder struct {
	width, height int
	dpi           float64
	closed        bool

	st    recorderState
	stack []recorderState

	commands []Command
}

var (
	_ backend.Context     = (*Recorder)(nil)
	_ backend.Snapshotter = (*Recorder)(nil)
	_ backend.Pager       = (*Recorder)(nil)
)

// NewRecorder creates a recorder for a surface of the given size in
// pixels.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{
		width:  width,
		height: height,
		dpi:    DefaultDPI,
	}
	r.st = recorderState{
		m:         affine.Identity(),
		clip:      r.extent(),
		pen:       paint.NewPen(paint.Black, 1),
		brush:     paint.NewBrush(paint.White),
		font:      paint.NewFont(10, paint.FamilyDefault),
		textColor: paint.Black,
		mode:      backend.CompositionOver,
	}
	return r
}

func (r *Recorder) extent() rect {
	return rect{0, 0, float64(r.width), float64(r.height)}
}

func (r *Recorder) record(cmd Command) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, cmd)
}

// Width returns the width of the recording surface.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording surface.
func (r *Recorder) Height() int {
	return r.height
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// CommandsOfType returns the recorded commands of type t in call order.
func (r *Recorder) CommandsOfType(t CommandType) []Command {
	var out []Command
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			out = append(out, cmd)
		}
	}
	return out
}

// Last returns the most recent command, or nil if nothing was recorded.
func (r *Recorder) Last() Command {
	if len(r.commands) == 0 {
		return nil
	}
	return r.commands[len(r.commands)-1]
}

// Reset discards the recorded commands. The current state is kept.
func (r *Recorder) Reset() {
	r.commands = nil
}

// Pen returns the current pen.
func (r *Recorder) Pen() paint.Pen {
	return r.st.pen
}

// Brush returns the current brush.
func (r *Recorder) Brush() paint.Brush {
	return r.st.brush
}

// Font returns the current font and text colour.
func (r *Recorder) Font() (paint.Font, paint.Color) {
	return r.st.font, r.st.textColor
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// PushState implements backend.Context.
func (r *Recorder) PushState() {
	r.stack = append(r.stack, r.st)
	r.record(PushStateCommand{})
}

// PopState implements backend.Context.
func (r *Recorder) PopState() {
	if len(r.stack) == 0 {
		return
	}
	r.st = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.record(PopStateCommand{})
}

// Clip implements backend.Context.
func (r *Recorder) Clip(x, y, w, h float64) {
	r.st.clip = r.st.clip.intersect(bounds(r.st.m, x, y, w, h))
	r.record(ClipCommand{X: x, Y: y, W: w, H: h, Transform: r.st.m})
}

// ClipRegion implements backend.Context. The clip is tracked as the
// bounding box of the region.
func (r *Recorder) ClipRegion(rgn backend.Region) {
	b := rgn.Bounds()
	r.st.clip = r.st.clip.intersect(bounds(r.st.m,
		float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())))
	r.record(ClipRegionCommand{Region: rgn, Transform: r.st.m})
}

// ResetClip implements backend.Context.
func (r *Recorder) ResetClip() {
	r.st.clip = r.extent()
	r.record(ResetClipCommand{})
}

// ClipBox implements backend.Context.
func (r *Recorder) ClipBox() (x, y, w, h float64) {
	c := r.st.clip
	if c.empty() {
		return 0, 0, 0, 0
	}
	inv := r.st.m
	if !inv.Invert() {
		return 0, 0, 0, 0
	}
	b := bounds(inv, c.x0, c.y0, c.x1-c.x0, c.y1-c.y0)
	return b.x0, b.y0, b.x1 - b.x0, b.y1 - b.y0
}

// Transform implements backend.Context.
func (r *Recorder) Transform() affine.Matrix {
	return r.st.m
}

// SetTransform implements backend.Context.
func (r *Recorder) SetTransform(m affine.Matrix) {
	r.st.m = m
	r.record(SetTransformCommand{Matrix: m})
}

// ConcatTransform implements backend.Context.
func (r *Recorder) ConcatTransform(m affine.Matrix) {
	r.st.m.Concat(m)
	r.record(ConcatTransformCommand{Matrix: m})
}

// CompositionMode implements backend.Context.
func (r *Recorder) CompositionMode() backend.CompositionMode {
	return r.st.mode
}

// SetCompositionMode implements backend.Context. Every valid mode is
// accepted.
func (r *Recorder) SetCompositionMode(mode backend.CompositionMode) bool {
	if mode < backend.CompositionClear || mode > backend.CompositionDiff {
		return false
	}
	r.st.mode = mode
	r.record(SetCompositionModeCommand{Mode: mode})
	return true
}

// AntialiasMode implements backend.Context.
func (r *Recorder) AntialiasMode() backend.AntialiasMode {
	return r.st.aa
}

// SetAntialiasMode implements backend.Context.
func (r *Recorder) SetAntialiasMode(mode backend.AntialiasMode) bool {
	r.st.aa = mode
	r.record(SetAntialiasModeCommand{Mode: mode})
	return true
}

// SetPen implements backend.Context.
func (r *Recorder) SetPen(p paint.Pen) {
	r.st.pen = p
	r.record(SetPenCommand{Pen: p})
}

// SetBrush implements backend.Context.
func (r *Recorder) SetBrush(b paint.Brush) {
	r.st.brush = b
	r.record(SetBrushCommand{Brush: b})
}

// SetFont implements backend.Context.
func (r *Recorder) SetFont(f paint.Font, c paint.Color) {
	r.st.font = f
	r.st.textColor = c
	r.record(SetFontCommand{Font: f, Color: c})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// StrokePath implements backend.Context.
func (r *Recorder) StrokePath(p *backend.Path) {
	r.record(PathCommand{Kind: CmdStrokePath, Path: p.Clone(), Transform: r.st.m})
}

// FillPath implements backend.Context.
func (r *Recorder) FillPath(p *backend.Path, rule backend.FillRule) {
	r.record(PathCommand{Kind: CmdFillPath, Path: p.Clone(), Rule: rule, Transform: r.st.m})
}

// DrawPath implements backend.Context.
func (r *Recorder) DrawPath(p *backend.Path, rule backend.FillRule) {
	r.record(PathCommand{Kind: CmdDrawPath, Path: p.Clone(), Rule: rule, Transform: r.st.m})
}

// StrokeLine implements backend.Context.
func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64) {
	r.record(StrokeLineCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Transform: r.st.m})
}

// StrokeLines implements backend.Context.
func (r *Recorder) StrokeLines(points []affine.Point2D) {
	r.record(LinesCommand{
		Kind:      CmdStrokeLines,
		Points:    append([]affine.Point2D(nil), points...),
		Transform: r.st.m,
	})
}

// DrawLines implements backend.Context.
func (r *Recorder) DrawLines(points []affine.Point2D, rule backend.FillRule) {
	r.record(LinesCommand{
		Kind:      CmdDrawLines,
		Points:    append([]affine.Point2D(nil), points...),
		Rule:      rule,
		Transform: r.st.m,
	})
}

// DrawRectangle implements backend.Context.
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	r.record(ShapeCommand{Kind: CmdDrawRectangle, X: x, Y: y, W: w, H: h, Transform: r.st.m})
}

// DrawRoundedRectangle implements backend.Context.
func (r *Recorder) DrawRoundedRectangle(x, y, w, h, radius float64) {
	r.record(ShapeCommand{
		Kind: CmdDrawRoundedRectangle,
		X:    x, Y: y, W: w, H: h,
		Radius:    radius,
		Transform: r.st.m,
	})
}

// DrawEllipse implements backend.Context.
func (r *Recorder) DrawEllipse(x, y, w, h float64) {
	r.record(ShapeCommand{Kind: CmdDrawEllipse, X: x, Y: y, W: w, H: h, Transform: r.st.m})
}

// DrawBitmap implements backend.Context.
func (r *Recorder) DrawBitmap(bmp *paint.Bitmap, x, y, w, h float64) {
	r.record(DrawBitmapCommand{Bitmap: bmp, X: x, Y: y, W: w, H: h, Transform: r.st.m})
}

// DrawText implements backend.Context.
func (r *Recorder) DrawText(s string, x, y, angle float64, background *paint.Brush) {
	var bg *paint.Brush
	if background != nil {
		b := *background
		bg = &b
	}
	r.record(DrawTextCommand{
		Text: s, X: x, Y: y,
		Angle:      angle,
		Background: bg,
		Mode:       r.st.mode,
		Transform:  r.st.m,
	})
}

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

// ppem returns the current font size in user units.
func (r *Recorder) ppem() float64 {
	pt := r.st.font.PointSize
	if pt <= 0 {
		pt = 10
	}
	return pt * r.dpi / 72
}

// TextExtent implements backend.Context. Every rune is half an em wide
// and lines are 1.2 em high, with 0.2 em of descent.
func (r *Recorder) TextExtent(s string) (w, h, descent, externalLeading float64) {
	em := r.ppem()
	return float64(utf8.RuneCountInString(s)) * em / 2, 1.2 * em, 0.2 * em, 0
}

// PartialTextExtents implements backend.Context.
func (r *Recorder) PartialTextExtents(s string) []float64 {
	half := r.ppem() / 2
	out := make([]float64, 0, len(s))
	for range s {
		out = append(out, float64(len(out)+1)*half)
	}
	return out
}

// DPI implements backend.Context.
func (r *Recorder) DPI() (x, y float64) {
	return r.dpi, r.dpi
}

// Size implements backend.Context.
func (r *Recorder) Size() (w, h float64) {
	return float64(r.width), float64(r.height)
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

// Snapshot implements backend.Snapshotter. Nothing is drawn, so the
// snapshot is a transparent bitmap of the requested size.
func (r *Recorder) Snapshot(rc image.Rectangle) (*paint.Bitmap, bool) {
	rc = rc.Intersect(image.Rect(0, 0, r.width, r.height))
	if rc.Empty() {
		return nil, false
	}
	return paint.NewBitmap(image.NewRGBA(image.Rect(0, 0, rc.Dx(), rc.Dy()))), true
}

// StartPage implements backend.Pager.
func (r *Recorder) StartPage(width, height float64) error {
	if r.closed {
		return backend.ErrClosed
	}
	r.record(StartPageCommand{Width: width, Height: height})
	return nil
}

// EndPage implements backend.Pager.
func (r *Recorder) EndPage() error {
	if r.closed {
		return backend.ErrClosed
	}
	r.record(EndPageCommand{})
	return nil
}

// Flush implements backend.Context.
func (r *Recorder) Flush() {
	r.record(FlushCommand{})
}

// Close implements backend.Context. The commands stay available.
func (r *Recorder) Close() error {
	if r.closed {
		return backend.ErrClosed
	}
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool {
	return r.closed
}
