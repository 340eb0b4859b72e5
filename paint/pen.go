package paint

// PenStyle selects how a pen outline is drawn.
type PenStyle uint8

const (
	PenStyleSolid PenStyle = iota
	PenStyleDot
	PenStyleLongDash
	PenStyleShortDash
	PenStyleDotDash
	PenStyleUserDash
	PenStyleStipple
	PenStyleTransparent
)

// LineCap is the shape at the end of open strokes.
type LineCap uint8

const (
	CapRound LineCap = iota
	CapProjecting
	CapButt
)

// LineJoin is the shape where two stroke segments meet.
type LineJoin uint8

const (
	JoinRound LineJoin = iota
	JoinBevel
	JoinMiter
)

// Pen describes how outlines are stroked.
// The zero value is the null pen (IsOk returns false).
type Pen struct {
	Color   Color
	Width   int
	Style   PenStyle
	Cap     LineCap
	Join    LineJoin
	Dashes  []float64 // used with PenStyleUserDash, in multiples of the width
	Stipple *Bitmap   // used with PenStyleStipple
}

// TransparentPen draws nothing.
var TransparentPen = Pen{Color: Transparent, Width: 1, Style: PenStyleTransparent}

// NewPen returns a solid pen with round caps and joins.
func NewPen(c Color, width int) Pen {
	return Pen{Color: c, Width: width, Style: PenStyleSolid}
}

// IsOk reports whether the pen has been set.
func (p Pen) IsOk() bool {
	return p.Color.IsOk()
}

// IsTransparent reports whether strokes with this pen are invisible.
func (p Pen) IsTransparent() bool {
	return !p.IsOk() || p.Style == PenStyleTransparent
}

// StrokeWidth returns the effective width; zero-width pens draw
// hairlines one device unit wide.
func (p Pen) StrokeWidth() float64 {
	if p.Width <= 0 {
		return 1
	}
	return float64(p.Width)
}

// DashPattern returns the on/off lengths for the pen style, scaled by the
// stroke width, or nil for continuous strokes.
func (p Pen) DashPattern() []float64 {
	w := p.StrokeWidth()
	var base []float64
	switch p.Style {
	case PenStyleDot:
		base = []float64{1, 1}
	case PenStyleLongDash:
		base = []float64{7, 3}
	case PenStyleShortDash:
		base = []float64{3, 3}
	case PenStyleDotDash:
		base = []float64{5, 2, 1, 2}
	case PenStyleUserDash:
		base = p.Dashes
	default:
		return nil
	}
	if len(base) == 0 {
		return nil
	}
	out := make([]float64, len(base))
	for i, d := range base {
		out[i] = d * w
	}
	return out
}
