package paint

// BrushStyle selects how areas are filled.
type BrushStyle uint8

const (
	BrushStyleSolid BrushStyle = iota
	BrushStyleStipple
	BrushStyleGradient
	BrushStyleTransparent
)

// Brush describes how areas are filled.
// The zero value is the null brush (IsOk returns false).
type Brush struct {
	Color    Color
	Style    BrushStyle
	Stipple  *Bitmap
	Gradient *Gradient
}

// TransparentBrush fills nothing.
var TransparentBrush = Brush{Color: Transparent, Style: BrushStyleTransparent}

// NewBrush returns a solid brush.
func NewBrush(c Color) Brush {
	return Brush{Color: c, Style: BrushStyleSolid}
}

// NewGradientBrush returns a brush filling with g.
func NewGradientBrush(g *Gradient) Brush {
	c := Black
	if g != nil && len(g.Stops) > 0 {
		c = g.Stops[0].Color
	}
	return Brush{Color: c, Style: BrushStyleGradient, Gradient: g}
}

// IsOk reports whether the brush has been set.
func (b Brush) IsOk() bool {
	return b.Color.IsOk()
}

// IsTransparent reports whether fills with this brush are invisible.
func (b Brush) IsTransparent() bool {
	return !b.IsOk() || b.Style == BrushStyleTransparent
}

// GradientKind distinguishes linear from radial gradients.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// GradientStop is a colour at a position in [0, 1] along a gradient.
type GradientStop struct {
	Pos   float64
	Color Color
}

// Gradient is a colour ramp in the coordinate space of the context it
// is set on.
type Gradient struct {
	Kind GradientKind

	// Linear: from (X1, Y1) to (X2, Y2).
	X1, Y1, X2, Y2 float64

	// Radial: focus (X1, Y1), centre (X2, Y2), radius R.
	R float64

	Stops []GradientStop
}

// NewLinearGradient returns a two-stop linear gradient.
func NewLinearGradient(x1, y1, x2, y2 float64, from, to Color) *Gradient {
	return &Gradient{
		Kind: GradientLinear,
		X1:   x1, Y1: y1, X2: x2, Y2: y2,
		Stops: []GradientStop{{0, from}, {1, to}},
	}
}

// NewRadialGradient returns a two-stop radial gradient with focus
// (xo, yo), centre (xc, yc) and radius r.
func NewRadialGradient(xo, yo, xc, yc, r float64, from, to Color) *Gradient {
	return &Gradient{
		Kind: GradientRadial,
		X1:   xo, Y1: yo, X2: xc, Y2: yc, R: r,
		Stops: []GradientStop{{0, from}, {1, to}},
	}
}

// At returns the interpolated colour at t, clamped to [0, 1].
func (g *Gradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return Transparent
	}
	if t <= g.Stops[0].Pos {
		return g.Stops[0].Color
	}
	last := g.Stops[len(g.Stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if t > s1.Pos {
			continue
		}
		span := s1.Pos - s0.Pos
		if span <= 0 {
			return s1.Color
		}
		return lerpColor(s0.Color, s1.Color, (t-s0.Pos)/span)
	}
	return last.Color
}

func lerpColor(a, b Color, t float64) Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return RGBA(mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A))
}
