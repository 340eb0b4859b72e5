package backend

// CompositionMode is the Porter-Duff operator used to combine a drawing
// primitive with the existing surface content.
type CompositionMode int8

const (
	CompositionInvalid CompositionMode = iota - 1
	CompositionClear
	CompositionSource
	CompositionOver
	CompositionIn
	CompositionOut
	CompositionAtop
	CompositionDest
	CompositionDestOver
	CompositionDestIn
	CompositionDestOut
	CompositionDestAtop
	CompositionXor
	CompositionAdd
	CompositionDiff
)

var compositionNames = [...]string{
	"clear", "source", "over", "in", "out", "atop",
	"dest", "dest-over", "dest-in", "dest-out", "dest-atop",
	"xor", "add", "diff",
}

// String returns the operator name.
func (m CompositionMode) String() string {
	if m >= 0 && int(m) < len(compositionNames) {
		return compositionNames[m]
	}
	return "invalid"
}

// AntialiasMode controls edge smoothing.
type AntialiasMode uint8

const (
	AntialiasDefault AntialiasMode = iota
	AntialiasNone
)

// String returns the mode name.
func (m AntialiasMode) String() string {
	if m == AntialiasNone {
		return "none"
	}
	return "default"
}

// FillRule determines the inside of self-intersecting paths.
type FillRule uint8

const (
	FillOddEven FillRule = iota
	FillWinding
)

// String returns the rule name.
func (r FillRule) String() string {
	if r == FillWinding {
		return "winding"
	}
	return "odd-even"
}
