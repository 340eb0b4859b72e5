package paint

// FontWeight is the stroke weight of a font.
type FontWeight uint8

const (
	WeightNormal FontWeight = iota
	WeightLight
	WeightBold
)

// FontSlant is the slant of a font.
type FontSlant uint8

const (
	SlantNormal FontSlant = iota
	SlantItalic
)

// FontFamily is a generic family used when no face name is given.
type FontFamily uint8

const (
	FamilyDefault FontFamily = iota
	FamilySwiss
	FamilyRoman
	FamilyModern
)

// Font describes a text face. The zero value is the null font.
type Font struct {
	Family     FontFamily
	FaceName   string
	PointSize  float64
	Weight     FontWeight
	Slant      FontSlant
	Underlined bool
}

// NewFont returns a font of the given size and family.
func NewFont(pointSize float64, family FontFamily) Font {
	return Font{Family: family, PointSize: pointSize}
}

// IsOk reports whether the font has been set.
func (f Font) IsOk() bool {
	return f.PointSize > 0
}

// Bold returns a bold copy of the font.
func (f Font) Bold() Font {
	f.Weight = WeightBold
	return f
}

// Italic returns an italic copy of the font.
func (f Font) Italic() Font {
	f.Slant = SlantItalic
	return f
}

// Scaled returns a copy with the point size multiplied by s.
func (f Font) Scaled(s float64) Font {
	f.PointSize *= s
	return f
}
