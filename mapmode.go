package gcdc

// MapMode selects the unit of logical coordinates.
type MapMode uint8

const (
	// MapText makes one logical unit one device pixel.
	MapText MapMode = iota
	// MapLometric makes one logical unit a tenth of a millimetre.
	MapLometric
	// MapTwips makes one logical unit a twentieth of a point.
	MapTwips
	// MapPoints makes one logical unit a point (1/72 inch).
	MapPoints
	// MapMetric makes one logical unit a millimetre.
	MapMetric
)

var mapModeNames = [...]string{
	MapText:     "text",
	MapLometric: "lometric",
	MapTwips:    "twips",
	MapPoints:   "points",
	MapMetric:   "metric",
}

// String returns the mode name.
func (m MapMode) String() string {
	if int(m) < len(mapModeNames) {
		return mapModeNames[m]
	}
	return "unknown"
}

const (
	mmPerInch = 25.4
	twips2mm  = 0.0176388888889
	pt2mm     = 0.352777777778
)

// logicalScale returns the logical scale of m at the given resolution
// in pixels per inch.
func (m MapMode) logicalScale(dpiX, dpiY float64) (x, y float64) {
	mmX, mmY := dpiX/mmPerInch, dpiY/mmPerInch
	switch m {
	case MapTwips:
		return twips2mm * mmX, twips2mm * mmY
	case MapPoints:
		return pt2mm * mmX, pt2mm * mmY
	case MapMetric:
		return mmX, mmY
	case MapLometric:
		return mmX / 10, mmY / 10
	default:
		return 1, 1
	}
}
