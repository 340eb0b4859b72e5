package gcdc

import "github.com/gogpu/gcdc/backend"

// RasterOp is the logical function combining drawn pixels with the
// surface.
type RasterOp uint8

const (
	RasterClear RasterOp = iota
	RasterXor
	RasterInvert
	RasterOrReverse
	RasterAndReverse
	RasterCopy
	RasterAnd
	RasterAndInvert
	RasterNoOp
	RasterNor
	RasterEquiv
	RasterSrcInvert
	RasterOrInvert
	RasterNand
	RasterOr
	RasterSet
)

var rasterOpNames = [...]string{
	RasterClear:      "clear",
	RasterXor:        "xor",
	RasterInvert:     "invert",
	RasterOrReverse:  "or-reverse",
	RasterAndReverse: "and-reverse",
	RasterCopy:       "copy",
	RasterAnd:        "and",
	RasterAndInvert:  "and-invert",
	RasterNoOp:       "no-op",
	RasterNor:        "nor",
	RasterEquiv:      "equiv",
	RasterSrcInvert:  "src-invert",
	RasterOrInvert:   "or-invert",
	RasterNand:       "nand",
	RasterOr:         "or",
	RasterSet:        "set",
}

// String returns the operation name.
func (op RasterOp) String() string {
	if int(op) < len(rasterOpNames) {
		return rasterOpNames[op]
	}
	return "unknown"
}

// CompositionMode returns the backend composition mode implementing op,
// or backend.CompositionInvalid when no Porter-Duff operator matches.
func (op RasterOp) CompositionMode() backend.CompositionMode {
	switch op {
	case RasterCopy:
		return backend.CompositionOver
	case RasterOr:
		return backend.CompositionAdd
	case RasterNoOp:
		return backend.CompositionDest
	case RasterClear:
		return backend.CompositionClear
	case RasterXor:
		return backend.CompositionXor
	default:
		return backend.CompositionInvalid
	}
}
