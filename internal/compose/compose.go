// Package compose implements the pixel arithmetic behind composition
// modes.
//
// All operations work on premultiplied RGBA8 values. Coverage (from
// antialiasing and clipping) is applied by interpolating between the
// destination and the fully covered result, so operators that modify
// the destination outside the source shape (clear, source, in, ...) only
// do so where the primitive actually covers pixels.
package compose

import "github.com/gogpu/gcdc/backend"

// Func combines a premultiplied source pixel with a premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// Lookup returns the function for mode, or false if the mode has no
// pixel implementation.
func Lookup(mode backend.CompositionMode) (Func, bool) {
	switch mode {
	case backend.CompositionClear:
		return clear, true
	case backend.CompositionSource:
		return source, true
	case backend.CompositionOver:
		return over, true
	case backend.CompositionIn:
		return in, true
	case backend.CompositionOut:
		return out, true
	case backend.CompositionAtop:
		return atop, true
	case backend.CompositionDest:
		return dest, true
	case backend.CompositionDestOver:
		return destOver, true
	case backend.CompositionDestIn:
		return destIn, true
	case backend.CompositionDestOut:
		return destOut, true
	case backend.CompositionDestAtop:
		return destAtop, true
	case backend.CompositionXor:
		return xor, true
	case backend.CompositionAdd:
		return add, true
	case backend.CompositionDiff:
		return diff, true
	default:
		return nil, false
	}
}

// Apply combines src with dst under fn and then blends the result with
// dst by coverage (0-255).
func Apply(fn Func, sr, sg, sb, sa, dr, dg, db, da, coverage uint8) (r, g, b, a uint8) {
	if coverage == 0 {
		return dr, dg, db, da
	}
	r, g, b, a = fn(sr, sg, sb, sa, dr, dg, db, da)
	if coverage == 255 {
		return r, g, b, a
	}
	inv := 255 - coverage
	return addSat(mulDiv255(r, coverage), mulDiv255(dr, inv)),
		addSat(mulDiv255(g, coverage), mulDiv255(dg, inv)),
		addSat(mulDiv255(b, coverage), mulDiv255(db, inv)),
		addSat(mulDiv255(a, coverage), mulDiv255(da, inv))
}

func clear(_, _, _, _, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func source(sr, sg, sb, sa, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func dest(_, _, _, _, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

// S + D*(1-Sa)
func over(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return addSat(sr, mulDiv255(dr, inv)),
		addSat(sg, mulDiv255(dg, inv)),
		addSat(sb, mulDiv255(db, inv)),
		addSat(sa, mulDiv255(da, inv))
}

// S*(1-Da) + D
func destOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return over(dr, dg, db, da, sr, sg, sb, sa)
}

// S*Da
func in(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// D*Sa
func destIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return in(dr, dg, db, da, sr, sg, sb, sa)
}

// S*(1-Da)
func out(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return mulDiv255(sr, inv), mulDiv255(sg, inv), mulDiv255(sb, inv), mulDiv255(sa, inv)
}

// D*(1-Sa)
func destOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return out(dr, dg, db, da, sr, sg, sb, sa)
}

// S*Da + D*(1-Sa), alpha stays Da
func atop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return addSat(mulDiv255(sr, da), mulDiv255(dr, inv)),
		addSat(mulDiv255(sg, da), mulDiv255(dg, inv)),
		addSat(mulDiv255(sb, da), mulDiv255(db, inv)),
		da
}

// S*(1-Da) + D*Sa, alpha becomes Sa
func destAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return atop(dr, dg, db, da, sr, sg, sb, sa)
}

// S*(1-Da) + D*(1-Sa)
func xor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	invSa := 255 - sa
	return addSat(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addSat(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addSat(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addSat(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// min(S + D, 1)
func add(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return addSat(sr, dr), addSat(sg, dg), addSat(sb, db), addSat(sa, da)
}

// |S - D| on colour, union on alpha
func diff(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return absDiff(sr, dr), absDiff(sg, dg), absDiff(sb, db),
		addSat(sa, mulDiv255(da, 255-sa))
}

// mulDiv255 returns a*b/255 rounded to nearest.
func mulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
