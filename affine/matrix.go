// Package affine implements the 2x3 affine matrix used by the device
// context to map logical coordinates onto backend coordinates.
//
// Matrices use the row-vector convention: a point p maps to p·M + t,
// where M is the linear part (M11, M12, M21, M22) and t is the
// translation (Tx, Ty):
//
//	x' = x*M11 + y*M21 + Tx
//	y' = x*M12 + y*M22 + Ty
//
// Translate, Scale and Rotate prepend their operation, so the most
// recently added operation is applied to a point first. Matrix is a plain
// value: copies are independent.
package affine

import "math"

// Matrix2D is the linear part of an affine matrix.
type Matrix2D struct {
	M11, M12 float64
	M21, M22 float64
}

// Point2D is a point or a distance vector in floating point coordinates.
type Point2D struct {
	X, Y float64
}

// Pt is shorthand for Point2D{x, y}.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Matrix is a 2D affine transformation.
//
// The zero Matrix is degenerate (all coefficients zero). Use Identity or
// New to obtain a usable starting value.
type Matrix struct {
	M11, M12 float64
	M21, M22 float64
	Tx, Ty   float64
}

// Identity returns the identity matrix (1, 0, 0, 1, 0, 0).
func Identity() Matrix {
	return Matrix{M11: 1, M22: 1}
}

// New returns a matrix with the given coefficients.
func New(m11, m12, m21, m22, tx, ty float64) Matrix {
	return Matrix{M11: m11, M12: m12, M21: m21, M22: m22, Tx: tx, Ty: ty}
}

// NewTranslation returns a pure translation by (dx, dy).
func NewTranslation(dx, dy float64) Matrix {
	m := Identity()
	m.Tx, m.Ty = dx, dy
	return m
}

// NewScale returns a pure scale by (sx, sy).
func NewScale(sx, sy float64) Matrix {
	return Matrix{M11: sx, M22: sy}
}

// NewRotation returns a clockwise rotation (y axis pointing down) by
// the given angle in radians.
func NewRotation(radians float64) Matrix {
	m := Identity()
	m.Rotate(radians)
	return m
}

// Set replaces the transformation with the given linear part and
// translation.
func (m *Matrix) Set(mat Matrix2D, tr Point2D) {
	m.M11, m.M12 = mat.M11, mat.M12
	m.M21, m.M22 = mat.M21, mat.M22
	m.Tx, m.Ty = tr.X, tr.Y
}

// Get returns the linear part and the translation.
func (m Matrix) Get() (Matrix2D, Point2D) {
	return Matrix2D{M11: m.M11, M12: m.M12, M21: m.M21, M22: m.M22}, Point2D{X: m.Tx, Y: m.Ty}
}

// Concat replaces m with the product that first applies other and then
// the original m. In other words, other becomes the innermost
// transformation.
func (m *Matrix) Concat(other Matrix) {
	tx := m.Tx + other.Tx*m.M11 + other.Ty*m.M21
	ty := m.Ty + other.Tx*m.M12 + other.Ty*m.M22
	m11 := other.M11*m.M11 + other.M12*m.M21
	m12 := other.M11*m.M12 + other.M12*m.M22
	m21 := other.M21*m.M11 + other.M22*m.M21
	m22 := other.M21*m.M12 + other.M22*m.M22

	m.M11, m.M12 = m11, m12
	m.M21, m.M22 = m21, m22
	m.Tx, m.Ty = tx, ty
}

// Determinant returns M11*M22 - M12*M21.
func (m Matrix) Determinant() float64 {
	return m.M11*m.M22 - m.M12*m.M21
}

// IsInvertible reports whether Invert would succeed.
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Invert replaces m with its inverse. If the determinant is exactly zero
// the matrix is left unchanged and Invert returns false.
func (m *Matrix) Invert() bool {
	det := m.Determinant()
	if det == 0 {
		return false
	}

	tx := (m.M21*m.Ty - m.M22*m.Tx) / det
	ty := (-m.M11*m.Ty + m.M12*m.Tx) / det
	m11 := m.M22 / det
	m12 := -m.M12 / det
	m21 := -m.M21 / det
	m22 := m.M11 / det

	m.M11, m.M12 = m11, m12
	m.M21, m.M22 = m21, m22
	m.Tx, m.Ty = tx, ty
	return true
}

// IsIdentity reports whether all six coefficients equal the identity
// values exactly.
func (m Matrix) IsIdentity() bool {
	return m.M11 == 1 && m.M12 == 0 &&
		m.M21 == 0 && m.M22 == 1 &&
		m.Tx == 0 && m.Ty == 0
}

// Equal reports whether both matrices have identical coefficients.
func (m Matrix) Equal(other Matrix) bool {
	return m == other
}

// Translate prepends a translation by (dx, dy), expressed in the frame
// of the current linear part.
func (m *Matrix) Translate(dx, dy float64) {
	m.Tx += m.M11*dx + m.M21*dy
	m.Ty += m.M12*dx + m.M22*dy
}

// Scale prepends a scale by (sx, sy).
func (m *Matrix) Scale(sx, sy float64) {
	m.M11 *= sx
	m.M12 *= sx
	m.M21 *= sy
	m.M22 *= sy
}

// Rotate prepends a clockwise rotation (y axis pointing down) by the
// given angle in radians.
func (m *Matrix) Rotate(radians float64) {
	c := math.Cos(radians)
	s := math.Sin(radians)

	m11 := c*m.M11 + s*m.M21
	m12 := c*m.M12 + s*m.M22
	m21 := c*m.M21 - s*m.M11
	m22 := c*m.M22 - s*m.M12

	m.M11, m.M12 = m11, m12
	m.M21, m.M22 = m21, m22
}

// TransformPoint maps a point, including the translation.
func (m Matrix) TransformPoint(p Point2D) Point2D {
	if m.IsIdentity() {
		return p
	}
	return Point2D{
		X: p.X*m.M11 + p.Y*m.M21 + m.Tx,
		Y: p.X*m.M12 + p.Y*m.M22 + m.Ty,
	}
}

// TransformDistance maps a vector: the translation is ignored.
func (m Matrix) TransformDistance(p Point2D) Point2D {
	if m.IsIdentity() {
		return p
	}
	return Point2D{
		X: p.X*m.M11 + p.Y*m.M21,
		Y: p.X*m.M12 + p.Y*m.M22,
	}
}

// ScaleFactor returns the larger of the two axis scale magnitudes. It is
// used to convert stroke widths and tolerances between spaces.
func (m Matrix) ScaleFactor() float64 {
	sx := math.Hypot(m.M11, m.M12)
	sy := math.Hypot(m.M21, m.M22)
	if sx > sy {
		return sx
	}
	return sy
}
