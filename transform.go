package gcdc

import (
	"math"

	"github.com/gogpu/gcdc/affine"
)

// RecomputeTransform rebuilds the composed transform from the origins,
// scales, axis signs and extended transform, and installs it on the
// backend on top of the original transform.
//
// If the composed transform is singular the previous inverse is kept, so
// DeviceToLogical keeps answering in the last usable coordinate system.
// SetTransformMatrix refuses matrices that would get here.
func (d *GCDC) RecomputeTransform() {
	d.dirty = false
	if !d.ok {
		return
	}
	m := d.basicTransform()
	m.Concat(d.ext)

	d.ctx.SetTransform(d.original)
	d.ctx.ConcatTransform(m)
	d.current = m

	inv := m
	if inv.Invert() {
		d.inverse = inv
	} else {
		Logger().Debug("gcdc: composed transform is singular", "matrix", m)
	}
	d.clipValid = false
}

// basicTransform returns the origin and scale part of the pipeline.
func (d *GCDC) basicTransform() affine.Matrix {
	m := affine.Identity()
	m.Translate(
		float64(d.deviceOriginX)-float64(d.logicalOriginX)*d.signX*d.scaleX,
		float64(d.deviceOriginY)-float64(d.logicalOriginY)*d.signY*d.scaleY,
	)
	m.Scale(d.scaleX*d.signX, d.scaleY*d.signY)
	return m
}

func (d *GCDC) ensureTransform() {
	if d.dirty {
		d.RecomputeTransform()
	}
}

func (d *GCDC) invalidate() {
	d.scaleX = d.logicalScaleX * d.userScaleX
	d.scaleY = d.logicalScaleY * d.userScaleY
	d.dirty = true
}

// SetDeviceOrigin sets the device position of the logical origin.
func (d *GCDC) SetDeviceOrigin(x, y int) {
	d.deviceOriginX, d.deviceOriginY = x, y
	d.invalidate()
}

// DeviceOrigin returns the device origin.
func (d *GCDC) DeviceOrigin() (x, y int) {
	return d.deviceOriginX, d.deviceOriginY
}

// SetLogicalOrigin sets the logical point mapped to the device origin.
func (d *GCDC) SetLogicalOrigin(x, y int) {
	d.logicalOriginX, d.logicalOriginY = x, y
	d.invalidate()
}

// LogicalOrigin returns the logical origin.
func (d *GCDC) LogicalOrigin() (x, y int) {
	return d.logicalOriginX, d.logicalOriginY
}

// SetUserScale sets the user part of the scale.
func (d *GCDC) SetUserScale(x, y float64) {
	d.userScaleX, d.userScaleY = x, y
	d.invalidate()
}

// UserScale returns the user scale.
func (d *GCDC) UserScale() (x, y float64) {
	return d.userScaleX, d.userScaleY
}

// SetLogicalScale sets the logical part of the scale.
func (d *GCDC) SetLogicalScale(x, y float64) {
	d.logicalScaleX, d.logicalScaleY = x, y
	d.invalidate()
}

// LogicalScale returns the logical scale.
func (d *GCDC) LogicalScale() (x, y float64) {
	return d.logicalScaleX, d.logicalScaleY
}

// SetAxisOrientation sets the direction of the logical axes. By default
// x grows to the right and y grows down.
func (d *GCDC) SetAxisOrientation(xLeftRight, yBottomUp bool) {
	d.signX, d.signY = 1, 1
	if !xLeftRight {
		d.signX = -1
	}
	if yBottomUp {
		d.signY = -1
	}
	d.invalidate()
}

// SetMapMode sets the logical unit. The logical scale is derived from
// the backend resolution; without a backend it is applied once one is
// attached.
func (d *GCDC) SetMapMode(m MapMode) {
	d.mapMode = m
	d.applyMapMode()
}

// MapMode returns the mapping mode.
func (d *GCDC) MapMode() MapMode {
	return d.mapMode
}

func (d *GCDC) applyMapMode() {
	dpiX, dpiY := 72.0, 72.0
	if d.ok {
		dpiX, dpiY = d.ctx.DPI()
	}
	d.SetLogicalScale(d.mapMode.logicalScale(dpiX, dpiY))
}

// SetTransformMatrix sets the extended transform, applied to logical
// coordinates before the origin and scale. It returns false and keeps
// the previous transform if m would make the composed transform
// singular.
func (d *GCDC) SetTransformMatrix(m affine.Matrix) bool {
	if !d.ok {
		return false
	}
	d.scaleX = d.logicalScaleX * d.userScaleX
	d.scaleY = d.logicalScaleY * d.userScaleY
	composed := d.basicTransform()
	composed.Concat(m)
	if !composed.IsInvertible() {
		Logger().Debug("gcdc: rejecting singular transform matrix", "matrix", m)
		return false
	}
	d.ext = m
	d.dirty = true
	return true
}

// TransformMatrix returns the extended transform.
func (d *GCDC) TransformMatrix() affine.Matrix {
	return d.ext
}

// ResetTransformMatrix removes the extended transform.
func (d *GCDC) ResetTransformMatrix() {
	d.ext = affine.Identity()
	d.dirty = true
}

// CanUseTransformMatrix reports whether SetTransformMatrix is supported.
// It always is.
func (d *GCDC) CanUseTransformMatrix() bool {
	return true
}

// DeviceToLogical maps a device point to logical coordinates.
func (d *GCDC) DeviceToLogical(x, y int) (int, int) {
	d.ensureTransform()
	return round(d.inverse.TransformPoint(affine.Pt(float64(x), float64(y))))
}

// LogicalToDevice maps a logical point to device coordinates.
func (d *GCDC) LogicalToDevice(x, y int) (int, int) {
	d.ensureTransform()
	return round(d.current.TransformPoint(affine.Pt(float64(x), float64(y))))
}

// DeviceToLogicalRel maps a device distance to logical units.
func (d *GCDC) DeviceToLogicalRel(dx, dy int) (int, int) {
	d.ensureTransform()
	return round(d.inverse.TransformDistance(affine.Pt(float64(dx), float64(dy))))
}

// LogicalToDeviceRel maps a logical distance to device units.
func (d *GCDC) LogicalToDeviceRel(dx, dy int) (int, int) {
	d.ensureTransform()
	return round(d.current.TransformDistance(affine.Pt(float64(dx), float64(dy))))
}

func round(p affine.Point2D) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
