// Package gcdc provides a device context that draws through a pluggable
// graphics backend.
//
// # Overview
//
// A GCDC takes drawing calls in logical coordinates, maps them through a
// coordinate pipeline (device origin, logical origin, user and logical
// scale, axis orientation and an optional extended affine transform)
// and forwards them to a backend.Context. Backends do the actual
// rasterizing; the bridge owns the coordinate math, clipping bookkeeping
// and the legacy device-context conventions (rectangle outline shrink,
// raster operations, point drawing, arc angles).
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gcdc"
//		"github.com/gogpu/gcdc/backend"
//		"github.com/gogpu/gcdc/backend/raster"
//	)
//
//	reg := backend.NewRegistry(raster.Name)
//	raster.Register(reg)
//	r, _ := reg.Default()
//
//	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
//	dc := gcdc.New(r, img)
//	defer dc.Close()
//
//	dc.SetBrush(paint.NewBrush(paint.Red))
//	dc.DrawRectangle(10, 10, 50, 30)
//
// # Coordinate System
//
// Logical coordinates are what drawing calls take. Device coordinates
// are what the backend receives before its own original transform:
//
//	device = deviceOrigin + (logical - logicalOrigin) * scale * sign
//
// composed with the extended transform, which applies to logical
// coordinates first. Scale is userScale * logicalScale; the logical scale
// is set by SetLogicalScale or derived from the map mode and the backend
// resolution. Angles taken by DrawEllipticArc and DrawRotatedText are in
// degrees, counter-clockwise.
//
// The transform is recomputed lazily: setters only mark it dirty and the
// next conversion, clip or drawing call rebuilds it from scratch.
//
// # Errors
//
// Drawing on a device context that is not ok is a silent no-op. So is
// drawing while the logical function has no composition mode on the
// backend. Blits report failure through their boolean result.
package gcdc

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
