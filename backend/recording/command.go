// Package recording is a backend that records every call it receives as
// a typed command instead of drawing.
//
// Commands are plain structs, so a recording can be inspected in tests
// and replayed onto any other backend:
//
//	rec := recording.NewRecorder(640, 480)
//	dc := gcdc.NewFromContext(rec)
//	dc.DrawRectangle(10, 10, 50, 30)
//
//	for _, cmd := range rec.CommandsOfType(recording.CmdDrawRectangle) {
//		fmt.Printf("%+v\n", cmd)
//	}
//	rec.Playback(rasterCtx)
//
// Besides recording, the Recorder keeps the transform stack and an
// axis-aligned device clip rectangle, so Transform and ClipBox answer
// like a real backend would.
package recording

import (
	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdPushState CommandType = iota
	CmdPopState
	CmdClip
	CmdClipRegion
	CmdResetClip
	CmdSetTransform
	CmdConcatTransform
	CmdSetCompositionMode
	CmdSetAntialiasMode

	// Attribute commands
	CmdSetPen
	CmdSetBrush
	CmdSetFont

	// Drawing commands
	CmdStrokePath
	CmdFillPath
	CmdDrawPath
	CmdStrokeLine
	CmdStrokeLines
	CmdDrawLines
	CmdDrawRectangle
	CmdDrawRoundedRectangle
	CmdDrawEllipse
	CmdDrawBitmap
	CmdDrawText

	// Output commands
	CmdFlush
	CmdStartPage
	CmdEndPage
)

var commandTypeNames = [...]string{
	CmdPushState:            "PushState",
	CmdPopState:             "PopState",
	CmdClip:                 "Clip",
	CmdClipRegion:           "ClipRegion",
	CmdResetClip:            "ResetClip",
	CmdSetTransform:         "SetTransform",
	CmdConcatTransform:      "ConcatTransform",
	CmdSetCompositionMode:   "SetCompositionMode",
	CmdSetAntialiasMode:     "SetAntialiasMode",
	CmdSetPen:               "SetPen",
	CmdSetBrush:             "SetBrush",
	CmdSetFont:              "SetFont",
	CmdStrokePath:           "StrokePath",
	CmdFillPath:             "FillPath",
	CmdDrawPath:             "DrawPath",
	CmdStrokeLine:           "StrokeLine",
	CmdStrokeLines:          "StrokeLines",
	CmdDrawLines:            "DrawLines",
	CmdDrawRectangle:        "DrawRectangle",
	CmdDrawRoundedRectangle: "DrawRoundedRectangle",
	CmdDrawEllipse:          "DrawEllipse",
	CmdDrawBitmap:           "DrawBitmap",
	CmdDrawText:             "DrawText",
	CmdFlush:                "Flush",
	CmdStartPage:            "StartPage",
	CmdEndPage:              "EndPage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDrawing reports whether commands of this type put pixels on the
// surface.
func (c CommandType) IsDrawing() bool {
	return c >= CmdStrokePath && c <= CmdDrawText
}

// Command is implemented by all recorded commands.
type Command interface {
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// PushStateCommand saves the backend state.
type PushStateCommand struct{}

// Type implements Command.
func (PushStateCommand) Type() CommandType { return CmdPushState }

// PopStateCommand restores the last saved state.
type PopStateCommand struct{}

// Type implements Command.
func (PopStateCommand) Type() CommandType { return CmdPopState }

// ClipCommand intersects the clip with a user-space rectangle.
type ClipCommand struct {
	X, Y, W, H float64
	// Transform is the user-to-device transform at the time of the call.
	Transform affine.Matrix
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

// ClipRegionCommand intersects the clip with a region.
type ClipRegionCommand struct {
	Region    backend.Region
	Transform affine.Matrix
}

// Type implements Command.
func (ClipRegionCommand) Type() CommandType { return CmdClipRegion }

// ResetClipCommand removes all clipping.
type ResetClipCommand struct{}

// Type implements Command.
func (ResetClipCommand) Type() CommandType { return CmdResetClip }

// SetTransformCommand replaces the transform.
type SetTransformCommand struct {
	Matrix affine.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// ConcatTransformCommand prepends a transform.
type ConcatTransformCommand struct {
	Matrix affine.Matrix
}

// Type implements Command.
func (ConcatTransformCommand) Type() CommandType { return CmdConcatTransform }

// SetCompositionModeCommand changes the composition mode.
type SetCompositionModeCommand struct {
	Mode backend.CompositionMode
}

// Type implements Command.
func (SetCompositionModeCommand) Type() CommandType { return CmdSetCompositionMode }

// SetAntialiasModeCommand changes the antialias mode.
type SetAntialiasModeCommand struct {
	Mode backend.AntialiasMode
}

// Type implements Command.
func (SetAntialiasModeCommand) Type() CommandType { return CmdSetAntialiasMode }

// --------------------------------------------------------------------------
// Attribute Commands
// --------------------------------------------------------------------------

// SetPenCommand sets the outline pen.
type SetPenCommand struct {
	Pen paint.Pen
}

// Type implements Command.
func (SetPenCommand) Type() CommandType { return CmdSetPen }

// SetBrushCommand sets the fill brush.
type SetBrushCommand struct {
	Brush paint.Brush
}

// Type implements Command.
func (SetBrushCommand) Type() CommandType { return CmdSetBrush }

// SetFontCommand sets the text font and colour.
type SetFontCommand struct {
	Font  paint.Font
	Color paint.Color
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// PathCommand strokes, fills or draws a path. Kind tells which.
type PathCommand struct {
	Kind      CommandType
	Path      *backend.Path
	Rule      backend.FillRule
	Transform affine.Matrix
}

// Type implements Command.
func (c PathCommand) Type() CommandType { return c.Kind }

// StrokeLineCommand strokes a single segment.
type StrokeLineCommand struct {
	X1, Y1, X2, Y2 float64
	Transform      affine.Matrix
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// LinesCommand strokes a polyline (CmdStrokeLines) or draws a polygon
// (CmdDrawLines).
type LinesCommand struct {
	Kind      CommandType
	Points    []affine.Point2D
	Rule      backend.FillRule
	Transform affine.Matrix
}

// Type implements Command.
func (c LinesCommand) Type() CommandType { return c.Kind }

// ShapeCommand draws a rectangle, rounded rectangle or ellipse. Radius
// is only used by rounded rectangles.
type ShapeCommand struct {
	Kind       CommandType
	X, Y, W, H float64
	Radius     float64
	Transform  affine.Matrix
}

// Type implements Command.
func (c ShapeCommand) Type() CommandType { return c.Kind }

// DrawBitmapCommand draws a bitmap stretched over a rectangle.
type DrawBitmapCommand struct {
	Bitmap     *paint.Bitmap
	X, Y, W, H float64
	Transform  affine.Matrix
}

// Type implements Command.
func (DrawBitmapCommand) Type() CommandType { return CmdDrawBitmap }

// DrawTextCommand draws one line of text.
type DrawTextCommand struct {
	Text       string
	X, Y       float64
	Angle      float64
	Background *paint.Brush
	// Mode is the composition mode in effect when the text was drawn.
	Mode      backend.CompositionMode
	Transform affine.Matrix
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// --------------------------------------------------------------------------
// Output Commands
// --------------------------------------------------------------------------

// FlushCommand marks a Flush call.
type FlushCommand struct{}

// Type implements Command.
func (FlushCommand) Type() CommandType { return CmdFlush }

// StartPageCommand starts a new page.
type StartPageCommand struct {
	Width, Height float64
}

// Type implements Command.
func (StartPageCommand) Type() CommandType { return CmdStartPage }

// EndPageCommand finishes the current page.
type EndPageCommand struct{}

// Type implements Command.
func (EndPageCommand) Type() CommandType { return CmdEndPage }
