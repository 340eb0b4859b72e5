package recording

import (
	"github.com/gogpu/gcdc/backend"
)

// Playback replays the recorded commands onto dst in order. Drawing
// commands are replayed under the transform they were recorded with.
// Flush and page commands are forwarded; dst is not closed.
func (r *Recorder) Playback(dst backend.Context) error {
	pager, _ := dst.(backend.Pager)
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case PushStateCommand:
			dst.PushState()
		case PopStateCommand:
			dst.PopState()
		case ClipCommand:
			dst.SetTransform(c.Transform)
			dst.Clip(c.X, c.Y, c.W, c.H)
		case ClipRegionCommand:
			dst.SetTransform(c.Transform)
			dst.ClipRegion(c.Region)
		case ResetClipCommand:
			dst.ResetClip()
		case SetTransformCommand:
			dst.SetTransform(c.Matrix)
		case ConcatTransformCommand:
			dst.ConcatTransform(c.Matrix)
		case SetCompositionModeCommand:
			dst.SetCompositionMode(c.Mode)
		case SetAntialiasModeCommand:
			dst.SetAntialiasMode(c.Mode)
		case SetPenCommand:
			dst.SetPen(c.Pen)
		case SetBrushCommand:
			dst.SetBrush(c.Brush)
		case SetFontCommand:
			dst.SetFont(c.Font, c.Color)
		case PathCommand:
			dst.SetTransform(c.Transform)
			switch c.Kind {
			case CmdStrokePath:
				dst.StrokePath(c.Path)
			case CmdFillPath:
				dst.FillPath(c.Path, c.Rule)
			default:
				dst.DrawPath(c.Path, c.Rule)
			}
		case StrokeLineCommand:
			dst.SetTransform(c.Transform)
			dst.StrokeLine(c.X1, c.Y1, c.X2, c.Y2)
		case LinesCommand:
			dst.SetTransform(c.Transform)
			if c.Kind == CmdStrokeLines {
				dst.StrokeLines(c.Points)
			} else {
				dst.DrawLines(c.Points, c.Rule)
			}
		case ShapeCommand:
			dst.SetTransform(c.Transform)
			switch c.Kind {
			case CmdDrawRectangle:
				dst.DrawRectangle(c.X, c.Y, c.W, c.H)
			case CmdDrawRoundedRectangle:
				dst.DrawRoundedRectangle(c.X, c.Y, c.W, c.H, c.Radius)
			default:
				dst.DrawEllipse(c.X, c.Y, c.W, c.H)
			}
		case DrawBitmapCommand:
			dst.SetTransform(c.Transform)
			dst.DrawBitmap(c.Bitmap, c.X, c.Y, c.W, c.H)
		case DrawTextCommand:
			dst.SetTransform(c.Transform)
			prev := dst.CompositionMode()
			dst.SetCompositionMode(c.Mode)
			dst.DrawText(c.Text, c.X, c.Y, c.Angle, c.Background)
			dst.SetCompositionMode(prev)
		case FlushCommand:
			dst.Flush()
		case StartPageCommand:
			if pager != nil {
				if err := pager.StartPage(c.Width, c.Height); err != nil {
					return err
				}
			}
		case EndPageCommand:
			if pager != nil {
				if err := pager.EndPage(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
