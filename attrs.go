package gcdc

import (
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// SetPen sets the pen used for outlines.
func (d *GCDC) SetPen(p paint.Pen) {
	d.pen = p
	if d.ok {
		d.ctx.SetPen(p)
	}
}

// Pen returns the current pen.
func (d *GCDC) Pen() paint.Pen {
	return d.pen
}

// SetBrush sets the brush used for fills.
func (d *GCDC) SetBrush(b paint.Brush) {
	d.brush = b
	if d.ok {
		d.ctx.SetBrush(b)
	}
}

// Brush returns the current brush.
func (d *GCDC) Brush() paint.Brush {
	return d.brush
}

// SetBackground sets the brush used by Clear.
func (d *GCDC) SetBackground(b paint.Brush) {
	d.background = b
}

// Background returns the background brush.
func (d *GCDC) Background() paint.Brush {
	return d.background
}

// SetBackgroundMode sets whether text is drawn over the text background
// colour.
func (d *GCDC) SetBackgroundMode(m BackgroundMode) {
	d.bgMode = m
}

// BackgroundMode returns the background mode.
func (d *GCDC) BackgroundMode() BackgroundMode {
	return d.bgMode
}

// SetFont sets the text font.
func (d *GCDC) SetFont(f paint.Font) {
	d.font = f
	if d.ok {
		d.ctx.SetFont(f, d.textFg)
	}
}

// Font returns the current font.
func (d *GCDC) Font() paint.Font {
	return d.font
}

// SetTextForeground sets the text colour. Invalid colours are ignored
// and the previous colour is kept.
func (d *GCDC) SetTextForeground(c paint.Color) {
	if !c.IsOk() {
		return
	}
	d.textFg = c
	if d.ok {
		d.ctx.SetFont(d.font, c)
	}
}

// TextForeground returns the text colour.
func (d *GCDC) TextForeground() paint.Color {
	return d.textFg
}

// SetTextBackground sets the colour behind text in solid background
// mode.
func (d *GCDC) SetTextBackground(c paint.Color) {
	d.textBg = c
}

// TextBackground returns the text background colour.
func (d *GCDC) TextBackground() paint.Color {
	return d.textBg
}

// textBackgroundBrush returns the brush to fill behind text, or nil when
// text is drawn on a transparent background.
func (d *GCDC) textBackgroundBrush() *paint.Brush {
	if d.bgMode != BackgroundSolid || !d.textBg.IsOk() {
		return nil
	}
	b := paint.NewBrush(d.textBg)
	return &b
}

// SetLogicalFunction sets the raster operation for subsequent drawing.
// Operations without a composition mode on the backend turn drawing
// into a no-op until another function is set. Xor also turns
// antialiasing off.
func (d *GCDC) SetLogicalFunction(op RasterOp) {
	d.logicalFunc = op
	if !d.ok {
		return
	}
	mode := op.CompositionMode()
	d.opSupported = mode != backend.CompositionInvalid
	if d.opSupported {
		d.opSupported = d.ctx.SetCompositionMode(mode)
	}
	if !d.opSupported {
		Logger().Debug("gcdc: unsupported logical function", "op", op)
	}
	if op == RasterXor {
		d.ctx.SetAntialiasMode(backend.AntialiasNone)
	} else {
		d.ctx.SetAntialiasMode(backend.AntialiasDefault)
	}
}

// LogicalFunction returns the raster operation.
func (d *GCDC) LogicalFunction() RasterOp {
	return d.logicalFunc
}
