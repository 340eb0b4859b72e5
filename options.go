package gcdc

import (
	"image"

	"github.com/gogpu/gcdc/paint"
)

// Option configures a GCDC during creation.
//
// Example:
//
//	dc := gcdc.New(r, img,
//		gcdc.WithPen(paint.NewPen(paint.Blue, 2)),
//		gcdc.WithMapMode(gcdc.MapPoints),
//	)
type Option func(*options)

// options holds the initial state of a GCDC. Attributes are pushed to
// the backend when it is attached; map mode and origin only dirty the
// transform.
type options struct {
	pen        paint.Pen
	brush      paint.Brush
	background paint.Brush
	font       paint.Font
	textFg     paint.Color
	textBg     paint.Color
	mapMode    MapMode
	origin     image.Point
}

// defaultOptions returns the attributes of a freshly created device
// context: a black one pixel pen, a white brush and background, black
// text on white and the text map mode.
func defaultOptions() options {
	return options{
		pen:        paint.NewPen(paint.Black, 1),
		brush:      paint.NewBrush(paint.White),
		background: paint.NewBrush(paint.White),
		font:       paint.NewFont(10, paint.FamilyDefault),
		textFg:     paint.Black,
		textBg:     paint.White,
		mapMode:    MapText,
	}
}

// WithPen sets the initial outline pen.
func WithPen(p paint.Pen) Option {
	return func(o *options) {
		o.pen = p
	}
}

// WithBrush sets the initial fill brush.
func WithBrush(b paint.Brush) Option {
	return func(o *options) {
		o.brush = b
	}
}

// WithBackground sets the brush used by Clear.
func WithBackground(b paint.Brush) Option {
	return func(o *options) {
		o.background = b
	}
}

// WithFont sets the initial text font.
func WithFont(f paint.Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithTextForeground sets the initial text colour. Invalid colours are
// ignored.
func WithTextForeground(c paint.Color) Option {
	return func(o *options) {
		if c.IsOk() {
			o.textFg = c
		}
	}
}

// WithTextBackground sets the colour behind text drawn in solid
// background mode.
func WithTextBackground(c paint.Color) Option {
	return func(o *options) {
		o.textBg = c
	}
}

// WithMapMode sets the initial mapping mode.
func WithMapMode(m MapMode) Option {
	return func(o *options) {
		o.mapMode = m
	}
}

// WithOrigin sets the initial device origin.
func WithOrigin(p image.Point) Option {
	return func(o *options) {
		o.origin = p
	}
}
