package gcdc

import (
	"image"
	"math"
	"strings"

	"github.com/gogpu/gcdc/backend"
)

// Alignment positions a label inside its rectangle. Horizontal and
// vertical flags combine with |; the zero value is top-left.
type Alignment uint8

const (
	AlignLeft             Alignment = 0
	AlignTop              Alignment = 0
	AlignRight            Alignment = 1 << 0
	AlignCenterHorizontal Alignment = 1 << 1
	AlignBottom           Alignment = 1 << 2
	AlignCenterVertical   Alignment = 1 << 3
	AlignCenter                     = AlignCenterHorizontal | AlignCenterVertical
)

// DrawText draws s with its top-left corner at (x, y). Text with
// newlines is drawn as a left-aligned label. The logical function does
// not apply to text.
func (d *GCDC) DrawText(s string, x, y int) {
	if strings.Contains(s, "\n") {
		d.DrawLabel(s, image.Rect(x, y, x, y), AlignLeft|AlignTop)
		return
	}
	if !d.drawable() || s == "" {
		return
	}
	d.withTextMode(func() {
		d.ctx.DrawText(s, float64(x), float64(y), 0, d.textBackgroundBrush())
	})
	w, h, _, _ := d.TextExtent(s)
	d.CalcBoundingBox(x, y)
	d.CalcBoundingBox(x+w, y+h)
}

// DrawRotatedText draws s rotated by angle degrees counter-clockwise
// around (x, y). Each line of multi-line text starts one line height
// further along the rotated vertical axis.
func (d *GCDC) DrawRotatedText(s string, x, y int, angle float64) {
	if !d.drawable() || s == "" {
		return
	}
	if angle == 0 && d.font.IsOk() {
		d.DrawText(s, x, y)
		return
	}
	w, h, lineHeight := d.MultiLineTextExtent(s)
	rad := degToRad(angle)
	sin, cos := math.Sincos(rad)
	dx, dy := float64(lineHeight)*sin, float64(lineHeight)*cos

	bg := d.textBackgroundBrush()
	d.withTextMode(func() {
		for i, line := range strings.Split(s, "\n") {
			// Each origin is computed from the line index so rounding
			// does not accumulate.
			xx := x + int(math.Round(float64(i)*dx))
			yy := y + int(math.Round(float64(i)*dy))
			d.ctx.DrawText(line, float64(xx), float64(yy), rad, bg)
		}
	})

	fw, fh := float64(w), float64(h)
	d.CalcBoundingBox(x, y)
	d.CalcBoundingBox(x+int(fw*cos), y-int(fw*sin))
	bx, by := x+int(fh*sin), y+int(fh*cos)
	d.CalcBoundingBox(bx, by)
	d.CalcBoundingBox(bx+int(fw*cos), by-int(fw*sin))
}

// withTextMode runs fn with the backend in source-over mode.
func (d *GCDC) withTextMode(fn func()) {
	prev := d.ctx.CompositionMode()
	d.ctx.SetCompositionMode(backend.CompositionOver)
	fn()
	d.ctx.SetCompositionMode(prev)
}

// DrawLabel draws multi-line text aligned inside r and returns the
// rectangle covered by the text.
func (d *GCDC) DrawLabel(s string, r image.Rectangle, align Alignment) image.Rectangle {
	if !d.drawable() {
		return image.Rectangle{}
	}
	width, height, lineHeight := d.MultiLineTextExtent(s)

	var x, y int
	switch {
	case align&AlignRight != 0:
		x = r.Max.X - 1 - width
	case align&AlignCenterHorizontal != 0:
		x = (r.Min.X + r.Max.X - width) / 2
	default:
		x = r.Min.X
	}
	switch {
	case align&AlignBottom != 0:
		y = r.Max.Y - 1 - height
	case align&AlignCenterVertical != 0:
		y = (r.Min.Y + r.Max.Y - height) / 2
	default:
		y = r.Min.Y
	}

	x0, y0 := x, y
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			xs := x
			if align&(AlignRight|AlignCenterHorizontal) != 0 {
				lw, _, _, _ := d.TextExtent(line)
				if align&AlignRight != 0 {
					xs += width - lw
				} else {
					xs += (width - lw) / 2
				}
			}
			d.DrawText(line, xs, y)
		}
		y += lineHeight
	}

	d.CalcBoundingBox(x0, y0)
	d.CalcBoundingBox(x0+width, y0+height)
	return image.Rect(x0, y0, x0+width, y0+height)
}

// TextExtent measures s in the current font, in logical units.
func (d *GCDC) TextExtent(s string) (w, h, descent, externalLeading int) {
	if !d.ready() {
		return 0, 0, 0, 0
	}
	fw, fh, fd, fl := d.ctx.TextExtent(s)
	return roundInt(fw), roundInt(fh), roundInt(fd), roundInt(fl)
}

// MultiLineTextExtent measures text that may contain newlines. Empty
// lines are as high as a line holding "W". lineHeight is the height of
// the last line.
func (d *GCDC) MultiLineTextExtent(s string) (w, h, lineHeight int) {
	if !d.ready() {
		return 0, 0, 0
	}
	emptyHeight := -1
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			if emptyHeight < 0 {
				_, emptyHeight, _, _ = d.TextExtent("W")
			}
			lineHeight = emptyHeight
		} else {
			var lw int
			lw, lineHeight, _, _ = d.TextExtent(line)
			w = max(w, lw)
		}
		h += lineHeight
	}
	return w, h, lineHeight
}

// PartialTextExtents returns for each rune of s the width of the text up
// to and including it.
func (d *GCDC) PartialTextExtents(s string) []int {
	if !d.ready() {
		return nil
	}
	widths := d.ctx.PartialTextExtents(s)
	out := make([]int, len(widths))
	for i, w := range widths {
		out[i] = roundInt(w)
	}
	return out
}

// CharHeight returns the height of a line of text.
func (d *GCDC) CharHeight() int {
	_, h, _, _ := d.TextExtent("g")
	return h
}

// CharWidth returns the width of an average character.
func (d *GCDC) CharWidth() int {
	w, _, _, _ := d.TextExtent("g")
	return w
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
