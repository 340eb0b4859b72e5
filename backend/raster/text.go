package raster

import (
	"image"
	"math"
	"unicode"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

type faceKey struct {
	style fontStyle
	size  float64
}

var defaultFont = paint.NewFont(10, paint.FamilyDefault)

const (
	// faceSizeStep is the size granularity of cached faces, in points.
	faceSizeStep = 0.25
	// maxFaces bounds the face cache of one context.
	maxFaces = 32
)

// face returns a face for f rendered at scale times its nominal size.
// Sizes are rounded to faceSizeStep; when the cache is full it is
// emptied before the new face is added.
func (c *Context) face(f paint.Font, scale float64) font.Face {
	if !f.IsOk() {
		f = defaultFont
	}
	size := math.Max(math.Round(f.PointSize*scale/faceSizeStep)*faceSizeStep, faceSizeStep)
	key := faceKey{style: styleOf(f), size: size}
	if face, ok := c.faces[key]; ok {
		return face
	}
	if len(c.faces) >= maxFaces {
		c.dropFaces()
	}
	face, err := opentype.NewFace(c.r.fonts.ot[key.style], &opentype.FaceOptions{
		Size:    key.size,
		DPI:     c.r.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	c.faces[key] = face
	return face
}

// TextExtent implements backend.Context.
func (c *Context) TextExtent(s string) (w, h, descent, externalLeading float64) {
	face := c.face(c.st.font, 1)
	if face == nil {
		return 0, 0, 0, 0
	}
	m := face.Metrics()
	asc, desc := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	h = asc + desc
	if s != "" {
		w = fixedToFloat(font.MeasureString(face, s))
	}
	return w, h, desc, math.Max(0, fixedToFloat(m.Height)-h)
}

// PartialTextExtents implements backend.Context. Text in normalization
// form C is measured from HarfBuzz shaping so kerning is included; other
// text falls back to measuring each prefix.
func (c *Context) PartialTextExtents(s string) []float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	widths := make([]float64, len(runes))

	if norm.NFC.IsNormalString(s) {
		if adv := c.shapedAdvances(runes); adv != nil {
			sum := 0.0
			for i, a := range adv {
				sum += a
				widths[i] = sum
			}
			return widths
		}
	}

	face := c.face(c.st.font, 1)
	if face == nil {
		return widths
	}
	for i := range runes {
		widths[i] = fixedToFloat(font.MeasureString(face, string(runes[:i+1])))
	}
	return widths
}

// shapedAdvances returns the advance attributed to each rune. Runes that
// join an earlier rune's cluster get zero.
func (c *Context) shapedAdvances(runes []rune) []float64 {
	f := c.st.font
	if !f.IsOk() {
		f = defaultFont
	}
	gt, err := c.r.fonts.shapingFont(styleOf(f))
	if err != nil {
		return nil
	}
	if c.shaper == nil {
		c.shaper = &shaping.HarfbuzzShaper{}
	}

	ppem := f.PointSize * c.r.dpi / 72
	out := c.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(gt),
		Size:      fixed.Int26_6(ppem * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	adv := make([]float64, len(runes))
	for _, g := range out.Glyphs {
		if i := g.TextIndex(); i >= 0 && i < len(adv) {
			adv[i] += fixedToFloat(g.Advance)
		}
	}
	return adv
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

// DrawText implements backend.Context. Glyphs are rendered at device
// resolution into a mask, which is then mapped through the transform.
func (c *Context) DrawText(s string, x, y, angle float64, background *paint.Brush) {
	if c.closed || s == "" {
		return
	}
	sc := c.st.m.ScaleFactor()
	if sc <= 0 {
		return
	}
	face := c.face(c.st.font, sc)
	if face == nil {
		return
	}

	met := face.Metrics()
	asc := fixedToFloat(met.Ascent)
	desc := fixedToFloat(met.Descent)
	w := fixedToFloat(font.MeasureString(face, s))

	sin, cos := math.Sincos(angle)
	local := affine.New(cos, -sin, sin, cos, x, y)
	toDevice := c.st.m
	toDevice.Concat(local)

	if background != nil && !background.IsTransparent() {
		corners := []affine.Point2D{
			affine.Pt(0, 0), affine.Pt(w/sc, 0),
			affine.Pt(w/sc, (asc+desc)/sc), affine.Pt(0, (asc+desc)/sc),
		}
		for i, p := range corners {
			corners[i] = toDevice.TransformPoint(p)
		}
		c.fill([][]affine.Point2D{corners}, backend.FillWinding, solid(background.Color))
	}

	mask := image.NewAlpha(image.Rect(0, 0, int(math.Ceil(w))+1, int(math.Ceil(asc+desc))+1))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: met.Ascent},
	}
	d.DrawString(s)
	if c.st.font.Underlined {
		underline(mask, asc, desc)
	}

	toDevice.Concat(affine.NewScale(1/sc, 1/sc))
	col := c.st.textColor
	if !col.IsOk() {
		col = paint.Black
	}
	c.drawMask(mask, toDevice, solid(col))
}

func underline(mask *image.Alpha, asc, desc float64) {
	thick := int(math.Max(1, math.Round((asc+desc)/16)))
	y0 := int(math.Round(asc + desc/2))
	b := mask.Bounds()
	for y := y0; y < y0+thick && y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mask.Pix[mask.PixOffset(x, y)] = 0xff
		}
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// dropFaces closes and forgets every cached face.
func (c *Context) dropFaces() {
	for k, f := range c.faces {
		_ = f.Close()
		delete(c.faces, k)
	}
}
