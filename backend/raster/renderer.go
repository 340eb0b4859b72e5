// Package raster is a software backend that draws on any draw.Image.
//
// Non-zero fills use golang.org/x/image/vector and odd-even fills a
// scanline rasterizer. Bitmaps and rotated text are resampled with
// golang.org/x/image/draw, and glyphs come from the Go fonts through
// golang.org/x/image/font/opentype. Pixels are combined with the
// composition modes of internal/compose.
//
//	reg := backend.NewRegistry()
//	raster.Register(reg, raster.WithDPI(96))
//	ctx, err := reg.NewContext(raster.Name, image.NewRGBA(image.Rect(0, 0, 320, 200)))
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// Name is the registry name of the raster renderer.
const Name = "raster"

// DefaultDPI is the resolution reported when none is configured.
const DefaultDPI = 96

// Option configures a Renderer.
type Option func(*Renderer)

// WithAntialias sets whether new contexts start with antialiasing on.
// The default is on.
func WithAntialias(on bool) Option {
	return func(r *Renderer) {
		r.antialias = on
	}
}

// WithDPI sets the resolution used to convert font point sizes to pixels.
func WithDPI(dpi float64) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithFontData replaces the Go fonts with a single TrueType/OpenType
// face used for every weight and slant.
func WithFontData(ttf []byte) Option {
	return func(r *Renderer) {
		r.fonts = &fontSet{custom: ttf}
	}
}

// Renderer creates raster contexts.
type Renderer struct {
	antialias bool
	dpi       float64
	fonts     *fontSet
}

// New creates a raster renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		antialias: true,
		dpi:       DefaultDPI,
		fonts:     &fontSet{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds the raster renderer to reg under Name.
func Register(reg *backend.Registry, opts ...Option) {
	reg.Register(Name, func() backend.Renderer { return New(opts...) })
}

// Name implements backend.Renderer.
func (r *Renderer) Name() string {
	return Name
}

// NewContext implements backend.Renderer. The target must be a
// draw.Image. An *image.RGBA whose bounds start at the origin is drawn
// on directly; any other image is drawn through a buffer that Flush
// copies back.
func (r *Renderer) NewContext(t backend.Target) (backend.Context, error) {
	dst, ok := t.(draw.Image)
	if !ok {
		return nil, backend.ErrUnsupportedTarget
	}
	if err := r.fonts.load(); err != nil {
		return nil, err
	}
	return newContext(r, dst), nil
}

// fontSet holds the parsed faces shared by all contexts of a renderer.
type fontSet struct {
	once   sync.Once
	err    error
	custom []byte

	data [numStyles][]byte
	ot   [numStyles]*opentype.Font

	gtMu sync.Mutex
	gt   [numStyles]*gtfont.Font
}

type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
	styleBoldItalic
	styleMono
	numStyles
)

func styleOf(f paint.Font) fontStyle {
	if f.Family == paint.FamilyModern {
		return styleMono
	}
	bold := f.Weight == paint.WeightBold
	italic := f.Slant == paint.SlantItalic
	switch {
	case bold && italic:
		return styleBoldItalic
	case bold:
		return styleBold
	case italic:
		return styleItalic
	default:
		return styleRegular
	}
}

func (fs *fontSet) load() error {
	fs.once.Do(func() {
		if fs.custom != nil {
			for i := range fs.data {
				fs.data[i] = fs.custom
			}
		} else {
			fs.data = [numStyles][]byte{
				styleRegular:    goregular.TTF,
				styleBold:       gobold.TTF,
				styleItalic:     goitalic.TTF,
				styleBoldItalic: gobolditalic.TTF,
				styleMono:       gomono.TTF,
			}
		}
		for i, data := range fs.data {
			if i > 0 && bytes.Equal(data, fs.data[0]) {
				fs.ot[i] = fs.ot[0]
				continue
			}
			f, err := opentype.Parse(data)
			if err != nil {
				fs.err = fmt.Errorf("raster: parse font: %w", err)
				return
			}
			fs.ot[i] = f
		}
	})
	return fs.err
}

// shapingFont returns the go-text font for style, parsing it on first use.
func (fs *fontSet) shapingFont(style fontStyle) (*gtfont.Font, error) {
	fs.gtMu.Lock()
	defer fs.gtMu.Unlock()

	if f := fs.gt[style]; f != nil {
		return f, nil
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(fs.data[style]))
	if err != nil {
		return nil, fmt.Errorf("raster: parse font for shaping: %w", err)
	}
	fs.gt[style] = face.Font
	return face.Font, nil
}

// surface returns the pixel buffer for dst and whether it is a shadow
// copy that must be written back.
func surface(dst draw.Image) (*image.RGBA, bool) {
	if rgba, ok := dst.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, false
	}
	b := dst.Bounds()
	buf := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(buf, buf.Bounds(), dst, b.Min, draw.Src)
	return buf, true
}
