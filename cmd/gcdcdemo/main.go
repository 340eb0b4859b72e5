// Command gcdcdemo draws a sample page through a gcdc device context and
// saves it as PNG.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gcdc"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/backend/raster"
	"github.com/gogpu/gcdc/backend/recording"
	"github.com/gogpu/gcdc/paint"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "demo.png", "output file")
		name     = flag.String("backend", raster.Name, "backend: raster or recording")
		fontPath = flag.String("font", "", "TrueType font for text (default: Go Regular)")
		verbose  = flag.Bool("v", false, "log backend diagnostics")
	)
	flag.Parse()

	if *verbose {
		gcdc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var rasterOpts []raster.Option
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		rasterOpts = append(rasterOpts, raster.WithFontData(data))
	}

	reg := backend.NewRegistry(raster.Name, recording.Name)
	raster.Register(reg, rasterOpts...)
	recording.Register(reg)

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	dc, err := gcdc.NewFromRegistry(reg, *name, img,
		gcdc.WithBackground(paint.NewBrush(paint.RGB(24, 32, 56))),
	)
	if err != nil {
		log.Fatalf("Failed to create device context: %v", err)
	}

	dc.Clear()
	drawGradients(dc, *width, *height)
	drawShapes(dc)
	drawScaled(dc)
	drawText(dc)
	dc.Flush()

	switch ctx := dc.GraphicsContext().(type) {
	case *recording.Recorder:
		log.Printf("Recorded %d commands", len(ctx.Commands()))
	case *raster.Context:
		if err := save(ctx, *output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
	}
	if err := dc.Close(); err != nil {
		log.Fatalf("Failed to close: %v", err)
	}
}

func save(ctx *raster.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ctx.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawGradients(dc *gcdc.GCDC, w, h int) {
	dc.GradientFillLinear(image.Rect(0, h-80, w, h), paint.RGB(24, 32, 56), paint.RGB(90, 60, 140), gcdc.South)
	dc.GradientFillConcentric(image.Rect(560, 320, 760, 520), paint.RGB(255, 220, 120), paint.RGB(24, 32, 56), image.Pt(100, 100))
}

func drawShapes(dc *gcdc.GCDC) {
	dc.SetPen(paint.NewPen(paint.White, 3))

	dc.SetBrush(paint.NewBrush(paint.RGBA(255, 80, 80, 200)))
	dc.DrawCircle(150, 150, 60)
	dc.SetBrush(paint.NewBrush(paint.RGBA(80, 255, 80, 200)))
	dc.DrawCircle(200, 150, 60)
	dc.SetBrush(paint.NewBrush(paint.RGBA(80, 80, 255, 200)))
	dc.DrawCircle(175, 200, 60)

	dc.SetBrush(paint.NewBrush(paint.RGB(255, 200, 0)))
	dc.DrawRoundedRectangle(350, 100, 120, 80, 15)

	dc.SetBrush(paint.NewBrush(paint.RGB(255, 140, 0)))
	dc.DrawArc(660, 150, 600, 90, 600, 150)
	dc.DrawEllipticArc(520, 220, 160, 80, 30, 300)

	star := make([]image.Point, 0, 10)
	for i := range 10 {
		angle := float64(i)*math.Pi/5 - math.Pi/2
		r := 60.0
		if i%2 == 1 {
			r = 30
		}
		star = append(star, image.Pt(int(r*math.Cos(angle)), int(r*math.Sin(angle))))
	}
	dc.SetBrush(paint.NewBrush(paint.RGB(255, 255, 0)))
	dc.DrawPolygon(star, 550, 400, backend.FillWinding)

	dc.SetPen(paint.NewPen(paint.RGB(255, 128, 0), 4))
	dc.DrawSpline([]image.Point{{80, 400}, {130, 330}, {200, 470}, {260, 380}, {330, 420}})
}

func drawScaled(dc *gcdc.GCDC) {
	dc.SetDeviceOrigin(100, 250)
	dc.SetUserScale(2, 2)
	defer func() {
		dc.SetUserScale(1, 1)
		dc.SetDeviceOrigin(0, 0)
	}()

	dc.SetClippingRegion(0, 0, 60, 40)
	dc.SetPen(paint.TransparentPen)
	dc.SetBrush(paint.NewBrush(paint.RGB(40, 160, 220)))
	dc.DrawRectangle(-10, -10, 100, 100)
	dc.DestroyClippingRegion()

	dc.SetPen(paint.NewPen(paint.White, 1))
	dc.CrossHair(30, 20)
}

func drawText(dc *gcdc.GCDC) {
	dc.SetFont(paint.NewFont(18, paint.FamilySwiss))
	dc.SetTextForeground(paint.White)
	dc.DrawText("gcdc device context", 40, 30)

	dc.SetBackgroundMode(gcdc.BackgroundSolid)
	dc.SetTextBackground(paint.RGB(90, 60, 140))
	dc.DrawLabel("aligned\nlabel", image.Rect(350, 220, 470, 300), gcdc.AlignCenter)
	dc.SetBackgroundMode(gcdc.BackgroundTransparent)

	dc.DrawRotatedText("rotated", 760, 560, 90)
}
