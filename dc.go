package gcdc

import (
	"image"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
	"github.com/gogpu/gcdc/paint"
)

// Source is what a blit reads from. Every DeviceContext is a Source.
type Source interface {
	IsOk() bool
	LogicalToDevice(x, y int) (int, int)
	LogicalToDeviceRel(dx, dy int) (int, int)
	// Size returns the surface size in device pixels.
	Size() (w, h int)
	// AsBitmap copies the device pixels in subrect.
	AsBitmap(subrect image.Rectangle) (*paint.Bitmap, bool)
}

// DeviceContext is the drawing contract of a device context. All
// coordinates are logical unless a method says otherwise.
type DeviceContext interface {
	Source

	Close() error
	Flush()
	StartPage() error
	EndPage() error

	// Coordinate system

	SetDeviceOrigin(x, y int)
	DeviceOrigin() (x, y int)
	SetLogicalOrigin(x, y int)
	LogicalOrigin() (x, y int)
	SetUserScale(x, y float64)
	UserScale() (x, y float64)
	SetLogicalScale(x, y float64)
	LogicalScale() (x, y float64)
	SetAxisOrientation(xLeftRight, yBottomUp bool)
	SetMapMode(m MapMode)
	MapMode() MapMode
	DeviceToLogical(x, y int) (int, int)
	DeviceToLogicalRel(dx, dy int) (int, int)

	SetTransformMatrix(m affine.Matrix) bool
	TransformMatrix() affine.Matrix
	ResetTransformMatrix()
	CanUseTransformMatrix() bool

	// Clipping

	SetClippingRegion(x, y, w, h int)
	SetClippingRect(r image.Rectangle)
	SetDeviceClippingRegion(rgn backend.Region)
	DestroyClippingRegion()
	ClippingBox() (image.Rectangle, bool)

	// Attributes

	SetPen(p paint.Pen)
	Pen() paint.Pen
	SetBrush(b paint.Brush)
	Brush() paint.Brush
	SetBackground(b paint.Brush)
	Background() paint.Brush
	SetBackgroundMode(m BackgroundMode)
	BackgroundMode() BackgroundMode
	SetFont(f paint.Font)
	Font() paint.Font
	SetTextForeground(c paint.Color)
	TextForeground() paint.Color
	SetTextBackground(c paint.Color)
	TextBackground() paint.Color
	SetLogicalFunction(op RasterOp)
	LogicalFunction() RasterOp

	// Drawing

	Clear()
	DrawLine(x1, y1, x2, y2 int)
	CrossHair(x, y int)
	DrawArc(x1, y1, x2, y2, xc, yc int)
	DrawEllipticArc(x, y, w, h int, sa, ea float64)
	DrawPoint(x, y int)
	DrawLines(points []image.Point, xoff, yoff int)
	DrawSpline(points []image.Point)
	DrawPolygon(points []image.Point, xoff, yoff int, rule backend.FillRule)
	DrawPolyPolygon(polygons [][]image.Point, xoff, yoff int, rule backend.FillRule)
	DrawRectangle(x, y, w, h int)
	DrawRoundedRectangle(x, y, w, h int, radius float64)
	DrawEllipse(x, y, w, h int)
	DrawCircle(x, y, r int)
	DrawBitmap(bmp *paint.Bitmap, x, y int, useMask bool)
	DrawIcon(icon *paint.Bitmap, x, y int)
	DrawText(s string, x, y int)
	DrawRotatedText(s string, x, y int, angle float64)
	DrawLabel(s string, r image.Rectangle, align Alignment) image.Rectangle
	GradientFillLinear(r image.Rectangle, initial, dest paint.Color, dir Direction)
	GradientFillConcentric(r image.Rectangle, initial, dest paint.Color, center image.Point)
	Blit(xdest, ydest, w, h int, src Source, xsrc, ysrc int, op RasterOp, useMask bool) bool
	StretchBlit(xdest, ydest, dstWidth, dstHeight int,
		src Source, xsrc, ysrc, srcWidth, srcHeight int,
		op RasterOp, useMask bool) bool

	// Metrics

	TextExtent(s string) (w, h, descent, externalLeading int)
	MultiLineTextExtent(s string) (w, h, lineHeight int)
	PartialTextExtents(s string) []int
	CharHeight() int
	CharWidth() int
	SizeMM() (w, h int)
	PPI() (x, y int)

	// Bounding box

	CalcBoundingBox(x, y int)
	ResetBoundingBox()
	BoundingBox() (image.Rectangle, bool)
	MinX() int
	MinY() int
	MaxX() int
	MaxY() int
}
