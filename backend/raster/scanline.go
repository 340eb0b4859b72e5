package raster

import (
	"image"
	"math"
	"sort"

	"github.com/gogpu/gcdc/affine"
	"github.com/gogpu/gcdc/backend"
)

// subScanlines is the number of sample rows per pixel row.
const subScanlines = 4

// crossing is an edge intersecting a sample row.
type crossing struct {
	x   float64
	dir int
}

// scanCoverage rasterizes device-space polygons over r with an active
// edge scan. Each pixel row is sampled subScanlines times; spans between
// crossings are filled when rule says the winding number is inside, with
// exact horizontal coverage at the span ends.
func scanCoverage(polys [][]affine.Point2D, r image.Rectangle, rule backend.FillRule) *image.Alpha {
	mask := image.NewAlpha(r)
	w := r.Dx()
	if w <= 0 || r.Dy() <= 0 {
		return mask
	}
	acc := make([]float64, w)
	var xs []crossing
	ox := float64(r.Min.X)
	const weight = 1.0 / subScanlines

	for y := r.Min.Y; y < r.Max.Y; y++ {
		clear(acc)
		for k := 0; k < subScanlines; k++ {
			sy := float64(y) + (float64(k)+0.5)*weight
			xs = appendCrossings(xs[:0], polys, sy)
			if len(xs) < 2 {
				continue
			}
			sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

			winding := 0
			for i := 0; i < len(xs)-1; i++ {
				winding += xs[i].dir
				if inside(winding, rule) {
					addSpan(acc, xs[i].x-ox, xs[i+1].x-ox, weight)
				}
			}
		}
		row := mask.Pix[(y-r.Min.Y)*mask.Stride:]
		for x, a := range acc {
			row[x] = uint8(math.Round(math.Min(a, 1) * 255))
		}
	}
	return mask
}

// appendCrossings adds every polygon edge crossing the row sy. Polygons
// are closed implicitly. Edges are half-open in y so shared vertices
// count once.
func appendCrossings(xs []crossing, polys [][]affine.Point2D, sy float64) []crossing {
	for _, poly := range polys {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			p0, p1 := poly[i], poly[(i+1)%n]
			if p0.Y == p1.Y {
				continue
			}
			dir := 1
			if p0.Y > p1.Y {
				p0, p1 = p1, p0
				dir = -1
			}
			if sy < p0.Y || sy >= p1.Y {
				continue
			}
			x := p0.X + (sy-p0.Y)*(p1.X-p0.X)/(p1.Y-p0.Y)
			xs = append(xs, crossing{x: x, dir: dir})
		}
	}
	return xs
}

// inside reports whether a winding number is filled under rule.
func inside(winding int, rule backend.FillRule) bool {
	if rule == backend.FillOddEven {
		return winding&1 != 0
	}
	return winding != 0
}

// addSpan accumulates weight times the horizontal overlap of [x0, x1)
// with each pixel column.
func addSpan(acc []float64, x0, x1, weight float64) {
	w := float64(len(acc))
	x0, x1 = math.Max(x0, 0), math.Min(x1, w)
	if x1 <= x0 {
		return
	}
	i0, i1 := int(x0), int(x1)
	if i0 == i1 {
		acc[i0] += (x1 - x0) * weight
		return
	}
	acc[i0] += (float64(i0+1) - x0) * weight
	for i := i0 + 1; i < i1; i++ {
		acc[i] += weight
	}
	if i1 < len(acc) {
		acc[i1] += (x1 - float64(i1)) * weight
	}
}
