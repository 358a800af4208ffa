package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const starSupersample = 4

// StarPolygon returns the ten vertices of a five-pointed star centered on
// (cx, cy), first point straight up in a y-down image.
func StarPolygon(cx, cy, outer, inner float64) [][2]float64 {
	pts := make([][2]float64, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

func insidePolygon(x, y float64, poly [][2]float64) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
	}
	return in
}

// StarRGBA rasterizes a white anti-aliased star. Color is applied at draw time.
func StarRGBA(size int, innerRatio float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	poly := StarPolygon(c, c, c-1, (c-1)*innerRatio)

	step := 1.0 / starSupersample
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			hits := 0
			for sy := 0; sy < starSupersample; sy++ {
				for sx := 0; sx < starSupersample; sx++ {
					x := float64(px) + (float64(sx)+0.5)*step
					y := float64(py) + (float64(sy)+0.5)*step
					if insidePolygon(x, y, poly) {
						hits++
					}
				}
			}
			if hits == 0 {
				continue
			}
			a := uint8(hits * 255 / (starSupersample * starSupersample))
			// premultiplied white
			img.SetRGBA(px, py, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return img
}

var starImages = map[int]*ebiten.Image{}

// StarImage returns a cached star texture of the given pixel size.
func StarImage(size int, innerRatio float64) *ebiten.Image {
	if img, ok := starImages[size]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(StarRGBA(size, innerRatio))
	starImages[size] = img
	return img
}
