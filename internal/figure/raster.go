package figure

import (
	"image"
	"image/color"
	"math"
)

// DrawLine draws a one pixel line using Bresenham's algorithm.
// Pixels outside dst are skipped.
func DrawLine(dst *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		dst.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills every pixel whose center lies within r of (cx, cy).
// Circles too small to cover a pixel center still mark the pixel under them.
func FillCircle(dst *image.RGBA, cx, cy, r float64, c color.RGBA) {
	if r < 0.71 {
		dst.SetRGBA(int(math.Floor(cx)), int(math.Floor(cy)), c)
		return
	}
	b := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1,
	).Intersect(dst.Bounds())
	r2 := r * r
	for y := b.Min.Y; y < b.Max.Y; y++ {
		fy := float64(y) + 0.5 - cy
		for x := b.Min.X; x < b.Max.X; x++ {
			fx := float64(x) + 0.5 - cx
			if fx*fx+fy*fy <= r2 {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
