package figure

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// ImageArtist draws a matrix of cells. Cell (row, col) is centered on
// data coordinate (col, row); transparent cells are left unpainted.
type ImageArtist struct {
	Cells [][]color.RGBA
}

func (a *ImageArtist) Draw(dst *image.RGBA, t Transform) {
	b := dst.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			x, y := t.Inverse(float64(px)+0.5, float64(py)+0.5)
			row := int(math.Floor(y + 0.5))
			col := int(math.Floor(x + 0.5))
			if row < 0 || row >= len(a.Cells) || col < 0 || col >= len(a.Cells[row]) {
				continue
			}
			if c := a.Cells[row][col]; c.A != 0 {
				dst.SetRGBA(px, py, c)
			}
		}
	}
}

// Markers draws filled circles of a fixed pixel radius. Points past the
// shortest of X, Y and Colors are ignored.
type Markers struct {
	X, Y   []float64
	Colors []color.RGBA
	Radius float64
}

func (m *Markers) Draw(dst *image.RGBA, t Transform) {
	n := min(len(m.X), len(m.Y), len(m.Colors))
	for i := 0; i < n; i++ {
		c := m.Colors[i]
		if c.A == 0 || math.IsNaN(m.X[i]) || math.IsNaN(m.Y[i]) {
			continue
		}
		px, py := t.Apply(m.X[i], m.Y[i])
		FillCircle(dst, px, py, m.Radius, c)
	}
}

// Arrow head proportions in multiples of the shaft width.
const (
	HeadWidth      = 3.0
	HeadLength     = 5.0
	HeadAxisLength = 4.5
)

// Arrows draws a vector field. Each arrow starts at (X, Y) and is
// |(U, V)| * Scale pixels long; Width is the shaft width in pixels.
type Arrows struct {
	X, Y, U, V []float64
	Color      color.RGBA
	Width      float64
	Scale      float64
}

func (a *Arrows) Draw(dst *image.RGBA, t Transform) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	origin := [2]float64{float64(b.Min.X), float64(b.Min.Y)}
	drawn := false

	n := min(len(a.X), len(a.Y), len(a.U), len(a.V))
	for i := 0; i < n; i++ {
		u, v := a.U[i], a.V[i]
		mag := math.Hypot(u, v)
		if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
			continue
		}
		length := mag * a.Scale
		px, py := t.Apply(a.X[i], a.Y[i])
		// pixel y grows downward
		dirX, dirY := u/mag, -v/mag
		if t.InvertY {
			dirY = -dirY
		}
		if a.Width < 1 {
			DrawLine(dst, int(px), int(py), int(px+dirX*length), int(py+dirY*length), a.Color)
			continue
		}
		outline := arrowOutline(length, a.Width)
		for j, p := range outline {
			// rotate from the +x axis onto the arrow direction
			x := px + p[0]*dirX - p[1]*dirY - origin[0]
			y := py + p[0]*dirY + p[1]*dirX - origin[1]
			if j == 0 {
				z.MoveTo(float32(x), float32(y))
			} else {
				z.LineTo(float32(x), float32(y))
			}
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(dst, b, image.NewUniform(a.Color), image.Point{})
	}
}

// arrowOutline returns the arrow polygon along +x, tail at the origin.
// Heads longer than the arrow are scaled down with it.
func arrowOutline(length, width float64) [][2]float64 {
	hw, hl, hal := HeadWidth*width, HeadLength*width, HeadAxisLength*width
	if length < hl {
		k := length / hl
		hw, hl, hal = hw*k, hl*k, hal*k
	}
	sw := width / 2
	if sw > hw/2 {
		sw = hw / 2
	}
	return [][2]float64{
		{0, -sw},
		{length - hal, -sw},
		{length - hl, -hw / 2},
		{length, 0},
		{length - hl, hw / 2},
		{length - hal, sw},
		{0, sw},
	}
}
