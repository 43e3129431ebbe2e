package figure

import (
	"image"
	"math"
)

// Artist is anything the axes can draw. dst is already clipped to the
// axes box.
type Artist interface {
	Draw(dst *image.RGBA, t Transform)
}

type Axes struct {
	Title       string
	InvertY     bool
	EqualAspect bool

	xlim, ylim [2]float64
	artists    []Artist
}

func NewAxes() *Axes {
	return &Axes{xlim: [2]float64{0, 1}, ylim: [2]float64{0, 1}}
}

// Clear drops every artist, the title and the limits.
func (a *Axes) Clear() {
	*a = *NewAxes()
}

func (a *Axes) Add(art Artist) {
	a.artists = append(a.artists, art)
}

// Artists returns the artists in draw order.
func (a *Axes) Artists() []Artist {
	return a.artists
}

func (a *Axes) SetTitle(s string) { a.Title = s }

func (a *Axes) SetXLim(lo, hi float64) { a.xlim = [2]float64{lo, hi} }

func (a *Axes) SetYLim(lo, hi float64) { a.ylim = [2]float64{lo, hi} }

func (a *Axes) XLim() (float64, float64) { return a.xlim[0], a.xlim[1] }

func (a *Axes) YLim() (float64, float64) { return a.ylim[0], a.ylim[1] }

// Transform maps data coordinates into the pixel rectangle Box.
// Y grows upwards unless InvertY is set.
type Transform struct {
	Box                    image.Rectangle
	XMin, XMax, YMin, YMax float64
	InvertY                bool
}

func (t Transform) Apply(x, y float64) (float64, float64) {
	fx := (x - t.XMin) / span(t.XMin, t.XMax)
	fy := (y - t.YMin) / span(t.YMin, t.YMax)
	px := float64(t.Box.Min.X) + fx*float64(t.Box.Dx())
	if t.InvertY {
		return px, float64(t.Box.Min.Y) + fy*float64(t.Box.Dy())
	}
	return px, float64(t.Box.Max.Y) - fy*float64(t.Box.Dy())
}

func (t Transform) Inverse(px, py float64) (float64, float64) {
	fx := (px - float64(t.Box.Min.X)) / float64(t.Box.Dx())
	var fy float64
	if t.InvertY {
		fy = (py - float64(t.Box.Min.Y)) / float64(t.Box.Dy())
	} else {
		fy = (float64(t.Box.Max.Y) - py) / float64(t.Box.Dy())
	}
	return t.XMin + fx*span(t.XMin, t.XMax), t.YMin + fy*span(t.YMin, t.YMax)
}

// span is hi-lo, or 1 for an empty range.
func span(lo, hi float64) float64 {
	d := hi - lo
	if d == 0 || math.IsNaN(d) {
		return 1
	}
	return d
}
