package figure

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultDPI    = 100.0
	DefaultTitle  = "Animator"

	// subplot margins as fractions of the figure
	marginLeft   = 0.125
	marginRight  = 0.9
	marginBottom = 0.11
	marginTop    = 0.88
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
)

type Figure struct {
	Width, Height int
	DPI           float64
	WindowTitle   string
	Background    color.RGBA
	Axes          *Axes
}

// New returns a figure with the default size and window title.
func New() *Figure {
	return NewSize(DefaultWidth, DefaultHeight)
}

func NewSize(w, h int) *Figure {
	return &Figure{
		Width:       w,
		Height:      h,
		DPI:         DefaultDPI,
		WindowTitle: DefaultTitle,
		Background:  White,
		Axes:        NewAxes(),
	}
}

// PointsToPixels converts a typographic size in points to pixels.
func (f *Figure) PointsToPixels(pt float64) float64 {
	return pt * f.DPI / 72
}

// AxesBox returns the pixel rectangle of the data area.
// Equal-aspect axes shrink the box around its center to keep data units square.
func (f *Figure) AxesBox() image.Rectangle {
	x0 := float64(f.Width) * marginLeft
	x1 := float64(f.Width) * marginRight
	y0 := float64(f.Height) * (1 - marginTop)
	y1 := float64(f.Height) * (1 - marginBottom)

	if f.Axes.EqualAspect {
		xlo, xhi := f.Axes.XLim()
		ylo, yhi := f.Axes.YLim()
		dx, dy := xhi-xlo, yhi-ylo
		if dx > 0 && dy > 0 {
			w, h := x1-x0, y1-y0
			dataAspect := dy / dx
			if dataAspect > h/w {
				nw := h / dataAspect
				x0 += (w - nw) / 2
				x1 = x0 + nw
			} else {
				nh := w * dataAspect
				y0 += (h - nh) / 2
				y1 = y0 + nh
			}
		}
	}
	return image.Rect(int(x0+0.5), int(y0+0.5), int(x1+0.5), int(y1+0.5))
}

// Transform returns the current data-to-pixel mapping.
func (f *Figure) Transform() Transform {
	xlo, xhi := f.Axes.XLim()
	ylo, yhi := f.Axes.YLim()
	return Transform{
		Box:     f.AxesBox(),
		XMin:    xlo,
		XMax:    xhi,
		YMin:    ylo,
		YMax:    yhi,
		InvertY: f.Axes.InvertY,
	}
}

// Render draws the figure from scratch.
func (f *Figure) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(f.Background), image.Point{}, draw.Src)

	t := f.Transform()
	plot := img.SubImage(t.Box).(*image.RGBA)
	for _, a := range f.Axes.artists {
		a.Draw(plot, t)
	}

	drawFrame(img, t.Box, Black)
	if f.Axes.Title != "" {
		drawTitle(img, t.Box, f.Axes.Title)
	}
	return img
}

func drawFrame(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	DrawLine(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, c)
	DrawLine(img, r.Min.X, r.Max.Y-1, r.Max.X-1, r.Max.Y-1, c)
	DrawLine(img, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y-1, c)
	DrawLine(img, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, c)
}

func drawTitle(img *image.RGBA, box image.Rectangle, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Black),
		Face: face,
	}
	width := d.MeasureString(text).Round()
	x := box.Min.X + (box.Dx()-width)/2
	d.Dot = fixed.P(x, box.Min.Y-6)
	d.DrawString(text)
}
