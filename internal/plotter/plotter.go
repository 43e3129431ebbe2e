// Package plotter wraps the figure primitives used to show 2D simulations
// behind a shared colormap and normalization.
package plotter

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/simviz/internal/colormap"
	"github.com/san-kum/simviz/internal/figure"
)

const (
	// DefaultMarkerSize is the scatter marker area in pt², a 6pt marker squared.
	DefaultMarkerSize = 36.0

	// QuiverWidth is the shaft width as a fraction of the axes width.
	QuiverWidth = 0.005
	// QuiverScale is the number of data units per axes width of arrow.
	QuiverScale = 30.0

	fallbackColormap = "viridis"
)

// DefaultMarkerColor is used for scatter points without color values.
var DefaultMarkerColor = color.RGBA{0x1f, 0x77, 0xb4, 0xff}

// ErrShapeMismatch indicates input slices whose lengths do not agree.
var ErrShapeMismatch = errors.New("plotter: shape mismatch")

// Options selects the color mapping. Standard wins over Custom; with
// neither set value-colored draws use viridis.
type Options struct {
	Standard string
	Custom   []string
	Norm     colormap.Norm
}

type Plotter struct {
	fig  *figure.Figure
	cmap *colormap.Colormap
	norm colormap.Norm
}

// New resolves the colormap options. A custom map always gets a norm
// covering [0, len(Custom)-1] so integer states index the listed colors.
func New(fig *figure.Figure, opts Options) (*Plotter, error) {
	if fig == nil {
		fig = figure.New()
	}
	p := &Plotter{fig: fig, norm: opts.Norm}

	switch {
	case opts.Standard != "":
		cm, err := colormap.Standard(opts.Standard)
		if err != nil {
			return nil, err
		}
		p.cmap = cm
	case opts.Custom != nil:
		cm, err := colormap.Listed(opts.Custom)
		if err != nil {
			return nil, err
		}
		p.cmap = cm
		p.norm = colormap.NewNormalize(0, float64(len(opts.Custom)-1))
	}
	return p, nil
}

// Colormap returns the resolved colormap, nil when none was chosen.
func (p *Plotter) Colormap() *colormap.Colormap { return p.cmap }

// Norm returns the active normalization, nil when each draw autoscales.
func (p *Plotter) Norm() colormap.Norm { return p.norm }

func (p *Plotter) Figure() *figure.Figure { return p.fig }

// Plot clears the axes and shows data as an image, row 0 at the top.
func (p *Plotter) Plot(data [][]float64) error {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	flat := make([]float64, 0, rows*cols)
	for i, row := range data {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		flat = append(flat, row...)
	}

	cmap, norm := p.mapping(flat)
	cells := make([][]color.RGBA, rows)
	for i, row := range data {
		cells[i] = make([]color.RGBA, cols)
		for j, v := range row {
			cells[i][j] = cmap.At(norm.Apply(v))
		}
	}

	ax := p.fig.Axes
	ax.Clear()
	ax.InvertY = true
	ax.EqualAspect = true
	ax.SetXLim(-0.5, float64(cols)-0.5)
	ax.SetYLim(-0.5, float64(rows)-0.5)
	ax.Add(&figure.ImageArtist{Cells: cells})
	return nil
}

// ScatterOptions holds the optional scatter arguments. The zero value clears
// the axes and uses the default marker size and color.
type ScatterOptions struct {
	// C colors the points through the colormap. One value is repeated
	// for every point; none uses DefaultMarkerColor.
	C []float64
	// Overlay keeps what is already drawn instead of clearing the axes.
	Overlay bool
	// Size is the marker area in pt². Zero means DefaultMarkerSize.
	Size float64
}

// Scatter draws points within the given limits.
func (p *Plotter) Scatter(x, y []float64, xlim, ylim [2]float64, opts ScatterOptions) error {
	n := len(x)
	if len(y) != n {
		return fmt.Errorf("%w: x has %d values, y has %d", ErrShapeMismatch, n, len(y))
	}

	c := opts.C
	if len(c) == 1 {
		c = repeat(c[0], n)
	}
	if len(c) != 0 && len(c) != n {
		return fmt.Errorf("%w: %d color values for %d points", ErrShapeMismatch, len(c), n)
	}

	colors := make([]color.RGBA, n)
	if len(c) == 0 {
		for i := range colors {
			colors[i] = DefaultMarkerColor
		}
	} else {
		cmap, norm := p.mapping(c)
		for i, v := range c {
			colors[i] = cmap.At(norm.Apply(v))
		}
	}

	size := opts.Size
	if size <= 0 {
		size = DefaultMarkerSize
	}

	ax := p.fig.Axes
	if !opts.Overlay {
		ax.Clear()
	}
	ax.Add(&figure.Markers{
		X:      x,
		Y:      y,
		Colors: colors,
		Radius: p.fig.PointsToPixels(math.Sqrt(size) / 2),
	})
	ax.SetXLim(xlim[0], xlim[1])
	ax.SetYLim(ylim[0], ylim[1])
	return nil
}

// Quiver clears the axes and draws one arrow per (x, y) with components (u, v).
func (p *Plotter) Quiver(x, y, u, v []float64, xlim, ylim [2]float64) error {
	n := len(x)
	if len(y) != n || len(u) != n || len(v) != n {
		return fmt.Errorf("%w: quiver got %d, %d, %d and %d values", ErrShapeMismatch, n, len(y), len(u), len(v))
	}

	ax := p.fig.Axes
	ax.Clear()
	ax.SetXLim(xlim[0], xlim[1])
	ax.SetYLim(ylim[0], ylim[1])

	width := float64(p.fig.AxesBox().Dx())
	ax.Add(&figure.Arrows{
		X: x, Y: y, U: u, V: v,
		Color: figure.Black,
		Width: QuiverWidth * width,
		Scale: width / QuiverScale,
	})
	return nil
}

// Title sets the text shown above the plot, such as the current generation.
func (p *Plotter) Title(text string) {
	p.fig.Axes.SetTitle(text)
}

// mapping returns the colormap and norm for one draw call. Without a user
// norm a fresh one is autoscaled to values each time.
func (p *Plotter) mapping(values []float64) (*colormap.Colormap, colormap.Norm) {
	cmap := p.cmap
	if cmap == nil {
		cmap, _ = colormap.Standard(fallbackColormap)
	}
	norm := p.norm
	if norm == nil {
		norm = colormap.AutoNormalize()
	}
	norm.Autoscale(values)
	return cmap, norm
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
