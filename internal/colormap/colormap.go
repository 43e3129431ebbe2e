package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// LUTSize is the number of entries in every built-in table.
const LUTSize = 256

// Colormap is a lookup table of N colors plus the colors used for
// out-of-range and missing values.
type Colormap struct {
	Name  string
	Under color.RGBA
	Over  color.RGBA
	Bad   color.RGBA
	lut   []color.RGBA
}

// N returns the number of table entries.
func (c *Colormap) N() int { return len(c.lut) }

// At maps a normalized value onto a color.
// Values below 0 return Under, values above 1 return Over and NaN returns Bad.
// Exactly 1 maps to the last entry.
func (c *Colormap) At(x float64) color.RGBA {
	if math.IsNaN(x) {
		return c.Bad
	}
	if x < 0 {
		return c.Under
	}
	n := len(c.lut)
	xa := x * float64(n)
	if xa == float64(n) {
		return c.lut[n-1]
	}
	if xa > float64(n) {
		return c.Over
	}
	return c.lut[int(xa)]
}

// Index returns table entry i, clamped to the table.
func (c *Colormap) Index(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	if i >= len(c.lut) {
		i = len(c.lut) - 1
	}
	return c.lut[i]
}

// Colors returns a copy of the table.
func (c *Colormap) Colors() []color.RGBA {
	out := make([]color.RGBA, len(c.lut))
	copy(out, c.lut)
	return out
}

// Reversed returns a copy with the table and the under/over colors swapped.
func (c *Colormap) Reversed() *Colormap {
	n := len(c.lut)
	lut := make([]color.RGBA, n)
	for i, col := range c.lut {
		lut[n-1-i] = col
	}
	name := strings.TrimSuffix(c.Name, "_r")
	if name == c.Name {
		name += "_r"
	}
	return &Colormap{Name: name, Under: c.Over, Over: c.Under, Bad: c.Bad, lut: lut}
}

// Listed builds a colormap named "custom" with one entry per color.
// Colors are hex strings ("#ff8800", "#f80") or basic color names.
func Listed(colors []string) (*Colormap, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyColormap
	}
	lut := make([]color.RGBA, len(colors))
	for i, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		lut[i] = c
	}
	return newColormap("custom", lut), nil
}

// Standard returns a built-in colormap by name. A "_r" suffix reverses it.
func Standard(name string) (*Colormap, error) {
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		cm, err := Standard(base)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColormap, name)
		}
		return cm.Reversed(), nil
	}
	seg, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColormap, name)
	}
	lut, err := seg.table(LUTSize)
	if err != nil {
		return nil, err
	}
	return newColormap(name, lut), nil
}

// Names returns the built-in colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newColormap(name string, lut []color.RGBA) *Colormap {
	return &Colormap{
		Name:  name,
		Under: lut[0],
		Over:  lut[len(lut)-1],
		Bad:   color.RGBA{},
		lut:   lut,
	}
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",
	"navy":    "#000080",
}

// ParseColor parses a hex color or a basic color name.
func ParseColor(s string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[key]; ok {
		key = hex
	}
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
