package colormap

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

type blendSpace int

const (
	blendLab blendSpace = iota
	blendRGB
)

type anchor struct {
	pos float64
	hex string
}

type segmented struct {
	space   blendSpace
	anchors []anchor
}

// even spaces hex anchors uniformly over [0, 1].
func even(space blendSpace, hexes ...string) segmented {
	anchors := make([]anchor, len(hexes))
	for i, h := range hexes {
		anchors[i] = anchor{pos: float64(i) / float64(len(hexes)-1), hex: h}
	}
	return segmented{space: space, anchors: anchors}
}

// Perceptual maps are sampled from their published tables and blended in Lab;
// the piecewise-linear RGB maps blend in RGB so their ramps stay straight.
var builtins = map[string]segmented{
	"viridis": even(blendLab, "#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"),
	"plasma": even(blendLab, "#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"),
	"inferno": even(blendLab, "#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
		"#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"),
	"magma": even(blendLab, "#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"),
	"cividis": even(blendLab, "#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8779", "#a69d75", "#c4b56c", "#e4cf5b", "#fee838"),
	"coolwarm": even(blendLab, "#3b4cc0", "#6f92f3", "#aac7fd", "#dddcdc", "#f7b89c",
		"#e7745b", "#b40426"),
	"gray":   even(blendRGB, "#000000", "#ffffff"),
	"binary": even(blendRGB, "#ffffff", "#000000"),
	"cool":   even(blendRGB, "#00ffff", "#ff00ff"),
	"hot": {space: blendRGB, anchors: []anchor{
		{0, "#0a0000"}, {0.365, "#ff0000"}, {0.746, "#ffff00"}, {1, "#ffffff"},
	}},
	"jet": {space: blendRGB, anchors: []anchor{
		{0, "#00007f"}, {0.125, "#0000ff"}, {0.375, "#00ffff"},
		{0.625, "#ffff00"}, {0.875, "#ff0000"}, {1, "#7f0000"},
	}},
	"terrain": {space: blendRGB, anchors: []anchor{
		{0, "#333399"}, {0.15, "#0099ff"}, {0.25, "#00cc66"},
		{0.5, "#ffff99"}, {0.75, "#805c54"}, {1, "#ffffff"},
	}},
}

// table samples the segmented map at n evenly spaced points.
func (s segmented) table(n int) ([]color.RGBA, error) {
	stops := make([]colorful.Color, len(s.anchors))
	for i, a := range s.anchors {
		c, err := colorful.Hex(a.hex)
		if err != nil {
			return nil, err
		}
		stops[i] = c
	}

	lut := make([]color.RGBA, n)
	seg := 0
	for i := range lut {
		x := float64(i) / float64(n-1)
		for seg < len(s.anchors)-2 && x > s.anchors[seg+1].pos {
			seg++
		}
		lo, hi := s.anchors[seg], s.anchors[seg+1]
		t := 0.0
		if hi.pos > lo.pos {
			t = (x - lo.pos) / (hi.pos - lo.pos)
		}
		var c colorful.Color
		switch s.space {
		case blendRGB:
			c = stops[seg].BlendRgb(stops[seg+1], t)
		default:
			c = stops[seg].BlendLab(stops[seg+1], t)
		}
		r, g, b := c.Clamped().RGB255()
		lut[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return lut, nil
}
