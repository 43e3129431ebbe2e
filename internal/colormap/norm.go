package colormap

import "math"

// Norm scales data values into [0, 1] ahead of a colormap lookup.
type Norm interface {
	// Autoscale sets any unset bounds from the finite values given.
	Autoscale(values []float64)
	// Apply maps v into the unit interval. NaN marks a bad value.
	Apply(v float64) float64
}

// Normalize is a linear mapping of [Vmin, Vmax] onto [0, 1].
// A NaN bound is unset until Autoscale fills it.
type Normalize struct {
	Vmin, Vmax float64
	Clip       bool
}

// NewNormalize returns a linear norm with fixed bounds.
func NewNormalize(vmin, vmax float64) *Normalize {
	return &Normalize{Vmin: vmin, Vmax: vmax}
}

// AutoNormalize returns a linear norm whose bounds come from the first data it sees.
func AutoNormalize() *Normalize {
	return &Normalize{Vmin: math.NaN(), Vmax: math.NaN()}
}

// Scaled reports whether both bounds are set.
func (n *Normalize) Scaled() bool {
	return !math.IsNaN(n.Vmin) && !math.IsNaN(n.Vmax)
}

func (n *Normalize) Autoscale(values []float64) {
	lo, hi, ok := finiteRange(values, false)
	if !ok {
		return
	}
	if math.IsNaN(n.Vmin) {
		n.Vmin = lo
	}
	if math.IsNaN(n.Vmax) {
		n.Vmax = hi
	}
}

// Apply returns NaN for NaN input, unset bounds or an inverted range.
// Equal bounds map every value to 0.
func (n *Normalize) Apply(v float64) float64 {
	if math.IsNaN(v) || !n.Scaled() || n.Vmin > n.Vmax {
		return math.NaN()
	}
	if n.Vmin == n.Vmax {
		return 0
	}
	x := (v - n.Vmin) / (n.Vmax - n.Vmin)
	if n.Clip {
		x = clamp01(x)
	}
	return x
}

// LogNorm maps [Vmin, Vmax] onto [0, 1] on a log scale.
// Non-positive values are bad.
type LogNorm struct {
	Vmin, Vmax float64
	Clip       bool
}

// NewLogNorm returns a log norm; pass NaN for bounds that should autoscale.
func NewLogNorm(vmin, vmax float64) *LogNorm {
	return &LogNorm{Vmin: vmin, Vmax: vmax}
}

func (n *LogNorm) Autoscale(values []float64) {
	lo, hi, ok := finiteRange(values, true)
	if !ok {
		return
	}
	if math.IsNaN(n.Vmin) {
		n.Vmin = lo
	}
	if math.IsNaN(n.Vmax) {
		n.Vmax = hi
	}
}

func (n *LogNorm) Apply(v float64) float64 {
	if math.IsNaN(v) || v <= 0 || math.IsNaN(n.Vmin) || math.IsNaN(n.Vmax) {
		return math.NaN()
	}
	if n.Vmin <= 0 || n.Vmin > n.Vmax {
		return math.NaN()
	}
	if n.Vmin == n.Vmax {
		return 0
	}
	lo, hi := math.Log(n.Vmin), math.Log(n.Vmax)
	x := (math.Log(v) - lo) / (hi - lo)
	if n.Clip {
		x = clamp01(x)
	}
	return x
}

func finiteRange(values []float64, positiveOnly bool) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if positiveOnly && v <= 0 {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
