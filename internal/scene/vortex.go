package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/simviz/internal/plotter"
)

const vortexPeriod = 60

// Vortex is a rotating field on an n x n lattice whose swirl strength
// oscillates with time.
type Vortex struct {
	N          int
	X, Y, U, V []float64
}

func NewVortex(n int) *Vortex {
	if n < 2 {
		n = 2
	}
	v := &Vortex{N: n}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v.X = append(v.X, float64(j)+0.5)
			v.Y = append(v.Y, float64(i)+0.5)
		}
	}
	v.U = make([]float64, len(v.X))
	v.V = make([]float64, len(v.X))
	return v
}

func (s *Vortex) Init(p *plotter.Plotter) error {
	return s.draw(0, p)
}

func (s *Vortex) Step(frame int, p *plotter.Plotter) error {
	return s.draw(frame+1, p)
}

// Field fills U and V for time step t. Arrows are sized so the longest
// spans most of one lattice cell at the plotter's quiver scale.
func (s *Vortex) Field(t int) {
	c := float64(s.N) / 2
	phase := 2 * math.Pi * float64(t) / vortexPeriod
	swirl := math.Cos(phase)
	inflow := math.Sin(phase)
	maxLen := 0.8 * plotter.QuiverScale / float64(s.N)
	for i := range s.X {
		dx, dy := s.X[i]-c, s.Y[i]-c
		r := math.Hypot(dx, dy)
		if r == 0 {
			s.U[i], s.V[i] = 0, 0
			continue
		}
		tx, ty := -dy/r, dx/r
		rx, ry := -dx/r, -dy/r
		mag := maxLen * math.Min(r/c, 1)
		s.U[i] = mag * (swirl*tx + inflow*rx) / math.Sqrt2
		s.V[i] = mag * (swirl*ty + inflow*ry) / math.Sqrt2
	}
}

func (s *Vortex) draw(t int, p *plotter.Plotter) error {
	s.Field(t)
	lim := [2]float64{0, float64(s.N)}
	if err := p.Quiver(s.X, s.Y, s.U, s.V, lim, lim); err != nil {
		return err
	}
	p.Title(fmt.Sprintf("phase %.2f", float64(t%vortexPeriod)/vortexPeriod))
	return nil
}
