package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/simviz/internal/plotter"
)

const (
	particleKick    = 0.15
	particleDamping = 0.98
)

// Particles is a damped random walk in a square box with reflecting walls,
// colored by speed.
type Particles struct {
	X, Y, VX, VY []float64
	Box          float64
	rng          *rand.Rand
}

func NewParticles(n int, box float64, seed int64) *Particles {
	if n < 1 {
		n = 1
	}
	if box <= 0 {
		box = 1
	}
	p := &Particles{
		X:   make([]float64, n),
		Y:   make([]float64, n),
		VX:  make([]float64, n),
		VY:  make([]float64, n),
		Box: box,
		rng: rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < n; i++ {
		p.X[i] = p.rng.Float64() * box
		p.Y[i] = p.rng.Float64() * box
	}
	return p
}

func (s *Particles) Init(p *plotter.Plotter) error {
	return s.draw(0, p)
}

func (s *Particles) Step(frame int, p *plotter.Plotter) error {
	s.Advance()
	return s.draw(frame+1, p)
}

func (s *Particles) Advance() {
	for i := range s.X {
		s.VX[i] = s.VX[i]*particleDamping + s.rng.NormFloat64()*particleKick
		s.VY[i] = s.VY[i]*particleDamping + s.rng.NormFloat64()*particleKick
		s.X[i], s.VX[i] = reflect(s.X[i]+s.VX[i], s.VX[i], s.Box)
		s.Y[i], s.VY[i] = reflect(s.Y[i]+s.VY[i], s.VY[i], s.Box)
	}
}

// Speeds returns the speed of every particle.
func (s *Particles) Speeds() []float64 {
	out := make([]float64, len(s.X))
	for i := range out {
		out[i] = math.Hypot(s.VX[i], s.VY[i])
	}
	return out
}

func reflect(x, v, box float64) (float64, float64) {
	if x < 0 {
		return math.Min(-x, box), -v
	}
	if x > box {
		return math.Max(2*box-x, 0), -v
	}
	return x, v
}

func (s *Particles) draw(step int, p *plotter.Plotter) error {
	lim := [2]float64{0, s.Box}
	if err := p.Scatter(s.X, s.Y, lim, lim, plotter.ScatterOptions{C: s.Speeds()}); err != nil {
		return err
	}
	p.Title(fmt.Sprintf("step %d", step))
	return nil
}
