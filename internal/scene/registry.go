// Package scene holds small example simulations that exercise the plotter
// and animator from the command line.
package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/simviz/internal/plotter"
)

// Scene owns its simulation state and draws it through a plotter.
type Scene interface {
	// Init draws the initial state.
	Init(p *plotter.Plotter) error
	// Step advances one frame and draws it.
	Step(frame int, p *plotter.Plotter) error
}

// Params are the knobs shared by every scene; each scene reads the ones it needs.
type Params struct {
	Size    int
	Count   int
	Seed    int64
	Pattern string
}

type Registry struct {
	scenes map[string]func(Params) (Scene, error)
}

func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]func(Params) (Scene, error))}

	r.scenes["life"] = newLifeScene
	r.scenes["particles"] = func(p Params) (Scene, error) { return NewParticles(p.Count, float64(p.Size), p.Seed), nil }
	r.scenes["vortex"] = func(p Params) (Scene, error) { return NewVortex(p.Size), nil }

	return r
}

func (r *Registry) Get(name string, params Params) (Scene, error) {
	fn, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
	return fn(params)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
