package scene

import (
	"math"
	"testing"

	"github.com/san-kum/simviz/internal/figure"
	"github.com/san-kum/simviz/internal/plotter"
)

func newPlotter(t *testing.T, opts plotter.Options) *plotter.Plotter {
	t.Helper()
	p, err := plotter.New(figure.NewSize(160, 120), opts)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	if len(names) != 3 || names[0] != "life" {
		t.Errorf("unexpected scenes %v", names)
	}
	for _, name := range names {
		s, err := r.Get(name, Params{Size: 8, Count: 10, Seed: 1})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		p := newPlotter(t, plotter.Options{Custom: []string{"white", "black"}})
		if err := s.Init(p); err != nil {
			t.Fatalf("%s init: %v", name, err)
		}
		if err := s.Step(0, p); err != nil {
			t.Fatalf("%s step: %v", name, err)
		}
		if p.Figure().Axes.Title == "" {
			t.Errorf("%s should set a title", name)
		}
	}
	if _, err := r.Get("nonexistent", Params{}); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestLifeBlinker(t *testing.T) {
	l := &Life{Grid: newGrid(5), next: newGrid(5)}
	l.Grid[2][1], l.Grid[2][2], l.Grid[2][3] = 1, 1, 1

	l.Advance()
	if l.Grid[1][2] != 1 || l.Grid[2][2] != 1 || l.Grid[3][2] != 1 || l.Grid[2][1] != 0 {
		t.Errorf("blinker should turn vertical, got %v", l.Grid)
	}
	l.Advance()
	if l.Grid[2][1] != 1 || l.Grid[2][3] != 1 || l.Grid[1][2] != 0 {
		t.Errorf("blinker should turn back, got %v", l.Grid)
	}
	if l.Population() != 3 || l.Generation != 2 {
		t.Errorf("expected population 3 at generation 2, got %d at %d", l.Population(), l.Generation)
	}
}

func TestGliderTravels(t *testing.T) {
	l := NewGlider(8)
	for i := 0; i < 4; i++ {
		l.Advance()
	}
	for _, c := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}} {
		if l.Grid[c[0]][c[1]] != 1 {
			t.Errorf("expected live cell at %v after 4 generations", c)
		}
	}
	if l.Population() != 5 {
		t.Errorf("glider should keep 5 cells, got %d", l.Population())
	}
}

func TestLifePattern(t *testing.T) {
	r := NewRegistry()
	s, err := r.Get("life", Params{Size: 8, Pattern: "glider"})
	if err != nil {
		t.Fatal(err)
	}
	if s.(*Life).Population() != 5 {
		t.Error("glider pattern should start with 5 cells")
	}
	if _, err := r.Get("life", Params{Size: 8, Pattern: "spaceship"}); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestLifeTitle(t *testing.T) {
	l := NewLife(10, 5)
	p := newPlotter(t, plotter.Options{Custom: []string{"white", "black"}})
	_ = l.Init(p)
	_ = l.Step(0, p)
	if got := p.Figure().Axes.Title; got != "generation 1" {
		t.Errorf("expected generation 1, got %q", got)
	}
}

func TestParticlesStayInBox(t *testing.T) {
	s := NewParticles(50, 10, 9)
	for i := 0; i < 200; i++ {
		s.Advance()
	}
	for i := range s.X {
		if s.X[i] < 0 || s.X[i] > 10 || s.Y[i] < 0 || s.Y[i] > 10 {
			t.Fatalf("particle %d escaped: (%v, %v)", i, s.X[i], s.Y[i])
		}
	}
	for _, v := range s.Speeds() {
		if v < 0 || math.IsNaN(v) {
			t.Fatalf("bad speed %v", v)
		}
	}
}

func TestVortexField(t *testing.T) {
	v := NewVortex(4)
	if len(v.X) != 16 {
		t.Fatalf("expected 16 lattice points, got %d", len(v.X))
	}
	v.Field(0)
	// pure rotation at t=0: velocity is perpendicular to the radius
	c := 2.0
	for i := range v.X {
		dot := (v.X[i]-c)*v.U[i] + (v.Y[i]-c)*v.V[i]
		if math.Abs(dot) > 1e-9 {
			t.Errorf("point %d: expected tangential flow, dot=%v", i, dot)
		}
	}
}
