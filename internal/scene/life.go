package scene

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/simviz/internal/plotter"
)

const lifeDensity = 0.25

// Life is Conway's game of life on a torus. Cells hold 0 or 1 so a
// two-color custom map shows them directly.
type Life struct {
	Grid       [][]float64
	Generation int
	next       [][]float64
}

func NewLife(size int, seed int64) *Life {
	if size < 3 {
		size = 3
	}
	rng := rand.New(rand.NewSource(seed))
	l := &Life{Grid: newGrid(size), next: newGrid(size)}
	for i := range l.Grid {
		for j := range l.Grid[i] {
			if rng.Float64() < lifeDensity {
				l.Grid[i][j] = 1
			}
		}
	}
	return l
}

// NewGlider places a single glider in the top-left corner. It travels one
// cell down and right every four generations.
func NewGlider(size int) *Life {
	if size < 5 {
		size = 5
	}
	l := &Life{Grid: newGrid(size), next: newGrid(size)}
	for _, c := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		l.Grid[c[0]][c[1]] = 1
	}
	return l
}

func newLifeScene(p Params) (Scene, error) {
	switch p.Pattern {
	case "", "random":
		return NewLife(p.Size, p.Seed), nil
	case "glider":
		return NewGlider(p.Size), nil
	default:
		return nil, fmt.Errorf("unknown life pattern: %s", p.Pattern)
	}
}

func newGrid(n int) [][]float64 {
	g := make([][]float64, n)
	for i := range g {
		g[i] = make([]float64, n)
	}
	return g
}

func (l *Life) Init(p *plotter.Plotter) error {
	return l.draw(p)
}

func (l *Life) Step(frame int, p *plotter.Plotter) error {
	l.Advance()
	return l.draw(p)
}

// Advance computes the next generation.
func (l *Life) Advance() {
	n := len(l.Grid)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			alive := 0
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if di == 0 && dj == 0 {
						continue
					}
					alive += int(l.Grid[(i+di+n)%n][(j+dj+n)%n])
				}
			}
			switch {
			case alive == 3, alive == 2 && l.Grid[i][j] == 1:
				l.next[i][j] = 1
			default:
				l.next[i][j] = 0
			}
		}
	}
	l.Grid, l.next = l.next, l.Grid
	l.Generation++
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	total := 0
	for _, row := range l.Grid {
		for _, v := range row {
			total += int(v)
		}
	}
	return total
}

func (l *Life) draw(p *plotter.Plotter) error {
	if err := p.Plot(l.Grid); err != nil {
		return err
	}
	p.Title(fmt.Sprintf("generation %d", l.Generation))
	return nil
}
