package main

import (
	"io"

	"github.com/san-kum/simviz/internal/animator"
	"github.com/san-kum/simviz/internal/colormap"
	"github.com/san-kum/simviz/internal/config"
	"github.com/san-kum/simviz/internal/figure"
	"github.com/san-kum/simviz/internal/plotter"
	"github.com/san-kum/simviz/internal/scene"
)

// setup builds the scene and a plotter on fig from cfg.
func setup(cfg *config.Config, fig *figure.Figure) (scene.Scene, *plotter.Plotter, error) {
	s, err := scene.NewRegistry().Get(cfg.Scene.Name, scene.Params{
		Size:    cfg.Scene.Size,
		Count:   cfg.Scene.Count,
		Seed:    cfg.Scene.Seed,
		Pattern: cfg.Scene.Pattern,
	})
	if err != nil {
		return nil, nil, err
	}

	p, err := plotter.New(fig, plotter.Options{
		Standard: cfg.Plot.Colormap,
		Custom:   cfg.Plot.Custom,
		Norm:     buildNorm(cfg),
	})
	if err != nil {
		return nil, nil, err
	}
	return s, p, nil
}

// buildNorm returns nil when nothing is configured so every draw autoscales.
func buildNorm(cfg *config.Config) colormap.Norm {
	vmin, vmax := cfg.Bounds()
	if cfg.Plot.Log {
		return colormap.NewLogNorm(vmin, vmax)
	}
	if cfg.Plot.Vmin == nil && cfg.Plot.Vmax == nil {
		return nil
	}
	return &colormap.Normalize{Vmin: vmin, Vmax: vmax}
}

func newAnimator(cfg *config.Config, s scene.Scene, p *plotter.Plotter, out io.Writer) (*animator.Animator, error) {
	return animator.New(
		func(frame int) error { return s.Step(frame, p) },
		animator.Options{
			Init:     func() error { return s.Init(p) },
			Interval: cfg.Interval(),
			Save:     cfg.Animation.Save,
			FPS:      cfg.Animation.FPS,
			Frames:   cfg.Animation.Frames,
			Name:     cfg.Animation.Name,
			Format:   cfg.Animation.Format,
			Figure:   p.Figure(),
			Out:      out,
		},
	)
}
