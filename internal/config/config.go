package config

import (
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScene    = "life"
	DefaultInterval = 100
	DefaultName     = "simulation"
	DefaultFormat   = "gif"
	DefaultSize     = 64
	DefaultCount    = 200
)

type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Plot      PlotConfig      `yaml:"plot"`
	Scene     SceneConfig     `yaml:"scene"`
}

type AnimationConfig struct {
	IntervalMs int    `yaml:"interval_ms"`
	Frames     int    `yaml:"frames"`
	FPS        int    `yaml:"fps"`
	Save       bool   `yaml:"save"`
	Name       string `yaml:"name"`
	Format     string `yaml:"format"`
}

// PlotConfig selects the colormap. Vmin and Vmax are optional; a missing
// bound autoscales.
type PlotConfig struct {
	Colormap string   `yaml:"colormap"`
	Custom   []string `yaml:"custom"`
	Vmin     *float64 `yaml:"vmin,omitempty"`
	Vmax     *float64 `yaml:"vmax,omitempty"`
	Log      bool     `yaml:"log"`
}

// SceneConfig picks the demo scene. Pattern seeds life with a named shape
// instead of random cells.
type SceneConfig struct {
	Name    string `yaml:"name"`
	Size    int    `yaml:"size"`
	Count   int    `yaml:"count"`
	Seed    int64  `yaml:"seed"`
	Pattern string `yaml:"pattern,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Animation: AnimationConfig{
			IntervalMs: DefaultInterval,
			Name:       DefaultName,
			Format:     DefaultFormat,
		},
		Scene: SceneConfig{
			Name:  DefaultScene,
			Size:  DefaultSize,
			Count: DefaultCount,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.Animation.IntervalMs) * time.Millisecond
}

// Bounds returns the norm bounds with NaN for unset ones.
func (c *Config) Bounds() (vmin, vmax float64) {
	vmin, vmax = math.NaN(), math.NaN()
	if c.Plot.Vmin != nil {
		vmin = *c.Plot.Vmin
	}
	if c.Plot.Vmax != nil {
		vmax = *c.Plot.Vmax
	}
	return vmin, vmax
}
