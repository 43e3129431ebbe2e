package config

import "sort"

func float(v float64) *float64 { return &v }

var Presets = map[string]map[string]*Config{
	"life": {
		"glider": {
			Animation: AnimationConfig{IntervalMs: 100, Name: "glider", Format: "gif"},
			Plot:      PlotConfig{Custom: []string{"white", "black"}},
			Scene:     SceneConfig{Name: "life", Size: 32, Pattern: "glider"},
		},
		"soup": {
			Animation: AnimationConfig{IntervalMs: 50, Name: "soup", Format: "gif"},
			Plot:      PlotConfig{Custom: []string{"#0a0a0a", "#00ff88"}},
			Scene:     SceneConfig{Name: "life", Size: 96, Seed: 42},
		},
		"export": {
			Animation: AnimationConfig{IntervalMs: 100, Frames: 120, FPS: 15, Save: true, Name: "life", Format: "gif"},
			Plot:      PlotConfig{Custom: []string{"white", "black"}},
			Scene:     SceneConfig{Name: "life", Size: 64, Seed: 7},
		},
	},
	"particles": {
		"gas": {
			Animation: AnimationConfig{IntervalMs: 50, Name: "gas", Format: "gif"},
			Plot:      PlotConfig{Colormap: "plasma", Vmin: float(0), Vmax: float(2)},
			Scene:     SceneConfig{Name: "particles", Size: 100, Count: 300, Seed: 3},
		},
		"sparse": {
			Animation: AnimationConfig{IntervalMs: 100, Name: "sparse", Format: "gif"},
			Plot:      PlotConfig{Colormap: "viridis"},
			Scene:     SceneConfig{Name: "particles", Size: 50, Count: 40, Seed: 11},
		},
	},
	"vortex": {
		"calm": {
			Animation: AnimationConfig{IntervalMs: 100, Name: "calm", Format: "gif"},
			Scene:     SceneConfig{Name: "vortex", Size: 12},
		},
		"dense": {
			Animation: AnimationConfig{IntervalMs: 60, Name: "dense", Format: "gif"},
			Scene:     SceneConfig{Name: "vortex", Size: 24},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(scene, name string) *Config {
	presets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	cp.Plot.Custom = append([]string(nil), cfg.Plot.Custom...)
	return &cp
}

// ListPresets returns the preset names for a scene, sorted.
func ListPresets(scene string) []string {
	presets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
