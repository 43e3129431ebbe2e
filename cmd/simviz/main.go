package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/simviz/internal/colormap"
	"github.com/san-kum/simviz/internal/config"
	"github.com/san-kum/simviz/internal/figure"
	"github.com/spf13/cobra"
)

// sceneOptions holds the flag values shared by run and snapshot.
type sceneOptions struct {
	interval    int
	frames      int
	save        bool
	fps         int
	name        string
	format      string
	cmapName    string
	custom      []string
	vmin        float64
	vmax        float64
	logScale    bool
	size        int
	count       int
	seed        int64
	pattern     string
	configFile  string
	preset      string
	writeConfig string
	// snapshot
	steps   int
	outPath string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "simviz",
		Short:        "animate and plot 2D simulations",
		SilenceUsage: true,
	}

	colormapsCmd := &cobra.Command{
		Use:   "colormaps",
		Short: "list built-in colormaps",
		RunE:  listColormaps,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newRunCmd(&sceneOptions{}), newSnapshotCmd(&sceneOptions{}), colormapsCmd, presetsCmd)
	return rootCmd
}

func newRunCmd(o *sceneOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "animate a scene in the terminal or save it as video",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runScene(cmd, args)
		},
	}
	o.addSceneFlags(cmd)
	cmd.Flags().IntVar(&o.interval, "interval", config.DefaultInterval, "delay between frames (ms)")
	cmd.Flags().IntVar(&o.frames, "frames", 0, "number of frames (0 runs until quit)")
	cmd.Flags().BoolVar(&o.save, "save", false, "render to a video file")
	cmd.Flags().IntVar(&o.fps, "fps", 0, "playback rate of the saved video")
	cmd.Flags().StringVar(&o.name, "name", config.DefaultName, "output path without extension")
	cmd.Flags().StringVar(&o.format, "format", config.DefaultFormat, "video format (gif, mp4)")
	cmd.Flags().StringVar(&o.writeConfig, "write-config", "", "write the resolved config to this path and exit")
	return cmd
}

func newSnapshotCmd(o *sceneOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [scene]",
		Short: "render a single frame to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.snapshotScene(cmd, args)
		},
	}
	o.addSceneFlags(cmd)
	cmd.Flags().IntVar(&o.steps, "steps", 0, "steps to advance before rendering")
	cmd.Flags().StringVarP(&o.outPath, "out", "o", "snapshot.png", "output file")
	return cmd
}

func (o *sceneOptions) addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.cmapName, "cmap", "", "built-in colormap name")
	cmd.Flags().StringSliceVar(&o.custom, "custom", nil, "custom colormap colors (comma separated)")
	cmd.Flags().Float64Var(&o.vmin, "vmin", 0, "lower bound of the color scale")
	cmd.Flags().Float64Var(&o.vmax, "vmax", 0, "upper bound of the color scale")
	cmd.Flags().BoolVar(&o.logScale, "log", false, "log color scale")
	cmd.Flags().IntVar(&o.size, "size", config.DefaultSize, "grid or box size")
	cmd.Flags().IntVar(&o.count, "count", config.DefaultCount, "number of particles")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "random seed")
	cmd.Flags().StringVar(&o.pattern, "pattern", "", "initial life pattern (random, glider)")
	cmd.Flags().StringVar(&o.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&o.preset, "preset", "", "use preset configuration")
}

// resolveConfig layers the preset, the config file and explicit flags, in
// that order.
func (o *sceneOptions) resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	sceneName := cfg.Scene.Name
	if len(args) > 0 {
		sceneName = args[0]
	}

	if o.preset != "" {
		p := config.GetPreset(sceneName, o.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets(sceneName))
		}
		cfg = p
	}

	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Scene.Name = args[0]
	}

	flags := cmd.Flags()
	changed := func(flag string) bool {
		f := flags.Lookup(flag)
		return f != nil && f.Changed
	}
	if changed("interval") {
		cfg.Animation.IntervalMs = o.interval
	}
	if changed("frames") {
		cfg.Animation.Frames = o.frames
	}
	if changed("save") {
		cfg.Animation.Save = o.save
	}
	if changed("fps") {
		cfg.Animation.FPS = o.fps
	}
	if changed("name") {
		cfg.Animation.Name = o.name
	}
	if changed("format") {
		cfg.Animation.Format = o.format
	}
	if changed("cmap") {
		cfg.Plot.Colormap = o.cmapName
	}
	if changed("custom") {
		cfg.Plot.Custom = o.custom
	}
	if changed("vmin") {
		v := o.vmin
		cfg.Plot.Vmin = &v
	}
	if changed("vmax") {
		v := o.vmax
		cfg.Plot.Vmax = &v
	}
	if changed("log") {
		cfg.Plot.Log = o.logScale
	}
	if changed("size") {
		cfg.Scene.Size = o.size
	}
	if changed("count") {
		cfg.Scene.Count = o.count
	}
	if changed("seed") {
		cfg.Scene.Seed = o.seed
	}
	if changed("pattern") {
		cfg.Scene.Pattern = o.pattern
	}
	return cfg, nil
}

func (o *sceneOptions) runScene(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if o.writeConfig != "" {
		if err := config.Save(o.writeConfig, cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.writeConfig)
		return nil
	}

	s, p, err := setup(cfg, figure.New())
	if err != nil {
		return err
	}
	anim, err := newAnimator(cfg, s, p, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return anim.Animate(cmd.Context())
}

func (o *sceneOptions) snapshotScene(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	s, p, err := setup(cfg, figure.New())
	if err != nil {
		return err
	}
	if err := s.Init(p); err != nil {
		return err
	}
	for i := 0; i < o.steps; i++ {
		if err := s.Step(i, p); err != nil {
			return err
		}
	}

	f, err := os.Create(o.outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, p.Figure().Render()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.outPath)
	return nil
}

func listColormaps(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	const swatch = 32
	for _, n := range colormap.Names() {
		cm, err := colormap.Standard(n)
		if err != nil {
			return err
		}
		var b strings.Builder
		for i := 0; i < swatch; i++ {
			c := cm.At((float64(i) + 0.5) / swatch)
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(figure.Hex(c))).Render(" "))
		}
		fmt.Fprintf(out, "%-10s %s\n", n, b.String())
	}
	return nil
}
