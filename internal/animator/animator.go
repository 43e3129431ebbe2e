package animator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/simviz/internal/figure"
)

const (
	DefaultInterval = 100 * time.Millisecond
	DefaultName     = "simulation"
	FormatGIF       = "gif"
	FormatMP4       = "mp4"
)

// UpdateFunc advances the simulation and draws frame n. Frames count from 0.
type UpdateFunc func(frame int) error

type Options struct {
	// Init runs once before the first frame, e.g. to draw the initial state.
	Init func() error
	// Interval is the delay between frames.
	Interval time.Duration
	// Save renders to a video file instead of showing the animation.
	Save bool
	// FPS is the playback rate of the saved video; 0 derives it from Interval.
	FPS int
	// Frames is the number of frames to run; 0 runs until quit.
	Frames int
	// Name is the output path without extension.
	Name string
	// Format is FormatGIF or FormatMP4.
	Format string
	Figure *figure.Figure
	Out    io.Writer
}

type Animator struct {
	update  UpdateFunc
	opts    Options
	running bool
}

// New checks the options and fills defaults. Saving without a frame count
// fails with ErrFramesRequired.
func New(update UpdateFunc, opts Options) (*Animator, error) {
	if update == nil {
		return nil, ErrNoUpdate
	}
	if opts.Frames < 0 {
		opts.Frames = 0
	}
	if opts.Save && opts.Frames == 0 {
		return nil, ErrFramesRequired
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	switch opts.Format {
	case "":
		opts.Format = FormatGIF
	case FormatGIF, FormatMP4:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}
	if opts.Init == nil {
		opts.Init = func() error { return nil }
	}
	if opts.Figure == nil {
		opts.Figure = figure.New()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Animator{update: update, opts: opts, running: true}, nil
}

func (a *Animator) Figure() *figure.Figure { return a.opts.Figure }

func (a *Animator) Options() Options { return a.opts }

// Running reports whether playback is advancing.
func (a *Animator) Running() bool { return a.running }

// PlaybackFPS returns the rate used for saved videos.
func (a *Animator) PlaybackFPS() int {
	if a.opts.FPS > 0 {
		return a.opts.FPS
	}
	fps := int(time.Second / a.opts.Interval)
	if fps < 1 {
		fps = 1
	}
	return fps
}

// OutputPath returns the file a saved animation is written to.
func (a *Animator) OutputPath() string {
	return a.opts.Name + "." + a.opts.Format
}

// Animate runs the animation until the frames are exhausted (when saving)
// or the user quits.
func (a *Animator) Animate(ctx context.Context) error {
	if a.opts.Save {
		fmt.Fprintln(a.opts.Out, "Rendering video...")
		return a.save(ctx)
	}
	if err := a.opts.Init(); err != nil {
		return fmt.Errorf("animator: init: %w", err)
	}

	m := NewModel(a)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithOutput(a.opts.Out))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
	}
	return m.Err()
}

func (a *Animator) save(ctx context.Context) error {
	w, err := newFrameWriter(ctx, a.opts.Format, a.OutputPath(), a.PlaybackFPS())
	if err != nil {
		return err
	}
	if err := a.renderFrames(ctx, w); err != nil {
		w.Abort()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("animator: write %s: %w", a.OutputPath(), err)
	}
	fmt.Fprintf(a.opts.Out, "saved %d frames to %s\n", a.opts.Frames, a.OutputPath())
	return nil
}

func (a *Animator) renderFrames(ctx context.Context, w FrameWriter) error {
	if err := a.opts.Init(); err != nil {
		return fmt.Errorf("animator: init: %w", err)
	}
	for i := 0; i < a.opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.update(i); err != nil {
			return fmt.Errorf("animator: frame %d: %w", i, err)
		}
		if err := w.WriteFrame(a.opts.Figure.Render()); err != nil {
			return fmt.Errorf("animator: encode frame %d: %w", i, err)
		}
	}
	return nil
}
