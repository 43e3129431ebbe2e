package animator

import (
	"bytes"
	"context"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/simviz/internal/figure"
)

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func noop(int) error { return nil }

var _ = Describe("New", func() {
	It("requires frames when saving", func() {
		_, err := New(noop, Options{Save: true})
		Expect(err).To(MatchError(ErrFramesRequired))
	})

	It("requires an update function", func() {
		_, err := New(nil, Options{})
		Expect(err).To(MatchError(ErrNoUpdate))
	})

	It("rejects unknown formats", func() {
		_, err := New(noop, Options{Format: "avi"})
		Expect(errors.Is(err, ErrUnknownFormat)).To(BeTrue())
	})

	It("fills defaults", func() {
		a, err := New(noop, Options{Out: &bytes.Buffer{}})
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Running()).To(BeTrue())
		Expect(a.Options().Interval).To(Equal(DefaultInterval))
		Expect(a.OutputPath()).To(Equal("simulation.gif"))
		Expect(a.PlaybackFPS()).To(Equal(10))
		Expect(a.Figure()).NotTo(BeNil())
		Expect(a.Figure().WindowTitle).To(Equal("Animator"))
	})

	It("prefers an explicit playback rate", func() {
		a, err := New(noop, Options{FPS: 24, Frames: 3, Save: true, Format: FormatMP4, Name: "out/run"})
		Expect(err).NotTo(HaveOccurred())
		Expect(a.PlaybackFPS()).To(Equal(24))
		Expect(a.OutputPath()).To(Equal("out/run.mp4"))
	})
})

var _ = Describe("Model", func() {
	var (
		calls []int
		a     *Animator
		m     *Model
	)

	BeforeEach(func() {
		calls = nil
		var err error
		a, err = New(func(frame int) error {
			calls = append(calls, frame)
			return nil
		}, Options{Frames: 3, Interval: time.Millisecond, Figure: figure.NewSize(64, 48)})
		Expect(err).NotTo(HaveOccurred())
		m = NewModel(a)
	})

	It("toggles the running flag", func() {
		Expect(a.Running()).To(BeTrue())
		Expect(m.TogglePause()).To(BeFalse())
		Expect(a.Running()).To(BeFalse())
		Expect(m.TogglePause()).To(BeTrue())
		Expect(a.Running()).To(BeTrue())
	})

	It("pauses on space and resumes with a fresh timer", func() {
		_, cmd := m.Update(space)
		Expect(cmd).To(BeNil())
		Expect(a.Running()).To(BeFalse())

		_, cmd = m.Update(space)
		Expect(cmd).NotTo(BeNil())
		Expect(a.Running()).To(BeTrue())
	})

	It("draws one frame per tick and stops after the last", func() {
		for i := 0; i < 5; i++ {
			m.Update(tickMsg{gen: m.gen})
		}
		Expect(calls).To(Equal([]int{0, 1, 2}))
		Expect(m.Done()).To(BeTrue())
		Expect(m.Frame()).To(Equal(3))
	})

	It("ignores ticks while paused", func() {
		m.TogglePause()
		m.Update(tickMsg{gen: m.gen})
		Expect(calls).To(BeEmpty())
	})

	It("drops ticks from a timer started before a pause", func() {
		stale := m.gen
		m.TogglePause()
		m.TogglePause()
		_, cmd := m.Update(tickMsg{gen: stale})
		Expect(cmd).To(BeNil())
		Expect(calls).To(BeEmpty())
	})

	It("leaves the flag alone once finished", func() {
		for i := 0; i < 3; i++ {
			m.Update(tickMsg{gen: m.gen})
		}
		Expect(m.TogglePause()).To(BeTrue())
		Expect(a.Running()).To(BeTrue())
	})

	It("stops on update errors", func() {
		boom := errors.New("boom")
		bad, _ := New(func(int) error { return boom }, Options{Figure: figure.NewSize(64, 48)})
		bm := NewModel(bad)
		_, cmd := bm.Update(tickMsg{gen: bm.gen})
		Expect(cmd).NotTo(BeNil())
		Expect(bm.Err()).To(MatchError(boom))
		Expect(bm.View()).To(ContainSubstring("boom"))
	})

	It("quits on q", func() {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		Expect(cmd).NotTo(BeNil())
		Expect(cmd()).To(Equal(tea.Quit()))
	})

	It("shows status and window title", func() {
		Expect(m.View()).To(ContainSubstring("RUNNING"))
		Expect(m.View()).To(ContainSubstring("Animator"))
		Expect(m.View()).To(ContainSubstring("pause/resume"))
		m.TogglePause()
		Expect(m.View()).To(ContainSubstring("PAUSED"))
	})

	It("fits the preview to the window", func() {
		m.Update(tea.WindowSizeMsg{Width: 124, Height: 30})
		Expect(m.cols).To(BeNumerically("<=", 80))
		Expect(m.rows).To(BeNumerically("<=", 26))
	})
})

var _ = Describe("Save", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("writes one GIF image per frame", func() {
		var out bytes.Buffer
		initialized := false
		a, err := New(noop, Options{
			Init:   func() error { initialized = true; return nil },
			Save:   true,
			Frames: 4,
			FPS:    20,
			Name:   filepath.Join(dir, "life"),
			Figure: figure.NewSize(80, 60),
			Out:    &out,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Animate(context.Background())).To(Succeed())
		Expect(initialized).To(BeTrue())
		Expect(out.String()).To(HavePrefix("Rendering video...\n"))

		f, err := os.Open(filepath.Join(dir, "life.gif"))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		g, err := gif.DecodeAll(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Image).To(HaveLen(4))
		Expect(g.Delay).To(ConsistOf(5, 5, 5, 5))
		Expect(g.Image[0].Bounds().Dx()).To(Equal(80))
	})

	It("propagates update errors without writing a file", func() {
		boom := errors.New("boom")
		a, _ := New(func(frame int) error {
			if frame == 2 {
				return boom
			}
			return nil
		}, Options{Save: true, Frames: 5, Name: filepath.Join(dir, "bad"), Figure: figure.NewSize(40, 30), Out: &bytes.Buffer{}})

		err := a.Animate(context.Background())
		Expect(errors.Is(err, boom)).To(BeTrue())
		Expect(filepath.Join(dir, "bad.gif")).NotTo(BeAnExistingFile())
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		a, _ := New(func(frame int) error {
			if frame == 1 {
				cancel()
			}
			return nil
		}, Options{Save: true, Frames: 10, Name: filepath.Join(dir, "cancel"), Figure: figure.NewSize(40, 30), Out: &bytes.Buffer{}})

		Expect(a.Animate(ctx)).To(MatchError(context.Canceled))
	})

	It("propagates init errors", func() {
		boom := errors.New("init failed")
		a, _ := New(noop, Options{Init: func() error { return boom }, Save: true, Frames: 1, Name: filepath.Join(dir, "x"), Out: &bytes.Buffer{}})
		Expect(errors.Is(a.Animate(context.Background()), boom)).To(BeTrue())
	})
})

var _ = Describe("gifWriter", func() {
	It("removes the file when encoding fails", func() {
		path := filepath.Join(GinkgoT().TempDir(), "empty.gif")
		w := newGIFWriter(path, 10)
		// a GIF needs at least one frame
		Expect(w.Close()).NotTo(Succeed())
		Expect(path).NotTo(BeAnExistingFile())
	})
})
