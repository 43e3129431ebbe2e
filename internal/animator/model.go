package animator

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	defaultCols     = 64
	panelWidth      = 44
	timingCapacity  = 120
	minPreviewCols  = 16
	previewHeadroom = 4
)

// tickMsg drives one frame. gen ties it to the timer that scheduled it so
// ticks left over from before a pause are dropped.
type tickMsg struct{ gen int }

// Model is the interactive bubbletea front end of an Animator.
type Model struct {
	anim       *Animator
	frame      int
	gen        int
	done       bool
	err        error
	cols, rows int
	preview    string
	frameTimes []float64
	help       help.Model
}

func NewModel(a *Animator) *Model {
	m := &Model{
		anim:       a,
		cols:       defaultCols,
		rows:       a.Figure().TerminalRows(defaultCols),
		frameTimes: make([]float64, 0, timingCapacity),
		help:       help.New(),
	}
	m.redraw()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.anim.Figure().WindowTitle), m.tick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			if m.TogglePause() {
				return m, m.tick()
			}
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tickMsg:
		if msg.gen != m.gen || !m.anim.running || m.done {
			return m, nil
		}
		if err := m.step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.done {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// TogglePause flips between running and paused and returns the new state.
// Once the animation has finished there is no timer left and nothing changes.
func (m *Model) TogglePause() bool {
	if m.done {
		return m.anim.running
	}
	m.anim.running = !m.anim.running
	m.gen++
	return m.anim.running
}

// Frame returns the number of frames drawn so far.
func (m *Model) Frame() int { return m.frame }

// Done reports whether every requested frame has been drawn.
func (m *Model) Done() bool { return m.done }

// Err returns the update error that stopped the animation, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.anim.opts.Interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *Model) step() error {
	start := time.Now()
	if err := m.anim.update(m.frame); err != nil {
		return fmt.Errorf("animator: frame %d: %w", m.frame, err)
	}
	m.redraw()

	m.frameTimes = append(m.frameTimes, float64(time.Since(start).Microseconds())/1000)
	if len(m.frameTimes) > timingCapacity {
		m.frameTimes = m.frameTimes[1:]
	}

	m.frame++
	if n := m.anim.opts.Frames; n > 0 && m.frame >= n {
		m.done = true
	}
	return nil
}

func (m *Model) redraw() {
	m.preview = m.anim.Figure().Terminal(m.cols, m.rows)
}

// resize fits the preview next to the status panel.
func (m *Model) resize(w, h int) {
	fig := m.anim.Figure()
	cols := w - panelWidth
	if cols < minPreviewCols {
		cols = minPreviewCols
	}
	rows := fig.TerminalRows(cols)
	if maxRows := h - previewHeadroom; maxRows > 0 && rows > maxRows {
		rows = maxRows
		cols = rows * 2 * fig.Width / fig.Height
	}
	m.cols, m.rows = cols, rows
	m.redraw()
}

func (m *Model) status() string {
	switch {
	case m.done:
		return statusDone.Render("DONE")
	case !m.anim.running:
		return statusPaused.Render("PAUSED")
	default:
		return statusRunning.Render("RUNNING")
	}
}

func (m *Model) View() string {
	var s strings.Builder
	s.WriteString(m.status() + "\n\n")

	frames := fmt.Sprintf("%d", m.frame)
	if n := m.anim.opts.Frames; n > 0 {
		frames = fmt.Sprintf("%d / %d", m.frame, n)
	}
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(frames) + "\n")
	s.WriteString(labelStyle.Render("Interval") + valueStyle.Render(m.anim.opts.Interval.String()) + "\n")

	if len(m.frameTimes) > 1 {
		chart := asciigraph.Plot(m.frameTimes, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("frame ms"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render(m.help.View(keys)))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.preview, statsStyle.Render(s.String()))
	return headerStyle.Render(m.anim.Figure().WindowTitle) + "\n" + body
}
