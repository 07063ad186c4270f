// Package ui is the bubbletea front end: it schedules the draw loop,
// routes keys into the session, and lays out the visualizer viewport.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/9ntonio/unknown-pleasures/internal/asset"
	"github.com/9ntonio/unknown-pleasures/internal/player"
	"github.com/9ntonio/unknown-pleasures/internal/visualizer"
)

// nowFn is swapped out by tests that need a deterministic clock.
var nowFn = time.Now

// Model wires the playback session to the terminal.
type Model struct {
	session *player.Session
	target  string
	meta    asset.Metadata
	log     *zap.Logger

	modes []visualizer.Visualizer
	mode  int
	fade  *visualizer.Fade

	spin     spinner.Model
	width    int
	height   int
	loadErr  string
	status   string
	quitting bool
}

// New creates the model for one audio target.
func New(target string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	session := player.NewSession()
	session.BeginLoading()
	return Model{
		session: session,
		target:  target,
		log:     log,
		modes:   visualizer.Modes(),
		spin:    sp,
		status:  "loading audio...",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadCmd(m.target), tea.SetWindowTitle("unknown pleasures"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderNow()
		return m, nil

	case spinner.TickMsg:
		if m.session.State() != player.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		m.session.SetBuffer(msg.buffer)
		m.meta = msg.meta
		m.status = "ready — press space to play"
		m.log.Info("audio loaded",
			zap.String("title", msg.meta.Title),
			zap.Duration("duration", msg.buffer.Duration()))
		return m, nil

	case loadFailedMsg:
		m.loadErr = msg.err.Error()
		m.status = ""
		m.log.Error("audio load failed", zap.Error(msg.err))
		return m, nil

	case frameMsg:
		return m.handleFrame(msg)

	case fadeMsg:
		return m.handleFade(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		m.session.Close()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	switch msg.String() {
	case " ":
		return m.toggle()
	case "v":
		m.mode = (m.mode + 1) % len(m.modes)
		m.renderNow()
		return m, nil
	case "up", "k":
		m.session.AdjustVolume(0.05)
		return m, nil
	case "down", "j":
		m.session.AdjustVolume(-0.05)
		return m, nil
	}
	return m, nil
}

// toggle starts or stops playback. A load failure is terminal for the
// session, and toggling mid-fade cancels the fade and restarts.
func (m Model) toggle() (Model, tea.Cmd) {
	if m.loadErr != "" {
		return m, nil
	}

	err := m.session.Toggle()
	if err != nil {
		m.status = err.Error()
		m.log.Warn("toggle rejected", zap.Error(err))
		return m, nil
	}

	switch m.session.State() {
	case player.StatePlaying:
		m.fade = nil
		m.status = "playing — space to stop"
		m.log.Info("playback started", zap.Int("generation", m.session.Generation()))
		return m, frameTickCmd(m.session.Generation())
	case player.StateStopping:
		m.fade = visualizer.NewFade(nowFn(), m.session.Snapshot())
		m.status = "stopping"
		m.log.Info("playback stopping", zap.Int("snapshot_frames", len(m.fade.Frames())))
		return m, fadeTickCmd()
	}
	return m, nil
}

// handleFrame advances the playing draw loop: sample if the throttle
// allows, repaint on a new frame, reschedule. Stale generations are
// dropped, which is how stopping cancels the chain.
func (m Model) handleFrame(msg frameMsg) (Model, tea.Cmd) {
	if msg.gen != m.session.Generation() || m.session.State() != player.StatePlaying {
		return m, nil
	}
	if m.session.Sample(msg.at) {
		m.renderNow()
	}
	return m, frameTickCmd(msg.gen)
}

// handleFade advances the fade-out chain. A restart flips the state
// away from Stopping, which kills the chain without touching it.
func (m Model) handleFade(msg fadeMsg) (Model, tea.Cmd) {
	if m.fade == nil || m.session.State() != player.StateStopping {
		return m, nil
	}
	if m.fade.Done(msg.at) {
		m.session.FinishFade()
		m.fade = nil
		m.status = "ready — press space to play"
		m.renderNow()
		m.log.Info("fade complete")
		return m, nil
	}

	w, h := m.viewport()
	m.modes[m.mode].Render(m.fade.Frames(), w, h, m.fade.Opacity(msg.at))
	return m, fadeTickCmd()
}

// renderNow repaints the active visualizer from current state.
func (m *Model) renderNow() {
	w, h := m.viewport()
	if m.fade != nil && m.session.State() == player.StateStopping {
		m.modes[m.mode].Render(m.fade.Frames(), w, h, m.fade.Opacity(nowFn()))
		return
	}
	m.modes[m.mode].Render(m.session.History().Frames(), w, h, 1)
}

// viewport is the cell area left for the visualizer.
func (m Model) viewport() (int, int) {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	h := m.height - 5
	if h < 5 {
		h = 5
	}
	return w, h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.meta.Title
	if title == "" {
		title = m.target
	}
	header := titleStyle.Render(title)
	if m.meta.Artist != "" {
		header += "  " + artistStyle.Render(m.meta.Artist)
	}

	var status string
	switch {
	case m.loadErr != "":
		status = errorStyle.Render(m.loadErr)
	case m.session.State() == player.StateLoading:
		status = m.spin.View() + " " + statusStyle.Render(m.status)
	default:
		status = statusStyle.Render(m.status)
		status += statusStyle.Render(fmt.Sprintf("  ·  %s  ·  vol %d%%",
			m.modes[m.mode].Name(), int(m.session.Volume()*100)))
	}

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.modes[m.mode].View())
	b.WriteString("\n ")
	b.WriteString(status)
	b.WriteString("\n ")
	b.WriteString(helpStyle.Render(helpText()))
	return b.String()
}
