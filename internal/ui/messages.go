package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/9ntonio/unknown-pleasures/internal/asset"
)

type loadedMsg struct {
	buffer *asset.Buffer
	meta   asset.Metadata
}

type loadFailedMsg struct {
	err error
}

// frameMsg drives the playing draw loop; gen ties it to one playback
// run so stale chains die silently.
type frameMsg struct {
	gen int
	at  time.Time
}

// fadeMsg drives the independent fade-out chain.
type fadeMsg struct {
	at time.Time
}

// frameInterval schedules ticks at roughly display refresh; the
// sampler applies its own coarser throttle.
const frameInterval = 16 * time.Millisecond

func loadCmd(target string) tea.Cmd {
	return func() tea.Msg {
		data, name, err := asset.Fetch(context.Background(), target)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		buf, err := asset.Decode(name, data)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{buffer: buf, meta: asset.ReadMetadata(name, data)}
	}
}

func frameTickCmd(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

func fadeTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return fadeMsg{at: t}
	})
}
