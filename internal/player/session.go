// Package player owns the playback session: the audio graph from the
// looping buffer through the analyser tap to the output device, and the
// state transitions the UI reacts to.
package player

import (
	"time"

	"github.com/9ntonio/unknown-pleasures/internal/analyser"
	"github.com/9ntonio/unknown-pleasures/internal/asset"
)

// tapSize holds enough recent samples for several FFT windows.
const tapSize = 8192

const defaultVolume = 0.8

// Session is the explicit owner of everything the draw loop touches:
// decoded buffer, playback state, sample tap, and waveform history.
// All methods are called from the UI's single update loop; only the
// tap is shared with the output's feeder goroutine.
type Session struct {
	state      State
	buffer     *asset.Buffer
	history    *analyser.History
	sampler    *analyser.Sampler
	tap        *Tap
	out        audioOutput
	newOutput  outputFactory
	volume     float64
	generation int
}

// NewSession creates an idle session backed by the oto output.
func NewSession() *Session {
	h := analyser.NewHistory(analyser.HistoryDepth)
	return &Session{
		state:     StateIdle,
		history:   h,
		sampler:   analyser.NewSampler(analyser.New(), h),
		newOutput: newOtoOutput,
		volume:    defaultVolume,
	}
}

// State returns the current playback state.
func (s *Session) State() State { return s.state }

// History returns the live waveform history.
func (s *Session) History() *analyser.History { return s.history }

// Generation identifies the current playing tick chain; ticks carrying
// a stale generation are dead and must not sample or reschedule.
func (s *Session) Generation() int { return s.generation }

// BeginLoading marks the session as waiting for the asset.
func (s *Session) BeginLoading() {
	s.state = StateLoading
}

// SetBuffer installs the decoded asset and arms playback.
func (s *Session) SetBuffer(b *asset.Buffer) {
	s.buffer = b
	s.state = StateReady
}

// Toggle flips between playing and stopped. With no buffer it fails
// with ErrNotLoaded and changes nothing. Toggling during a fade-out
// cancels the fade and restarts playback immediately.
func (s *Session) Toggle() error {
	if s.buffer == nil {
		return ErrNotLoaded
	}
	if s.state == StatePlaying {
		s.stop()
		return nil
	}
	return s.start()
}

// start builds a fresh source over the loaded buffer at offset 0,
// routes it through the tap, and begins output.
func (s *Session) start() error {
	s.history.Clear()
	s.sampler.Reset()
	s.tap = NewTap(newLoopReader(s.buffer.PCM), tapSize)

	out, err := s.newOutput(s.tap)
	if err != nil {
		return err
	}
	s.out = out
	s.out.SetVolume(s.volume)
	s.out.Play()

	s.generation++
	s.state = StatePlaying
	return nil
}

// stop tears down the output and leaves the history intact for the
// fade-out to snapshot.
func (s *Session) stop() {
	if s.out != nil {
		s.out.Pause()
		s.out.Close()
		s.out = nil
	}
	s.generation++
	s.state = StateStopping
}

// Snapshot copies the current history for the fade-out.
func (s *Session) Snapshot() []analyser.Frame {
	return s.history.Snapshot()
}

// FinishFade clears the history once the fade-out has fully decayed.
func (s *Session) FinishFade() {
	s.history.Clear()
	if s.state == StateStopping {
		s.state = StateReady
	}
}

// Sample pulls the most recent audio from the tap and records a frame,
// subject to the sampler's throttle. It reports whether the history
// advanced.
func (s *Session) Sample(now time.Time) bool {
	if s.state != StatePlaying || s.tap == nil {
		return false
	}
	return s.sampler.Sample(now, s.tap.Samples(analyser.FFTSize*2))
}

// Volume returns the output volume (0.0 to 1.0).
func (s *Session) Volume() float64 { return s.volume }

// AdjustVolume nudges the volume, clamped to 0.0-1.0.
func (s *Session) AdjustVolume(delta float64) {
	v := s.volume + delta
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.volume = v
	if s.out != nil {
		s.out.SetVolume(v)
	}
}

// Close releases the output device.
func (s *Session) Close() {
	if s.out != nil {
		s.out.Pause()
		s.out.Close()
		s.out = nil
	}
}
