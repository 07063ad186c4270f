package player

import (
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/9ntonio/unknown-pleasures/internal/asset"
)

// audioOutput abstracts the oto player so the session state machine is
// testable without a sound device.
type audioOutput interface {
	Play()
	Pause()
	SetVolume(float64)
	Close() error
}

type outputFactory func(src io.Reader) (audioOutput, error)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   asset.SampleRate,
			ChannelCount: asset.Channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

func newOtoOutput(src io.Reader) (audioOutput, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}
	return ctx.NewPlayer(src), nil
}
