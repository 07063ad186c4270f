// Package asset fetches an audio resource and decodes it into the
// in-memory PCM buffer that playback loops over.
package asset

import "time"

// Playback format every decoded buffer is normalized to.
const (
	SampleRate = 44100
	Channels   = 2
)

// Buffer is a fully decoded audio asset: interleaved stereo int16 PCM
// at SampleRate.
type Buffer struct {
	PCM []int16
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	frames := len(b.PCM) / Channels
	return time.Duration(float64(frames) / SampleRate * float64(time.Second))
}

// normalize converts decoded PCM of any channel count and rate into the
// playback format, mixing channels and linearly resampling as needed.
func normalize(pcm []int16, rate, channels int) []int16 {
	if channels < 1 {
		return nil
	}

	// Up/down-mix to stereo first
	frames := len(pcm) / channels
	stereo := pcm
	if channels != Channels {
		stereo = make([]int16, frames*Channels)
		for i := range frames {
			switch channels {
			case 1:
				v := pcm[i]
				stereo[i*2] = v
				stereo[i*2+1] = v
			default:
				// Fold extra channels into L/R
				var l, r int
				for c := range channels {
					v := int(pcm[i*channels+c])
					if c%2 == 0 {
						l += v
					} else {
						r += v
					}
				}
				half := (channels + 1) / 2
				stereo[i*2] = clamp16(l / half)
				stereo[i*2+1] = clamp16(r / (channels / 2))
			}
		}
	}

	if rate == SampleRate || rate <= 0 || frames == 0 {
		return stereo
	}

	// Linear resample to SampleRate
	outFrames := int(float64(frames) * SampleRate / float64(rate))
	out := make([]int16, outFrames*Channels)
	for i := range outFrames {
		pos := float64(i) * float64(rate) / SampleRate
		lo := int(pos)
		hi := lo + 1
		if hi >= frames {
			hi = frames - 1
		}
		t := pos - float64(lo)
		for c := range Channels {
			a := float64(stereo[lo*Channels+c])
			b := float64(stereo[hi*Channels+c])
			out[i*Channels+c] = int16(a + (b-a)*t)
		}
	}
	return out
}

func clamp16(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
