package asset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// Decode turns a fetched payload into a playback buffer. The format is
// chosen by the name's extension; decoder failures surface as
// DecodeError with the decoder's own message preserved.
func Decode(name string, data []byte) (*Buffer, error) {
	ext := strings.ToLower(path.Ext(name))
	var (
		pcm      []int16
		rate     int
		channels int
		err      error
	)
	switch ext {
	case ".mp3":
		pcm, rate, channels, err = decodeMP3(data)
	case ".wav":
		pcm, rate, channels, err = decodeWAV(data)
	case ".flac":
		pcm, rate, channels, err = decodeFLAC(data)
	case ".ogg":
		pcm, rate, channels, err = decodeOGG(data)
	default:
		return nil, &DecodeError{Format: ext, Err: fmt.Errorf("unsupported format (supported: .mp3, .wav, .flac, .ogg)")}
	}
	if err != nil {
		return nil, &DecodeError{Format: ext, Err: err}
	}
	if len(pcm) == 0 {
		return nil, &DecodeError{Format: ext, Err: fmt.Errorf("empty audio stream")}
	}
	return &Buffer{PCM: normalize(pcm, rate, channels)}, nil
}

func decodeMP3(data []byte) ([]int16, int, int, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, err
	}

	// go-mp3 always emits 16-bit LE stereo at the source rate
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, 0, err
	}
	return bytesToInt16(raw), dec.SampleRate(), 2, nil
}

func decodeWAV(data []byte) ([]int16, int, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	pcm := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		switch {
		case bitDepth == 8:
			// 8-bit WAV is unsigned
			pcm[i] = int16((s - 128) << 8)
		case bitDepth > 16:
			pcm[i] = clamp16(s >> (bitDepth - 16))
		default:
			pcm[i] = clamp16(s)
		}
	}
	return pcm, buf.Format.SampleRate, buf.Format.NumChannels, nil
}

func decodeFLAC(data []byte) ([]int16, int, int, error) {
	stream, err := flac.New(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, err
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	bps := int(info.BitsPerSample)
	pcm := make([]int16, 0, int(info.NSamples)*channels)

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, 0, err
		}
		nSamples := int(frame.Subframes[0].NSamples)
		for i := range nSamples {
			for ch := range channels {
				sample := int(frame.Subframes[ch].Samples[i])
				switch {
				case bps > 16:
					sample >>= bps - 16
				case bps < 16:
					sample <<= 16 - bps
				}
				pcm = append(pcm, clamp16(sample))
			}
		}
	}
	return pcm, int(info.SampleRate), channels, nil
}

func decodeOGG(data []byte) ([]int16, int, int, error) {
	samples, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, err
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		v := int(s * 32767)
		pcm[i] = clamp16(v)
	}
	return pcm, format.SampleRate, format.Channels, nil
}

func bytesToInt16(raw []byte) []int16 {
	out := make([]int16, len(raw)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return out
}
