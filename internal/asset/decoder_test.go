package asset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

// buildWAV assembles a minimal PCM16 WAV payload.
func buildWAV(sampleRate, channels int, samples []int16) []byte {
	var data bytes.Buffer
	for _, s := range samples {
		binary.Write(&data, binary.LittleEndian, s)
	}

	blockAlign := channels * 2
	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(36+data.Len()))
	out.WriteString("WAVE")
	out.WriteString("fmt ")
	binary.Write(&out, binary.LittleEndian, uint32(16))
	binary.Write(&out, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&out, binary.LittleEndian, uint16(channels))
	binary.Write(&out, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&out, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&out, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&out, binary.LittleEndian, uint16(16))
	out.WriteString("data")
	binary.Write(&out, binary.LittleEndian, uint32(data.Len()))
	out.Write(data.Bytes())
	return out.Bytes()
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode("track.aiff", []byte("x"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Format != ".aiff" {
		t.Fatalf("expected format .aiff in error, got %q", de.Format)
	}
}

func TestDecodeMalformedPayload(t *testing.T) {
	_, err := Decode("track.wav", []byte("not a wav file"))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError for malformed WAV, got %v", err)
	}
}

func TestDecodeStereoWAV(t *testing.T) {
	samples := make([]int16, SampleRate/10*Channels) // 100 ms
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	payload := buildWAV(SampleRate, Channels, samples)

	buf, err := Decode("tone.wav", payload)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(buf.PCM) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(buf.PCM))
	}
	got := buf.Duration()
	if got < 90*time.Millisecond || got > 110*time.Millisecond {
		t.Fatalf("expected ~100ms duration, got %v", got)
	}
}

func TestDecodeMonoWAVUpmixesToStereo(t *testing.T) {
	samples := make([]int16, 441) // 10 ms mono
	for i := range samples {
		samples[i] = 1000
	}
	payload := buildWAV(SampleRate, 1, samples)

	buf, err := Decode("mono.wav", payload)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(buf.PCM) != len(samples)*2 {
		t.Fatalf("expected stereo upmix to double samples, got %d", len(buf.PCM))
	}
	if buf.PCM[0] != buf.PCM[1] {
		t.Fatalf("expected identical L/R in upmix, got %d/%d", buf.PCM[0], buf.PCM[1])
	}
}

func TestDecodeResamplesToPlaybackRate(t *testing.T) {
	srcRate := 22050
	samples := make([]int16, srcRate/10*Channels) // 100 ms at half rate
	payload := buildWAV(srcRate, Channels, samples)

	buf, err := Decode("slow.wav", payload)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	got := buf.Duration()
	if got < 90*time.Millisecond || got > 110*time.Millisecond {
		t.Fatalf("expected duration preserved by resampling, got %v", got)
	}
}

func TestNormalizeKeepsNativeFormatUntouched(t *testing.T) {
	pcm := []int16{1, 2, 3, 4}
	out := normalize(pcm, SampleRate, Channels)
	if len(out) != len(pcm) {
		t.Fatalf("expected passthrough length %d, got %d", len(pcm), len(out))
	}
	for i := range pcm {
		if out[i] != pcm[i] {
			t.Fatalf("sample %d changed: %d != %d", i, out[i], pcm[i])
		}
	}
}

func TestReadMetadataFallsBackToFilename(t *testing.T) {
	m := ReadMetadata("music/love-will-tear-us-apart.mp3", []byte("no tags here"))
	if m.Title != "love-will-tear-us-apart" {
		t.Fatalf("expected filename fallback title, got %q", m.Title)
	}
}
