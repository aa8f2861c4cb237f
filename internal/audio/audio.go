// Package audio plays the background music clip.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
)

// Sink plays a single clip in the background.
type Sink interface {
	// Play starts the clip, optionally looping forever, at volumePercent (0-100).
	Play(loop bool, volumePercent int) error
	// Close stops playback and releases the device.
	Close()
}

// Nop is a Sink that plays nothing. It is used when audio is disabled or the
// clip could not be loaded.
type Nop struct{}

func (Nop) Play(bool, int) error { return nil }
func (Nop) Close()               {}

// SpeakerSink plays a clip through the beep speaker.
type SpeakerSink struct {
	mu          sync.Mutex
	clip        *assets.Clip
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSpeakerSink creates a sink for clip. The speaker is opened on the first Play.
func NewSpeakerSink(clip *assets.Clip) *SpeakerSink {
	return &SpeakerSink{clip: clip}
}

// Play starts the clip. Calling Play again restarts it with the new settings.
func (s *SpeakerSink) Play(loop bool, volumePercent int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil || s.clip.Buffer.Len() == 0 {
		return fmt.Errorf("audio: nothing to play")
	}

	if !s.initialized {
		sr := s.clip.Format.SampleRate
		if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
			return fmt.Errorf("audio: failed to open speaker: %w", err)
		}
		s.initialized = true
	}

	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = true
		speaker.Unlock()
	}

	s.ctrl = &beep.Ctrl{Streamer: Stream(s.clip.Buffer, loop, volumePercent)}
	speaker.Play(s.ctrl)
	return nil
}

// Close stops playback and closes the speaker.
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.ctrl = nil
	s.initialized = false
}

// Stream builds the playback chain for buf: the clip, looped when asked,
// behind a volume control.
func Stream(buf *beep.Buffer, loop bool, volumePercent int) beep.Streamer {
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	return Volume(s, volumePercent)
}

// Volume wraps s so that volumePercent maps onto a perceptual curve:
// 100 leaves the signal untouched, 50 halves it and 0 mutes it.
func Volume(s beep.Streamer, volumePercent int) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	switch {
	case volumePercent <= 0:
		v.Silent = true
	case volumePercent < 100:
		v.Volume = math.Log2(float64(volumePercent) / 100)
	}
	return v
}
