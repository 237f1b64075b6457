// Package audio implements mp3 cue playback on the system speaker.
package audio

import (
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// All cues are resampled to one speaker rate so the device is
// initialized exactly once.
const speakerRate = beep.SampleRate(44100)

// Player plays one mp3 file at a time through the default output
// device. Load, decode, and device failures are swallowed: cue
// playback is best-effort and must never disturb the clock.
type Player struct {
	initOnce sync.Once
	initErr  error
	playing  atomic.Bool
}

// NewPlayer creates an idle player. The output device is opened lazily
// on the first Play call.
func NewPlayer() *Player {
	return &Player{}
}

// Playing reports whether a cue is currently audible.
func (player *Player) Playing() bool {
	return player.playing.Load()
}

// Play starts playback of the mp3 file at path. The request is dropped
// when a previous cue is still playing.
func (player *Player) Play(path string) {
	player.initOnce.Do(func() {
		player.initErr = speaker.Init(speakerRate, speakerRate.N(100*time.Millisecond))
	})
	if player.initErr != nil {
		return
	}

	if !player.playing.CompareAndSwap(false, true) {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		log.Printf("audio: open cue: %v", err)
		player.playing.Store(false)
		return
	}

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		log.Printf("audio: decode cue %s: %v", path, err)
		_ = file.Close()
		player.playing.Store(false)
		return
	}

	resampled := beep.Resample(4, format.SampleRate, speakerRate, streamer)
	speaker.Play(beep.Seq(resampled, beep.Callback(func() {
		_ = streamer.Close()
		player.playing.Store(false)
	})))
}
