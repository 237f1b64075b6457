// Package cue decides which audio cue, if any, to play for a countdown
// reading. Cues fire when a work phase crosses fixed remaining-second
// thresholds and when either phase reaches zero.
package cue

import (
	"os"
	"path/filepath"

	"intervalclock/internal/core/countdown"
)

// Player plays a single audio resource identified by a file path.
// Playback is best-effort: a missing or broken file must be swallowed
// by the implementation, never surfaced to the clock loop.
type Player interface {
	// Playing reports whether a previously requested cue is still
	// audible.
	Playing() bool
	// Play requests playback of the resource at path.
	Play(path string)
}

// Work-phase cue files by remaining seconds. Zero maps to the
// phase-end cue announcing the rest phase.
var workCues = map[uint]string{
	90: "90.mp3",
	60: "60.mp3",
	30: "30.mp3",
	10: "10.mp3",
	5:  "05.mp3",
	0:  "rest.mp3",
}

// nextCue announces the end of the rest phase.
const nextCue = "next.mp3"

// Dispatcher maps countdown snapshots to cue playback requests.
type Dispatcher struct {
	player Player
	dir    string
}

// NewDispatcher creates a dispatcher playing cue files from dir.
func NewDispatcher(player Player, dir string) *Dispatcher {
	return &Dispatcher{player: player, dir: dir}
}

// Observe examines one countdown snapshot and requests at most one cue.
// While a previous cue is still playing every new request is dropped,
// not queued: thresholds crossed during playback stay silent.
func (dispatcher *Dispatcher) Observe(snapshot countdown.Snapshot) {
	name, ok := cueFor(snapshot)
	if !ok {
		return
	}
	if dispatcher.player.Playing() {
		return
	}
	dispatcher.player.Play(filepath.Join(dispatcher.dir, name))
}

func cueFor(snapshot countdown.Snapshot) (string, bool) {
	switch snapshot.Status {
	case countdown.StatusRunning:
		name, ok := workCues[snapshot.Remaining]
		return name, ok
	case countdown.StatusRestRunning:
		if snapshot.Remaining == 0 {
			return nextCue, true
		}
	}
	return "", false
}

// DefaultDir returns the cue directory next to the working directory,
// matching the shipped assets layout.
func DefaultDir() string {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	return filepath.Join(workDir, "assets", "audio")
}
