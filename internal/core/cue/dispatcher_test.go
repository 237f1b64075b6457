package cue

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervalclock/internal/core/countdown"
)

type spyPlayer struct {
	playing  bool
	requests []string
}

func (player *spyPlayer) Playing() bool {
	return player.playing
}

func (player *spyPlayer) Play(path string) {
	player.requests = append(player.requests, filepath.Base(path))
}

func TestDispatcher_WorkThresholds(t *testing.T) {
	expected := map[uint]string{
		90: "90.mp3",
		60: "60.mp3",
		30: "30.mp3",
		10: "10.mp3",
		5:  "05.mp3",
		0:  "rest.mp3",
	}

	for remaining, file := range expected {
		player := &spyPlayer{}
		dispatcher := NewDispatcher(player, "assets/audio")

		dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRunning, Remaining: remaining})

		require.Len(t, player.requests, 1, "remaining=%d must cue", remaining)
		assert.Equal(t, file, player.requests[0])
	}
}

func TestDispatcher_OffThresholdStaysSilent(t *testing.T) {
	player := &spyPlayer{}
	dispatcher := NewDispatcher(player, "assets/audio")

	for _, remaining := range []uint{91, 89, 61, 45, 11, 6, 4, 1} {
		dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRunning, Remaining: remaining})
	}

	assert.Empty(t, player.requests)
}

func TestDispatcher_RestPhaseEnd(t *testing.T) {
	player := &spyPlayer{}
	dispatcher := NewDispatcher(player, "assets/audio")

	dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRestRunning, Remaining: 0})

	require.Len(t, player.requests, 1)
	assert.Equal(t, "next.mp3", player.requests[0])
}

func TestDispatcher_RestThresholdsStaySilent(t *testing.T) {
	player := &spyPlayer{}
	dispatcher := NewDispatcher(player, "assets/audio")

	// Work-phase thresholds mean nothing during the rest phase.
	for _, remaining := range []uint{90, 60, 30, 10, 5} {
		dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRestRunning, Remaining: remaining})
	}

	assert.Empty(t, player.requests)
}

func TestDispatcher_InactiveStatusesStaySilent(t *testing.T) {
	player := &spyPlayer{}
	dispatcher := NewDispatcher(player, "assets/audio")

	for _, status := range []countdown.Status{
		countdown.StatusWait, countdown.StatusStop, countdown.StatusRest, countdown.StatusRestWait,
	} {
		dispatcher.Observe(countdown.Snapshot{Status: status, Remaining: 0})
		dispatcher.Observe(countdown.Snapshot{Status: status, Remaining: 60})
	}

	assert.Empty(t, player.requests)
}

func TestDispatcher_DropsWhilePlaying(t *testing.T) {
	player := &spyPlayer{}
	dispatcher := NewDispatcher(player, "assets/audio")

	dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRunning, Remaining: 60})
	require.Len(t, player.requests, 1)

	// While the 60s cue reports playing, later thresholds are dropped,
	// not queued.
	player.playing = true
	dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRunning, Remaining: 30})
	dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRunning, Remaining: 10})
	assert.Len(t, player.requests, 1)

	player.playing = false
	dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRunning, Remaining: 5})
	assert.Equal(t, []string{"60.mp3", "05.mp3"}, player.requests)
}

func TestDispatcher_PathsJoinDirectory(t *testing.T) {
	raw := &rawSpy{}
	dispatcher := NewDispatcher(raw, filepath.Join("some", "dir"))

	dispatcher.Observe(countdown.Snapshot{Status: countdown.StatusRunning, Remaining: 90})

	require.Len(t, raw.paths, 1)
	assert.Equal(t, filepath.Join("some", "dir", "90.mp3"), raw.paths[0])
}

type rawSpy struct {
	paths []string
}

func (spy *rawSpy) Playing() bool    { return false }
func (spy *rawSpy) Play(path string) { spy.paths = append(spy.paths, path) }
