package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance_ActivePhasesDecrement(t *testing.T) {
	status, remaining := advance(StatusRunning, 45)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, uint(44), remaining)

	status, remaining = advance(StatusRestRunning, 30)
	assert.Equal(t, StatusRestRunning, status)
	assert.Equal(t, uint(29), remaining)
}

func TestAdvance_InactivePhasesHold(t *testing.T) {
	for _, held := range []Status{StatusWait, StatusStop, StatusRest, StatusRestWait} {
		status, remaining := advance(held, 20)
		assert.Equal(t, held, status, "status %s must not advance above zero", held)
		assert.Equal(t, uint(20), remaining, "status %s must not decrement", held)
	}
}

func TestAdvance_ExpiryTransitions(t *testing.T) {
	status, remaining := advance(StatusRunning, 0)
	assert.Equal(t, StatusRest, status)
	assert.Equal(t, uint(0), remaining)

	status, remaining = advance(StatusRestRunning, 0)
	assert.Equal(t, StatusRestWait, status)
	assert.Equal(t, uint(0), remaining)
}

func TestAdvance_ZeroCatchAll(t *testing.T) {
	// Any non-active status observed at zero decays to wait, including
	// an unpolled rest state.
	for _, stale := range []Status{StatusWait, StatusStop, StatusRest, StatusRestWait} {
		status, remaining := advance(stale, 0)
		assert.Equal(t, StatusWait, status, "status %s at zero must decay to wait", stale)
		assert.Equal(t, uint(0), remaining)
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	all := []Status{StatusWait, StatusRunning, StatusStop, StatusRest, StatusRestRunning, StatusRestWait}
	for _, status := range all {
		for _, remaining := range []uint{0, 1, 90} {
			firstStatus, firstRemaining := advance(status, remaining)
			secondStatus, secondRemaining := advance(status, remaining)
			assert.Equal(t, firstStatus, secondStatus)
			assert.Equal(t, firstRemaining, secondRemaining)
		}
	}
}

func TestAdvance_NeverNegative(t *testing.T) {
	status, remaining := advance(StatusRunning, 1)
	assert.Equal(t, uint(0), remaining)

	// The tick after reaching zero changes status, never re-decrements.
	status, remaining = advance(status, remaining)
	assert.Equal(t, StatusRest, status)
	assert.Equal(t, uint(0), remaining)
}
