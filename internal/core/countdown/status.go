package countdown

// Status represents the current countdown phase.
type Status string

const (
	// StatusWait is the idle default before any phase has started.
	StatusWait Status = "wait"
	// StatusRunning means the work phase is counting down.
	StatusRunning Status = "running"
	// StatusStop means the work phase is paused.
	StatusStop Status = "stop"
	// StatusRest means the work phase just expired and the rest phase
	// has not been initialized yet.
	StatusRest Status = "rest"
	// StatusRestRunning means the rest phase is counting down.
	StatusRestRunning Status = "rest_running"
	// StatusRestWait means the rest phase expired and the clock awaits
	// the next action.
	StatusRestWait Status = "rest_wait"
)

// Snapshot is a point-in-time copy of the countdown state.
type Snapshot struct {
	Status    Status
	Remaining uint
}

// advance applies one tick to a countdown state and returns the next
// state. Only active phases decrement; an expired work phase moves to
// rest, an expired rest phase moves to rest-wait, and any other state
// observed at zero decays to wait.
func advance(status Status, remaining uint) (Status, uint) {
	if remaining > 0 {
		if status == StatusRunning || status == StatusRestRunning {
			return status, remaining - 1
		}
		return status, remaining
	}

	switch status {
	case StatusRunning:
		return StatusRest, 0
	case StatusRestRunning:
		return StatusRestWait, 0
	default:
		return StatusWait, 0
	}
}
