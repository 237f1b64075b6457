package countdown

import (
	"sync"
	"time"

	"intervalclock/internal/core/model"
)

// SettingsSource provides the current settings. The engine reads them
// fresh on every Start and CheckStatus so duration edits made
// mid-session take effect when the next phase begins.
type SettingsSource interface {
	Current() model.Settings
}

// Config contains runtime options for the Engine.
type Config struct {
	TickInterval time.Duration
}

// Engine owns the countdown state and advances it once per tick
// interval from a background goroutine.
//
// Both fields live under one mutex, so every phase transition is
// applied atomically. Every access to the state, by the ticker or by a
// command, is a non-blocking TryLock attempt: on contention the
// operation is skipped for that cycle rather than queued. A tick lost
// to contention is lost permanently; the clock is a best-effort
// once-per-second decrementer, not a real-time source.
type Engine struct {
	mu        sync.Mutex
	status    Status
	remaining uint

	source  SettingsSource
	options Config

	lifecycle sync.Mutex
	running   bool
	stopCh    chan struct{}
}

// New creates an Engine in the wait state.
func New(source SettingsSource, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Engine{
		status:  StatusWait,
		source:  source,
		options: options,
		stopCh:  make(chan struct{}),
	}
}

// Run launches the ticking goroutine. Calling Run more than once has
// no effect.
func (engine *Engine) Run() {
	engine.lifecycle.Lock()
	if engine.running {
		engine.lifecycle.Unlock()
		return
	}
	engine.running = true
	engine.lifecycle.Unlock()

	go engine.run()
}

// Stop terminates the ticking goroutine. The engine state is left as
// is; nothing is persisted during a tick, so quitting mid-iteration is
// safe.
func (engine *Engine) Stop() {
	engine.lifecycle.Lock()
	defer engine.lifecycle.Unlock()
	if !engine.running {
		return
	}
	engine.running = false
	close(engine.stopCh)
}

// Start begins a new work phase, resetting the countdown to the
// current work duration regardless of the prior status. On contention
// the command is dropped; the caller may retry on its next cycle.
func (engine *Engine) Start() {
	settings := engine.source.Current()

	if !engine.mu.TryLock() {
		return
	}
	engine.remaining = settings.RunSecs
	engine.status = StatusRunning
	engine.mu.Unlock()
}

// Pause freezes a running work phase.
func (engine *Engine) Pause() {
	if !engine.mu.TryLock() {
		return
	}
	if engine.status == StatusRunning {
		engine.status = StatusStop
	}
	engine.mu.Unlock()
}

// Resume continues a paused work phase.
func (engine *Engine) Resume() {
	if !engine.mu.TryLock() {
		return
	}
	if engine.status == StatusStop {
		engine.status = StatusRunning
	}
	engine.mu.Unlock()
}

// CheckStatus runs the host-side transitions and is meant to be called
// on every poll cycle. It initializes the rest phase when the work
// phase has expired, reading the rest duration at that moment, and
// starts the next work phase when the rest phase is over and auto-next
// is enabled.
func (engine *Engine) CheckStatus() {
	settings := engine.source.Current()

	autoNext := false
	if engine.mu.TryLock() {
		if engine.status == StatusRest {
			engine.remaining = settings.RestSecs
			engine.status = StatusRestRunning
		}
		autoNext = engine.status == StatusRestWait && settings.AutoNext
		engine.mu.Unlock()
	}

	if autoNext {
		engine.Start()
	}
}

// TrySnapshot returns a copy of the current state. It reports false
// when the state is held by another actor this instant; the caller
// simply goes without a reading for that cycle.
func (engine *Engine) TrySnapshot() (Snapshot, bool) {
	if !engine.mu.TryLock() {
		return Snapshot{}, false
	}
	snapshot := Snapshot{Status: engine.status, Remaining: engine.remaining}
	engine.mu.Unlock()
	return snapshot, true
}

func (engine *Engine) run() {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-engine.stopCh:
			return
		case <-ticker.C:
			engine.tick()
		}
	}
}

func (engine *Engine) tick() {
	if !engine.mu.TryLock() {
		return
	}
	engine.status, engine.remaining = advance(engine.status, engine.remaining)
	engine.mu.Unlock()
}
