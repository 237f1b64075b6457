package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart       func()
	OnTogglePause func()
	OnQuit        func()
}

// Manager handles the system tray menu.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: waiting", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})
	manager.pauseItem.Disabled = true

	manager.refreshMenu()

	return manager
}

// SetStatus updates the status line shown in the menu.
func (manager *Manager) SetStatus(status string) {
	label := fmt.Sprintf("Status: %s", status)
	if label == manager.statusItem.Label {
		return
	}
	manager.statusItem.Label = label
	manager.refreshMenu()
}

// SetPhase enables the pause toggle for pausable phases and relabels
// it.
func (manager *Manager) SetPhase(running, paused bool) {
	disabled := !running && !paused
	label := "Pause"
	if paused {
		label = "Resume"
	}
	if manager.pauseItem.Disabled == disabled && manager.pauseItem.Label == label {
		return
	}
	manager.pauseItem.Disabled = disabled
	manager.pauseItem.Label = label
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("IntervalClock",
		manager.statusItem,
		fyne.NewMenuItem("Start", func() {
			if manager.callbacks.OnStart != nil {
				manager.callbacks.OnStart()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
