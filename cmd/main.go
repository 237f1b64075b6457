package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"intervalclock/internal/audio"
	"intervalclock/internal/core/countdown"
	"intervalclock/internal/core/cue"
	"intervalclock/internal/platform"
	"intervalclock/internal/storage"
	"intervalclock/internal/ui/clockwin"
	"intervalclock/internal/ui/tray"
)

const appName = "IntervalClock"

func main() {
	release, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer release()

	store, err := storage.NewStore(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
		return
	}

	engine := countdown.New(store, countdown.Config{TickInterval: time.Second})
	engine.Run()

	dispatcher := cue.NewDispatcher(audio.NewPlayer(), cue.DefaultDir())

	fyneApp := app.NewWithID("com.jachinyin.intervalclock")

	window := clockwin.New(fyneApp, store, engine, dispatcher)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnStart: func() {
				engine.Start()
			},
			OnTogglePause: func() {
				if snapshot, ok := engine.TrySnapshot(); ok {
					if snapshot.Status == countdown.StatusStop {
						engine.Resume()
					} else {
						engine.Pause()
					}
				}
			},
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
		window.SetOnSnapshot(func(snapshot countdown.Snapshot) {
			trayManager.SetStatus(statusLine(snapshot))
			trayManager.SetPhase(
				snapshot.Status == countdown.StatusRunning,
				snapshot.Status == countdown.StatusStop,
			)
		})
	}

	window.SetCloseIntercept(func() {
		fyneApp.Quit()
	})

	window.Run()
	fyneApp.Run()

	window.Stop()
	engine.Stop()
}

func statusLine(snapshot countdown.Snapshot) string {
	switch snapshot.Status {
	case countdown.StatusRunning:
		return fmt.Sprintf("work %s", formatRemaining(snapshot.Remaining))
	case countdown.StatusStop:
		return fmt.Sprintf("paused %s", formatRemaining(snapshot.Remaining))
	case countdown.StatusRestRunning:
		return fmt.Sprintf("rest %s", formatRemaining(snapshot.Remaining))
	case countdown.StatusRest:
		return "work over"
	case countdown.StatusRestWait:
		return "rest over"
	default:
		return "waiting"
	}
}

func formatRemaining(seconds uint) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
