// Package clockwin implements the main countdown window: the control
// row, the two duration inputs, and the large remaining-seconds
// display. Its poll loop is the host side of the countdown engine.
package clockwin

import (
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"intervalclock/internal/core/countdown"
	"intervalclock/internal/core/cue"
	"intervalclock/internal/core/model"
	"intervalclock/internal/storage"
)

// How often the window polls the engine. The countdown has one-second
// resolution, so this comfortably observes every value.
const pollInterval = 100 * time.Millisecond

var (
	colorDefault     = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	colorRest        = color.NRGBA{R: 0, G: 100, B: 0, A: 255}
	colorExpiring    = color.NRGBA{R: 139, G: 0, B: 0, A: 255}
	colorBackground  = color.NRGBA{R: 27, G: 27, B: 27, A: 255}
	expiringFromSecs = uint(5)
)

// Window is the main clock window.
type Window struct {
	window     fyne.Window
	store      *storage.Store
	engine     *countdown.Engine
	dispatcher *cue.Dispatcher

	autoNext      *widget.Check
	startButton   *widget.Button
	toggleButton  *widget.Button
	runEntry      *widget.Entry
	restEntry     *widget.Entry
	remainingText *canvas.Text
	background    *canvas.Rectangle

	// lastStatus is written by render and read by the toggle button
	// handler; both run on the Fyne event thread.
	lastStatus countdown.Status

	onSnapshot func(countdown.Snapshot)
	stopCh     chan struct{}
}

// New builds the clock window. The poll loop is not running yet; call
// Run once the app is up.
func New(app fyne.App, store *storage.Store, engine *countdown.Engine, dispatcher *cue.Dispatcher) *Window {
	window := app.NewWindow("IntervalClock")

	settings := store.Current()

	clock := &Window{
		window:     window,
		store:      store,
		engine:     engine,
		dispatcher: dispatcher,
		stopCh:     make(chan struct{}),
	}

	clock.autoNext = widget.NewCheck("Auto next round", func(checked bool) {
		store.Update(func(settings *model.Settings) {
			settings.AutoNext = checked
		})
	})
	clock.autoNext.SetChecked(settings.AutoNext)

	clock.startButton = widget.NewButton("Start", func() {
		engine.Start()
	})

	clock.toggleButton = widget.NewButton("Pause", func() {
		switch clock.lastStatus {
		case countdown.StatusRunning:
			engine.Pause()
		case countdown.StatusStop:
			engine.Resume()
		}
	})
	clock.toggleButton.Hide()

	clock.runEntry = newSecondsEntry(settings.RunSecs, func(secs uint) {
		store.Update(func(settings *model.Settings) {
			settings.RunSecs = secs
		})
	})
	clock.restEntry = newSecondsEntry(settings.RestSecs, func(secs uint) {
		store.Update(func(settings *model.Settings) {
			settings.RestSecs = secs
		})
	})

	clock.remainingText = canvas.NewText("0", colorDefault)
	clock.remainingText.Alignment = fyne.TextAlignCenter
	clock.remainingText.TextStyle = fyne.TextStyle{Bold: true}
	clock.remainingText.TextSize = settings.FontSize

	clock.background = canvas.NewRectangle(applyAlpha(colorBackground, settings.Transparent))

	controls := container.NewHBox(clock.autoNext, clock.startButton, clock.toggleButton)
	inputs := container.NewHBox(
		widget.NewLabel("Work"), clock.runEntry,
		widget.NewLabel("Rest"), clock.restEntry,
	)
	top := container.NewVBox(controls, inputs)
	content := container.NewBorder(top, nil, nil, nil, container.NewCenter(clock.remainingText))

	window.SetContent(container.NewStack(clock.background, content))
	window.Resize(fyne.NewSize(550, 450))

	return clock
}

// SetOnSnapshot registers an extra per-cycle observer, e.g. the tray.
func (clock *Window) SetOnSnapshot(observer func(countdown.Snapshot)) {
	clock.onSnapshot = observer
}

// Run starts the poll loop and shows the window.
func (clock *Window) Run() {
	go clock.pollLoop()
	clock.window.Show()
}

// Stop terminates the poll loop.
func (clock *Window) Stop() {
	select {
	case <-clock.stopCh:
	default:
		close(clock.stopCh)
	}
}

// SetCloseIntercept forwards a close handler to the native window.
func (clock *Window) SetCloseIntercept(handler func()) {
	clock.window.SetCloseIntercept(handler)
}

func (clock *Window) pollLoop() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-clock.stopCh:
			return
		case <-ticker.C:
			clock.poll()
		}
	}
}

// poll runs one host cycle: engine transitions, cue dispatch, redraw.
// A snapshot lost to contention means nothing is drawn or played this
// cycle; the next cycle catches up.
func (clock *Window) poll() {
	clock.engine.CheckStatus()

	snapshot, ok := clock.engine.TrySnapshot()
	if !ok {
		return
	}

	clock.dispatcher.Observe(snapshot)
	if clock.onSnapshot != nil {
		clock.onSnapshot(snapshot)
	}

	fyne.Do(func() {
		clock.render(snapshot)
	})
}

func (clock *Window) render(snapshot countdown.Snapshot) {
	clock.lastStatus = snapshot.Status

	settings := clock.store.Current()

	clock.remainingText.Text = strconv.FormatUint(uint64(snapshot.Remaining), 10)
	clock.remainingText.TextSize = settings.FontSize
	clock.remainingText.Color = remainingColor(snapshot)
	clock.remainingText.Refresh()

	switch snapshot.Status {
	case countdown.StatusRunning:
		clock.toggleButton.SetText("Pause")
		clock.toggleButton.Show()
	case countdown.StatusStop:
		clock.toggleButton.SetText("Resume")
		clock.toggleButton.Show()
	default:
		clock.toggleButton.Hide()
	}
}

func remainingColor(snapshot countdown.Snapshot) color.Color {
	switch {
	case snapshot.Status == countdown.StatusRestRunning:
		return colorRest
	case snapshot.Status == countdown.StatusRunning && snapshot.Remaining <= expiringFromSecs:
		return colorExpiring
	default:
		return colorDefault
	}
}

func newSecondsEntry(initial uint, onChange func(uint)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.FormatUint(uint64(initial), 10))
	entry.OnChanged = func(text string) {
		if text == "" {
			// An emptied field means zero, matching a cleared input.
			onChange(0)
			return
		}
		secs, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return
		}
		onChange(uint(secs))
	}
	return entry
}

func applyAlpha(base color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 || opacity >= 1 {
		return base
	}
	base.A = uint8(opacity * float64(base.A))
	return base
}
