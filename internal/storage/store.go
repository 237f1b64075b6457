package storage

import (
	"log"
	"sync"

	"intervalclock/internal/core/model"
)

// Store holds the live settings shared between the UI and the
// countdown engine, and persists every change to disk. It satisfies
// the engine's SettingsSource.
type Store struct {
	mu       sync.RWMutex
	appName  string
	settings model.Settings
}

// NewStore loads persisted settings, falling back to defaults when no
// file exists yet.
func NewStore(appName string) (*Store, error) {
	settings, err := LoadSettings(appName)
	if err != nil {
		return nil, err
	}
	return &Store{appName: appName, settings: settings}, nil
}

// Current returns a copy of the current settings.
func (store *Store) Current() model.Settings {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.settings
}

// Update applies mutate to the settings and saves the result. Save
// failures are logged, not surfaced; the in-memory value still wins.
func (store *Store) Update(mutate func(*model.Settings)) {
	store.mu.Lock()
	mutate(&store.settings)
	updated := store.settings
	store.mu.Unlock()

	if err := SaveSettings(store.appName, updated); err != nil {
		log.Printf("storage: save settings: %v", err)
	}
}
