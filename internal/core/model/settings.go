package model

// Settings contains user-tunable clock options.
type Settings struct {
	// RunSecs is the length of the work phase in whole seconds.
	RunSecs uint
	// RestSecs is the length of the rest phase in whole seconds.
	RestSecs uint
	// AutoNext starts the next work phase automatically when a rest
	// phase ends.
	AutoNext bool

	// FontSize is the size of the countdown text.
	FontSize float32
	// Transparent is the window panel opacity, 0..1.
	Transparent float64
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		RunSecs:     45,
		RestSecs:    30,
		AutoNext:    false,
		FontSize:    50,
		Transparent: 1,
	}
}
