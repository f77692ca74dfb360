package settings

// stockDisplay holds the rendering defaults in effect before any profile
// is applied.
var stockDisplay = DisplayPreferences{
	FloatPrecision: 6,
	MaxRows:        60,
	MaxColumns:     20,
	LineWidth:      80,
}

// currentDisplay is the process-wide display state. Plain variable, no
// locking: callers serialize Apply/Reset against readers.
var currentDisplay = stockDisplay

// ApplyDisplayPreferences sets the process-wide rendering defaults used
// by the store package when formatting numeric cells and previewing
// tables.
func ApplyDisplayPreferences(d DisplayPreferences) {
	currentDisplay = d
}

// ResetDisplayPreferences restores the stock rendering defaults.
func ResetDisplayPreferences() {
	currentDisplay = stockDisplay
}

// Display returns the display preferences currently in effect.
func Display() DisplayPreferences {
	return currentDisplay
}
