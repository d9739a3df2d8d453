package quiz

// Difficulty is an ordered level. Adjacent levels are reached through
// Up/Down only, so adding a level later cannot introduce index skips.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty maps the wire form back to a level, defaulting to Medium
// for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// Up returns the next harder level, saturating at Hard.
func (d Difficulty) Up() Difficulty {
	if d >= Hard {
		return Hard
	}
	return d + 1
}

// Down returns the next easier level, saturating at Easy.
func (d Difficulty) Down() Difficulty {
	if d <= Easy {
		return Easy
	}
	return d - 1
}

// MarshalText serializes the level for JSON content files.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the level from JSON content files.
func (d *Difficulty) UnmarshalText(text []byte) error {
	*d = ParseDifficulty(string(text))
	return nil
}

const (
	// DefaultWindow is the number of recent outcomes the adapter considers.
	DefaultWindow = 5

	// raiseThreshold is the window accuracy at which the level steps up.
	raiseThreshold = 0.8

	// dropThreshold is the window accuracy at which the level steps down.
	dropThreshold = 0.4
)

// Adapter tracks a rolling window of answer outcomes and moves the
// difficulty level one step at a time based on recent accuracy.
type Adapter struct {
	level   Difficulty
	history []bool
	window  int
}

// NewAdapter creates an adapter starting at the given level.
// windowSize <= 0 falls back to DefaultWindow.
func NewAdapter(start Difficulty, windowSize int) *Adapter {
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	return &Adapter{level: start, window: windowSize}
}

// Record appends an outcome and adjusts the level. The window deliberately
// operates on whatever history exists, even when shorter than the
// configured size, so the first few answers adapt quickly.
func (a *Adapter) Record(correct bool) {
	a.history = append(a.history, correct)
	if len(a.history) > a.window {
		a.history = a.history[len(a.history)-a.window:]
	}

	acc := a.Accuracy()
	switch {
	case acc >= raiseThreshold:
		a.level = a.level.Up()
	case acc <= dropThreshold:
		a.level = a.level.Down()
	}
}

// Level returns the current difficulty.
func (a *Adapter) Level() Difficulty {
	return a.level
}

// Accuracy returns the correct fraction over the window, or 0.5 (neutral)
// when no outcomes have been recorded.
func (a *Adapter) Accuracy() float64 {
	if len(a.history) == 0 {
		return 0.5
	}
	correct := 0
	for _, ok := range a.history {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(a.history))
}

// History returns a copy of the rolling window, oldest first. Used by the
// snapshot layer to persist adapter state between runs.
func (a *Adapter) History() []bool {
	out := make([]bool, len(a.history))
	copy(out, a.history)
	return out
}

// Restore replaces the adapter state from a snapshot.
func (a *Adapter) Restore(level Difficulty, history []bool) {
	a.level = level
	a.history = a.history[:0]
	for _, ok := range history {
		a.history = append(a.history, ok)
	}
	if len(a.history) > a.window {
		a.history = a.history[len(a.history)-a.window:]
	}
}
