package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 15)
	Seed      int64 // RNG seed for deterministic gameplay
	StartTier int   // 1-based difficulty tier to start at (0 = first tier)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 15,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Status summarizes a running game for the platform layer.
// Returned by Game.Status() so the loop can decide what to show.
type Status struct {
	Moves    int  // Accepted directional moves since the last reset
	Tier     int  // Current difficulty tier (1-based)
	Found    bool // Player marker currently overlaps the hidden marker
	Complete bool // Terminal state reached; only quit is accepted
}

// Cue names a sound or visual effect the platform should trigger.
type Cue string

const (
	CueNone       Cue = ""
	CueFound      Cue = "found"
	CueTierUp     Cue = "tier_up"
	CueRetry      Cue = "retry"
	CueComplete   Cue = "complete"
	CueRoundStart Cue = "round_start"
)

// RoundResult describes a finished round: the tier it was played on, the
// moves it took and what happens next ("tier_up", "stay", "complete" or
// "found" when the mode has no progression).
type RoundResult struct {
	Tier    int
	Moves   int
	Budget  int // 0 = unlimited
	Outcome string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	Status Status
	Cue    Cue          // Most significant event of this tick, if any
	Round  *RoundResult // Set on the tick a round ends
	Err    error        // Non-nil if the game cannot continue
}
