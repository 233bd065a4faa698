package hotcold

// Phase names the coarse state of a session.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseFound    Phase = "found" // Free play only; campaign moves on immediately
	PhaseComplete Phase = "complete"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Phase        Phase
	Tier         int
	Radius       int
	Step         int
	Rounds       int
	Moves        int
	PlayerX      int
	PlayerY      int
	TargetX      int
	TargetY      int
	DebugVisible bool
	Proximity    Proximity
	Banner       string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.complete:
		phase = PhaseComplete
	case g.found:
		phase = PhaseFound
	}

	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Phase:        phase,
		Tier:         g.state.Tier,
		Radius:       g.state.Radius,
		Step:         g.state.Step,
		Rounds:       g.rounds,
		Moves:        g.state.Moves,
		PlayerX:      g.state.Player.X,
		PlayerY:      g.state.Player.Y,
		TargetX:      g.state.Target.X,
		TargetY:      g.state.Target.Y,
		DebugVisible: g.state.DebugVisible,
		Proximity:    g.state.Proximity,
		Banner:       g.banner,
	}
}
