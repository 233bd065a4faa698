package hotcold

import (
	"math/rand"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/core"
)

// GameState holds all mutable data of one hot/cold session.
// It is owned by a single Game and mutated only from its Step.
type GameState struct {
	ArenaSize    int
	Radius       int // Radius of both markers
	Step         int // Distance moved per directional command
	Tier         int // 1-based difficulty tier
	Player       core.Point
	Previous     core.Point // Player position at the last classification
	Target       core.Point
	Moves        int
	DebugVisible bool
	PlayerColor  core.Color
	Proximity    Proximity // Result of the last classification

	overlapMargin int
	clamp         bool
}

// NewGameState creates a state for the given tier with the player centered.
// The target is not placed until Setup is called.
func NewGameState(cfg config.HotColdConfig, tierNum int, tier config.TierConfig) GameState {
	s := GameState{
		ArenaSize:     cfg.ArenaSize,
		overlapMargin: cfg.OverlapMargin,
		clamp:         cfg.ClampMovement,
		PlayerColor:   core.ColorWhite,
	}
	s.SetTier(tierNum, tier)
	s.GoHome()
	s.Previous = s.Player
	return s
}

// Center returns the start position of the player marker.
func (s *GameState) Center() core.Point {
	return core.Pt(s.ArenaSize/2, s.ArenaSize/2)
}

// SetTier switches marker radius and step to the tier's values.
func (s *GameState) SetTier(tierNum int, tier config.TierConfig) {
	s.Tier = tierNum
	s.Radius = tier.Radius
	s.Step = tier.Step
}

// Setup starts a fresh round: moves and debug reveal are cleared, the
// target is redrawn and the player returns to the center. The tier is kept.
func (s *GameState) Setup(rng *rand.Rand) error {
	target, err := PlaceTarget(rng, s.ArenaSize, s.Radius, s.Center())
	if err != nil {
		return err
	}

	s.Moves = 0
	s.DebugVisible = false
	s.Target = target
	s.GoHome()
	s.Previous = s.Player
	s.PlayerColor = core.ColorWhite
	s.Proximity = ProximityUnchanged
	return nil
}

// GoHome re-centers the player marker without counting a move.
// Previous is left alone so the next classification judges the jump.
func (s *GameState) GoHome() {
	s.Player = s.Center()
}

// Reveal makes the hidden marker visible until the next round.
func (s *GameState) Reveal() {
	s.DebugVisible = true
}

// Move applies one directional command. Every move counts, including one
// that is clamped at the field edge. Non-directional actions are ignored.
func (s *GameState) Move(a core.Action) {
	if !a.IsMove() {
		return
	}

	switch a {
	case core.ActionWest:
		s.Player = s.Player.Add(-s.Step, 0)
	case core.ActionEast:
		s.Player = s.Player.Add(s.Step, 0)
	case core.ActionNorth:
		s.Player = s.Player.Add(0, -s.Step)
	case core.ActionSouth:
		s.Player = s.Player.Add(0, s.Step)
	}

	if s.clamp {
		s.Player = s.Player.ClampTo(0, s.ArenaSize)
	}
	s.Moves++
}

// Classify judges the player's movement since the previous classification,
// updates the player color and remembers the current position.
func (s *GameState) Classify() Proximity {
	s.Proximity = Classify(s.Previous, s.Player, s.Target, s.Radius, s.overlapMargin)
	s.PlayerColor = PlayerColor(s.Proximity, s.PlayerColor)
	s.Previous = s.Player
	return s.Proximity
}

// TargetColor returns the hidden marker color, or ColorDefault while it
// should blend into the background.
func (s *GameState) TargetColor() core.Color {
	switch {
	case s.Proximity == ProximityFound:
		return core.ColorYellow
	case s.DebugVisible:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}
