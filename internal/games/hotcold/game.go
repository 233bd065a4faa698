// Package hotcold implements the hot/cold locator game: the player steers a
// visible marker towards a hidden one, guided only by whether each move made
// the marker warmer or colder.
package hotcold

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/core"
	"github.com/vovakirdan/tui-hotcold/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Tiers tighten as targets are found within budget
	ModeFree     Mode = "free"     // Tier never changes; rounds restart on Reset
)

// moveOrder is the order directional commands are applied within a tick.
// Vertical moves come last so they decide the color when both axes move.
var moveOrder = [...]core.Action{
	core.ActionWest,
	core.ActionEast,
	core.ActionNorth,
	core.ActionSouth,
}

// Game implements the hot/cold game on top of GameState.
type Game struct {
	mode   Mode
	cfg    config.HotColdConfig
	ladder *config.Ladder
	rng    *rand.Rand
	tick   uint64

	state    GameState
	rounds   int  // Rounds started since Reset
	found    bool // Free mode: target found and not yet reset
	complete bool

	banner      string
	bannerTicks int
	echo        *echo
}

// echo keeps the last found target on screen for a moment after the board
// has already moved on to the next round.
type echo struct {
	target core.Point
	radius int
	ticks  int
}

// New creates a new campaign mode game.
func New(cfg config.HotColdConfig) *Game {
	return &Game{
		mode:   ModeCampaign,
		cfg:    cfg,
		ladder: config.NewLadder(cfg.Tiers),
	}
}

// NewFree creates a new free play game.
func NewFree(cfg config.HotColdConfig) *Game {
	g := New(cfg)
	g.mode = ModeFree
	return g
}

func init() {
	registry.Register("hotcold", func(cfg config.HotColdConfig) registry.Game {
		return New(cfg)
	})
	registry.Register("hotcold_free", func(cfg config.HotColdConfig) registry.Game {
		return NewFree(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFree {
		return "hotcold_free"
	}
	return "hotcold"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFree {
		return "Hot/Cold (Free Play)"
	}
	return "Hot/Cold"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes the session at cfg.StartTier and starts the first round.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.rounds = 0
	g.found = false
	g.complete = false
	g.banner = ""
	g.bannerTicks = 0
	g.echo = nil

	tier := g.ladder.Clamp(cfg.StartTier)
	g.state = NewGameState(g.cfg, tier, g.ladder.Tier(tier))
	return g.startRound()
}

// startRound redraws the target and re-centers the player at the current tier.
func (g *Game) startRound() error {
	if err := g.state.Setup(g.rng); err != nil {
		return fmt.Errorf("hotcold: cannot start round on %s: %w", g.ladder.Name(g.state.Tier), err)
	}
	g.rounds++
	g.found = false
	return nil
}

// Step advances the game by one tick.
//
// Commands are applied in a fixed order: reveal, reset, home, then the four
// directions. When the player moved, the move is classified once, and a
// found target is turned into a tier decision in the same tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.ageEffects()

	if g.complete {
		return g.result(core.CueNone, nil, nil)
	}

	cue := core.CueNone

	if in.Has(core.ActionReveal) {
		g.state.Reveal()
	}
	if in.Has(core.ActionReset) {
		g.echo = nil
		if err := g.startRound(); err != nil {
			return g.result(cue, nil, err)
		}
		cue = core.CueRoundStart
	}

	moved := false
	if in.Has(core.ActionHome) {
		g.state.GoHome()
		moved = true
	}
	for _, a := range moveOrder {
		if in.Has(a) {
			g.state.Move(a)
			moved = true
		}
	}

	if !moved {
		return g.result(cue, nil, nil)
	}

	if g.state.Classify() != ProximityFound {
		g.found = false
		return g.result(cue, nil, nil)
	}

	if g.mode == ModeFree {
		return g.freeFound(cue)
	}
	return g.progress()
}

// freeFound reports a find once; staying on the target is not a new find.
func (g *Game) freeFound(cue core.Cue) core.StepResult {
	if g.found {
		return g.result(cue, nil, nil)
	}
	g.found = true

	round := &core.RoundResult{
		Tier:    g.state.Tier,
		Moves:   g.state.Moves,
		Outcome: "found",
	}
	g.showBanner(fmt.Sprintf("Found in %d moves! Press R for a new round", g.state.Moves))
	return g.result(core.CueFound, round, nil)
}

// progress applies the tier decision for a target found this tick.
func (g *Game) progress() core.StepResult {
	tier, moves := g.state.Tier, g.state.Moves
	adv := g.ladder.Advance(tier, moves)
	round := &core.RoundResult{
		Tier:    tier,
		Moves:   moves,
		Budget:  g.ladder.Budget(tier),
		Outcome: adv.Outcome.String(),
	}

	if adv.Outcome == config.OutcomeComplete {
		g.complete = true
		g.showBanner(fmt.Sprintf("Found in %d moves. All %d levels cleared!", moves, g.ladder.Len()))
		return g.result(core.CueComplete, round, nil)
	}

	if g.cfg.BannerTicks > 0 {
		g.echo = &echo{target: g.state.Target, radius: g.state.Radius, ticks: g.cfg.BannerTicks}
	}

	cue := core.CueRetry
	if adv.Outcome == config.OutcomeTierUp {
		cue = core.CueTierUp
		g.state.SetTier(adv.Tier, g.ladder.Tier(adv.Tier))
		g.showBanner(fmt.Sprintf("Found in %d moves! On to %s", moves, g.ladder.Name(adv.Tier)))
	} else {
		g.showBanner(fmt.Sprintf("Found in %d moves, budget is %d. %s again", moves, round.Budget, g.ladder.Name(tier)))
	}

	if err := g.startRound(); err != nil {
		return g.result(cue, round, err)
	}
	return g.result(cue, round, nil)
}

// showBanner displays text for BannerTicks ticks; the completion banner
// stays regardless.
func (g *Game) showBanner(text string) {
	if g.cfg.BannerTicks == 0 && !g.complete {
		return
	}
	g.banner = text
	g.bannerTicks = g.cfg.BannerTicks
}

// ageEffects counts down the banner and echo. The final banner stays.
func (g *Game) ageEffects() {
	if g.bannerTicks > 0 && !g.complete {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}
	if g.echo != nil {
		g.echo.ticks--
		if g.echo.ticks <= 0 {
			g.echo = nil
		}
	}
}

func (g *Game) result(cue core.Cue, round *core.RoundResult, err error) core.StepResult {
	return core.StepResult{
		Status: g.Status(),
		Cue:    cue,
		Round:  round,
		Err:    err,
	}
}

// Status returns the current game status.
func (g *Game) Status() core.Status {
	return core.Status{
		Moves:    g.state.Moves,
		Tier:     g.state.Tier,
		Found:    g.state.Proximity == ProximityFound,
		Complete: g.complete,
	}
}

// TierName returns the display name of the current tier.
func (g *Game) TierName() string {
	return g.ladder.Name(g.state.Tier)
}

// Budget returns the move budget of the current tier (0 = unlimited).
// Free play has no budget.
func (g *Game) Budget() int {
	if g.mode == ModeFree {
		return 0
	}
	return g.ladder.Budget(g.state.Tier)
}
