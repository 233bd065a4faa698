package config

// Outcome is the result of finding the hidden marker on a tier.
type Outcome int

const (
	OutcomeStay     Outcome = iota // Over budget: replay the same tier
	OutcomeTierUp                  // Within budget: move to the next tier
	OutcomeComplete                // Last tier cleared: the game is over
)

// String returns a lowercase name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeStay:
		return "stay"
	case OutcomeTierUp:
		return "tier_up"
	case OutcomeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Advance is the decision made when the target is found.
type Advance struct {
	Outcome Outcome
	Tier    int // Tier to play next (1-based); unchanged on stay and complete
}

// Ladder walks the configured tiers from easiest to hardest.
// Tiers are numbered from 1.
type Ladder struct {
	tiers []TierConfig
}

// NewLadder creates a ladder over the given tiers.
func NewLadder(tiers []TierConfig) *Ladder {
	return &Ladder{tiers: tiers}
}

// Len returns the number of tiers.
func (l *Ladder) Len() int {
	return len(l.tiers)
}

// Clamp restricts a tier number to the ladder. 0 selects the first tier.
func (l *Ladder) Clamp(tier int) int {
	if tier < 1 {
		return 1
	}
	if tier > len(l.tiers) {
		return len(l.tiers)
	}
	return tier
}

// Tier returns the configuration for a 1-based tier number.
func (l *Ladder) Tier(tier int) TierConfig {
	return l.tiers[l.Clamp(tier)-1]
}

// Budget returns the move budget of a tier; 0 means unlimited.
func (l *Ladder) Budget(tier int) int {
	return l.Tier(tier).Budget
}

// IsLast reports whether tier is the terminal tier.
func (l *Ladder) IsLast(tier int) bool {
	return l.Clamp(tier) == len(l.tiers)
}

// Name returns the display name of a tier.
func (l *Ladder) Name(tier int) string {
	tier = l.Clamp(tier)
	return l.tiers[tier-1].DisplayName(tier)
}

// Advance decides what happens after the target is found on tier with
// moves accepted moves. Within budget the player climbs one tier, or
// completes the game on the last tier; over budget the tier is replayed.
func (l *Ladder) Advance(tier, moves int) Advance {
	tier = l.Clamp(tier)
	budget := l.Budget(tier)

	if budget > 0 && moves > budget {
		return Advance{Outcome: OutcomeStay, Tier: tier}
	}
	if l.IsLast(tier) {
		return Advance{Outcome: OutcomeComplete, Tier: tier}
	}
	return Advance{Outcome: OutcomeTierUp, Tier: tier + 1}
}
