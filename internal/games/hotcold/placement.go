package hotcold

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/core"
)

// maxPlacementAttempts bounds the rejection loop in PlaceTarget.
// Validated configurations accept a draw long before this.
const maxPlacementAttempts = 1 << 20

// ErrPlacementExhausted is returned when no acceptable target position was
// drawn within maxPlacementAttempts.
var ErrPlacementExhausted = errors.New("hotcold: target placement retries exhausted")

// PlaceTarget draws a hidden marker position uniformly from
// [radius, arena-radius] on each axis, rejecting draws where either axis
// falls within one radius of start. Markers therefore never clip the field
// edge and never sit on top of the player's start position.
func PlaceTarget(rng *rand.Rand, arena, radius int, start core.Point) (core.Point, error) {
	lo, hi := radius, arena-radius
	if !axisHasRoom(lo, hi, start.X, radius) || !axisHasRoom(lo, hi, start.Y, radius) {
		return core.Point{}, &config.ConfigurationError{
			Field:  "arena_size",
			Reason: fmt.Sprintf("no room for a radius %d target away from (%d, %d) in a %d arena", radius, start.X, start.Y, arena),
		}
	}

	for range maxPlacementAttempts {
		p := core.Pt(lo+rng.Intn(hi-lo+1), lo+rng.Intn(hi-lo+1))
		if awayFrom(p.X, start.X, radius) && awayFrom(p.Y, start.Y, radius) {
			return p, nil
		}
	}

	return core.Point{}, fmt.Errorf("%w: %w", ErrPlacementExhausted, &config.ConfigurationError{
		Field:  "arena_size",
		Reason: fmt.Sprintf("%d is too tight for radius %d", arena, radius),
	})
}

// awayFrom reports whether v lies strictly outside [center-radius, center+radius].
func awayFrom(v, center, radius int) bool {
	return v < center-radius || v > center+radius
}

// axisHasRoom reports whether [lo, hi] holds any value away from center.
func axisHasRoom(lo, hi, center, radius int) bool {
	if lo > hi {
		return false
	}
	return lo < center-radius || hi > center+radius
}
