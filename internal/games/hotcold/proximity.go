package hotcold

import "github.com/vovakirdan/tui-hotcold/internal/core"

// Proximity classifies the most recent move relative to the hidden marker.
type Proximity int

const (
	ProximityUnchanged   Proximity = iota // No axis moved; keep the previous color
	ProximityApproaching                  // Hot: the last compared axis got closer
	ProximityReceding                     // Cold: the last compared axis got farther or stayed level
	ProximityFound                        // The markers overlap within tolerance
)

// String returns a lowercase name for logging and test output.
func (p Proximity) String() string {
	switch p {
	case ProximityUnchanged:
		return "unchanged"
	case ProximityApproaching:
		return "approaching"
	case ProximityReceding:
		return "receding"
	case ProximityFound:
		return "found"
	default:
		return "unknown"
	}
}

// OverlapThreshold returns the per-axis distance below which two markers of
// the given radius count as found: both diameters minus the margin.
func OverlapThreshold(radius, margin int) int {
	return 2*radius - margin
}

// IsFound reports whether pos overlaps target, judged per axis.
func IsFound(pos, target core.Point, radius, margin int) bool {
	threshold := OverlapThreshold(radius, margin)
	dx, dy := pos.Delta(target)
	return dx < threshold && dy < threshold
}

// Classify compares the move from previous to current against target.
//
// Overlap wins over everything else. Otherwise each axis that changed is
// compared on its own, horizontal first; when both changed and disagree the
// vertical result stands. Distance is never combined across axes.
func Classify(previous, current, target core.Point, radius, margin int) Proximity {
	if IsFound(current, target, radius, margin) {
		return ProximityFound
	}

	result := ProximityUnchanged
	if previous.X != current.X {
		result = compareAxis(previous.X, current.X, target.X)
	}
	if previous.Y != current.Y {
		result = compareAxis(previous.Y, current.Y, target.Y)
	}
	return result
}

func compareAxis(previous, current, target int) Proximity {
	if core.Abs(previous-target) > core.Abs(current-target) {
		return ProximityApproaching
	}
	return ProximityReceding
}

// PlayerColor maps a classification to the player marker color.
// Unchanged keeps the color the marker already has.
func PlayerColor(p Proximity, current core.Color) core.Color {
	switch p {
	case ProximityApproaching:
		return core.ColorRed
	case ProximityReceding:
		return core.ColorBlue
	case ProximityFound:
		return core.ColorGreen
	default:
		return current
	}
}
