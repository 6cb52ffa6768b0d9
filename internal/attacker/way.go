package attacker

import (
	"math/rand"

	"pursuit/internal/grid"
)

// Way is the rotational bias used to pick among diagonals.
type Way int

const (
	Unresolved Way = iota
	Clockwise
	Counterclockwise
)

func (w Way) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	}
	return "random"
}

func (w Way) opposite() Way {
	if w == Clockwise {
		return Counterclockwise
	}
	return Clockwise
}

// follow updates the bias from a heading just taken.
func (w Way) follow(d grid.Direction) Way {
	switch {
	case d.HasUp():
		return Clockwise
	case d.HasDown():
		return Counterclockwise
	}
	return w
}

func resolve(w Way, rng *rand.Rand) Way {
	if w != Unresolved {
		return w
	}
	if rng.Intn(2) == 0 {
		return Clockwise
	}
	return Counterclockwise
}

// biasedHeading goes right two times out of three, otherwise takes the
// diagonal or the vertical on the side of the bias.
func biasedHeading(w Way, rng *rand.Rand) grid.Direction {
	k := rng.Intn(6)
	if w == Clockwise {
		switch {
		case k >= 2:
			return grid.Right
		case k == 1:
			return grid.UpRight
		default:
			return grid.Up
		}
	}
	switch {
	case k >= 2:
		return grid.Right
	case k == 1:
		return grid.DownRight
	default:
		return grid.Down
	}
}

// verticalOf is the pure vertical heading on the side of the bias.
func verticalOf(w Way) grid.Direction {
	if w == Clockwise {
		return grid.Up
	}
	return grid.Down
}
