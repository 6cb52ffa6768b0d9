package attacker

import "pursuit/internal/grid"

// interceptHeading picks the heading to favour after spotting the defender.
// It reports false when the defender is too far away for the reveal to matter.
//
// The attacker starts on the left edge and sweeps right, so a positive
// column offset means it has already passed the defender. drift is the
// net vertical displacement since the first round.
func interceptHeading(pos, rival grid.Position, drift, radius int) (grid.Direction, bool) {
	dRow, dCol := pos.Offset(rival)
	if grid.Manhattan(pos, rival) > radius {
		return grid.Stay, false
	}
	near := dCol >= -3

	switch {
	case dCol > 0:
		return grid.Right, true
	case dCol == 0:
		switch dRow {
		case -1:
			return grid.UpRight, true
		case 1:
			return grid.DownRight, true
		}
		return grid.Right, true
	case dRow <= -2:
		return grid.UpRight, true
	case dRow == -1:
		if near {
			return grid.Up, true
		}
		return grid.UpRight, true
	case dRow == 0:
		switch {
		case near && drift < 0:
			return grid.DownLeft, true
		case near:
			return grid.UpLeft, true
		case drift < 0:
			return grid.DownRight, true
		}
		return grid.UpRight, true
	case dRow == 1:
		if near {
			return grid.Down, true
		}
		return grid.DownRight, true
	}
	return grid.DownRight, true
}
