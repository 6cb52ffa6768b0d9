package defender

import (
	"errors"
	"fmt"

	"pursuit/internal/grid"
)

// Kind names a defender strategy.
type Kind int

const (
	Stay Kind = iota
	Align
	Less
	Forward
)

func (k Kind) String() string {
	switch k {
	case Stay:
		return "STAY"
	case Align:
		return "ALIGN"
	case Less:
		return "LESS"
	case Forward:
		return "FORWARD"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var ErrUnknownStrategy = errors.New("unknown defender strategy")

const unbounded = -1

type strategy interface {
	kind() Kind
	left() int
	clone() strategy
}

// stay holds the starting cell until the spy round.
type stay struct{}

// align walks a fixed heading for a fixed number of rounds.
type align struct {
	roundsLeft int
	dir        grid.Direction
}

// less zigzags around the row it settled on.
type less struct {
	amplitude int
	step      int
	dir       grid.Direction
}

// forward pushes one heading for a single round; it ends as soon as it is played.
type forward struct {
	dir grid.Direction
}

func (stay) kind() Kind     { return Stay }
func (*align) kind() Kind   { return Align }
func (*less) kind() Kind    { return Less }
func (*forward) kind() Kind { return Forward }

func (stay) left() int      { return unbounded }
func (s *align) left() int  { return s.roundsLeft }
func (*less) left() int     { return unbounded }
func (*forward) left() int  { return 0 }

func (s stay) clone() strategy     { return s }
func (s *align) clone() strategy   { c := *s; return &c }
func (s *less) clone() strategy    { c := *s; return &c }
func (s *forward) clone() strategy { c := *s; return &c }

func newAlign(rounds int, dir grid.Direction) *align {
	return &align{roundsLeft: rounds, dir: dir}
}

// towards returns the alignment leg that brings pos onto rival's row.
func towards(pos, rival grid.Position) *align {
	dRow, _ := pos.Offset(rival)
	if dRow < 0 {
		return newAlign(-dRow, grid.Down)
	}
	return newAlign(dRow, grid.Up)
}

func (s *align) move() grid.Direction {
	s.roundsLeft--
	return s.dir
}

// move flips the vertical component on odd steps and the horizontal one on
// even steps, wrapping the step counter past the amplitude.
func (s *less) move() grid.Direction {
	if s.step%2 != 0 {
		if s.dir == grid.UpRight || s.dir == grid.Up {
			s.dir = grid.DownLeft
		} else {
			s.dir = grid.UpLeft
		}
	} else {
		switch s.dir {
		case grid.Up, grid.Down:
		case grid.UpLeft:
			s.dir = grid.UpRight
		default:
			s.dir = grid.DownRight
		}
	}
	s.step++
	if s.step > s.amplitude {
		s.step = 0
	}
	return s.dir
}
