package attacker

import (
	"fmt"
	"math/rand"

	"pursuit/internal/config"
	"pursuit/internal/grid"
)

// unbounded marks a strategy that only ends when it decides to.
const unbounded = -1

// fields are shared by every strategy variant.
type fields struct {
	roundsLeft int
	forbidden  grid.Direction
	preferred  grid.Direction
	way        Way
}

type strategy interface {
	kind() Kind
	common() *fields
	clone() strategy
}

type zigZag struct{ fields }

type vertical struct{ fields }

type triangle struct {
	fields
	legs int // rounds spent on each leg
}

// square retreats from a wall, sidesteps along it and walks back.
type square struct {
	fields
	phase int
	away  int // cells retreated that still have to be walked back
}

func (s *zigZag) kind() Kind   { return ZigZag }
func (s *vertical) kind() Kind { return Vertical }
func (s *triangle) kind() Kind { return Triangle }
func (s *square) kind() Kind   { return Square }

func (s *zigZag) common() *fields   { return &s.fields }
func (s *vertical) common() *fields { return &s.fields }
func (s *triangle) common() *fields { return &s.fields }
func (s *square) common() *fields   { return &s.fields }

func (s *zigZag) clone() strategy   { c := *s; return &c }
func (s *vertical) clone() strategy { c := *s; return &c }
func (s *triangle) clone() strategy { c := *s; return &c }
func (s *square) clone() strategy   { c := *s; return &c }

func newStrategy(k Kind, cfg config.Attacker) (strategy, error) {
	base := fields{roundsLeft: unbounded, way: Unresolved}
	switch k {
	case ZigZag:
		return &zigZag{fields: base}, nil
	case Vertical:
		base.roundsLeft = cfg.VerticalRounds
		return &vertical{fields: base}, nil
	case Triangle:
		base.roundsLeft = cfg.TriangleRounds
		return &triangle{fields: base, legs: cfg.TriangleRounds / 2}, nil
	case Square:
		return &square{fields: base}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, k)
}

func (s *zigZag) move(rng *rand.Rand) grid.Direction {
	if !s.preferred.IsStay() {
		return s.preferred
	}
	s.way = resolve(s.way, rng)
	// keep the bias 7 times out of 8
	if rng.Intn(8) != 0 {
		return biasedHeading(s.way, rng)
	}
	if s.way == Clockwise {
		s.way = Counterclockwise
		return grid.DownRight
	}
	s.way = Clockwise
	return grid.UpRight
}

func (s *vertical) move() grid.Direction {
	s.roundsLeft--
	switch {
	case !s.preferred.IsStay():
		return s.preferred
	case s.forbidden == grid.Up:
		return grid.Down
	case s.forbidden == grid.Down:
		return grid.Up
	}
	return verticalOf(s.way)
}

func (s *triangle) move() grid.Direction {
	outward := s.roundsLeft > s.legs
	s.roundsLeft--
	if s.way == Clockwise {
		if outward {
			return grid.UpLeft
		}
		return grid.UpRight
	}
	if outward {
		return grid.DownLeft
	}
	return grid.DownRight
}

func (s *square) move(locked bool, rng *rand.Rand) grid.Direction {
	if locked {
		switch s.phase {
		case 0:
			s.phase++
			return verticalOf(s.way)
		case 1:
			s.away--
			s.phase++
			return grid.Right
		}
		return s.exit(rng)
	}
	switch s.phase {
	case 0:
		s.away++
		return grid.Left
	case 1:
		return verticalOf(s.way)
	}
	if s.away > 0 {
		s.away--
		return grid.Right
	}
	return s.exit(rng)
}

func (s *square) exit(rng *rand.Rand) grid.Direction {
	s.phase = 0
	s.away = 0
	s.roundsLeft = 0
	return biasedHeading(s.way, rng)
}
