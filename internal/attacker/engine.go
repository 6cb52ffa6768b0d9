// Package attacker decides the attacker's heading each round.
//
// The attacker roams in a zigzag and climbs a ladder of escape strategies
// (VERTICAL, TRIANGLE, SQUARE) whenever it finds itself stuck. Once per
// match it may peek at the defender and bias its next moves towards an
// interception.
package attacker

import (
	"fmt"
	"log/slog"
	"math/rand"

	"pursuit/internal/config"
	"pursuit/internal/grid"
	"pursuit/internal/util"
)

// intel is what the attacker learnt from its one spy reveal.
type intel struct {
	spied     bool
	spiedAt   int
	preferred grid.Direction
}

type state struct {
	round    int
	strategy strategy
	maxKind  Kind
	way      Way
	lockFree int // rounds since the last lock

	initial, last grid.Position
	moved         bool // last is meaningful
	lastDir       grid.Direction

	intel intel
}

func (s state) clone() state {
	s.strategy = s.strategy.clone()
	return s
}

// Engine is the attacker's decision function. It is not safe for concurrent
// use; each match owns its own Engine.
type Engine struct {
	cfg config.Attacker
	rng *rand.Rand
	log *slog.Logger
	st  state
}

// New builds an attacker for one match. A nil rng is seeded from the clock on
// the first round; a nil logger uses slog.Default.
func New(cfg config.Attacker, rng *rand.Rand, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg: cfg.WithDefaults(),
		rng: rng,
		log: logger.With("agent", "attacker"),
		st: state{
			round:    1,
			strategy: &zigZag{fields{roundsLeft: unbounded, way: Unresolved}},
			maxKind:  ZigZag,
			way:      Unresolved,
		},
	}
}

// Decide returns the heading for this round.
func (e *Engine) Decide(pos grid.Position, spy grid.Spy) grid.Direction {
	next := e.st.clone()
	dir, err := e.step(&next, pos, spy)
	if err != nil {
		e.log.Error("no movement this round", "round", e.st.round, "err", err)
		// the reveal is spent even when the round is not
		e.st.intel = next.intel
		return grid.Stay
	}
	e.st = next
	return dir
}

func (e *Engine) step(s *state, pos grid.Position, spy grid.Spy) (grid.Direction, error) {
	if s.round == 1 {
		if e.rng == nil {
			e.rng = util.FromClock()
		}
		s.initial = pos
	}

	locked := s.moved && pos == s.last
	recent := s.lockFree < e.cfg.LockWindow
	if locked {
		s.lockFree = 0
	} else {
		s.lockFree++
	}
	cur := s.strategy.kind()
	finished := cur != ZigZag && s.strategy.common().roundsLeft == 0

	e.spy(s, pos, spy)
	if s.intel.spied {
		s.strategy.common().preferred = s.intel.preferred
	}

	switch {
	case finished:
		if cur == Square {
			s.maxKind = ZigZag
		}
		z := &zigZag{fields{roundsLeft: unbounded, preferred: s.intel.preferred, way: s.way}}
		s.strategy = z
		e.log.Debug("strategy finished", "round", s.round, "from", cur, "to", ZigZag)
	case locked && cur != Square:
		k, top, err := escalate(cur, s.maxKind, recent)
		if err != nil {
			return grid.Stay, err
		}
		ns, err := newStrategy(k, e.cfg)
		if err != nil {
			return grid.Stay, err
		}
		f := ns.common()
		f.forbidden = s.lastDir
		f.preferred = s.intel.preferred
		f.way = s.way.opposite()
		s.strategy = ns
		s.maxKind = top
		// SQUARE reacts to this round as if it were free
		locked = false
		e.log.Debug("locked, escalating", "round", s.round, "from", cur, "to", k, "recent", recent)
	}

	dir, err := e.move(s.strategy, locked)
	if err != nil {
		return grid.Stay, err
	}

	s.last = pos
	s.moved = true
	s.lastDir = dir
	s.way = s.way.follow(dir)
	s.round++
	return dir, nil
}

// spy fires the one-shot reveal or ages the heading it produced.
func (e *Engine) spy(s *state, pos grid.Position, spy grid.Spy) {
	if s.intel.spied {
		if !s.intel.preferred.IsStay() && s.round-s.intel.spiedAt >= e.cfg.PreferredTTL {
			s.intel.preferred = grid.Stay
			e.log.Debug("preferred heading expired", "round", s.round)
		}
		return
	}
	if spy == nil || (int(pos.Col) != *e.cfg.SpyColumn && s.round != e.cfg.SpyDeadline) {
		return
	}
	rival := spy.Query()
	s.intel.spied = true
	s.intel.spiedAt = s.round
	drift, _ := pos.Offset(s.initial)
	if h, ok := interceptHeading(pos, rival, drift, e.cfg.SpyRadius); ok {
		s.intel.preferred = h
	}
	e.log.Debug("spied defender", "round", s.round, "at", pos, "rival", rival, "preferred", s.intel.preferred)
}

func (e *Engine) move(st strategy, locked bool) (grid.Direction, error) {
	switch s := st.(type) {
	case *zigZag:
		return s.move(e.rng), nil
	case *vertical:
		return s.move(), nil
	case *triangle:
		return s.move(), nil
	case *square:
		return s.move(locked, e.rng), nil
	}
	return grid.Stay, fmt.Errorf("%w: %T", ErrUnknownStrategy, st)
}

// Snapshot describes the active strategy.
type Snapshot struct {
	Round      int // round the next Decide call plays
	Kind       Kind
	MaxKind    Kind
	RoundsLeft int
	Forbidden  grid.Direction
	Preferred  grid.Direction
	Way        Way // the strategy's own bias
	Bias       Way // bias derived from the last heading
	Spied      bool
}

func (e *Engine) Snapshot() Snapshot {
	f := e.st.strategy.common()
	return Snapshot{
		Round:      e.st.round,
		Kind:       e.st.strategy.kind(),
		MaxKind:    e.st.maxKind,
		RoundsLeft: f.roundsLeft,
		Forbidden:  f.forbidden,
		Preferred:  f.preferred,
		Way:        f.way,
		Bias:       e.st.way,
		Spied:      e.st.intel.spied,
	}
}
