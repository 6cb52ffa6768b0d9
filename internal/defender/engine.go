// Package defender decides the defender's heading each round.
//
// The defender holds still until it spies the attacker, then lines up with
// the attacker's row and oscillates there, breaking out sideways or
// vertically when it gets stuck.
package defender

import (
	"fmt"
	"log/slog"
	"math/rand"

	"pursuit/internal/config"
	"pursuit/internal/grid"
	"pursuit/internal/util"
)

type intel struct {
	spied   bool
	rival   grid.Position
	aligned bool // latched once the rows matched
	retries int
}

type state struct {
	round    int
	strategy strategy
	last     grid.Position
	moved    bool
	lastDir  grid.Direction
	intel    intel
}

func (s state) clone() state {
	s.strategy = s.strategy.clone()
	return s
}

// Engine is the defender's decision function, owned by a single match.
type Engine struct {
	cfg config.Defender
	rng *rand.Rand
	log *slog.Logger
	st  state
}

// forwardHeading points away from the attacker's starting edge.
var forwardHeading = grid.Left

func New(cfg config.Defender, rng *rand.Rand, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = util.FromClock()
	}
	cfg = cfg.WithDefaults()
	return &Engine{
		cfg: cfg,
		rng: rng,
		log: logger.With("agent", "defender"),
		st: state{
			round:    1,
			strategy: stay{},
			intel:    intel{retries: *cfg.AlignRetries},
		},
	}
}

// Decide returns the heading for this round.
func (e *Engine) Decide(pos grid.Position, spy grid.Spy) grid.Direction {
	next := e.st.clone()
	dir, err := e.step(&next, pos, spy)
	if err != nil {
		e.log.Error("no movement this round", "round", e.st.round, "err", err)
		e.st.intel = next.intel
		return grid.Stay
	}
	e.st = next
	return dir
}

func (e *Engine) step(s *state, pos grid.Position, spy grid.Spy) (grid.Direction, error) {
	cur := s.strategy.kind()
	locked := cur != Stay && s.moved && pos == s.last
	finished := s.strategy.left() == 0

	if s.intel.spied && !s.intel.aligned {
		s.intel.aligned = pos.Row == s.intel.rival.Row
	}
	retry := cur == Forward && s.intel.retries > 0 && !s.intel.aligned

	if !s.intel.spied && s.round == e.cfg.SpyRound && spy != nil {
		s.intel.rival = spy.Query()
		s.intel.spied = true
		if pos.Row != s.intel.rival.Row {
			s.strategy = towards(pos, s.intel.rival)
		} else {
			s.strategy = e.newLess()
		}
		e.log.Debug("spied attacker", "round", s.round, "at", pos, "rival", s.intel.rival, "to", s.strategy.kind())
	}

	switch {
	case finished && retry:
		s.intel.retries--
		s.strategy = towards(pos, s.intel.rival)
		e.log.Debug("retrying alignment", "round", s.round, "retries_left", s.intel.retries)
	case finished:
		s.strategy = e.newLess()
		e.log.Debug("strategy finished", "round", s.round, "from", cur, "to", Less)
	case locked:
		if e.rng.Intn(2) == 0 {
			s.strategy = &forward{dir: forwardHeading}
		} else {
			dir := grid.Up
			if s.lastDir.HasUp() {
				dir = grid.Down
			}
			s.strategy = newAlign(e.cfg.EscapeAlignRounds, dir)
		}
		e.log.Debug("locked, escaping", "round", s.round, "from", cur, "to", s.strategy.kind())
	}

	dir, err := e.move(s.strategy)
	if err != nil {
		return grid.Stay, err
	}

	s.last = pos
	s.moved = true
	s.lastDir = dir
	s.round++
	return dir, nil
}

func (e *Engine) newLess() *less {
	dir := grid.Down
	if e.rng.Intn(2) == 0 {
		dir = grid.Up
	}
	return &less{amplitude: e.cfg.LessAmplitude, dir: dir}
}

func (e *Engine) move(st strategy) (grid.Direction, error) {
	switch s := st.(type) {
	case stay:
		return grid.Stay, nil
	case *align:
		return s.move(), nil
	case *less:
		return s.move(), nil
	case *forward:
		return s.dir, nil
	}
	return grid.Stay, fmt.Errorf("%w: %T", ErrUnknownStrategy, st)
}

// Snapshot describes the active strategy.
type Snapshot struct {
	Round      int
	Kind       Kind
	RoundsLeft int
	Heading    grid.Direction
	Step       int
	Amplitude  int
	Spied      bool
	Aligned    bool
	Retries    int
}

func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Round:      e.st.round,
		Kind:       e.st.strategy.kind(),
		RoundsLeft: e.st.strategy.left(),
		Spied:      e.st.intel.spied,
		Aligned:    e.st.intel.aligned,
		Retries:    e.st.intel.retries,
	}
	switch s := e.st.strategy.(type) {
	case *align:
		snap.Heading = s.dir
	case *less:
		snap.Heading = s.dir
		snap.Step = s.step
		snap.Amplitude = s.amplitude
	case *forward:
		snap.Heading = s.dir
	}
	return snap
}
