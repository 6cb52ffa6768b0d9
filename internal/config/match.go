package config

import (
	"fmt"

	"pursuit/internal/grid"
)

// Match describes one simulated pursuit: board, starting cells and engine tunables.
type Match struct {
	Rows      int          `yaml:"rows"`
	Cols      int          `yaml:"cols"`
	MaxRounds int          `yaml:"max_rounds"`
	Seed      int64        `yaml:"seed"`
	Runs      int          `yaml:"runs"`
	Workers   int          `yaml:"workers"`
	Attacker  AttackerSide `yaml:"attacker"`
	Defender  DefenderSide `yaml:"defender"`
}

type AttackerSide struct {
	Start    *grid.Position `yaml:"start"`
	Attacker `yaml:",inline"`
}

type DefenderSide struct {
	Start    *grid.Position `yaml:"start"`
	Defender `yaml:",inline"`
}

// DefaultMatch is an 11x13 board with both agents on the middle row at opposite edges.
func DefaultMatch() *Match {
	m := &Match{}
	m.applyDefaults()
	return m
}

func (m *Match) applyDefaults() {
	fill(&m.Rows, 11)
	fill(&m.Cols, 13)
	fill(&m.MaxRounds, 150)
	fill(&m.Runs, 1)
	fill(&m.Workers, 8)
	// each side missing a start takes its own edge of the middle row
	mid := uint(m.Rows / 2)
	if m.Attacker.Start == nil {
		m.Attacker.Start = &grid.Position{Row: mid, Col: 0}
	}
	if m.Defender.Start == nil && m.Cols > 0 {
		m.Defender.Start = &grid.Position{Row: mid, Col: uint(m.Cols - 1)}
	}
	m.Attacker.Attacker = m.Attacker.Attacker.WithDefaults()
	m.Defender.Defender = m.Defender.Defender.WithDefaults()
}

func (m *Match) Board() grid.Board {
	return grid.Board{Rows: m.Rows, Cols: m.Cols}
}

func (m *Match) Validate() error {
	if m.Rows <= 0 || m.Cols <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", m.Rows, m.Cols)
	}
	if m.MaxRounds <= 0 {
		return fmt.Errorf("max_rounds must be positive, got %d", m.MaxRounds)
	}
	board := m.Board()
	for name, p := range map[string]*grid.Position{"attacker": m.Attacker.Start, "defender": m.Defender.Start} {
		if p == nil {
			return fmt.Errorf("%s start is missing", name)
		}
		if !board.Contains(*p) {
			return fmt.Errorf("%s start %v is outside the %dx%d board", name, *p, m.Rows, m.Cols)
		}
	}
	if *m.Attacker.Start == *m.Defender.Start {
		return fmt.Errorf("attacker and defender cannot start on the same cell %v", *m.Attacker.Start)
	}
	if err := m.Attacker.Attacker.Validate(); err != nil {
		return err
	}
	return m.Defender.Defender.Validate()
}
