package grid

import "fmt"

// Position is a cell on the board. Row grows downwards, Col grows to the right.
type Position struct {
	Row uint `json:"row" yaml:"row"`
	Col uint `json:"col" yaml:"col"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Offset returns p - q component-wise as signed values.
func (p Position) Offset(q Position) (dRow, dCol int) {
	return int(p.Row) - int(q.Row), int(p.Col) - int(q.Col)
}

// Manhattan distance between two cells.
func Manhattan(a, b Position) int {
	dr, dc := a.Offset(b)
	return abs(dr) + abs(dc)
}

// Direction is a one-cell heading; each component is -1, 0 or 1.
type Direction struct {
	DRow int `json:"d_row"`
	DCol int `json:"d_col"`
}

var (
	Stay      = Direction{0, 0}
	Up        = Direction{-1, 0}
	UpRight   = Direction{-1, 1}
	Right     = Direction{0, 1}
	DownRight = Direction{1, 1}
	Down      = Direction{1, 0}
	DownLeft  = Direction{1, -1}
	Left      = Direction{0, -1}
	UpLeft    = Direction{-1, -1}
)

func (d Direction) Valid() bool {
	return d.DRow >= -1 && d.DRow <= 1 && d.DCol >= -1 && d.DCol <= 1
}

func (d Direction) IsStay() bool { return d == Stay }

// HasUp reports whether the heading moves towards row 0.
func (d Direction) HasUp() bool   { return d.DRow < 0 }
func (d Direction) HasDown() bool { return d.DRow > 0 }

func (d Direction) String() string {
	switch d {
	case Stay:
		return "stay"
	case Up:
		return "up"
	case UpRight:
		return "up right"
	case Right:
		return "right"
	case DownRight:
		return "down right"
	case Down:
		return "down"
	case DownLeft:
		return "down left"
	case Left:
		return "left"
	case UpLeft:
		return "up left"
	}
	return "none"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
