package grid

// Board bounds the playing field. Moves that would leave it are dropped, so
// an agent pushing into an edge stays put and registers a lock next round.
type Board struct {
	Rows, Cols int
}

func (b Board) Contains(p Position) bool {
	return int(p.Row) < b.Rows && int(p.Col) < b.Cols
}

func (b Board) Step(p Position, d Direction) Position {
	r := int(p.Row) + d.DRow
	c := int(p.Col) + d.DCol
	if r < 0 || c < 0 || r >= b.Rows || c >= b.Cols {
		return p
	}
	return Position{Row: uint(r), Col: uint(c)}
}
