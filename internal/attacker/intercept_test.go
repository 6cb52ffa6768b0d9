package attacker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pursuit/internal/grid"
)

func TestInterceptHeading(t *testing.T) {
	rival := grid.Position{Row: 5, Col: 6}
	tests := []struct {
		name   string
		pos    grid.Position
		drift  int
		want   grid.Direction
		inSpan bool
	}{
		{"too far", grid.Position{Row: 4, Col: 0}, 0, grid.Stay, false},
		{"on the edge of the radius", grid.Position{Row: 5, Col: 0}, 0, grid.UpRight, true},
		{"already passed", grid.Position{Row: 5, Col: 8}, 0, grid.Right, true},
		{"passing just above", grid.Position{Row: 4, Col: 6}, 0, grid.UpRight, true},
		{"passing just below", grid.Position{Row: 6, Col: 6}, 0, grid.DownRight, true},
		{"passing far below", grid.Position{Row: 8, Col: 6}, 0, grid.Right, true},
		{"behind and well above", grid.Position{Row: 2, Col: 4}, 0, grid.UpRight, true},
		{"behind, above, close", grid.Position{Row: 4, Col: 4}, 0, grid.Up, true},
		{"behind, above, far", grid.Position{Row: 4, Col: 1}, 0, grid.UpRight, true},
		{"aligned close after climbing", grid.Position{Row: 5, Col: 4}, -2, grid.DownLeft, true},
		{"aligned close after descending", grid.Position{Row: 5, Col: 4}, 1, grid.UpLeft, true},
		{"aligned far after climbing", grid.Position{Row: 5, Col: 1}, -1, grid.DownRight, true},
		{"aligned far without drift", grid.Position{Row: 5, Col: 1}, 0, grid.UpRight, true},
		{"behind, below, close", grid.Position{Row: 6, Col: 4}, 0, grid.Down, true},
		{"behind, below, far", grid.Position{Row: 6, Col: 1}, 0, grid.DownRight, true},
		{"behind and well below", grid.Position{Row: 7, Col: 5}, 0, grid.DownRight, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := interceptHeading(tt.pos, rival, tt.drift, 6)
			assert.Equal(t, tt.inSpan, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
