package attacker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pursuit/internal/grid"
	"pursuit/internal/util"
)

func TestFollow(t *testing.T) {
	assert.Equal(t, Clockwise, Counterclockwise.follow(grid.Up))
	assert.Equal(t, Clockwise, Counterclockwise.follow(grid.UpLeft))
	assert.Equal(t, Counterclockwise, Clockwise.follow(grid.DownRight))
	assert.Equal(t, Clockwise, Clockwise.follow(grid.Right))
	assert.Equal(t, Unresolved, Unresolved.follow(grid.Stay))
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Counterclockwise, Clockwise.opposite())
	assert.Equal(t, Clockwise, Counterclockwise.opposite())
	assert.Equal(t, Clockwise, Unresolved.opposite())
}

func TestBiasedHeadingDistribution(t *testing.T) {
	rng := util.New(3)
	const n = 6000
	counts := map[grid.Direction]int{}
	for i := 0; i < n; i++ {
		counts[biasedHeading(Clockwise, rng)]++
	}
	assert.Len(t, counts, 3)
	assert.InDelta(t, 2.0/3, float64(counts[grid.Right])/n, 0.04)
	assert.InDelta(t, 1.0/6, float64(counts[grid.UpRight])/n, 0.03)
	assert.InDelta(t, 1.0/6, float64(counts[grid.Up])/n, 0.03)

	for i := 0; i < 200; i++ {
		d := biasedHeading(Counterclockwise, rng)
		assert.Contains(t, []grid.Direction{grid.Right, grid.DownRight, grid.Down}, d)
	}
}
