package util

import (
	"math/rand"
	"time"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// FromClock seeds a generator from wall-clock time.
func FromClock() *rand.Rand {
	return New(time.Now().UnixNano())
}
