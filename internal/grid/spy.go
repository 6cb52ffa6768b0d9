package grid

// Spy reveals the opponent's true current position.
type Spy interface {
	Query() Position
}

// SpyFunc adapts a plain function to the Spy interface.
type SpyFunc func() Position

func (f SpyFunc) Query() Position { return f() }

// CountingSpy wraps a Spy and records how many times it was queried.
type CountingSpy struct {
	Spy   Spy
	Calls int
}

func (c *CountingSpy) Query() Position {
	c.Calls++
	return c.Spy.Query()
}
