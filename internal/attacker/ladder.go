package attacker

import (
	"errors"
	"fmt"
)

// Kind names an attacker strategy.
type Kind int

const (
	ZigZag Kind = iota
	Vertical
	Triangle
	Square
)

func (k Kind) String() string {
	switch k {
	case ZigZag:
		return "ZIGZAG"
	case Vertical:
		return "VERTICAL"
	case Triangle:
		return "TRIANGLE"
	case Square:
		return "SQUARE"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var ErrUnknownStrategy = errors.New("unknown attacker strategy")

// escalation is the order strategies are tried in when the attacker gets stuck.
var escalation = map[Kind]Kind{
	ZigZag:   Vertical,
	Vertical: Triangle,
	Triangle: Square,
	Square:   ZigZag,
}

// escalate picks the strategy that follows a lock. A lock shortly after a
// previous one skips ahead of the furthest strategy already reached.
func escalate(cur, top Kind, recent bool) (next, newTop Kind, err error) {
	from := cur
	if recent {
		from = top
	}
	next, ok := escalation[from]
	if !ok {
		return cur, top, fmt.Errorf("%w: cannot escalate from %v", ErrUnknownStrategy, from)
	}
	newTop = top
	if next > top {
		newTop = next
	}
	return next, newTop, nil
}
