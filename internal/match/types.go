package match

import (
	"encoding/json"

	"pursuit/internal/grid"
)

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Agent is either engine as seen by the turn driver.
type Agent interface {
	Decide(pos grid.Position, spy grid.Spy) grid.Direction
}

type Result struct {
	ID               string        `json:"id"`
	Seed             int64         `json:"seed"`
	Captured         bool          `json:"captured"`
	Rounds           int           `json:"rounds"`
	Attacker         grid.Position `json:"attacker"`
	Defender         grid.Position `json:"defender"`
	AttackerSpyCalls int           `json:"attacker_spy_calls"`
	DefenderSpyCalls int           `json:"defender_spy_calls"`
	Events           []Event       `json:"events,omitempty"`
}

type Summary struct {
	Runs             int     `json:"runs"`
	Captures         int     `json:"captures"`
	CaptureRate      float64 `json:"capture_rate"`
	AvgRounds        float64 `json:"avg_rounds"`
	AvgCaptureRounds float64 `json:"avg_capture_rounds"`
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
