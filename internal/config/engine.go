package config

import "fmt"

// Attacker holds the attacker engine tunables.
type Attacker struct {
	SpyColumn      *int `yaml:"spy_column"`     // spy fires when the attacker reaches this column; nil means default
	SpyDeadline    int  `yaml:"spy_deadline"`   // ... or at this round, whichever comes first
	SpyRadius      int  `yaml:"spy_radius"`     // manhattan distance under which the reveal matters
	PreferredTTL   int  `yaml:"preferred_ttl"`  // rounds a spied heading stays preferred
	LockWindow     int  `yaml:"lock_window"`    // a lock within this many rounds of the last one escalates from the max
	VerticalRounds int  `yaml:"vertical_rounds"`
	TriangleRounds int  `yaml:"triangle_rounds"`
}

// Defender holds the defender engine tunables.
type Defender struct {
	SpyRound          int  `yaml:"spy_round"`
	AlignRetries      *int `yaml:"align_retries"` // nil means default; zero disables retries
	LessAmplitude     int  `yaml:"less_amplitude"`
	EscapeAlignRounds int  `yaml:"escape_align_rounds"`
}

func DefaultAttacker() Attacker {
	return Attacker{
		SpyColumn:      Int(6),
		SpyDeadline:    30,
		SpyRadius:      6,
		PreferredTTL:   2,
		LockWindow:     5,
		VerticalRounds: 1,
		TriangleRounds: 4,
	}
}

func DefaultDefender() Defender {
	return Defender{
		SpyRound:          6,
		AlignRetries:      Int(2),
		LessAmplitude:     3,
		EscapeAlignRounds: 2,
	}
}

// WithDefaults fills zero fields from DefaultAttacker. SpyColumn is only
// filled when absent, so column 0 stays expressible.
func (a Attacker) WithDefaults() Attacker {
	d := DefaultAttacker()
	fillPtr(&a.SpyColumn, d.SpyColumn)
	fill(&a.SpyDeadline, d.SpyDeadline)
	fill(&a.SpyRadius, d.SpyRadius)
	fill(&a.PreferredTTL, d.PreferredTTL)
	fill(&a.LockWindow, d.LockWindow)
	fill(&a.VerticalRounds, d.VerticalRounds)
	fill(&a.TriangleRounds, d.TriangleRounds)
	return a
}

// WithDefaults fills zero fields from DefaultDefender; AlignRetries only
// when absent.
func (d Defender) WithDefaults() Defender {
	def := DefaultDefender()
	fill(&d.SpyRound, def.SpyRound)
	fillPtr(&d.AlignRetries, def.AlignRetries)
	fill(&d.LessAmplitude, def.LessAmplitude)
	fill(&d.EscapeAlignRounds, def.EscapeAlignRounds)
	return d
}

func (a Attacker) Validate() error {
	for name, v := range map[string]int{
		"spy_deadline":    a.SpyDeadline,
		"spy_radius":      a.SpyRadius,
		"preferred_ttl":   a.PreferredTTL,
		"lock_window":     a.LockWindow,
		"vertical_rounds": a.VerticalRounds,
		"triangle_rounds": a.TriangleRounds,
	} {
		if v <= 0 {
			return fmt.Errorf("attacker %s must be positive, got %d", name, v)
		}
	}
	if a.SpyColumn != nil && *a.SpyColumn < 0 {
		return fmt.Errorf("attacker spy_column must not be negative, got %d", *a.SpyColumn)
	}
	return nil
}

func (d Defender) Validate() error {
	for name, v := range map[string]int{
		"spy_round":           d.SpyRound,
		"less_amplitude":      d.LessAmplitude,
		"escape_align_rounds": d.EscapeAlignRounds,
	} {
		if v <= 0 {
			return fmt.Errorf("defender %s must be positive, got %d", name, v)
		}
	}
	if d.AlignRetries != nil && *d.AlignRetries < 0 {
		return fmt.Errorf("defender align_retries must not be negative, got %d", *d.AlignRetries)
	}
	return nil
}

func fill(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func fillPtr(v **int, def *int) {
	if *v == nil {
		*v = Int(*def)
	}
}

// Int returns a pointer to v, for optional tunables.
func Int(v int) *int { return &v }
