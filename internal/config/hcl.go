package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"pursuit/internal/grid"
)

// hclMatchFile is the top-level structure of an HCL match file.
type hclMatchFile struct {
	Rows      *int         `hcl:"rows"`
	Cols      *int         `hcl:"cols"`
	MaxRounds *int         `hcl:"max_rounds"`
	Seed      *int64       `hcl:"seed"`
	Runs      *int         `hcl:"runs"`
	Workers   *int         `hcl:"workers"`
	Attacker  *hclAttacker `hcl:"attacker,block"`
	Defender  *hclDefender `hcl:"defender,block"`
}

type hclAttacker struct {
	StartRow       *uint `hcl:"start_row"`
	StartCol       *uint `hcl:"start_col"`
	SpyColumn      *int  `hcl:"spy_column"`
	SpyDeadline    *int  `hcl:"spy_deadline"`
	SpyRadius      *int  `hcl:"spy_radius"`
	PreferredTTL   *int  `hcl:"preferred_ttl"`
	LockWindow     *int  `hcl:"lock_window"`
	VerticalRounds *int  `hcl:"vertical_rounds"`
	TriangleRounds *int  `hcl:"triangle_rounds"`
}

type hclDefender struct {
	StartRow          *uint `hcl:"start_row"`
	StartCol          *uint `hcl:"start_col"`
	SpyRound          *int  `hcl:"spy_round"`
	AlignRetries      *int  `hcl:"align_retries"`
	LessAmplitude     *int  `hcl:"less_amplitude"`
	EscapeAlignRounds *int  `hcl:"escape_align_rounds"`
}

func loadHCL(path string, out *Match) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclMatchFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	set(&out.Rows, parsed.Rows)
	set(&out.Cols, parsed.Cols)
	set(&out.MaxRounds, parsed.MaxRounds)
	set(&out.Seed, parsed.Seed)
	set(&out.Runs, parsed.Runs)
	set(&out.Workers, parsed.Workers)
	if a := parsed.Attacker; a != nil {
		start, err := startOf("attacker", a.StartRow, a.StartCol)
		if err != nil {
			return fmt.Errorf("failed to decode HCL file %s: %w", path, err)
		}
		out.Attacker.Start = start
		if a.SpyColumn != nil {
			out.Attacker.SpyColumn = a.SpyColumn
		}
		set(&out.Attacker.SpyDeadline, a.SpyDeadline)
		set(&out.Attacker.SpyRadius, a.SpyRadius)
		set(&out.Attacker.PreferredTTL, a.PreferredTTL)
		set(&out.Attacker.LockWindow, a.LockWindow)
		set(&out.Attacker.VerticalRounds, a.VerticalRounds)
		set(&out.Attacker.TriangleRounds, a.TriangleRounds)
	}
	if d := parsed.Defender; d != nil {
		start, err := startOf("defender", d.StartRow, d.StartCol)
		if err != nil {
			return fmt.Errorf("failed to decode HCL file %s: %w", path, err)
		}
		out.Defender.Start = start
		set(&out.Defender.SpyRound, d.SpyRound)
		if d.AlignRetries != nil {
			out.Defender.AlignRetries = d.AlignRetries
		}
		set(&out.Defender.LessAmplitude, d.LessAmplitude)
		set(&out.Defender.EscapeAlignRounds, d.EscapeAlignRounds)
	}
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// startOf returns nil when the block gives no start, leaving it to the
// defaults. A half-given start is rejected.
func startOf(side string, row, col *uint) (*grid.Position, error) {
	if row == nil && col == nil {
		return nil, nil
	}
	if row == nil || col == nil {
		return nil, fmt.Errorf("%s block must set start_row and start_col together", side)
	}
	return &grid.Position{Row: *row, Col: *col}, nil
}
