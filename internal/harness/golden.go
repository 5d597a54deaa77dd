package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/rovers/internal/ir"
)

// Snapshot is the golden view of a run: what it printed, what it rejected
// and what it left on the grid.
type Snapshot struct {
	Scenario string
	Outputs  []string
	Rejected []string
	Scents   []ir.Coordinate
	Lost     int
	Digest   string
}

// NewSnapshot builds the snapshot of a finished run.
func NewSnapshot(name string, result *Result) Snapshot {
	return Snapshot{
		Scenario: name,
		Outputs:  result.Outputs,
		Rejected: result.Rejected,
		Scents:   result.Scents,
		Lost:     result.Lost,
		Digest:   result.Digest,
	}
}

// MarshalCanonical renders the snapshot as canonical JSON.
func (s Snapshot) MarshalCanonical() ([]byte, error) {
	outputs := s.Outputs
	if outputs == nil {
		outputs = []string{}
	}
	rejected := s.Rejected
	if rejected == nil {
		rejected = []string{}
	}
	scents := s.Scents
	if scents == nil {
		scents = []ir.Coordinate{}
	}
	return ir.MarshalCanonical(map[string]any{
		"scenario": s.Scenario,
		"outputs":  outputs,
		"rejected": rejected,
		"scents":   scents,
		"lost":     s.Lost,
		"digest":   s.Digest,
	})
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := NewSnapshot(scenarioName, result).MarshalCanonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)

	return nil
}
