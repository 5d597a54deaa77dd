package harness

import (
	"github.com/roach88/rovers/internal/engine"
	"github.com/roach88/rovers/internal/ir"
)

// TraceEvent is one engine event as seen by the harness.
type TraceEvent struct {
	Seq         int64   `json:"seq"`
	Robot       int     `json:"robot"`
	Kind        string  `json:"kind"`
	Instruction string  `json:"instruction,omitempty"`
	Pose        ir.Pose `json:"pose"`
}

func traceEventFrom(e engine.Event) TraceEvent {
	te := TraceEvent{
		Seq:   e.Seq,
		Robot: e.Robot,
		Kind:  string(e.Kind),
		Pose:  e.Pose,
	}
	switch e.Kind {
	case engine.EventTurn, engine.EventMove, engine.EventBlocked, engine.EventLost, engine.EventSkipped:
		te.Instruction = e.Instruction.String()
	}
	return te
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	Pass bool `json:"pass"`

	// Outputs holds one line per driven robot.
	Outputs []string `json:"outputs"`

	// Robots holds the engine results behind Outputs.
	Robots []engine.Result `json:"-"`

	// Rejected holds the E2xx codes of the errors the run yielded.
	Rejected []string `json:"rejected"`

	// Trace contains every engine event in seq order.
	Trace []TraceEvent `json:"trace"`

	// Scents are the scented cells read back from the store, in the order
	// they were laid.
	Scents []ir.Coordinate `json:"scents"`

	// Lost is the number of lost robots recorded in the store.
	Lost int `json:"lost"`

	// Digest is ir.RunDigest over Outputs and Scents.
	Digest string `json:"digest"`

	// Errors contains expectation and assertion failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outputs:  []string{},
		Rejected: []string{},
		Trace:    []TraceEvent{},
		Scents:   []ir.Coordinate{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// robot returns the engine result for a 1-based robot index.
func (r *Result) robot(index int) (engine.Result, bool) {
	for _, res := range r.Robots {
		if res.Robot == index {
			return res, true
		}
	}
	return engine.Result{}, false
}
