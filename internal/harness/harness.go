package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/rovers/internal/engine"
	"github.com/roach88/rovers/internal/ir"
	"github.com/roach88/rovers/internal/parse"
	"github.com/roach88/rovers/internal/store"
	"github.com/roach88/rovers/internal/testutil"
)

// Harness is the state of one scenario execution.
type Harness struct {
	store  *store.Store
	runID  string
	result *Result

	// storeErr keeps the first store failure seen by the observer.
	storeErr error
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory store with a deterministic clock
// and a fixed run id. Every robot and every scent is recorded in the store
// as the engine reports it; final_state assertions and the snapshot read
// them back.
//
// The returned error is reserved for harness failures. Expectation and
// assertion failures are reported through Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	policy, err := engine.ParsePolicy(scenario.Policy)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		runID:  scenario.RunID,
		result: NewResult(),
	}
	if h.runID == "" {
		h.runID = testutil.DefaultRunID
	}

	ctx := context.Background()

	driver := engine.NewDriver(
		engine.WithPolicy(policy),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		engine.WithClock(engine.NewClock()),
		engine.WithRunIDGenerator(testutil.NewFixedRunIDGenerator(h.runID)),
		engine.WithObserver(engine.ObserverFunc(func(e engine.Event) {
			h.observe(ctx, e)
		})),
	)

	for res, err := range driver.Results(engine.Lines(scenario.Input)) {
		if err != nil {
			h.result.Rejected = append(h.result.Rejected, parse.Code(err))
			continue
		}
		if err := h.record(ctx, res); err != nil {
			return nil, err
		}
	}
	if h.storeErr != nil {
		return nil, h.storeErr
	}

	if err := h.readBack(ctx); err != nil {
		return nil, err
	}

	checkExpect(h.result, scenario.Expect)

	actx := &AssertionContext{
		Store: st,
		Ctx:   ctx,
		RunID: h.runID,
	}
	for _, msg := range EvaluateAssertions(h.result, scenario.Assertions, actx) {
		h.result.AddError(msg)
	}

	return h.result, nil
}

func (h *Harness) observe(ctx context.Context, e engine.Event) {
	h.result.Trace = append(h.result.Trace, traceEventFrom(e))
	if e.Kind != engine.EventScent || h.storeErr != nil {
		return
	}
	if err := h.store.WriteScent(ctx, h.runID, e.Pose.Coordinate, e.Seq); err != nil {
		h.storeErr = fmt.Errorf("robot %d: %w", e.Robot, err)
	}
}

func (h *Harness) record(ctx context.Context, res engine.Result) error {
	h.result.Robots = append(h.result.Robots, res)
	h.result.Outputs = append(h.result.Outputs, res.String())

	err := h.store.WriteRobot(ctx, store.RobotRecord{
		RunID:   res.RunID,
		Robot:   res.Robot,
		Seq:     res.Seq,
		Line:    res.Line,
		Start:   res.Start,
		Script:  res.Script,
		Outcome: res.Outcome,
	})
	if err != nil {
		return fmt.Errorf("robot %d: %w", res.Robot, err)
	}
	return nil
}

// readBack fills the store-derived fields of the result.
func (h *Harness) readBack(ctx context.Context) error {
	scents, err := h.store.ReadScents(ctx, h.runID)
	if err != nil {
		return err
	}
	h.result.Scents = scents

	lost, err := h.store.CountLost(ctx, h.runID)
	if err != nil {
		return err
	}
	h.result.Lost = lost

	digest, err := ir.RunDigest(h.result.Outputs, h.result.Scents)
	if err != nil {
		return err
	}
	h.result.Digest = digest
	return nil
}

// checkExpect compares the run against the scenario's expect clause.
func checkExpect(result *Result, expect *Expect) {
	if expect == nil {
		return
	}

	if expect.Output != nil && !slices.Equal(expect.Output, result.Outputs) {
		result.AddError(fmt.Sprintf("output mismatch: expected %q, got %q", expect.Output, result.Outputs))
	}

	switch {
	case expect.Error == "" && len(result.Rejected) > 0:
		result.AddError(fmt.Sprintf("unexpected rejection: %v", result.Rejected))
	case expect.Error != "" && !slices.Contains(result.Rejected, expect.Error):
		result.AddError(fmt.Sprintf("expected rejection %s, got %v", expect.Error, result.Rejected))
	}
}

// VerifyDeterminism runs a scenario twice and checks that both runs produce
// the same digest and the same trace length.
func VerifyDeterminism(scenario *Scenario) error {
	first, err := Run(scenario)
	if err != nil {
		return fmt.Errorf("first run: %w", err)
	}
	second, err := Run(scenario)
	if err != nil {
		return fmt.Errorf("second run: %w", err)
	}

	if first.Digest != second.Digest {
		return fmt.Errorf("digest mismatch: %s != %s", first.Digest, second.Digest)
	}
	if len(first.Trace) != len(second.Trace) {
		return fmt.Errorf("trace length mismatch: %d != %d", len(first.Trace), len(second.Trace))
	}
	return nil
}
