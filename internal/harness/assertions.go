package harness

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/rovers/internal/ir"
	"github.com/roach88/rovers/internal/parse"
	"github.com/roach88/rovers/internal/store"
)

// AssertionContext provides context for assertions that read the store.
type AssertionContext struct {
	Store *store.Store
	Ctx   context.Context
	RunID string
}

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Outputs  []string // Output lines for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Outputs) > 0 {
		fmt.Fprintf(&buf, "\nOutputs:\n")
		for i, line := range e.Outputs {
			fmt.Fprintf(&buf, "  [%d] %s\n", i+1, line)
		}
	}

	return buf.String()
}

// EvaluateAssertions runs every assertion and returns the failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var failures []string
	for i, assertion := range assertions {
		if err := evaluateAssertion(result, assertion, actx); err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return failures
}

func evaluateAssertion(result *Result, assertion Assertion, actx *AssertionContext) error {
	switch assertion.Type {
	case AssertRobot:
		return assertRobot(result, assertion)
	case AssertScent:
		return assertScent(result, assertion)
	case AssertScentCount:
		return assertScentCount(result, assertion)
	case AssertTraceCount:
		return assertTraceCount(result, assertion)
	case AssertFinalState:
		if actx == nil || actx.Store == nil {
			return fmt.Errorf("final_state assertion requires a store")
		}
		return assertFinalState(actx, result, assertion)
	default:
		return fmt.Errorf("unknown assertion type %q", assertion.Type)
	}
}

// assertRobot checks a robot's final status and pose.
func assertRobot(result *Result, assertion Assertion) error {
	res, ok := result.robot(assertion.Robot)
	if !ok {
		return &AssertionError{
			Type:     AssertRobot,
			Expected: fmt.Sprintf("robot %d to have run", assertion.Robot),
			Actual:   "no result for robot",
			Outputs:  result.Outputs,
		}
	}

	if assertion.Status != "" && assertion.Status != res.Outcome.Status.String() {
		return &AssertionError{
			Type:     AssertRobot,
			Expected: fmt.Sprintf("robot %d status %s", assertion.Robot, assertion.Status),
			Actual:   res.Outcome.Status.String(),
			Outputs:  result.Outputs,
		}
	}

	if assertion.Pose != "" {
		want, err := parse.Position(assertion.Pose)
		if err != nil {
			return fmt.Errorf("robot assertion pose: %w", err)
		}
		if want != res.Outcome.Pose {
			return &AssertionError{
				Type:     AssertRobot,
				Expected: fmt.Sprintf("robot %d pose %s", assertion.Robot, want),
				Actual:   res.Outcome.Pose.String(),
				Outputs:  result.Outputs,
			}
		}
	}

	return nil
}

// assertScent checks whether a cell carries a scent.
func assertScent(result *Result, assertion Assertion) error {
	want := assertion.Present == nil || *assertion.Present
	cell := ir.Coordinate{X: assertion.X, Y: assertion.Y}
	got := slices.Contains(result.Scents, cell)
	if got != want {
		return &AssertionError{
			Type:     AssertScent,
			Expected: fmt.Sprintf("scent at %s present=%t", cell, want),
			Actual:   fmt.Sprintf("present=%t (scents: %v)", got, result.Scents),
			Outputs:  result.Outputs,
		}
	}
	return nil
}

// assertScentCount checks the number of scented cells.
func assertScentCount(result *Result, assertion Assertion) error {
	if len(result.Scents) != assertion.Count {
		return &AssertionError{
			Type:     AssertScentCount,
			Expected: fmt.Sprintf("%d scents", assertion.Count),
			Actual:   fmt.Sprintf("%d scents (%v)", len(result.Scents), result.Scents),
			Outputs:  result.Outputs,
		}
	}
	return nil
}

// assertTraceCount checks how many events of a kind the trace holds,
// optionally restricted to one robot.
func assertTraceCount(result *Result, assertion Assertion) error {
	count := 0
	for _, event := range result.Trace {
		if event.Kind != assertion.Kind {
			continue
		}
		if assertion.Robot != 0 && event.Robot != assertion.Robot {
			continue
		}
		count++
	}

	if count != assertion.Count {
		subject := assertion.Kind
		if assertion.Robot != 0 {
			subject = fmt.Sprintf("%s for robot %d", assertion.Kind, assertion.Robot)
		}
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d occurrences of %s", assertion.Count, subject),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Outputs:  result.Outputs,
		}
	}
	return nil
}

// assertFinalState checks the robots recorded in the store.
func assertFinalState(actx *AssertionContext, result *Result, assertion Assertion) error {
	if assertion.Lost != nil {
		lost, err := actx.Store.CountLost(actx.Ctx, actx.RunID)
		if err != nil {
			return fmt.Errorf("final_state: %w", err)
		}
		if lost != *assertion.Lost {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("%d lost robots", *assertion.Lost),
				Actual:   fmt.Sprintf("%d lost robots", lost),
				Outputs:  result.Outputs,
			}
		}
	}

	if assertion.Robots != nil {
		robots, err := actx.Store.ReadRobots(actx.Ctx, actx.RunID)
		if err != nil {
			return fmt.Errorf("final_state: %w", err)
		}
		if len(robots) != *assertion.Robots {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("%d recorded robots", *assertion.Robots),
				Actual:   fmt.Sprintf("%d recorded robots", len(robots)),
				Outputs:  result.Outputs,
			}
		}
	}

	return nil
}
