package engine

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/roach88/rovers/internal/ir"
	"github.com/roach88/rovers/internal/parse"
)

// Policy decides what happens after a per-robot input error.
// Grid errors and empty input always end the run.
type Policy int

const (
	// PolicyAbort yields the first per-robot error and stops.
	PolicyAbort Policy = iota
	// PolicySkip yields each per-robot error and carries on with the next
	// pair. A skipped robot produces no result and leaves no scent.
	PolicySkip
)

// ParsePolicy accepts "abort" or "skip". The empty string means abort.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	}
	return PolicyAbort, fmt.Errorf("invalid policy %q: must be abort or skip", s)
}

func (p Policy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "abort"
}

// Result is the final state of one robot.
type Result struct {
	// Robot is the 1-based index of the (position, script) pair.
	Robot int

	// Seq orders results within a run.
	Seq int64

	// RunID identifies the Driver.Results run that produced this result.
	RunID string

	// Line is the input line number of the position line.
	Line int

	Start      ir.Pose
	Script     string
	Outcome    ir.Outcome
	Trajectory Trajectory
}

// String formats the result as an output line.
func (r Result) String() string {
	return r.Outcome.String()
}

// Driver turns an input line stream into robot results.
//
// A Driver holds configuration only; every call to Results builds a fresh
// Grid, so one Driver can serve any number of independent runs.
type Driver struct {
	policy   Policy
	logger   *slog.Logger
	newClock func() Sequencer
	runIDs   RunIDGenerator
	observer Observer
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithPolicy sets the per-robot error policy. Default: PolicyAbort.
func WithPolicy(p Policy) DriverOption {
	return func(d *Driver) {
		d.policy = p
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithClock makes every run draw seq numbers from c.
// By default each run gets its own Clock starting at 0.
func WithClock(c Sequencer) DriverOption {
	return func(d *Driver) {
		d.newClock = func() Sequencer { return c }
	}
}

// WithRunIDGenerator sets the run id source. Default: UUIDv7Generator.
func WithRunIDGenerator(g RunIDGenerator) DriverOption {
	return func(d *Driver) {
		d.runIDs = g
	}
}

// WithObserver receives every trace event of every run.
func WithObserver(o Observer) DriverOption {
	return func(d *Driver) {
		d.observer = o
	}
}

// NewDriver creates a Driver with the given options.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{
		policy:   PolicyAbort,
		newClock: func() Sequencer { return NewClock() },
		runIDs:   UUIDv7Generator{},
		observer: discardObserver{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Results lazily drives every robot described by lines.
//
// Lines are trimmed and blank ones skipped. The first line builds the Grid;
// if it is missing or malformed a single error is yielded and the sequence
// ends. The remaining lines are consumed in (position, script) pairs and
// each pair yields one Result, or a *ScriptError wrapping a *parse.Error.
// A trailing position line without a script is ignored.
//
// The sequence is single-pass: it pulls from lines as it goes and cannot be
// restarted unless lines can.
func (d *Driver) Results(lines iter.Seq[string]) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		r := &run{
			driver: d,
			clock:  d.newClock(),
			id:     d.runIDs.Generate(),
		}
		r.log = d.logger.With("run", r.id)

		var (
			lineNo      int
			posLine     string
			posLineNo   int
			havePending bool
		)

		for raw := range lines {
			lineNo++
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}

			if r.grid == nil {
				grid, err := buildGrid(line, lineNo)
				if err != nil {
					r.reject(err)
					yield(Result{}, err)
					return
				}
				r.grid = grid
				r.log.Debug("grid ready", "bounds", grid.Bounds().String())
				continue
			}

			if !havePending {
				posLine, posLineNo, havePending = line, lineNo, true
				continue
			}
			havePending = false
			r.robots++

			res, err := r.drive(posLine, posLineNo, line, lineNo)
			if err != nil {
				err = &ScriptError{Robot: r.robots, Err: err}
				if r.reject(err) {
					yield(Result{}, err)
					return
				}
				if !yield(Result{}, err) {
					return
				}
				continue
			}
			if !yield(res, nil) {
				return
			}
		}

		if r.grid == nil {
			err := parse.NewEmptyInputError()
			r.reject(err)
			yield(Result{}, err)
			return
		}
		if havePending {
			r.log.Warn("ignoring trailing position line without a script", "line", posLineNo)
		}
		r.log.Debug("run complete", "robots", r.robots, "scents", r.grid.Scents())
	}
}

// Lines adapts a slice to the line stream Results consumes.
func Lines(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range lines {
			if !yield(l) {
				return
			}
		}
	}
}

func buildGrid(line string, lineNo int) (*Grid, error) {
	maxX, maxY, err := parse.Grid(line)
	if err != nil {
		return nil, parse.AtLine(err, lineNo)
	}
	return NewGrid(maxX, maxY), nil
}

// run is the state of one Results call. Only the goroutine ranging over
// the sequence touches it.
type run struct {
	driver *Driver
	clock  Sequencer
	id     string
	log    *slog.Logger
	grid   *Grid
	robots int
}

// reject logs a yielded error and reports whether the run must stop.
// Errors that stop the run are logged at Debug only: the caller receives
// them and decides how to report them.
func (r *run) reject(err error) bool {
	if parse.IsFatal(err) || r.driver.policy == PolicyAbort {
		r.log.Debug("run stopped", "robots", r.robots, "error", err)
		return true
	}
	r.log.Warn("robot rejected, skipping", "robot", r.robots, "error", err)
	return false
}

// drive parses one pair, runs the robot and commits its scent.
// Nothing is observable on error: no events, no scent.
func (r *run) drive(posLine string, posLineNo int, scriptLine string, scriptLineNo int) (Result, error) {
	start, err := parse.Position(posLine)
	if err != nil {
		return Result{}, parse.AtLine(err, posLineNo)
	}
	script, err := parse.Instructions(scriptLine)
	if err != nil {
		return Result{}, parse.AtLine(err, scriptLineNo)
	}

	r.emit(EventStart, ir.Instruction{}, start)
	traj := Run(r.grid, start, script)
	for _, step := range traj.Steps {
		r.emit(step.Kind, step.Instruction, step.Pose)
	}

	if traj.Outcome.IsLost() {
		if r.grid.MarkScent(traj.Outcome.Pose.Coordinate) {
			r.emit(EventScent, ir.Instruction{}, traj.Outcome.Pose)
		}
	}

	seq := r.emit(EventFinish, ir.Instruction{}, traj.Outcome.Pose)

	r.log.Debug("robot finished",
		"robot", r.robots,
		"start", start.String(),
		"script", scriptLine,
		"outcome", traj.Outcome.String(),
		"blocked", traj.Count(EventBlocked),
		"skipped", traj.Count(EventSkipped),
		"seq", seq,
	)

	return Result{
		Robot:      r.robots,
		Seq:        seq,
		RunID:      r.id,
		Line:       posLineNo,
		Start:      start,
		Script:     scriptLine,
		Outcome:    traj.Outcome,
		Trajectory: traj,
	}, nil
}

func (r *run) emit(kind EventKind, in ir.Instruction, pose ir.Pose) int64 {
	seq := r.clock.Next()
	r.driver.observer.Observe(Event{
		Seq:         seq,
		Robot:       r.robots,
		Kind:        kind,
		Instruction: in,
		Pose:        pose,
	})
	return seq
}
