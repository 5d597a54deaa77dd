package engine

import "github.com/roach88/rovers/internal/ir"

// StepRecord describes what one instruction did.
// Pose is the robot's pose after the instruction; for EventLost it is the
// last on-grid pose.
type StepRecord struct {
	Instruction ir.Instruction
	Kind        EventKind
	Pose        ir.Pose
}

// Trajectory is the full account of one robot's run.
type Trajectory struct {
	Outcome ir.Outcome
	Steps   []StepRecord
}

// Count returns how many steps had the given kind.
func (t Trajectory) Count(kind EventKind) int {
	n := 0
	for _, s := range t.Steps {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Step applies one instruction to an active robot.
//
// Turns never change position and never lose the robot. A forward move
// onto the grid always succeeds. A forward move off the grid is suppressed
// when the current cell is scented; otherwise the robot is lost at its
// current pose. Step reads the grid's scents but never writes them.
func Step(g *Grid, pose ir.Pose, in ir.Instruction) (ir.Outcome, EventKind) {
	if in.Op == ir.OpTurn {
		pose.Bearing = pose.Bearing.Rotate(in.Rotation)
		return ir.ActiveAt(pose), EventTurn
	}

	next := pose
	next.Coordinate = pose.Coordinate.Step(pose.Bearing, 1)
	switch {
	case g.Contains(next.Coordinate):
		return ir.ActiveAt(next), EventMove
	case g.HasScent(pose.Coordinate):
		return ir.ActiveAt(pose), EventBlocked
	default:
		return ir.LostAt(pose), EventLost
	}
}

// Run folds Step over the script starting from start.
// Once the robot is lost every remaining instruction is recorded as
// EventSkipped and the outcome no longer changes.
func Run(g *Grid, start ir.Pose, script []ir.Instruction) Trajectory {
	outcome := ir.ActiveAt(start)
	steps := make([]StepRecord, 0, len(script))

	for _, in := range script {
		if outcome.IsLost() {
			steps = append(steps, StepRecord{Instruction: in, Kind: EventSkipped, Pose: outcome.Pose})
			continue
		}
		var kind EventKind
		outcome, kind = Step(g, outcome.Pose, in)
		steps = append(steps, StepRecord{Instruction: in, Kind: kind, Pose: outcome.Pose})
	}

	return Trajectory{Outcome: outcome, Steps: steps}
}
