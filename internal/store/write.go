package store

import (
	"context"
	"fmt"

	"github.com/roach88/rovers/internal/ir"
)

// RobotRecord is one driven robot as persisted in the robots table.
type RobotRecord struct {
	RunID   string
	Robot   int
	Seq     int64
	Line    int
	Start   ir.Pose
	Script  string
	Outcome ir.Outcome
}

// WriteRobot inserts a robot record.
// Uses ON CONFLICT DO NOTHING: a second write for the same (run, robot) is ignored.
func (s *Store) WriteRobot(ctx context.Context, rec RobotRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO robots
		(run_id, robot, seq, line, start_x, start_y, start_bearing, script, final_x, final_y, final_bearing, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, robot) DO NOTHING
	`,
		rec.RunID,
		rec.Robot,
		rec.Seq,
		rec.Line,
		rec.Start.X,
		rec.Start.Y,
		rec.Start.Bearing.String(),
		rec.Script,
		rec.Outcome.Pose.X,
		rec.Outcome.Pose.Y,
		rec.Outcome.Pose.Bearing.String(),
		rec.Outcome.Status.String(),
	)
	if err != nil {
		return fmt.Errorf("write robot: %w", err)
	}
	return nil
}

// WriteScent records a scent cell for a run.
// A cell scented twice keeps the seq of its first write.
func (s *Store) WriteScent(ctx context.Context, runID string, cell ir.Coordinate, seq int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scents (run_id, x, y, seq)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, x, y) DO NOTHING
	`, runID, cell.X, cell.Y, seq)
	if err != nil {
		return fmt.Errorf("write scent: %w", err)
	}
	return nil
}
