package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/rovers/internal/ir"
)

// ReadRobots returns all robot records of a run ordered by seq.
// Returns an empty slice (not nil) if the run has no robots.
func (s *Store) ReadRobots(ctx context.Context, runID string) ([]RobotRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, robot, seq, line, start_x, start_y, start_bearing, script,
		       final_x, final_y, final_bearing, status
		FROM robots
		WHERE run_id = ?
		ORDER BY seq ASC, robot ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query robots: %w", err)
	}
	defer rows.Close()

	records := []RobotRecord{}
	for rows.Next() {
		rec, err := scanRobot(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate robots: %w", err)
	}
	return records, nil
}

// ReadScents returns the scent cells of a run in the order they were laid.
// Returns an empty slice (not nil) if the run has no scents.
func (s *Store) ReadScents(ctx context.Context, runID string) ([]ir.Coordinate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT x, y
		FROM scents
		WHERE run_id = ?
		ORDER BY seq ASC, x ASC, y ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query scents: %w", err)
	}
	defer rows.Close()

	cells := []ir.Coordinate{}
	for rows.Next() {
		var c ir.Coordinate
		if err := rows.Scan(&c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("scan scent: %w", err)
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scents: %w", err)
	}
	return cells, nil
}

// CountLost returns how many robots of a run were lost.
func (s *Store) CountLost(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM robots WHERE run_id = ? AND status = 'lost'
	`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count lost: %w", err)
	}
	return n, nil
}

func scanRobot(rows *sql.Rows) (RobotRecord, error) {
	var (
		rec                        RobotRecord
		startBearing, finalBearing string
		status                     string
	)
	err := rows.Scan(
		&rec.RunID,
		&rec.Robot,
		&rec.Seq,
		&rec.Line,
		&rec.Start.X,
		&rec.Start.Y,
		&startBearing,
		&rec.Script,
		&rec.Outcome.Pose.X,
		&rec.Outcome.Pose.Y,
		&finalBearing,
		&status,
	)
	if err != nil {
		return RobotRecord{}, fmt.Errorf("scan robot: %w", err)
	}

	var ok bool
	if rec.Start.Bearing, ok = ir.ParseBearing(startBearing); !ok {
		return RobotRecord{}, fmt.Errorf("scan robot: invalid start bearing %q", startBearing)
	}
	if rec.Outcome.Pose.Bearing, ok = ir.ParseBearing(finalBearing); !ok {
		return RobotRecord{}, fmt.Errorf("scan robot: invalid final bearing %q", finalBearing)
	}
	switch status {
	case ir.Active.String():
		rec.Outcome.Status = ir.Active
	case ir.Lost.String():
		rec.Outcome.Status = ir.Lost
	default:
		return RobotRecord{}, fmt.Errorf("scan robot: invalid status %q", status)
	}
	return rec, nil
}
