package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/rovers/internal/ir"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRobot creates a robot record with a fixed start.
func createTestRobot(runID string, robot int, seq int64, outcome ir.Outcome) RobotRecord {
	return RobotRecord{
		RunID:   runID,
		Robot:   robot,
		Seq:     seq,
		Line:    robot * 2,
		Start:   ir.NewPose(1, 1, ir.East),
		Script:  "RFRFRFRF",
		Outcome: outcome,
	}
}
