package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rovers/internal/ir"
)

func TestWriteRobot_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec := createTestRobot("run-1", 1, 10, ir.ActiveAt(ir.NewPose(1, 1, ir.East)))
	require.NoError(t, s.WriteRobot(ctx, rec))

	got, err := s.ReadRobots(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

func TestWriteRobot_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := createTestRobot("run-1", 1, 10, ir.ActiveAt(ir.NewPose(1, 1, ir.East)))
	second := createTestRobot("run-1", 1, 99, ir.LostAt(ir.NewPose(3, 3, ir.North)))
	require.NoError(t, s.WriteRobot(ctx, first))
	require.NoError(t, s.WriteRobot(ctx, second))

	got, err := s.ReadRobots(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first, got[0], "first write wins")
}

func TestWriteScent_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	cell := ir.Coordinate{X: 3, Y: 3}
	require.NoError(t, s.WriteScent(ctx, "run-1", cell, 5))
	require.NoError(t, s.WriteScent(ctx, "run-1", cell, 9))

	got, err := s.ReadScents(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []ir.Coordinate{cell}, got)
}

func TestWrite_RunsAreIsolated(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRobot(ctx, createTestRobot("run-a", 1, 1, ir.LostAt(ir.NewPose(0, 0, ir.South)))))
	require.NoError(t, s.WriteScent(ctx, "run-a", ir.Coordinate{X: 0, Y: 0}, 2))
	require.NoError(t, s.WriteRobot(ctx, createTestRobot("run-b", 1, 1, ir.ActiveAt(ir.NewPose(0, 0, ir.South)))))

	lostA, err := s.CountLost(ctx, "run-a")
	require.NoError(t, err)
	assert.Equal(t, 1, lostA)

	lostB, err := s.CountLost(ctx, "run-b")
	require.NoError(t, err)
	assert.Equal(t, 0, lostB)

	scentsB, err := s.ReadScents(ctx, "run-b")
	require.NoError(t, err)
	assert.Empty(t, scentsB)
}
