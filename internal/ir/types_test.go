package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearing_RotateTable(t *testing.T) {
	tests := []struct {
		from Bearing
		rot  Rotation
		want Bearing
	}{
		{North, Left, West},
		{West, Left, South},
		{South, Left, East},
		{East, Left, North},
		{North, Right, East},
		{East, Right, South},
		{South, Right, West},
		{West, Right, North},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+tt.rot.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Rotate(tt.rot))
		})
	}
}

func TestBearing_FourTurnsIsIdentity(t *testing.T) {
	for _, b := range Bearings {
		for _, r := range []Rotation{Left, Right} {
			got := b
			for i := 0; i < 4; i++ {
				got = got.Rotate(r)
			}
			assert.Equal(t, b, got, "four %s turns from %s", r, b)
		}
	}
}

func TestBearing_LeftUndoesRight(t *testing.T) {
	for _, b := range Bearings {
		assert.Equal(t, b, b.Rotate(Right).Rotate(Left))
	}
}

func TestParseBearing(t *testing.T) {
	for _, b := range Bearings {
		got, ok := ParseBearing(b.String())
		assert.True(t, ok)
		assert.Equal(t, b, got)
	}

	for _, bad := range []string{"", "n", "Q", "NE", " N", "North"} {
		_, ok := ParseBearing(bad)
		assert.False(t, ok, "ParseBearing(%q) should fail", bad)
	}
}

func TestCoordinate_Step(t *testing.T) {
	origin := Coordinate{X: 2, Y: 2}

	assert.Equal(t, Coordinate{X: 2, Y: 3}, origin.Step(North, 1))
	assert.Equal(t, Coordinate{X: 3, Y: 2}, origin.Step(East, 1))
	assert.Equal(t, Coordinate{X: 2, Y: 1}, origin.Step(South, 1))
	assert.Equal(t, Coordinate{X: 1, Y: 2}, origin.Step(West, 1))

	for _, b := range Bearings {
		assert.Equal(t, origin, origin.Step(b, 1).Step(b, -1), "backwards step along %s", b)
	}
}

func TestCoordinate_Step_MayLeaveAnyGrid(t *testing.T) {
	c := Coordinate{X: 0, Y: 0}.Step(South, 1)
	assert.Equal(t, Coordinate{X: 0, Y: -1}, c)
}

func TestInstruction_String(t *testing.T) {
	assert.Equal(t, "F", Forward.String())
	assert.Equal(t, "L", Turn(Left).String())
	assert.Equal(t, "R", Turn(Right).String())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "1 1 E", ActiveAt(NewPose(1, 1, East)).String())
	assert.Equal(t, "3 3 N LOST", LostAt(NewPose(3, 3, North)).String())
	assert.Equal(t, "-1 0 W", ActiveAt(NewPose(-1, 0, West)).String())
}

func TestOutcome_IsLost(t *testing.T) {
	assert.False(t, ActiveAt(NewPose(0, 0, North)).IsLost())
	assert.True(t, LostAt(NewPose(0, 0, North)).IsLost())
}

func TestCoordinate_UsableAsMapKey(t *testing.T) {
	set := map[Coordinate]struct{}{}
	set[Coordinate{X: 1, Y: 2}] = struct{}{}
	set[Coordinate{X: 1, Y: 2}] = struct{}{}
	assert.Len(t, set, 1)
}
