package ir

import "fmt"

// Coordinate is a cell position. X grows east, Y grows north.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the coordinate n cells along bearing b.
// A negative n moves backwards, which undoes a forward move.
func (c Coordinate) Step(b Bearing, n int) Coordinate {
	switch b {
	case North:
		c.Y += n
	case East:
		c.X += n
	case South:
		c.Y -= n
	case West:
		c.X -= n
	}
	return c
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d %d", c.X, c.Y)
}

// Bearing is one of the four compass headings.
type Bearing uint8

const (
	North Bearing = iota
	East
	South
	West
)

// Bearings lists every heading in clockwise order starting at North.
var Bearings = []Bearing{North, East, South, West}

var bearingNames = [...]string{North: "N", East: "E", South: "S", West: "W"}

// ParseBearing accepts exactly "N", "E", "S" or "W".
func ParseBearing(s string) (Bearing, bool) {
	for i, name := range bearingNames {
		if s == name {
			return Bearing(i), true
		}
	}
	return 0, false
}

// Rotate turns the bearing 90 degrees. Left is counter-clockwise.
func (b Bearing) Rotate(r Rotation) Bearing {
	switch r {
	case Left:
		return (b + 3) % 4
	case Right:
		return (b + 1) % 4
	}
	return b
}

func (b Bearing) String() string {
	if int(b) < len(bearingNames) {
		return bearingNames[b]
	}
	return fmt.Sprintf("Bearing(%d)", b)
}

// Rotation is a quarter turn direction.
type Rotation uint8

const (
	Left Rotation = iota
	Right
)

func (r Rotation) String() string {
	if r == Left {
		return "L"
	}
	return "R"
}

// OpKind tags an Instruction.
type OpKind uint8

const (
	OpForward OpKind = iota
	OpTurn
)

// Instruction is a single decoded script character: Forward or Turn(rotation).
// Rotation is only meaningful when Op is OpTurn.
type Instruction struct {
	Op       OpKind
	Rotation Rotation
}

// Forward moves one cell along the current bearing.
var Forward = Instruction{Op: OpForward}

// Turn returns the instruction rotating by r.
func Turn(r Rotation) Instruction {
	return Instruction{Op: OpTurn, Rotation: r}
}

// String returns the script character the instruction was decoded from.
func (i Instruction) String() string {
	if i.Op == OpForward {
		return "F"
	}
	return i.Rotation.String()
}

// Pose is a robot's position and heading.
type Pose struct {
	Coordinate
	Bearing Bearing
}

// NewPose is shorthand for a Pose at (x, y) facing b.
func NewPose(x, y int, b Bearing) Pose {
	return Pose{Coordinate: Coordinate{X: x, Y: y}, Bearing: b}
}

func (p Pose) String() string {
	return fmt.Sprintf("%d %d %s", p.X, p.Y, p.Bearing)
}

// Status tags an Outcome.
type Status uint8

const (
	Active Status = iota
	Lost
)

func (s Status) String() string {
	if s == Lost {
		return "lost"
	}
	return "active"
}

// Outcome is a robot's state after zero or more instructions.
// For a Lost outcome Pose is the last cell the robot occupied on the grid.
type Outcome struct {
	Status Status
	Pose   Pose
}

// ActiveAt returns an Active outcome at p.
func ActiveAt(p Pose) Outcome {
	return Outcome{Status: Active, Pose: p}
}

// LostAt returns a Lost outcome at p.
func LostAt(p Pose) Outcome {
	return Outcome{Status: Lost, Pose: p}
}

// IsLost reports whether the robot fell off the grid.
func (o Outcome) IsLost() bool {
	return o.Status == Lost
}

// String formats the outcome as a result line: "x y B" or "x y B LOST".
func (o Outcome) String() string {
	if o.Status == Lost {
		return o.Pose.String() + " LOST"
	}
	return o.Pose.String()
}
