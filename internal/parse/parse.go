package parse

import (
	"strconv"

	"github.com/roach88/rovers/internal/ir"
)

// Grid parses "<max_x> <max_y>". Both bounds must be non-negative integers.
func Grid(line string) (maxX, maxY int, err error) {
	fields, err := splitFields(line)
	if err != nil {
		return 0, 0, newError(ErrMalformedGridLine, "line", 0, "%v", err)
	}

	switch {
	case len(fields) == 0:
		return 0, 0, newError(ErrMalformedGridLine, "x", 0, "missing x coordinate")
	case len(fields) == 1:
		return 0, 0, newError(ErrMalformedGridLine, "y", 0, "missing y coordinate")
	case len(fields) > 2:
		return 0, 0, newError(ErrMalformedGridLine, "line", fields[2].Pos.Column,
			"too many fields: want 2, got %d", len(fields))
	}

	maxX, err = coordinate(ErrMalformedGridLine, "x", fields[0])
	if err != nil {
		return 0, 0, err
	}
	maxY, err = coordinate(ErrMalformedGridLine, "y", fields[1])
	if err != nil {
		return 0, 0, err
	}

	if maxX < 0 {
		return 0, 0, newError(ErrMalformedGridLine, "x", fields[0].Pos.Column,
			"x bound must be non-negative, got %d", maxX)
	}
	if maxY < 0 {
		return 0, 0, newError(ErrMalformedGridLine, "y", fields[1].Pos.Column,
			"y bound must be non-negative, got %d", maxY)
	}

	return maxX, maxY, nil
}

// Position parses "<x> <y> <bearing>".
func Position(line string) (ir.Pose, error) {
	fields, err := splitFields(line)
	if err != nil {
		return ir.Pose{}, newError(ErrMalformedPositionLine, "line", 0, "%v", err)
	}

	switch {
	case len(fields) == 0:
		return ir.Pose{}, newError(ErrMalformedPositionLine, "x", 0, "missing x coordinate")
	case len(fields) == 1:
		return ir.Pose{}, newError(ErrMalformedPositionLine, "y", 0, "missing y coordinate")
	case len(fields) == 2:
		return ir.Pose{}, newError(ErrMalformedPositionLine, "bearing", 0, "missing bearing")
	case len(fields) > 3:
		return ir.Pose{}, newError(ErrMalformedPositionLine, "line", fields[3].Pos.Column,
			"too many fields: want 3, got %d", len(fields))
	}

	x, err := coordinate(ErrMalformedPositionLine, "x", fields[0])
	if err != nil {
		return ir.Pose{}, err
	}
	y, err := coordinate(ErrMalformedPositionLine, "y", fields[1])
	if err != nil {
		return ir.Pose{}, err
	}

	bearing, ok := ir.ParseBearing(fields[2].Text)
	if !ok {
		return ir.Pose{}, newError(ErrUnknownBearing, "bearing", fields[2].Pos.Column,
			"bearing must be N, E, S, or W, got %q", fields[2].Text)
	}

	return ir.NewPose(x, y, bearing), nil
}

// Instructions decodes a whole script. The script is validated in full
// before anything is returned, so a bad character means no instructions.
// An empty script decodes to an empty, non-nil slice.
func Instructions(line string) ([]ir.Instruction, error) {
	instructions := make([]ir.Instruction, 0, len(line))
	column := 0
	for _, r := range line {
		column++
		in, err := Decode(r)
		if err != nil {
			perr := err.(*Error)
			perr.Column = column
			return nil, perr
		}
		instructions = append(instructions, in)
	}
	return instructions, nil
}

// Decode maps one script character to its instruction.
func Decode(r rune) (ir.Instruction, error) {
	switch r {
	case 'F':
		return ir.Forward, nil
	case 'L':
		return ir.Turn(ir.Left), nil
	case 'R':
		return ir.Turn(ir.Right), nil
	}
	return ir.Instruction{}, newError(ErrUnknownInstructionChar, "instruction", 0,
		"instruction must be F, L, or R, got %q", r)
}

// coordinate parses a 32-bit signed integer field.
func coordinate(code, name string, f *field) (int, error) {
	n, err := strconv.ParseInt(f.Text, 10, 32)
	if err != nil {
		return 0, newError(code, name, f.Pos.Column,
			"%s coordinate must be an integer, got %q", name, f.Text)
	}
	return int(n), nil
}
