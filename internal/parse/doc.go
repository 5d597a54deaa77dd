// Package parse turns the three kinds of input line into ir values.
//
// The input grammar is line oriented:
//
//	5 3          grid line: max_x max_y
//	1 1 E        position line: x y bearing
//	RFRFRFRF     instruction script over {F, L, R}
//
// Grid and position lines are split into whitespace separated fields by a
// participle lexer. Every failure is a *Error carrying one of the E2xx codes
// so callers can decide per code whether to abort or skip.
package parse
