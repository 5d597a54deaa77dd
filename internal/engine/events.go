package engine

import "github.com/roach88/rovers/internal/ir"

// EventKind names a trace event.
type EventKind string

const (
	EventStart   EventKind = "start"   // robot placed at its start pose
	EventTurn    EventKind = "turn"    // rotated in place
	EventMove    EventKind = "move"    // moved one cell
	EventBlocked EventKind = "blocked" // forward move suppressed by a scent
	EventLost    EventKind = "lost"    // fell off the grid
	EventSkipped EventKind = "skipped" // instruction after loss, ignored
	EventScent   EventKind = "scent"   // grid gained a scent
	EventFinish  EventKind = "finish"  // script consumed
)

// Event is one entry in a run's trace.
// Instruction is only meaningful for per-instruction kinds.
type Event struct {
	Seq         int64          `json:"seq"`
	Robot       int            `json:"robot"`
	Kind        EventKind      `json:"kind"`
	Instruction ir.Instruction `json:"-"`
	Pose        ir.Pose        `json:"pose"`
}

// Observer receives trace events in seq order.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type discardObserver struct{}

func (discardObserver) Observe(Event) {}
