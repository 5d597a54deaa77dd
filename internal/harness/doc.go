// Package harness runs robot scenarios described in YAML.
//
// A scenario carries raw input lines, the expected output, and assertions
// over the run: per-robot outcomes, scent cells, trace event counts and the
// final state recorded in the store.
//
// Each run uses a fresh in-memory store, a deterministic clock and a fixed
// run id, so the trace and the golden snapshot of a scenario are stable
// across runs and machines.
//
// Scenario files are decoded strictly (unknown keys are errors) and checked
// against the CUE definition in scenario.cue before they run.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
