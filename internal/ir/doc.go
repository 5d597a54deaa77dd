// Package ir provides the value types shared by every rovers package.
//
// This package contains type definitions and pure helpers only. All other
// internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - All values are immutable; rotation and movement return new values
//   - Coordinates may lie outside any grid; bounds belong to engine.Grid
//   - Outcome is an explicit Active/Lost tag, never an off-grid sentinel
//   - Logical clocks (seq) only, never wall-clock timestamps
package ir
