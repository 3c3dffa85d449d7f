// Package board holds the shared dashboard state: the latest per-condition
// status across all monitored fixtures.
//
// The board is the single designated channel for cross-goroutine state.
// Each fixture's monitor writes its own disjoint rows under one short
// critical section per upsert, and the render loop reads consistent,
// immutable snapshots at its own pace.
package board
