// Package monitor implements the per-fixture polling engine: one monitor
// per tracked fixture, each running the Polling → Satisfied → Stopped
// state machine over its own condition set.
//
// Monitors are fully isolated from each other. Each owns its conditions,
// talks to the statistics source independently, and publishes through the
// shared board and two outbound channels (alerts and poll errors). The
// root package converts between these internal types and the public API.
package monitor
