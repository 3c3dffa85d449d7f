// Package statsource provides the two interchangeable StatSource
// implementations the engine can poll: an in-process generator with
// encapsulated per-fixture progression, and an HTTP client speaking the
// API-Football statistics shape. It also carries the mock fixture catalog
// shared by the generator, the local mock API server and the CLI.
package statsource
