// Package mockapi serves a local HTTP mock of the upstream statistics API,
// letting the HTTP stat client run end-to-end with no network dependency.
package mockapi
