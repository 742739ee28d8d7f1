// Package daemon implements the control socket.
//
// The server runs a single accept loop and handles one connection at a
// time. A request is one plain-text command of at most 256 bytes:
//
//	refresh   wait for the bus to settle, then re-evaluate docks
//	status    report the active profile
//
// Responses are newline terminated and start with "OK" or "ERROR".
// Because the engine is idempotent, a burst of refresh requests queued in
// the listen backlog collapses into one switch followed by no-ops.
package daemon
