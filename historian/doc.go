// Package historian connects to a session historian over its local
// unix socket and republishes state changes as values on a channel.
//
// The historian speaks newline-delimited JSON: the client sends
// {"cmd": "status"} after connecting and then receives response and
// event messages carrying status snapshots. The client owns the
// connection and its goroutines; rendering stays with the consumer,
// which reads Events from a single goroutine.
package historian
