// Package writers owns the output goroutines: each Start* function returns
// a channel to feed and a one-shot error channel that resolves when the
// writer finishes. Writers drain their input after a failure so producers
// never block on a dead sink.
package writers
