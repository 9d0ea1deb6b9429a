// Package event defines the messages a rename run reports.
//
// Every message is a typed Event whose Kind selects a fixed template and a
// level. Emitting an event (Sink) is kept apart from rendering it (Render),
// so the same stream can be logged, recorded for tests, or inspected by the
// CLI to derive an exit code.
package event
