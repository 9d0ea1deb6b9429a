package event

import (
	"context"
	"log/slog"
	"sync"
)

// Sink receives events as they happen.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) {
	f(e)
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// LogSink writes events to a structured logger at the level of their kind.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink that logs onto logger.
// A nil logger falls back to slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Emit logs the rendered message with the event key attached.
func (s *LogSink) Emit(e Event) {
	attrs := []slog.Attr{slog.String("event", e.Kind.Key())}
	if e.File != "" {
		attrs = append(attrs, slog.String("file", e.File))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	s.logger.LogAttrs(context.Background(), e.Kind.Level(), e.Render(), attrs...)
}

// Recorder keeps every emitted event in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends e.
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Kinds returns the kinds of the recorded events in emission order.
func (r *Recorder) Kinds() []Kind {
	events := r.Events()
	out := make([]Kind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, e := range r.Events() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Has reports whether at least one event of kind was recorded.
func (r *Recorder) Has(kind Kind) bool {
	return r.Count(kind) > 0
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type multiSink []Sink

func (m multiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

// Multi returns a sink that forwards every event to all sinks in order.
// Nil sinks are skipped.
func Multi(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// EmitAll forwards events to sink in order.
func EmitAll(sink Sink, events []Event) {
	for _, e := range events {
		sink.Emit(e)
	}
}
