package event

import (
	"fmt"
	"log/slog"
)

// Kind identifies one of the fixed messages a run can emit.
type Kind int

const (
	// DefaultForbiddenSymbols is emitted when the default symbol set is kept.
	DefaultForbiddenSymbols Kind = iota + 1

	// DefaultPaths is emitted when either path parameter is missing
	// and both paths fall back to their defaults.
	DefaultPaths

	// ImportPathError is emitted when the import directory does not exist.
	ImportPathError

	// InputPathError is emitted when the input directory does not exist
	// or can no longer be listed.
	InputPathError

	// PathSuccess is emitted when both directories exist.
	PathSuccess

	// FileNotMovable is emitted for every entry that stays in the input directory.
	FileNotMovable

	// Starting, Done and Aborted frame a complete run.
	Starting
	Done
	Aborted
)

type kindInfo struct {
	key      string
	level    slog.Level
	template string
}

var kinds = map[Kind]kindInfo{
	DefaultForbiddenSymbols: {"defaultForbiddenSymbols", slog.LevelInfo, "Using default forbidden symbols."},
	DefaultPaths:            {"defaultPaths", slog.LevelInfo, "Using path defaults."},
	ImportPathError:         {"importPathError", slog.LevelError, "Import path does not exist."},
	InputPathError:          {"inputPathError", slog.LevelError, "Input path does not exist."},
	PathSuccess:             {"pathSuccess", slog.LevelInfo, "Paths confirmed."},
	FileNotMovable:          {"fileNotMovable", slog.LevelError, "File %s could not be moved."},
	Starting:                {"starting", slog.LevelInfo, "Starting."},
	Done:                    {"done", slog.LevelInfo, "Done."},
	Aborted:                 {"aborted", slog.LevelInfo, "Process aborted."},
}

// Key returns the stable identifier of the kind, e.g. "pathSuccess".
func (k Kind) Key() string {
	if info, ok := kinds[k]; ok {
		return info.key
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// String satisfies fmt.Stringer.
func (k Kind) String() string {
	return k.Key()
}

// Level returns the log level the kind is reported at.
func (k Kind) Level() slog.Level {
	return kinds[k].level
}

// Template returns the raw message template.
// Only FileNotMovable carries a substitution.
func (k Kind) Template() string {
	return kinds[k].template
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	_, ok := kinds[k]
	return ok
}

// Event is a single emitted message.
type Event struct {
	Kind Kind

	// File is the original entry name. Set only for FileNotMovable.
	File string

	// Err is the underlying cause, if any. It is not part of the
	// rendered message but is attached to structured log output.
	Err error
}

// New returns an event without a substitution argument.
func New(kind Kind) Event {
	return Event{Kind: kind}
}

// FileNotMoved returns the event for an entry that could not be moved.
func FileNotMoved(name string, err error) Event {
	return Event{Kind: FileNotMovable, File: name, Err: err}
}

// Render returns the human-readable message.
func (e Event) Render() string {
	if e.Kind == FileNotMovable {
		return fmt.Sprintf(e.Kind.Template(), e.File)
	}
	return e.Kind.Template()
}

// String satisfies fmt.Stringer.
func (e Event) String() string {
	return e.Render()
}
