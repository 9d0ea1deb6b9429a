package renamer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/shinji-kodama/renamer/internal/event"
	"github.com/shinji-kodama/renamer/internal/model"
)

var (
	// ErrInvalidPaths is returned by Start when either directory is missing.
	ErrInvalidPaths = errors.New("input or import path does not exist")

	// ErrListing is returned when the input directory cannot be enumerated.
	ErrListing = errors.New("cannot list input directory")
)

// Renamer owns the configuration of one run and performs the move pass.
// It is not safe for concurrent use.
type Renamer struct {
	cfg    model.Config
	sink   event.Sink
	logger *slog.Logger
}

// Option configures a Renamer.
type Option func(*Renamer)

// WithLogger sets the logger used for debug tracing of individual moves.
// Events are reported through the sink, not this logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renamer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConfig presets the configuration, e.g. to call Run without Configure.
func WithConfig(cfg model.Config) Option {
	return func(r *Renamer) {
		r.cfg = cfg
	}
}

// New returns a Renamer reporting to sink. A nil sink discards events.
func New(sink event.Sink, opts ...Option) *Renamer {
	if sink == nil {
		sink = event.Discard
	}
	r := &Renamer{
		sink:   sink,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the current configuration.
func (r *Renamer) Config() model.Config {
	return r.cfg
}

// Configure resolves params against workDir, stores the result and checks
// that both directories exist. It returns true only if the move pass may run.
// The filesystem is not modified.
func (r *Renamer) Configure(params []string, workDir string) bool {
	cfg, events := ResolveConfig(params, workDir)
	event.EmitAll(r.sink, events)
	r.cfg = cfg

	ok, events := ValidatePaths(cfg)
	event.EmitAll(r.sink, events)

	r.logger.Debug("configuration resolved",
		"symbols", cfg.ForbiddenSymbols,
		"input", cfg.InputPath,
		"import", cfg.ImportPath,
		"valid", ok)
	return ok
}

// Run moves every immediate entry of the input directory to the import
// directory under its sanitized name. Entries that cannot be moved are
// reported and skipped; the returned error is non-nil only when the input
// directory cannot be listed or the symbol set cannot be compiled.
func (r *Renamer) Run() (model.Summary, error) {
	var summary model.Summary

	// Compile once per run; the symbol set cannot change during a pass.
	sanitizer, err := NewSanitizer(r.cfg.ForbiddenSymbols)
	if err != nil {
		return summary, err
	}

	// The listing is a snapshot. Entries added while the pass runs are left
	// for the next run.
	entries, err := r.list()
	if err != nil {
		// The original program reports a vanished input directory with the
		// same message as a missing one.
		r.sink.Emit(event.New(event.InputPathError))
		return summary, err
	}
	r.logger.Debug("listed input directory", "path", r.cfg.InputPath, "entries", len(entries))

	for _, entry := range entries {
		dst := filepath.Join(r.cfg.ImportPath, sanitizer.Sanitize(entry.Name))
		// One failed entry never stops the batch; it stays in the input
		// directory and is reported with its original name.
		if err := Move(entry.Path, dst); err != nil {
			r.sink.Emit(event.FileNotMoved(entry.Name, err))
			summary.Failed = append(summary.Failed, entry.Name)
			continue
		}
		r.logger.Debug("moved", "from", entry.Path, "to", dst)
		summary.Moved = append(summary.Moved, model.Move{From: entry.Path, To: dst})
	}
	return summary, nil
}

// list returns a snapshot of the immediate entries of the input directory.
func (r *Renamer) list() ([]model.Entry, error) {
	dirEntries, err := os.ReadDir(r.cfg.InputPath)
	if err != nil {
		return nil, errors.Wrapf(ErrListing, "%s: %v", r.cfg.InputPath, err)
	}

	entries := make([]model.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, model.Entry{
			Name: de.Name(),
			Path: filepath.Join(r.cfg.InputPath, de.Name()),
		})
	}
	return entries, nil
}

// Start runs the whole lifecycle: configure, then run if the paths are
// valid. It emits Starting first, and Aborted when configuration fails or
// Done once the pass has ended.
func (r *Renamer) Start(params []string, workDir string) (model.Summary, error) {
	r.sink.Emit(event.New(event.Starting))

	if !r.Configure(params, workDir) {
		r.sink.Emit(event.New(event.Aborted))
		return model.Summary{}, ErrInvalidPaths
	}

	// A listing failure has already been reported by Run; the pass is
	// still considered finished.
	summary, err := r.Run()
	r.sink.Emit(event.New(event.Done))
	return summary, err
}
