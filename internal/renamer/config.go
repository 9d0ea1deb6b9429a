package renamer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/renamer/internal/event"
	"github.com/shinji-kodama/renamer/internal/model"
)

// Positions of the positional parameters.
const (
	paramSymbols = iota
	paramInput
	paramImport
)

// ResolveConfig builds the run configuration from the positional
// parameters and the working directory. It does not touch the filesystem.
//
// The symbol set is replaced unless the first parameter is missing or equals
// "default" (case-insensitive). The two paths are only overridden together:
// when either is missing both fall back to <workDir>/input and
// <workDir>/import. Path parameters are joined onto workDir and cleaned, so
// "/../input" resolves to a sibling of workDir.
func ResolveConfig(params []string, workDir string) (model.Config, []event.Event) {
	cfg := model.DefaultConfig(workDir)
	var events []event.Event

	if len(params) > paramSymbols && !strings.EqualFold(params[paramSymbols], model.DefaultKeyword) {
		cfg.ForbiddenSymbols = params[paramSymbols]
	} else {
		events = append(events, event.New(event.DefaultForbiddenSymbols))
	}

	// Both paths or neither: with only the input path given there is no
	// sensible import path to pair it with.
	if len(params) > paramImport {
		cfg.InputPath = resolvePath(workDir, params[paramInput])
		cfg.ImportPath = resolvePath(workDir, params[paramImport])
	} else {
		events = append(events, event.New(event.DefaultPaths))
	}

	return cfg, events
}

// resolvePath appends suffix to workDir and normalizes . and .. segments.
func resolvePath(workDir, suffix string) string {
	return filepath.Clean(filepath.Join(workDir, suffix))
}

// ValidatePaths checks that both directories of cfg exist. Each missing
// path yields its own error event; PathSuccess is emitted only when both
// are present.
func ValidatePaths(cfg model.Config) (bool, []event.Event) {
	var events []event.Event
	ok := true

	if !exists(cfg.ImportPath) {
		events = append(events, event.New(event.ImportPathError))
		ok = false
	}
	if !exists(cfg.InputPath) {
		events = append(events, event.New(event.InputPathError))
		ok = false
	}
	if ok {
		events = append(events, event.New(event.PathSuccess))
	}
	return ok, events
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
