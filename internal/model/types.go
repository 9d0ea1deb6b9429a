package model

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultForbiddenSymbols is the symbol set used when no symbols are
	// given or the literal "default" keyword is passed.
	DefaultForbiddenSymbols = "!&"

	// DefaultKeyword keeps the default symbol set when passed as the first
	// positional parameter. It is compared case-insensitively.
	DefaultKeyword = "default"

	// DefaultInputDir and DefaultImportDir are resolved against the
	// working directory when path parameters are missing.
	DefaultInputDir  = "input"
	DefaultImportDir = "import"

	// Replacement is the character every forbidden symbol is replaced with.
	Replacement = "_"
)

// Config is the resolved configuration for a single run.
// It is built once before processing starts and never changes afterwards.
type Config struct {
	// ForbiddenSymbols is the set of characters replaced during sanitizing.
	// An empty set is allowed and leaves every name unchanged.
	ForbiddenSymbols string `json:"forbiddenSymbols" yaml:"forbiddenSymbols"`

	// InputPath is the absolute directory whose immediate entries are renamed.
	InputPath string `json:"inputPath" yaml:"inputPath"`

	// ImportPath is the absolute directory the renamed entries are moved to.
	ImportPath string `json:"importPath" yaml:"importPath"`
}

// DefaultConfig returns the configuration used when no parameters are given.
func DefaultConfig(workDir string) Config {
	return Config{
		ForbiddenSymbols: DefaultForbiddenSymbols,
		InputPath:        filepath.Join(workDir, DefaultInputDir),
		ImportPath:       filepath.Join(workDir, DefaultImportDir),
	}
}

// Entry is a single immediate child of the input directory.
// Files and directories are treated alike; directories are never descended into.
type Entry struct {
	// Name is the base name as listed in the input directory.
	Name string

	// Path is the full path of the entry.
	Path string
}

// Move records one successful relocation.
type Move struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// String returns "from → to" using base names only.
func (m Move) String() string {
	return fmt.Sprintf("%s → %s", filepath.Base(m.From), filepath.Base(m.To))
}

// Summary is the outcome of one pass over the input directory.
type Summary struct {
	// Moved lists every entry that reached the import directory,
	// in the order the directory listing produced them.
	Moved []Move `json:"moved" yaml:"moved"`

	// Failed lists the original names of entries that were left in place.
	Failed []string `json:"failed" yaml:"failed"`
}

// OK reports whether every listed entry was moved.
func (s Summary) OK() bool {
	return len(s.Failed) == 0
}

// ExitCode defines the CLI exit codes. Scripts can use them to tell
// a configuration problem apart from a partially failed batch.
type ExitCode int

const (
	// ExitSuccess indicates every entry was moved.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitPathNotFound indicates the input or import directory does not exist.
	ExitPathNotFound ExitCode = 2

	// ExitListingFailed indicates the input directory could not be enumerated.
	ExitListingFailed ExitCode = 3

	// ExitPartialFailure indicates at least one entry could not be moved.
	ExitPartialFailure ExitCode = 4
)

// CLIError is returned by the root command to select the process exit
// status. Message is what the user sees on stderr; Err keeps the renamer
// error (ErrInvalidPaths, ErrListing, ...) reachable for errors.Is.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

// Error returns "message: cause", or just the message without a cause.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the renamer error.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError reports a failure that has no underlying error, such as
// entries left behind in the input directory.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError attaches an exit code and a user-facing message to err.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
