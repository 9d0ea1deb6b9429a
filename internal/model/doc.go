// Package model defines the domain types and value objects for the
// renamer CLI.
//
// This package contains pure data structures with no external dependencies.
// Config is the resolved triple governing one run; Entry, Move and Summary
// are transient values produced while the input directory is processed.
// Nothing here is persisted between runs.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
