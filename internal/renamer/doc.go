// Package renamer implements the sanitize-and-move pass.
//
// A run resolves its configuration from up to three positional parameters
// (forbidden symbols, input directory, import directory), checks that both
// directories exist, and then moves every immediate entry of the input
// directory into the import directory under a sanitized name. Every
// character of the entry name that appears in the forbidden symbol set is
// replaced with an underscore.
//
// Failures are reported through an event.Sink rather than aborting:
//   - a missing path parameter falls back to the defaults
//   - a missing directory stops the run before anything is moved
//   - an entry that cannot be moved (destination taken, permissions,
//     I/O errors) stays where it is and the batch continues
//
// Existing files in the import directory are never overwritten.
package renamer
