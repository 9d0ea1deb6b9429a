// Package cli implements the cobra-based command line for renamer.
//
// The root command is the whole program: it takes up to three positional
// arguments, runs one sanitize-and-move pass and maps the outcome to an
// exit code.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/renamer/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values for the root command.
type rootFlags struct {
	// workDir is the directory path parameters and defaults are resolved
	// against. Defaults to the process working directory.
	workDir string

	// logLevel is one of debug, info, warn, error.
	logLevel string

	// verbose forces the debug log level.
	verbose bool

	// report selects the summary format printed to stdout after the run:
	// empty (no summary), "text", "json" or "yaml".
	report string
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "renamer [flags] [--] [forbidden-symbols [input-dir import-dir]]",
		Short: "Replace forbidden characters in file names and move the files",
		Long: `renamer replaces every forbidden character in the names of the files
and directories directly inside an input directory with "_" and moves
them into an import directory.

Arguments are positional and optional:
  forbidden-symbols  characters to replace, or "default" for "!&"
  input-dir          input directory, appended to the working directory
  import-dir         import directory, appended to the working directory

Both directories must be given together; if either is missing, both
default to <workdir>/input and <workdir>/import. Files already present
in the import directory are never overwritten.

A symbol set starting with "-" would be read as a flag; put "--" before
the positional arguments to pass it through.

Examples:
  renamer
  renamer '#$%'
  renamer default /inbox /processed
  renamer '!&' /../input /../import --report yaml
  renamer -- '-&' /input /import`,

		Args: cobra.MaximumNArgs(3),

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors lets Execute format errors itself.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.workDir, "workdir", "",
		"Directory that paths are resolved against (default: current directory)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"Enable debug output (same as --log-level debug)")
	rootCmd.Flags().StringVar(&flags.report, "report", "",
		"Print a run summary to stdout: text, json, yaml")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// CLIError types carry their own exit codes; other errors exit with 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		jsonOutput := false
		if f := rootCmd.Flags().Lookup("report"); f != nil {
			jsonOutput = f.Value.String() == reportJSON
		}

		if cliErr, ok := err.(*model.CLIError); ok {
			printError(os.Stderr, jsonOutput, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(os.Stderr, jsonOutput, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes an error message as text or JSON.
func printError(w io.Writer, jsonOutput bool, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}
