package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/renamer/internal/event"
	"github.com/shinji-kodama/renamer/internal/logging"
	"github.com/shinji-kodama/renamer/internal/model"
	"github.com/shinji-kodama/renamer/internal/renamer"
)

// Report formats accepted by --report.
const (
	reportNone = ""
	reportText = "text"
	reportJSON = "json"
	reportYAML = "yaml"
)

// runReport is the document printed by --report json and --report yaml.
type runReport struct {
	Config model.Config `json:"config" yaml:"config"`
	Moved  []model.Move `json:"moved" yaml:"moved"`
	Failed []string     `json:"failed" yaml:"failed"`
}

// runRename performs one run and translates its outcome into a CLIError.
// Events are logged to stderr; the optional summary goes to stdout.
func runRename(stdout, stderr io.Writer, args []string, flags *rootFlags) error {
	switch flags.report {
	case reportNone, reportText, reportJSON, reportYAML:
	default:
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid report format %q: valid values are text, json, yaml", flags.report))
	}

	level, err := logging.ParseLevel(flags.logLevel)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid --log-level", err)
	}
	if flags.verbose {
		level = logging.LevelDebug
	}
	logger := logging.WithComponent(logging.New(stderr, level), "renamer")

	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "cannot determine working directory", err)
		}
	}

	rec := event.NewRecorder()
	r := renamer.New(event.Multi(event.NewLogSink(logger), rec), renamer.WithLogger(logger))

	summary, runErr := r.Start(args, workDir)

	// When configuration fails no directory was listed, so an empty summary
	// would wrongly suggest that the input directory was empty. A listing
	// failure still gets its (empty) report since the paths were confirmed.
	if !errors.Is(runErr, renamer.ErrInvalidPaths) {
		if err := printReport(stdout, flags.report, r.Config(), summary); err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "cannot write report", err)
		}
	}

	return outcome(runErr, rec)
}

// outcome maps the run error and the recorded events to an exit status.
// Per-file failures are not returned as errors by the renamer, so they are
// counted from the event stream instead.
func outcome(runErr error, rec *event.Recorder) error {
	switch {
	case errors.Is(runErr, renamer.ErrInvalidPaths):
		return model.WrapCLIError(model.ExitPathNotFound, "process aborted", runErr)
	case errors.Is(runErr, renamer.ErrListing):
		return model.WrapCLIError(model.ExitListingFailed, "input directory could not be listed", runErr)
	case runErr != nil:
		return model.WrapCLIError(model.ExitGeneralError, "rename failed", runErr)
	}

	if n := rec.Count(event.FileNotMovable); n > 0 {
		return model.NewCLIError(model.ExitPartialFailure,
			fmt.Sprintf("%d file(s) could not be moved", n))
	}
	return nil
}

// printReport writes the summary in the requested format.
func printReport(w io.Writer, format string, cfg model.Config, summary model.Summary) error {
	// Empty slices instead of nil so JSON shows [] rather than null.
	doc := runReport{
		Config: cfg,
		Moved:  make([]model.Move, 0, len(summary.Moved)),
		Failed: make([]string, 0, len(summary.Failed)),
	}
	for _, m := range summary.Moved {
		doc.Moved = append(doc.Moved, model.Move{From: displayName(m.From), To: displayName(m.To)})
	}
	for _, name := range summary.Failed {
		doc.Failed = append(doc.Failed, displayName(name))
	}

	switch format {
	case reportText:
		printReportText(w, doc)
	case reportJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case reportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return nil
}

// displayName keeps a name printable in every report format. Names that are
// not valid UTF-8 would otherwise turn into U+FFFD in JSON or base64 in YAML,
// so their invalid bytes are written as \xNN escapes instead.
func displayName(name string) string {
	if utf8.ValidString(name) {
		return name
	}
	quoted := strconv.Quote(name)
	return quoted[1 : len(quoted)-1]
}

// printReportText writes one line per entry:
//
//	MOVED   testFile!&.txt → testFile__.txt
//	FAILED  &.txt
func printReportText(w io.Writer, doc runReport) {
	if len(doc.Moved) == 0 && len(doc.Failed) == 0 {
		fmt.Fprintln(w, "No files found.")
		return
	}
	for _, m := range doc.Moved {
		fmt.Fprintf(w, "%-7s %s\n", "MOVED", m.String())
	}
	for _, name := range doc.Failed {
		fmt.Fprintf(w, "%-7s %s\n", "FAILED", name)
	}
	fmt.Fprintf(w, "\n%d moved, %d failed\n", len(doc.Moved), len(doc.Failed))
}
