package renamer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/renamer/internal/event"
	"github.com/shinji-kodama/renamer/internal/model"
)

func kindsOf(events []event.Event) []event.Kind {
	out := make([]event.Kind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

// TestResolveConfig covers the fallback policy for every parameter count.
// It needs no filesystem because ResolveConfig is pure.
func TestResolveConfig(t *testing.T) {
	workDir := filepath.FromSlash("/work/dir")

	tests := []struct {
		name       string
		params     []string
		wantSyms   string
		wantInput  string
		wantImport string
		wantEvents []event.Kind
	}{
		{
			name:       "no parameters keeps all defaults",
			params:     nil,
			wantSyms:   "!&",
			wantInput:  filepath.FromSlash("/work/dir/input"),
			wantImport: filepath.FromSlash("/work/dir/import"),
			wantEvents: []event.Kind{event.DefaultForbiddenSymbols, event.DefaultPaths},
		},
		{
			name:       "default keyword is case-insensitive",
			params:     []string{"DeFault"},
			wantSyms:   "!&",
			wantInput:  filepath.FromSlash("/work/dir/input"),
			wantImport: filepath.FromSlash("/work/dir/import"),
			wantEvents: []event.Kind{event.DefaultForbiddenSymbols, event.DefaultPaths},
		},
		{
			name:       "symbols only",
			params:     []string{"#$"},
			wantSyms:   "#$",
			wantInput:  filepath.FromSlash("/work/dir/input"),
			wantImport: filepath.FromSlash("/work/dir/import"),
			wantEvents: []event.Kind{event.DefaultPaths},
		},
		{
			name:       "a single path reverts both paths to defaults",
			params:     []string{"#$", "/elsewhere"},
			wantSyms:   "#$",
			wantInput:  filepath.FromSlash("/work/dir/input"),
			wantImport: filepath.FromSlash("/work/dir/import"),
			wantEvents: []event.Kind{event.DefaultPaths},
		},
		{
			name:       "default symbols with explicit paths",
			params:     []string{"default", "/a", "/b"},
			wantSyms:   "!&",
			wantInput:  filepath.FromSlash("/work/dir/a"),
			wantImport: filepath.FromSlash("/work/dir/b"),
			wantEvents: []event.Kind{event.DefaultForbiddenSymbols},
		},
		{
			name:       "parent segments are normalized",
			params:     []string{`&%"`, "/../input", "/../import"},
			wantSyms:   `&%"`,
			wantInput:  filepath.FromSlash("/work/input"),
			wantImport: filepath.FromSlash("/work/import"),
			wantEvents: nil,
		},
		{
			name:       "dot segments and relative suffixes",
			params:     []string{"x", "a/./b/../c", "imp"},
			wantSyms:   "x",
			wantInput:  filepath.FromSlash("/work/dir/a/c"),
			wantImport: filepath.FromSlash("/work/dir/imp"),
			wantEvents: nil,
		},
		{
			name:       "empty symbol set is accepted",
			params:     []string{"", "in", "out"},
			wantSyms:   "",
			wantInput:  filepath.FromSlash("/work/dir/in"),
			wantImport: filepath.FromSlash("/work/dir/out"),
			wantEvents: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, events := ResolveConfig(tt.params, workDir)

			assert.Equal(t, tt.wantSyms, cfg.ForbiddenSymbols)
			assert.Equal(t, tt.wantInput, cfg.InputPath)
			assert.Equal(t, tt.wantImport, cfg.ImportPath)
			assert.ElementsMatch(t, tt.wantEvents, kindsOf(events))
		})
	}
}

// TestValidatePaths verifies that each missing directory is reported
// independently and PathSuccess only appears when both exist.
func TestValidatePaths(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "does-not-exist")

	tests := []struct {
		name       string
		cfg        model.Config
		wantOK     bool
		wantEvents []event.Kind
	}{
		{
			name:       "both exist",
			cfg:        model.Config{InputPath: existing, ImportPath: existing},
			wantOK:     true,
			wantEvents: []event.Kind{event.PathSuccess},
		},
		{
			name:       "import missing",
			cfg:        model.Config{InputPath: existing, ImportPath: missing},
			wantOK:     false,
			wantEvents: []event.Kind{event.ImportPathError},
		},
		{
			name:       "input missing",
			cfg:        model.Config{InputPath: missing, ImportPath: existing},
			wantOK:     false,
			wantEvents: []event.Kind{event.InputPathError},
		},
		{
			name:       "both missing",
			cfg:        model.Config{InputPath: missing, ImportPath: missing},
			wantOK:     false,
			wantEvents: []event.Kind{event.ImportPathError, event.InputPathError},
		},
		{
			name:       "empty paths",
			cfg:        model.Config{},
			wantOK:     false,
			wantEvents: []event.Kind{event.ImportPathError, event.InputPathError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, events := ValidatePaths(tt.cfg)
			assert.Equal(t, tt.wantOK, ok)
			assert.ElementsMatch(t, tt.wantEvents, kindsOf(events))
		})
	}
}

// TestConfigure_Defaults checks the no-parameter run against a working
// directory that contains both default directories.
func TestConfigure_Defaults(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "input"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "import"), 0o755))

	rec := event.NewRecorder()
	r := New(rec)

	assert.True(t, r.Configure([]string{}, workDir))
	assert.Equal(t, model.DefaultConfig(workDir), r.Config())
	assert.ElementsMatch(t,
		[]event.Kind{event.DefaultForbiddenSymbols, event.DefaultPaths, event.PathSuccess},
		rec.Kinds())
}

// TestConfigure_BadPaths checks that nonexistent directories are both
// reported and the run is refused.
func TestConfigure_BadPaths(t *testing.T) {
	workDir := t.TempDir()
	rec := event.NewRecorder()
	r := New(rec)

	ok := r.Configure([]string{"default", "/no-such-input", "/no-such-import"}, workDir)

	assert.False(t, ok)
	assert.Equal(t, "!&", r.Config().ForbiddenSymbols)
	assert.True(t, rec.Has(event.DefaultForbiddenSymbols))
	assert.True(t, rec.Has(event.InputPathError))
	assert.True(t, rec.Has(event.ImportPathError))
	assert.False(t, rec.Has(event.PathSuccess))
}

// TestConfigure_ExplicitValues checks that given symbols and relative
// paths outside the working directory are taken over.
func TestConfigure_ExplicitValues(t *testing.T) {
	root := t.TempDir()
	workDir := filepath.Join(root, "work")
	for _, dir := range []string{workDir, filepath.Join(root, "input"), filepath.Join(root, "import")} {
		require.NoError(t, os.Mkdir(dir, 0o755))
	}

	rec := event.NewRecorder()
	r := New(rec)

	ok := r.Configure([]string{`&%"`, "/../input", "/../import"}, workDir)

	require.True(t, ok)
	assert.Equal(t, model.Config{
		ForbiddenSymbols: `&%"`,
		InputPath:        filepath.Join(root, "input"),
		ImportPath:       filepath.Join(root, "import"),
	}, r.Config())
	assert.Equal(t, []event.Kind{event.PathSuccess}, rec.Kinds())
}
