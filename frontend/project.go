package frontend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/kolang-lang/kolang/common"
	diag "github.com/kolang-lang/kolang/frontend/common"
)

// ProjectAnalysis is the result of parsing every source file of a
// workspace.
type ProjectAnalysis struct {
	Config      KolangToml
	ConfigDiags []diag.Diagnostic
	workspace   string
	overrides   map[string]string

	files map[string]*Analysis // keyed by workspace relative path
}

// NewProjectAnalysis builds a project-level container. overrides maps file
// paths to contents that take precedence over the disk, e.g. unsaved
// editor buffers.
func NewProjectAnalysis(workspace string, overrides map[string]string) *ProjectAnalysis {
	pa := &ProjectAnalysis{
		workspace: common.FilePathClean(workspace),
		overrides: make(map[string]string),
		files:     make(map[string]*Analysis),
	}

	for p, c := range overrides {
		if p != "" {
			pa.overrides[common.FilePathClean(p)] = c
		}
	}

	return pa
}

// AnalyzeProject loads kolang.toml from workspace and parses every source
// file under its src directory, one goroutine per file. A missing
// kolang.toml is an error; an invalid one is reported as a diagnostic and
// the defaults are used.
func AnalyzeProject(workspace string, overrides map[string]string) (*ProjectAnalysis, error) {
	pa := NewProjectAnalysis(workspace, overrides)

	configPath := filepath.Join(pa.workspace, ConfigFile)
	tomlContent, err := pa.loadFileContent(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ConfigFile, err)
	}
	pa.Config, err = HandleKolangToml(tomlContent)
	if err != nil {
		pa.ConfigDiags = append(pa.ConfigDiags, configDiagnostic(common.FilePathClean(configPath), err))
		pa.Config = DefaultKolangToml(filepath.Base(pa.workspace))
	}

	paths, err := pa.sourceFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	if len(paths) == 0 && !pa.hasSourceDir() {
		var diags diag.Diagnostics
		diags.Warning(diag.StageConfig, diag.CodeMissingSourceDir, common.SpanSrc(common.FilePathClean(configPath)),
			"source directory %q does not exist", pa.Config.Src)
		pa.ConfigDiags = append(pa.ConfigDiags, diags.All()...)
	}

	results := make([]*Analysis, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = pa.AnalyzeFile(path)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	for _, a := range results {
		pa.files[pa.StripWorkspace(a.Src)] = a
	}

	return pa, nil
}

func configDiagnostic(path string, err error) diag.Diagnostic {
	span := common.SpanSrc(path)
	var perr toml.ParseError
	if errors.As(err, &perr) && perr.Position.Line > 0 {
		line := uint32(perr.Position.Line)
		span = common.SpanNew(line, line, 1, 1, perr.Position.Start, perr.Position.Start+perr.Position.Len)
		span.Source = path
	}
	return diag.Diagnostic{
		Stage:    diag.StageConfig,
		Severity: diag.SeverityError,
		Code:     diag.CodeInvalidConfig,
		Message:  fmt.Sprintf("invalid %s: %v", ConfigFile, err),
		Span:     span,
	}
}

// AnalyzeFile parses one file with the project's configuration.
func (pa *ProjectAnalysis) AnalyzeFile(path string) (*Analysis, error) {
	path = common.FilePathClean(path)
	code, err := pa.loadFileContent(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return ParseSource(path, code, pa.Config.ParserOptions()...), nil
}

func (pa *ProjectAnalysis) hasSourceDir() bool {
	info, err := os.Stat(filepath.Join(pa.workspace, pa.Config.Src))
	return err == nil && info.IsDir()
}

// sourceFiles lists the source files under the src directory, on disk or
// only in overrides, sorted.
func (pa *ProjectAnalysis) sourceFiles() ([]string, error) {
	srcDir := common.FilePathClean(filepath.Join(pa.workspace, pa.Config.Src))
	seen := make(map[string]struct{})

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == srcDir {
				return fs.SkipAll
			}
			return err
		}
		if !d.IsDir() && common.IsSourceFile(path) {
			seen[common.FilePathClean(path)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for p := range pa.overrides {
		if strings.HasPrefix(p, srcDir+"/") && common.IsSourceFile(p) {
			seen[p] = struct{}{}
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths, nil
}

// loadFileContent checks if path is overridePath; else read from disk
func (pa *ProjectAnalysis) loadFileContent(path string) (string, error) {
	path = common.FilePathClean(path)
	if content, ok := pa.overrides[path]; ok {
		return content, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (pa *ProjectAnalysis) StripWorkspace(path string) string {
	ws := pa.workspace + "/"
	path = common.FilePathClean(path)
	return strings.TrimPrefix(path, ws)
}

func (pa *ProjectAnalysis) Workspace() string {
	return pa.workspace
}

func (pa *ProjectAnalysis) Files() map[string]*Analysis {
	return pa.files
}

// File looks a file up by absolute or workspace relative path.
func (pa *ProjectAnalysis) File(path string) *Analysis {
	return pa.files[pa.StripWorkspace(path)]
}

// Paths returns the workspace relative paths of the parsed files, sorted.
func (pa *ProjectAnalysis) Paths() []string {
	paths := make([]string, 0, len(pa.files))
	for p := range pa.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Diagnostics returns the configuration diagnostics followed by each
// file's diagnostics, files in path order.
func (pa *ProjectAnalysis) Diagnostics() []diag.Diagnostic {
	out := slices.Clone(pa.ConfigDiags)
	for _, p := range pa.Paths() {
		out = append(out, pa.files[p].Diags...)
	}
	return out
}

func (pa *ProjectAnalysis) HasErrors() bool {
	for _, d := range pa.ConfigDiags {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	for _, a := range pa.files {
		if a.HasErrors() {
			return true
		}
	}
	return false
}
