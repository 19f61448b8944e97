package frontend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolang-lang/kolang/common"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/parser"
)

func TestHandleKolangToml(t *testing.T) {
	cases := []struct {
		data   string
		fail   string
		expect KolangToml
	}{
		{
			"name = \"hello\"\nversion = \"0.1\"\n",
			"",
			KolangToml{Name: "hello", Version: "0.1", Src: "src", MaxDepth: parser.DefaultMaxDepth},
		},
		{
			"name = \"hello\"\nversion = \"1\"\nsrc = \"code\"\nmax_depth = 10\n",
			"",
			KolangToml{Name: "hello", Version: "1", Src: "code", MaxDepth: 10},
		},
		{"name = \"hello\"\n", "Version", KolangToml{}},
		{"name = \"1bad\"\nversion = \"1\"\n", "Name", KolangToml{}},
		{"name = \"a\"\nversion = \"1\"\nmax_depth = 0\n", "MaxDepth", KolangToml{}},
		{"name = \"a\"\nversion = \"1\"\nmax_depth = 100001\n", "MaxDepth", KolangToml{}},
		{"name = \"a\"\nversion = \"1\"\nsrc = \"\"\n", "Src", KolangToml{}},
		{"name = \"a\"\nversion = \"1\"\nlib = true\nedition = 2\n", "unknown keys: edition, lib", KolangToml{}},
		{"name = \n", "", KolangToml{}},
	}

	for _, c := range cases {
		got, err := HandleKolangToml(c.data)
		if c.expect == (KolangToml{}) {
			require.Error(t, err, c.data)
			assert.Contains(t, err.Error(), c.fail, c.data)
			continue
		}
		require.NoError(t, err, c.data)
		assert.Equal(t, c.expect, got)
	}
}

func TestKolangTomlEncode(t *testing.T) {
	kt := DefaultKolangToml("hello")
	out, err := kt.Encode()
	require.NoError(t, err)
	assert.Contains(t, out, `name = "hello"`)

	back, err := HandleKolangToml(out)
	require.NoError(t, err)
	assert.Equal(t, kt, back)
}

func TestParseSource(t *testing.T) {
	code := "fn main() { let x: int = ; }"
	a := ParseSource("main.kol", code)
	assert.Equal(t, common.SHA256Hex(code), a.Hash)
	require.NotNil(t, a.Ast)
	require.Len(t, a.Ast.Funcs, 1)
	require.NotNil(t, a.Symbols)
	assert.Len(t, a.Symbols.Functions(), 1)

	assert.True(t, a.HasErrors())
	pd := a.ProtocolDiagnostics()
	require.Len(t, pd, 1)
	assert.Contains(t, pd[0].Message, string(diag.CodeMissingExpression))
	assert.Equal(t, uint32(0), pd[0].Range.Start.Line)
	assert.Equal(t, uint32(25), pd[0].Range.Start.Character)

	clean := ParseSource("", "fn main() {}")
	assert.False(t, clean.HasErrors())
	assert.Empty(t, clean.ProtocolDiagnostics())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.kol")
	require.NoError(t, os.WriteFile(path, []byte("fn a(): int return 1;"), 0o644))

	a, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, common.FilePathClean(path), a.Src)
	assert.Equal(t, a.Src, a.Ast.Funcs[0].Span().Source)
	assert.False(t, a.HasErrors())

	_, err = ParseFile(filepath.Join(dir, "missing.kol"))
	assert.Error(t, err)
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestAnalyzeProject(t *testing.T) {
	dir := writeProject(t, map[string]string{
		ConfigFile:          "name = \"demo\"\nversion = \"0.1\"\n",
		"src/main.kol":      "fn main() { println(square(3)); }",
		"src/util/math.kol": "fn square(x: int): int { return x * ; }",
		"src/notes.txt":     "not source",
		"README.md":         "# demo",
	})

	pa, err := AnalyzeProject(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "demo", pa.Config.Name)
	assert.Empty(t, pa.ConfigDiags)
	assert.Equal(t, []string{"src/main.kol", "src/util/math.kol"}, pa.Paths())

	main := pa.File("src/main.kol")
	require.NotNil(t, main)
	assert.False(t, main.HasErrors())
	assert.Same(t, main, pa.File(filepath.Join(dir, "src", "main.kol")))

	math := pa.File("src/util/math.kol")
	require.NotNil(t, math)
	assert.True(t, math.HasErrors())
	assert.True(t, pa.HasErrors())

	diags := pa.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, diag.CodeMissingExpression, diags[0].Code)
	assert.True(t, strings.HasSuffix(diags[0].Span.Source, "src/util/math.kol"))
}

func TestAnalyzeProjectOverrides(t *testing.T) {
	dir := writeProject(t, map[string]string{
		ConfigFile:     "name = \"demo\"\nversion = \"0.1\"\n",
		"src/main.kol": "fn main() {}",
	})
	overrides := map[string]string{
		filepath.Join(dir, "src", "main.kol"):  "fn main() { oops }",
		filepath.Join(dir, "src", "extra.kol"): "fn extra() {}",
		filepath.Join(dir, "other.kol"):        "fn outside() {}",
	}

	pa, err := AnalyzeProject(dir, overrides)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/extra.kol", "src/main.kol"}, pa.Paths())
	assert.True(t, pa.File("src/main.kol").HasErrors())
	assert.False(t, pa.File("src/extra.kol").HasErrors())
}

func TestAnalyzeProjectConfig(t *testing.T) {
	_, err := AnalyzeProject(t.TempDir(), nil)
	assert.ErrorContains(t, err, ConfigFile)

	dir := writeProject(t, map[string]string{
		ConfigFile:     "name = \"demo\"\nversion = \n",
		"src/main.kol": "fn main() {}",
	})
	pa, err := AnalyzeProject(dir, nil)
	require.NoError(t, err)
	require.Len(t, pa.ConfigDiags, 1)
	assert.Equal(t, diag.CodeInvalidConfig, pa.ConfigDiags[0].Code)
	assert.Equal(t, diag.StageConfig, pa.ConfigDiags[0].Stage)
	assert.True(t, pa.HasErrors())
	assert.Equal(t, []string{"src/main.kol"}, pa.Paths())

	dir = writeProject(t, map[string]string{
		ConfigFile:     "name = \"demo\"\nversion = \"1\"\nmax_depth = 3\n",
		"src/main.kol": "fn main() { x = (((1))); }",
	})
	pa, err = AnalyzeProject(dir, nil)
	require.NoError(t, err)
	diags := pa.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, diag.CodeNestingTooDeep, diags[0].Code)

	dir = writeProject(t, map[string]string{
		ConfigFile: "name = \"empty\"\nversion = \"1\"\n",
	})
	pa, err = AnalyzeProject(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, pa.Paths())
	assert.False(t, pa.HasErrors())
	require.Len(t, pa.ConfigDiags, 1)
	assert.Equal(t, diag.CodeMissingSourceDir, pa.ConfigDiags[0].Code)
	assert.Equal(t, diag.SeverityWarning, pa.ConfigDiags[0].Severity)
	assert.Equal(t, `source directory "src" does not exist`, pa.ConfigDiags[0].Message)

	dir = writeProject(t, map[string]string{
		ConfigFile:      "name = \"empty\"\nversion = \"1\"\n",
		"src/notes.txt": "no sources yet",
	})
	pa, err = AnalyzeProject(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, pa.Paths())
	assert.Empty(t, pa.ConfigDiags)
}
