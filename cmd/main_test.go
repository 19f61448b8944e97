package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolang-lang/kolang/frontend"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var cli CLI
	var stdout, stderr bytes.Buffer
	k, err := kong.New(&cli,
		kong.Name("kolang"),
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	ctx, err := k.Parse(args)
	if err != nil {
		return stdout.String(), stderr.String(), err
	}
	err = ctx.Run()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLexCmd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.kol", "fn f() @")

	stdout, stderr, err := run(t, "lex", path)
	assert.EqualError(t, err, "1 error(s)")
	assert.Equal(t, "1:1\tkw_fn\t\"fn\"\n1:4\tiden\t\"f\"\n1:5\tlpar\t\"(\"\n1:6\trpar\t\")\"\n1:9\teof\t\"\"\n", stdout)
	assert.Contains(t, stderr, "1:8: error[LEX_INVALID_CHARACTER]")
}

func TestParseCmd(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "add.kol", "fn add(a: int, b: int): int { return a + b; }\nfn main() {}\n")

	stdout, stderr, err := run(t, "parse", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "(fn add ((a int) (b int)) int (block (return (+ a b))))\n(fn main () _ (block))\n", stdout)

	stdout, _, err = run(t, "parse", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "node: program")
	assert.Contains(t, stdout, "value: add")
	assert.Contains(t, stdout, "role: return_type")

	_, _, err = run(t, "parse", "--format", "json", path)
	assert.Error(t, err)

	deep := writeFile(t, dir, "deep.kol", "fn f() { x = ((((1)))); }")
	_, stderr, err = run(t, "parse", "--max-depth", "3", deep)
	assert.Error(t, err)
	assert.Contains(t, stderr, "PARSE_NESTING_TOO_DEEP")
}

func TestNewAndCheckCmd(t *testing.T) {
	root := filepath.Join(t.TempDir(), "hello")

	_, _, err := run(t, "new", root)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, frontend.ConfigFile))
	assert.FileExists(t, filepath.Join(root, "src", "main.kol"))

	_, _, err = run(t, "new", root)
	assert.Error(t, err, "existing project")

	stdout, stderr, err := run(t, "check", "-p", root)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "1 files ok\n", stdout)

	writeFile(t, root, "src/bad.kol", "fn bad() { let x: int = ; }")
	_, stderr, err = run(t, "check", "-p", root)
	assert.EqualError(t, err, "1 error(s)")
	assert.Contains(t, stderr, "bad.kol:1:25: error[PARSE_MISSING_EXPRESSION]")

	_, _, err = run(t, "new", filepath.Join(t.TempDir(), "not-valid"))
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kolang version: dev\n", stdout)
}
