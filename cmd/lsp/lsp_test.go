package lsp

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	protocol "github.com/gluax-lang/lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend"
)

const mainSrc = "fn add(a: int, b: int): int { return a + b; }\nfn main() { add(1, b); }"

func newProject(t *testing.T) (string, *session) {
	t.Helper()
	dir := common.FilePathClean(t.TempDir())
	files := map[string]string{
		frontend.ConfigFile: "name = \"demo\"\nversion = \"0.1\"\n",
		"src/main.kol":      "fn main() {}",
		"src/util.kol":      "fn util() {}",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir, newSession(dir)
}

func TestSessionUpdate(t *testing.T) {
	dir, s := newProject(t)
	mainPath := dir + "/src/main.kol"
	utilPath := dir + "/src/util.kol"

	diags, changed := s.update(mainPath, mainSrc)
	require.True(t, changed)
	assert.Len(t, diags, 3, "main, util and the config file")
	assert.Empty(t, diags[common.FilePathToURI(mainPath)])
	assert.Empty(t, diags[common.FilePathToURI(dir+"/"+frontend.ConfigFile)])

	_, changed = s.update(mainPath, mainSrc)
	assert.False(t, changed, "same text is not analysed twice")

	diags, changed = s.update(utilPath, "fn util() { x = ; }")
	require.True(t, changed)
	require.Len(t, diags[common.FilePathToURI(utilPath)], 1)
	assert.Contains(t, diags[common.FilePathToURI(utilPath)][0].Message, "PARSE_MISSING_EXPRESSION")

	s.close(utilPath)
	diags, _ = s.update(mainPath, mainSrc+"\n")
	assert.Empty(t, diags[common.FilePathToURI(utilPath)], "closed files fall back to disk")
}

func TestSessionQueries(t *testing.T) {
	dir, s := newProject(t)
	mainPath := dir + "/src/main.kol"
	_, changed := s.update(mainPath, mainSrc)
	require.True(t, changed)

	// `add` in the call on the second line
	callPos := protocol.Position{Line: 1, Character: 12}

	hover := s.hover(mainPath, callPos)
	require.NotNil(t, hover)
	assert.Contains(t, fmt.Sprint(hover.Contents), "fn add(a: int, b: int): int")

	// just past the end of the name still resolves
	assert.NotNil(t, s.hover(mainPath, protocol.Position{Line: 1, Character: 15}))
	assert.Nil(t, s.hover(mainPath, protocol.Position{Line: 1, Character: 0}))

	defs := s.definition(mainPath, callPos)
	require.Len(t, defs, 1)
	assert.Equal(t, common.FilePathToURI(mainPath), defs[0].URI)
	assert.Equal(t, uint32(0), defs[0].Range.Start.Line)
	assert.Equal(t, uint32(3), defs[0].Range.Start.Character)

	assert.Len(t, s.references(mainPath, callPos, true), 2)
	assert.Len(t, s.references(mainPath, callPos, false), 1)

	// parameter a is used once in the body
	refs := s.references(mainPath, protocol.Position{Line: 0, Character: 7}, false)
	require.Len(t, refs, 1)
	assert.Equal(t, uint32(37), refs[0].Range.Start.Character)

	whole := protocol.Range{End: protocol.Position{Line: 100}}
	hints := s.inlayHints(mainPath, whole)
	require.Len(t, hints, 1, "the argument b needs no hint")
	assert.Equal(t, protocol.Position{Line: 1, Character: 16}, hints[0].Position)
	assert.Equal(t, "a:", hints[0].Label[0].Value)

	list := s.complete(mainPath)
	labels := make(map[string]string)
	for _, item := range list.Items {
		labels[item.Label] = item.Detail
	}
	assert.Contains(t, labels, "fn")
	assert.Contains(t, labels, "int")
	assert.Equal(t, "fn add(a: int, b: int): int", labels["add"])
	assert.Contains(t, labels, "main")
}

func TestSessionStandalone(t *testing.T) {
	s := newSession("")
	path := common.FilePathClean(filepath.Join(t.TempDir(), "scratch.kol"))

	diags, changed := s.update(path, "fn f() {")
	require.True(t, changed)
	require.Len(t, diags, 1)
	require.Len(t, diags[common.FilePathToURI(path)], 1)

	s.update(path, "fn f() { g(); }\nfn g() {}")
	defs := s.definition(path, protocol.Position{Line: 0, Character: 9})
	require.Len(t, defs, 1)
	assert.Equal(t, uint32(1), defs[0].Range.Start.Line)

	s.close(path)
	assert.Nil(t, s.hover(path, protocol.Position{}))
}

func TestRuneIndex(t *testing.T) {
	ri := BuildRuneIndex("let é = 1;\r\n😀x")

	line, col := ri.Column(protocol.Position{Line: 0, Character: 5})
	assert.Equal(t, uint32(1), line)
	assert.Equal(t, uint32(6), col)

	line, col = ri.Column(protocol.Position{Line: 1, Character: 2})
	assert.Equal(t, uint32(2), line)
	assert.Equal(t, uint32(2), col)

	assert.Equal(t, protocol.Position{Line: 1, Character: 2}, ri.Position(2, 2))
	assert.Equal(t, protocol.Position{Line: 0, Character: 5}, ri.Position(1, 6))
}

func TestURIToFilePath(t *testing.T) {
	path, err := uriToFilePath("file:///tmp/a%20b/main.kol")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a b/main.kol", path)

	_, err = uriToFilePath("untitled:Untitled-1")
	assert.Error(t, err)
}
