package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanFrom(t *testing.T) {
	a := SpanNew(1, 1, 3, 5, 2, 5)
	a.Source = "main.kol"
	b := SpanNew(2, 2, 1, 4, 7, 11)

	joined := SpanFrom(a, b)
	assert.Equal(t, uint32(1), joined.LineStart)
	assert.Equal(t, uint32(2), joined.LineEnd)
	assert.Equal(t, uint32(3), joined.ColumnStart)
	assert.Equal(t, uint32(4), joined.ColumnEnd)
	assert.Equal(t, 2, joined.Start)
	assert.Equal(t, 11, joined.End)
	assert.Equal(t, "main.kol", joined.Source)
}

func TestSpanToRange(t *testing.T) {
	r := SpanNew(3, 3, 5, 7, 0, 0).ToRange()
	assert.Equal(t, uint32(2), r.Start.Line)
	assert.Equal(t, uint32(4), r.Start.Character)
	assert.Equal(t, uint32(2), r.End.Line)
	assert.Equal(t, uint32(7), r.End.Character)
}

func TestSpanTextAndContains(t *testing.T) {
	code := "let x: int;"
	s := SpanNew(1, 1, 5, 5, 4, 5)
	assert.Equal(t, "x", s.Text(code))
	assert.Equal(t, "", SpanNew(1, 1, 1, 1, 5, 100).Text(code))

	multi := SpanNew(1, 3, 4, 2, 0, 0)
	assert.True(t, multi.Contains(2, 1))
	assert.True(t, multi.Contains(1, 4))
	assert.False(t, multi.Contains(1, 3))
	assert.True(t, multi.Contains(3, 2))
	assert.False(t, multi.Contains(3, 3))
	assert.False(t, multi.Contains(4, 1))
}

func TestStack(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)
	bottom, ok := s.Bottom()
	require.True(t, ok)
	assert.Equal(t, 1, bottom)

	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, s.Len())
}

func TestFilePathURIRoundTrip(t *testing.T) {
	uri := FilePathToURI("/tmp/proj/src/main.kol")
	assert.Equal(t, "file:///tmp/proj/src/main.kol", uri)
	assert.Equal(t, "/tmp/proj/src/main.kol", URIToFilePath(uri))
	assert.Equal(t, "untitled:1", URIToFilePath("untitled:1"))
	assert.True(t, IsSourceFile("a/b.kol"))
	assert.False(t, IsSourceFile("a/b.go"))
}

func TestSHA256Hex(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", SHA256Hex(""))
}
