package peekable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s string) []rune {
	var out []rune
	p := NewPeekableChars(s)
	for r := p.Next(); r != nil; r = p.Next() {
		out = append(out, *r)
	}
	return out
}

func TestCRLFNormalised(t *testing.T) {
	assert.Equal(t, []rune{'a', '\n', 'b', '\r', 'c'}, collect("a\r\nb\rc"))
}

func TestPeekAndWidth(t *testing.T) {
	p := NewPeekableChars("\r\né1")
	require.NotNil(t, p.Peek())
	assert.Equal(t, '\n', *p.Peek())
	assert.Equal(t, 2, p.Width())
	require.NotNil(t, p.PeekSecond())
	assert.Equal(t, 'é', *p.PeekSecond())

	p.Next()
	assert.Equal(t, 2, p.Pos())
	assert.Equal(t, 2, p.Width())
	p.Next()
	assert.Equal(t, 4, p.Pos())
	assert.Nil(t, p.PeekSecond())
	p.Next()
	assert.Nil(t, p.Peek())
	assert.Nil(t, p.Next())
	assert.Equal(t, 5, p.Pos())
	assert.Equal(t, 0, p.Width())
}
