// Package peekable provides a peekable iterator over a string
package peekable

import (
	"unicode/utf8"
)

// EOF signals that there are no more runes in the iterator.
const EOF rune = 0

// noWidth is the width assigned when there is no next rune.
const noWidth = 0

// Chars is a peekable iterator over a string
// It normalises Windows line endings ("\r\n") into a single '\n'.
// Stand-alone '\r' or '\n' runes are returned unchanged.
type Chars struct {
	input   string
	pos     int
	width   int
	next    rune
	hasNext bool
}

// NewPeekableChars creates a new Chars iterator.
func NewPeekableChars(s string) *Chars {
	p := &Chars{input: s}
	p.advance()
	return p
}

// advance decodes the rune at pos. "\r\n" is reported as a single '\n'
// whose width covers both bytes.
func (p *Chars) advance() {
	if p.pos >= len(p.input) {
		p.hasNext = false
		p.next = EOF
		p.width = noWidth
		return
	}

	r, w := utf8.DecodeRuneInString(p.input[p.pos:])

	if r == '\r' {
		nextPos := p.pos + w
		if nextPos < len(p.input) {
			r2, w2 := utf8.DecodeRuneInString(p.input[nextPos:])
			if r2 == '\n' {
				r = '\n'
				w += w2
			}
		}
	}

	p.next = r
	p.width = w
	p.hasNext = true
}

// Peek returns a copy of the next rune without consuming it.
// It returns nil if there is no next rune.
func (p *Chars) Peek() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	return &r
}

// PeekSecond returns the rune after the next one without consuming
// anything. Line endings are not normalised here.
func (p *Chars) PeekSecond() *rune {
	if !p.hasNext {
		return nil
	}
	at := p.pos + p.width
	if at >= len(p.input) {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(p.input[at:])
	return &r
}

// Next consumes and returns a copy of the next rune.
// It returns nil if there is no next rune.
func (p *Chars) Next() *rune {
	if !p.hasNext {
		return nil
	}
	r := p.next
	p.pos += p.width
	p.advance()
	return &r
}

// Pos is the byte offset of the next rune.
func (p *Chars) Pos() int {
	if !p.hasNext {
		return len(p.input)
	}
	return p.pos
}

// Width is the byte width of the next rune.
func (p *Chars) Width() int {
	if !p.hasNext {
		return noWidth
	}
	return p.width
}
