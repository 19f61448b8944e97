package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/gluax-lang/lsp"
)

// RuneIndex converts between LSP positions, whose characters are UTF-16
// code units, and the 1-based rune columns of spans.
type RuneIndex struct {
	lines []string
}

func BuildRuneIndex(text string) RuneIndex {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return RuneIndex{lines: strings.Split(text, "\n")}
}

func utf16Len(r rune) uint32 {
	if n := utf16.RuneLen(r); n > 0 {
		return uint32(n)
	}
	return 1
}

// Column returns the 1-based line and rune column of pos.
func (ri RuneIndex) Column(pos lsp.Position) (line, column uint32) {
	line, column = pos.Line+1, 1
	if int(pos.Line) >= len(ri.lines) {
		return line, pos.Character + 1
	}
	var units uint32
	for _, r := range ri.lines[pos.Line] {
		if units >= pos.Character {
			break
		}
		units += utf16Len(r)
		column++
	}
	return line, column
}

// Position is the inverse of Column.
func (ri RuneIndex) Position(line, column uint32) lsp.Position {
	pos := lsp.Position{Line: line - 1}
	if line == 0 || int(line) > len(ri.lines) {
		pos.Line = 0
		return pos
	}
	col := uint32(1)
	for _, r := range ri.lines[line-1] {
		if col >= column {
			break
		}
		pos.Character += utf16Len(r)
		col++
	}
	return pos
}
