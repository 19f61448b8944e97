package common

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

// Span represents a range in a source file.
//
// Lines and columns are 1-based and the end column is inclusive. Columns
// count runes. Start and End are byte offsets into the source text,
// half-open.
type Span struct {
	LineStart, LineEnd     uint32
	ColumnStart, ColumnEnd uint32
	Start, End             int
	Source                 string // "" == unknown
}

func adjustN(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return n - 1
}

func (s Span) ToRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      adjustN(s.LineStart),
			Character: adjustN(s.ColumnStart),
		},
		End: protocol.Position{
			Line:      adjustN(s.LineEnd),
			Character: s.ColumnEnd,
		},
	}
}

func (s Span) ToLocation() protocol.Location {
	return protocol.Location{
		URI:   FilePathToURI(s.Source),
		Range: s.ToRange(),
	}
}

// Text returns the slice of code the span covers.
func (s Span) Text(code string) string {
	if s.Start < 0 || s.End > len(code) || s.Start > s.End {
		return ""
	}
	return code[s.Start:s.End]
}

// Contains reports whether the 1-based line/column position falls inside s.
func (s Span) Contains(line, column uint32) bool {
	if line < s.LineStart || line > s.LineEnd {
		return false
	}
	if line == s.LineStart && column < s.ColumnStart {
		return false
	}
	if line == s.LineEnd && column > s.ColumnEnd {
		return false
	}
	return true
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (%s)", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd, s.Source)
}

// SpanDefault is the span of the first character of an unknown source.
func SpanDefault() Span {
	return Span{
		LineStart:   1,
		LineEnd:     1,
		ColumnStart: 1,
		ColumnEnd:   1,
	}
}

func SpanNew(lineStart, lineEnd, columnStart, columnEnd uint32, start, end int) Span {
	return Span{
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		ColumnStart: columnStart,
		ColumnEnd:   columnEnd,
		Start:       start,
		End:         end,
	}
}

func SpanSrc(src string) Span {
	span := SpanDefault()
	span.Source = src
	return span
}

// SpanFrom joins the outer bounds of two spans.
func SpanFrom(start, end Span) Span {
	return Span{
		LineStart:   start.LineStart,
		LineEnd:     end.LineEnd,
		ColumnStart: start.ColumnStart,
		ColumnEnd:   end.ColumnEnd,
		Start:       start.Start,
		End:         end.End,
		Source:      start.Source,
	}
}
