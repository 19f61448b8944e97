package lexer

import (
	"github.com/kolang-lang/kolang/common"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer/peekable"
)

type position struct {
	line, column uint32
	offset       int
}

// Lexer is a hand-rolled, rune-based scanner. Tokens are pulled one at a
// time with Next; problems are reported to the shared diagnostics sink and
// scanning continues.
type Lexer struct {
	src      string // src is the path of the file being scanned
	code     string
	chars    *peekable.Chars
	curChr   *rune
	curWidth int
	cur      position // position of curChr
	last     position // position of the last consumed rune
	saved    position // start of the token being scanned
	diags    *diag.Diagnostics
}

// New returns a lexer over code. src names the file for spans and may be
// empty. A nil diags discards diagnostics.
func New(src, code string, diags *diag.Diagnostics) *Lexer {
	if diags == nil {
		diags = &diag.Diagnostics{}
	}
	chars := peekable.NewPeekableChars(code)
	start := position{line: 1, column: 1}
	lx := &Lexer{
		src:      src,
		code:     code,
		chars:    chars,
		curWidth: chars.Width(),
		cur:      start,
		last:     start,
		saved:    start,
		diags:    diags,
	}
	lx.curChr = chars.Next()
	return lx
}

// Lex scans code to the end and returns every token, the final one being
// the EOF token.
func Lex(src, code string, diags *diag.Diagnostics) []Token {
	var tokens []Token
	lx := New(src, code, diags)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			break
		}
	}
	return tokens
}

// Source is the file path the lexer was created with.
func (lx *Lexer) Source() string {
	return lx.src
}

// Code is the text being scanned.
func (lx *Lexer) Code() string {
	return lx.code
}

// Next returns the next token. Once the input is exhausted it returns an
// EOF token on every call.
func (lx *Lexer) Next() Token {
	for {
		lx.skipWs()

		c := lx.curChr
		if c == nil {
			span := common.SpanNew(lx.cur.line, lx.cur.line, lx.cur.column, lx.cur.column, lx.cur.offset, lx.cur.offset)
			span.Source = lx.src
			return NewToken(KindEOF, "", span)
		}

		if *c == '/' {
			if p := lx.peek(); p != nil {
				switch *p {
				case '/':
					lx.comment()
					continue
				case '*':
					lx.multilineComment()
					continue
				}
			}
		}

		if token, ok := lx.number(); ok {
			return token
		}

		if token, ok := lx.punct(); ok {
			return token
		}

		switch {
		case *c == '"':
			return lx.string()
		case *c == '\'':
			return lx.char()
		case isIdentStart(c):
			return lx.identifier()
		}

		lx.advance()
		lx.error(diag.CodeInvalidCharacter, "invalid character %q", *c)
	}
}

func (lx *Lexer) pos() position {
	return lx.cur
}

// spanFrom covers from p up to and including the last consumed rune.
func (lx *Lexer) spanFrom(p position) common.Span {
	end := lx.last
	if lx.cur.offset == p.offset {
		end = p
	}
	span := common.SpanNew(p.line, end.line, p.column, end.column, p.offset, lx.cur.offset)
	span.Source = lx.src
	return span
}

func (lx *Lexer) currentSpan() common.Span {
	return lx.spanFrom(lx.saved)
}

func (lx *Lexer) token(kind Kind) Token {
	return NewToken(kind, lx.code[lx.saved.offset:lx.cur.offset], lx.currentSpan())
}

func (lx *Lexer) advance() {
	c := lx.curChr
	if c == nil {
		return
	}
	lx.last = lx.cur
	if *c == '\n' {
		lx.cur.line++
		lx.cur.column = 1
	} else {
		lx.cur.column++
	}
	lx.cur.offset += lx.curWidth
	lx.curWidth = lx.chars.Width()
	lx.curChr = lx.chars.Next()
}

func (lx *Lexer) peek() *rune {
	return lx.chars.Peek()
}

func (lx *Lexer) peekSecond() *rune {
	return lx.chars.PeekSecond()
}

func (lx *Lexer) error(code diag.Code, format string, args ...any) {
	lx.errorAt(lx.currentSpan(), code, format, args...)
}

func (lx *Lexer) errorAt(span common.Span, code diag.Code, format string, args ...any) {
	lx.diags.Error(diag.StageLexer, code, span, format, args...)
}

// skipWs skips whitespaces to the next non-whitespace character.
func (lx *Lexer) skipWs() {
	for isWsChr(lx.curChr) {
		lx.advance()
	}
	lx.saved = lx.cur
}

func isChr(c *rune, e rune) bool {
	return c != nil && *c == e
}

func isWsChr(c *rune) bool {
	if c == nil {
		return false
	}
	switch *c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
