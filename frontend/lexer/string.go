package lexer

import (
	"fmt"
	"strings"

	diag "github.com/kolang-lang/kolang/frontend/common"
)

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// escape consumes a backslash escape. An unknown escape character is
// reported and consumed so that scanning can continue inside the literal.
func (lx *Lexer) escape() {
	start := lx.pos()
	lx.advance() // '\'
	c := lx.curChr
	if c == nil {
		return
	}
	lx.advance()
	if _, ok := escapes[*c]; !ok {
		lx.errorAt(lx.spanFrom(start), diag.CodeInvalidEscape, "invalid escape sequence \\%c", *c)
	}
}

// string lexes a double quoted literal. Literal line breaks are part of the
// string; reaching the end of input is an error.
func (lx *Lexer) string() Token {
	lx.advance() // '"'
	for {
		c := lx.curChr
		switch {
		case c == nil:
			tok := lx.token(KindStr)
			lx.error(diag.CodeUnterminatedString, "unterminated string literal")
			return tok
		case *c == '"':
			lx.advance()
			return lx.token(KindStr)
		case *c == '\\':
			lx.escape()
		default:
			lx.advance()
		}
	}
}

// char lexes a single quoted literal holding exactly one character or
// escape. When the closing quote is missing the token stops after the
// first character so the rest of the line is scanned normally.
func (lx *Lexer) char() Token {
	lx.advance() // '\''

	c := lx.curChr
	switch {
	case c == nil || *c == '\n':
		tok := lx.token(KindChar)
		lx.error(diag.CodeUnterminatedChar, "unterminated character literal")
		return tok
	case *c == '\'':
		lx.advance()
		tok := lx.token(KindChar)
		lx.error(diag.CodeMalformedChar, "empty character literal")
		return tok
	case *c == '\\':
		lx.escape()
	default:
		lx.advance()
	}

	if isChr(lx.curChr, '\'') {
		lx.advance()
		return lx.token(KindChar)
	}

	if end := closingQuote(lx.code, lx.cur.offset); end >= 0 {
		for lx.cur.offset <= end {
			lx.advance()
		}
		tok := lx.token(KindChar)
		lx.error(diag.CodeMalformedChar, "character literal must contain exactly one character")
		return tok
	}

	tok := lx.token(KindChar)
	lx.error(diag.CodeUnterminatedChar, "unterminated character literal")
	return tok
}

// closingQuote returns the byte offset of the next unescaped single quote,
// or -1 when whitespace or a separator comes first: text past those
// belongs to the following tokens, not to an overlong literal.
func closingQuote(code string, from int) int {
	for i := from; i < len(code); i++ {
		switch code[i] {
		case '\\':
			i++
		case '\'':
			return i
		case ' ', '\t', '\n', '\r', '\f', '\v', ';', ',', ')', ']', '}':
			return -1
		}
	}
	return -1
}

// Unquote decodes the body of a string or char literal token. Unknown
// escapes decode to the escaped character itself; they were already
// reported while lexing.
func Unquote(t Token) (string, error) {
	if t.Kind != KindStr && t.Kind != KindChar {
		return "", fmt.Errorf("%s is not a string or character literal", t.Kind)
	}
	quote := '"'
	if t.Kind == KindChar {
		quote = '\''
	}

	var sb strings.Builder
	escaped := false
	for i, r := range t.Lexeme {
		if i == 0 {
			continue
		}
		if escaped {
			if v, ok := escapes[r]; ok {
				sb.WriteRune(v)
			} else {
				sb.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if r == quote {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// CharValue decodes a char literal token to its rune. A malformed literal
// decodes to its first character, or zero when empty.
func CharValue(t Token) (rune, error) {
	if t.Kind != KindChar {
		return 0, fmt.Errorf("%s is not a character literal", t.Kind)
	}
	s, err := Unquote(t)
	if err != nil {
		return 0, err
	}
	for _, r := range s {
		return r, nil
	}
	return 0, nil
}
