package lexer

import (
	"fmt"
	"strconv"

	diag "github.com/kolang-lang/kolang/frontend/common"
)

func (lx *Lexer) number() (Token, bool) {
	c := lx.curChr
	if !isDigit(c) && !(isChr(c, '.') && isDigit(lx.peek())) {
		return Token{}, false
	}

	if *c == '0' {
		if p := lx.peek(); p != nil {
			switch *p {
			case 'b', 'B':
				return lx.radix(KindIntBin, 2, isBinDigit), true
			case 'o', 'O':
				return lx.radix(KindIntOct, 8, isOctDigit), true
			case 'x', 'X':
				return lx.radix(KindIntHex, 16, isHexDigit), true
			}
		}
	}

	kind := KindIntDec
	for isDigit(lx.curChr) {
		lx.advance()
	}

	if isChr(lx.curChr, '.') && isDigit(lx.peek()) {
		kind = KindFloat
		lx.advance() // '.'
		for isDigit(lx.curChr) {
			lx.advance()
		}
	}

	if isChr(lx.curChr, 'e') || isChr(lx.curChr, 'E') {
		p := lx.peek()
		signed := isChr(p, '+') || isChr(p, '-')
		if isDigit(p) || (signed && isDigit(lx.peekSecond())) {
			kind = KindFloat
			lx.advance() // 'e'
			if signed {
				lx.advance()
			}
			for isDigit(lx.curChr) {
				lx.advance()
			}
		}
	}

	tok := lx.token(kind)
	if kind == KindFloat {
		if _, err := strconv.ParseFloat(tok.Lexeme, 64); err != nil {
			lx.error(diag.CodeMalformedNumber, "float literal %s is out of range", tok.Lexeme)
		}
	} else if _, err := strconv.ParseInt(tok.Lexeme, 10, 64); err != nil {
		lx.error(diag.CodeMalformedNumber, "integer literal %s does not fit in 64 bits", tok.Lexeme)
	}
	return tok, true
}

// radix lexes a prefixed integer literal. Only digits of the base are
// consumed; anything after them starts the next token.
func (lx *Lexer) radix(kind Kind, base int, isBaseDigit func(*rune) bool) Token {
	lx.advance() // '0'
	lx.advance() // prefix

	digits := 0
	for isBaseDigit(lx.curChr) {
		lx.advance()
		digits++
	}

	tok := lx.token(kind)
	if digits == 0 {
		lx.error(diag.CodeMalformedNumber, "%s has no digits after the base prefix", tok.Lexeme)
	} else if _, err := strconv.ParseInt(tok.Lexeme[2:], base, 64); err != nil {
		lx.error(diag.CodeMalformedNumber, "integer literal %s does not fit in 64 bits", tok.Lexeme)
	}
	return tok
}

// IntValue decodes an integer literal token. Malformed literals were
// already reported by the lexer and decode to zero with an error.
func IntValue(t Token) (int64, error) {
	var (
		digits string
		base   int
	)
	switch t.Kind {
	case KindIntDec:
		digits, base = t.Lexeme, 10
	case KindIntBin:
		digits, base = trimPrefix(t.Lexeme), 2
	case KindIntOct:
		digits, base = trimPrefix(t.Lexeme), 8
	case KindIntHex:
		digits, base = trimPrefix(t.Lexeme), 16
	default:
		return 0, fmt.Errorf("%s is not an integer literal", t.Kind)
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", t.Lexeme, err)
	}
	return v, nil
}

// FloatValue decodes a float literal token.
func FloatValue(t Token) (float64, error) {
	if t.Kind != KindFloat {
		return 0, fmt.Errorf("%s is not a float literal", t.Kind)
	}
	v, err := strconv.ParseFloat(t.Lexeme, 64)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", t.Lexeme, err)
	}
	return v, nil
}

func trimPrefix(lexeme string) string {
	if len(lexeme) < 2 {
		return ""
	}
	return lexeme[2:]
}

func isDigit(c *rune) bool {
	return c != nil && '0' <= *c && *c <= '9'
}

func isBinDigit(c *rune) bool {
	return c != nil && (*c == '0' || *c == '1')
}

func isOctDigit(c *rune) bool {
	return c != nil && '0' <= *c && *c <= '7'
}

func isHexDigit(c *rune) bool {
	if c == nil {
		return false
	}
	r := *c
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
