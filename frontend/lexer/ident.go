package lexer

func (lx *Lexer) identifier() Token {
	lx.advance()
	for isIdentContinue(lx.curChr) {
		lx.advance()
	}

	tok := lx.token(KindIdent)
	if kw, ok := lookupKeyword(tok.Lexeme); ok {
		tok.Kind = kw
	}
	return tok
}

func isIdentStart(c *rune) bool {
	if c == nil {
		return false
	}
	r := *c
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || r == '_'
}

func isIdentContinue(c *rune) bool {
	return isIdentStart(c) || isDigit(c)
}

// IsValidIdent reports whether s would lex as a single identifier.
func IsValidIdent(s string) bool {
	if s == "" || IsKeyword(s) {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStart(&r) {
				return false
			}
		} else if !isIdentContinue(&r) {
			return false
		}
	}
	return true
}
