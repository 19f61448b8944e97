package lexer

import diag "github.com/kolang-lang/kolang/frontend/common"

// comment skips a `//` comment up to, not including, the line break.
func (lx *Lexer) comment() {
	lx.advance() // skip '/'
	lx.advance() // skip '/'

	for c := lx.curChr; c != nil && *c != '\n'; c = lx.curChr {
		lx.advance()
	}
}

// multilineComment skips a `/* ... */` comment. Comments do not nest: the
// first `*/` closes it. A comment left open is reported at the end of
// input.
func (lx *Lexer) multilineComment() {
	open := lx.pos()
	lx.advance() // '/'
	lx.advance() // '*'

	for c := lx.curChr; c != nil; c = lx.curChr {
		if *c == '*' && isChr(lx.peek(), '/') {
			lx.advance()
			lx.advance()
			return
		}
		lx.advance()
	}

	lx.errorAt(lx.spanFrom(lx.cur), diag.CodeUnterminatedBlockComment,
		"unterminated block comment opened at %d:%d", open.line, open.column)
}
