package parser

import (
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

// isStmtStart reports whether t begins a statement that sync can resume at.
func isStmtStart(t lexer.Token) bool {
	switch t.Kind {
	case lexer.KwLet, lexer.KwIf, lexer.KwWhile, lexer.KwFor, lexer.KwReturn, lexer.KindLBrace:
		return true
	}
	return false
}

// isStmtKeyword is isStmtStart without the opening brace.
func isStmtKeyword(t lexer.Token) bool {
	return isStmtStart(t) && !t.Is("{")
}

// sync discards tokens after a malformed statement. It stops after a ';',
// or before a '}', a token that starts a statement, 'fn', or the end of
// input. start is the byte offset where the statement began; if nothing
// was consumed since then, at least one token is skipped so that the
// caller makes progress. Closing braces are never consumed here because
// they belong to an enclosing block.
func (p *Parser) sync(start int) {
	for {
		tok := p.Token
		moved := tok.Span().Start != start
		switch {
		case lexer.IsEOF(tok), tok.Kind == lexer.KwFn, tok.Is("}"):
			return
		case tok.Is(";"):
			p.advance()
			return
		case isStmtStart(tok) && moved:
			return
		}
		p.advance()
	}
}

// skipStmt discards a whole statement that is nested too deeply to parse:
// everything up to and including the next ';' outside brackets, stopping
// before '}', 'fn' or the end of input. Unlike sync it does not stop at
// keywords that start a statement.
func (p *Parser) skipStmt() {
	for {
		switch {
		case lexer.IsEOF(p.Token), p.Token.Kind == lexer.KwFn, p.Token.Is("}"):
			return
		case p.Token.Is(";"):
			p.advance()
			return
		case isOpener(p.Token):
			p.skipGroup()
		default:
			p.advance()
		}
	}
}

// skipUntilFn discards tokens up to the next 'fn' or the end of input.
func (p *Parser) skipUntilFn() {
	for !lexer.IsEOF(p.Token) && p.Token.Kind != lexer.KwFn {
		p.advance()
	}
}

func isOpener(t lexer.Token) bool {
	return t.Is("(") || t.Is("[") || t.Is("{")
}

func isCloser(t lexer.Token) bool {
	return t.Is(")") || t.Is("]") || t.Is("}")
}

// skipGroup discards the bracketed group starting at the current token,
// up to and including its matching closer. It is iterative so that it
// copes with input nested beyond the depth limit.
func (p *Parser) skipGroup() {
	if !isOpener(p.Token) {
		return
	}
	depth := 0
	for !lexer.IsEOF(p.Token) {
		switch {
		case isOpener(p.Token):
			depth++
		case isCloser(p.Token):
			depth--
		}
		p.advance()
		if depth == 0 {
			return
		}
	}
}

// enter records one more level of nesting. Past the limit it reports the
// problem once per parse, skips the group at the current token and
// returns false; callers then return nil without reporting anything else.
func (p *Parser) enter() bool {
	if p.nesting.Len() >= p.opts.maxDepth {
		if !p.depthReported {
			p.depthReported = true
			outer, _ := p.nesting.Bottom()
			p.errorf(diag.CodeNestingTooDeep, p.span(),
				"nesting is deeper than the limit of %d (outermost construct at %d:%d)",
				p.opts.maxDepth, outer.LineStart, outer.ColumnStart)
		}
		p.skipGroup()
		return false
	}
	p.nesting.Push(p.span())
	return true
}

func (p *Parser) leave() {
	p.nesting.Pop()
}
