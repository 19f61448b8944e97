package parser

import (
	"github.com/kolang-lang/kolang/frontend/ast"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

// parseBlock never fails: a block cut short by 'fn' or the end of input is
// reported and returned with the statements read so far.
func (p *Parser) parseBlock() ast.Stmt {
	start := p.span()
	p.advance() // '{'

	var stmts []ast.Stmt
	for !p.Token.Is("}") {
		if lexer.IsEOF(p.Token) || p.Token.Kind == lexer.KwFn {
			p.errorf(diag.CodeMissingToken, p.span(),
				"expected '}' to close the block opened at %d:%d, found %s",
				start.LineStart, start.ColumnStart, p.Token.Describe())
			return ast.NewBlockStmt(stmts, SpanFrom(start, p.prevSpan()))
		}
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.advance() // '}'

	return ast.NewBlockStmt(stmts, SpanFrom(start, p.prevSpan()))
}
