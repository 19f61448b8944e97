package parser

import (
	"github.com/kolang-lang/kolang/frontend/ast"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

// parseStmt dispatches on the leading token. A malformed statement is
// reported, skipped with sync and returned as nil.
//
// When the nesting limit trips inside the statement, the rest of it is
// discarded with skipStmt once per parse, so that the unparsed tail of a
// deep chain is not read as further statements or declarations.
func (p *Parser) parseStmt() ast.Stmt {
	start := p.span().Start
	reported := p.depthReported
	if !p.enter() {
		if p.span().Start == start {
			p.depthSkipped = true
			p.skipStmt()
		}
		return nil
	}
	defer p.leave()

	stmt := p.parseStmtKind()
	if stmt == nil && !reported && p.depthReported && !p.depthSkipped && isStmtKeyword(p.Token) {
		p.depthSkipped = true
		p.skipStmt()
	}
	return stmt
}

func (p *Parser) parseStmtKind() ast.Stmt {
	switch p.Token.Kind {
	case lexer.KwLet:
		return p.parseLet()
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwFor:
		return p.parseFor()
	case lexer.KwReturn:
		return p.parseReturn()
	case lexer.KindLBrace:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// fail resynchronises after a statement that began at start.
func (p *Parser) fail(start Span) ast.Stmt {
	p.sync(start.Start)
	return nil
}

// expectSemicolon reports a missing ';'. The statement before it is
// complete, so the caller keeps its node; tokens up to the next boundary
// are discarded.
func (p *Parser) expectSemicolon(start Span, context string) {
	if !p.expect(";", context) {
		p.sync(start.Start)
	}
}

func (p *Parser) parseLet() ast.Stmt {
	start := p.span()
	p.advance() // 'let'

	name, ok := p.expectIdent("variable name after 'let'")
	if !ok {
		return p.fail(start)
	}
	if !p.expect(":", "after variable name") {
		return p.fail(start)
	}
	ty := p.parseType()
	if ty == nil {
		return p.fail(start)
	}

	var init ast.Expr
	if p.tryConsume("=") {
		if init = p.parseExpr(); init == nil {
			return p.fail(start)
		}
	}

	p.expectSemicolon(start, "after let statement")
	return ast.NewLetStmt(name, ty, init, SpanFrom(start, p.prevSpan()))
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.span()
	p.advance() // 'if'

	cond := p.parseExpr()
	if cond == nil {
		return p.fail(start)
	}
	then := p.parseStmt()

	// the else branch is consumed even when then failed, so that it is not
	// mistaken for a stray statement
	var els ast.Stmt
	hasElse := p.tryConsume("else")
	if hasElse {
		els = p.parseStmt()
	}
	if then == nil || (hasElse && els == nil) {
		return nil
	}

	return ast.NewIfStmt(cond, then, els, SpanFrom(start, p.prevSpan()))
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.span()
	p.advance() // 'while'

	cond := p.parseExpr()
	if cond == nil {
		return p.fail(start)
	}
	body := p.parseStmt()
	if body == nil {
		return nil
	}

	return ast.NewWhileStmt(cond, body, SpanFrom(start, p.prevSpan()))
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.span()
	p.advance() // 'for'

	v, ok := p.expectIdent("loop variable after 'for'")
	if !ok {
		return p.fail(start)
	}
	if !p.expect("=", "after loop variable") {
		return p.fail(start)
	}
	from := p.parseExpr()
	if from == nil {
		return p.fail(start)
	}
	if !p.expect("to", "after the lower bound") {
		return p.fail(start)
	}
	to := p.parseExpr()
	if to == nil {
		return p.fail(start)
	}
	body := p.parseStmt()
	if body == nil {
		return nil
	}

	return ast.NewForStmt(v, from, to, body, SpanFrom(start, p.prevSpan()))
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.span()
	p.advance() // 'return'

	if p.tryConsume(";") {
		return ast.NewReturnStmt(nil, SpanFrom(start, p.prevSpan()))
	}

	value := p.parseExpr()
	if value == nil {
		return p.fail(start)
	}
	p.expectSemicolon(start, "after return value")
	return ast.NewReturnStmt(value, SpanFrom(start, p.prevSpan()))
}

func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.span()
	expr := p.parseExpr()
	if expr == nil {
		return p.fail(start)
	}
	p.expectSemicolon(start, "after expression")
	return ast.NewExprStmt(expr, SpanFrom(start, p.prevSpan()))
}
