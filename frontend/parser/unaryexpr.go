package parser

import "github.com/kolang-lang/kolang/frontend/ast"

func (p *Parser) parseUnaryExpr() ast.Expr {
	op, ok := ast.UnaryOpFromKind(p.Token.Kind)
	if !ok {
		return p.parsePrimaryExpr()
	}

	if !p.enter() {
		return nil
	}
	defer p.leave()

	spanStart := p.span()
	p.advance()
	operand := p.parseUnaryExpr()
	if operand == nil {
		return nil
	}
	return ast.NewUnaryExpr(op, operand, SpanFrom(spanStart, operand.Span()))
}
