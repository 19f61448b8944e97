package parser

import (
	"github.com/kolang-lang/kolang/frontend/ast"
	diag "github.com/kolang-lang/kolang/frontend/common"
)

// parseFunction parses `fn name(params) [: type] stmt`. A malformed header
// is reported and everything up to the next 'fn' is skipped.
func (p *Parser) parseFunction() *ast.FunctionDecl {
	start := p.span()
	p.advance() // 'fn'

	name, ok := p.expectIdent("function name after 'fn'")
	if !ok {
		p.skipUntilFn()
		return nil
	}
	if !p.expect("(", "after function name") {
		p.skipUntilFn()
		return nil
	}
	params, ok := p.parseParams()
	if !ok {
		p.skipUntilFn()
		return nil
	}

	var ret *ast.Type
	if p.tryConsume(":") {
		if ret = p.parseType(); ret == nil {
			p.skipUntilFn()
			return nil
		}
	}

	body := p.parseStmt()
	return ast.NewFunctionDecl(name, params, ret, body, SpanFrom(start, p.prevSpan()))
}

// parseParams reads the parameter list after '(' up to and including ')'.
// A repeated name is reported and left out of the list.
func (p *Parser) parseParams() ([]*ast.Param, bool) {
	var params []*ast.Param
	seen := make(map[string]*ast.Param)

	for !p.Token.Is(")") {
		name, ok := p.expectIdent("parameter name")
		if !ok {
			return nil, false
		}
		if !p.expect(":", "after parameter name") {
			return nil, false
		}
		ty := p.parseType()
		if ty == nil {
			return nil, false
		}

		if first, dup := seen[name.Lexeme]; dup {
			p.errorf(diag.CodeDuplicateParameter, name.Span(),
				"duplicate parameter '%s' (first declared at %d:%d)",
				name.Lexeme, first.Span().LineStart, first.Span().ColumnStart)
		} else {
			param := ast.NewParam(name, ty, SpanFrom(name.Span(), ty.Span()))
			seen[name.Lexeme] = param
			params = append(params, param)
		}

		if !p.tryConsume(",") {
			break
		}
	}

	if !p.expect(")", "to close the parameter list") {
		return nil, false
	}
	return params, true
}
