package parser

import (
	"github.com/kolang-lang/kolang/frontend/ast"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

// parseType reads `base`, `base[N]` or `base[]`.
func (p *Parser) parseType() *ast.Type {
	tok := p.Token
	base, ok := ast.BaseTypeFromKind(tok.Kind)
	if !ok {
		p.errorf(diag.CodeMalformedType, tok.Span(), "expected type, found %s", tok.Describe())
		return nil
	}
	p.advance()

	if !p.tryConsume("[") {
		return ast.NewType(base, tok.Span())
	}

	var size *int64
	if p.Token.Kind.IsInt() {
		v, _ := lexer.IntValue(p.Token) // malformed literals were reported by the lexer
		size = &v
		p.advance()
	}
	if !p.Token.Is("]") {
		what := "array size or ']'"
		if size != nil {
			what = "']'"
		}
		p.errorf(diag.CodeMalformedType, p.span(), "expected %s in array type, found %s", what, p.Token.Describe())
		return nil
	}
	p.advance()

	return ast.NewArrayType(base, size, SpanFrom(tok.Span(), p.prevSpan()))
}
