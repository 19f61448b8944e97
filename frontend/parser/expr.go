package parser

import (
	"github.com/kolang-lang/kolang/frontend/ast"
	diag "github.com/kolang-lang/kolang/frontend/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

// parseExpr parses the assignment tier. `ident = expr` is recognised by
// looking one token past the identifier; assignment is right-associative.
// Any other left-hand side followed by '=' is reported; its right-hand
// side is parsed for diagnostics and the whole expression is dropped.
func (p *Parser) parseExpr() ast.Expr {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	if lexer.IsIdent(p.Token) && p.peek().Is("=") {
		target := p.Token
		p.advance() // identifier
		p.advance() // '='
		value := p.parseExpr()
		if value == nil {
			return nil
		}
		return ast.NewAssignExpr(target, value, SpanFrom(target.Span(), value.Span()))
	}

	left := p.parseBinaryExpr(1)
	if left == nil {
		return nil
	}

	if p.Token.Is("=") {
		p.errorf(diag.CodeInvalidAssignTarget, left.Span(),
			"cannot assign to %s, only a variable name can be assigned", describeExpr(left))
		p.advance() // '='
		p.parseExpr()
		return nil
	}
	return left
}

func describeExpr(e ast.Expr) string {
	switch e.ExprKind() {
	case ast.ExprKindIndex:
		return "an indexed element"
	case ast.ExprKindCall:
		return "a call"
	case ast.ExprKindBinary, ast.ExprKindUnary:
		return "an operator expression"
	case ast.ExprKindGrouping:
		return "a parenthesized expression"
	case ast.ExprKindArray:
		return "an array literal"
	default:
		return "a literal"
	}
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.Token

	switch {
	case lexer.IsIdent(tok):
		p.advance()
		switch {
		case p.Token.Is("("):
			p.advance()
			args, ok := p.parseExprList(")", "to close the argument list")
			if !ok {
				return nil
			}
			return ast.NewCallExpr(tok, args, SpanFrom(tok.Span(), p.prevSpan()))
		case p.Token.Is("["):
			p.advance()
			index := p.parseExpr()
			if index == nil {
				return nil
			}
			if !p.expect("]", "after index") {
				return nil
			}
			return ast.NewIndexExpr(tok, index, SpanFrom(tok.Span(), p.prevSpan()))
		}
		return ast.NewIdentExpr(tok)

	case tok.Kind.IsLiteral():
		p.advance()
		return literal(tok)

	case tok.Kind == lexer.KwTrue, tok.Kind == lexer.KwFalse:
		p.advance()
		return ast.NewBoolLit(tok.Kind == lexer.KwTrue, tok.Span())

	case tok.Is("["):
		p.advance()
		elems, ok := p.parseExprList("]", "to close the array literal")
		if !ok {
			return nil
		}
		return ast.NewArrayLit(elems, SpanFrom(tok.Span(), p.prevSpan()))

	case tok.Is("("):
		p.advance()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if !p.expect(")", "to close the parenthesized expression") {
			return nil
		}
		return ast.NewGroupingExpr(inner, SpanFrom(tok.Span(), p.prevSpan()))
	}

	context := ""
	if wantsOperand(p.prev) && p.prev.Span() != tok.Span() {
		context = "after '" + p.prev.Lexeme + "'"
	}
	p.errorExpected(diag.CodeMissingExpression, "expression", context)
	return nil
}

// literal builds the node for a literal token. Malformed literals were
// reported by the lexer and decode to their zero value.
func literal(tok lexer.Token) ast.Expr {
	switch tok.Kind {
	case lexer.KindIntDec, lexer.KindIntBin, lexer.KindIntOct, lexer.KindIntHex:
		v, _ := lexer.IntValue(tok)
		return ast.NewIntLit(v, intBase(tok.Kind), tok.Lexeme, tok.Span())

	case lexer.KindFloat:
		v, _ := lexer.FloatValue(tok)
		return ast.NewFloatLit(v, tok.Lexeme, tok.Span())

	case lexer.KindChar:
		v, _ := lexer.CharValue(tok)
		return ast.NewCharLit(v, tok.Lexeme, tok.Span())

	default: // string
		v, _ := lexer.Unquote(tok)
		return ast.NewStrLit(v, tok.Lexeme, tok.Span())
	}
}

// parseExprList reads comma separated expressions up to and including
// closing. A trailing comma is allowed.
func (p *Parser) parseExprList(closing, context string) ([]ast.Expr, bool) {
	var list []ast.Expr
	for !p.Token.Is(closing) {
		e := p.parseExpr()
		if e == nil {
			return nil, false
		}
		list = append(list, e)
		if !p.tryConsume(",") {
			break
		}
	}
	if !p.expect(closing, context) {
		return nil, false
	}
	return list, true
}

// wantsOperand reports whether an expression must follow t.
func wantsOperand(t lexer.Token) bool {
	if _, ok := ast.BinaryOpFromKind(t.Kind); ok {
		return true
	}
	if _, ok := ast.UnaryOpFromKind(t.Kind); ok {
		return true
	}
	switch t.Kind {
	case lexer.KindAssign, lexer.KindLPar, lexer.KindLBracket, lexer.KindComma,
		lexer.KwReturn, lexer.KwTo, lexer.KwIf, lexer.KwWhile:
		return true
	}
	return false
}

func intBase(k lexer.Kind) int {
	switch k {
	case lexer.KindIntBin:
		return 2
	case lexer.KindIntOct:
		return 8
	case lexer.KindIntHex:
		return 16
	default:
		return 10
	}
}
