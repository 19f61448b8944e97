package parser

import (
	"github.com/kolang-lang/kolang/frontend/ast"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

type associativity uint8

const (
	assocLeft associativity = iota
	assocRight
)

// getBinaryOperatorPrecedence returns the binding power of a binary
// operator token, lowest first. Assignment sits below all of these and
// unary operators above.
func getBinaryOperatorPrecedence(k lexer.Kind) (int, associativity, ast.BinaryOp, bool) {
	op, ok := ast.BinaryOpFromKind(k)
	if !ok {
		return 0, assocLeft, 0, false
	}
	switch op {
	case ast.BinaryOpLogicalOr:
		return 1, assocLeft, op, true
	case ast.BinaryOpLogicalAnd:
		return 2, assocLeft, op, true
	case ast.BinaryOpEqual, ast.BinaryOpNotEqual:
		return 3, assocLeft, op, true
	case ast.BinaryOpLess, ast.BinaryOpGreater, ast.BinaryOpLessEqual, ast.BinaryOpGreaterEqual:
		return 4, assocLeft, op, true
	case ast.BinaryOpAdd, ast.BinaryOpSub:
		return 5, assocLeft, op, true
	case ast.BinaryOpMul, ast.BinaryOpDiv, ast.BinaryOpMod:
		return 6, assocLeft, op, true
	}
	return 0, assocLeft, 0, false
}

// parseBinaryExpr is a precedence climber: it folds operators binding at
// least as tightly as minPrec into left.
func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	left := p.parseUnaryExpr()
	if left == nil {
		return nil
	}

	for {
		prec, assoc, binOp, ok := getBinaryOperatorPrecedence(p.Token.Kind)
		if !ok || prec < minPrec {
			break
		}
		p.advance() // operator

		nextMinPrec := prec
		if assoc == assocLeft {
			nextMinPrec = prec + 1
		}
		right := p.parseBinaryExpr(nextMinPrec)
		if right == nil {
			return nil
		}

		left = ast.NewBinaryExpr(binOp, left, right, SpanFrom(left.Span(), right.Span()))
	}

	return left
}
