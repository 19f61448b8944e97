package ast

import "github.com/kolang-lang/kolang/frontend/lexer"

type BinaryOp int

const (
	BinaryOpInvalid BinaryOp = iota
	// BinaryOpLogicalOr is `or`
	BinaryOpLogicalOr
	// BinaryOpLogicalAnd is `and`
	BinaryOpLogicalAnd

	// BinaryOpEqual is `==`
	BinaryOpEqual
	// BinaryOpNotEqual is `!=`
	BinaryOpNotEqual

	// BinaryOpLess is `<`
	BinaryOpLess
	// BinaryOpGreater is `>`
	BinaryOpGreater
	// BinaryOpLessEqual is `<=`
	BinaryOpLessEqual
	// BinaryOpGreaterEqual is `>=`
	BinaryOpGreaterEqual

	// BinaryOpAdd is `+`
	BinaryOpAdd
	// BinaryOpSub is `-`
	BinaryOpSub
	// BinaryOpMul is `*`
	BinaryOpMul
	// BinaryOpDiv is `/`
	BinaryOpDiv
	// BinaryOpMod is `%`
	BinaryOpMod
)

var binaryOps = map[lexer.Kind]BinaryOp{
	lexer.KwOr:         BinaryOpLogicalOr,
	lexer.KwAnd:        BinaryOpLogicalAnd,
	lexer.KindEq:       BinaryOpEqual,
	lexer.KindNeq:      BinaryOpNotEqual,
	lexer.KindLt:       BinaryOpLess,
	lexer.KindGt:       BinaryOpGreater,
	lexer.KindLeq:      BinaryOpLessEqual,
	lexer.KindGeq:      BinaryOpGreaterEqual,
	lexer.KindPlus:     BinaryOpAdd,
	lexer.KindMinus:    BinaryOpSub,
	lexer.KindAsterisk: BinaryOpMul,
	lexer.KindSlash:    BinaryOpDiv,
	lexer.KindPercent:  BinaryOpMod,
}

// BinaryOpFromKind maps an operator token kind to its binary operator.
func BinaryOpFromKind(k lexer.Kind) (BinaryOp, bool) {
	op, ok := binaryOps[k]
	return op, ok
}

func (op BinaryOp) String() string {
	switch op {
	case BinaryOpLogicalOr:
		return "or"
	case BinaryOpLogicalAnd:
		return "and"
	case BinaryOpEqual:
		return "=="
	case BinaryOpNotEqual:
		return "!="
	case BinaryOpLess:
		return "<"
	case BinaryOpGreater:
		return ">"
	case BinaryOpLessEqual:
		return "<="
	case BinaryOpGreaterEqual:
		return ">="
	case BinaryOpAdd:
		return "+"
	case BinaryOpSub:
		return "-"
	case BinaryOpMul:
		return "*"
	case BinaryOpDiv:
		return "/"
	case BinaryOpMod:
		return "%"
	default:
		return "invalid"
	}
}
