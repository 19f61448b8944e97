package ast

import "github.com/kolang-lang/kolang/frontend/lexer"

type UnaryOp int

const (
	_ UnaryOp = iota
	// UnaryOpNegate is `-a`
	UnaryOpNegate
	// UnaryOpNot is `not a`
	UnaryOpNot
	// UnaryOpBitwiseNot is `~a`
	UnaryOpBitwiseNot
)

func UnaryOpFromKind(k lexer.Kind) (UnaryOp, bool) {
	switch k {
	case lexer.KindMinus:
		return UnaryOpNegate, true
	case lexer.KwNot:
		return UnaryOpNot, true
	case lexer.KindTilde:
		return UnaryOpBitwiseNot, true
	}
	return 0, false
}

func (op UnaryOp) String() string {
	switch op {
	case UnaryOpNegate:
		return "-"
	case UnaryOpNot:
		return "not"
	case UnaryOpBitwiseNot:
		return "~"
	default:
		return "invalid"
	}
}
