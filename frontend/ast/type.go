package ast

import (
	"strconv"

	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

type BaseType uint8

const (
	_ BaseType = iota
	BaseInt
	BaseFloat
	BaseChar
	BaseBool
	BaseStr
)

func (b BaseType) String() string {
	switch b {
	case BaseInt:
		return "int"
	case BaseFloat:
		return "float"
	case BaseChar:
		return "char"
	case BaseBool:
		return "bool"
	case BaseStr:
		return "str"
	default:
		return "invalid"
	}
}

// BaseTypeFromKind maps a type keyword to its base type.
func BaseTypeFromKind(k lexer.Kind) (BaseType, bool) {
	switch k {
	case lexer.KwInt:
		return BaseInt, true
	case lexer.KwFloat:
		return BaseFloat, true
	case lexer.KwChar:
		return BaseChar, true
	case lexer.KwBool:
		return BaseBool, true
	case lexer.KwStr:
		return BaseStr, true
	}
	return 0, false
}

// Type is a base type, optionally an array of it. Size is nil for
// scalars and for arrays written `base[]`, whose length is left to later
// stages.
type Type struct {
	Base  BaseType
	Array bool
	Size  *int64
	span  common.Span
}

func NewType(base BaseType, span common.Span) *Type {
	return &Type{Base: base, span: span}
}

func NewArrayType(base BaseType, size *int64, span common.Span) *Type {
	return &Type{Base: base, Array: true, Size: size, span: span}
}

func (t *Type) Span() common.Span {
	return t.span
}

func (t *Type) String() string {
	if t == nil {
		return "<missing>"
	}
	s := t.Base.String()
	if !t.Array {
		return s
	}
	if t.Size == nil {
		return s + "[]"
	}
	return s + "[" + strconv.FormatInt(*t.Size, 10) + "]"
}
