package ast

import (
	"github.com/kolang-lang/kolang/common"
)

type FunctionDecl struct {
	Name       Ident
	Params     []*Param
	ReturnType *Type // nil if not annotated
	Body       Stmt
	span       common.Span
}

func NewFunctionDecl(name Ident, params []*Param, returnType *Type, body Stmt, span common.Span) *FunctionDecl {
	return &FunctionDecl{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		span:       span,
	}
}

func (f *FunctionDecl) Span() common.Span {
	return f.span
}

// Signature renders the header, e.g. "fn add(a: int, b: int): int".
func (f *FunctionDecl) Signature() string {
	s := "fn " + f.Name.Lexeme + "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Name.Lexeme + ": " + p.Type.String()
	}
	s += ")"
	if f.ReturnType != nil {
		s += ": " + f.ReturnType.String()
	}
	return s
}

type Param struct {
	Name Ident
	Type *Type
	span common.Span
}

func NewParam(name Ident, ty *Type, span common.Span) *Param {
	return &Param{Name: name, Type: ty, span: span}
}

func (p *Param) Span() common.Span {
	return p.span
}
