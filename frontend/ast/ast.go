// Package ast defines the syntax tree produced by the parser. Each node
// category (Stmt, Expr) is a closed set of variants; consumers switch on the
// concrete type or on the Kind enum.
package ast

import (
	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend/lexer"
)

// Ident is an identifier token.
type Ident = lexer.Token

// Node is implemented by every syntax tree node.
type Node interface {
	Span() common.Span
}

// Program is the root of one source file. Funcs are in declaration order.
type Program struct {
	Funcs []*FunctionDecl
	span  common.Span
}

func NewProgram(funcs []*FunctionDecl, span common.Span) *Program {
	return &Program{Funcs: funcs, span: span}
}

func (p *Program) Span() common.Span {
	return p.span
}

// Func returns the first function declared as name.
func (p *Program) Func(name string) *FunctionDecl {
	for _, fn := range p.Funcs {
		if fn.Name.Lexeme == name {
			return fn
		}
	}
	return nil
}
