package ast

import (
	"github.com/kolang-lang/kolang/common"
)

type StmtKind uint8

const (
	_ StmtKind = iota
	StmtKindLet
	StmtKindExpr
	StmtKindIf
	StmtKindWhile
	StmtKindFor
	StmtKindReturn
	StmtKindBlock
)

func (k StmtKind) String() string {
	switch k {
	case StmtKindLet:
		return "let"
	case StmtKindExpr:
		return "expr"
	case StmtKindIf:
		return "if"
	case StmtKindWhile:
		return "while"
	case StmtKindFor:
		return "for"
	case StmtKindReturn:
		return "return"
	case StmtKindBlock:
		return "block"
	default:
		return "unknown"
	}
}

type Stmt interface {
	isStmt()
	StmtKind() StmtKind
	Span() common.Span
}

/* Let */

type LetStmt struct {
	Name Ident
	Type *Type
	Init Expr // nil if no initializer
	span common.Span
}

func NewLetStmt(name Ident, ty *Type, init Expr, span common.Span) *LetStmt {
	return &LetStmt{Name: name, Type: ty, Init: init, span: span}
}

func (l *LetStmt) isStmt()            {}
func (l *LetStmt) StmtKind() StmtKind { return StmtKindLet }

func (l *LetStmt) Span() common.Span {
	return l.span
}

/* ExprStatement */

type ExprStmt struct {
	Expr Expr
	span common.Span
}

func NewExprStmt(expr Expr, span common.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: span}
}

func (e *ExprStmt) isStmt()            {}
func (e *ExprStmt) StmtKind() StmtKind { return StmtKindExpr }

func (e *ExprStmt) Span() common.Span {
	return e.span
}

/* If */

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
	span common.Span
}

func NewIfStmt(cond Expr, then, els Stmt, span common.Span) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, Else: els, span: span}
}

func (i *IfStmt) isStmt()            {}
func (i *IfStmt) StmtKind() StmtKind { return StmtKindIf }

func (i *IfStmt) Span() common.Span {
	return i.span
}

/* While */

type WhileStmt struct {
	Cond Expr
	Body Stmt
	span common.Span
}

func NewWhileStmt(cond Expr, body Stmt, span common.Span) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body, span: span}
}

func (w *WhileStmt) isStmt()            {}
func (w *WhileStmt) StmtKind() StmtKind { return StmtKindWhile }

func (w *WhileStmt) Span() common.Span {
	return w.span
}

/* For */

// ForStmt iterates Var over From..To, both bounds inclusive. Var is
// scoped to Body.
type ForStmt struct {
	Var  Ident
	From Expr
	To   Expr
	Body Stmt
	span common.Span
}

func NewForStmt(v Ident, from, to Expr, body Stmt, span common.Span) *ForStmt {
	return &ForStmt{Var: v, From: from, To: to, Body: body, span: span}
}

func (f *ForStmt) isStmt()            {}
func (f *ForStmt) StmtKind() StmtKind { return StmtKindFor }

func (f *ForStmt) Span() common.Span {
	return f.span
}

/* Return */

type ReturnStmt struct {
	Value Expr // nil for a bare return
	span  common.Span
}

func NewReturnStmt(value Expr, span common.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}

func (r *ReturnStmt) isStmt()            {}
func (r *ReturnStmt) StmtKind() StmtKind { return StmtKindReturn }

func (r *ReturnStmt) Span() common.Span {
	return r.span
}

/* Block */

type BlockStmt struct {
	Stmts []Stmt
	span  common.Span
}

func NewBlockStmt(stmts []Stmt, span common.Span) *BlockStmt {
	return &BlockStmt{Stmts: stmts, span: span}
}

func (b *BlockStmt) isStmt()            {}
func (b *BlockStmt) StmtKind() StmtKind { return StmtKindBlock }

func (b *BlockStmt) Span() common.Span {
	return b.span
}
