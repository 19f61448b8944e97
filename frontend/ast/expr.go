package ast

import (
	"github.com/kolang-lang/kolang/common"
)

type ExprKind uint8

const (
	_ ExprKind = iota
	ExprKindAssign
	ExprKindBinary
	ExprKindUnary
	ExprKindIdent
	ExprKindInt
	ExprKindFloat
	ExprKindChar
	ExprKindString
	ExprKindBool
	ExprKindArray
	ExprKindCall
	ExprKindIndex
	ExprKindGrouping
)

func (k ExprKind) String() string {
	switch k {
	case ExprKindAssign:
		return "assign"
	case ExprKindBinary:
		return "binary"
	case ExprKindUnary:
		return "unary"
	case ExprKindIdent:
		return "ident"
	case ExprKindInt:
		return "int"
	case ExprKindFloat:
		return "float"
	case ExprKindChar:
		return "char"
	case ExprKindString:
		return "string"
	case ExprKindBool:
		return "bool"
	case ExprKindArray:
		return "array"
	case ExprKindCall:
		return "call"
	case ExprKindIndex:
		return "index"
	case ExprKindGrouping:
		return "grouping"
	default:
		return "unknown"
	}
}

type Expr interface {
	isExpr()
	ExprKind() ExprKind
	Span() common.Span
}

/* Assign */

// AssignExpr is `target = value`. Only a bare identifier can be assigned.
type AssignExpr struct {
	Target Ident
	Value  Expr
	span   common.Span
}

func NewAssignExpr(target Ident, value Expr, span common.Span) *AssignExpr {
	return &AssignExpr{Target: target, Value: value, span: span}
}

func (a *AssignExpr) isExpr()            {}
func (a *AssignExpr) ExprKind() ExprKind { return ExprKindAssign }
func (a *AssignExpr) Span() common.Span  { return a.span }

/* Binary */

type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	span  common.Span
}

func NewBinaryExpr(op BinaryOp, left, right Expr, span common.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: span}
}

func (b *BinaryExpr) isExpr()            {}
func (b *BinaryExpr) ExprKind() ExprKind { return ExprKindBinary }
func (b *BinaryExpr) Span() common.Span  { return b.span }

/* Unary */

type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	span    common.Span
}

func NewUnaryExpr(op UnaryOp, operand Expr, span common.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: span}
}

func (u *UnaryExpr) isExpr()            {}
func (u *UnaryExpr) ExprKind() ExprKind { return ExprKindUnary }
func (u *UnaryExpr) Span() common.Span  { return u.span }

/* Ident */

type IdentExpr struct {
	Ident Ident
}

func NewIdentExpr(ident Ident) *IdentExpr {
	return &IdentExpr{Ident: ident}
}

func (i *IdentExpr) isExpr()            {}
func (i *IdentExpr) ExprKind() ExprKind { return ExprKindIdent }
func (i *IdentExpr) Span() common.Span  { return i.Ident.Span() }

func (i *IdentExpr) Name() string {
	return i.Ident.Lexeme
}

/* Literals */

type IntLit struct {
	Value int64
	Base  int // 2, 8, 10 or 16
	Raw   string
	span  common.Span
}

func NewIntLit(value int64, base int, raw string, span common.Span) *IntLit {
	return &IntLit{Value: value, Base: base, Raw: raw, span: span}
}

func (l *IntLit) isExpr()            {}
func (l *IntLit) ExprKind() ExprKind { return ExprKindInt }
func (l *IntLit) Span() common.Span  { return l.span }

type FloatLit struct {
	Value float64
	Raw   string
	span  common.Span
}

func NewFloatLit(value float64, raw string, span common.Span) *FloatLit {
	return &FloatLit{Value: value, Raw: raw, span: span}
}

func (l *FloatLit) isExpr()            {}
func (l *FloatLit) ExprKind() ExprKind { return ExprKindFloat }
func (l *FloatLit) Span() common.Span  { return l.span }

type CharLit struct {
	Value rune
	Raw   string
	span  common.Span
}

func NewCharLit(value rune, raw string, span common.Span) *CharLit {
	return &CharLit{Value: value, Raw: raw, span: span}
}

func (l *CharLit) isExpr()            {}
func (l *CharLit) ExprKind() ExprKind { return ExprKindChar }
func (l *CharLit) Span() common.Span  { return l.span }

type StrLit struct {
	Value string
	Raw   string
	span  common.Span
}

func NewStrLit(value, raw string, span common.Span) *StrLit {
	return &StrLit{Value: value, Raw: raw, span: span}
}

func (l *StrLit) isExpr()            {}
func (l *StrLit) ExprKind() ExprKind { return ExprKindString }
func (l *StrLit) Span() common.Span  { return l.span }

type BoolLit struct {
	Value bool
	span  common.Span
}

func NewBoolLit(value bool, span common.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

func (l *BoolLit) isExpr()            {}
func (l *BoolLit) ExprKind() ExprKind { return ExprKindBool }
func (l *BoolLit) Span() common.Span  { return l.span }

// ArrayLit is `[a, b, c]`. The element count is not checked against any
// declared size.
type ArrayLit struct {
	Elems []Expr
	span  common.Span
}

func NewArrayLit(elems []Expr, span common.Span) *ArrayLit {
	return &ArrayLit{Elems: elems, span: span}
}

func (l *ArrayLit) isExpr()            {}
func (l *ArrayLit) ExprKind() ExprKind { return ExprKindArray }
func (l *ArrayLit) Span() common.Span  { return l.span }

/* Call */

type CallExpr struct {
	Callee Ident
	Args   []Expr
	span   common.Span
}

func NewCallExpr(callee Ident, args []Expr, span common.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}

func (c *CallExpr) isExpr()            {}
func (c *CallExpr) ExprKind() ExprKind { return ExprKindCall }
func (c *CallExpr) Span() common.Span  { return c.span }

/* Index */

type IndexExpr struct {
	Array Ident
	Index Expr
	span  common.Span
}

func NewIndexExpr(array Ident, index Expr, span common.Span) *IndexExpr {
	return &IndexExpr{Array: array, Index: index, span: span}
}

func (i *IndexExpr) isExpr()            {}
func (i *IndexExpr) ExprKind() ExprKind { return ExprKindIndex }
func (i *IndexExpr) Span() common.Span  { return i.span }

/* Grouping */

// GroupingExpr is a parenthesized expression. It is kept in the tree so
// that the spans of enclosing nodes cover the parentheses.
type GroupingExpr struct {
	Inner Expr
	span  common.Span
}

func NewGroupingExpr(inner Expr, span common.Span) *GroupingExpr {
	return &GroupingExpr{Inner: inner, span: span}
}

func (g *GroupingExpr) isExpr()            {}
func (g *GroupingExpr) ExprKind() ExprKind { return ExprKindGrouping }
func (g *GroupingExpr) Span() common.Span  { return g.span }

// Unparen strips any number of enclosing groupings.
func Unparen(e Expr) Expr {
	for {
		g, ok := e.(*GroupingExpr)
		if !ok {
			return e
		}
		e = g.Inner
	}
}
