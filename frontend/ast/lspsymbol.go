package ast

import (
	"github.com/kolang-lang/kolang/common"
)

type LSPSymbol interface {
	LSPString() string
	Span() common.Span
}

type DeclKind uint8

const (
	DeclFunction DeclKind = iota
	DeclParam
	DeclLocal
	DeclLoopVar
)

// Decl is a named declaration. Its span is the span of the name.
type Decl struct {
	Kind DeclKind
	Name string
	Type *Type         // nil for functions and loop variables
	Func *FunctionDecl // set for DeclFunction
	span common.Span
}

func (d *Decl) Span() common.Span {
	return d.span
}

func (d *Decl) LSPString() string {
	switch d.Kind {
	case DeclFunction:
		return d.Func.Signature()
	case DeclParam:
		return "(parameter) " + d.Name + ": " + d.Type.String()
	case DeclLoopVar:
		return "(loop variable) " + d.Name
	default:
		return "let " + d.Name + ": " + d.Type.String()
	}
}

// LSPRef is a use of a declaration.
type LSPRef struct {
	decl *Decl
	span common.Span
}

func NewLSPRef(decl *Decl, span common.Span) LSPRef {
	return LSPRef{
		decl: decl,
		span: span,
	}
}

func (v LSPRef) LSPString() string {
	if v.decl == nil {
		return "<nil>"
	}
	return v.decl.LSPString()
}

// Span is the span of the declaration the reference resolves to.
func (v LSPRef) Span() common.Span {
	return v.decl.Span()
}

func (v LSPRef) RefSpan() common.Span {
	return v.span
}

func (v LSPRef) GetDecl() *Decl {
	return v.decl
}

// SymbolIndex records the declarations of a program and every identifier
// use that resolves to one of them. Names that resolve to nothing are left
// out; reporting them is not the parser's business.
type SymbolIndex struct {
	Decls []*Decl
	Refs  []LSPRef

	scopes common.Stack[map[string]*Decl]
}

// IndexSymbols resolves identifier uses in prog by lexical scope. Functions
// are visible everywhere; a let binding is visible from the statement after
// it to the end of the enclosing block; a loop variable only in its body.
func IndexSymbols(prog *Program) *SymbolIndex {
	idx := &SymbolIndex{}
	if prog == nil {
		return idx
	}

	idx.scopes.Push(make(map[string]*Decl))
	for _, fn := range prog.Funcs {
		idx.declare(&Decl{Kind: DeclFunction, Name: fn.Name.Lexeme, Func: fn, span: fn.Name.Span()})
	}
	for _, fn := range prog.Funcs {
		idx.scopes.Push(make(map[string]*Decl))
		for _, p := range fn.Params {
			idx.declare(&Decl{Kind: DeclParam, Name: p.Name.Lexeme, Type: p.Type, span: p.Name.Span()})
		}
		idx.stmt(fn.Body)
		idx.scopes.Pop()
	}
	idx.scopes.Pop()
	return idx
}

func (idx *SymbolIndex) declare(d *Decl) {
	scope, _ := idx.scopes.Peek()
	if _, exists := scope[d.Name]; !exists || d.Kind != DeclFunction {
		scope[d.Name] = d
	}
	idx.Decls = append(idx.Decls, d)
}

func (idx *SymbolIndex) lookup(name string) *Decl {
	var found *Decl
	for scope := range idx.scopes.All() {
		if d, ok := scope[name]; ok {
			found = d
		}
	}
	return found
}

func (idx *SymbolIndex) use(tok Ident) {
	if d := idx.lookup(tok.Lexeme); d != nil {
		idx.Refs = append(idx.Refs, NewLSPRef(d, tok.Span()))
	}
}

// scoped runs a nested statement in its own scope so that a let used as a
// bare if or loop body does not leak.
func (idx *SymbolIndex) scoped(s Stmt) {
	idx.scopes.Push(make(map[string]*Decl))
	idx.stmt(s)
	idx.scopes.Pop()
}

func (idx *SymbolIndex) stmt(s Stmt) {
	switch s := s.(type) {
	case nil:
	case *LetStmt:
		idx.expr(s.Init)
		idx.declare(&Decl{Kind: DeclLocal, Name: s.Name.Lexeme, Type: s.Type, span: s.Name.Span()})
	case *ExprStmt:
		idx.expr(s.Expr)
	case *IfStmt:
		idx.expr(s.Cond)
		idx.scoped(s.Then)
		idx.scoped(s.Else)
	case *WhileStmt:
		idx.expr(s.Cond)
		idx.scoped(s.Body)
	case *ForStmt:
		idx.expr(s.From)
		idx.expr(s.To)
		idx.scopes.Push(make(map[string]*Decl))
		idx.declare(&Decl{Kind: DeclLoopVar, Name: s.Var.Lexeme, span: s.Var.Span()})
		idx.stmt(s.Body)
		idx.scopes.Pop()
	case *ReturnStmt:
		idx.expr(s.Value)
	case *BlockStmt:
		idx.scopes.Push(make(map[string]*Decl))
		for _, st := range s.Stmts {
			idx.stmt(st)
		}
		idx.scopes.Pop()
	}
}

func (idx *SymbolIndex) expr(e Expr) {
	switch e := e.(type) {
	case nil:
	case *AssignExpr:
		idx.use(e.Target)
		idx.expr(e.Value)
	case *BinaryExpr:
		idx.expr(e.Left)
		idx.expr(e.Right)
	case *UnaryExpr:
		idx.expr(e.Operand)
	case *IdentExpr:
		idx.use(e.Ident)
	case *ArrayLit:
		for _, el := range e.Elems {
			idx.expr(el)
		}
	case *CallExpr:
		idx.use(e.Callee)
		for _, a := range e.Args {
			idx.expr(a)
		}
	case *IndexExpr:
		idx.use(e.Array)
		idx.expr(e.Index)
	case *GroupingExpr:
		idx.expr(e.Inner)
	}
}

// At returns the symbol under the 1-based line/column position: either a
// reference or a declaration name.
func (idx *SymbolIndex) At(line, column uint32) (LSPSymbol, bool) {
	for _, r := range idx.Refs {
		if r.RefSpan().Contains(line, column) {
			return r, true
		}
	}
	for _, d := range idx.Decls {
		if d.Span().Contains(line, column) {
			return d, true
		}
	}
	return nil, false
}

// DeclAt is At resolved to the declaration.
func (idx *SymbolIndex) DeclAt(line, column uint32) *Decl {
	sym, ok := idx.At(line, column)
	if !ok {
		return nil
	}
	switch s := sym.(type) {
	case LSPRef:
		return s.GetDecl()
	case *Decl:
		return s
	}
	return nil
}

// RefsTo returns the uses of d in source order.
func (idx *SymbolIndex) RefsTo(d *Decl) []LSPRef {
	var refs []LSPRef
	for _, r := range idx.Refs {
		if r.decl == d {
			refs = append(refs, r)
		}
	}
	return refs
}

// Functions returns the function declarations in declaration order.
func (idx *SymbolIndex) Functions() []*Decl {
	var fns []*Decl
	for _, d := range idx.Decls {
		if d.Kind == DeclFunction {
			fns = append(fns, d)
		}
	}
	return fns
}
