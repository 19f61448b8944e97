package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kolang-lang/kolang/common"
	"github.com/kolang-lang/kolang/frontend/ast"
	"github.com/kolang-lang/kolang/frontend/lexer"
	"github.com/kolang-lang/kolang/frontend/parser"
)

func parse(t *testing.T, code string) *ast.Program {
	t.Helper()
	prog, diags := parser.Parse("", code)
	require.Empty(t, diags)
	return prog
}

func TestSexprMissingChildren(t *testing.T) {
	span := common.SpanDefault()
	one := ast.NewIntLit(1, 10, "1", span)

	assert.Equal(t, "(+ 1 _)", ast.Sexpr(ast.NewBinaryExpr(ast.BinaryOpAdd, one, nil, span)))
	assert.Equal(t, "(while _ (expr 1))", ast.Sexpr(ast.NewWhileStmt(nil, ast.NewExprStmt(one, span), span)))
	assert.Equal(t, "_", ast.Sexpr(nil))

	name := lexer.NewToken(lexer.KindIdent, "f", span)
	fn := ast.NewFunctionDecl(name, nil, nil, nil, span)
	assert.Equal(t, "(fn f () _ _)", ast.Sexpr(fn))
	assert.Equal(t, "fn f()", fn.Signature())
}

func TestTypeString(t *testing.T) {
	span := common.SpanDefault()
	five := int64(5)
	cases := []struct {
		data   *ast.Type
		expect string
	}{
		{ast.NewType(ast.BaseInt, span), "int"},
		{ast.NewType(ast.BaseStr, span), "str"},
		{ast.NewArrayType(ast.BaseChar, nil, span), "char[]"},
		{ast.NewArrayType(ast.BaseFloat, &five, span), "float[5]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, c.data.String())
	}
}

func TestUnparen(t *testing.T) {
	prog := parse(t, "fn f() { (((x))); }")
	stmt := prog.Funcs[0].Body.(*ast.BlockStmt).Stmts[0].(*ast.ExprStmt)
	assert.Equal(t, ast.ExprKindGrouping, stmt.Expr.ExprKind())
	inner, ok := ast.Unparen(stmt.Expr).(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "x", inner.Name())
}

func TestDump(t *testing.T) {
	prog := parse(t, "fn f(a: int) { return -a; }")
	d := ast.Dump(prog)
	require.Equal(t, "program", d.Node)
	require.Len(t, d.Children, 1)

	fn := d.Children[0]
	assert.Equal(t, "function", fn.Node)
	assert.Equal(t, "f", fn.Value)
	assert.Equal(t, "1:1-1:27", fn.Span)
	require.Len(t, fn.Children, 2)
	assert.Equal(t, "param", fn.Children[0].Role)
	assert.Equal(t, "a", fn.Children[0].Value)
	assert.Equal(t, "body", fn.Children[1].Role)
	assert.Equal(t, "block", fn.Children[1].Node)

	ret := fn.Children[1].Children[0]
	assert.Equal(t, "return", ret.Node)
	assert.Equal(t, "unary", ret.Children[0].Node)
	assert.Equal(t, "-", ret.Children[0].Value)

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "node: function")
	assert.Contains(t, string(out), "role: body")

	var back ast.DumpNode
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, *d, back)
}

const symbolsSrc = `fn sq(x: int): int { return x * x; }
fn main() {
	let x: int = 2;
	let y: int = sq(x);
	for i = 0 to y { let x: int = i; x = x + 1; }
	x = y;
}`

func TestIndexSymbols(t *testing.T) {
	idx := ast.IndexSymbols(parse(t, symbolsSrc))

	fns := idx.Functions()
	require.Len(t, fns, 2)
	assert.Equal(t, "sq", fns[0].Name)
	assert.Equal(t, "main", fns[1].Name)

	// the call sq(x) on line 4
	callee := idx.DeclAt(4, 15)
	require.NotNil(t, callee)
	assert.Same(t, fns[0], callee)
	assert.Equal(t, "fn sq(x: int): int", callee.LSPString())

	outer := idx.DeclAt(3, 6)
	require.NotNil(t, outer)
	assert.Equal(t, ast.DeclLocal, outer.Kind)
	assert.Equal(t, "let x: int", outer.LSPString())

	var lines []uint32
	for _, r := range idx.RefsTo(outer) {
		lines = append(lines, r.RefSpan().LineStart)
		assert.Equal(t, outer.Span(), r.Span())
	}
	assert.Equal(t, []uint32{4, 6}, lines)

	param := idx.DeclAt(1, 7)
	require.NotNil(t, param)
	assert.Equal(t, ast.DeclParam, param.Kind)
	assert.Len(t, idx.RefsTo(param), 2)

	// `x = x + 1` inside the loop body refers to the shadowing let
	inner := idx.DeclAt(5, 23)
	require.NotNil(t, inner)
	assert.NotSame(t, outer, inner)
	assert.Len(t, idx.RefsTo(inner), 2)

	loopVar := idx.DeclAt(5, 6)
	require.NotNil(t, loopVar)
	assert.Equal(t, "(loop variable) i", loopVar.LSPString())
	assert.Len(t, idx.RefsTo(loopVar), 1)

	_, ok := idx.At(7, 1)
	assert.False(t, ok)
}

func TestIndexSymbolsUnresolved(t *testing.T) {
	idx := ast.IndexSymbols(parse(t, "fn f() { if a let b: int = c; b = 1; }"))
	// b is scoped to the if body, a and c are never declared
	assert.Empty(t, idx.Refs)
	assert.Len(t, idx.Decls, 2)

	assert.Empty(t, ast.IndexSymbols(nil).Decls)
}
