package ast

import (
	"strconv"
	"strings"
)

// Sexpr renders node as a compact s-expression, e.g. `(+ 1 (* 2 3))`.
// Missing children render as `_`.
func Sexpr(node Node) string {
	var sb strings.Builder
	writeSexpr(&sb, node)
	return sb.String()
}

func writeList(sb *strings.Builder, head string, items ...func()) {
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, item := range items {
		sb.WriteByte(' ')
		item()
	}
	sb.WriteByte(')')
}

func writeSexpr(sb *strings.Builder, node Node) {
	child := func(n Node) func() {
		return func() { writeSexpr(sb, n) }
	}
	word := func(s string) func() {
		return func() { sb.WriteString(s) }
	}

	switch n := node.(type) {
	case nil:
		sb.WriteByte('_')

	case *Program:
		items := make([]func(), 0, len(n.Funcs))
		for _, f := range n.Funcs {
			items = append(items, child(f))
		}
		writeList(sb, "program", items...)

	case *FunctionDecl:
		params := func() {
			sb.WriteByte('(')
			for i, p := range n.Params {
				if i > 0 {
					sb.WriteByte(' ')
				}
				writeSexpr(sb, p)
			}
			sb.WriteByte(')')
		}
		ret := "_"
		if n.ReturnType != nil {
			ret = n.ReturnType.String()
		}
		writeList(sb, "fn", word(n.Name.Lexeme), params, word(ret), child(stmtNode(n.Body)))

	case *Param:
		writeList(sb, n.Name.Lexeme, word(n.Type.String()))

	case *Type:
		sb.WriteString(n.String())

	case *LetStmt:
		items := []func(){word(n.Name.Lexeme), word(n.Type.String())}
		if n.Init != nil {
			items = append(items, child(n.Init))
		}
		writeList(sb, "let", items...)

	case *ExprStmt:
		writeList(sb, "expr", child(exprNode(n.Expr)))

	case *IfStmt:
		items := []func(){child(exprNode(n.Cond)), child(stmtNode(n.Then))}
		if n.Else != nil {
			items = append(items, child(n.Else))
		}
		writeList(sb, "if", items...)

	case *WhileStmt:
		writeList(sb, "while", child(exprNode(n.Cond)), child(stmtNode(n.Body)))

	case *ForStmt:
		writeList(sb, "for", word(n.Var.Lexeme), child(exprNode(n.From)), child(exprNode(n.To)), child(stmtNode(n.Body)))

	case *ReturnStmt:
		if n.Value == nil {
			writeList(sb, "return")
		} else {
			writeList(sb, "return", child(n.Value))
		}

	case *BlockStmt:
		items := make([]func(), 0, len(n.Stmts))
		for _, s := range n.Stmts {
			items = append(items, child(s))
		}
		writeList(sb, "block", items...)

	case *AssignExpr:
		writeList(sb, "=", word(n.Target.Lexeme), child(exprNode(n.Value)))

	case *BinaryExpr:
		writeList(sb, n.Op.String(), child(exprNode(n.Left)), child(exprNode(n.Right)))

	case *UnaryExpr:
		writeList(sb, n.Op.String(), child(exprNode(n.Operand)))

	case *IdentExpr:
		sb.WriteString(n.Name())

	case *IntLit:
		sb.WriteString(strconv.FormatInt(n.Value, 10))

	case *FloatLit:
		sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))

	case *CharLit:
		sb.WriteString(n.Raw)

	case *StrLit:
		sb.WriteString(n.Raw)

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(n.Value))

	case *ArrayLit:
		items := make([]func(), 0, len(n.Elems))
		for _, e := range n.Elems {
			items = append(items, child(e))
		}
		writeList(sb, "array", items...)

	case *CallExpr:
		items := []func(){word(n.Callee.Lexeme)}
		for _, e := range n.Args {
			items = append(items, child(e))
		}
		writeList(sb, "call", items...)

	case *IndexExpr:
		writeList(sb, "index", word(n.Array.Lexeme), child(exprNode(n.Index)))

	case *GroupingExpr:
		writeList(sb, "group", child(exprNode(n.Inner)))

	default:
		sb.WriteByte('?')
	}
}

// stmtNode and exprNode keep nil interface children nil as Nodes.
func stmtNode(s Stmt) Node {
	if s == nil {
		return nil
	}
	return s
}

func exprNode(e Expr) Node {
	if e == nil {
		return nil
	}
	return e
}
