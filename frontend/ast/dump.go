package ast

import (
	"fmt"
	"strconv"

	"github.com/kolang-lang/kolang/common"
)

// DumpNode is a generic, serialisable view of a syntax tree node. Role
// names the field of the parent that holds the node.
type DumpNode struct {
	Node     string      `yaml:"node"`
	Role     string      `yaml:"role,omitempty"`
	Value    string      `yaml:"value,omitempty"`
	Span     string      `yaml:"span"`
	Children []*DumpNode `yaml:"children,omitempty"`
}

// Dump converts the tree rooted at node into DumpNodes.
func Dump(node Node) *DumpNode {
	return dump(node, "")
}

func spanString(s common.Span) string {
	return fmt.Sprintf("%d:%d-%d:%d", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd)
}

func dump(node Node, role string) *DumpNode {
	if node == nil {
		return nil
	}
	d := &DumpNode{Role: role, Span: spanString(node.Span())}
	add := func(n Node, role string) {
		if c := dump(n, role); c != nil {
			d.Children = append(d.Children, c)
		}
	}

	switch n := node.(type) {
	case *Program:
		d.Node = "program"
		for _, f := range n.Funcs {
			add(f, "")
		}
	case *FunctionDecl:
		d.Node = "function"
		d.Value = n.Name.Lexeme
		for _, p := range n.Params {
			add(p, "param")
		}
		if n.ReturnType != nil {
			add(n.ReturnType, "return_type")
		}
		add(stmtNode(n.Body), "body")
	case *Param:
		d.Node = "param"
		d.Value = n.Name.Lexeme
		if n.Type != nil {
			add(n.Type, "type")
		}
	case *Type:
		d.Node = "type"
		d.Value = n.String()
	case *LetStmt:
		d.Node = "let"
		d.Value = n.Name.Lexeme
		if n.Type != nil {
			add(n.Type, "type")
		}
		add(exprNode(n.Init), "init")
	case *ExprStmt:
		d.Node = "expr_stmt"
		add(exprNode(n.Expr), "")
	case *IfStmt:
		d.Node = "if"
		add(exprNode(n.Cond), "cond")
		add(stmtNode(n.Then), "then")
		add(stmtNode(n.Else), "else")
	case *WhileStmt:
		d.Node = "while"
		add(exprNode(n.Cond), "cond")
		add(stmtNode(n.Body), "body")
	case *ForStmt:
		d.Node = "for"
		d.Value = n.Var.Lexeme
		add(exprNode(n.From), "from")
		add(exprNode(n.To), "to")
		add(stmtNode(n.Body), "body")
	case *ReturnStmt:
		d.Node = "return"
		add(exprNode(n.Value), "")
	case *BlockStmt:
		d.Node = "block"
		for _, s := range n.Stmts {
			add(s, "")
		}
	case *AssignExpr:
		d.Node = "assign"
		d.Value = n.Target.Lexeme
		add(exprNode(n.Value), "value")
	case *BinaryExpr:
		d.Node = "binary"
		d.Value = n.Op.String()
		add(exprNode(n.Left), "left")
		add(exprNode(n.Right), "right")
	case *UnaryExpr:
		d.Node = "unary"
		d.Value = n.Op.String()
		add(exprNode(n.Operand), "")
	case *IdentExpr:
		d.Node = "ident"
		d.Value = n.Name()
	case *IntLit:
		d.Node = "int"
		d.Value = strconv.FormatInt(n.Value, 10)
	case *FloatLit:
		d.Node = "float"
		d.Value = strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *CharLit:
		d.Node = "char"
		d.Value = n.Raw
	case *StrLit:
		d.Node = "string"
		d.Value = n.Value
	case *BoolLit:
		d.Node = "bool"
		d.Value = strconv.FormatBool(n.Value)
	case *ArrayLit:
		d.Node = "array"
		for _, e := range n.Elems {
			add(e, "")
		}
	case *CallExpr:
		d.Node = "call"
		d.Value = n.Callee.Lexeme
		for _, e := range n.Args {
			add(e, "arg")
		}
	case *IndexExpr:
		d.Node = "index"
		d.Value = n.Array.Lexeme
		add(exprNode(n.Index), "")
	case *GroupingExpr:
		d.Node = "grouping"
		add(exprNode(n.Inner), "")
	default:
		d.Node = fmt.Sprintf("%T", node)
	}
	return d
}
