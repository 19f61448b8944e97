package ast

// Walk traverses the tree rooted at node in source order, calling fn for
// each node. If fn returns false, Walk does not descend into that node.
// Absent optional children are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, f := range n.Funcs {
			Walk(f, fn)
		}

	case *FunctionDecl:
		for _, p := range n.Params {
			Walk(p, fn)
		}
		if n.ReturnType != nil {
			Walk(n.ReturnType, fn)
		}
		walkStmt(n.Body, fn)

	case *Param:
		if n.Type != nil {
			Walk(n.Type, fn)
		}

	case *Type:

	case *LetStmt:
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		walkExpr(n.Init, fn)

	case *ExprStmt:
		walkExpr(n.Expr, fn)

	case *IfStmt:
		walkExpr(n.Cond, fn)
		walkStmt(n.Then, fn)
		walkStmt(n.Else, fn)

	case *WhileStmt:
		walkExpr(n.Cond, fn)
		walkStmt(n.Body, fn)

	case *ForStmt:
		walkExpr(n.From, fn)
		walkExpr(n.To, fn)
		walkStmt(n.Body, fn)

	case *ReturnStmt:
		walkExpr(n.Value, fn)

	case *BlockStmt:
		for _, s := range n.Stmts {
			walkStmt(s, fn)
		}

	case *AssignExpr:
		walkExpr(n.Value, fn)

	case *BinaryExpr:
		walkExpr(n.Left, fn)
		walkExpr(n.Right, fn)

	case *UnaryExpr:
		walkExpr(n.Operand, fn)

	case *ArrayLit:
		for _, e := range n.Elems {
			walkExpr(e, fn)
		}

	case *CallExpr:
		for _, e := range n.Args {
			walkExpr(e, fn)
		}

	case *IndexExpr:
		walkExpr(n.Index, fn)

	case *GroupingExpr:
		walkExpr(n.Inner, fn)

	case *IdentExpr, *IntLit, *FloatLit, *CharLit, *StrLit, *BoolLit:
	}
}

func walkStmt(s Stmt, fn func(Node) bool) {
	if s != nil {
		Walk(s, fn)
	}
}

func walkExpr(e Expr, fn func(Node) bool) {
	if e != nil {
		Walk(e, fn)
	}
}
