package ast

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *File:
		for _, d := range n.Decls {
			add(d)
		}
	case *BuilderDecl:
		for _, m := range n.Members {
			add(m)
		}
	case *FunDecl:
		for _, p := range n.Params {
			add(p)
		}
		add(typeRefNode(n.Return))
		if n.Body != nil {
			add(n.Body)
		}
		add(n.ExprBody)
	case *Param:
		add(typeRefNode(n.Type))
	case *PropertyDecl:
		add(typeRefNode(n.Type), n.Init)
	case *TypeRef:
		for _, a := range n.Args {
			add(a)
		}
	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}
	case *BinaryExpr:
		add(n.Left, n.Right)
	case *UnaryExpr:
		add(n.Operand)
	case *IsExpr:
		add(n.Operand, typeRefNode(n.Type))
	case *ParenExpr:
		add(n.Inner)
	case *DotExpr:
		add(n.Receiver)
		if n.Selector != nil {
			add(n.Selector)
		}
	case *CallExpr:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
		if n.Lambda != nil {
			add(n.Lambda)
		}
	case *LambdaExpr:
		if n.Body != nil {
			add(n.Body)
		}
	case *IfExpr:
		add(n.Cond, n.Then, n.Else)
	case *WhenExpr:
		add(n.Subject)
		for _, b := range n.Branches {
			add(b)
		}
	case *WhenBranch:
		for _, c := range n.Conditions {
			add(c)
		}
		add(n.Body)
	case *WhenCondition:
		add(typeRefNode(n.IsType), n.Value)
	case *TryExpr:
		if n.Body != nil {
			add(n.Body)
		}
		for _, c := range n.Catches {
			add(c)
		}
		if n.Finally != nil {
			add(n.Finally)
		}
	case *CatchClause:
		if n.Param != nil {
			add(n.Param)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *WhileExpr:
		add(n.Cond, n.Body)
	case *ReturnExpr:
		add(n.Value)
	case *ThrowExpr:
		add(n.Value)
	case *BuildExpr:
		add(typeRefNode(n.TypeArg))
		if n.Lambda != nil {
			add(n.Lambda)
		}
	}
	return out
}

func typeRefNode(t *TypeRef) Node {
	if t == nil {
		return nil
	}
	return t
}

// Inspect traverses the tree rooted at n in depth-first order. If f returns
// false the children of the current node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Link sets the parent of every node below root. The parser calls it once
// per file; trees built by hand must be linked before they are analyzed.
func Link(root Node) {
	for _, c := range Children(root) {
		c.setParent(root)
		Link(c)
	}
}

// ParentOfType returns the nearest ancestor of n that has type T. With
// strict set, n itself is not considered.
func ParentOfType[T Node](n Node, strict bool) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	cur := n
	if strict {
		cur = n.Parent()
	}
	for cur != nil {
		if t, ok := cur.(T); ok {
			return t, true
		}
		cur = cur.Parent()
	}
	return zero, false
}

// Deparenthesize strips any number of enclosing parentheses.
func Deparenthesize(e Expr) Expr {
	for {
		p, ok := e.(*ParenExpr)
		if !ok || p.Inner == nil {
			return e
		}
		e = p.Inner
	}
}

// IsAssignmentOp reports whether op stores into its left operand.
func IsAssignmentOp(op string) bool {
	switch op {
	case "=", "+=", "-=":
		return true
	}
	return false
}

// IsLValue reports whether name is the target of the plain assignment
// binary. The left operand may be parenthesized or a member access whose
// selector is name.
func IsLValue(name *NameRef, binary *BinaryExpr) bool {
	return binary != nil && binary.Op == "=" && IsAssignmentTarget(name, binary)
}

// IsAssignmentTarget is IsLValue for any assignment operator, including the
// compound ones.
func IsAssignmentTarget(name *NameRef, binary *BinaryExpr) bool {
	if name == nil || binary == nil || !IsAssignmentOp(binary.Op) {
		return false
	}
	left := Deparenthesize(binary.Left)
	switch l := left.(type) {
	case *NameRef:
		return l == name
	case *DotExpr:
		return l.Selector == name
	}
	return false
}

// Contains reports whether the 1-based line/column lies inside n.
func Contains(n Node, line, column int) bool {
	start, end := n.NodePos(), n.NodeEndPos()
	if line < start.Line || line > end.Line {
		return false
	}
	if line == start.Line && column < start.Column {
		return false
	}
	if line == end.Line && column >= end.Column {
		return false
	}
	return true
}

// ExprAt returns the innermost expression covering line/column.
func ExprAt(root Node, line, column int) Expr {
	var found Expr
	Inspect(root, func(n Node) bool {
		if !Contains(n, line, column) {
			return n == root
		}
		if e, ok := n.(Expr); ok {
			found = e
		}
		return true
	})
	return found
}
