package parser

// Inspect 深度优先遍历以 node 为根的树，f 返回 false 时跳过该节点的子节点
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children 按源码顺序返回 node 的直接子节点
func Children(node Node) []Node {
	switch n := node.(type) {
	case *GenericType:
		out := make([]Node, len(n.Args))
		for i, a := range n.Args {
			out[i] = a
		}
		return out
	case *AssignmentStmt:
		return []Node{n.Type, n.Value}
	case *DrawStmt:
		return []Node{n.Type, n.Value}
	case *DecoratedStmt:
		return []Node{n.Decorator, n.Stmt}
	case *Unary:
		return []Node{n.Operand}
	case *Binary:
		return []Node{n.Left, n.Right}
	case *Call:
		out := make([]Node, len(n.Args))
		for i, a := range n.Args {
			out[i] = a
		}
		return out
	case *AssignedArgument:
		return []Node{n.Value}
	case *DrawnArgument:
		return []Node{n.Value}
	case *Grouping:
		return []Node{n.Inner}
	case *ArrayLiteral:
		out := make([]Node, len(n.Elements))
		for i, e := range n.Elements {
			out[i] = e
		}
		return out
	case *ListComprehension:
		return []Node{n.Body, n.List}
	case *PropertyGet:
		return []Node{n.Object}
	}
	return nil
}

// Equal 判断 a 和 b 结构是否相同，忽略源码位置
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *AtomicType:
		y, ok := b.(*AtomicType)
		return ok && x.Name == y.Name
	case *GenericType:
		y, ok := b.(*GenericType)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *AssignmentStmt:
		y, ok := b.(*AssignmentStmt)
		return ok && x.Name == y.Name && Equal(x.Type, y.Type) && Equal(x.Value, y.Value)
	case *DrawStmt:
		y, ok := b.(*DrawStmt)
		return ok && x.Name == y.Name && Equal(x.Type, y.Type) && Equal(x.Value, y.Value)
	case *DecoratedStmt:
		y, ok := b.(*DecoratedStmt)
		return ok && Equal(x.Decorator, y.Decorator) && Equal(x.Stmt, y.Stmt)
	case *ImportStmt:
		y, ok := b.(*ImportStmt)
		return ok && equalStrings(x.Path, y.Path)
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.Operand, y.Operand)
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Call:
		y, ok := b.(*Call)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *AssignedArgument:
		y, ok := b.(*AssignedArgument)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *DrawnArgument:
		y, ok := b.(*DrawnArgument)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	case *Grouping:
		y, ok := b.(*Grouping)
		return ok && Equal(x.Inner, y.Inner)
	case *ArrayLiteral:
		y, ok := b.(*ArrayLiteral)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *ListComprehension:
		y, ok := b.(*ListComprehension)
		return ok && equalStrings(x.Vars, y.Vars) && Equal(x.Body, y.Body) && Equal(x.List, y.List)
	case *PropertyGet:
		y, ok := b.(*PropertyGet)
		return ok && x.Property == y.Property && Equal(x.Object, y.Object)
	}
	return false
}

// EqualStmts 用 Equal 比较两个语句列表
func EqualStmts(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
