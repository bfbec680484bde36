package types

import "github.com/phylospec/phylospec/internal/parser"

// Stochasticity 值是固定的、由其他值计算的还是随机的
type Stochasticity int

const (
	Constant Stochasticity = iota
	Deterministic
	Stochastic
	Undefined
)

func (s Stochasticity) String() string {
	switch s {
	case Constant:
		return "constant"
	case Deterministic:
		return "deterministic"
	case Stochastic:
		return "stochastic"
	}
	return "undefined"
}

// merge 合并计算各输入的随机性
func merge(a, b Stochasticity) Stochasticity {
	if a > b {
		return a
	}
	return b
}

// Stochasticities ResolveStochasticity 的结果
type Stochasticities struct {
	nodes     map[parser.Node]Stochasticity
	variables map[string]Stochasticity
	scopes    []map[string]Stochasticity
}

// Of 返回 node 的随机性，未访问过时为 Undefined
func (s *Stochasticities) Of(node parser.Node) Stochasticity {
	if v, ok := s.nodes[node]; ok {
		return v
	}
	return Undefined
}

// Variable 返回顶层变量的随机性
func (s *Stochasticities) Variable(name string) Stochasticity {
	if v, ok := s.variables[name]; ok {
		return v
	}
	return Undefined
}

// ResolveStochasticity 为 stmts 中的每条语句和表达式分类
// 字面量是常量，调用至少是确定性的，抽样是随机的，其余取输入中随机性最高的
func ResolveStochasticity(stmts []parser.Stmt) *Stochasticities {
	s := &Stochasticities{
		nodes:     make(map[parser.Node]Stochasticity),
		variables: make(map[string]Stochasticity),
	}
	for _, stmt := range stmts {
		s.stmt(stmt)
	}
	return s
}

func (s *Stochasticities) set(node parser.Node, v Stochasticity) Stochasticity {
	s.nodes[node] = v
	return v
}

func (s *Stochasticities) stmt(stmt parser.Stmt) Stochasticity {
	switch st := stmt.(type) {
	case *parser.ImportStmt:
		return s.set(st, Undefined)
	case *parser.AssignmentStmt:
		s.set(st.Type, Undefined)
		v := s.expr(st.Value)
		s.variables[st.Name] = v
		return s.set(st, v)
	case *parser.DrawStmt:
		s.set(st.Type, Undefined)
		s.expr(st.Value)
		s.variables[st.Name] = Stochastic
		return s.set(st, Stochastic)
	case *parser.DecoratedStmt:
		s.expr(st.Decorator)
		return s.set(st, s.stmt(st.Stmt))
	}
	return Undefined
}

func (s *Stochasticities) lookup(name string) Stochasticity {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i][name]; ok {
			return v
		}
	}
	if v, ok := s.variables[name]; ok {
		return v
	}
	return Undefined
}

func (s *Stochasticities) expr(expr parser.Expr) Stochasticity {
	switch e := expr.(type) {
	case *parser.Literal:
		return s.set(e, Constant)
	case *parser.Variable:
		return s.set(e, s.lookup(e.Name))
	case *parser.Grouping:
		return s.set(e, s.expr(e.Inner))
	case *parser.Unary:
		return s.set(e, s.expr(e.Operand))
	case *parser.Binary:
		return s.set(e, merge(s.expr(e.Left), s.expr(e.Right)))
	case *parser.Call:
		v := Deterministic
		for _, arg := range e.Args {
			v = merge(v, s.expr(arg))
		}
		return s.set(e, v)
	case *parser.AssignedArgument:
		return s.set(e, s.expr(e.Value))
	case *parser.DrawnArgument:
		s.expr(e.Value)
		return s.set(e, Stochastic)
	case *parser.ArrayLiteral:
		v := Constant
		for _, el := range e.Elements {
			v = merge(v, s.expr(el))
		}
		return s.set(e, v)
	case *parser.ListComprehension:
		list := s.expr(e.List)
		scope := make(map[string]Stochasticity, len(e.Vars))
		for _, name := range e.Vars {
			scope[name] = list
		}
		s.scopes = append(s.scopes, scope)
		body := s.expr(e.Body)
		s.scopes = s.scopes[:len(s.scopes)-1]
		return s.set(e, merge(list, body))
	case *parser.PropertyGet:
		return s.set(e, s.expr(e.Object))
	}
	return Undefined
}
