// Package types 解析 PhyloSpec 表达式的类型，并根据组件库检查语句
package types

import (
	"strings"

	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/lexer"
	"github.com/phylospec/phylospec/internal/parser"
)

// Resolver 为脚本的每个节点确定可能的类型集合
// 它保存目前为止声明的变量，因此语句必须按顺序解析，不能并发使用
type Resolver struct {
	*universe
	types     map[parser.Node]*TypeSet
	scopes    []map[string]*TypeSet
	variables []string
}

// New 创建通过 c 查找组件的 Resolver
func New(c Components) *Resolver {
	return &Resolver{
		universe: newUniverse(c),
		types:    make(map[parser.Node]*TypeSet),
		scopes:   []map[string]*TypeSet{make(map[string]*TypeSet)},
	}
}

// ResolveAll 按顺序解析 stmts
// 语句中的第一个错误结束该语句，继续解析下一条语句
func (r *Resolver) ResolveAll(stmts []parser.Stmt) []*TypeError {
	var errs []*TypeError
	for _, stmt := range stmts {
		if err := r.resolveStmt(stmt); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// ResolveStmt 解析单条语句，返回的错误是 *TypeError
func (r *Resolver) ResolveStmt(stmt parser.Stmt) error {
	if err := r.resolveStmt(stmt); err != nil {
		return err
	}
	return nil
}

// TypesOf 返回 node 的类型，未解析时返回 nil
func (r *Resolver) TypesOf(node parser.Node) *TypeSet {
	return r.types[node]
}

// VariableType 返回顶层变量的声明类型
func (r *Resolver) VariableType(name string) (*ResolvedType, bool) {
	set, ok := r.scopes[0][name]
	if !ok || set.Len() == 0 {
		return nil, false
	}
	return set.Slice()[0], true
}

// Variables 按声明顺序返回顶层变量名
func (r *Resolver) Variables() []string {
	return r.variables
}

// Covers 判断类型 b 的值能否用在需要 a 的地方
func (r *Resolver) Covers(a, b *ResolvedType) bool {
	return r.covers(a, b)
}

// CanBeAssignedTo 判断 set 中是否有被 t 覆盖的类型
func (r *Resolver) CanBeAssignedTo(set *TypeSet, t *ResolvedType) bool {
	return r.canBeAssignedTo(set, t)
}

// LowestCover 返回 list 的最低公共祖先，没有时返回 nil
func (r *Resolver) LowestCover(list ...*ResolvedType) *ResolvedType {
	return r.lowestCoverAll(list)
}

// Ancestors 依次访问 t 及其祖先，直到 visit 返回 false
func (r *Resolver) Ancestors(t *ResolvedType, visit func(*ResolvedType) bool) {
	r.walk(t, visit)
}

// ParseType 按可见类型解析类型字符串
func (r *Resolver) ParseType(s string) (*ResolvedType, error) {
	expr, terr := r.parse(s)
	if terr != nil {
		return nil, terr
	}
	t, terr := r.resolveTypeExpr(expr)
	if terr != nil {
		return nil, terr
	}
	return t, nil
}

func (r *Resolver) record(node parser.Node, set *TypeSet) *TypeSet {
	r.types[node] = set
	return set
}

func (r *Resolver) declare(name string, set *TypeSet) {
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name]; !exists && len(r.scopes) == 1 {
		r.variables = append(r.variables, name)
	}
	scope[name] = set
}

func (r *Resolver) lookupVariable(name string) (*TypeSet, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if set, ok := r.scopes[i][name]; ok {
			return set, true
		}
	}
	return nil, false
}

// ---- 语句 ----

func (r *Resolver) resolveStmt(stmt parser.Stmt) *TypeError {
	switch s := stmt.(type) {
	case *parser.ImportStmt:
		if err := r.comps.Import(s.Path); err != nil {
			return &TypeError{Kind: UnknownNamespace, Node: s, Msg: err.Error()}
		}
		return nil

	case *parser.AssignmentStmt:
		declared, value, err := r.resolveDeclaration(s, s.Type, s.Name, s.Value)
		if err != nil {
			return err
		}
		if r.canBeAssignedTo(value, declared) {
			return nil
		}
		msg := i18n.T(i18n.ErrAssignMismatch, value.String(), s.Name, declared.String())
		if drawn := r.distributionValues(value); drawn.Len() > 0 && r.canBeAssignedTo(drawn, declared) {
			msg += " " + i18n.T(i18n.HintUseDraw)
		}
		return &TypeError{Kind: TypeMismatchOnAssignment, Node: s, Msg: msg}

	case *parser.DrawStmt:
		declared, value, err := r.resolveDeclaration(s, s.Type, s.Name, s.Value)
		if err != nil {
			return err
		}
		drawn := r.distributionValues(value)
		if drawn.Len() == 0 {
			return newError(NotADistribution, s.Value, i18n.ErrNotADistribution, value.String())
		}
		if !r.canBeAssignedTo(drawn, declared) {
			return newError(TypeMismatchOnAssignment, s, i18n.ErrAssignMismatch, drawn.String(), s.Name, declared.String())
		}
		return nil

	case *parser.DecoratedStmt:
		if _, err := r.resolveExpr(s.Decorator); err != nil {
			return err
		}
		if err := r.resolveStmt(s.Stmt); err != nil {
			return err
		}
		if set := r.types[s.Stmt]; set != nil {
			r.record(s, set)
		}
		return nil
	}
	return nil
}

// resolveDeclaration 解析赋值或抽样语句的声明类型和值，并绑定变量
// 值解析失败时变量仍然绑定，后面的语句不会再报告未知变量
func (r *Resolver) resolveDeclaration(stmt parser.Stmt, typ parser.TypeExpr, name string, value parser.Expr) (*ResolvedType, *TypeSet, *TypeError) {
	declared, err := r.resolveTypeExpr(typ)
	if err != nil {
		return nil, nil, err
	}
	r.record(typ, NewTypeSet(declared))

	set, verr := r.resolveExpr(value)
	r.declare(name, NewTypeSet(declared))
	r.record(stmt, NewTypeSet(declared))
	if verr != nil {
		return nil, nil, verr
	}
	return declared, set, nil
}

// resolveTypeExpr 解析脚本中的类型标注
func (r *Resolver) resolveTypeExpr(expr parser.TypeExpr) (*ResolvedType, *TypeError) {
	def, ok := r.comps.ResolveType(expr.TypeName())
	if !ok {
		return nil, newError(UnknownType, expr, i18n.ErrUnknownType, expr.TypeName())
	}

	var args []parser.TypeExpr
	if g, ok := expr.(*parser.GenericType); ok {
		args = g.Args
	}
	if len(args) != len(def.TypeParameters) {
		return nil, newError(TypeParameterArityMismatch, expr, i18n.ErrTypeArity, def.Name, len(def.TypeParameters))
	}

	t := newResolved(def)
	for i, arg := range args {
		p, err := r.resolveTypeExpr(arg)
		if err != nil {
			return nil, err
		}
		t = t.with(def.TypeParameters[i], p)
	}
	return t, nil
}

// ---- 表达式 ----

func (r *Resolver) resolveExpr(expr parser.Expr) (*TypeSet, *TypeError) {
	switch e := expr.(type) {
	case *parser.Literal:
		return r.record(e, r.literalTypes(e.Value)), nil

	case *parser.Variable:
		set, ok := r.lookupVariable(e.Name)
		if !ok {
			return nil, newError(UnknownVariable, e, i18n.ErrUnknownVariable, e.Name)
		}
		return r.record(e, set), nil

	case *parser.Grouping:
		inner, err := r.resolveExpr(e.Inner)
		if err != nil {
			return nil, err
		}
		return r.record(e, inner), nil

	case *parser.Unary:
		operand, err := r.resolveExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		result := r.matchOperator(unaryRules, e.Op, []*TypeSet{operand})
		if result.Len() == 0 {
			return nil, newError(OperatorTypeMismatch, e, i18n.ErrUnaryNotSupported, lexer.TokenTypeName(e.Op), operand.String())
		}
		return r.record(e, result), nil

	case *parser.Binary:
		left, err := r.resolveExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := r.resolveExpr(e.Right)
		if err != nil {
			return nil, err
		}
		result := r.matchOperator(binaryRules, e.Op, []*TypeSet{left, right})
		if result.Len() == 0 {
			return nil, newError(OperatorTypeMismatch, e, i18n.ErrBinaryNotSupported, lexer.TokenTypeName(e.Op), left.String(), right.String())
		}
		return r.record(e, result), nil

	case *parser.Call:
		return r.resolveCall(e)

	case *parser.AssignedArgument:
		value, err := r.resolveExpr(e.Value)
		if err != nil {
			return nil, err
		}
		return r.record(e, value), nil

	case *parser.DrawnArgument:
		value, err := r.resolveExpr(e.Value)
		if err != nil {
			return nil, err
		}
		drawn := r.distributionValues(value)
		if drawn.Len() == 0 {
			return nil, newError(NotADistribution, e.Value, i18n.ErrNotADistribution, value.String())
		}
		return r.record(e, drawn), nil

	case *parser.ArrayLiteral:
		return r.resolveArray(e)

	case *parser.ListComprehension:
		return r.resolveComprehension(e)

	case *parser.PropertyGet:
		return r.resolveProperty(e)
	}
	return NewTypeSet(), nil
}

func (r *Resolver) resolveCall(call *parser.Call) (*TypeSet, *TypeError) {
	generators := r.comps.ResolveGenerators(call.Name)
	if len(generators) == 0 {
		return nil, newError(UnknownGenerator, call, i18n.ErrUnknownFunction, call.Name)
	}

	args := make([]argument, len(call.Args))
	for i, arg := range call.Args {
		set, err := r.resolveExpr(arg)
		if err != nil {
			return nil, err
		}
		args[i] = argument{name: arg.ArgName(), node: arg, types: set}
	}

	result := NewTypeSet()
	var failures []*TypeError
	for _, g := range generators {
		set, err := r.bindGenerator(call, g, args)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		result.AddAll(set)
	}

	if result.Len() == 0 {
		if len(failures) == 1 {
			return nil, failures[0]
		}
		return nil, &TypeError{
			Kind:   NoMatchingOverload,
			Node:   call,
			Msg:    i18n.T(i18n.ErrNoMatchingOverload, call.Name),
			Causes: failures,
		}
	}
	return r.record(call, result), nil
}

func (r *Resolver) resolveArray(array *parser.ArrayLiteral) (*TypeSet, *TypeError) {
	vector := r.core("Vector")
	if vector == nil {
		return nil, newError(UnknownType, array, i18n.ErrUnknownType, "Vector")
	}
	if len(array.Elements) == 0 {
		return r.record(array, NewTypeSet(vector)), nil
	}

	sets := make([]*TypeSet, len(array.Elements))
	values := make([]any, 0, len(array.Elements))
	for i, el := range array.Elements {
		set, err := r.resolveExpr(el)
		if err != nil {
			return nil, err
		}
		sets[i] = set
		if lit, ok := el.(*parser.Literal); ok {
			values = append(values, lit.Value)
		}
	}

	covers := r.lowestCoverSet(sets)
	if covers.Len() == 0 {
		var names []string
		for _, set := range sets {
			names = append(names, set.String())
		}
		return nil, newError(InferenceFailure, array, i18n.ErrNoCommonElementType, strings.Join(names, ", "))
	}

	out := NewTypeSet()
	for _, t := range covers.Slice() {
		out.Add(vector.with(vector.def.TypeParameters[0], t))
	}
	if len(values) == len(array.Elements) && isSimplexLiteral(values) {
		if simplex := r.core("Simplex"); simplex != nil {
			out.Add(simplex)
		}
	}
	return r.record(array, out), nil
}

func (r *Resolver) resolveComprehension(lc *parser.ListComprehension) (*TypeSet, *TypeError) {
	list, err := r.resolveExpr(lc.List)
	if err != nil {
		return nil, err
	}

	vars := make([]*TypeSet, len(lc.Vars))
	for i := range vars {
		vars[i] = NewTypeSet()
	}
	for _, t := range list.Slice() {
		v := r.ancestorNamed(t, "Vector")
		if v == nil {
			continue
		}
		elem := v.Param(v.def.TypeParameters[0])
		if elem == nil {
			continue
		}
		if len(lc.Vars) == 1 {
			vars[0].Add(elem)
			continue
		}
		if pair := r.ancestorNamed(elem, "Pair"); pair != nil && len(pair.def.TypeParameters) == 2 {
			first, second := pair.Param(pair.def.TypeParameters[0]), pair.Param(pair.def.TypeParameters[1])
			if first != nil && second != nil {
				vars[0].Add(first)
				vars[1].Add(second)
			}
		}
	}
	if vars[0].Len() == 0 {
		key := i18n.ErrNotIterable
		if len(lc.Vars) == 2 {
			key = i18n.ErrNotIterablePairs
		}
		return nil, newError(NotIterable, lc.List, key, list.String())
	}

	r.scopes = append(r.scopes, make(map[string]*TypeSet))
	for i, name := range lc.Vars {
		r.declare(name, vars[i])
	}
	body, err := r.resolveExpr(lc.Body)
	r.scopes = r.scopes[:len(r.scopes)-1]
	if err != nil {
		return nil, err
	}

	vector := r.core("Vector")
	if vector == nil {
		return nil, newError(UnknownType, lc, i18n.ErrUnknownType, "Vector")
	}
	out := NewTypeSet()
	for _, t := range body.Slice() {
		out.Add(vector.with(vector.def.TypeParameters[0], t))
	}
	return r.record(lc, out), nil
}

func (r *Resolver) resolveProperty(get *parser.PropertyGet) (*TypeSet, *TypeError) {
	object, err := r.resolveExpr(get.Object)
	if err != nil {
		return nil, err
	}

	out := NewTypeSet()
	for _, t := range object.Slice() {
		var owner *ResolvedType
		r.walk(t, func(x *ResolvedType) bool {
			if _, ok := x.def.Properties[get.Property]; ok {
				owner = x
				return false
			}
			return true
		})
		if owner == nil {
			continue
		}
		bindings, free := paramBindings(owner)
		set, err := r.fromString(owner.def.Properties[get.Property].Type, owner.def.Namespace, bindings, free)
		if err != nil {
			return nil, err.at(get)
		}
		out.AddAll(set)
	}

	if out.Len() == 0 {
		return nil, newError(UnknownProperty, get, i18n.ErrUnknownProperty, get.Property, object.String())
	}
	return r.record(get, out), nil
}
