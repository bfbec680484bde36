package types

import (
	"github.com/phylospec/phylospec/internal/components"
	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/parser"
)

// coreNamespace 声明字面量和运算符结果类型的命名空间
const coreNamespace = "phylospec"

// maxWalk 限制祖先遍历的长度，防止 `A<T> extends A<Vector<T>>` 这样的自引用无限展开
const maxWalk = 4096

// Components 类型引擎需要的导入表接口
type Components interface {
	ResolveType(name string) (*components.Type, bool)
	ResolveTypeIn(namespace, name string) (*components.Type, bool)
	ResolveGenerators(name string) []*components.Generator
	Import(path []string) error
}

// universe 从类型字符串构建类型，遍历祖先，比较类型之间的关系
type universe struct {
	comps  Components
	parsed map[string]parser.TypeExpr
	errs   map[string]error
}

func newUniverse(c Components) *universe {
	return &universe{
		comps:  c,
		parsed: make(map[string]parser.TypeExpr),
		errs:   make(map[string]error),
	}
}

// parse 解析组件库类型字符串（带缓存）
func (u *universe) parse(s string) (parser.TypeExpr, *TypeError) {
	if t, ok := u.parsed[s]; ok {
		return t, nil
	}
	if err, ok := u.errs[s]; ok {
		return nil, &TypeError{Kind: UnknownType, Msg: err.Error()}
	}
	t, err := parser.ParseTypeString(s)
	if err != nil {
		u.errs[s] = err
		return nil, &TypeError{Kind: UnknownType, Msg: err.Error()}
	}
	u.parsed[s] = t
	return t, nil
}

// lookup 在命名空间 ns 中查找类型名
func (u *universe) lookup(ns, name string) (*components.Type, bool) {
	if ns == "" {
		return u.comps.ResolveType(name)
	}
	return u.comps.ResolveTypeIn(ns, name)
}

// core 按名称返回核心类型，没有组件库声明时返回 nil
func (u *universe) core(name string) *ResolvedType {
	def, ok := u.lookup(coreNamespace, name)
	if !ok {
		return nil
	}
	return newResolved(def)
}

// instantiate 构建 expr 表示的类型，bindings 中的名称替换为对应的集合
// free 中没有绑定的名称得到 nil 集合，外层参数因此保持未绑定
func (u *universe) instantiate(expr parser.TypeExpr, ns string, bindings map[string]*TypeSet, free []string) (*TypeSet, *TypeError) {
	name := expr.TypeName()
	if set, ok := bindings[name]; ok {
		if _, generic := expr.(*parser.GenericType); !generic {
			return set, nil
		}
	}
	if contains(free, name) {
		if _, generic := expr.(*parser.GenericType); !generic {
			return nil, nil
		}
	}

	def, ok := u.lookup(ns, name)
	if !ok {
		return nil, newError(UnknownType, expr, i18n.ErrUnknownType, name)
	}

	generic, ok := expr.(*parser.GenericType)
	if !ok {
		return NewTypeSet(newResolved(def)), nil
	}
	if len(generic.Args) != len(def.TypeParameters) {
		return nil, newError(TypeParameterArityMismatch, expr, i18n.ErrTypeArity, name, len(def.TypeParameters))
	}

	partial := []*ResolvedType{newResolved(def)}
	for i, arg := range generic.Args {
		set, err := u.instantiate(arg, ns, bindings, free)
		if err != nil {
			return nil, err
		}
		if set == nil {
			continue
		}
		var next []*ResolvedType
		for _, p := range partial {
			for _, x := range set.Slice() {
				next = append(next, p.with(def.TypeParameters[i], x))
			}
		}
		partial = next
	}
	return NewTypeSet(partial...), nil
}

// fromString 实例化命名空间 ns 中声明的类型字符串
func (u *universe) fromString(s, ns string, bindings map[string]*TypeSet, free []string) (*TypeSet, *TypeError) {
	expr, err := u.parse(s)
	if err != nil {
		return nil, err
	}
	return u.instantiate(expr, ns, bindings, free)
}

// paramBindings 将 t 已绑定的参数转换为单元素集合，未绑定的参数单独返回
func paramBindings(t *ResolvedType) (map[string]*TypeSet, []string) {
	bindings := make(map[string]*TypeSet, len(t.params))
	var free []string
	for _, name := range t.def.TypeParameters {
		if p := t.params[name]; p != nil {
			bindings[name] = NewTypeSet(p)
		} else {
			free = append(free, name)
		}
	}
	return bindings, free
}

// parents 用 t 的绑定实例化 t 的 extends 子句
func (u *universe) parents(t *ResolvedType) *TypeSet {
	if t.def.Extends == "" {
		return nil
	}
	bindings, free := paramBindings(t)
	set, err := u.fromString(t.def.Extends, t.def.Namespace, bindings, free)
	if err != nil {
		return nil
	}
	return set
}

// walk 按广度优先顺序访问 t 及其祖先，每个类型只访问一次
// 类型的直接祖先先是代入绑定后的 extends 子句，然后是把某个类型参数放宽一步得到的类型
// visit 返回 false 时停止遍历
func (u *universe) walk(t *ResolvedType, visit func(*ResolvedType) bool) {
	seen := map[string]bool{t.Key(): true}
	queue := []*ResolvedType{t}
	for len(queue) > 0 && len(seen) <= maxWalk {
		x := queue[0]
		queue = queue[1:]
		if !visit(x) {
			return
		}
		for _, next := range u.directAncestors(x) {
			if k := next.Key(); !seen[k] {
				seen[k] = true
				queue = append(queue, next)
			}
		}
	}
}

// directAncestors 返回 t 上一层的类型
func (u *universe) directAncestors(t *ResolvedType) []*ResolvedType {
	out := append([]*ResolvedType(nil), u.parents(t).Slice()...)
	for _, name := range t.def.TypeParameters {
		arg := t.params[name]
		if arg == nil {
			continue
		}
		for _, wider := range u.directAncestors(arg) {
			out = append(out, t.with(name, wider))
		}
	}
	return out
}

// covers 判断类型 b 的值能否用在需要 a 的地方
func (u *universe) covers(a, b *ResolvedType) bool {
	found := false
	u.walk(b, func(x *ResolvedType) bool {
		if matches(a, x) {
			found = true
			return false
		}
		return true
	})
	return found
}

// matches 比较 a 和 x，任一侧未绑定的参数与任何类型匹配
func matches(a, x *ResolvedType) bool {
	if a.def != x.def && a.def.QualifiedName() != x.def.QualifiedName() {
		return false
	}
	for _, name := range a.def.TypeParameters {
		pa, px := a.params[name], x.params[name]
		if pa == nil || px == nil {
			continue
		}
		if !pa.Equal(px) {
			return false
		}
	}
	return true
}

// canBeAssignedTo 判断 set 中是否有被 t 覆盖的类型
func (u *universe) canBeAssignedTo(set *TypeSet, t *ResolvedType) bool {
	for _, s := range set.Slice() {
		if u.covers(t, s) {
			return true
		}
	}
	return false
}

// lowestCover 返回从 b 开始遍历时第一个同时是 a 或 a 的祖先的类型，没有时返回 nil
// 有多个同样近的公共祖先时，结果取决于参数顺序
func (u *universe) lowestCover(a, b *ResolvedType) *ResolvedType {
	if a.Equal(b) {
		return a
	}
	candidates := make(map[string]*ResolvedType)
	u.walk(a, func(x *ResolvedType) bool {
		candidates[x.Key()] = x
		return true
	})
	var found *ResolvedType
	u.walk(b, func(x *ResolvedType) bool {
		if c, ok := candidates[x.Key()]; ok {
			found = c
			return false
		}
		return true
	})
	return found
}

// lowestCoverAll 从左到右对 list 依次求 lowestCover
func (u *universe) lowestCoverAll(list []*ResolvedType) *ResolvedType {
	if len(list) == 0 {
		return nil
	}
	acc := list[0]
	for _, t := range list[1:] {
		acc = u.lowestCover(acc, t)
		if acc == nil {
			return nil
		}
	}
	return acc
}

// lowestCoverSet 返回从每个集合各取一个元素能得到的所有最低公共祖先
// 集合两两合并，工作量与不同类型的个数成正比，而不是与组合数成正比
func (u *universe) lowestCoverSet(sets []*TypeSet) *TypeSet {
	if len(sets) == 0 {
		return NewTypeSet()
	}
	acc := NewTypeSet(sets[0].Slice()...)
	for _, set := range sets[1:] {
		next := NewTypeSet()
		for _, a := range acc.Slice() {
			for _, b := range set.Slice() {
				if c := u.lowestCover(a, b); c != nil {
					next.Add(c)
				}
			}
		}
		acc = next
	}
	return acc
}

// ancestorNamed 返回从 t 开始遍历时第一个名为 name 的类型
func (u *universe) ancestorNamed(t *ResolvedType, name string) *ResolvedType {
	var found *ResolvedType
	u.walk(t, func(x *ResolvedType) bool {
		if x.def.Name == name {
			found = x
			return false
		}
		return true
	})
	return found
}

// distributionValues 从 set 中每个类型的第一个 Distribution<T> 祖先中取出 T
func (u *universe) distributionValues(set *TypeSet) *TypeSet {
	out := NewTypeSet()
	for _, t := range set.Slice() {
		if d := u.ancestorNamed(t, "Distribution"); d != nil && len(d.def.TypeParameters) == 1 {
			if v := d.Param(d.def.TypeParameters[0]); v != nil {
				out.Add(v)
			}
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// combinations 对从每个集合各取一个元素的每种方式调用 visit
func combinations(sets []*TypeSet, visit func([]*ResolvedType)) {
	pick := make([]*ResolvedType, len(sets))
	var rec func(i int)
	rec = func(i int) {
		if i == len(sets) {
			visit(append([]*ResolvedType(nil), pick...))
			return
		}
		for _, t := range sets[i].Slice() {
			pick[i] = t
			rec(i + 1)
		}
	}
	rec(0)
}
