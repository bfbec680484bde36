package types

import (
	"sort"
	"strings"

	"github.com/phylospec/phylospec/internal/components"
)

// ResolvedType 类型参数已绑定到具体类型的组件类型
// 没有绑定的参数表示未知，如空向量的元素类型
type ResolvedType struct {
	def    *components.Type
	params map[string]*ResolvedType
}

func newResolved(def *components.Type) *ResolvedType {
	return &ResolvedType{def: def}
}

// Def 返回底层组件类型
func (t *ResolvedType) Def() *components.Type {
	return t.def
}

// Name 返回不带命名空间的类型名
func (t *ResolvedType) Name() string {
	return t.def.Name
}

// Param 返回类型参数的绑定，未绑定时返回 nil
func (t *ResolvedType) Param(name string) *ResolvedType {
	return t.params[name]
}

// with 返回 name 绑定为 v 的 t 的副本
func (t *ResolvedType) with(name string, v *ResolvedType) *ResolvedType {
	params := make(map[string]*ResolvedType, len(t.params)+1)
	for k, p := range t.params {
		params[k] = p
	}
	params[name] = v
	return &ResolvedType{def: t.def, params: params}
}

// String 按脚本中的写法输出类型，如 Vector<Real>，未绑定的参数显示为参数名
func (t *ResolvedType) String() string {
	return t.render(func(p *ResolvedType) string { return p.String() }, func(name string) string { return name })
}

// Key 包含命名空间的类型标识，两个类型相等当且仅当 Key 相等
func (t *ResolvedType) Key() string {
	return t.def.Namespace + ":" + t.render(func(p *ResolvedType) string { return p.Key() }, func(string) string { return "?" })
}

func (t *ResolvedType) render(bound func(*ResolvedType) string, unbound func(string) string) string {
	if len(t.def.TypeParameters) == 0 {
		return t.def.Name
	}
	parts := make([]string, len(t.def.TypeParameters))
	for i, name := range t.def.TypeParameters {
		if p := t.params[name]; p != nil {
			parts[i] = bound(p)
		} else {
			parts[i] = unbound(name)
		}
	}
	return t.def.Name + "<" + strings.Join(parts, ", ") + ">"
}

// Equal 判断 t 和 o 是否是同一类型
func (t *ResolvedType) Equal(o *ResolvedType) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Key() == o.Key()
}

// TypeSet 保持插入顺序的类型集合，零值和 nil 都是空集合
type TypeSet struct {
	items []*ResolvedType
	index map[string]bool
}

// NewTypeSet 创建包含 ts 的集合
func NewTypeSet(ts ...*ResolvedType) *TypeSet {
	s := &TypeSet{}
	for _, t := range ts {
		s.Add(t)
	}
	return s
}

// Add 插入 t，返回是否是新元素
func (s *TypeSet) Add(t *ResolvedType) bool {
	if s.index == nil {
		s.index = make(map[string]bool)
	}
	k := t.Key()
	if s.index[k] {
		return false
	}
	s.index[k] = true
	s.items = append(s.items, t)
	return true
}

// AddAll 插入 o 的所有元素
func (s *TypeSet) AddAll(o *TypeSet) {
	for _, t := range o.Slice() {
		s.Add(t)
	}
}

// Len 返回元素个数
func (s *TypeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Slice 按插入顺序返回元素
func (s *TypeSet) Slice() []*ResolvedType {
	if s == nil {
		return nil
	}
	return s.items
}

// Contains 判断 t 是否在集合中
func (s *TypeSet) Contains(t *ResolvedType) bool {
	return s != nil && s.index[t.Key()]
}

// Strings 返回排序后的元素字符串
func (s *TypeSet) Strings() []string {
	out := make([]string, 0, s.Len())
	for _, t := range s.Slice() {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

// String 单个类型直接输出，多个类型输出为 {A, B}
func (s *TypeSet) String() string {
	names := s.Strings()
	if len(names) == 1 {
		return names[0]
	}
	return "{" + strings.Join(names, ", ") + "}"
}
