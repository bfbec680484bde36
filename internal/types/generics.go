package types

import (
	"github.com/phylospec/phylospec/internal/components"
	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/parser"
)

// argument 调用参数及其解析出的类型
type argument struct {
	name  string // 未命名时为空
	node  parser.Argument
	types *TypeSet
}

// bindGenerator 将 args 与 g 的参数匹配，推断类型参数，返回可能生成的类型
func (u *universe) bindGenerator(call *parser.Call, g *components.Generator, args []argument) (*TypeSet, *TypeError) {
	actual, err := assignArguments(call, g, args)
	if err != nil {
		return nil, err
	}

	// 按声明顺序排列的已传入参数及其类型
	var params []components.Argument
	var exprs []parser.TypeExpr
	var sets []*TypeSet
	for _, p := range g.Arguments {
		arg, ok := actual[p.Name]
		if !ok {
			continue
		}
		expr, err := u.parse(p.Type)
		if err != nil {
			return nil, err.at(call)
		}

		// 报告第一个无论如何都不匹配的参数
		fits := false
		for _, t := range arg.types.Slice() {
			if u.bindArgument(expr, t, g, make(map[string][]*ResolvedType)) {
				fits = true
				break
			}
		}
		if !fits {
			return nil, newError(ArgumentTypeMismatch, arg.node, i18n.ErrWrongArgumentType,
				g.Name, p.Name, p.Type, arg.types.String())
		}

		params = append(params, p)
		exprs = append(exprs, expr)
		sets = append(sets, arg.types)
	}

	if len(g.TypeParameters) == 0 {
		set, err := u.fromString(g.GeneratedType, g.Namespace, nil, nil)
		if err != nil {
			return nil, err.at(call)
		}
		return set, nil
	}

	// 每种参数类型组合对类型参数的绑定可能不同，生成类型取所有组合的并集
	out := NewTypeSet()
	var failure *TypeError
	combinations(sets, func(pick []*ResolvedType) {
		bindings := make(map[string][]*ResolvedType)
		for i, t := range pick {
			if !u.bindArgument(exprs[i], t, g, bindings) {
				return
			}
		}

		resolved := make(map[string]*TypeSet)
		for _, name := range g.TypeParameters {
			candidates, ok := bindings[name]
			if !ok {
				continue
			}
			lub := u.lowestCoverAll(candidates)
			if lub == nil {
				if failure == nil {
					failure = newError(InferenceFailure, call, i18n.ErrCannotInferTypeParameter,
						name, g.Name, NewTypeSet(candidates...).String())
				}
				return
			}
			resolved[name] = NewTypeSet(lub)
		}

		set, err := u.fromString(g.GeneratedType, g.Namespace, resolved, g.TypeParameters)
		if err != nil {
			if failure == nil {
				failure = err.at(call)
			}
			return
		}
		out.AddAll(set)
	})

	if out.Len() == 0 {
		if failure == nil {
			failure = newError(InferenceFailure, call, i18n.ErrCannotInferGenerated, g.Name)
		}
		return nil, failure
	}
	return out, nil
}

// assignArguments 将参数名映射到传入的实参
func assignArguments(call *parser.Call, g *components.Generator, args []argument) (map[string]argument, *TypeError) {
	actual := make(map[string]argument, len(args))

	if len(args) == 1 && args[0].name == "" {
		required := g.RequiredArguments()
		if len(required) != 1 {
			return nil, newError(ArgumentViolation, call, i18n.ErrUnnamedArgumentNotAllowed, g.Name)
		}
		actual[required[0].Name] = args[0]
	} else {
		for _, arg := range args {
			if arg.name == "" {
				return nil, newError(ArgumentViolation, arg.node, i18n.ErrUnnamedArgumentNotAllowed, g.Name)
			}
			if _, ok := g.Argument(arg.name); !ok {
				return nil, newError(ArgumentViolation, arg.node, i18n.ErrNoSuchArgument, g.Name, arg.name)
			}
			if _, dup := actual[arg.name]; dup {
				return nil, newError(ArgumentViolation, arg.node, i18n.ErrDuplicateArgument, g.Name, arg.name)
			}
			actual[arg.name] = arg
		}
	}

	for _, p := range g.Arguments {
		if _, ok := actual[p.Name]; p.Required && !ok {
			return nil, newError(ArgumentViolation, call, i18n.ErrMissingRequiredArgument, g.Name, p.Name)
		}
	}
	return actual, nil
}

// bindArgument 检查 actual 类型的值是否符合声明的类型 required，并记录 g 的类型参数的绑定
// 单独的类型参数接受任何类型，泛型类型与 actual 的第一个同名同参数个数的祖先匹配
func (u *universe) bindArgument(required parser.TypeExpr, actual *ResolvedType, g *components.Generator, bindings map[string][]*ResolvedType) bool {
	switch r := required.(type) {
	case *parser.AtomicType:
		if g.IsTypeParameter(r.Name) {
			bindings[r.Name] = append(bindings[r.Name], actual)
			return true
		}
		set, err := u.instantiate(r, g.Namespace, nil, nil)
		if err != nil || set.Len() != 1 {
			return false
		}
		return u.covers(set.Slice()[0], actual)

	case *parser.GenericType:
		matched := false
		u.walk(actual, func(x *ResolvedType) bool {
			if x.def.Name != r.Name || len(x.def.TypeParameters) != len(r.Args) {
				return true
			}
			local := make(map[string][]*ResolvedType)
			for i, arg := range r.Args {
				p := x.params[x.def.TypeParameters[i]]
				if p == nil {
					continue
				}
				if !u.bindArgument(arg, p, g, local) {
					return true
				}
			}
			for name, ts := range local {
				bindings[name] = append(bindings[name], ts...)
			}
			matched = true
			return false
		})
		return matched
	}
	return false
}
