package types

import "math"

// simplexTolerance 字面量向量之和与 1 的最大偏差，在此范围内视为 Simplex
const simplexTolerance = 1e-10

// literalRule 为接受的字面量值指定核心类型
type literalRule struct {
	typeName string
	accepts  func(v any) bool
}

var literalRules = []literalRule{
	{"PositiveInteger", func(v any) bool { n, ok := v.(int64); return ok && n > 0 }},
	{"NonNegativeInteger", func(v any) bool { n, ok := v.(int64); return ok && n == 0 }},
	{"Integer", func(v any) bool { n, ok := v.(int64); return ok && n < 0 }},
	{"PositiveReal", func(v any) bool { x, ok := number(v); return ok && x > 0 }},
	{"NonNegativeReal", func(v any) bool { x, ok := number(v); return ok && x == 0 }},
	{"Real", func(v any) bool { x, ok := number(v); return ok && x < 0 }},
	{"Probability", func(v any) bool { x, ok := number(v); return ok && x >= 0 && x <= 1 }},
	{"Boolean", func(v any) bool { _, ok := v.(bool); return ok }},
	{"String", func(v any) bool { _, ok := v.(string); return ok }},
}

// number 将数字字面量转换为 float64
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// literalTypes 返回字面量值最具体的核心类型，更宽的类型通过覆盖关系得到
func (u *universe) literalTypes(v any) *TypeSet {
	out := NewTypeSet()
	for _, r := range literalRules {
		if !r.accepts(v) {
			continue
		}
		if t := u.core(r.typeName); t != nil {
			out.Add(t)
		}
	}
	return out
}

// isSimplexLiteral 判断 values 是否是和为 1 的非负数
func isSimplexLiteral(values []any) bool {
	if len(values) == 0 {
		return false
	}
	sum := 0.0
	for _, v := range values {
		x, ok := number(v)
		if !ok || x < 0 {
			return false
		}
		sum += x
	}
	return math.Abs(sum-1) <= simplexTolerance
}
