package types

import "github.com/phylospec/phylospec/internal/lexer"

// anyType 匹配任意操作数类型
const anyType = "ANY"

// rule 将运算符的操作数类型映射到结果类型
// 操作数按覆盖关系匹配，因此较宽的规则同样适用于较窄的操作数
type rule struct {
	op       lexer.TokenType
	operands []string
	result   string
}

func unary(op lexer.TokenType, operand, result string) rule {
	return rule{op: op, operands: []string{operand}, result: result}
}

func binary(op lexer.TokenType, left, right, result string) rule {
	return rule{op: op, operands: []string{left, right}, result: result}
}

var unaryRules = []rule{
	unary(lexer.TOKEN_BANG, "Boolean", "Boolean"),
	unary(lexer.TOKEN_MINUS, "Real", "Real"),
	unary(lexer.TOKEN_MINUS, "Integer", "Integer"),
}

var binaryRules = []rule{
	binary(lexer.TOKEN_EQ, anyType, anyType, "Boolean"),
	binary(lexer.TOKEN_NOT_EQ, anyType, anyType, "Boolean"),

	binary(lexer.TOKEN_GT, "Real", "Real", "Boolean"),
	binary(lexer.TOKEN_GT, "Integer", "Integer", "Boolean"),
	binary(lexer.TOKEN_GT, "Integer", "Real", "Boolean"),
	binary(lexer.TOKEN_GT, "Real", "Integer", "Boolean"),
	binary(lexer.TOKEN_LT, "Real", "Real", "Boolean"),
	binary(lexer.TOKEN_LT, "Integer", "Integer", "Boolean"),
	binary(lexer.TOKEN_LT, "Integer", "Real", "Boolean"),
	binary(lexer.TOKEN_LT, "Real", "Integer", "Boolean"),
	binary(lexer.TOKEN_GT_EQ, "Real", "Real", "Boolean"),
	binary(lexer.TOKEN_GT_EQ, "Integer", "Integer", "Boolean"),
	binary(lexer.TOKEN_GT_EQ, "Integer", "Real", "Boolean"),
	binary(lexer.TOKEN_GT_EQ, "Real", "Integer", "Boolean"),
	binary(lexer.TOKEN_LT_EQ, "Real", "Real", "Boolean"),
	binary(lexer.TOKEN_LT_EQ, "Integer", "Integer", "Boolean"),
	binary(lexer.TOKEN_LT_EQ, "Integer", "Real", "Boolean"),
	binary(lexer.TOKEN_LT_EQ, "Real", "Integer", "Boolean"),

	binary(lexer.TOKEN_PLUS, "PositiveReal", "PositiveReal", "PositiveReal"),
	binary(lexer.TOKEN_PLUS, "PositiveInteger", "PositiveInteger", "PositiveInteger"),
	binary(lexer.TOKEN_PLUS, "PositiveInteger", "PositiveReal", "PositiveReal"),
	binary(lexer.TOKEN_PLUS, "PositiveReal", "PositiveInteger", "PositiveReal"),
	binary(lexer.TOKEN_PLUS, "NonNegativeReal", "NonNegativeReal", "NonNegativeReal"),
	binary(lexer.TOKEN_PLUS, "Real", "Real", "Real"),
	binary(lexer.TOKEN_PLUS, "Integer", "Integer", "Integer"),
	binary(lexer.TOKEN_PLUS, "Integer", "Real", "Real"),
	binary(lexer.TOKEN_PLUS, "Real", "Integer", "Real"),
	binary(lexer.TOKEN_PLUS, "String", "String", "String"),

	binary(lexer.TOKEN_MINUS, "Real", "Real", "Real"),
	binary(lexer.TOKEN_MINUS, "Integer", "Integer", "Integer"),
	binary(lexer.TOKEN_MINUS, "Integer", "Real", "Real"),
	binary(lexer.TOKEN_MINUS, "Real", "Integer", "Real"),

	binary(lexer.TOKEN_STAR, "PositiveReal", "PositiveReal", "PositiveReal"),
	binary(lexer.TOKEN_STAR, "PositiveInteger", "PositiveInteger", "PositiveInteger"),
	binary(lexer.TOKEN_STAR, "PositiveInteger", "PositiveReal", "PositiveReal"),
	binary(lexer.TOKEN_STAR, "PositiveReal", "PositiveInteger", "PositiveReal"),
	binary(lexer.TOKEN_STAR, "NonNegativeReal", "NonNegativeReal", "NonNegativeReal"),
	binary(lexer.TOKEN_STAR, "Real", "Real", "Real"),
	binary(lexer.TOKEN_STAR, "Integer", "Integer", "Integer"),
	binary(lexer.TOKEN_STAR, "Integer", "Real", "Real"),
	binary(lexer.TOKEN_STAR, "Real", "Integer", "Real"),

	binary(lexer.TOKEN_SLASH, "PositiveReal", "PositiveReal", "PositiveReal"),
	binary(lexer.TOKEN_SLASH, "NonNegativeReal", "NonNegativeReal", "NonNegativeReal"),
	binary(lexer.TOKEN_SLASH, "Real", "Real", "Real"),
	binary(lexer.TOKEN_SLASH, "Integer", "Integer", "Real"),
	binary(lexer.TOKEN_SLASH, "Integer", "Real", "Real"),
	binary(lexer.TOKEN_SLASH, "Real", "Integer", "Real"),
}

// matchOperator 返回所有接受某种操作数类型组合的规则结果的并集
func (u *universe) matchOperator(rules []rule, op lexer.TokenType, operands []*TypeSet) *TypeSet {
	out := NewTypeSet()
	combinations(operands, func(pick []*ResolvedType) {
		for _, r := range rules {
			if r.op != op || len(r.operands) != len(pick) {
				continue
			}
			if u.ruleAccepts(r, pick) {
				if result := u.core(r.result); result != nil {
					out.Add(result)
				}
			}
		}
	})
	return out
}

func (u *universe) ruleAccepts(r rule, pick []*ResolvedType) bool {
	for i, name := range r.operands {
		if name == anyType {
			continue
		}
		want := u.core(name)
		if want == nil || !u.covers(want, pick[i]) {
			return false
		}
	}
	return true
}
