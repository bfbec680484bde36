package fold

import (
	"math"

	"github.com/phylospec/phylospec/internal/lexer"
)

// evalUnary 计算一元运算，无法计算时返回 false
func evalUnary(op lexer.TokenType, v any) (any, bool) {
	switch op {
	case lexer.TOKEN_MINUS:
		switch n := v.(type) {
		case int64:
			return checkInt(-n)
		case float64:
			return -n, true
		}
	case lexer.TOKEN_BANG:
		if b, ok := v.(bool); ok {
			return !b, true
		}
	}
	return nil, false
}

// evalBinary 计算二元运算
// 除以零、整数溢出和非有限的浮点结果都不折叠
func evalBinary(op lexer.TokenType, l, r any) (any, bool) {
	switch op {
	case lexer.TOKEN_EQ:
		return equal(l, r), true
	case lexer.TOKEN_NOT_EQ:
		return !equal(l, r), true
	}

	if ls, ok := l.(string); ok {
		if rs, ok := r.(string); ok && op == lexer.TOKEN_PLUS {
			return ls + rs, true
		}
		return nil, false
	}

	li, lint := l.(int64)
	ri, rint := r.(int64)
	if lint && rint {
		switch op {
		case lexer.TOKEN_PLUS:
			sum := li + ri
			if (li >= 0) == (ri >= 0) && (sum >= 0) != (li >= 0) {
				return nil, false
			}
			return checkInt(sum)
		case lexer.TOKEN_MINUS:
			diff := li - ri
			if (li >= 0) != (ri >= 0) && (diff >= 0) != (li >= 0) {
				return nil, false
			}
			return checkInt(diff)
		case lexer.TOKEN_STAR:
			product := li * ri
			if li != 0 && (product/li != ri || (li == -1 && ri == math.MinInt64)) {
				return nil, false
			}
			return checkInt(product)
		}
	}

	lf, lok := float(l)
	rf, rok := float(r)
	if !lok || !rok {
		return nil, false
	}
	switch op {
	case lexer.TOKEN_PLUS:
		return checkFloat(lf + rf)
	case lexer.TOKEN_MINUS:
		return checkFloat(lf - rf)
	case lexer.TOKEN_STAR:
		return checkFloat(lf * rf)
	case lexer.TOKEN_SLASH:
		if rf == 0 {
			return nil, false
		}
		return checkFloat(lf / rf)
	case lexer.TOKEN_LT:
		return lf < rf, true
	case lexer.TOKEN_LT_EQ:
		return lf <= rf, true
	case lexer.TOKEN_GT:
		return lf > rf, true
	case lexer.TOKEN_GT_EQ:
		return lf >= rf, true
	}
	return nil, false
}

// checkInt 拒绝 math.MinInt64，它的字面量超出词法分析器能读回的范围
func checkInt(n int64) (any, bool) {
	if n == math.MinInt64 {
		return nil, false
	}
	return n, true
}

// checkFloat 拒绝无穷大和 NaN，它们没有对应的字面量
func checkFloat(f float64) (any, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}
	return f, true
}

// equal 按数值比较，不区分整数和浮点数
func equal(l, r any) bool {
	lf, lok := float(l)
	rf, rok := float(r)
	if lok && rok {
		return lf == rf
	}
	return l == r
}

func float(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
