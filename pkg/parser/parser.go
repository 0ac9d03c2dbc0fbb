// Package parser implements the recursive-descent grammar for algex's
// surface syntax (+ - * / ^, integer literals, identifiers, parentheses).
// It is an external collaborator of the rewriting engine — nothing in
// pkg/expr, pkg/pattern, pkg/rules, pkg/rewrite, pkg/graph, or pkg/search
// imports this package — but a runnable CLI needs a working parser, so
// this is a full implementation rather than a stub.
package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jwalk/algex/pkg/expr"
)

// Parse parses s, which must be exactly one expression with no trailing
// input. A malformed or incomplete expression returns an error wrapped
// with the unparsed suffix, per the parser's error-reporting contract.
func Parse(s string) (*expr.Expr, error) {
	e, rest, err := parseSum(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, errors.Errorf("expected end of expression, remaining to parse: %q", rest)
	}
	return e, nil
}

// parseSum := product (('+'|'-') product)*, left-associative.
func parseSum(s string) (*expr.Expr, string, error) {
	left, rest, err := parseProduct(s)
	if err != nil {
		return nil, "", err
	}
	for len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		op := rest[0]
		right, rest2, err := parseProduct(rest[1:])
		if err != nil {
			return nil, "", err
		}
		if op == '+' {
			left = expr.NewAdd(left, right)
		} else {
			left = expr.NewSub(left, right)
		}
		rest = rest2
	}
	return left, rest, nil
}

// parseProduct := power (('*'|'/') power)*, left-associative.
func parseProduct(s string) (*expr.Expr, string, error) {
	left, rest, err := parsePower(s)
	if err != nil {
		return nil, "", err
	}
	for len(rest) > 0 && (rest[0] == '*' || rest[0] == '/') {
		op := rest[0]
		right, rest2, err := parsePower(rest[1:])
		if err != nil {
			return nil, "", err
		}
		if op == '*' {
			left = expr.NewMul(left, right)
		} else {
			left = expr.NewDiv(left, right)
		}
		rest = rest2
	}
	return left, rest, nil
}

// parsePower := leaf ('^' leaf)*, right-associative: a^b^c parses as
// a^(b^c), built by folding the operand chain from the right.
func parsePower(s string) (*expr.Expr, string, error) {
	first, rest, err := parseLeaf(s)
	if err != nil {
		return nil, "", err
	}
	operands := []*expr.Expr{first}
	for strings.HasPrefix(rest, "^") {
		next, rest2, err := parseLeaf(rest[1:])
		if err != nil {
			return nil, "", err
		}
		operands = append(operands, next)
		rest = rest2
	}
	result := operands[len(operands)-1]
	for i := len(operands) - 2; i >= 0; i-- {
		result = expr.NewPow(operands[i], result)
	}
	return result, rest, nil
}

// parseLeaf := '(' sum ')' | literal | identifier.
func parseLeaf(s string) (*expr.Expr, string, error) {
	if strings.HasPrefix(s, "(") {
		inner, rest, err := parseSum(s[1:])
		if err != nil {
			return nil, "", err
		}
		if !strings.HasPrefix(rest, ")") {
			return nil, "", errors.Errorf("missing end parenthesis, remaining to parse: %q", rest)
		}
		return inner, rest[1:], nil
	}
	if len(s) > 0 && (s[0] == '-' || isDigit(s[0])) {
		return parseLiteral(s)
	}
	return parseVariable(s)
}

// literal := '-'? digit+, a 32-bit signed integer; the parser owns
// leading-minus lexing for negative literals.
func parseLiteral(s string) (*expr.Expr, string, error) {
	rest := s
	neg := strings.HasPrefix(rest, "-")
	if neg {
		rest = rest[1:]
	}
	i := 0
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}
	if i == 0 {
		return nil, "", errors.Errorf("expected a digit, got %q", rest)
	}
	n, err := strconv.ParseInt(rest[:i], 10, 32)
	if err != nil {
		return nil, "", errors.Wrapf(err, "constant %q out of 32-bit range", rest[:i])
	}
	if neg {
		n = -n
	}
	return expr.NewConst(int32(n)), rest[i:], nil
}

// identifier := word-char+.
func parseVariable(s string) (*expr.Expr, string, error) {
	i := 0
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	if i == 0 {
		return nil, "", errors.Errorf("expected an identifier or literal, got %q", s)
	}
	return expr.NewVar(s[:i]), s[i:], nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isWordChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDigit(b)
}
