// Package calculator converts infix arithmetic to postfix (shunting-yard) and
// evaluates postfix expressions. Supported operators are + - * / ^ with
// parentheses. Operators of equal precedence associate left to right,
// including ^, so 2^3^2 evaluates to 64.
package calculator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/dsa"
)

var (
	// splitRe isolates operators and parentheses so they become tokens even
	// when the input has no spacing ("5*(4+3)").
	splitRe  = regexp.MustCompile(`([*+()\-/^])`)
	numberRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

var precedence = map[string]int{
	"+": 1, "-": 1,
	"*": 2, "/": 2,
	"^": 3,
}

func isOperator(tok string) bool {
	_, ok := precedence[tok]
	return ok
}

func tokenize(infix string) []string {
	return strings.Fields(splitRe.ReplaceAllString(infix, " $1 "))
}

// ToPostfix converts an infix expression to a space-separated postfix string.
func ToPostfix(infix string) (string, error) {
	tokens := tokenize(infix)
	if len(tokens) == 0 {
		return "", domain.ErrEmptyInput
	}

	out := make([]string, 0, len(tokens))
	ops := dsa.NewStack[string]()

	for _, tok := range tokens {
		switch {
		case numberRe.MatchString(tok):
			out = append(out, tok)
		case tok == "(":
			ops.Push(tok)
		case tok == ")":
			for {
				top, ok := ops.Pop()
				if !ok {
					return "", fmt.Errorf("%w: missing '('", domain.ErrUnbalancedParentheses)
				}
				if top == "(" {
					break
				}
				out = append(out, top)
			}
		case isOperator(tok):
			for {
				top, ok := ops.Peek()
				if !ok || top == "(" || precedence[tok] > precedence[top] {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(tok)
		default:
			return "", fmt.Errorf("%w %q", domain.ErrUnknownToken, tok)
		}
	}

	for !ops.Empty() {
		top, _ := ops.Pop()
		if top == "(" {
			return "", fmt.Errorf("%w: missing ')'", domain.ErrUnbalancedParentheses)
		}
		out = append(out, top)
	}
	return strings.Join(out, " "), nil
}

// Evaluate computes a space-separated postfix expression.
func Evaluate(postfix string) (float64, error) {
	tokens := strings.Fields(postfix)
	if len(tokens) == 0 {
		return 0, domain.ErrEmptyInput
	}

	vals := dsa.NewStack[float64]()
	for _, tok := range tokens {
		if numberRe.MatchString(tok) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, fmt.Errorf("%w %q: %v", domain.ErrUnknownToken, tok, err)
			}
			vals.Push(v)
			continue
		}
		if !isOperator(tok) {
			return 0, fmt.Errorf("%w %q", domain.ErrUnknownToken, tok)
		}

		right, ok := vals.Pop()
		if !ok {
			return 0, fmt.Errorf("%w: missing operands for %q", domain.ErrMalformedExpression, tok)
		}
		left, ok := vals.Pop()
		if !ok {
			return 0, fmt.Errorf("%w: missing operands for %q", domain.ErrMalformedExpression, tok)
		}
		res, err := apply(tok, left, right)
		if err != nil {
			return 0, err
		}
		vals.Push(res)
	}

	if vals.Len() != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", domain.ErrMalformedExpression, vals.Len())
	}
	res, _ := vals.Pop()
	return res, nil
}

func apply(op string, left, right float64) (float64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, domain.ErrDivisionByZero
		}
		return left / right, nil
	case "^":
		return math.Pow(left, right), nil
	}
	return 0, fmt.Errorf("%w %q", domain.ErrUnknownToken, op)
}

// Calculate converts infix to postfix and evaluates it. The postfix form is
// returned even when evaluation fails.
func Calculate(infix string) (string, float64, error) {
	postfix, err := ToPostfix(infix)
	if err != nil {
		return "", 0, err
	}
	res, err := Evaluate(postfix)
	return postfix, res, err
}
