// Package aos reads expressions written in algebraic order syntax: fully
// parenthesised infix such as "(3 * (x + 2))" or "sin((x ^ 2))".
package aos

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Triple is the textual decomposition of one expression level. Head is a
// numeric literal, "x", an operator symbol or a function name. Left and
// Right hold the unparsed operand text; both are nil for leaves and only
// Left is set for functions.
type Triple struct {
	Head  string
	Left  *string
	Right *string
}

// IsLeaf reports whether t is a literal or the variable.
func (t Triple) IsLeaf() bool {
	return t.Left == nil && t.Right == nil
}

func (t Triple) String() string {
	switch {
	case t.IsLeaf():
		return t.Head
	case t.Right == nil:
		return fmt.Sprintf("%s(%s)", t.Head, *t.Left)
	default:
		return fmt.Sprintf("(%s %s %s)", *t.Left, t.Head, *t.Right)
	}
}

const operators = "+-*/^"

// Parse splits text at its outermost operator or function call.
//
// Enclosing parentheses are stripped first. The split happens at an operator
// at nesting depth zero of what remains; fully parenthesised input has
// exactly one. For raw input with several, the lowest-precedence one wins
// (last + or -, else last * or /, else first ^), so "x^2 + sin(x)" splits
// at "+".
func Parse(text string) (Triple, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Triple{}, parseError(text, ErrEmpty)
	}
	if err := checkBalance(s); err != nil {
		return Triple{}, err
	}

	for wrapped(s) {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return Triple{}, parseError(s, ErrEmpty)
		}
		s = inner
	}

	if i := splitIndex(s); i >= 0 {
		left := strings.TrimSpace(s[:i])
		right := strings.TrimSpace(s[i+1:])
		if left == "" || right == "" {
			return Triple{}, parseError(s, ErrEmptyOperand)
		}
		return Triple{Head: s[i : i+1], Left: &left, Right: &right}, nil
	}

	if name, arg, ok := call(s); ok {
		if arg == "" {
			return Triple{}, parseError(s, ErrEmptyOperand)
		}
		return Triple{Head: strings.ToLower(name), Left: &arg}, nil
	}

	if strings.EqualFold(s, "x") {
		return Triple{Head: "x"}, nil
	}
	if _, ok := parseNumber(s); ok {
		return Triple{Head: s}, nil
	}
	return Triple{}, parseError(s, ErrUnknownToken)
}

// decimal is an optionally signed decimal literal with an optional exponent.
var decimal = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// parseNumber accepts decimal literals and the exact non-finite spellings the
// printer emits. Hex floats, underscores and other strconv extensions are
// rejected.
func parseNumber(s string) (float64, bool) {
	switch s {
	case "Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	case "NaN":
		return math.NaN(), true
	}
	if !decimal.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRange(err) {
		return 0, false
	}
	return v, true
}

// isRange reports a literal too large or small for float64; ParseFloat still
// returns ±Inf or 0 for it.
func isRange(err error) bool {
	var ne *strconv.NumError
	return errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange)
}

func checkBalance(s string) error {
	depth := 0
	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return parseError(s, ErrUnbalanced)
			}
		}
	}
	if depth != 0 {
		return parseError(s, ErrUnbalanced)
	}
	return nil
}

// closing returns the index of the parenthesis matching the one at open.
func closing(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// wrapped reports whether one matching pair encloses all of s.
func wrapped(s string) bool {
	return len(s) >= 2 && s[0] == '(' && closing(s, 0) == len(s)-1
}

func splitIndex(s string) int {
	lastAdd, lastMul, firstPow := -1, -1, -1
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case depth == 0 && strings.IndexByte(operators, c) >= 0 && isBinary(s, i):
			switch c {
			case '+', '-':
				lastAdd = i
			case '*', '/':
				lastMul = i
			case '^':
				if firstPow < 0 {
					firstPow = i
				}
			}
		}
	}
	switch {
	case lastAdd >= 0:
		return lastAdd
	case lastMul >= 0:
		return lastMul
	default:
		return firstPow
	}
}

// isBinary reports whether the operator at i joins two operands. A sign at
// the start, after another operator or an open parenthesis, or inside a
// literal exponent such as 1e-3 is a prefix.
func isBinary(s string, i int) bool {
	c := s[i]
	j := i - 1
	for j >= 0 && s[j] == ' ' {
		j--
	}
	if j < 0 {
		return false
	}
	prev := s[j]
	if c != '+' && c != '-' {
		return true
	}
	if prev == '(' || strings.IndexByte(operators, prev) >= 0 {
		return false
	}
	if (prev == 'e' || prev == 'E') && j == i-1 && j > 0 && isDigit(s[j-1]) {
		return false
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' || c == '.' }

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// call matches name(arg) where the group runs to the end of s.
func call(s string) (name, arg string, ok bool) {
	k := 0
	for k < len(s) && isLetter(s[k]) {
		k++
	}
	if k == 0 || k >= len(s) || s[k] != '(' || closing(s, k) != len(s)-1 {
		return "", "", false
	}
	return s[:k], strings.TrimSpace(s[k+1 : len(s)-1]), true
}
