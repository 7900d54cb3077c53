package aos

import (
	"fmt"
	"strings"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

// Format identifies a textual expression notation.
type Format int

const (
	FormatAOS Format = iota
	FormatRPN
)

var formatNames = map[Format]string{
	FormatAOS: "aos",
	FormatRPN: "rpn",
}

func (f Format) String() string { return formatNames[f] }

// FormatByName returns the format called name (case-insensitive).
func FormatByName(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format: %s (available: aos, rpn)", name)
}

// ParseAs parses text written in format. Only AOS is implemented; RPN fails
// with an *expr.UnsupportedOperationError wrapping ErrUnsupportedFormat.
func ParseAs(text string, format Format) (expr.Node, error) {
	if format != FormatAOS {
		return nil, unsupported("parse", format)
	}
	return ParseExpr(text)
}

// Print writes node in format. Only AOS is implemented.
func Print(node expr.Node, format Format) (string, error) {
	if format != FormatAOS {
		return "", unsupported("print", format)
	}
	return node.String(), nil
}

func unsupported(op string, format Format) error {
	return &expr.UnsupportedOperationError{Op: op, Subject: format.String(), Err: ErrUnsupportedFormat}
}
