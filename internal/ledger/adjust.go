package ledger

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
)

// ErrExpression is returned for anything other than integer arithmetic.
var ErrExpression = errors.New("not an integer expression")

// ParseAdjustment evaluates integer literals combined with binary + and -,
// unary - and parentheses, e.g. "1200-35" or "-(50+5)".
func ParseAdjustment(expr string) (int64, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return 0, fmt.Errorf("ledger: %w: %q", ErrExpression, expr)
	}
	v, err := eval(node)
	if err != nil {
		return 0, fmt.Errorf("ledger: %w: %q", err, expr)
	}
	return v, nil
}

func eval(n ast.Expr) (int64, error) {
	switch n := n.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT {
			return 0, ErrExpression
		}
		return strconv.ParseInt(n.Value, 10, 64)
	case *ast.ParenExpr:
		return eval(n.X)
	case *ast.UnaryExpr:
		if n.Op != token.SUB {
			return 0, ErrExpression
		}
		v, err := eval(n.X)
		return -v, err
	case *ast.BinaryExpr:
		if n.Op != token.ADD && n.Op != token.SUB {
			return 0, ErrExpression
		}
		l, err := eval(n.X)
		if err != nil {
			return 0, err
		}
		r, err := eval(n.Y)
		if err != nil {
			return 0, err
		}
		if n.Op == token.SUB {
			return l - r, nil
		}
		return l + r, nil
	}
	return 0, ErrExpression
}
