/*
File    : go-mica/parser/parser_folding.go
Project : Mica
*/
package parser

import (
	"fmt"

	"github.com/mica-lang/go-mica/ast"
)

// eop is an element of the folding work list: either a finished
// expression or an operator still waiting to be folded.
type eop struct {
	expr       *ast.Expression
	operator   string
	isOperator bool
}

// fold is Pass B: it reduces a flat ExprObj list to a single expression
// by sweeping priorities from the table's maximum down to its minimum.
// Within one sweep the list is scanned left to right, and every operator
// of exactly the current priority replaces the (left, operator, right)
// triple around it with one operation node — which makes equal-priority
// operators associate left.
func (par *Parser) fold(objs []*ExprObj) (*ast.Expression, error) {
	if len(objs) == 0 {
		return nil, ErrEmptyExpression
	}

	// A singleton needs no sweeping: a lone operator is an error, a
	// parenthesized group reduces to its inner expression, a value is
	// the result.
	if len(objs) == 1 {
		obj := objs[0]
		switch obj.Type {
		case ObjOperator:
			return nil, fmt.Errorf("%w: '%s'", ErrOperatorAsValue, obj.Operator)
		case ObjParentheses:
			return par.fold(obj.Parens)
		case ObjValue:
			return ast.NewValueExpression(obj.Value), nil
		}
	}

	// Seed the work list: groups fold recursively into expressions,
	// values wrap into value nodes, operators stay as operators.
	eops := make([]eop, 0, len(objs))
	for _, obj := range objs {
		switch obj.Type {
		case ObjOperator:
			eops = append(eops, eop{operator: obj.Operator, isOperator: true})
		case ObjParentheses:
			sub, err := par.fold(obj.Parens)
			if err != nil {
				return nil, err
			}
			eops = append(eops, eop{expr: sub})
		case ObjValue:
			eops = append(eops, eop{expr: ast.NewValueExpression(obj.Value)})
		}
	}

	for priority := par.Table.MaxPriority(); priority >= par.Table.MinPriority(); priority-- {
		i := 0
		for i < len(eops) {
			if eops[i].isOperator {
				if i == 0 {
					return nil, fmt.Errorf("%w: '%s'", ErrOperatorAsValue, eops[i].operator)
				}
				if i == len(eops)-1 {
					return nil, fmt.Errorf("%w: '%s'", ErrTrailingOperator, eops[i].operator)
				}
				if par.Table.Priority(eops[i].operator) == priority {
					left := eops[i-1]
					right := eops[i+1]
					if left.isOperator || right.isOperator {
						return nil, fmt.Errorf("%w: '%s'", ErrOperatorAsValue, eops[i].operator)
					}
					folded := ast.NewOperationExpression(left.expr, eops[i].operator, right.expr)

					// Replace the (left, operator, right) triple with the
					// folded node and resume the scan at the node itself.
					eops[i] = eop{expr: folded}
					eops = append(eops[:i+1], eops[i+2:]...)
					eops = append(eops[:i-1], eops[i:]...)
					i--
				}
			}
			i++
		}
	}

	return eops[len(eops)-1].expr, nil
}
