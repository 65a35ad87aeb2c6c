/*
File    : go-mica/parser/parser_expressions.go
Project : Mica
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/mica-lang/go-mica/ast"
	"github.com/mica-lang/go-mica/function"
)

// ExprObjType identifies the kind of an ExprObj.
type ExprObjType string

const (
	// ObjOperator is an operator lexeme awaiting the folding pass
	ObjOperator ExprObjType = "operator"
	// ObjValue is an identifier, literal, function literal, or call tuple
	ObjValue ExprObjType = "value"
	// ObjParentheses is a grouped sub-list of ExprObjs
	ObjParentheses ExprObjType = "parentheses"
)

// ExprObj is the intermediate token of the flattening pass: a flat,
// partially-structured element that Pass B folds into the expression
// tree. Exactly the field matching the Type tag is populated.
type ExprObj struct {
	Type     ExprObjType // Which variant this element is
	Parens   []*ExprObj  // Sub-list for ObjParentheses
	Operator string      // Lexeme for ObjOperator
	Value    *ast.Value  // Payload for ObjValue
}

// parseExpression parses one full expression: Pass A flattens the token
// window into ExprObjs until the first unbracketed terminator, Pass B
// folds the flat list into a tree. The cursor is left on the terminator.
func (par *Parser) parseExpression(end int) (*ast.Expression, error) {
	objs := make([]*ExprObj, 0)
	for par.Pos < end && !isTerminator(par.current()) {
		if err := par.parseExprObj(end, &objs); err != nil {
			return nil, err
		}
	}
	return par.fold(objs)
}

// parseExprObj consumes the next flat element of the expression and
// appends what it produces to *all. Most tokens produce one element; a
// call argument list produces two (the argument tuple plus the synthetic
// '(' operator that will bind the callee to it).
//
// The `all` list is the one-symbol left context used to disambiguate '(':
// following a value or a parenthesized group, '(' starts a call argument
// list; otherwise it starts a grouping.
func (par *Parser) parseExprObj(end int, all *[]*ExprObj) error {
	token := par.current()

	// `function` introduces a function literal: a parenthesized
	// parameter-name list followed by a brace-delimited body.
	if token == "function" {
		return par.parseFunctionLiteral(end, all)
	}

	if token == "(" {
		if prev := lastObj(*all); prev != nil && prev.Type != ObjOperator {
			return par.parseCallArguments(end, all)
		}
		return par.parseGrouping(end, all)
	}

	// Any other recognized operator flows through to the folding pass.
	if par.Table.IsOperator(token) {
		*all = append(*all, &ExprObj{Type: ObjOperator, Operator: token})
		par.advance()
		return nil
	}

	// A decimal integer run is an integer literal.
	if value, err := strconv.ParseInt(token, 10, 64); err == nil {
		constant := ast.NewInteger(value)
		*all = append(*all, &ExprObj{Type: ObjValue, Value: ast.NewConstantValue(constant)})
		par.advance()
		return nil
	}

	// Everything else is an identifier, resolved at evaluation time.
	*all = append(*all, &ExprObj{Type: ObjValue, Value: ast.NewVariableName(token)})
	par.advance()
	return nil
}

// parseFunctionLiteral parses `function ( a, b ) { body }` and emits a
// single value element holding the function constant. The body scope's
// parent link stays unset until call time. The cursor ends past the
// closing '}'.
func (par *Parser) parseFunctionLiteral(end int, all *[]*ExprObj) error {
	par.advance() // past `function`
	if err := par.expectAdvance("(", end); err != nil {
		return err
	}

	params := make([]string, 0)
	expectName := true
	for {
		if par.Pos >= end {
			return fmt.Errorf("%w: unterminated parameter list", ErrUnexpectedEnd)
		}
		token := par.current()
		if token == ")" {
			break
		}
		if expectName {
			if par.Table.IsOperator(token) || isInteger(token) {
				return fmt.Errorf("%w, got '%s'", ErrExpectedParameterName, token)
			}
			params = append(params, token)
			par.advance()
		} else {
			if token != "," {
				return fmt.Errorf("%w, got '%s'", ErrExpectedComma, token)
			}
			par.advance()
		}
		expectName = !expectName
	}
	par.advance() // past ')'

	if err := par.expectAdvance("{", end); err != nil {
		return err
	}
	body, err := par.parseScope(end)
	if err != nil {
		return err
	}
	if err := par.expectAdvance("}", end); err != nil {
		return err
	}

	constant := ast.NewFunction(function.New(params, body))
	*all = append(*all, &ExprObj{Type: ObjValue, Value: ast.NewConstantValue(constant)})
	return nil
}

// parseCallArguments parses the `( e1, e2 )` argument list of a call.
// It emits two elements: the synthetic '(' operator, then a value
// holding the argument tuple. The operator lands between the callee and
// the tuple in the flat list, so the folding pass binds them into one
// call operation. The cursor ends past the closing ')'.
func (par *Parser) parseCallArguments(end int, all *[]*ExprObj) error {
	par.advance() // past '('

	exprs := make([]*ast.Expression, 0)
	expectExpression := true
	for {
		if par.Pos >= end {
			return fmt.Errorf("%w: unterminated argument list", ErrUnexpectedEnd)
		}
		if par.current() == ")" {
			break
		}
		if expectExpression {
			expr, err := par.parseExpression(end)
			if err != nil {
				return err
			}
			exprs = append(exprs, expr)
		} else {
			if par.current() != "," {
				return fmt.Errorf("%w, got '%s'", ErrExpectedComma, par.current())
			}
			par.advance()
		}
		expectExpression = !expectExpression
	}
	par.advance() // past ')'

	constant := ast.NewTuple(&ast.Tuple{Expressions: exprs})
	*all = append(*all, &ExprObj{Type: ObjOperator, Operator: "("})
	*all = append(*all, &ExprObj{Type: ObjValue, Value: ast.NewConstantValue(constant)})
	return nil
}

// parseGrouping parses a parenthesized subexpression and emits it as a
// bracketed sub-list. The sub-list is its own left-context window, so a
// call directly inside parentheses still disambiguates correctly. The
// cursor ends past the closing ')'.
func (par *Parser) parseGrouping(end int, all *[]*ExprObj) error {
	par.advance() // past '('

	inner := make([]*ExprObj, 0)
	for {
		if par.Pos >= end {
			return fmt.Errorf("%w: missing ')'", ErrUnexpectedEnd)
		}
		if par.current() == ")" {
			break
		}
		if err := par.parseExprObj(end, &inner); err != nil {
			return err
		}
	}
	par.advance() // past ')'

	*all = append(*all, &ExprObj{Type: ObjParentheses, Parens: inner})
	return nil
}

// lastObj returns the last element of the list, or nil if it is empty.
func lastObj(objs []*ExprObj) *ExprObj {
	if len(objs) == 0 {
		return nil
	}
	return objs[len(objs)-1]
}

// isInteger reports whether the token parses as a signed 64-bit integer.
func isInteger(token string) bool {
	_, err := strconv.ParseInt(token, 10, 64)
	return err == nil
}
