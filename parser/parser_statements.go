/*
File    : go-mica/parser/parser_statements.go
Project : Mica
*/
package parser

import "github.com/mica-lang/go-mica/ast"

// parseScope parses a statement sequence until the next token is '}' or
// the window ends, and returns the scope holding those statements. The
// cursor is expected to already be past the opening '{' if there is one;
// on return it rests on the '}' (or at the window end).
//
// After each statement the cursor rests on the statement terminator.
// A ';' is consumed here; a '}' is left in place for this loop (or the
// enclosing function literal parser) to see, so the last statement of a
// brace-delimited body does not require a trailing ';'.
func (par *Parser) parseScope(end int) (*ast.Scope, error) {
	scope := ast.NewScope(nil)
	for par.Pos < end {
		if par.current() == "}" {
			break
		}
		stmt, err := par.parseStatement(end)
		if err != nil {
			return nil, err
		}
		scope.Statements = append(scope.Statements, stmt)
		if par.Pos < end && par.current() == ";" {
			par.advance()
		}
	}
	return scope, nil
}

// parseStatement parses one statement. The leading token selects the
// form: `let` and `return` consume the keyword and wrap the following
// expression; anything else is a bare expression statement. In every
// case the expression parser leaves the cursor on the terminator.
func (par *Parser) parseStatement(end int) (*ast.Statement, error) {
	switch par.current() {
	case "let":
		par.advance()
		expr, err := par.parseExpression(end)
		if err != nil {
			return nil, err
		}
		return ast.NewDeclarationStatement(expr), nil
	case "return":
		par.advance()
		expr, err := par.parseExpression(end)
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStatement(expr), nil
	default:
		expr, err := par.parseExpression(end)
		if err != nil {
			return nil, err
		}
		return ast.NewExpressionStatement(expr), nil
	}
}
