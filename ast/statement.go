/*
File    : go-mica/ast/statement.go
Project : Mica
*/
package ast

// StatementType identifies the kind of a Statement.
type StatementType string

const (
	// StatementUndefined is an internal sentinel; never in a parsed scope
	StatementUndefined StatementType = "undefined"
	// StatementExpression is a bare expression evaluated for its effect
	StatementExpression StatementType = "expression"
	// StatementDeclaration is a `let <expr>;` variable declaration
	StatementDeclaration StatementType = "declaration"
	// StatementReturn is a `return <expr>;` statement
	StatementReturn StatementType = "return"
)

// Statement is one statement of a scope body. Every non-sentinel
// statement wraps a single expression; the Type tag decides how the
// evaluator treats its result.
type Statement struct {
	Type StatementType // Which statement form this is
	Expr *Expression   // The wrapped expression
}

// NewExpressionStatement returns a bare expression statement.
func NewExpressionStatement(expr *Expression) *Statement {
	return &Statement{Type: StatementExpression, Expr: expr}
}

// NewDeclarationStatement returns a `let` declaration statement.
func NewDeclarationStatement(expr *Expression) *Statement {
	return &Statement{Type: StatementDeclaration, Expr: expr}
}

// NewReturnStatement returns a `return` statement.
func NewReturnStatement(expr *Expression) *Statement {
	return &Statement{Type: StatementReturn, Expr: expr}
}

// Dump returns the debug rendering of the statement, e.g. "[let : ...]".
func (s *Statement) Dump() string {
	switch s.Type {
	case StatementExpression:
		return "[expression : " + s.Expr.Dump() + "]"
	case StatementDeclaration:
		return "[let : " + s.Expr.Dump() + "]"
	case StatementReturn:
		return "[return : " + s.Expr.Dump() + "]"
	}
	return "[Undefined]"
}
