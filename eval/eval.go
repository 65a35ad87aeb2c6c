/*
File    : go-mica/eval/eval.go
Project : Mica
*/

/*
Package eval implements the tree-walking evaluator of the Mica
programming language. It executes a parsed Scope directly: statements in
document order, expressions reduced to variable cells by applying binary
operators, calls materializing fresh call frames.

Expression evaluation yields a VVA — either a concrete variable cell or a
still-unresolved value. Only identifier references stay unresolved, and
only so the `.` operator can treat its right operand as a member name
instead of a scope lookup; in every other position the value is
materialized into a cell against the current scope chain.

Errors are fatal: evaluation stops at the first error and reports it to
the caller. The package exposes its error categories as sentinel errors
so callers can match them with errors.Is.
*/
package eval

import (
	"errors"
	"fmt"

	"github.com/mica-lang/go-mica/ast"
)

// Sentinel errors for the closed set of runtime failure categories.
// Returned errors wrap one of these; match with errors.Is.
var (
	// ErrDivisionByZero reports an integer division or /= by zero
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNamelessDeclaration reports `let` producing a nameless cell
	ErrNamelessDeclaration = errors.New("cannot create nameless variable")
	// ErrNoSuchMember reports a failed `.` member lookup
	ErrNoSuchMember = errors.New("no such member in variable")
	// ErrUnknownOperator reports an operator with no evaluation rule
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrTypeMismatch reports an operand of the wrong kind
	ErrTypeMismatch = errors.New("operator applied to wrong operand type")
)

// VVA is the polymorphic result of expression evaluation: a resolved
// variable cell, or an unresolved value carrying an identifier name
// across the `.` operator. Exactly one field is set.
type VVA struct {
	Variable *ast.Variable // A concrete cell, when resolved
	Value    *ast.Value    // An unresolved value, otherwise
}

// ToVariable materializes the result into a cell. A resolved cell is
// returned as-is; an unresolved value is constructed against the given
// scope (identifier references resolve up the scope chain).
func (v VVA) ToVariable(scope *ast.Scope) *ast.Variable {
	if v.Variable != nil {
		return v.Variable
	}
	return constructVariable(v.Value, scope)
}

// ExecuteScope runs the scope's statements in order. After each
// statement, a populated return slot stops execution and yields its
// cell; a scope whose statements never return yields nil.
func ExecuteScope(scope *ast.Scope) (*ast.Variable, error) {
	for _, stmt := range scope.Statements {
		if _, err := ExecuteStatement(stmt, scope); err != nil {
			return nil, err
		}
		if scope.ReturnValue != nil {
			return scope.ReturnValue, nil
		}
	}
	return nil, nil
}

// ExecuteStatement runs one statement against the scope. A bare
// expression statement yields its result cell (callers may discard it);
// declarations and returns yield nil.
func ExecuteStatement(stmt *ast.Statement, scope *ast.Scope) (*ast.Variable, error) {
	switch stmt.Type {
	case ast.StatementUndefined:
		return nil, nil

	case ast.StatementExpression:
		result, err := ExecuteExpression(stmt.Expr, scope)
		if err != nil {
			return nil, err
		}
		return result.ToVariable(scope), nil

	case ast.StatementDeclaration:
		result, err := ExecuteExpression(stmt.Expr, scope)
		if err != nil {
			return nil, err
		}
		cell := result.ToVariable(scope)
		if cell.Name == "" {
			return nil, ErrNamelessDeclaration
		}
		// Re-declaring a name in the same scope assigns into the
		// existing cell, so every alias of that cell observes the new
		// state. A new name appends to the environment and becomes
		// visible to the statements that follow.
		if existing, ok := scope.LookupLocal(cell.Name); ok {
			existing.Assign(cell)
			return nil, nil
		}
		scope.Append(cell)
		return nil, nil

	case ast.StatementReturn:
		result, err := ExecuteExpression(stmt.Expr, scope)
		if err != nil {
			return nil, err
		}
		scope.ReturnValue = result.ToVariable(scope)
		return nil, nil
	}
	return nil, nil
}

// ExecuteExpression reduces an expression to a VVA against the scope.
//
// An identifier reference is returned unresolved, so that an enclosing
// `.` operation can read it as a member name; any other value
// materializes into a fresh cell. An operation evaluates its left
// operand to a cell, then its right operand, and applies the operator —
// dispatching to the member-name variant when the right side is an
// identifier under `.`.
func ExecuteExpression(expr *ast.Expression, scope *ast.Scope) (VVA, error) {
	switch expr.Type {
	case ast.ExpressionUndefined:
		return VVA{Variable: ast.NewCell(ast.NewUndefined())}, nil

	case ast.ExpressionValue:
		if expr.Value.Type == ast.ValueVariableName {
			return VVA{Value: expr.Value}, nil
		}
		return VVA{Variable: constructVariable(expr.Value, scope)}, nil

	case ast.ExpressionOperation:
		leftResult, err := ExecuteExpression(expr.Left, scope)
		if err != nil {
			return VVA{}, err
		}
		left := leftResult.ToVariable(scope)

		rightResult, err := ExecuteExpression(expr.Right, scope)
		if err != nil {
			return VVA{}, err
		}

		if rightResult.Variable == nil &&
			rightResult.Value.Type == ast.ValueVariableName &&
			expr.Operator == "." {
			member, err := applyMemberOperator(left, rightResult.Value.Variable)
			if err != nil {
				return VVA{}, err
			}
			return VVA{Variable: member}, nil
		}

		result, err := applyOperator(left, rightResult.ToVariable(scope), expr.Operator, scope)
		if err != nil {
			return VVA{}, err
		}
		return VVA{Variable: result}, nil
	}
	return VVA{}, fmt.Errorf("%w: malformed expression node", ErrTypeMismatch)
}

// constructVariable materializes a value into a cell.
//
// An identifier reference walks the scope chain and returns the
// nearest-enclosing cell of that name. An unbound name fabricates a
// fresh named Undefined cell — the cell is not inserted into any scope;
// it only carries the name forward to a potential `let` adoption.
// Constants materialize into fresh anonymous cells.
func constructVariable(value *ast.Value, scope *ast.Scope) *ast.Variable {
	switch value.Type {
	case ast.ValueVariableName:
		if cell, ok := scope.Lookup(value.Variable); ok {
			return cell
		}
		return ast.NewNamedCell(value.Variable, ast.NewUndefined())
	case ast.ValueConstant:
		return ast.NewCell(*value.Constant)
	}
	return ast.NewCell(ast.NewUndefined())
}
