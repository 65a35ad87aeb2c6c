/*
File    : go-mica/eval/operators.go
Project : Mica
*/
package eval

import (
	"fmt"

	"github.com/mica-lang/go-mica/ast"
)

// applyOperator applies a binary operator to two operand cells and
// yields the result cell.
//
// Assignment and compound assignment mutate the left cell in place and
// yield it; plain arithmetic yields a fresh cell; the call operator
// dispatches through the left cell's callable. Operators that parse but
// have no evaluation rule (the comparison operators among them) fail
// with ErrUnknownOperator.
func applyOperator(left, right *ast.Variable, operator string, scope *ast.Scope) (*ast.Variable, error) {
	switch operator {
	case "=":
		left.Assign(right)
		return left, nil

	case "(":
		return applyCall(left, right, scope)

	case "+", "-", "*", "/":
		return applyArithmetic(left, right, operator)

	case "+=", "-=", "*=", "/=":
		return applyCompound(left, right, operator)
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownOperator, operator)
}

// applyCall invokes the callable held by the left cell with the
// argument tuple held by the right cell. An Undefined callee yields a
// fresh Undefined cell; anything else that is not a function is a type
// error. Argument expressions are evaluated by the callee against the
// caller's scope.
func applyCall(left, right *ast.Variable, scope *ast.Scope) (*ast.Variable, error) {
	switch left.Constant.Type {
	case ast.UndefinedType:
		return ast.NewCell(ast.NewUndefined()), nil
	case ast.FunctionType:
		if right.Constant.Type != ast.TupleType {
			return nil, fmt.Errorf("%w: call requires an argument tuple", ErrTypeMismatch)
		}
		return left.Constant.Function.Call(right.Constant.Tuple, scope)
	}
	return nil, fmt.Errorf("%w: cannot call a value of type %s", ErrTypeMismatch, left.Constant.Type)
}

// applyArithmetic applies + - * / and yields a fresh result cell. An
// Undefined left operand yields a fresh Undefined cell without looking
// at the right operand; an integer left operand requires an integer
// right operand.
func applyArithmetic(left, right *ast.Variable, operator string) (*ast.Variable, error) {
	switch left.Constant.Type {
	case ast.UndefinedType:
		return ast.NewCell(ast.NewUndefined()), nil
	case ast.IntegerType:
		result, err := integerResult(left.Constant.Integer, right, operator)
		if err != nil {
			return nil, err
		}
		return ast.NewCell(ast.NewInteger(result)), nil
	}
	return nil, fmt.Errorf("%w: '%s' on a value of type %s", ErrTypeMismatch, operator, left.Constant.Type)
}

// applyCompound applies += -= *= /= by mutating the left cell in place
// and yielding it. The Undefined-left rule matches plain arithmetic:
// the result is a fresh Undefined cell and the left cell is untouched.
func applyCompound(left, right *ast.Variable, operator string) (*ast.Variable, error) {
	base := operator[:1]
	switch left.Constant.Type {
	case ast.UndefinedType:
		return ast.NewCell(ast.NewUndefined()), nil
	case ast.IntegerType:
		result, err := integerResult(left.Constant.Integer, right, base)
		if err != nil {
			return nil, err
		}
		left.Constant = ast.NewInteger(result)
		return left, nil
	}
	return nil, fmt.Errorf("%w: '%s' on a value of type %s", ErrTypeMismatch, operator, left.Constant.Type)
}

// integerResult computes one integer arithmetic operation, requiring an
// integer right operand and rejecting division by zero.
func integerResult(left int64, right *ast.Variable, operator string) (int64, error) {
	if right.Constant.Type != ast.IntegerType {
		return 0, fmt.Errorf("%w: '%s' requires an integer right operand, got %s",
			ErrTypeMismatch, operator, right.Constant.Type)
	}
	r := right.Constant.Integer
	switch operator {
	case "+":
		return left + r, nil
	case "-":
		return left - r, nil
	case "*":
		return left * r, nil
	case "/":
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return left / r, nil
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownOperator, operator)
}

// applyMemberOperator resolves the member-name variant of `.`: the
// right operand is the unresolved identifier string, looked up among
// the left cell's members. A missing member is fatal.
func applyMemberOperator(left *ast.Variable, name string) (*ast.Variable, error) {
	if member, ok := left.Member(name); ok {
		return member, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrNoSuchMember, name)
}
