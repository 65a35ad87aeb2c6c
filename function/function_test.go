/*
File    : go-mica/function/function_test.go
Project : Mica
*/
package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/go-mica/ast"
	"github.com/mica-lang/go-mica/function"
)

// intExpr builds a constant integer expression.
func intExpr(value int64) *ast.Expression {
	return ast.NewValueExpression(ast.NewConstantValue(ast.NewInteger(value)))
}

// nameExpr builds an identifier reference expression.
func nameExpr(name string) *ast.Expression {
	return ast.NewValueExpression(ast.NewVariableName(name))
}

// addBody builds the body scope of `function(a, b) { return a + b; }`.
func addBody() *ast.Scope {
	body := ast.NewScope(nil)
	body.Statements = append(body.Statements, ast.NewReturnStatement(
		ast.NewOperationExpression(nameExpr("a"), "+", nameExpr("b"))))
	return body
}

func TestFunction_Call_BindsArguments(t *testing.T) {
	fn := function.New([]string{"a", "b"}, addBody())
	caller := ast.NewScope(nil)

	result, err := fn.Call(&ast.Tuple{Expressions: []*ast.Expression{intExpr(2), intExpr(3)}}, caller)
	require.NoError(t, err)
	assert.Equal(t, ast.IntegerType, result.Constant.Type)
	assert.Equal(t, int64(5), result.Constant.Integer)
}

func TestFunction_Call_MissingArgumentsBindUndefined(t *testing.T) {
	body := ast.NewScope(nil)
	body.Statements = append(body.Statements, ast.NewReturnStatement(nameExpr("b")))
	fn := function.New([]string{"a", "b"}, body)

	result, err := fn.Call(&ast.Tuple{Expressions: []*ast.Expression{intExpr(1)}}, ast.NewScope(nil))
	require.NoError(t, err)
	assert.Equal(t, ast.UndefinedType, result.Constant.Type)
}

func TestFunction_Call_ExtraArgumentsNotEvaluated(t *testing.T) {
	// The extra argument divides by zero; it must be discarded without
	// ever being evaluated.
	body := ast.NewScope(nil)
	body.Statements = append(body.Statements, ast.NewReturnStatement(nameExpr("a")))
	fn := function.New([]string{"a"}, body)

	poison := ast.NewOperationExpression(intExpr(1), "/", intExpr(0))
	result, err := fn.Call(&ast.Tuple{Expressions: []*ast.Expression{intExpr(4), poison}}, ast.NewScope(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Constant.Integer)
}

func TestFunction_Call_EmptyBodyYieldsUndefined(t *testing.T) {
	fn := function.New(nil, ast.NewScope(nil))

	result, err := fn.Call(&ast.Tuple{}, ast.NewScope(nil))
	require.NoError(t, err)
	assert.Equal(t, ast.UndefinedType, result.Constant.Type)
}

func TestFunction_Call_ParentIsCallerScope(t *testing.T) {
	// The body reads a free name; it must resolve through the caller's
	// scope, because the call frame's parent is re-pointed there.
	body := ast.NewScope(nil)
	body.Statements = append(body.Statements, ast.NewReturnStatement(nameExpr("free")))
	fn := function.New(nil, body)

	caller := ast.NewScope(nil)
	caller.Append(ast.NewNamedCell("free", ast.NewInteger(21)))

	result, err := fn.Call(&ast.Tuple{}, caller)
	require.NoError(t, err)
	assert.Equal(t, int64(21), result.Constant.Integer)
}

func TestFunction_Call_FramesAreIndependent(t *testing.T) {
	// Two calls of the same function must not see each other's
	// bindings or return slots.
	body := ast.NewScope(nil)
	body.Statements = append(body.Statements, ast.NewReturnStatement(nameExpr("a")))
	fn := function.New([]string{"a"}, body)
	caller := ast.NewScope(nil)

	first, err := fn.Call(&ast.Tuple{Expressions: []*ast.Expression{intExpr(1)}}, caller)
	require.NoError(t, err)
	second, err := fn.Call(&ast.Tuple{Expressions: []*ast.Expression{intExpr(2)}}, caller)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Constant.Integer)
	assert.Equal(t, int64(2), second.Constant.Integer)
	assert.Empty(t, fn.Scope.Variables)
	assert.Nil(t, fn.Scope.ReturnValue)
}

func TestFunction_Call_ArgumentsBindCopies(t *testing.T) {
	// The parameter cell copies the evaluated argument cell's state, so
	// mutating the parameter leaves the caller's cell alone.
	body := ast.NewScope(nil)
	body.Statements = append(body.Statements, ast.NewExpressionStatement(
		ast.NewOperationExpression(nameExpr("x"), "+=", intExpr(1))))
	fn := function.New([]string{"x"}, body)

	caller := ast.NewScope(nil)
	cell := ast.NewNamedCell("a", ast.NewInteger(10))
	caller.Append(cell)

	_, err := fn.Call(&ast.Tuple{Expressions: []*ast.Expression{nameExpr("a")}}, caller)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cell.Constant.Integer)
}

func TestFunction_ParamsAndBody(t *testing.T) {
	body := addBody()
	fn := function.New([]string{"a", "b"}, body)

	assert.Equal(t, []string{"a", "b"}, fn.Params())
	assert.Same(t, body, fn.BodyScope())
}
