/*
File    : go-mica/ast/ast_test.go
Project : Mica
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariable_Assign_CopiesState(t *testing.T) {
	source := NewNamedCell("src", NewInteger(7))
	source.Members = append(source.Members, NewNamedCell("m", NewInteger(1)))

	target := NewNamedCell("dst", NewUndefined())
	target.Assign(source)

	// The target keeps its own name but takes the source's state.
	assert.Equal(t, "dst", target.Name)
	assert.Equal(t, IntegerType, target.Constant.Type)
	assert.Equal(t, int64(7), target.Constant.Integer)

	// The member list is copied, the member cells stay shared.
	assert.Equal(t, 1, len(target.Members))
	assert.Same(t, source.Members[0], target.Members[0])

	// Later mutation of the source constant does not reach the target.
	source.Constant = NewInteger(99)
	assert.Equal(t, int64(7), target.Constant.Integer)
}

func TestVariable_Member(t *testing.T) {
	owner := NewNamedCell("a", NewUndefined())
	inner := NewNamedCell("b", NewInteger(3))
	owner.Members = append(owner.Members, inner)

	found, ok := owner.Member("b")
	assert.True(t, ok)
	assert.Same(t, inner, found)

	_, ok = owner.Member("c")
	assert.False(t, ok)
}

func TestVariable_Dump(t *testing.T) {
	assert.Equal(t, "a : 7", NewNamedCell("a", NewInteger(7)).Dump())
	assert.Equal(t, "nameless : Undefined", NewCell(NewUndefined()).Dump())
}

func TestScope_Lookup_NearestEnclosing(t *testing.T) {
	root := NewScope(nil)
	outer := NewNamedCell("a", NewInteger(1))
	root.Append(outer)

	child := NewScope(root)
	inner := NewNamedCell("a", NewInteger(2))
	child.Append(inner)

	// The child's binding shadows the root's.
	found, ok := child.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, inner, found)

	// The root still sees its own cell.
	found, ok = root.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, outer, found)

	// Names bound only in the parent resolve through the chain.
	root.Append(NewNamedCell("b", NewInteger(3)))
	found, ok = child.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, int64(3), found.Constant.Integer)

	_, ok = child.Lookup("missing")
	assert.False(t, ok)
}

func TestScope_LookupLocal_IgnoresParents(t *testing.T) {
	root := NewScope(nil)
	root.Append(NewNamedCell("a", NewInteger(1)))
	child := NewScope(root)

	_, ok := child.LookupLocal("a")
	assert.False(t, ok)
}

func TestScope_CallClone(t *testing.T) {
	body := NewScope(nil)
	body.Statements = append(body.Statements, NewReturnStatement(
		NewValueExpression(NewConstantValue(NewInteger(1)))))
	body.Append(NewNamedCell("leftover", NewInteger(9)))
	body.ReturnValue = NewCell(NewInteger(1))

	frame := body.CallClone()

	// Statements are shared; environment, parent, and return slot are
	// fresh.
	assert.Equal(t, len(body.Statements), len(frame.Statements))
	assert.Same(t, body.Statements[0], frame.Statements[0])
	assert.Empty(t, frame.Variables)
	assert.Nil(t, frame.Parent)
	assert.Nil(t, frame.ReturnValue)
}

func TestExpression_Dump(t *testing.T) {
	left := NewValueExpression(NewConstantValue(NewInteger(1)))
	right := NewValueExpression(NewVariableName("a"))
	op := NewOperationExpression(left, "+", right)

	assert.Equal(t, "(const : 1 [+] var : a)", op.Dump())
}

func TestStatement_Dump(t *testing.T) {
	expr := NewValueExpression(NewConstantValue(NewInteger(5)))

	assert.Equal(t, "[expression : const : 5]", NewExpressionStatement(expr).Dump())
	assert.Equal(t, "[let : const : 5]", NewDeclarationStatement(expr).Dump())
	assert.Equal(t, "[return : const : 5]", NewReturnStatement(expr).Dump())
}

func TestTuple_Dump(t *testing.T) {
	tuple := &Tuple{Expressions: []*Expression{
		NewValueExpression(NewConstantValue(NewInteger(1))),
		NewValueExpression(NewVariableName("x")),
	}}
	assert.Equal(t, "( const : 1, var : x, )", tuple.Dump())
}

func TestConstant_ToString(t *testing.T) {
	assert.Equal(t, "Undefined", NewUndefined().ToString())
	assert.Equal(t, "42", NewInteger(42).ToString())
	assert.Equal(t, "-3", NewInteger(-3).ToString())
}
