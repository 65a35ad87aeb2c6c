/*
File    : go-mica/ast/ast.go
Project : Mica
*/

// Package ast defines the core data model of the Mica programming language:
// the expression and statement trees produced by the parser, the constant
// payloads they carry, and the runtime scope/variable structures the
// evaluator executes against.
//
// The parse-time and runtime halves of the model are mutually recursive
// (a function constant carries a body scope, a scope holds statements,
// a statement holds expressions, an expression can hold a function
// constant), so the whole model lives in a single package. Every variant
// type is a closed tagged union: a type tag plus the fields valid for
// that tag, matched exhaustively by consumers.
package ast

import "fmt"

// ConstantType identifies the kind of a Constant payload.
// These constants are used for type checking across the evaluator.
type ConstantType string

const (
	// UndefinedType represents the absence of a meaningful value
	UndefinedType ConstantType = "undefined"
	// IntegerType represents 64-bit signed integer values
	IntegerType ConstantType = "int"
	// FunctionType represents callable values (user-defined or builtin)
	FunctionType ConstantType = "func"
	// TupleType represents call-site argument lists (unevaluated expressions)
	TupleType ConstantType = "tuple"
)

// Constant is a value payload: one of Undefined, Integer, Function, or
// Tuple. The Type tag decides which of the payload fields is meaningful.
// Copying a Constant copies the tag and the integer, and shares the
// function/tuple payloads by reference.
type Constant struct {
	Type     ConstantType // Which variant this constant is
	Integer  int64        // Payload for IntegerType
	Function Callable     // Payload for FunctionType
	Tuple    *Tuple       // Payload for TupleType
}

// NewUndefined returns an Undefined constant.
func NewUndefined() Constant {
	return Constant{Type: UndefinedType}
}

// NewInteger returns an Integer constant holding the given value.
func NewInteger(value int64) Constant {
	return Constant{Type: IntegerType, Integer: value}
}

// NewFunction returns a Function constant holding the given callable.
func NewFunction(callable Callable) Constant {
	return Constant{Type: FunctionType, Function: callable}
}

// NewTuple returns a Tuple constant holding the given argument list.
func NewTuple(tuple *Tuple) Constant {
	return Constant{Type: TupleType, Tuple: tuple}
}

// ToString returns the user-facing rendering of the constant, as produced
// by the print builtin (e.g. "7" for an integer).
func (c Constant) ToString() string {
	switch c.Type {
	case UndefinedType:
		return "Undefined"
	case IntegerType:
		return fmt.Sprintf("%d", c.Integer)
	case FunctionType:
		return dumpCallable(c.Function)
	case TupleType:
		return c.Tuple.Dump()
	}
	return "Undefined"
}

// Dump returns the debug rendering of the constant. For constants the
// debug and user-facing forms coincide.
func (c Constant) Dump() string {
	return c.ToString()
}

// dumpCallable renders a callable as "function( a b ){...}" for
// user-defined functions, or marks the body as native code for builtins.
func dumpCallable(callable Callable) string {
	str := "function( "
	if params := callable.Params(); params != nil {
		for _, p := range params {
			str += p + " "
		}
	} else {
		str += "Undefined Arguments "
	}
	str += ")"
	if body := callable.BodyScope(); body != nil {
		str += body.Dump()
	} else {
		str += "{Native Code}"
	}
	return str
}

// Tuple carries the unevaluated argument expressions of a call site.
// A tuple is syntactic: it holds expressions, not values; the arguments
// are evaluated at call time against the caller's scope.
type Tuple struct {
	Expressions []*Expression // The argument expressions, in source order
}

// Dump returns the debug rendering of the tuple, e.g.
// "( const : 1, var : a, )".
func (t *Tuple) Dump() string {
	str := "( "
	for _, e := range t.Expressions {
		str += e.Dump()
		str += ", "
	}
	str += ")"
	return str
}

// Callable is the contract shared by user-defined functions and host
// builtins. Call receives the call-site argument tuple and the caller's
// scope; arguments are evaluated by the callee against that scope.
// Params and BodyScope expose the parameter list and body of user-defined
// functions for debug dumping; builtins return nil for both.
type Callable interface {
	// Call invokes the callable with unevaluated arguments and the
	// caller's scope, yielding the result cell.
	Call(args *Tuple, caller *Scope) (*Variable, error)
	// Params returns the parameter names, or nil for builtins
	Params() []string
	// BodyScope returns the parsed body, or nil for builtins
	BodyScope() *Scope
}

// ValueType identifies the kind of a Value literal.
type ValueType string

const (
	// ValueUndefined is an internal sentinel; never in a finished AST
	ValueUndefined ValueType = "undefined"
	// ValueVariableName is an identifier reference, resolved at eval time
	ValueVariableName ValueType = "variable"
	// ValueConstant is a literal constant payload
	ValueConstant ValueType = "constant"
)

// Value is the leaf payload of a value expression: either an identifier
// reference (resolved against the scope chain at evaluation time) or a
// constant. Exactly one of Variable and Constant is populated, matching
// the Type tag.
type Value struct {
	Type     ValueType // Which variant this value is
	Variable string    // Identifier name for ValueVariableName
	Constant *Constant // Payload for ValueConstant
}

// NewVariableName returns a Value referencing the given identifier.
func NewVariableName(name string) *Value {
	return &Value{Type: ValueVariableName, Variable: name}
}

// NewConstantValue returns a Value holding the given constant.
func NewConstantValue(constant Constant) *Value {
	return &Value{Type: ValueConstant, Constant: &constant}
}

// Dump returns the debug rendering of the value, e.g. "var : a" for an
// identifier reference or "const : 7" for a constant. A call argument
// tuple renders as the bare tuple, e.g. "( const : 1, )".
func (v *Value) Dump() string {
	switch v.Type {
	case ValueConstant:
		if v.Constant.Type == TupleType {
			return v.Constant.Dump()
		}
		return "const : " + v.Constant.Dump()
	case ValueVariableName:
		return "var : " + v.Variable
	}
	return "Undefined"
}

// ExpressionType identifies the kind of an Expression node.
type ExpressionType string

const (
	// ExpressionUndefined is an internal sentinel; never in a finished AST
	ExpressionUndefined ExpressionType = "undefined"
	// ExpressionValue carries a Value leaf
	ExpressionValue ExpressionType = "value"
	// ExpressionOperation is a binary node: left, operator, right
	ExpressionOperation ExpressionType = "operation"
)

// Expression is a node of the expression tree. A value node carries a
// Value leaf; an operation node carries both children and a non-empty
// operator lexeme. Expressions are immutable after parsing.
type Expression struct {
	Type     ExpressionType // Which variant this node is
	Left     *Expression    // Left operand for ExpressionOperation
	Right    *Expression    // Right operand for ExpressionOperation
	Value    *Value         // Payload for ExpressionValue
	Operator string         // Operator lexeme for ExpressionOperation
}

// NewValueExpression returns a value node wrapping the given leaf.
func NewValueExpression(value *Value) *Expression {
	return &Expression{Type: ExpressionValue, Value: value}
}

// NewOperationExpression returns a binary operation node.
func NewOperationExpression(left *Expression, operator string, right *Expression) *Expression {
	return &Expression{Type: ExpressionOperation, Left: left, Right: right, Operator: operator}
}

// Dump returns the debug rendering of the expression tree. Operation
// nodes render as "(left [op] right)", which makes precedence and
// associativity visible in test assertions.
func (e *Expression) Dump() string {
	switch e.Type {
	case ExpressionValue:
		return e.Value.Dump()
	case ExpressionOperation:
		str := "("
		str += e.Left.Dump()
		str += " ["
		str += e.Operator
		str += "] "
		str += e.Right.Dump()
		str += ")"
		return str
	}
	return "Undefined"
}
