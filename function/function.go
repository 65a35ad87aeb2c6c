/*
File    : go-mica/function/function.go
Project : Mica
*/
package function

import (
	"github.com/mica-lang/go-mica/ast"
	"github.com/mica-lang/go-mica/eval"
)

// Function is a user-defined Mica function: an ordered parameter-name
// list and the parsed body scope. It is one of the two Callable
// implementations (the other being host builtins in the std package).
//
// The body scope is shared by every call; each invocation executes a
// fresh call frame cloned from it, so recursive and repeated calls do
// not see each other's bindings.
type Function struct {
	Args  []string   // Parameter names, in declaration order
	Scope *ast.Scope // Parsed function body
}

// New creates a function value over the given parameters and body.
func New(args []string, scope *ast.Scope) *Function {
	return &Function{Args: args, Scope: scope}
}

// Call invokes the function with the call-site argument tuple and the
// caller's scope:
//
//  1. A fresh call frame is cloned from the body scope (statements
//     shared, environment empty).
//  2. Each parameter binds a fresh named cell. If the tuple has an
//     argument expression at that index it is evaluated in the caller's
//     scope and its state copied into the cell; otherwise the cell
//     holds Undefined. Extra arguments beyond the parameter count are
//     discarded.
//  3. The frame's parent is re-pointed to the caller's scope, so free
//     names resolve through the call chain.
//  4. The frame executes; its return slot, or a fresh Undefined cell,
//     is the result.
func (f *Function) Call(args *ast.Tuple, caller *ast.Scope) (*ast.Variable, error) {
	frame := f.Scope.CallClone()

	for i, name := range f.Args {
		cell := ast.NewNamedCell(name, ast.NewUndefined())
		if i < len(args.Expressions) {
			result, err := eval.ExecuteExpression(args.Expressions[i], caller)
			if err != nil {
				return nil, err
			}
			cell.Assign(result.ToVariable(caller))
		}
		frame.Append(cell)
	}

	frame.Parent = caller
	if _, err := eval.ExecuteScope(frame); err != nil {
		return nil, err
	}
	if frame.ReturnValue != nil {
		return frame.ReturnValue, nil
	}
	return ast.NewCell(ast.NewUndefined()), nil
}

// Params returns the parameter names for debug dumping.
func (f *Function) Params() []string {
	return f.Args
}

// BodyScope returns the parsed body for debug dumping.
func (f *Function) BodyScope() *ast.Scope {
	return f.Scope
}
