/*
File    : go-mica/std/builtins.go
Project : Mica
*/

// Package std provides the host builtins of the Mica language. Builtins
// are Callable values seeded into the root scope before execution; they
// evaluate their argument expressions against the caller's scope, perform
// their side effect on a host writer, and always yield Undefined.
package std

import (
	"io"

	"github.com/mica-lang/go-mica/ast"
	"github.com/mica-lang/go-mica/eval"
)

// Callback is the native implementation of a builtin: it receives the
// host writer and the argument cells already evaluated in the caller's
// scope.
type Callback func(writer io.Writer, args []*ast.Variable) error

// Builtin is a host-provided Callable. It has no exposed parameter list
// and no body scope; Call evaluates the call-site argument expressions
// and hands the cells to the native callback.
type Builtin struct {
	Name     string    // Binding name seeded into the root scope
	Writer   io.Writer // Output sink for side effects
	Callback Callback  // Native implementation
}

// Call evaluates each argument expression against the caller's scope,
// runs the native callback, and yields a fresh Undefined cell.
func (b *Builtin) Call(args *ast.Tuple, caller *ast.Scope) (*ast.Variable, error) {
	cells := make([]*ast.Variable, 0, len(args.Expressions))
	for _, expr := range args.Expressions {
		result, err := eval.ExecuteExpression(expr, caller)
		if err != nil {
			return nil, err
		}
		cells = append(cells, result.ToVariable(caller))
	}
	if err := b.Callback(b.Writer, cells); err != nil {
		return nil, err
	}
	return ast.NewCell(ast.NewUndefined()), nil
}

// Params returns nil: builtins expose no parameter list.
func (b *Builtin) Params() []string { return nil }

// BodyScope returns nil: builtins have native bodies.
func (b *Builtin) BodyScope() *ast.Scope { return nil }

// Seed binds the standard builtins into the scope's environment, wiring
// their side effects to the given writer. The standard seed is:
//
//	print — writes each argument's value rendering, one per line
//	dump  — writes each argument's full cell dump (name : value)
func Seed(scope *ast.Scope, writer io.Writer) {
	for _, b := range []*Builtin{
		{Name: "print", Writer: writer, Callback: printCallback},
		{Name: "dump", Writer: writer, Callback: dumpCallback},
	} {
		scope.Append(ast.NewNamedCell(b.Name, ast.NewFunction(b)))
	}
}

// printCallback writes the value rendering of each argument cell.
func printCallback(writer io.Writer, args []*ast.Variable) error {
	for _, cell := range args {
		if _, err := io.WriteString(writer, cell.ToString()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// dumpCallback writes the debug dump of each argument cell.
func dumpCallback(writer io.Writer, args []*ast.Variable) error {
	for _, cell := range args {
		if _, err := io.WriteString(writer, cell.Dump()+"\n"); err != nil {
			return err
		}
	}
	return nil
}
