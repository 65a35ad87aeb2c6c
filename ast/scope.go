/*
File    : go-mica/ast/scope.go
Project : Mica
*/
package ast

// Scope is both a parse-time and a runtime concept: a body of statements,
// a link to the enclosing scope, the local environment (an ordered list
// of variable cells), and a return-value slot.
//
// The scope chain is traversed upward (from child to parent) during
// variable lookup, so an inner binding shadows an outer binding of the
// same name. The environment is an ordered slice rather than a map
// because insertion order is observable (a name becomes visible only
// after its `let`) and re-declaration must hit the same cell.
//
// The parent link is nil after parsing; at call time the function call
// sets it on the fresh call frame. The parent chain is always acyclic.
type Scope struct {
	Statements  []*Statement // The body, in document order
	Parent      *Scope       // Enclosing scope; nil for the root
	Variables   []*Variable  // Local environment, insertion-ordered
	ReturnValue *Variable    // Set once a return executes in this frame
}

// NewScope creates an empty scope with the given parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent}
}

// Lookup searches for a variable by name in this scope and all parent
// scopes, returning the first (nearest-enclosing) match. This implements
// the shadowing rule: a binding in an inner scope wins over the same
// name anywhere up the chain.
func (s *Scope) Lookup(name string) (*Variable, bool) {
	for _, v := range s.Variables {
		if v.Name == name {
			return v, true
		}
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// LookupLocal searches only this scope's own environment, without
// consulting parents. Used by `let` to decide between re-assigning an
// existing local cell and appending a new one.
func (s *Scope) LookupLocal(name string) (*Variable, bool) {
	for _, v := range s.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Append adds a cell to this scope's environment. The cell becomes
// visible to statements executed after the append.
func (s *Scope) Append(v *Variable) {
	s.Variables = append(s.Variables, v)
}

// CallClone returns a fresh call frame for this scope: the statements
// are shared, the environment starts empty, and the parent link and
// return slot are unset. The caller re-points the parent before
// executing the frame.
func (s *Scope) CallClone() *Scope {
	return &Scope{Statements: s.Statements}
}

// Dump returns the debug rendering of the scope: its statements, a
// separator, and its environment.
func (s *Scope) Dump() string {
	str := "{\n"
	for _, stmt := range s.Statements {
		str += stmt.Dump()
		str += "\n"
	}
	str += "---\n"
	for _, v := range s.Variables {
		str += v.Dump()
		str += "\n"
	}
	str += "}"
	return str
}
