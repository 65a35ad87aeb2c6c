/*
File    : go-mica/ast/variable.go
Project : Mica
*/
package ast

// Variable is a mutable storage cell: an optional name, a current
// constant, and a list of named member cells reachable through the `.`
// operator. Cells are shared by reference — several scopes, members, or
// evaluation results may hold the same cell — so assignment mutates the
// cell in place and is observable through every alias.
type Variable struct {
	Name     string      // Binding name; empty for anonymous result cells
	Constant Constant    // The current value held by the cell
	Members  []*Variable // Named member cells, accessed with `.`
}

// NewCell returns a fresh anonymous cell holding the given constant.
func NewCell(constant Constant) *Variable {
	return &Variable{Constant: constant}
}

// NewNamedCell returns a fresh named cell holding the given constant.
func NewNamedCell(name string, constant Constant) *Variable {
	return &Variable{Name: name, Constant: constant}
}

// Assign copies the other cell's state (constant and member list) into
// this cell in place. The member cells themselves stay shared; only the
// list is copied. The cell's name is untouched.
func (v *Variable) Assign(other *Variable) {
	v.Constant = other.Constant
	v.Members = append([]*Variable(nil), other.Members...)
}

// Member returns the member cell with the given name, if any.
func (v *Variable) Member(name string) (*Variable, bool) {
	for _, m := range v.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// ToString returns the user-facing rendering of the cell's value.
func (v *Variable) ToString() string {
	return v.Constant.ToString()
}

// Dump returns the debug rendering of the cell as "name : value",
// using "nameless" for anonymous cells.
func (v *Variable) Dump() string {
	result := "nameless"
	if v.Name != "" {
		result = v.Name
	}
	result += " : "
	result += v.Constant.Dump()
	return result
}
