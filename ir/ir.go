// Mgmt
// Copyright (C) 2013-2020+ James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package ir is the node-based module representation the effect
// inferencer walks: operator applications, name references, literals,
// lambdas, and let-binders, plus the Signature type and the table that
// built-in operators are registered in and looked up from.
package ir

import "fmt"

// NodeID stably identifies a node within a module, for keying an EffectMap
// or an ErrorTree map.
type NodeID int64

// NodeKind is the tag of a Node value.
type NodeKind int

// Each NodeKind is one of the shapes the effect inferencer handles.
const (
	// NodeLiteral is a constant; it reads and updates nothing.
	NodeLiteral NodeKind = iota
	// NodeVarRead reads a single state variable.
	NodeVarRead
	// NodeVarUpdate updates a single state variable.
	NodeVarUpdate
	// NodeApply is an operator application f(a1..an).
	NodeApply
	// NodeLet is a binder: a name bound to a value expression, in scope
	// for a body expression.
	NodeLet
	// NodeLambda introduces one fresh effect per formal parameter.
	NodeLambda
	// NodeNameRef refers back to a name bound by an enclosing Let or
	// Lambda; its effect is whatever that binding's effect turned out to
	// be. It's distinct from NodeVarRead/NodeVarUpdate, which name a
	// state variable rather than a lexically bound identifier.
	NodeNameRef
)

// String renders the NodeKind name, for debugging and error messages.
func (k NodeKind) String() string {
	switch k {
	case NodeLiteral:
		return "Literal"
	case NodeVarRead:
		return "VarRead"
	case NodeVarUpdate:
		return "VarUpdate"
	case NodeApply:
		return "Apply"
	case NodeLet:
		return "Let"
	case NodeLambda:
		return "Lambda"
	case NodeNameRef:
		return "NameRef"
	}
	return "unknown"
}

// Node is a single point in the IR the inferencer assigns an effect to.
// Which fields are meaningful depends on Kind, mirroring the effect
// package's own tagged-union shape.
type Node struct {
	ID   NodeID
	Kind NodeKind

	// Var names the state variable for NodeVarRead and NodeVarUpdate.
	Var string

	// Ref names the lexically bound identifier for NodeNameRef.
	Ref string

	// Opcode names the operator for NodeApply; Args are its operands.
	Opcode string
	Args   []*Node

	// Name and Value are the bound name and its defining expression for
	// NodeLet; Body is the expression evaluated in the extended scope.
	Name  string
	Value *Node
	Body  *Node

	// Params names the formal parameters for NodeLambda; Body is the
	// lambda's body expression, inferred under fresh effects for each.
	Params []string
}

// Def is a named top-level binding in a Module.
type Def struct {
	Name string
	Node *Node
}

// Module is an ordered list of top-level definitions.
type Module struct {
	Defs []*Def
}

// Validate checks that every NodeID appearing in the module is unique,
// which the inferencer's per-node EffectMap and error map both depend on.
func (m *Module) Validate() error {
	seen := map[NodeID]bool{}
	var walk func(*Node) error
	walk = func(n *Node) error {
		if n == nil {
			return nil
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %d", n.ID)
		}
		seen[n.ID] = true
		for _, a := range n.Args {
			if err := walk(a); err != nil {
				return err
			}
		}
		if err := walk(n.Value); err != nil {
			return err
		}
		return walk(n.Body)
	}
	for _, d := range m.Defs {
		if err := walk(d.Node); err != nil {
			return fmt.Errorf("definition %s: %w", d.Name, err)
		}
	}
	return nil
}

// Children returns the node's direct sub-expressions in evaluation order,
// so that a traversal can be written once and reused by every consumer
// that needs to walk a node's children without a kind switch of its own.
func (n *Node) Children() []*Node {
	switch n.Kind {
	case NodeApply:
		return n.Args
	case NodeLet:
		return []*Node{n.Value, n.Body}
	case NodeLambda:
		return []*Node{n.Body}
	default:
		return nil
	}
}
