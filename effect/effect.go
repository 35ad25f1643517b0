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

// Package effect defines the data language of the read/update effect
// system: effects, variable-bags, substitutions, and the error trees that
// unification and simplification produce when an effect is ill-formed. It
// corresponds to the "Effect Algebra" component of the design: canonical
// forms, equality, and construction, but not unification or substitution
// application, which live in the sibling unify and subst packages.
package effect

import (
	"fmt"
	"strings"
)

// Kind is the tag of an Effect value.
type Kind int

// Each Kind is one of the three effect shapes the language supports.
const (
	// KindQuantified is a metavariable standing for an unknown effect.
	KindQuantified Kind = iota
	// KindArrow is the effect of an operator taking len(Params) arguments.
	KindArrow
	// KindConcrete is a ground effect with a read and an update bag.
	KindConcrete
)

// String renders the Kind name, mostly for debugging and panic messages.
func (k Kind) String() string {
	switch k {
	case KindQuantified:
		return "Quantified"
	case KindArrow:
		return "Arrow"
	case KindConcrete:
		return "Concrete"
	}
	return "unknown"
}

// Effect is the datastructure representing any effect. It is recursive for
// the Arrow and Concrete shapes, analogous to how a type-like language
// represents container types.
type Effect struct {
	Kind Kind

	Name string // if Kind == KindQuantified, the metavariable name

	Params []*Effect // if Kind == KindArrow, the parameter effects
	Result *Effect   // if Kind == KindArrow, the result effect

	Read   *Vars // if Kind == KindConcrete
	Update *Vars // if Kind == KindConcrete
}

// NewQuantified returns a quantified effect with the given metavariable name.
func NewQuantified(name string) *Effect {
	return &Effect{Kind: KindQuantified, Name: name}
}

// NewArrow returns the Arrow effect of an operator with the given parameter
// effects and result effect.
func NewArrow(params []*Effect, result *Effect) *Effect {
	return &Effect{Kind: KindArrow, Params: params, Result: result}
}

// NewConcrete returns a ground effect reading and updating the given bags.
func NewConcrete(read, update *Vars) *Effect {
	return &Effect{Kind: KindConcrete, Read: read, Update: update}
}

// Pure is shorthand for the ground effect that reads and updates nothing.
func Pure() *Effect {
	return NewConcrete(EmptyVars(), EmptyVars())
}

// String renders the effect using the stable concrete grammar that
// downstream consumers (printers, LSP hover, error messages) depend on:
//
//	pure concrete:   Pure
//	read-only:       Read['x', 'y']
//	update-only:     Update['x']
//	read+update:     Read['x'] & Update['y']
//	quantified:      the bare name, e.g. e
//	arrow:           (E1, E2) => E3
func (e *Effect) String() string {
	if e == nil {
		return "<nil effect>"
	}
	switch e.Kind {
	case KindQuantified:
		return e.Name

	case KindArrow:
		parts := make([]string, len(e.Params))
		for i, p := range e.Params {
			parts[i] = p.String()
		}
		return fmt.Sprintf("(%s) => %s", strings.Join(parts, ", "), e.Result.String())

	case KindConcrete:
		readEmpty := e.Read.isEmptyConcrete()
		updateEmpty := e.Update.isEmptyConcrete()
		switch {
		case readEmpty && updateEmpty:
			return "Pure"
		case updateEmpty:
			return fmt.Sprintf("Read[%s]", e.Read.String())
		case readEmpty:
			return fmt.Sprintf("Update[%s]", e.Update.String())
		default:
			return fmt.Sprintf("Read[%s] & Update[%s]", e.Read.String(), e.Update.String())
		}
	}
	panic("malformed effect")
}

// Cmp compares this effect to another for structural equality. It returns
// nil if they're the same shape with the same contents, or a descriptive
// error pinpointing the first mismatch otherwise.
func (e *Effect) Cmp(other *Effect) error {
	if e == nil || other == nil {
		return fmt.Errorf("cannot compare to nil effect")
	}
	if e.Kind != other.Kind {
		return fmt.Errorf("effect kind does not match (%s != %s)", e.Kind, other.Kind)
	}
	switch e.Kind {
	case KindQuantified:
		if e.Name != other.Name {
			return fmt.Errorf("quantified effect names differ (%s != %s)", e.Name, other.Name)
		}
		return nil

	case KindArrow:
		if len(e.Params) != len(other.Params) {
			return fmt.Errorf("arrow arity differs (%d != %d)", len(e.Params), len(other.Params))
		}
		for i := range e.Params {
			if err := e.Params[i].Cmp(other.Params[i]); err != nil {
				return fmt.Errorf("arrow param %d: %w", i, err)
			}
		}
		return e.Result.Cmp(other.Result)

	case KindConcrete:
		if err := e.Read.Cmp(other.Read); err != nil {
			return fmt.Errorf("read bag: %w", err)
		}
		if err := e.Update.Cmp(other.Update); err != nil {
			return fmt.Errorf("update bag: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown effect kind")
}

// Equal is a convenience boolean wrapper around Cmp.
func (e *Effect) Equal(other *Effect) bool {
	return e.Cmp(other) == nil
}

// Copy makes a deep copy of the effect so that in-place modification of the
// result won't affect the original.
func (e *Effect) Copy() *Effect {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindQuantified:
		return NewQuantified(e.Name)
	case KindArrow:
		params := make([]*Effect, len(e.Params))
		for i, p := range e.Params {
			params[i] = p.Copy()
		}
		return NewArrow(params, e.Result.Copy())
	case KindConcrete:
		return NewConcrete(e.Read.Copy(), e.Update.Copy())
	}
	panic("malformed effect")
}
