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

package effect

import (
	"fmt"
	"strings"

	"github.com/specmc-lang/specmc/util"
)

// VarsKind is the tag of a Vars value.
type VarsKind int

// Each VarsKind is one of the three variable-bag shapes.
const (
	// VarsConcrete is a finite bag of state-variable names.
	VarsConcrete VarsKind = iota
	// VarsQuantified is a metavariable standing for an unknown bag.
	VarsQuantified
	// VarsUnion is an unresolved union of child bags.
	VarsUnion
)

// String renders the VarsKind name, for debugging and panic messages.
func (k VarsKind) String() string {
	switch k {
	case VarsConcrete:
		return "ConcreteVars"
	case VarsQuantified:
		return "QuantifiedVars"
	case VarsUnion:
		return "UnionVars"
	}
	return "unknown"
}

// Vars is an unordered (except inside Names, where order is preserved for
// duplicate detection) multiset of state-variable names, possibly
// quantified or an unresolved union of other bags.
type Vars struct {
	Kind VarsKind

	Names []string // if Kind == VarsConcrete

	Name string // if Kind == VarsQuantified

	Children []*Vars // if Kind == VarsUnion
}

// NewConcreteVars returns a concrete bag containing the given names, in the
// order given. Duplicates are preserved; see UniqueVars to collapse them.
func NewConcreteVars(names ...string) *Vars {
	return &Vars{Kind: VarsConcrete, Names: names}
}

// EmptyVars returns the empty concrete bag.
func EmptyVars() *Vars {
	return NewConcreteVars()
}

// NewQuantifiedVars returns a bag metavariable with the given name.
func NewQuantifiedVars(name string) *Vars {
	return &Vars{Kind: VarsQuantified, Name: name}
}

// NewUnionVars returns the unresolved union of the given child bags. Callers
// that need the flattening invariant enforced should pass the result
// through FlattenUnions.
func NewUnionVars(children ...*Vars) *Vars {
	return &Vars{Kind: VarsUnion, Children: children}
}

func (v *Vars) isEmptyConcrete() bool {
	return v != nil && v.Kind == VarsConcrete && len(v.Names) == 0
}

// String renders the bag using the stable grammar: concrete names are
// single-quoted and comma-separated, a quantified bag is its bare name, and
// a union bag is comma-separated across all of its members (recursively).
func (v *Vars) String() string {
	if v == nil {
		return "<nil vars>"
	}
	switch v.Kind {
	case VarsConcrete:
		parts := make([]string, len(v.Names))
		for i, n := range v.Names {
			parts[i] = fmt.Sprintf("'%s'", n)
		}
		return strings.Join(parts, ", ")

	case VarsQuantified:
		return v.Name

	case VarsUnion:
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = c.String()
		}
		return strings.Join(parts, ", ")
	}
	panic("malformed vars")
}

// Cmp compares this bag to another. For two ConcreteVars it compares the
// sorted list of names (the "same variables" sense of equality used by the
// unifier), which is multiset equality once the caller has already
// deduplicated where that matters (read bags; update bags intentionally
// preserve duplicates so that Trying-to-simplify can detect them first).
func (v *Vars) Cmp(other *Vars) error {
	if v == nil || other == nil {
		return fmt.Errorf("cannot compare to nil vars")
	}
	if v.Kind != other.Kind {
		return fmt.Errorf("vars kind does not match (%s != %s)", v.Kind, other.Kind)
	}
	switch v.Kind {
	case VarsConcrete:
		if !util.StrSortedEqual(v.Names, other.Names) {
			return fmt.Errorf("expected variables [%s] and [%s] to be the same", strings.Join(v.Names, ", "), strings.Join(other.Names, ", "))
		}
		return nil

	case VarsQuantified:
		if v.Name != other.Name {
			return fmt.Errorf("quantified vars names differ (%s != %s)", v.Name, other.Name)
		}
		return nil

	case VarsUnion:
		if len(v.Children) != len(other.Children) {
			return fmt.Errorf("union arity differs (%d != %d)", len(v.Children), len(other.Children))
		}
		for i := range v.Children {
			if err := v.Children[i].Cmp(other.Children[i]); err != nil {
				return fmt.Errorf("union child %d: %w", i, err)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown vars kind")
}

// Equal is a convenience boolean wrapper around Cmp.
func (v *Vars) Equal(other *Vars) bool {
	return v.Cmp(other) == nil
}

// Copy makes a deep copy of the bag.
func (v *Vars) Copy() *Vars {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case VarsConcrete:
		names := make([]string, len(v.Names))
		copy(names, v.Names)
		return NewConcreteVars(names...)
	case VarsQuantified:
		return NewQuantifiedVars(v.Name)
	case VarsUnion:
		children := make([]*Vars, len(v.Children))
		for i, c := range v.Children {
			children[i] = c.Copy()
		}
		return NewUnionVars(children...)
	}
	panic("malformed vars")
}
