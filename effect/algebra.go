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
	"sort"
	"strings"

	"github.com/specmc-lang/specmc/util"
)

// flattenCollect walks a (possibly nested) bag and splits its leaves into a
// flat list of concrete names and a flat list of non-concrete (quantified)
// children, inlining any nested unions along the way.
func flattenCollect(v *Vars) (concreteNames []string, nonConcrete []*Vars) {
	switch v.Kind {
	case VarsConcrete:
		return append([]string{}, v.Names...), nil
	case VarsQuantified:
		return nil, []*Vars{v}
	case VarsUnion:
		for _, c := range v.Children {
			cc, nc := flattenCollect(c)
			concreteNames = append(concreteNames, cc...)
			nonConcrete = append(nonConcrete, nc...)
		}
		return concreteNames, nonConcrete
	}
	panic("malformed vars")
}

// FlattenUnions rewrites a bag so that no UnionVars directly contains
// another UnionVars: every concrete leaf reachable from a union is merged
// into a single ConcreteVars member, and a union collapses to its sole
// remaining member when only one is left. Non-union bags pass through
// unchanged.
func FlattenUnions(v *Vars) *Vars {
	if v.Kind != VarsUnion {
		return v
	}
	concreteNames, nonConcrete := flattenCollect(v)

	elems := append([]*Vars{}, nonConcrete...)
	if len(concreteNames) > 0 || len(nonConcrete) == 0 {
		elems = append(elems, NewConcreteVars(concreteNames...))
	}
	switch len(elems) {
	case 0:
		return EmptyVars()
	case 1:
		return elems[0]
	default:
		return NewUnionVars(elems...)
	}
}

// UniqueVars deduplicates the names inside each ConcreteVars leaf, leaving
// the shape of any surrounding union untouched — it does not merge unions,
// only tidies what's already inside each one.
func UniqueVars(v *Vars) *Vars {
	switch v.Kind {
	case VarsConcrete:
		return NewConcreteVars(util.StrRemoveDuplicatesInList(v.Names)...)
	case VarsQuantified:
		return v
	case VarsUnion:
		children := make([]*Vars, len(v.Children))
		for i, c := range v.Children {
			children[i] = UniqueVars(c)
		}
		return NewUnionVars(children...)
	}
	panic("malformed vars")
}

// collectConcreteNames gathers every concrete name reachable from a bag,
// preserving duplicates, regardless of how deeply it's nested in unions.
func collectConcreteNames(v *Vars) []string {
	switch v.Kind {
	case VarsConcrete:
		return append([]string{}, v.Names...)
	case VarsQuantified:
		return nil
	case VarsUnion:
		var names []string
		for _, c := range v.Children {
			names = append(names, collectConcreteNames(c)...)
		}
		return names
	}
	panic("malformed vars")
}

// duplicateNames returns the sorted set of names that occur more than once.
func duplicateNames(names []string) []string {
	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[n]++
	}
	var dup []string
	for n, c := range counts {
		if c > 1 {
			dup = append(dup, n)
		}
	}
	sort.Strings(dup)
	return dup
}

// Simplify puts a Concrete effect into canonical form: its read bag is
// flattened and deduplicated, and its update bag is flattened. If the
// flattened update bag names the same variable more than once — an
// expression claiming to update the same state variable twice — it fails
// with an *ErrorTree describing which names collided. Non-Concrete effects
// pass through unchanged; this makes it safe to call on any effect,
// including one still carrying quantified or arrow shape.
func Simplify(e *Effect) (*Effect, error) {
	if e == nil {
		return nil, fmt.Errorf("cannot simplify a nil effect")
	}
	if e.Kind != KindConcrete {
		return e, nil
	}

	read := UniqueVars(FlattenUnions(e.Read))
	update := FlattenUnions(e.Update)

	if dup := duplicateNames(collectConcreteNames(update)); len(dup) > 0 {
		quoted := make([]string, len(dup))
		for i, n := range dup {
			quoted[i] = fmt.Sprintf("'%s'", n)
		}
		return nil, Leaf(
			fmt.Sprintf("Trying to simplify effect %s", e.String()),
			fmt.Sprintf("Multiple updates of variable(s): %s", strings.Join(quoted, ", ")),
		)
	}

	return NewConcrete(read, update), nil
}
