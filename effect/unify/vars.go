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

package unify

import (
	"fmt"

	"github.com/specmc-lang/specmc/effect"
)

// UnifyVars unifies two variable bags, returning the substitution that
// makes them equal in the "same variables" sense, or an error tree.
func UnifyVars(v1, v2 *effect.Vars) (*effect.Substitution, error) {
	f1 := effect.FlattenUnions(v1)
	f2 := effect.FlattenUnions(v2)

	if f1.Kind == effect.VarsConcrete && f2.Kind == effect.VarsConcrete {
		if !f1.Equal(f2) {
			return nil, effect.Leaf(fmt.Sprintf("Expected variables [%s] and [%s] to be the same", f1.String(), f2.String()), "")
		}
		return effect.NewSubstitution(), nil
	}

	if f1.Kind == effect.VarsQuantified && f2.Kind == effect.VarsQuantified && f1.Name == f2.Name {
		return effect.NewSubstitution(), nil
	}

	if f1.Kind == effect.VarsQuantified {
		return bindVars(f1.Name, f2)
	}
	if f2.Kind == effect.VarsQuantified {
		return bindVars(f2.Name, f1)
	}

	if f1.Equal(f2) {
		return effect.NewSubstitution(), nil
	}

	return nil, effect.Leaf("Unification for unions of variables is not implemented", "")
}

// bindEffect builds the one-entry substitution name ↦ e, after checking
// that e doesn't mention name (which would produce a cyclical binding).
func bindEffect(name string, e *effect.Effect) (*effect.Substitution, error) {
	if e.Kind == effect.KindQuantified && e.Name == name {
		return effect.NewSubstitution(), nil
	}
	if effectNames(e)[name] {
		return nil, effect.Leaf(fmt.Sprintf("Can't bind %s to %s: cyclical binding", name, e.String()), "")
	}
	s := effect.NewSubstitution()
	s.BindEffect(name, e)
	return s, nil
}

// bindVars builds the one-entry substitution name ↦ v, after checking
// that v doesn't mention name.
func bindVars(name string, v *effect.Vars) (*effect.Substitution, error) {
	if v.Kind == effect.VarsQuantified && v.Name == name {
		return effect.NewSubstitution(), nil
	}
	if varsNames(v)[name] {
		return nil, effect.Leaf(fmt.Sprintf("Can't bind %s to %s: cyclical binding", name, v.String()), "")
	}
	s := effect.NewSubstitution()
	s.BindVars(name, v)
	return s, nil
}

// effectNames returns the set of quantified effect names reachable from e.
// It does not descend into Concrete effects' bags — those live in a
// separate namespace walked by varsNames — so it is only ever used to
// occurs-check an effect-kinded binding.
func effectNames(e *effect.Effect) map[string]bool {
	names := map[string]bool{}
	var walk func(*effect.Effect)
	walk = func(e *effect.Effect) {
		switch e.Kind {
		case effect.KindQuantified:
			names[e.Name] = true
		case effect.KindArrow:
			for _, p := range e.Params {
				walk(p)
			}
			walk(e.Result)
		case effect.KindConcrete:
			// Concrete effects carry no quantified effect names of
			// their own kind; their bags are checked separately.
		}
	}
	walk(e)
	return names
}

// varsNames returns the set of quantified bag names reachable from v.
func varsNames(v *effect.Vars) map[string]bool {
	names := map[string]bool{}
	var walk func(*effect.Vars)
	walk = func(v *effect.Vars) {
		switch v.Kind {
		case effect.VarsQuantified:
			names[v.Name] = true
		case effect.VarsUnion:
			for _, c := range v.Children {
				walk(c)
			}
		case effect.VarsConcrete:
		}
	}
	walk(v)
	return names
}
