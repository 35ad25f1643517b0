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

// Package subst applies substitutions to effects and variable bags, and
// composes substitutions transitively.
package subst

import (
	"fmt"

	"github.com/specmc-lang/specmc/effect"
)

// Apply replaces every quantified name in e with its binding in s, if any,
// then re-simplifies the result so that a substitution revealing a
// duplicate update is caught here rather than silently accepted.
func Apply(s *effect.Substitution, e *effect.Effect) (*effect.Effect, error) {
	switch e.Kind {
	case effect.KindQuantified:
		if bound, ok := s.Effects[e.Name]; ok {
			return bound, nil
		}
		return e, nil

	case effect.KindArrow:
		params := make([]*effect.Effect, len(e.Params))
		for i, p := range e.Params {
			out, err := Apply(s, p)
			if err != nil {
				return nil, effect.Wrap(err, fmt.Sprintf("Applying substitution to %s", e.String()))
			}
			params[i] = out
		}
		result, err := Apply(s, e.Result)
		if err != nil {
			return nil, effect.Wrap(err, fmt.Sprintf("Applying substitution to %s", e.String()))
		}
		return effect.NewArrow(params, result), nil

	case effect.KindConcrete:
		read, err := ApplyVars(s, e.Read)
		if err != nil {
			return nil, effect.Wrap(err, fmt.Sprintf("Applying substitution to %s", e.String()))
		}
		update, err := ApplyVars(s, e.Update)
		if err != nil {
			return nil, effect.Wrap(err, fmt.Sprintf("Applying substitution to %s", e.String()))
		}
		simplified, err := effect.Simplify(effect.NewConcrete(read, update))
		if err != nil {
			return nil, effect.Wrap(err, fmt.Sprintf("Applying substitution to %s", e.String()))
		}
		return simplified, nil
	}
	return nil, fmt.Errorf("malformed effect")
}

// ApplyVars replaces every quantified name in v with its binding in s, if
// any. Flattening is deferred to whoever reads the result, typically the
// next Simplify.
func ApplyVars(s *effect.Substitution, v *effect.Vars) (*effect.Vars, error) {
	switch v.Kind {
	case effect.VarsQuantified:
		if bound, ok := s.Vars[v.Name]; ok {
			return bound, nil
		}
		return v, nil

	case effect.VarsConcrete:
		return v, nil

	case effect.VarsUnion:
		children := make([]*effect.Vars, len(v.Children))
		for i, c := range v.Children {
			out, err := ApplyVars(s, c)
			if err != nil {
				return nil, err
			}
			children[i] = out
		}
		return effect.NewUnionVars(children...), nil
	}
	return nil, fmt.Errorf("malformed vars")
}

// Compose returns the substitution equivalent to applying s1 and then s2:
// apply(Compose(s1, s2), x) == apply(s2, apply(s1, x)). Every binding
// already present in s1 has s2 applied through it first, so that chained
// bindings (e.g. e1 ↦ e2 from s1, e2 ↦ Read['x'] from s2) resolve fully
// rather than leaving e1 bound to an intermediate, still-quantified value.
func Compose(s1, s2 *effect.Substitution) (*effect.Substitution, error) {
	out := effect.NewSubstitution()

	for name, e := range s1.Effects {
		applied, err := Apply(s2, e)
		if err != nil {
			return nil, effect.Wrap(err, "Composing substitutions")
		}
		out.BindEffect(name, applied)
	}
	for name, v := range s1.Vars {
		applied, err := ApplyVars(s2, v)
		if err != nil {
			return nil, effect.Wrap(err, "Composing substitutions")
		}
		out.BindVars(name, applied)
	}

	for name, e := range s2.Effects {
		if _, already := out.Effects[name]; !already {
			out.BindEffect(name, e)
		}
	}
	for name, v := range s2.Vars {
		if _, already := out.Vars[name]; !already {
			out.BindVars(name, v)
		}
	}

	return out, nil
}
