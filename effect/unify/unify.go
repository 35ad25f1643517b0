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

// Package unify implements the effect unifier: given two effects, it
// produces the minimal substitution that makes them equal, or an error
// tree explaining why no such substitution exists.
package unify

import (
	"fmt"

	"github.com/specmc-lang/specmc/effect"
	"github.com/specmc-lang/specmc/effect/subst"
)

// Unify attempts to find a substitution that, once applied to both e1 and
// e2, makes them structurally equal. It returns an *effect.ErrorTree on
// failure.
func Unify(e1, e2 *effect.Effect) (*effect.Substitution, error) {
	loc := fmt.Sprintf("Trying to unify %s and %s", e1.String(), e2.String())

	a, err := effect.Simplify(e1)
	if err != nil {
		return nil, effect.Wrap(err, loc)
	}
	b, err := effect.Simplify(e2)
	if err != nil {
		return nil, effect.Wrap(err, loc)
	}

	s, err := unify(a, b)
	if err != nil {
		return nil, effect.Wrap(err, loc)
	}
	return s, nil
}

func unify(e1, e2 *effect.Effect) (*effect.Substitution, error) {
	// A quantified effect on either side binds directly, regardless of
	// what's on the other side.
	if e1.Kind == effect.KindQuantified {
		return bindEffect(e1.Name, e2)
	}
	if e2.Kind == effect.KindQuantified {
		return bindEffect(e2.Name, e1)
	}

	if e1.Kind != e2.Kind {
		return nil, effect.Leaf("Can't unify different types of effects", "")
	}

	switch e1.Kind {
	case effect.KindArrow:
		return unifyArrow(e1, e2)
	case effect.KindConcrete:
		return unifyConcrete(e1, e2)
	}
	return nil, effect.Leaf(fmt.Sprintf("Can't unify effects of kind %s", e1.Kind), "")
}

func unifyArrow(e1, e2 *effect.Effect) (*effect.Substitution, error) {
	if len(e1.Params) != len(e2.Params) {
		return nil, effect.Leaf(fmt.Sprintf("Expected %d arguments, got %d", len(e1.Params), len(e2.Params)), "")
	}

	s := effect.NewSubstitution()
	for i := range e1.Params {
		p1, err := subst.Apply(s, e1.Params[i])
		if err != nil {
			return nil, err
		}
		p2, err := subst.Apply(s, e2.Params[i])
		if err != nil {
			return nil, err
		}
		next, err := unify(p1, p2)
		if err != nil {
			return nil, err
		}
		s, err = subst.Compose(s, next)
		if err != nil {
			return nil, err
		}
	}

	r1, err := subst.Apply(s, e1.Result)
	if err != nil {
		return nil, err
	}
	r2, err := subst.Apply(s, e2.Result)
	if err != nil {
		return nil, err
	}
	next, err := unify(r1, r2)
	if err != nil {
		return nil, err
	}
	return subst.Compose(s, next)
}

func unifyConcrete(e1, e2 *effect.Effect) (*effect.Substitution, error) {
	sR, err := UnifyVars(e1.Read, e2.Read)
	if err != nil {
		return nil, err
	}

	u1, err := subst.ApplyVars(sR, e1.Update)
	if err != nil {
		return nil, err
	}
	u2, err := subst.ApplyVars(sR, e2.Update)
	if err != nil {
		return nil, err
	}

	sU, err := UnifyVars(u1, u2)
	if err != nil {
		return nil, err
	}

	return subst.Compose(sR, sU)
}
