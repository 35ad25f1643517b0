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

package infer

import (
	"fmt"

	"github.com/specmc-lang/specmc/effect"
)

// fresher is the process-local monotonic counter used to produce fresh
// quantified names. It must be reset per inference run (newFresher does
// this) so that two runs over the same module with the same signature
// table produce byte-identical pretty-printed output.
type fresher struct {
	counter int
}

func newFresher() *fresher {
	return &fresher{}
}

// next returns a name derived from base that is unique for the lifetime of
// this fresher.
func (f *fresher) next(base string) string {
	n := f.counter
	f.counter++
	return fmt.Sprintf("%s$%d", base, n)
}

// freshen renames every quantified name inside e — both effect-kind and
// bag-kind, each tracked in its own namespace — to a name unique to this
// instantiation, so that independent call sites never accidentally share
// a metavariable. The same original name maps to the same fresh name
// everywhere it recurs within this one call, which is what lets a scheme
// like prime's (e) => e keep its parameter and result tied together after
// freshening.
func freshen(e *effect.Effect, f *fresher) *effect.Effect {
	effNames := map[string]string{}
	varNames := map[string]string{}
	return freshenEffect(e, f, effNames, varNames)
}

func freshenEffect(e *effect.Effect, f *fresher, effNames, varNames map[string]string) *effect.Effect {
	switch e.Kind {
	case effect.KindQuantified:
		fresh, ok := effNames[e.Name]
		if !ok {
			fresh = f.next(e.Name)
			effNames[e.Name] = fresh
		}
		return effect.NewQuantified(fresh)

	case effect.KindArrow:
		params := make([]*effect.Effect, len(e.Params))
		for i, p := range e.Params {
			params[i] = freshenEffect(p, f, effNames, varNames)
		}
		return effect.NewArrow(params, freshenEffect(e.Result, f, effNames, varNames))

	case effect.KindConcrete:
		return effect.NewConcrete(
			freshenVars(e.Read, f, varNames),
			freshenVars(e.Update, f, varNames),
		)
	}
	panic("malformed effect")
}

func freshenVars(v *effect.Vars, f *fresher, varNames map[string]string) *effect.Vars {
	switch v.Kind {
	case effect.VarsQuantified:
		fresh, ok := varNames[v.Name]
		if !ok {
			fresh = f.next(v.Name)
			varNames[v.Name] = fresh
		}
		return effect.NewQuantifiedVars(fresh)

	case effect.VarsConcrete:
		return v.Copy()

	case effect.VarsUnion:
		children := make([]*effect.Vars, len(v.Children))
		for i, c := range v.Children {
			children[i] = freshenVars(c, f, varNames)
		}
		return effect.NewUnionVars(children...)
	}
	panic("malformed vars")
}
