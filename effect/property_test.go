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
	"testing"

	"pgregory.net/rapid"
)

// varsGen produces a random Vars tree of bounded depth: a mix of concrete
// name bags, quantified metavariables, and unions of either.
func varsGen(depth int) *rapid.Generator[*Vars] {
	return rapid.Custom(func(t *rapid.T) *Vars {
		names := rapid.SliceOfN(rapid.SampledFrom([]string{"x", "y", "z"}), 0, 4).Draw(t, "names")
		if depth <= 0 || rapid.Bool().Draw(t, "leaf") {
			if rapid.Bool().Draw(t, "quantified") {
				return NewQuantifiedVars(rapid.SampledFrom([]string{"r0", "r1", "r2"}).Draw(t, "qname"))
			}
			return NewConcreteVars(names...)
		}
		n := rapid.IntRange(1, 3).Draw(t, "arity")
		children := make([]*Vars, n)
		for i := range children {
			children[i] = varsGen(depth - 1).Draw(t, "child")
		}
		return NewUnionVars(children...)
	})
}

// effectGen produces a random Concrete effect of bounded bag depth.
func effectGen(depth int) *rapid.Generator[*Effect] {
	return rapid.Custom(func(t *rapid.T) *Effect {
		return NewConcrete(varsGen(depth).Draw(t, "read"), varsGen(depth).Draw(t, "update"))
	})
}

// TestPropertyFlattenInvariant checks property 5: after FlattenUnions, no
// UnionVars directly contains another UnionVars.
func TestPropertyFlattenInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := varsGen(3).Draw(t, "v")
		out := FlattenUnions(v)
		if out.Kind != VarsUnion {
			return
		}
		for _, c := range out.Children {
			if c.Kind == VarsUnion {
				t.Fatalf("flattened union directly contains another union: %s", out.String())
			}
		}
	})
}

// TestPropertySimplifyIdempotent checks property 1: simplifying twice
// equals simplifying once, for every effect that simplifies at all (an
// effect with a genuine double update is expected to keep failing both
// times, which is also consistent behavior, so those are skipped).
func TestPropertySimplifyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := effectGen(3).Draw(t, "e")
		once, err := Simplify(e)
		if err != nil {
			return
		}
		twice, err := Simplify(once)
		if err != nil {
			t.Fatalf("simplifying an already-simplified effect failed: %v", err)
		}
		if !once.Equal(twice) {
			t.Fatalf("simplify not idempotent: once=%s twice=%s", once.String(), twice.String())
		}
	})
}
