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

package subst

import (
	"testing"

	"github.com/specmc-lang/specmc/effect"
)

func TestApplyQuantifiedEffect(t *testing.T) {
	s := effect.NewSubstitution()
	bound := effect.NewConcrete(effect.NewConcreteVars("x"), effect.EmptyVars())
	s.BindEffect("e", bound)

	out, err := Apply(s, effect.NewQuantified("e"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Equal(bound) {
		t.Errorf("got %s, want %s", out.String(), bound.String())
	}
}

func TestApplyUnboundQuantifiedIsUnchanged(t *testing.T) {
	s := effect.NewSubstitution()
	q := effect.NewQuantified("e")
	out, err := Apply(s, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != q {
		t.Errorf("expected an unbound quantified effect to pass through unchanged")
	}
}

func TestApplyConcreteResimplifiesAndCatchesDoubleUpdate(t *testing.T) {
	s := effect.NewSubstitution()
	s.BindVars("u", effect.NewConcreteVars("x"))

	e := effect.NewConcrete(effect.EmptyVars(), effect.NewUnionVars(effect.NewQuantifiedVars("u"), effect.NewConcreteVars("x")))
	if _, err := Apply(s, e); err == nil {
		t.Fatalf("expected substitution to reveal a double update of 'x'")
	}
}

func TestApplyArrow(t *testing.T) {
	s := effect.NewSubstitution()
	s.BindEffect("e1", effect.NewConcrete(effect.NewConcreteVars("x"), effect.EmptyVars()))

	arrow := effect.NewArrow([]*effect.Effect{effect.NewQuantified("e1")}, effect.NewQuantified("e2"))
	out, err := Apply(s, arrow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != effect.KindArrow || len(out.Params) != 1 {
		t.Fatalf("expected an arrow result, got %#v", out)
	}
	if !out.Params[0].Equal(effect.NewConcrete(effect.NewConcreteVars("x"), effect.EmptyVars())) {
		t.Errorf("expected the bound parameter, got %s", out.Params[0].String())
	}
	if out.Result.Kind != effect.KindQuantified || out.Result.Name != "e2" {
		t.Errorf("expected the unbound result to pass through unchanged, got %s", out.Result.String())
	}
}

func TestComposeAppliesThrough(t *testing.T) {
	s1 := effect.NewSubstitution()
	s1.BindEffect("e1", effect.NewQuantified("e2"))

	s2 := effect.NewSubstitution()
	s2.BindEffect("e2", effect.NewConcrete(effect.NewConcreteVars("x"), effect.EmptyVars()))

	composed, err := Compose(s1, s2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := Apply(composed, effect.NewQuantified("e1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exp := effect.NewConcrete(effect.NewConcreteVars("x"), effect.EmptyVars())
	if !out.Equal(exp) {
		t.Errorf("expected chained binding to resolve fully, got %s", out.String())
	}
}

func TestComposeLawAgainstSequentialApply(t *testing.T) {
	s1 := effect.NewSubstitution()
	s1.BindEffect("e1", effect.NewQuantified("e2"))
	s1.BindVars("r0", effect.NewConcreteVars("x"))

	s2 := effect.NewSubstitution()
	s2.BindEffect("e2", effect.NewConcrete(effect.NewQuantifiedVars("r0"), effect.EmptyVars()))
	s2.BindVars("r0", effect.NewConcreteVars("y"))

	start := effect.NewQuantified("e1")

	composed, err := Compose(s1, s2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaCompose, err := Apply(composed, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	viaS1, err := Apply(s1, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaSequential, err := Apply(s2, viaS1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !viaCompose.Equal(viaSequential) {
		t.Errorf("compose law violated: compose(s1,s2) gave %s, sequential application gave %s", viaCompose.String(), viaSequential.String())
	}
}
