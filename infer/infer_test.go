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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/specmc-lang/specmc/effect"
	"github.com/specmc-lang/specmc/ir"
)

func TestInferLiteral(t *testing.T) {
	n := &ir.Node{ID: 1, Kind: ir.NodeLiteral}
	m := &ir.Module{Defs: []*ir.Def{{Name: "lit", Node: n}}}

	res := Infer(m)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if got := res.Effects[1].String(); got != "Pure" {
		t.Errorf("got %q, want Pure", got)
	}
}

func TestInferVarReadAndUpdate(t *testing.T) {
	read := &ir.Node{ID: 1, Kind: ir.NodeVarRead, Var: "x"}
	update := &ir.Node{ID: 2, Kind: ir.NodeVarUpdate, Var: "x"}
	m := &ir.Module{Defs: []*ir.Def{
		{Name: "r", Node: read},
		{Name: "u", Node: update},
	}}

	res := Infer(m)
	if got := res.Effects[1].String(); got != "Read['x']" {
		t.Errorf("got %q, want Read['x']", got)
	}
	if got := res.Effects[2].String(); got != "Update['x']" {
		t.Errorf("got %q, want Update['x']", got)
	}
}

func TestInferApplyUnionsArguments(t *testing.T) {
	apply := &ir.Node{
		ID: 3, Kind: ir.NodeApply, Opcode: "+",
		Args: []*ir.Node{
			{ID: 1, Kind: ir.NodeVarRead, Var: "x"},
			{ID: 2, Kind: ir.NodeVarRead, Var: "y"},
		},
	}
	m := &ir.Module{Defs: []*ir.Def{{Name: "sum", Node: apply}}}

	res := Infer(m)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	got := res.Effects[3]
	if got.Kind.String() != "Concrete" {
		t.Fatalf("expected a concrete result, got %#v", got)
	}
	if got.String() != "Read['x', 'y']" {
		t.Errorf("got %q, want Read['x', 'y']", got.String())
	}
}

func TestInferApplyUnknownOpcode(t *testing.T) {
	n := &ir.Node{ID: 1, Kind: ir.NodeApply, Opcode: "bogus"}
	m := &ir.Module{Defs: []*ir.Def{{Name: "bad", Node: n}}}

	res := Infer(m)
	if _, ok := res.Errors[1]; !ok {
		t.Fatalf("expected an error for an unknown opcode")
	}
	if _, ok := res.Effects[1]; !ok {
		t.Fatalf("expected a placeholder effect even after failure")
	}
}

func TestInferLetBindsNameForBody(t *testing.T) {
	letNode := &ir.Node{
		ID: 3, Kind: ir.NodeLet, Name: "tmp",
		Value: &ir.Node{ID: 1, Kind: ir.NodeVarRead, Var: "x"},
		Body:  &ir.Node{ID: 2, Kind: ir.NodeNameRef, Ref: "tmp"},
	}
	m := &ir.Module{Defs: []*ir.Def{{Name: "let", Node: letNode}}}

	res := Infer(m)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if got := res.Effects[3].String(); got != "Read['x']" {
		t.Errorf("got %q, want Read['x']", got)
	}
}

func TestInferNameRefUnbound(t *testing.T) {
	n := &ir.Node{ID: 1, Kind: ir.NodeNameRef, Ref: "nope"}
	m := &ir.Module{Defs: []*ir.Def{{Name: "bad", Node: n}}}

	res := Infer(m)
	if _, ok := res.Errors[1]; !ok {
		t.Fatalf("expected an unbound-name error")
	}
}

func TestInferLambdaProducesArrow(t *testing.T) {
	lambda := &ir.Node{
		ID: 2, Kind: ir.NodeLambda, Params: []string{"a"},
		Body: &ir.Node{ID: 1, Kind: ir.NodeNameRef, Ref: "a"},
	}
	m := &ir.Module{Defs: []*ir.Def{{Name: "id", Node: lambda}}}

	res := Infer(m)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	got := res.Effects[2]
	if got.Kind.String() != "Arrow" || len(got.Params) != 1 {
		t.Fatalf("expected a 1-ary arrow, got %#v", got)
	}
}

func TestInferFailureDoesNotAbortSiblings(t *testing.T) {
	apply := &ir.Node{
		ID: 4, Kind: ir.NodeApply, Opcode: "+",
		Args: []*ir.Node{
			{ID: 1, Kind: ir.NodeApply, Opcode: "bogus"},
			{ID: 2, Kind: ir.NodeVarRead, Var: "y"},
		},
	}
	m := &ir.Module{Defs: []*ir.Def{{Name: "mix", Node: apply}}}

	res := Infer(m)
	if _, ok := res.Errors[1]; !ok {
		t.Fatalf("expected the bogus child to fail")
	}
	if _, ok := res.Errors[4]; ok {
		t.Errorf("expected the parent apply to still produce a placeholder result, not its own hard failure: %v", res.Errors[4])
	}
	if _, ok := res.Effects[4]; !ok {
		t.Errorf("expected the parent apply to still have a recorded effect")
	}
}

func TestInferDeterministic(t *testing.T) {
	build := func() *ir.Module {
		return &ir.Module{Defs: []*ir.Def{{Name: "sum", Node: &ir.Node{
			ID: 3, Kind: ir.NodeApply, Opcode: "+",
			Args: []*ir.Node{
				{ID: 1, Kind: ir.NodeVarRead, Var: "x"},
				{ID: 2, Kind: ir.NodeVarRead, Var: "y"},
			},
		}}}}
	}

	r1 := Infer(build())
	r2 := Infer(build())
	if r1.Effects[3].String() != r2.Effects[3].String() {
		t.Errorf("expected repeated inference to be deterministic, got %q and %q", r1.Effects[3].String(), r2.Effects[3].String())
	}

	// The two runs built the fresh-name counter up independently, so
	// the whole per-node EffectMap (not just the root) should line up
	// structurally, not merely print the same string.
	if diff := cmp.Diff(r1.Effects, r2.Effects); diff != "" {
		t.Errorf("EffectMap mismatch between repeated runs (-first +second):\n%s", diff)
	}
}

func TestInferEffectMapMatchesExpectedShape(t *testing.T) {
	apply := &ir.Node{
		ID: 3, Kind: ir.NodeApply, Opcode: "+",
		Args: []*ir.Node{
			{ID: 1, Kind: ir.NodeVarRead, Var: "x"},
			{ID: 2, Kind: ir.NodeVarRead, Var: "y"},
		},
	}
	m := &ir.Module{Defs: []*ir.Def{{Name: "sum", Node: apply}}}

	res := Infer(m)
	want := EffectMap{
		1: effect.NewConcrete(effect.NewConcreteVars("x"), effect.EmptyVars()),
		2: effect.NewConcrete(effect.NewConcreteVars("y"), effect.EmptyVars()),
		3: effect.NewConcrete(effect.NewConcreteVars("x", "y"), effect.EmptyVars()),
	}
	if diff := cmp.Diff(want, res.Effects); diff != "" {
		t.Errorf("EffectMap mismatch (-want +got):\n%s", diff)
	}
}
