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

package ir

import (
	"testing"

	"github.com/specmc-lang/specmc/effect"
)

func TestLookupBuiltins(t *testing.T) {
	opcodes := []string{"/\\", "\\/", "~", "=>", "<=>", "+", "-", "*", "/", "%",
		"<", "<=", ">", ">=", "=", "/=", "union", "in", "head", "tail", "len", "prime", "next"}
	for _, op := range opcodes {
		if _, ok := Lookup(op); !ok {
			t.Errorf("expected a built-in signature for opcode %q", op)
		}
	}
	if _, ok := Lookup("not-an-opcode"); ok {
		t.Errorf("expected no signature for an unregistered opcode")
	}
}

func TestVariadicUnionShape(t *testing.T) {
	sig := variadicUnion(2)
	if sig.Kind != effect.KindArrow || len(sig.Params) != 2 {
		t.Fatalf("expected a 2-ary arrow, got %#v", sig)
	}
	if sig.Result.Kind != effect.KindConcrete {
		t.Fatalf("expected a concrete result, got %s", sig.Result.Kind)
	}
	if sig.Result.Read.Kind != effect.VarsUnion || len(sig.Result.Read.Children) != 2 {
		t.Errorf("expected the result read bag to union both parameters' read bags, got %#v", sig.Result.Read)
	}
}

func TestIdentitySignatureSharesName(t *testing.T) {
	sig := identitySignature(1)
	if sig.Kind != effect.KindArrow || len(sig.Params) != 1 {
		t.Fatalf("expected a 1-ary arrow, got %#v", sig)
	}
	if sig.Params[0].Kind != effect.KindQuantified || sig.Result.Kind != effect.KindQuantified {
		t.Fatalf("expected both sides quantified, got %#v", sig)
	}
	if sig.Params[0].Name != sig.Result.Name {
		t.Errorf("expected the parameter and result to share a metavariable name, got %s and %s", sig.Params[0].Name, sig.Result.Name)
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Register to panic on a duplicate opcode")
		}
	}()
	Register("+", variadicUnion)
}
