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
	"fmt"

	"github.com/specmc-lang/specmc/effect"
)

// variadicUnion is the signature scheme shared by every built-in operator
// whose effect is simply "the union of what my arguments do": each
// parameter position gets its own fresh read/update metavariables, and the
// result reads and updates the union of all of them. Unifying this scheme
// against the actual argument effects binds each metavariable to that
// argument's real read/update bag, so applying the solved substitution to
// the result naturally yields the union — no explicit union combinator is
// needed on Effect itself.
func variadicUnion(n int) *effect.Effect {
	params := make([]*effect.Effect, n)
	reads := make([]*effect.Vars, n)
	updates := make([]*effect.Vars, n)
	for i := 0; i < n; i++ {
		r := effect.NewQuantifiedVars(fmt.Sprintf("r%d", i))
		u := effect.NewQuantifiedVars(fmt.Sprintf("u%d", i))
		params[i] = effect.NewConcrete(r, u)
		reads[i] = r
		updates[i] = u
	}
	result := effect.NewConcrete(effect.NewUnionVars(reads...), effect.NewUnionVars(updates...))
	return effect.NewArrow(params, result)
}

// identitySignature is the scheme for a single-argument operator whose
// result effect is exactly its argument's effect, such as prime/next.
func identitySignature(arity int) *effect.Effect {
	if arity != 1 {
		return variadicUnion(arity)
	}
	e := effect.NewQuantified("e")
	return effect.NewArrow([]*effect.Effect{e}, effect.NewQuantified("e"))
}

func init() {
	boolean := []string{"/\\", "\\/", "~", "=>", "<=>"}
	arithmetic := []string{"+", "-", "*", "/", "%"}
	comparison := []string{"<", "<=", ">", ">=", "=", "/="}
	collections := []string{"union", "in", "head", "tail", "len"}

	for _, opcode := range boolean {
		Register(opcode, variadicUnion)
	}
	for _, opcode := range arithmetic {
		Register(opcode, variadicUnion)
	}
	for _, opcode := range comparison {
		Register(opcode, variadicUnion)
	}
	for _, opcode := range collections {
		Register(opcode, variadicUnion)
	}

	Register("prime", identitySignature)
	Register("next", identitySignature)
}
