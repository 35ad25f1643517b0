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

// Signature is an effect scheme: a function from the call site's arity to
// the Arrow effect an operator has at that arity. Every quantified name a
// Signature mentions is freshened by the inferencer on each instantiation.
type Signature func(arity int) *effect.Effect

// registeredSignatures is a global map of every opcode's signature. You
// should never touch this map directly; use Register/Lookup instead. It is
// commonly populated from init() functions, one per related group of
// operators, rather than a single central switch.
var registeredSignatures = make(map[string]Signature)

// Register makes a signature available for lookup by opcode name. It is
// commonly called from init(). There is no matching Unregister function,
// and registering the same opcode twice is a programming error.
func Register(opcode string, sig Signature) {
	if _, exists := registeredSignatures[opcode]; exists {
		panic(fmt.Sprintf("a signature for opcode %s is already registered", opcode))
	}
	registeredSignatures[opcode] = sig
}

// Lookup returns the signature registered for an opcode, if any.
func Lookup(opcode string) (Signature, bool) {
	sig, exists := registeredSignatures[opcode]
	return sig, exists
}
