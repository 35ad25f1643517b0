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

// Package lsp is the single seam a language server's hover provider would
// call into: given the effects and errors an inference run produced, it
// formats what should be shown for one node. It owns no transport, no
// document sync, and no position mapping — a real server wires those up
// around this function.
package lsp

import (
	"fmt"

	"github.com/specmc-lang/specmc/effect"
	"github.com/specmc-lang/specmc/infer"
	"github.com/specmc-lang/specmc/ir"
	"github.com/specmc-lang/specmc/printer"
)

// Hover returns the text a language server should show for node id: the
// pretty-printed effect if it inferred successfully, the depth-first error
// rendering if it failed, or a placeholder if id is unknown to this run
// (for example, a node the inferencer never reached).
func Hover(em infer.EffectMap, errs map[ir.NodeID]*effect.ErrorTree, id ir.NodeID) string {
	if tree, failed := errs[id]; failed {
		return printer.ErrorTree(tree)
	}
	if e, ok := em[id]; ok {
		return printer.Effect(e)
	}
	return fmt.Sprintf("<no effect recorded for node %d>", id)
}
