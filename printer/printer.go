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

// Package printer renders the results of an inference run for a human:
// effects and variable bags using the grammar already defined on
// effect.Effect/effect.Vars, error trees depth-first, and a module's
// whole EffectMap as one line per definition. It owns no inference logic
// of its own — this is the one rendering seam the CLI and LSP hover
// adapter both go through, so that they never drift apart on format.
package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specmc-lang/specmc/effect"
	"github.com/specmc-lang/specmc/infer"
	"github.com/specmc-lang/specmc/ir"
)

// Effect renders an effect using its stable grammar.
func Effect(e *effect.Effect) string {
	return e.String()
}

// Vars renders a variable bag using its stable grammar.
func Vars(v *effect.Vars) string {
	return v.String()
}

// ErrorTree renders an error tree depth-first with indentation.
func ErrorTree(t *effect.ErrorTree) string {
	return t.Error()
}

// Module renders one line per top-level definition in m: the definition's
// name followed by its inferred effect, or its error tree if it failed to
// infer. Pure results are elided to a blank per-line suffix unless verbose
// is set, matching the CLI's `--verbose` flag.
func Module(m *ir.Module, res *infer.Result, verbose bool) string {
	var b strings.Builder
	for _, def := range m.Defs {
		id := def.Node.ID
		if tree, failed := res.Errors[id]; failed {
			fmt.Fprintf(&b, "%s: error\n", def.Name)
			for _, line := range strings.Split(strings.TrimRight(ErrorTree(tree), "\n"), "\n") {
				fmt.Fprintf(&b, "  %s\n", line)
			}
			continue
		}

		e := res.Effects[id]
		rendered := Effect(e)
		if rendered == "Pure" && !verbose {
			fmt.Fprintf(&b, "%s:\n", def.Name)
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", def.Name, rendered)
	}
	return b.String()
}

// FailingDefs returns the names of definitions whose root node failed to
// infer, sorted alphabetically.
func FailingDefs(m *ir.Module, res *infer.Result) []string {
	var names []string
	for _, def := range m.Defs {
		if _, failed := res.Errors[def.Node.ID]; failed {
			names = append(names, def.Name)
		}
	}
	sort.Strings(names)
	return names
}
