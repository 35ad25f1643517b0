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
	"fmt"
	"strings"
)

// ErrorTree is a nested, human-readable record of where and why a
// unification or simplification step failed. It implements the error
// interface so that it can flow through ordinary Go (value, error) returns,
// while still carrying enough structure for a consumer to render it
// depth-first with indentation.
type ErrorTree struct {
	// Location describes the step that failed, e.g. "Trying to unify E1
	// and E2" or "Applying substitution to …".
	Location string
	// Message is the terminal, actionable line. It's empty on interior
	// nodes that exist only to record a location chain.
	Message string
	// Children holds nested failures, if any.
	Children []*ErrorTree
}

// Leaf builds a terminal error tree node with no children.
func Leaf(location, message string) *ErrorTree {
	return &ErrorTree{Location: location, Message: message}
}

// Node builds an interior error tree node wrapping the given children.
func Node(location string, children ...*ErrorTree) *ErrorTree {
	return &ErrorTree{Location: location, Children: children}
}

// Wrap prepends a location to an error, producing an *ErrorTree. If err is
// already an *ErrorTree whose top location is exactly equal to location,
// the outer wrapping is dropped to avoid redundant, stutter chains — this
// is the dedupe rule from the propagation policy. A nil err returns nil.
func Wrap(err error, location string) *ErrorTree {
	if err == nil {
		return nil
	}
	if t, ok := err.(*ErrorTree); ok {
		if t.Location == location {
			return t
		}
		return Node(location, t)
	}
	return Leaf(location, err.Error())
}

// Error renders the tree depth-first, indenting children, with the leaf
// message as the actionable line. It satisfies the error interface.
func (t *ErrorTree) Error() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	t.render(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (t *ErrorTree) render(b *strings.Builder, depth int) {
	fmt.Fprint(b, strings.Repeat("  ", depth))
	fmt.Fprint(b, t.Location)
	if t.Message != "" {
		fmt.Fprintf(b, ": %s", t.Message)
	}
	b.WriteByte('\n')
	for _, c := range t.Children {
		c.render(b, depth+1)
	}
}
