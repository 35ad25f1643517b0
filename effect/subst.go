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

// Substitution is a finite mapping from quantified effect names and
// quantified bag names to the effects and bags that should replace them. It
// is the output of a successful unification step and the input to Apply.
//
// The two maps are kept separate because an effect metavariable (e.g. "e")
// and a vars metavariable (e.g. "r0") never collide even if their names
// happened to match; they live in different namespaces in the source
// language, and conflating them would let a bag binding leak into an effect
// position or vice versa.
type Substitution struct {
	Effects map[string]*Effect
	Vars    map[string]*Vars
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{
		Effects: map[string]*Effect{},
		Vars:    map[string]*Vars{},
	}
}

// BindEffect records that the quantified effect name should resolve to e.
func (s *Substitution) BindEffect(name string, e *Effect) {
	s.Effects[name] = e
}

// BindVars records that the quantified bag name should resolve to v.
func (s *Substitution) BindVars(name string, v *Vars) {
	s.Vars[name] = v
}

// IsEmpty reports whether the substitution binds nothing.
func (s *Substitution) IsEmpty() bool {
	return s == nil || (len(s.Effects) == 0 && len(s.Vars) == 0)
}

// Copy makes a deep copy of the substitution.
func (s *Substitution) Copy() *Substitution {
	out := NewSubstitution()
	for k, v := range s.Effects {
		out.Effects[k] = v.Copy()
	}
	for k, v := range s.Vars {
		out.Vars[k] = v.Copy()
	}
	return out
}
