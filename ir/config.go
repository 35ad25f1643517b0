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

	"gopkg.in/yaml.v2"
)

// ModuleConfig is the on-disk YAML shape a Module is loaded from. It
// exists only at the CLI boundary — the core inferencer never sees YAML,
// only the Module it decodes into.
type ModuleConfig struct {
	Defs []*DefConfig `yaml:"defs"`
}

// DefConfig is the on-disk shape of a single top-level definition.
type DefConfig struct {
	Name string      `yaml:"name"`
	Node *NodeConfig `yaml:"node"`
}

// NodeConfig is the on-disk shape of a node. Only the fields that the Kind
// string selects are read for a given node.
type NodeConfig struct {
	Kind string `yaml:"kind"`

	Var string `yaml:"var,omitempty"`
	Ref string `yaml:"ref,omitempty"`

	Opcode string        `yaml:"opcode,omitempty"`
	Args   []*NodeConfig `yaml:"args,omitempty"`

	Name  string      `yaml:"name,omitempty"`
	Value *NodeConfig `yaml:"value,omitempty"`
	Body  *NodeConfig `yaml:"body,omitempty"`

	Params []string `yaml:"params,omitempty"`
}

// ParseModuleConfig decodes YAML bytes into a ModuleConfig.
func ParseModuleConfig(data []byte) (*ModuleConfig, error) {
	var cfg ModuleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse module yaml: %w", err)
	}
	return &cfg, nil
}

// ToModule converts the on-disk config into the Module the inferencer
// walks, assigning each node a stable NodeID in the order encountered
// (depth-first, per definition, in file order).
func (c *ModuleConfig) ToModule() (*Module, error) {
	var nextID NodeID
	var convert func(nc *NodeConfig) (*Node, error)
	convert = func(nc *NodeConfig) (*Node, error) {
		if nc == nil {
			return nil, nil
		}
		id := nextID
		nextID++

		switch nc.Kind {
		case "literal":
			return &Node{ID: id, Kind: NodeLiteral}, nil
		case "var-read":
			return &Node{ID: id, Kind: NodeVarRead, Var: nc.Var}, nil
		case "var-update":
			return &Node{ID: id, Kind: NodeVarUpdate, Var: nc.Var}, nil
		case "name-ref":
			return &Node{ID: id, Kind: NodeNameRef, Ref: nc.Ref}, nil
		case "apply":
			args := make([]*Node, len(nc.Args))
			for i, a := range nc.Args {
				n, err := convert(a)
				if err != nil {
					return nil, err
				}
				args[i] = n
			}
			return &Node{ID: id, Kind: NodeApply, Opcode: nc.Opcode, Args: args}, nil
		case "let":
			value, err := convert(nc.Value)
			if err != nil {
				return nil, err
			}
			body, err := convert(nc.Body)
			if err != nil {
				return nil, err
			}
			return &Node{ID: id, Kind: NodeLet, Name: nc.Name, Value: value, Body: body}, nil
		case "lambda":
			body, err := convert(nc.Body)
			if err != nil {
				return nil, err
			}
			return &Node{ID: id, Kind: NodeLambda, Params: nc.Params, Body: body}, nil
		}
		return nil, fmt.Errorf("unknown node kind %q", nc.Kind)
	}

	defs := make([]*Def, len(c.Defs))
	for i, dc := range c.Defs {
		node, err := convert(dc.Node)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", dc.Name, err)
		}
		defs[i] = &Def{Name: dc.Name, Node: node}
	}
	return &Module{Defs: defs}, nil
}
