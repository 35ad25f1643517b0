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

// Package infer walks an IR module bottom-up and computes the read/update
// effect of every node, producing a partial EffectMap plus an error tree
// per node that failed. A failed node does not abort the traversal; its
// ancestors treat it as an unknown, freshly quantified effect and continue,
// so that one mistake in a module surfaces as many diagnostics as possible
// in a single run rather than just the first.
package infer

import (
	"fmt"

	"github.com/specmc-lang/specmc/effect"
	"github.com/specmc-lang/specmc/effect/subst"
	"github.com/specmc-lang/specmc/effect/unify"
	"github.com/specmc-lang/specmc/ir"
)

// EffectMap maps an IR node identifier to its inferred effect.
type EffectMap map[ir.NodeID]*effect.Effect

// Result is the outcome of inferring one module: every node that inferred
// successfully is in Effects; every node that failed is in Errors. A node
// never appears in both with a real (non-placeholder) result — on failure
// its Effects entry is a fresh quantified placeholder, recorded so that
// parent nodes can still be evaluated.
type Result struct {
	Effects EffectMap
	Errors  map[ir.NodeID]*effect.ErrorTree
}

// env is the lexical scope a NodeNameRef resolves against: the effects
// bound by enclosing NodeLet/NodeLambda nodes.
type env map[string]*effect.Effect

func (e env) extend(name string, eff *effect.Effect) env {
	out := make(env, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	out[name] = eff
	return out
}

type inferer struct {
	fresh   *fresher
	userOps map[string]ir.Signature
	result  *Result
}

// Infer walks every definition in m bottom-up and returns the effect (or
// error) computed for each node. The fresh-name counter is reset at the
// start of every call, so repeated calls over the same module produce
// identical pretty-printed output.
func Infer(m *ir.Module) *Result {
	inf := &inferer{
		fresh:   newFresher(),
		userOps: map[string]ir.Signature{},
		result: &Result{
			Effects: EffectMap{},
			Errors:  map[ir.NodeID]*effect.ErrorTree{},
		},
	}

	for _, def := range m.Defs {
		root := inf.infer(def.Node, env{})
		defEffect := root
		inf.userOps[def.Name] = func(arity int) *effect.Effect {
			return defEffect.Copy()
		}
	}

	return inf.result
}

func (inf *inferer) infer(n *ir.Node, e env) *effect.Effect {
	switch n.Kind {
	case ir.NodeLiteral:
		return inf.record(n, effect.Pure(), nil)

	case ir.NodeVarRead:
		return inf.record(n, effect.NewConcrete(effect.NewConcreteVars(n.Var), effect.EmptyVars()), nil)

	case ir.NodeVarUpdate:
		return inf.record(n, effect.NewConcrete(effect.EmptyVars(), effect.NewConcreteVars(n.Var)), nil)

	case ir.NodeNameRef:
		if bound, ok := e[n.Ref]; ok {
			return inf.record(n, bound, nil)
		}
		return inf.record(n, nil, fmt.Errorf("unbound name %q", n.Ref))

	case ir.NodeApply:
		return inf.inferApply(n, e)

	case ir.NodeLet:
		return inf.inferLet(n, e)

	case ir.NodeLambda:
		return inf.inferLambda(n, e)
	}
	return inf.record(n, nil, fmt.Errorf("unknown node kind %s", n.Kind))
}

func (inf *inferer) inferApply(n *ir.Node, e env) *effect.Effect {
	argEffects := make([]*effect.Effect, len(n.Args))
	for i, a := range n.Args {
		argEffects[i] = inf.infer(a, e)
	}

	sig, ok := inf.userOps[n.Opcode]
	if !ok {
		sig, ok = ir.Lookup(n.Opcode)
	}
	if !ok {
		return inf.record(n, nil, fmt.Errorf("no signature registered for opcode %q", n.Opcode))
	}

	scheme := freshen(sig(len(n.Args)), inf.fresh)
	resultVar := effect.NewQuantified(inf.fresh.next("result"))
	actual := effect.NewArrow(argEffects, resultVar)

	s, err := unify.Unify(scheme, actual)
	if err != nil {
		return inf.record(n, nil, effect.Wrap(err, fmt.Sprintf("Inferring %s(...)", n.Opcode)))
	}

	result, err := subst.Apply(s, resultVar)
	if err != nil {
		return inf.record(n, nil, effect.Wrap(err, fmt.Sprintf("Inferring %s(...)", n.Opcode)))
	}
	return inf.record(n, result, nil)
}

func (inf *inferer) inferLet(n *ir.Node, e env) *effect.Effect {
	valueEffect := inf.infer(n.Value, e)
	bodyEffect := inf.infer(n.Body, e.extend(n.Name, valueEffect))
	return inf.record(n, bodyEffect, nil)
}

func (inf *inferer) inferLambda(n *ir.Node, e env) *effect.Effect {
	params := make([]*effect.Effect, len(n.Params))
	body := e
	for i, p := range n.Params {
		fresh := effect.NewQuantified(inf.fresh.next("param"))
		params[i] = fresh
		body = body.extend(p, fresh)
	}
	bodyEffect := inf.infer(n.Body, body)
	return inf.record(n, effect.NewArrow(params, bodyEffect), nil)
}

// record stores the inferred effect (re-canonicalized) for a node, or, on
// error, an error tree plus a fresh quantified placeholder so that
// ancestor unifications don't cascade spurious mismatches.
func (inf *inferer) record(n *ir.Node, e *effect.Effect, err error) *effect.Effect {
	if err == nil {
		e, err = effect.Simplify(e)
	}
	if err != nil {
		tree, ok := err.(*effect.ErrorTree)
		if !ok {
			tree = effect.Leaf(err.Error(), "")
		}
		inf.result.Errors[n.ID] = tree
		placeholder := effect.NewQuantified(inf.fresh.next("failed"))
		inf.result.Effects[n.ID] = placeholder
		return placeholder
	}
	inf.result.Effects[n.ID] = e
	return e
}
