package sema

import "surge/internal/ast"

// substitution maps a placeholder's identity (its NodeID within the
// template body) to the argument type node it should be replaced with —
// the AST transformer's substitution function (core spec C8).
type substitution map[ast.NodeID]ast.NodeID

// transform performs a pre-order walk of id, replacing any PLACEHOLDER
// node found in sub with its argument. When a child is replaced with a
// distinct node, the parent is cloned and the slot updated; otherwise the
// original id is returned unchanged (core spec §4.8).
//
// The type of an expression node is never walked directly — only its
// syntactic children — matching the core spec's explicit carve-out ("must
// never visit the type of an expression").
func (c *Checker) transform(id ast.NodeID, sub substitution) ast.NodeID {
	if id == ast.NilNode {
		return id
	}
	if repl, ok := sub[id]; ok {
		return repl
	}

	n := c.node(id)
	changed := false

	newA := c.transform(n.A, sub)
	changed = changed || newA != n.A
	newB := c.transform(n.B, sub)
	changed = changed || newB != n.B
	newC := c.transform(n.C, sub)
	changed = changed || newC != n.C

	var newChildren []ast.NodeID
	if n.Children != nil {
		newChildren = make([]ast.NodeID, len(n.Children))
		for i, child := range n.Children {
			newChildren[i] = c.transform(child, sub)
			if newChildren[i] != child {
				changed = true
			}
		}
	}

	if !changed {
		return id
	}

	clone := c.B.Clone(id)
	cn := c.node(clone)
	cn.A, cn.B, cn.C = newA, newB, newC
	cn.Children = newChildren
	cn.TypeKey = "" // structural key must be recomputed once substituted
	cn.Flags = cn.Flags.Clear(ast.FlagChecked)
	return clone
}
