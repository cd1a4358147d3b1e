package sema

import (
	"surge/internal/ast"
	"surge/internal/diag"
)

// narrowedBinding is a binding the narrower wants materialized into a
// branch scope: sym bound to a clone of the original node with its type
// replaced (core spec C6).
type narrowedBinding struct {
	sym ast.NodeID // the resolved ID.Ref (or LET/VAR node) this narrowing applies to
}

// conditionNeedsNarrowing reports whether cond's top-level shape mentions
// an optional-typed identifier in boolean position, i.e. whether it is
// worth running the narrower at all instead of a plain bool check.
func (c *Checker) conditionNeedsNarrowing(cond ast.NodeID) bool {
	return c.conditionMentionsOptional(cond, 0)
}

func (c *Checker) conditionMentionsOptional(id ast.NodeID, depth int) bool {
	if id == ast.NilNode || depth > 32 {
		return false
	}
	n := c.node(id)
	switch n.Kind {
	case ast.KindID:
		ref, ok := c.lookupIdent(n)
		if !ok {
			return false
		}
		return c.node(c.declaredType(ref)).Kind == ast.KindOptional
	case ast.KindPrefixOp:
		return c.name(n.Sym) == "!" && c.conditionMentionsOptional(n.A, depth+1)
	case ast.KindBinOp:
		op := c.name(n.Sym)
		return (op == "&&" || op == "||") &&
			(c.conditionMentionsOptional(n.A, depth+1) || c.conditionMentionsOptional(n.B, depth+1))
	case ast.KindLet, ast.KindVar:
		return true // `if let x = ...` short-form narrowing definition
	default:
		return false
	}
}

func (c *Checker) lookupIdent(n *ast.Node) (ast.NodeID, bool) {
	if ref, ok := c.Scope.Lookup(n.Sym, ^uint(0)); ok {
		return ref, true
	}
	return c.Pkg.Lookup(n.Sym)
}

func (c *Checker) declaredType(ref ast.NodeID) ast.NodeID {
	n := c.node(ref)
	if n.Kind == ast.KindVar || n.Kind == ast.KindLet || n.Kind == ast.KindParam || n.Kind == ast.KindField {
		return n.A
	}
	return n.Type
}

// narrowCondition walks cond, producing the bindings to materialize in the
// then-branch and (inverted) else-branch scopes. `||` is rejected with
// MutNarrowCombinator whenever either operand mentions narrowing, whether a
// short-form let/var or an already-bound optional identifier; a `||` over
// operands that mention neither yields no narrowing.
func (c *Checker) narrowCondition(cond ast.NodeID) (thenB, elseB []narrowedBinding) {
	n := c.node(cond)
	switch n.Kind {
	case ast.KindLet, ast.KindVar:
		c.checkLocal(cond)
		return []narrowedBinding{{sym: cond}}, nil
	case ast.KindPrefixOp:
		if c.name(n.Sym) == "!" {
			inner := c.node(n.A)
			if inner.Kind == ast.KindLet || inner.Kind == ast.KindVar {
				c.errorf(diag.MutNarrowCombinator, n.Loc,
					"cannot use type-narrowing let/var definition with '!' operation")
				c.CheckExpr(cond, ast.NilNode)
				return nil, nil
			}
			t, e := c.narrowCondition(n.A)
			c.CheckExpr(cond, ast.NilNode)
			return e, t // `!` swaps which branch sees the narrowed type
		}
	case ast.KindBinOp:
		op := c.name(n.Sym)
		if op == "&&" {
			lt, _ := c.narrowCondition(n.A)
			rt, _ := c.narrowCondition(n.B)
			c.CheckExpr(cond, ast.NilNode)
			return append(lt, rt...), nil
		}
		if op == "||" {
			if c.mentionsNarrowing(n.A) || c.mentionsNarrowing(n.B) {
				c.errorf(diag.MutNarrowCombinator, n.Loc,
					"cannot use type-narrowing let/var definition with '||' operation")
			}
			c.CheckExpr(cond, ast.NilNode)
			return nil, nil
		}
	case ast.KindID:
		ref, _ := c.lookupIdent(n)
		c.CheckExpr(cond, ast.NilNode)
		return []narrowedBinding{{sym: ref}}, nil
	}
	c.CheckExpr(cond, ast.NilNode)
	return nil, nil
}

// mentionsNarrowing reports whether id is, or recursively contains, a
// construct the narrower would otherwise try to narrow: a short-form
// `let`/`var` definition, a bare optional-typed identifier, or `!`/`&&`/`||`
// over one of those. `||` can't safely combine with any of them (core spec
// §4.6: OR doesn't guarantee either operand's presence), so every operand
// on both sides of a `||` must be checked, not just its direct children.
func (c *Checker) mentionsNarrowing(id ast.NodeID) bool {
	n := c.node(id)
	switch n.Kind {
	case ast.KindLet, ast.KindVar:
		return true
	case ast.KindID:
		ref, ok := c.lookupIdent(n)
		return ok && c.node(c.declaredType(ref)).Kind == ast.KindOptional
	case ast.KindPrefixOp:
		return c.name(n.Sym) == "!" && c.mentionsNarrowing(n.A)
	case ast.KindBinOp:
		op := c.name(n.Sym)
		return (op == "&&" || op == "||") &&
			(c.mentionsNarrowing(n.A) || c.mentionsNarrowing(n.B))
	default:
		return false
	}
}

// applyNarrowed materializes a set of narrowed bindings into the
// currently-open scope frame by cloning each binding's node with its
// declared type unwrapped from OPTIONAL to its inner type, and marking the
// clone FlagNarrowed so assignment/definition diagnostics can recognize it
// (core spec §4.9d, §3 NARROWED invariant).
func (c *Checker) applyNarrowed(bindings []narrowedBinding) {
	for _, nb := range bindings {
		orig := c.node(nb.sym)
		if orig.Kind == ast.KindLet || orig.Kind == ast.KindVar {
			// Short-form `if let x = ...`: already defined directly in the
			// branch scope by checkLocal; nothing further to clone.
			continue
		}
		optType := c.declaredType(nb.sym)
		if c.node(optType).Kind != ast.KindOptional {
			continue
		}
		clone := c.B.Clone(nb.sym)
		cn := c.node(clone)
		cn.A = c.node(optType).A
		cn.Type = cn.A
		cn.Flags = cn.Flags.Set(ast.FlagNarrowed)
		cn.NUse = 0
		c.Scope.Define(orig.Sym, clone)
	}
}
