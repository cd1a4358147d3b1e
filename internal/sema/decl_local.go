package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
)

// checkLocal checks a VAR/LET/PARAM/FIELD declaration (core spec §4.9
// LOCAL).
func (c *Checker) checkLocal(id ast.NodeID) {
	n := c.node(id)

	declared := n.A
	if declared != ast.NilNode {
		declared = c.CheckType(declared)
		n.A = declared
	}

	if n.B != ast.NilNode {
		initType := c.CheckExpr(n.B, declared)
		if declared == ast.NilNode || c.node(declared).Kind == ast.KindUnknown {
			n.A = initType
			declared = initType
		} else if !c.Oracle.Assignable(declared, initType) {
			c.errorf(diag.TypeUnassignable, n.Loc,
				fmt.Sprintf("cannot assign value of type %s to %s of type %s",
					c.node(initType).Kind, bindingWord(n.Kind), c.node(declared).Kind))
		}
	}

	if declared != ast.NilNode && c.node(declared).Kind == ast.KindVoid && !n.Flags.Has(ast.FlagNarrowed) {
		c.errorf(diag.TypeVoidValue, n.Loc, fmt.Sprintf("%s cannot have type void", bindingWord(n.Kind)))
	}

	if n.Sym == c.Reserved.Wildcard && declared != ast.NilNode && c.node(declared).IsOwnerType() {
		// An ownership-tracking pass downstream needs a unique name even for
		// a discarded owner binding; synthesize one deterministically from
		// the node's arena position.
		n.Sym = c.Strings.Intern(fmt.Sprintf("_$owner%d", id))
	}

	if n.Sym == c.Reserved.This {
		c.fitThisParam(n, declared)
	}

	n.Type = declared
	if n.Kind != ast.KindParam && n.Kind != ast.KindField {
		c.Scope.Define(n.Sym, id)
	}
}

// bindingWord renders a LOCAL's kind the way diagnostics quote source
// syntax: lowercase "let"/"var" instead of Kind.String()'s uppercase debug
// form. PARAM/FIELD have no such keyword form and pass through unchanged.
func bindingWord(k ast.Kind) string {
	switch k {
	case ast.KindLet:
		return "let"
	case ast.KindVar:
		return "var"
	default:
		return k.String()
	}
}

// fitThisParam applies core spec §4.9 LOCAL's `this` passing convention:
// primitives, already-reference types, and non-owner structs of at most two
// pointer widths pass as declared; everything else is implicitly wrapped
// as &T. The wrapper is always the immutable &T, never mut&T, whatever the
// parameter's mutability.
func (c *Checker) fitThisParam(n *ast.Node, declared ast.NodeID) {
	if declared == ast.NilNode {
		return
	}
	d := c.node(declared)
	if d.Kind.IsPrimitiveType() {
		return
	}
	pointerWidth := c.node(c.Prims.Uint).Size
	if d.Kind == ast.KindStruct && d.Size <= 2*pointerWidth && !d.IsOwnerType() {
		return
	}
	if d.Kind == ast.KindRef || d.Kind == ast.KindMutRef {
		return
	}
	n.A = c.B.NewPtrLike(ast.KindRef, n.Loc, declared)
}
