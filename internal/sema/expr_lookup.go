package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/symbols"
)

// checkID resolves an ID expression: scope first, then the package's
// top-level defs (core spec §4.9 ID).
func (c *Checker) checkID(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	if ref, ok := c.Scope.Lookup(n.Sym, symbols.MaxLookupDepth); ok {
		c.bindID(n, ref)
		return
	}
	if ref, ok := c.Pkg.Lookup(n.Sym); ok {
		refNode := c.node(ref)
		if refNode.Flags.Visibility() < ast.VisPkg {
			refNode.Flags = refNode.Flags.WithVisibility(ast.VisPkg)
		}
		c.bindID(n, ref)
		return
	}

	loc := n.Loc
	name := c.name(n.Sym)
	c.errorf(diag.LookupUnknownIdent, loc, fmt.Sprintf("unknown identifier %q", name))
	if local, ok := c.renameTable[n.Sym]; ok {
		c.helpf(diag.HelpImportRename, loc, fmt.Sprintf("%s was imported as %s", name, c.name(local)))
	}
	c.suggest(loc, name)
	n.Type = c.Unknown()
}

// bindID finishes resolving id against ref: an ID referencing a type makes
// the ID itself a type reference (core spec §4.9 ID: "If the referent is a
// type, the ID's type is that type").
func (c *Checker) bindID(n *ast.Node, ref ast.NodeID) {
	n.Ref = ref
	c.use(ref)
	refNode := c.node(ref)
	if refNode.Kind.IsType() {
		n.Type = ref
		return
	}
	n.Type = refNode.Type
}

// suggest emits a HELP "did you mean" diagnostic for name against every
// binding currently visible plus the package's top-level names (core spec
// §4.4).
func (c *Checker) suggest(loc source.Loc, name string) {
	candidates := make([]string, 0, 16)
	c.Scope.Iterate(func(sym source.StringID, _ ast.NodeID) bool {
		candidates = append(candidates, c.name(sym))
		return true
	})
	for _, s := range c.Pkg.Names() {
		candidates = append(candidates, c.name(s))
	}
	if best := diag.Suggest(name, candidates); best != "" {
		c.helpf(diag.HelpDidYouMean, loc, fmt.Sprintf("did you mean %q?", best))
	}
}

// checkNS handles a namespace-value expression: checking these is not
// implemented, so it reports TypeNotImplemented and gives the node the
// unknown type.
func (c *Checker) checkNS(id ast.NodeID) {
	n := c.node(id)
	c.errorf(diag.TypeNotImplemented, n.Loc, "namespace expression checking is not implemented")
	n.Type = c.Unknown()
}

// checkMember checks `recv.sym` (core spec §4.9 MEMBER).
func (c *Checker) checkMember(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	recvType := c.CheckExpr(n.A, ast.NilNode)
	unwrapped := c.unwrapPointerLike(recvType)

	if c.node(unwrapped).Kind == ast.KindOptional {
		c.errorf(diag.TypeOptionalUnchecked, n.Loc,
			fmt.Sprintf("optional value may not be valid; use if %s ... to narrow it first", c.exprSource(n.A)))
		n.Type = c.Unknown()
		return
	}

	unwrapped = c.unwrapAliasAndRefs(unwrapped)
	structNode := c.node(unwrapped)
	if structNode.Kind == ast.KindStruct {
		for _, fid := range structNode.Children {
			f := c.node(fid)
			if f.Sym == n.Sym {
				n.Ref = fid
				c.use(fid)
				n.Type = f.A
				return
			}
		}
	}

	if fn, ok := c.Pkg.LookupMethod(structNode.TypeKey, n.Sym); ok {
		n.Ref = fn
		c.use(fn)
		n.Type = fn // MEMBER naming a method: type is the function itself; CALL lowers it
		return
	}

	c.errorf(diag.LookupUnknownMember, n.Loc, fmt.Sprintf("unknown member %q", c.name(n.Sym)))
	n.Type = c.Unknown()
}

// unwrapPointerLike strips one level of PTR/REF/MUTREF so MEMBER/field
// lookups see through a pointer the way `.` does in the source language.
func (c *Checker) unwrapPointerLike(id ast.NodeID) ast.NodeID {
	n := c.node(id)
	switch n.Kind {
	case ast.KindPtr, ast.KindRef, ast.KindMutRef:
		return n.A
	default:
		return id
	}
}

func (c *Checker) unwrapAliasAndRefs(id ast.NodeID) ast.NodeID {
	for {
		n := c.node(id)
		switch n.Kind {
		case ast.KindAlias:
			id = n.A
		case ast.KindPtr, ast.KindRef, ast.KindMutRef:
			id = n.A
		default:
			return id
		}
	}
}

// exprSource renders a short human-readable form of an expression for
// diagnostic messages (identifiers only; anything else falls back to a
// generic placeholder).
func (c *Checker) exprSource(id ast.NodeID) string {
	n := c.node(id)
	if n.Kind == ast.KindID {
		return c.name(n.Sym)
	}
	return "<expr>"
}
