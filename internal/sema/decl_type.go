package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
)

// CheckType checks a type-syntax node: recursively checks element types,
// computes struct layout, interns the result, and enqueues structs/aliases
// for post-analysis owner propagation (core spec §4.10).
func (c *Checker) CheckType(id ast.NodeID) ast.NodeID {
	if id == ast.NilNode {
		return c.Unknown()
	}
	n := c.node(id)
	if n.Flags.Has(ast.FlagChecked) {
		return id
	}

	switch n.Kind {
	case ast.KindUnresolved:
		return c.checkUnresolvedType(id)
	case ast.KindPlaceholder:
		if c.templateNest == 0 {
			c.errorf(diag.DeclTemplateArity, n.Loc, "placeholder type used outside a template definition")
		}
		n.Flags = n.Flags.Set(ast.FlagChecked)
		return id
	}

	if n.Kind.IsPrimitiveType() {
		n.Flags = n.Flags.Set(ast.FlagChecked)
		return id
	}

	switch n.Kind {
	case ast.KindArrayType:
		c.CheckType(n.A)
		if n.IntVal <= 0 {
			c.errorf(diag.DeclZeroLengthArray, n.Loc, "array type must have a positive length")
		}
		elem := c.node(n.A)
		n.Size = elem.Size * uint32(max64(n.IntVal, 0))
		n.Align = elem.Align
		if elem.IsOwnerType() {
			n.Flags = n.Flags.Set(ast.FlagSubowners)
		}
	case ast.KindPtr, ast.KindRef, ast.KindMutRef, ast.KindSlice, ast.KindMutSlice, ast.KindOptional:
		c.CheckType(n.A)
		pw := c.node(c.Prims.Uint).Size
		n.Size, n.Align = pw, pw
		if n.Kind == ast.KindSlice || n.Kind == ast.KindMutSlice {
			n.Size = pw * 2 // pointer + length
		}
	case ast.KindAlias:
		c.CheckType(n.A)
		if c.aliasCycle(id, n.A, map[ast.NodeID]bool{}) {
			c.errorf(diag.DeclAliasCycle, n.Loc, fmt.Sprintf("alias %q refers to itself", c.name(n.Sym)))
			n.A = c.Unknown()
		} else if c.node(n.A).IsOwnerType() {
			n.Flags = n.Flags.Set(ast.FlagSubowners)
		}
	case ast.KindStruct:
		c.checkStructLayout(n)
	case ast.KindFunType:
		for _, p := range n.Children {
			c.CheckType(c.node(p).A)
		}
		c.CheckType(n.B)
	case ast.KindTemplate:
		c.templateNest++
		for _, p := range n.Children {
			c.CheckType(p)
		}
		c.CheckType(n.A)
		c.templateNest--
		n.Flags = n.Flags.Set(ast.FlagTemplate)
		n.Flags = n.Flags.Set(ast.FlagChecked)
		return id // templates are never structurally interned
	}

	n.Flags = n.Flags.Set(ast.FlagChecked)
	canon := c.Types.Intern(id)
	if canon != id && (n.Kind == ast.KindStruct || n.Kind == ast.KindAlias) {
		c.postAnalysis = append(c.postAnalysis, canon)
	} else if n.Kind == ast.KindStruct || n.Kind == ast.KindAlias {
		c.postAnalysis = append(c.postAnalysis, id)
	}
	return canon
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// checkStructLayout computes field offsets/alignment in declaration order
// with natural alignment, and whether the struct transitively owns
// anything (core spec §4.10 STRUCT).
func (c *Checker) checkStructLayout(n *ast.Node) {
	var offset, maxAlign uint32 = 0, 1
	for _, fid := range n.Children {
		c.checkLocal(fid) // FIELD reuses the LOCAL contract for its declared type
		f := c.node(fid)
		ft := c.node(f.A)
		if ft.Align == 0 {
			ft.Align = 1
		}
		offset = alignUp(offset, ft.Align)
		f.IntVal = int64(offset) // stash computed field offset
		offset += ft.Size
		if ft.Align > maxAlign {
			maxAlign = ft.Align
		}
		if ft.IsOwnerType() {
			n.Flags = n.Flags.Set(ast.FlagSubowners)
		}
	}
	n.Size = alignUp(offset, maxAlign)
	n.Align = maxAlign
}

func alignUp(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	if rem := offset % align; rem != 0 {
		return offset + (align - rem)
	}
	return offset
}

// checkUnresolvedType looks a name up for a type declared elsewhere; on
// success it substitutes the resolved type node, on failure it rewrites to
// `unknown` (core spec §4.10 UNRESOLVED).
func (c *Checker) checkUnresolvedType(id ast.NodeID) ast.NodeID {
	n := c.node(id)
	ref, ok := c.lookupIdent(n)
	if !ok {
		c.errorf(diag.LookupUnknownIdent, n.Loc, fmt.Sprintf("unknown type %q", c.name(n.Sym)))
		c.suggest(n.Loc, c.name(n.Sym))
		return c.Unknown()
	}
	refNode := c.node(ref)
	if !refNode.Kind.IsType() {
		c.errorf(diag.LookupUnknownIdent, n.Loc, fmt.Sprintf("%q is not a type", c.name(n.Sym)))
		return c.Unknown()
	}
	n.Ref = ref
	return c.CheckType(ref)
}

// aliasCycle reports whether following ALIAS chains from id eventually
// reaches id again.
func (c *Checker) aliasCycle(id, elem ast.NodeID, seen map[ast.NodeID]bool) bool {
	if elem == id {
		return true
	}
	if seen[elem] {
		return false
	}
	seen[elem] = true
	en := c.node(elem)
	if en.Kind == ast.KindAlias {
		return c.aliasCycle(id, en.A, seen)
	}
	return false
}

// RunPostAnalysis propagates SUBOWNERS/DROP to fixed point across every
// struct/alias type seen during checking, now that all `drop` methods in
// the package are known (core spec §4.10 Post-analysis).
func (c *Checker) RunPostAnalysis() {
	for {
		changed := false
		for _, id := range c.postAnalysis {
			n := c.node(id)
			switch n.Kind {
			case ast.KindStruct:
				for _, fid := range n.Children {
					ft := c.node(c.node(fid).A)
					if ft.IsOwnerType() && !n.Flags.Has(ast.FlagSubowners) {
						n.Flags = n.Flags.Set(ast.FlagSubowners)
						changed = true
					}
				}
			case ast.KindAlias:
				et := c.node(n.A)
				if et.IsOwnerType() && !n.Flags.Has(ast.FlagSubowners) {
					n.Flags = n.Flags.Set(ast.FlagSubowners)
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}
