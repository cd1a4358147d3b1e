package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
)

// Unit bundles a parsed UNIT node with its already-resolved imports. The
// package loader (an external collaborator, core spec §6) is responsible
// for turning each IMPORT's source path into a namespace value and member
// list before the checker ever sees it.
type Unit struct {
	Node    ast.NodeID // UNIT node; Children is the unit's top-level statement list in source order
	Imports []UnitImport
}

// UnitImport is one IMPORT statement within a Unit, already resolved
// against the loader's namespace/member data.
type UnitImport struct {
	Stmt     ast.NodeID // the IMPORT node itself, for diagnostic location
	NS       ast.NodeID
	Members  []ImportMember
	Alias    source.StringID
	Names    []ImportSpec
	Wildcard bool
}

// Check runs the full semantic pass over a package's units (core spec §2):
// enter a package scope, then for each unit enter a unit scope, bind
// imports (C11), define that unit's top-level declarations so references
// within the unit see them regardless of source order, then statement-check
// that unit's bodies before moving on to the next unit. Owner-propagation
// post-analysis runs once after every unit has been checked.
func (c *Checker) Check(units []Unit) {
	c.Scope.Push()
	defer c.Scope.Pop()

	for _, u := range units {
		c.checkUnit(u)
	}
	c.RunPostAnalysis()
}

func (c *Checker) checkUnit(u Unit) {
	c.Scope.Push()
	defer c.Scope.Pop()

	for _, imp := range u.Imports {
		c.CheckImport(imp.Stmt, imp.NS, imp.Members, imp.Alias, imp.Names, imp.Wildcard)
	}

	un := c.node(u.Node)
	for _, id := range un.Children {
		c.defineTopLevel(id)
	}
	for _, id := range un.Children {
		c.checkTopLevel(id)
	}
	un.Flags = un.Flags.Set(ast.FlagChecked)
}

// defineTopLevel binds a unit-level declaration's name before that unit's
// bodies are statement-checked, so forward references within the unit
// resolve (core spec §2 ordering guarantee); a unit checked earlier does
// not see declarations of a unit checked later.
// Methods (FUN with a receiver) are skipped here: they're keyed by their
// receiver's canonical type-id, which isn't known until the receiver type
// itself has been checked, so they're registered in checkTopLevel instead.
func (c *Checker) defineTopLevel(id ast.NodeID) {
	n := c.node(id)
	switch n.Kind {
	case ast.KindFun:
		if n.A != ast.NilNode {
			return
		}
		c.defineOrDiagnoseDuplicate(n.Sym, n.Loc, id)
	case ast.KindTypedef, ast.KindVar, ast.KindLet:
		c.defineOrDiagnoseDuplicate(n.Sym, n.Loc, id)
	}
}

func (c *Checker) defineOrDiagnoseDuplicate(sym source.StringID, loc source.Loc, id ast.NodeID) {
	if !c.Pkg.Define(sym, id) {
		c.errorf(diag.DeclDuplicate, loc, fmt.Sprintf("duplicate definition of %q", c.name(sym)))
		return
	}
	c.Scope.Define(sym, id)
}

// checkTopLevel statement-checks one top-level declaration.
func (c *Checker) checkTopLevel(id ast.NodeID) {
	n := c.node(id)
	switch n.Kind {
	case ast.KindFun:
		c.CheckFunDecl(id)
		if n.A != ast.NilNode {
			c.registerMethod(id, n)
		}
	case ast.KindTypedef:
		c.CheckTypedef(id)
	case ast.KindVar, ast.KindLet:
		c.checkLocal(id)
	}
}

// registerMethod keys a checked method under its receiver's canonical
// type-id and method name (core spec §3: "the package's type-function
// table keyed by the receiver's unwrapped-pointer type-id").
func (c *Checker) registerMethod(id ast.NodeID, n *ast.Node) {
	recv := c.unwrapPointerLike(n.A)
	key := c.node(recv).TypeKey
	if !c.Pkg.DefineMethod(key, n.Sym, id) {
		c.errorf(diag.DeclDuplicate, n.Loc, fmt.Sprintf("duplicate method %q", c.name(n.Sym)))
	}
}
