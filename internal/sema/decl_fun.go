package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
)

// CheckFunDecl checks a FUN node (core spec §4.10 FUN).
func (c *Checker) CheckFunDecl(id ast.NodeID) {
	n := c.node(id)
	prevFun := c.currentFun
	c.currentFun = id
	defer func() { c.currentFun = prevFun }()

	isMethod := n.A != ast.NilNode
	if isMethod {
		n.A = c.CheckType(n.A)
	}
	for _, p := range n.Children {
		c.checkLocal(p)
	}
	if n.B != ast.NilNode {
		c.CheckType(n.B)
	} else {
		n.B = c.Void()
	}

	if c.name(n.Sym) == "drop" {
		c.checkDropSignature(n)
	}
	if c.isMainFun(n) {
		c.checkMainSignature(id, n)
	}

	c.Scope.Push()
	for _, p := range n.Children {
		pn := c.node(p)
		c.Scope.Define(pn.Sym, p)
	}
	if n.C != ast.NilNode {
		body := c.node(n.C)
		body.Flags = body.Flags.Set(ast.FlagRValue)
		bodyType := c.CheckExpr(n.C, n.B)

		result := c.node(n.B)
		if result.Kind != ast.KindVoid && !body.Flags.Has(ast.FlagExit) {
			if !c.Oracle.Assignable(n.B, bodyType) {
				c.errorf(diag.TypeInvalidResult, n.Loc,
					fmt.Sprintf("function %s must end in a return of type %s", c.name(n.Sym), result.Kind))
			}
			// Implicit return of the block's trailing rvalue expression.
			if len(body.Children) > 0 {
				last := body.Children[len(body.Children)-1]
				body.Children[len(body.Children)-1] = c.B.NewReturn(c.node(last).Loc, last)
			}
			body.Flags = body.Flags.Set(ast.FlagExit)
		}
	}
	c.Scope.Pop()

	n.Flags = n.Flags.Set(ast.FlagChecked)
}

// checkDropSignature enforces `drop` must be `(mut this) void` (core spec
// §4.10 FUN / scenario 4).
func (c *Checker) checkDropSignature(n *ast.Node) {
	ok := len(n.Children) == 1 && c.node(n.Children[0]).Sym == c.Reserved.This
	if ok {
		recv := c.node(n.Children[0]).A
		ok = recv != ast.NilNode && c.node(recv).Kind == ast.KindMutRef
	}
	ok = ok && c.node(n.B).Kind == ast.KindVoid
	if !ok {
		c.errorf(diag.DeclInvalidDrop, n.Loc, `invalid signature of "drop" function, expecting (mut this) void`)
		return
	}
	if n.A != ast.NilNode {
		recvType := c.node(n.A)
		recvType.Flags = recvType.Flags.Set(ast.FlagDrop)
	}
}

// isMainFun reports whether n is this package's `main` entry point
// candidate.
func (c *Checker) isMainFun(n *ast.Node) bool {
	return n.A == ast.NilNode && n.Sym == c.Reserved.Main
}

// checkMainSignature enforces `main` has no parameters and a void result
// (core spec §4.10 FUN).
func (c *Checker) checkMainSignature(id ast.NodeID, n *ast.Node) {
	if len(n.Children) != 0 || c.node(n.B).Kind != ast.KindVoid {
		c.errorf(diag.DeclMainSignature, n.Loc, "main must take no parameters and return void")
		return
	}
	if c.Pkg.MainFun == ast.NilNode {
		c.Pkg.MainFun = id
	}
}

// CheckTypedef checks a TYPEDEF statement: check the referenced type,
// define the name in the current scope (core spec §4.10 TYPEDEF).
func (c *Checker) CheckTypedef(id ast.NodeID) {
	n := c.node(id)
	canon := c.CheckType(n.A)
	n.A = canon
	n.Type = canon
	c.Scope.Define(n.Sym, id)
	c.Pkg.Define(n.Sym, id)
	n.Flags = n.Flags.Set(ast.FlagChecked)
}
