package sema

import "surge/internal/ast"

// CheckExpr visits an expression node, assigning its Type and setting
// FlagChecked. ctx is the type context propagated from the enclosing
// construct (e.g. a declared local's type, a parameter's type); pass
// NilNode when there is none. Revisiting an already-checked node is a
// no-op and returns its existing type (core spec §3/§8 idempotence
// invariant).
func (c *Checker) CheckExpr(id ast.NodeID, ctx ast.NodeID) ast.NodeID {
	if id == ast.NilNode {
		return c.Void()
	}
	n := c.node(id)
	if n.Flags.Has(ast.FlagChecked) {
		return n.Type
	}
	if c.reportedError {
		n.Type = c.Unknown()
		return n.Type
	}

	switch n.Kind {
	case ast.KindID:
		c.checkID(id, ctx)
	case ast.KindNS:
		c.checkNS(id)
	case ast.KindMember:
		c.checkMember(id, ctx)
	case ast.KindSubscript:
		c.checkSubscript(id)
	case ast.KindIntLit:
		c.checkIntLit(id, ctx)
	case ast.KindFloatLit:
		c.checkFloatLit(id, ctx)
	case ast.KindStrLit:
		c.checkStrLit(id, ctx)
	case ast.KindBoolLit:
		n.Type = c.Prims.Bool
	case ast.KindArrayLit:
		c.checkArrayLit(id, ctx)
	case ast.KindBinOp:
		c.checkBinOp(id)
	case ast.KindAssign:
		c.checkAssign(id)
	case ast.KindPrefixOp:
		c.checkPrefixOp(id)
	case ast.KindPostfixOp:
		c.checkPostfixOp(id)
	case ast.KindDeref:
		c.checkDeref(id)
	case ast.KindCall:
		c.checkCall(id, ctx)
	case ast.KindTypecons:
		c.checkTypecons(id, ctx)
	case ast.KindBlock:
		c.checkBlock(id)
	case ast.KindIf:
		c.checkIf(id, ctx)
	case ast.KindReturn:
		c.checkReturn(id)
	case ast.KindFor:
		c.checkFor(id)
	case ast.KindFun:
		c.checkFunExpr(id)
	case ast.KindVar, ast.KindLet, ast.KindParam, ast.KindField:
		c.checkLocal(id)
	default:
		n.Type = c.Unknown()
	}

	if n.Type == ast.NilNode {
		n.Type = c.Unknown()
	}
	if c.node(n.Type).Kind == ast.KindUnknown {
		n.Flags = n.Flags.Set(ast.FlagUnknown)
	}
	n.Flags = n.Flags.Set(ast.FlagChecked)
	return n.Type
}

// use records a read access to id (an ID/MEMBER whose Ref points at a
// binding), incrementing the referent's use-count for the unused-binding
// diagnostics in checkBlock.
func (c *Checker) use(ref ast.NodeID) {
	if ref == ast.NilNode {
		return
	}
	c.node(ref).NUse++
}
