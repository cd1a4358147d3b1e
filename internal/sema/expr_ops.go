package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/types"
)

// checkBinOp checks a binary operator expression (core spec §4.9 BINOP).
func (c *Checker) checkBinOp(id ast.NodeID) {
	n := c.node(id)
	op := c.name(n.Sym)
	ltype := c.CheckExpr(n.A, ast.NilNode)
	rtype := c.CheckExpr(n.B, ltype)

	switch op {
	case "==", "!=", "<", ">", "<=", ">=":
		if !c.Oracle.Equivalent(ltype, rtype) {
			c.errorf(diag.TypeIncompatible, n.Loc,
				fmt.Sprintf("operands of %q must be the same type", op))
		}
		n.Type = c.Prims.Bool
	case "&&", "||":
		if !c.isBoolable(ltype) || !c.isBoolable(rtype) {
			c.errorf(diag.TypeInvalidBoolCtx, n.Loc, fmt.Sprintf("operands of %q must be bool or an optional", op))
		}
		n.Type = c.Prims.Bool
	default:
		if !c.Oracle.Compatible(ltype, rtype) {
			c.errorf(diag.TypeIncompatible, n.Loc,
				fmt.Sprintf("operands of %q are not compatible", op))
			n.Type = ltype
			return
		}
		lkind := c.canonicalPrimKind(c.unwrapAliasAndRefs(ltype))
		if !types.Allowed(lkind, op) {
			c.errorf(diag.TypeOperatorNotOnType, n.Loc,
				fmt.Sprintf("operator %q is not defined for type %s", op, lkind))
		}
		n.Type = ltype
	}
}

func (c *Checker) isBoolable(id ast.NodeID) bool {
	n := c.node(id)
	if n.Kind == ast.KindBool || n.Kind == ast.KindOptional {
		return true
	}
	return n.Flags.Has(ast.FlagNarrowed)
}

// checkAssign checks `lhs = rhs` (core spec §4.9 ASSIGN).
func (c *Checker) checkAssign(id ast.NodeID) {
	n := c.node(id)
	if c.isWildcard(n.A) {
		c.node(n.A).Type = c.Void()
		rtype := c.CheckExpr(n.B, ast.NilNode)
		n.Type = rtype
		return
	}

	ltype := c.CheckExpr(n.A, ast.NilNode)
	rtype := c.CheckExpr(n.B, ltype)

	if !c.Oracle.Assignable(ltype, rtype) {
		c.errorf(diag.TypeUnassignable, n.Loc,
			fmt.Sprintf("cannot assign value of type %s to a target of type %s",
				c.node(rtype).Kind, c.node(ltype).Kind))
	}
	c.checkWritable(n.A)
	n.Type = ltype
}

func (c *Checker) isWildcard(id ast.NodeID) bool {
	n := c.node(id)
	return n.Kind == ast.KindID && n.Sym == c.Reserved.Wildcard
}

// checkWritable enforces core spec §4.9d: the assignability of an LHS.
func (c *Checker) checkWritable(id ast.NodeID) {
	n := c.node(id)
	switch n.Kind {
	case ast.KindID:
		if n.Ref == ast.NilNode {
			return
		}
		if n.Flags.Has(ast.FlagNarrowed) {
			c.errorf(diag.MutAssignNarrowed, n.Loc, "cannot assign to a type-narrowed binding")
			return
		}
		refKind := c.node(n.Ref).Kind
		if refKind != ast.KindVar {
			c.errorf(diag.MutAssignImmutable, n.Loc, "cannot assign to a non-var binding")
		}
	case ast.KindMember:
		recvType := c.node(n.A).Type
		recvKind := c.node(recvType).Kind
		if recvKind == ast.KindRef {
			c.errorf(diag.MutAssignThroughRef, n.Loc, "cannot assign through an immutable reference")
		}
	case ast.KindDeref:
		srcType := c.node(n.A).Type
		if c.node(srcType).Kind == ast.KindRef {
			c.errorf(diag.MutAssignThroughRef, n.Loc, "cannot assign through an immutable reference")
		}
	}
}

// checkPrefixOp checks `&x`, `mut&x`, `++x`/`--x`, `!x` (core spec §4.9
// UNARYOP, prefix forms).
func (c *Checker) checkPrefixOp(id ast.NodeID) {
	n := c.node(id)
	op := c.name(n.Sym)
	switch op {
	case "&":
		operand := c.CheckExpr(n.A, ast.NilNode)
		n.Type = c.B.NewPtrLike(ast.KindRef, n.Loc, operand)
	case "mut&":
		operand := c.CheckExpr(n.A, ast.NilNode)
		c.checkWritable(n.A)
		n.Type = c.B.NewPtrLike(ast.KindMutRef, n.Loc, operand)
	case "!":
		operand := c.CheckExpr(n.A, ast.NilNode)
		if !c.isBoolable(operand) {
			c.errorf(diag.TypeInvalidBoolCtx, n.Loc, "operand of ! must be bool or an optional")
		}
		n.Type = c.Prims.Bool
	case "++", "--":
		operand := c.CheckExpr(n.A, ast.NilNode)
		c.checkWritable(n.A)
		n.Type = operand
	default:
		n.Type = c.CheckExpr(n.A, ast.NilNode)
	}
}

// checkPostfixOp checks `x++`/`x--`.
func (c *Checker) checkPostfixOp(id ast.NodeID) {
	n := c.node(id)
	operand := c.CheckExpr(n.A, ast.NilNode)
	c.checkWritable(n.A)
	n.Type = operand
}

// checkDeref checks `*x` (core spec §4.9 UNARYOP deref form).
func (c *Checker) checkDeref(id ast.NodeID) {
	n := c.node(id)
	srcType := c.CheckExpr(n.A, ast.NilNode)
	src := c.node(srcType)
	switch src.Kind {
	case ast.KindPtr:
		if src.IsOwnerType() || c.node(src.A).IsOwnerType() {
			c.errorf(diag.MutDerefMovesOwner, n.Loc, "dereferencing this pointer would move a borrowed owner")
		}
		n.Type = src.A
	case ast.KindRef, ast.KindMutRef:
		n.Type = src.A
	default:
		c.errorf(diag.TypeOperatorNotOnType, n.Loc, "cannot dereference a non-pointer type")
		n.Type = c.Unknown()
	}
}

// checkSubscript checks `recv[index]` (core spec §4.9 SUBSCRIPT): the
// index must be uint, or a constant checkable against a known array
// length.
func (c *Checker) checkSubscript(id ast.NodeID) {
	n := c.node(id)
	recvType := c.CheckExpr(n.A, ast.NilNode)
	idxType := c.CheckExpr(n.B, c.Prims.Uint)

	recv := c.node(c.unwrapAliasAndRefs(recvType))
	var elem ast.NodeID
	switch recv.Kind {
	case ast.KindArrayType, ast.KindSlice, ast.KindMutSlice:
		elem = recv.A
	default:
		c.errorf(diag.TypeOperatorNotOnType, n.Loc, "value is not indexable")
		n.Type = c.Unknown()
		return
	}

	if c.node(n.B).Kind != ast.KindIntLit && c.canonicalPrimKind(idxType) != c.canonicalPrimKind(c.Prims.Uint) {
		c.errorf(diag.TypeIncompatible, c.node(n.B).Loc, "array index must be uint")
	}

	if recv.Kind == ast.KindArrayType && c.node(n.B).Kind == ast.KindIntLit {
		idx := c.node(n.B).IntVal
		if idx < 0 || idx >= recv.IntVal {
			c.errorf(diag.TypeIndexOutOfBounds, c.node(n.B).Loc,
				fmt.Sprintf("index %d is out of bounds for an array of length %d", idx, recv.IntVal))
		}
	}
	n.Type = elem
}
