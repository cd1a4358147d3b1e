package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
)

// checkBlock checks a BLOCK (core spec §4.9 BLOCK).
func (c *Checker) checkBlock(id ast.NodeID) {
	n := c.node(id)
	rvalue := n.Flags.Has(ast.FlagRValue)
	c.Scope.Push()
	defer c.Scope.Pop()

	exited := false
	var resultType ast.NodeID = c.Void()

	for i, child := range n.Children {
		if exited {
			break
		}
		isLast := i == len(n.Children)-1
		if rvalue && isLast {
			resultType = c.CheckExpr(child, ast.NilNode)
		} else {
			c.CheckExpr(child, ast.NilNode)
		}
		cn := c.node(child)
		if cn.Kind == ast.KindReturn || cn.Flags.Has(ast.FlagExit) {
			exited = true
			n.Flags = n.Flags.Set(ast.FlagExit)
		}
	}

	if rvalue {
		n.Type = resultType
	} else {
		n.Type = c.Void()
	}

	c.warnUnusedLocals(n.Children)
}

// warnUnusedLocals emits HelpUnusedLocal for any LET/VAR binding in
// children whose use-count is 0 (core spec §4.9 BLOCK: "warn on any child
// whose use-count is 0 and which has no side effects").
func (c *Checker) warnUnusedLocals(children []ast.NodeID) {
	for _, child := range children {
		n := c.node(child)
		if (n.Kind == ast.KindLet || n.Kind == ast.KindVar) && n.NUse == 0 && n.Sym != c.Reserved.Wildcard {
			c.helpf(diag.HelpUnusedLocal, n.Loc, fmt.Sprintf("%s is never used", c.name(n.Sym)))
		}
	}
}

// checkIf checks an IF (core spec §4.9 IF).
func (c *Checker) checkIf(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	narrowing := c.conditionNeedsNarrowing(n.A)

	var thenNarrow, elseNarrow []narrowedBinding
	if narrowing {
		thenNarrow, elseNarrow = c.narrowCondition(n.A)
	} else {
		condType := c.CheckExpr(n.A, ast.NilNode)
		if !c.isBoolable(condType) {
			c.errorf(diag.TypeInvalidBoolCtx, n.Loc, "if condition must be bool, an optional, or narrowed")
		}
	}

	c.Scope.Push()
	c.applyNarrowed(thenNarrow)
	thenType := c.CheckExpr(n.B, ast.NilNode)
	c.Scope.Pop()

	var elseType ast.NodeID = ast.NilNode
	if n.C != ast.NilNode {
		c.Scope.Push()
		c.applyNarrowed(elseNarrow)
		elseType = c.CheckExpr(n.C, ast.NilNode)
		c.Scope.Pop()
	}

	if !n.Flags.Has(ast.FlagRValue) {
		n.Type = c.Void()
		return
	}

	if elseType == ast.NilNode {
		n.Type = c.Types.Intern(c.B.NewPtrLike(ast.KindOptional, n.Loc, thenType))
		return
	}
	if c.Oracle.Equivalent(thenType, elseType) {
		n.Type = thenType
		return
	}
	c.errorf(diag.TypeMismatchedIfArms, n.Loc, "if-expression branches have incompatible types")
	n.Type = thenType
}

// checkReturn checks RETURN against the enclosing function's declared
// result (core spec §4.9 RETURN).
func (c *Checker) checkReturn(id ast.NodeID) {
	n := c.node(id)
	n.Flags = n.Flags.Set(ast.FlagExit)

	if c.currentFun == ast.NilNode {
		n.Type = c.Void()
		return
	}
	fn := c.node(c.currentFun)
	result := fn.B

	if n.A == ast.NilNode {
		if result != ast.NilNode && c.node(result).Kind != ast.KindVoid {
			c.errorf(diag.TypeMissingReturn, n.Loc, "missing return value",
				diag.Note{Loc: c.node(result).Loc, Msg: fmt.Sprintf("%s returns %s", c.name(fn.Sym), c.node(result).Kind)})
		}
		n.Type = c.Void()
		return
	}

	valType := c.CheckExpr(n.A, result)
	if result != ast.NilNode && !c.Oracle.Assignable(result, valType) {
		c.errorf(diag.TypeInvalidResult, n.Loc,
			fmt.Sprintf("invalid function result type: %s", c.node(valType).Kind),
			diag.Note{Loc: c.node(result).Loc, Msg: fmt.Sprintf("%s returns %s", c.name(fn.Sym), c.node(result).Kind)})
	}
	n.Type = valType
}

// checkFor is intentionally unimplemented: EXPR_FOR is an explicit open
// question the core spec instructs not to guess at.
func (c *Checker) checkFor(id ast.NodeID) {
	n := c.node(id)
	c.errorf(diag.TypeNotImplemented, n.Loc, "for-loop checking is not implemented")
	n.Type = c.Unknown()
}

// checkFunExpr checks a function *value* expression (a FUN node appearing
// as an expression rather than a top-level declaration); delegates to the
// declaration checker's signature/body logic.
func (c *Checker) checkFunExpr(id ast.NodeID) {
	c.CheckFunDecl(id)
}
