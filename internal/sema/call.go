package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
)

// checkCall checks CALL (core spec §4.9 CALL): if the receiver is a type,
// the call becomes a construction/cast (§4.9a); if it's a function value,
// it's a function call (§4.9b); otherwise it's an error.
func (c *Checker) checkCall(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	calleeType := c.CheckExpr(n.A, ast.NilNode)
	callee := c.node(n.A)

	isTypeRef := callee.Kind.IsType() || (callee.Ref != ast.NilNode && c.node(callee.Ref).Kind.IsType())
	if isTypeRef {
		c.checkTypeCall(n, callee, ctx)
		return
	}

	ctype := c.node(calleeType)
	if ctype.Kind == ast.KindFunType || ctype.Kind == ast.KindFun {
		c.checkFunCall(n, ctype)
		return
	}

	c.errorf(diag.TypeOperatorNotOnType, n.Loc, "value is not callable")
	n.Type = c.Unknown()
}

// checkTypeCall implements §4.9a: void(), primitive casts, struct
// construction.
func (c *Checker) checkTypeCall(n *ast.Node, callee *ast.Node, ctx ast.NodeID) {
	target := callee.Ref
	if target == ast.NilNode {
		target = n.A
	}
	tn := c.node(target)

	switch {
	case tn.Kind == ast.KindVoid:
		if len(n.Children) != 0 {
			c.errorf(diag.ArityCallArgs, n.Loc, "void() takes no arguments")
		}
		n.Type = c.Void()
	case tn.Kind.IsPrimitiveType():
		if len(n.Children) != 1 {
			c.errorf(diag.ArityCallArgs, n.Loc, "primitive construction takes exactly one argument")
			n.Type = target
			return
		}
		argType := c.CheckExpr(n.Children[0], target)
		if !c.Oracle.Convertible(target, argType) {
			c.errorf(diag.TypeUnconvertible, n.Loc,
				fmt.Sprintf("cannot convert %s to %s", c.node(argType).Kind, tn.Kind))
		}
		n.Kind = ast.KindTypecons
		n.Type = target
	case tn.Kind == ast.KindStruct:
		c.checkStructConstruction(n, tn, target)
	default:
		c.errorf(diag.TypeNotImplemented, n.Loc, "construction of this type kind is not implemented")
		n.Type = c.Unknown()
	}
}

// checkStructConstruction implements named/positional struct construction
// (core spec §4.9a).
func (c *Checker) checkStructConstruction(n *ast.Node, structType *ast.Node, target ast.NodeID) {
	if len(n.Children) > len(structType.Children) {
		c.errorf(diag.ArityFieldShape, n.Loc, "too many arguments for struct construction")
	}
	seen := make(map[ast.NodeID]bool, len(n.Children))
	for _, arg := range n.Children {
		argNode := c.node(arg)
		var field ast.NodeID = ast.NilNode
		if argNode.Kind == ast.KindAssign {
			// name: value parses as an assign-shaped pair in this grammar;
			// A is the name ID, B is the value.
			nameSym := c.node(argNode.A).Sym
			field = c.findField(structType, nameSym)
			if field == ast.NilNode {
				c.errorf(diag.ArityFieldShape, argNode.Loc, fmt.Sprintf("unknown field %q", c.name(nameSym)))
				continue
			}
			c.CheckExpr(argNode.B, c.node(field).A)
		} else if argNode.Kind == ast.KindID {
			field = c.findField(structType, argNode.Sym)
			if field == ast.NilNode {
				c.errorf(diag.ArityFieldShape, argNode.Loc, fmt.Sprintf("unknown field %q", c.name(argNode.Sym)))
				continue
			}
			c.CheckExpr(arg, c.node(field).A)
		} else {
			c.errorf(diag.ArityFieldShape, argNode.Loc, "struct construction arguments must be named or bare identifiers matching a field")
			continue
		}
		if seen[field] {
			c.errorf(diag.ArityFieldShape, argNode.Loc, "duplicate field in struct construction")
		}
		seen[field] = true
	}
	for _, fid := range structType.Children {
		if !seen[fid] {
			c.errorf(diag.ArityFieldShape, n.Loc, fmt.Sprintf("missing field %q", c.name(c.node(fid).Sym)))
		}
	}
	n.Kind = ast.KindTypecons
	n.Type = target
}

// findField returns the field NodeID of structType named sym, or NilNode.
func (c *Checker) findField(structType *ast.Node, sym source.StringID) ast.NodeID {
	for _, fid := range structType.Children {
		if c.node(fid).Sym == sym {
			return fid
		}
	}
	return ast.NilNode
}

// checkFunCall implements §4.9b: parameter matching, named/positional
// argument rules, unused-owner-result warning.
func (c *Checker) checkFunCall(n *ast.Node, fnType *ast.Node) {
	params := fnType.Children
	if recvMember := c.node(n.A); recvMember.Kind == ast.KindMember {
		if len(params) > 0 && c.node(params[0]).Sym == c.Reserved.This {
			params = params[1:] // `this` is supplied by the MEMBER lowering
		}
	}

	positionalDone := false
	usedNamed := make(map[int]bool, len(params))
	nextPositional := 0

	for _, arg := range n.Children {
		argNode := c.node(arg)
		if argNode.Kind == ast.KindAssign && c.node(argNode.A).Kind == ast.KindID {
			name := c.node(argNode.A).Sym
			idx := c.findParamIndex(params, name)
			if idx < 0 {
				c.errorf(diag.ArityNamedMisplaced, argNode.Loc, fmt.Sprintf("no parameter named %q", c.name(name)))
				c.CheckExpr(argNode.B, ast.NilNode)
				continue
			}
			if usedNamed[idx] {
				c.errorf(diag.ArityNamedMisplaced, argNode.Loc, "parameter already supplied")
			}
			usedNamed[idx] = true
			c.CheckExpr(argNode.B, c.node(params[idx]).A)
			positionalDone = true
			continue
		}

		if positionalDone {
			c.errorf(diag.ArityPositionAfter, argNode.Loc, "positional argument after a named one")
			c.CheckExpr(arg, ast.NilNode)
			continue
		}
		if nextPositional >= len(params) {
			c.errorf(diag.ArityCallArgs, argNode.Loc, "too many arguments")
			c.CheckExpr(arg, ast.NilNode)
			continue
		}
		c.CheckExpr(arg, c.node(params[nextPositional]).A)
		usedNamed[nextPositional] = true
		nextPositional++
	}

	for i := range params {
		if !usedNamed[i] && c.node(params[i]).B == ast.NilNode {
			c.errorf(diag.ArityCallArgs, n.Loc, fmt.Sprintf("missing argument for parameter %q", c.name(c.node(params[i]).Sym)))
		}
	}

	n.Type = fnType.B
	if c.node(fnType.B).IsOwnerType() && !n.Flags.Has(ast.FlagRValue) {
		c.warnf(diag.HelpUnusedOwnerResult, n.Loc, "unused result; ownership transferred")
	}
}

// findParamIndex returns the index of the parameter named sym, or -1.
func (c *Checker) findParamIndex(params []ast.NodeID, sym source.StringID) int {
	for i, p := range params {
		if c.node(p).Sym == sym {
			return i
		}
	}
	return -1
}

// checkTypecons checks an already-lowered TYPECONS node (a call site that
// checkTypeCall has already rewritten in place); it only fills in an
// unknown type when none was recorded.
func (c *Checker) checkTypecons(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	if n.Type == ast.NilNode {
		n.Type = c.Unknown()
	}
}
