package sema

import (
	"fmt"
	"math"

	"surge/internal/ast"
	"surge/internal/diag"
)

// intRanges gives the [min,max] a literal must fit for each integer
// primitive kind.
var intRanges = map[ast.Kind][2]int64{
	ast.KindI8:  {math.MinInt8, math.MaxInt8},
	ast.KindI16: {math.MinInt16, math.MaxInt16},
	ast.KindI32: {math.MinInt32, math.MaxInt32},
	ast.KindI64: {math.MinInt64, math.MaxInt64},
	ast.KindU8:  {0, math.MaxUint8},
	ast.KindU16: {0, math.MaxUint16},
	ast.KindU32: {0, math.MaxUint32},
	ast.KindU64: {0, math.MaxInt64}, // conservative: full uint64 range doesn't fit an int64 literal value
}

// checkIntLit fits an integer literal into ctx, falling back to int when
// the literal's value fits in 32 bits and to i64 otherwise when there is no
// usable context (core spec §4.9 INTLIT).
func (c *Checker) checkIntLit(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	target := c.resolveNumericCtx(ctx, true)
	if target == ast.NilNode {
		target = c.smallestIntKindFor(n.IntVal)
	}
	kind := c.canonicalPrimKind(target)
	if rng, ok := intRanges[kind]; ok {
		if n.IntVal < rng[0] || n.IntVal > rng[1] {
			c.errorf(diag.TypeIntOverflow, n.Loc,
				fmt.Sprintf("integer constant %d overflows %s", n.IntVal, kind))
		}
	}
	n.Type = target
}

// checkFloatLit fits a floating-point literal into ctx, defaulting to f64.
func (c *Checker) checkFloatLit(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	target := c.resolveNumericCtx(ctx, false)
	if target == ast.NilNode {
		target = c.Prims.F64
	}
	if c.canonicalPrimKind(target) == ast.KindF32 {
		if n.FloatVal != 0 && (math.Abs(n.FloatVal) > math.MaxFloat32 || math.Abs(n.FloatVal) < math.SmallestNonzeroFloat32) {
			c.errorf(diag.TypeFloatOverflow, n.Loc,
				fmt.Sprintf("floating-point constant %g overflows f32", n.FloatVal))
		}
	}
	n.Type = target
}

// checkStrLit binds a string literal to `str` when that is the context,
// otherwise synthesizes `&[u8 N]` (core spec §4.9 STRLIT).
func (c *Checker) checkStrLit(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	if ctx != ast.NilNode && c.isStrAlias(ctx) {
		n.Type = ctx
		return
	}
	arr := c.B.NewArrayType(n.Loc, c.Prims.U8, int64(len(n.StrVal)))
	n.Type = c.B.NewPtrLike(ast.KindRef, n.Loc, c.Types.Intern(arr))
}

func (c *Checker) isStrAlias(ctx ast.NodeID) bool {
	n := c.node(ctx)
	return n.Kind == ast.KindAlias && n.Sym == c.Reserved.Str
}

// checkArrayLit checks an array literal (core spec §4.9 ARRAYLIT).
func (c *Checker) checkArrayLit(id ast.NodeID, ctx ast.NodeID) {
	n := c.node(id)
	var elemCtx ast.NodeID
	var declaredLen int64 = -1
	if ctx != ast.NilNode {
		if arr := c.node(ctx); arr.Kind == ast.KindArrayType {
			elemCtx = arr.A
			declaredLen = arr.IntVal
		}
	}

	if len(n.Children) == 0 {
		if elemCtx == ast.NilNode {
			elemCtx = c.Unknown()
		}
		n.Type = c.Types.Intern(c.B.NewArrayType(n.Loc, elemCtx, 0))
		return
	}

	if elemCtx == ast.NilNode {
		elemCtx = c.CheckExpr(n.Children[0], ast.NilNode)
	}
	for i, child := range n.Children {
		ct := c.CheckExpr(child, elemCtx)
		if !c.Oracle.Assignable(elemCtx, ct) {
			c.errorf(diag.TypeIncompatible, c.node(child).Loc,
				fmt.Sprintf("array element %d is not compatible with element type", i))
		}
	}

	if declaredLen >= 0 && int64(len(n.Children)) > declaredLen {
		excess := n.Children[declaredLen]
		c.errorf(diag.TypeIndexOutOfBounds, c.node(excess).Loc, "excess value in array literal")
	}
	length := declaredLen
	if length < 0 {
		length = int64(len(n.Children))
	}
	n.Type = c.Types.Intern(c.B.NewArrayType(n.Loc, elemCtx, length))
}

// resolveNumericCtx returns ctx if it names an integer (wantInt) or float
// primitive, otherwise NilNode.
func (c *Checker) resolveNumericCtx(ctx ast.NodeID, wantInt bool) ast.NodeID {
	if ctx == ast.NilNode {
		return ast.NilNode
	}
	k := c.canonicalPrimKind(ctx)
	if wantInt && k.IsIntegerPrimitive() {
		return ctx
	}
	if !wantInt && k.IsFloatPrimitive() {
		return ctx
	}
	return ast.NilNode
}

func (c *Checker) canonicalPrimKind(id ast.NodeID) ast.Kind {
	n := c.node(id)
	switch n.Kind {
	case ast.KindInt:
		if c.node(c.Prims.Int).Size == 8 {
			return ast.KindI64
		}
		return ast.KindI32
	case ast.KindUint:
		if c.node(c.Prims.Uint).Size == 8 {
			return ast.KindU64
		}
		return ast.KindU32
	default:
		return n.Kind
	}
}

func (c *Checker) smallestIntKindFor(v int64) ast.NodeID {
	switch {
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return c.Prims.Int
	default:
		return c.Prims.I64
	}
}
