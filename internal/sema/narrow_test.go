package sema

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/diag"
)

// fun f(a ?int) int { if a || !a { 1 } else { 0 } } must reject narrowing a
// bare optional binding across '||' even when neither operand is a literal
// short-form let/var.
func TestCheckIf_OptionalIdentOverOr(t *testing.T) {
	c, bag := newFixture(t)
	f := c.Strings.Intern("f")
	a := c.Strings.Intern("a")
	or := c.Strings.Intern("||")
	not := c.Strings.Intern("!")

	optInt := c.B.NewPtrLike(ast.KindOptional, loc(1), c.Prims.Int)
	param := c.B.NewLocal(ast.KindParam, loc(1), a, optInt, ast.NilNode)

	aRef := c.B.NewID(loc(1), a)
	notA := c.B.New(ast.KindPrefixOp, loc(1))
	c.node(notA).Sym = not
	c.node(notA).A = aRef

	cond := c.B.NewBinOp(loc(1), or, c.B.NewID(loc(1), a), notA)

	then := c.B.NewBlock(loc(1), []ast.NodeID{c.B.NewIntLit(loc(1), 1)})
	c.node(then).Flags = c.node(then).Flags.Set(ast.FlagRValue)
	els := c.B.NewBlock(loc(1), []ast.NodeID{c.B.NewIntLit(loc(1), 0)})
	c.node(els).Flags = c.node(els).Flags.Set(ast.FlagRValue)

	ifExpr := c.B.NewIf(loc(1), cond, then, els)
	c.node(ifExpr).Flags = c.node(ifExpr).Flags.Set(ast.FlagRValue)

	body := c.B.NewBlock(loc(1), []ast.NodeID{ifExpr})
	c.node(body).Flags = c.node(body).Flags.Set(ast.FlagRValue)

	fn := c.B.NewFun(loc(1), f, ast.NilNode, []ast.NodeID{param}, c.Prims.Int, body)

	c.CheckFunDecl(fn)

	if !hasCode(bag, diag.MutNarrowCombinator) {
		t.Fatalf("expected MutNarrowCombinator, got %v", bag.Items())
	}
}
