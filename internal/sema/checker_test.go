package sema

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/symbols"
	"surge/internal/types"
)

func newFixture(t *testing.T) (*Checker, *diag.Bag) {
	t.Helper()
	strings := source.NewInterner()
	bag := diag.NewBag(0)
	pkg := symbols.NewPackage(strings.Intern("test"), strings)
	c := NewChecker(Options{Target: types.Target{IntWidth: 64, UintWidth: 64}, Strings: strings}, pkg, diag.BagReporter{Bag: bag})
	return c, bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func loc(line uint32) source.Loc { return source.MakeLoc(1, line, 1, 1) }

// fun f() int { return true } must report TypeInvalidResult.
func TestCheckFunDecl_WrongReturnType(t *testing.T) {
	c, bag := newFixture(t)
	f := c.Strings.Intern("f")

	ret := c.B.NewReturn(loc(1), c.B.NewBoolLit(loc(1), true))
	body := c.B.NewBlock(loc(1), []ast.NodeID{ret})
	fn := c.B.NewFun(loc(1), f, ast.NilNode, nil, c.Prims.Int, body)

	c.CheckFunDecl(fn)

	if !hasCode(bag, diag.TypeInvalidResult) {
		t.Fatalf("expected TypeInvalidResult, got %v", bag.Items())
	}
}

// `drop` must be (mut this) void.
func TestCheckFunDecl_InvalidDropSignature(t *testing.T) {
	c, bag := newFixture(t)
	drop := c.Strings.Intern("drop")

	body := c.B.NewBlock(loc(1), nil)
	fn := c.B.NewFun(loc(1), drop, ast.NilNode, nil, c.Prims.Void, body)

	c.CheckFunDecl(fn)

	if !hasCode(bag, diag.DeclInvalidDrop) {
		t.Fatalf("expected DeclInvalidDrop, got %v", bag.Items())
	}
}

// main must take no parameters and return void.
func TestCheckFunDecl_MainSignature(t *testing.T) {
	c, bag := newFixture(t)
	main := c.Strings.Intern("main")
	p := c.Strings.Intern("x")

	param := c.B.NewLocal(ast.KindParam, loc(1), p, c.Prims.Int, ast.NilNode)
	body := c.B.NewBlock(loc(1), nil)
	fn := c.B.NewFun(loc(1), main, ast.NilNode, []ast.NodeID{param}, c.Prims.Void, body)

	c.CheckFunDecl(fn)

	if !hasCode(bag, diag.DeclMainSignature) {
		t.Fatalf("expected DeclMainSignature, got %v", bag.Items())
	}
	if c.Pkg.MainFun != ast.NilNode {
		t.Fatalf("main with bad signature must not be registered")
	}
}

// Assigning a literal known to overflow i8 must be reported.
func TestCheckLocal_IntOverflow(t *testing.T) {
	c, bag := newFixture(t)
	x := c.Strings.Intern("x")

	lit := c.B.NewIntLit(loc(1), 256)
	local := c.B.NewLocal(ast.KindLet, loc(1), x, c.Prims.I8, lit)

	c.checkLocal(local)

	if !hasCode(bag, diag.TypeIntOverflow) && !hasCode(bag, diag.TypeUnassignable) {
		t.Fatalf("expected an overflow or unassignable diagnostic, got %v", bag.Items())
	}
}

// An unknown identifier should trigger lookup failure plus a HELP
// "did you mean" suggestion when a close name is in scope.
func TestCheckID_UnknownWithSuggestion(t *testing.T) {
	c, bag := newFixture(t)
	count := c.Strings.Intern("count")
	typo := c.Strings.Intern("coutn")

	local := c.B.NewLocal(ast.KindLet, loc(1), count, c.Prims.Int, c.B.NewIntLit(loc(1), 1))
	c.checkLocal(local)

	ref := c.B.NewID(loc(2), typo)
	c.CheckExpr(ref, ast.NilNode)

	if !hasCode(bag, diag.LookupUnknownIdent) {
		t.Fatalf("expected LookupUnknownIdent, got %v", bag.Items())
	}
	if !hasCode(bag, diag.HelpDidYouMean) {
		t.Fatalf("expected HelpDidYouMean suggestion, got %v", bag.Items())
	}
}

// Duplicate top-level definitions in the same package must be rejected.
func TestCheck_DuplicateTopLevel(t *testing.T) {
	c, bag := newFixture(t)
	f := c.Strings.Intern("f")

	body1 := c.B.NewBlock(loc(1), nil)
	fn1 := c.B.NewFun(loc(1), f, ast.NilNode, nil, c.Prims.Void, body1)
	body2 := c.B.NewBlock(loc(2), nil)
	fn2 := c.B.NewFun(loc(2), f, ast.NilNode, nil, c.Prims.Void, body2)

	unit := c.B.NewBlock(loc(0), []ast.NodeID{fn1, fn2})
	c.node(unit).Kind = ast.KindUnit

	c.Check([]Unit{{Node: unit}})

	if !hasCode(bag, diag.DeclDuplicate) {
		t.Fatalf("expected DeclDuplicate, got %v", bag.Items())
	}
}

// Template instantiation with the same argument type must return the same
// cached instance (pointer equality), and a distinct argument type must
// produce a distinct instance.
func TestInstantiate_Caching(t *testing.T) {
	c, _ := newFixture(t)
	placeholderSym := c.Strings.Intern("T")

	placeholder := c.B.New(ast.KindPlaceholder, loc(1))
	c.node(placeholder).Sym = placeholderSym

	body := c.B.NewPtrLike(ast.KindSlice, loc(1), placeholder)
	tmpl := c.B.New(ast.KindTemplate, loc(1))
	tn := c.node(tmpl)
	tn.Sym = c.Strings.Intern("Box")
	tn.Children = []ast.NodeID{placeholder}
	tn.A = body
	c.CheckType(tmpl)

	inst1 := c.Instantiate(tmpl, tmpl, []ast.NodeID{c.Prims.Int})
	inst2 := c.Instantiate(tmpl, tmpl, []ast.NodeID{c.Prims.Int})
	inst3 := c.Instantiate(tmpl, tmpl, []ast.NodeID{c.Prims.Bool})

	if inst1 != inst2 {
		t.Fatalf("same argument type must reuse the cached instance: %v != %v", inst1, inst2)
	}
	if inst1 == inst3 {
		t.Fatalf("distinct argument types must not share an instance")
	}
}

// An excess array literal value (more elements than the declared array
// length) must be reported.
func TestCheckLocal_ArrayLitExcessValues(t *testing.T) {
	c, bag := newFixture(t)
	arr := c.Strings.Intern("arr")

	lits := []ast.NodeID{
		c.B.NewIntLit(loc(1), 1),
		c.B.NewIntLit(loc(1), 2),
		c.B.NewIntLit(loc(1), 3),
	}
	arrLit := c.B.New(ast.KindArrayLit, loc(1))
	c.node(arrLit).Children = lits

	arrType := c.B.NewArrayType(loc(1), c.Prims.Int, 2)
	local := c.B.NewLocal(ast.KindLet, loc(1), arr, arrType, arrLit)

	c.checkLocal(local)

	if bag.ErrCount() == 0 {
		t.Fatalf("expected an error for an over-long array literal, got none")
	}
}
