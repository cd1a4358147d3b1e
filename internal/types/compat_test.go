package types

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/source"
)

func newFixture(t *testing.T) (*ast.Builder, *Interner, *Oracle, ast.Primitives) {
	t.Helper()
	b := ast.NewBuilder(ast.DefaultHints())
	strings := source.NewInterner()
	prims := b.NewPrimitives(64, 64)
	in := NewInterner(b, strings)
	oracle := NewOracle(b, Target{IntWidth: 64, UintWidth: 64})
	return b, in, oracle, prims
}

func TestEquivalentCanonicalizesIntUint(t *testing.T) {
	b, _, oracle, prims := newFixture(t)
	_ = b
	if !oracle.Equivalent(prims.Int, prims.I64) {
		t.Fatalf("int should be equivalent to i64 on a 64-bit target")
	}
	if oracle.Equivalent(prims.Int, prims.Uint) {
		t.Fatalf("int and uint must never be equivalent")
	}
}

func TestInternDeduplicatesStructuralArrays(t *testing.T) {
	b, in, _, prims := newFixture(t)
	a1 := b.NewArrayType(source.NoLoc, prims.Int, 4)
	a2 := b.NewArrayType(source.NoLoc, prims.Int, 4)
	a3 := b.NewArrayType(source.NoLoc, prims.Int, 5)

	c1 := in.Intern(a1)
	c2 := in.Intern(a2)
	c3 := in.Intern(a3)

	if c1 != c2 {
		t.Fatalf("two structurally identical [int 4] arrays interned to different nodes")
	}
	if c1 == c3 {
		t.Fatalf("[int 4] and [int 5] must not share a canonical node")
	}
}

func TestAssignableOwnerStructIsMoveOnly(t *testing.T) {
	b, in, oracle, _ := newFixture(t)
	tag := in.strings.Intern("Handle")
	s := b.NewStruct(source.NoLoc, tag, nil)
	b.Get(s).Flags = b.Get(s).Flags.Set(ast.FlagDrop)
	canon := in.Intern(s)

	if oracle.Assignable(canon, canon) {
		t.Fatalf("an owner struct must not be assignable (move-only)")
	}
}

func TestAssignableRefVariance(t *testing.T) {
	b, _, oracle, prims := newFixture(t)
	ref := b.NewPtrLike(ast.KindRef, source.NoLoc, prims.Int)
	mutref := b.NewPtrLike(ast.KindMutRef, source.NoLoc, prims.Int)

	if !oracle.Assignable(ref, mutref) {
		t.Fatalf("&T should be assignable from mut&T")
	}
	if oracle.Assignable(mutref, ref) {
		t.Fatalf("mut&T must never be assignable from &T")
	}
}

func TestConvertiblePrimitivesAlwaysAllowed(t *testing.T) {
	_, _, oracle, prims := newFixture(t)
	if !oracle.Convertible(prims.F64, prims.I32) {
		t.Fatalf("any primitive should be convertible to any other primitive")
	}
}

func TestOperatorAllowedByClass(t *testing.T) {
	if !Allowed(ast.KindI32, "+") {
		t.Errorf("+ should be allowed on integers")
	}
	if Allowed(ast.KindF32, "<<") {
		t.Errorf("<< should not be allowed on floats")
	}
	if !Allowed(ast.KindStruct, "==") {
		t.Errorf("== should be allowed on structs")
	}
	if Allowed(ast.KindStruct, "+") {
		t.Errorf("+ should not be allowed on structs")
	}
}
