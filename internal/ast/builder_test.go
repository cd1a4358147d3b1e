package ast

import (
	"testing"

	"surge/internal/source"
)

func TestBuilderAllocatesDistinctIDs(t *testing.T) {
	b := NewBuilder(DefaultHints())
	a := b.New(KindBad, source.NoLoc)
	c := b.New(KindBad, source.NoLoc)
	if a == c {
		t.Fatalf("expected distinct NodeIDs, got %d twice", a)
	}
	if a == NilNode || c == NilNode {
		t.Fatalf("allocated node must not be NilNode")
	}
}

func TestCloneCopiesChildrenIndependently(t *testing.T) {
	b := NewBuilder(DefaultHints())
	interner := source.NewInterner()
	x := b.NewID(source.NoLoc, interner.Intern("x"))
	block := b.NewBlock(source.NoLoc, []NodeID{x})

	clone := b.Clone(block)
	b.Get(clone).Children[0] = b.NewID(source.NoLoc, interner.Intern("y"))

	if b.Get(block).Children[0] != x {
		t.Fatalf("mutating clone's children mutated the original block")
	}
}

func TestPrimitivesAreSingletons(t *testing.T) {
	b := NewBuilder(DefaultHints())
	prims := b.NewPrimitives(32, 32)
	if prims.Int == NilNode {
		t.Fatalf("Int primitive not allocated")
	}
	if b.Get(prims.Int).Size != 4 {
		t.Fatalf("int width = %d, want 4 bytes for a 32-bit target", b.Get(prims.Int).Size)
	}
	if prims.ByKind(KindInt) != prims.Int {
		t.Fatalf("ByKind(KindInt) did not return the same singleton")
	}
}

func TestKindRangeMembership(t *testing.T) {
	if !KindIf.IsExpr() {
		t.Errorf("KindIf should be an expression kind")
	}
	if KindIf.IsStmt() {
		t.Errorf("KindIf should not be a statement kind")
	}
	if !KindStruct.IsUserType() {
		t.Errorf("KindStruct should be a user type kind")
	}
	if !KindInt.IsPrimitiveType() {
		t.Errorf("KindInt should be a primitive type kind")
	}
	if KindInt.IsUserType() {
		t.Errorf("KindInt should not be a user type kind")
	}
}

func TestFlagsVisibilityOrdering(t *testing.T) {
	if !(VisUnit < VisPkg && VisPkg < VisPub) {
		t.Fatalf("visibility levels must order UNIT < PKG < PUB")
	}
	parent := Flags(0).WithVisibility(VisPub)
	child := Flags(0).WithVisibility(VisUnit)
	if !VisibilityLeaks(parent, child) {
		t.Fatalf("expected a UNIT child under a PUB parent to be flagged as a visibility leak")
	}
}
