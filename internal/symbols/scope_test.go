package symbols

import (
	"testing"

	"surge/internal/ast"
	"surge/internal/source"
)

func TestScopeDefineAndLookup(t *testing.T) {
	strings := source.NewInterner()
	x := strings.Intern("x")
	s := NewScope()
	node := ast.NodeID(7)
	s.Define(x, node)

	got, ok := s.Lookup(x, MaxLookupDepth)
	if !ok || got != node {
		t.Fatalf("Lookup(x) = (%v, %v), want (%v, true)", got, ok, node)
	}
}

func TestScopePushPopDiscardsInnerBindings(t *testing.T) {
	strings := source.NewInterner()
	x := strings.Intern("x")
	s := NewScope()
	s.Push()
	s.Define(x, ast.NodeID(1))
	s.Pop()

	if _, ok := s.Lookup(x, MaxLookupDepth); ok {
		t.Fatalf("binding from a popped frame should not be visible")
	}
}

func TestScopeLookupRespectsMaxDepth(t *testing.T) {
	strings := source.NewInterner()
	outer := strings.Intern("outer")
	s := NewScope()
	s.Define(outer, ast.NodeID(1))
	s.Push() // frame 1, depth 0 from here

	if _, ok := s.Lookup(outer, 0); ok {
		t.Fatalf("maxDepth=0 should only see the current frame")
	}
	if _, ok := s.Lookup(outer, MaxLookupDepth); !ok {
		t.Fatalf("MaxLookupDepth should see the outer frame")
	}
}

func TestScopeStashUnstash(t *testing.T) {
	strings := source.NewInterner()
	x := strings.Intern("x")
	s := NewScope()
	s.Define(x, ast.NodeID(1))

	saved := s.Stash()
	if _, ok := s.Lookup(x, MaxLookupDepth); ok {
		t.Fatalf("binding should be gone immediately after Stash")
	}
	s.Unstash(saved)
	if _, ok := s.Lookup(x, MaxLookupDepth); !ok {
		t.Fatalf("binding should be restored after Unstash")
	}
}

func TestScopeShadowingReturnsInnermost(t *testing.T) {
	strings := source.NewInterner()
	x := strings.Intern("x")
	s := NewScope()
	s.Define(x, ast.NodeID(1))
	s.Push()
	s.Define(x, ast.NodeID(2))

	got, _ := s.Lookup(x, MaxLookupDepth)
	if got != ast.NodeID(2) {
		t.Fatalf("Lookup should return the innermost shadowing binding, got %v", got)
	}
}

func TestPackageDefineRejectsDuplicate(t *testing.T) {
	strings := source.NewInterner()
	name := strings.Intern("Foo")
	p := NewPackage(strings.Intern("pkg"), strings)

	if !p.Define(name, ast.NodeID(1)) {
		t.Fatalf("first Define should succeed")
	}
	if p.Define(name, ast.NodeID(2)) {
		t.Fatalf("second Define of the same name should fail")
	}
	got, ok := p.Lookup(name)
	if !ok || got != ast.NodeID(1) {
		t.Fatalf("duplicate Define must not overwrite the original definition")
	}
}
