// Package symbols implements lexical name binding (core spec C3, the Scope
// stack) and per-package declaration/API bookkeeping (the Package type).
//
// A "Symbol" in the core spec is nothing more than an interned
// source.StringID: identity-comparable, pointer-equal names. There is no
// separate Symbol struct here — a binding is the pair (StringID, ast.NodeID)
// the spec's data model describes directly.
package symbols

import (
	"surge/internal/ast"
	"surge/internal/source"
)

// MaxLookupDepth selects "all frames" for Scope.Lookup, matching the core
// spec's "0 = current frame only, MAX = all frames" depth parameter.
const MaxLookupDepth = ^uint(0)

type binding struct {
	sym  source.StringID
	node ast.NodeID
}

// Scope is the array-backed, nestable lexical binding stack of core spec
// §4.3. Frames are not separate slices: Push only remembers where the
// current frame began, and Pop truncates back to it, so repeated
// enter/leave cycles reuse the same backing array without reallocating.
type Scope struct {
	entries []binding
	bases   []int // stack of frame-start indices into entries
}

// NewScope returns an empty Scope with one implicit outermost frame.
func NewScope() *Scope {
	return &Scope{bases: []int{0}}
}

// Push opens a new, empty frame.
func (s *Scope) Push() {
	s.bases = append(s.bases, len(s.entries))
}

// Pop closes the innermost frame, discarding every binding defined in it.
// Popping the outermost frame is a no-op (mirrors the teacher's
// defensive base-stack handling — callers are expected to balance
// Push/Pop, but a stray Pop must not panic mid-diagnostic-recovery).
func (s *Scope) Pop() {
	if len(s.bases) <= 1 {
		return
	}
	base := s.bases[len(s.bases)-1]
	s.bases = s.bases[:len(s.bases)-1]
	s.entries = s.entries[:base]
}

// Depth returns the number of currently open frames.
func (s *Scope) Depth() int { return len(s.bases) }

func (s *Scope) currentBase() int { return s.bases[len(s.bases)-1] }

// Define appends a binding to the innermost frame. The caller is
// responsible for diagnosing a duplicate-in-frame before calling Define
// (core spec §4.3: "duplicate-in-same-frame is the caller's
// responsibility to diagnose").
func (s *Scope) Define(sym source.StringID, node ast.NodeID) {
	s.entries = append(s.entries, binding{sym: sym, node: node})
}

// Undefine removes the innermost binding for sym within the current frame,
// if any; bindings in outer frames are untouched.
func (s *Scope) Undefine(sym source.StringID) {
	base := s.currentBase()
	for i := len(s.entries) - 1; i >= base; i-- {
		if s.entries[i].sym == sym {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Lookup scans frames from innermost to outermost, down to maxDepth frames
// (0 = current frame only, MaxLookupDepth = every frame), returning the
// most recently defined binding for sym.
func (s *Scope) Lookup(sym source.StringID, maxDepth uint) (ast.NodeID, bool) {
	framesSeen := uint(0)
	frameIdx := len(s.bases) - 1
	for frameIdx >= 0 {
		base := s.bases[frameIdx]
		end := len(s.entries)
		if frameIdx+1 < len(s.bases) {
			end = s.bases[frameIdx+1]
		}
		for i := end - 1; i >= base; i-- {
			if s.entries[i].sym == sym {
				return s.entries[i].node, true
			}
		}
		if framesSeen >= maxDepth {
			break
		}
		framesSeen++
		frameIdx--
	}
	return ast.NilNode, false
}

// Stashed holds bindings removed from the current frame by Stash, for
// later restoration by Unstash.
type Stashed struct {
	base    int
	removed []binding
}

// Stash removes and returns every binding of the current frame, leaving it
// empty; Unstash restores them. Frames further out are untouched.
func (s *Scope) Stash() Stashed {
	base := s.currentBase()
	removed := append([]binding(nil), s.entries[base:]...)
	s.entries = s.entries[:base]
	return Stashed{base: base, removed: removed}
}

// Unstash restores bindings previously removed by Stash, appending them
// back onto whatever the current frame now contains.
func (s *Scope) Unstash(st Stashed) {
	s.entries = append(s.entries, st.removed...)
}

// Iterate calls fn for every binding currently visible, innermost frame
// first, stopping early if fn returns false. Used by the fuzzy "did you
// mean" suggester to gather candidate names.
func (s *Scope) Iterate(fn func(sym source.StringID, node ast.NodeID) bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if !fn(s.entries[i].sym, s.entries[i].node) {
			return
		}
	}
}
