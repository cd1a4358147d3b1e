// Package types implements structural interning (core spec C2) and the
// type-compatibility oracle (C5) over internal/ast's unified Node tree.
// There is no separate "Type" struct: a type is simply an ast.Node whose
// Kind.IsType() holds, and this package's job is to make sure structurally
// identical user types share exactly one NodeID (pointer-unique, per core
// spec §3's "Canonical/structural type identity" invariant).
package types

import (
	"encoding/binary"
	"strconv"
	"strings"

	"surge/internal/ast"
	"surge/internal/source"
)

// Interner deduplicates structural user types by a computed type-id byte
// string (core spec §4.2/§6). Primitives bypass interning entirely: they
// are the fixed singletons in ast.Primitives.
type Interner struct {
	b       *ast.Builder
	strings *source.Interner
	index   map[string]ast.NodeID
}

// NewInterner constructs an Interner bound to a Builder's arena and the
// string table used to render names into type-ids.
func NewInterner(b *ast.Builder, strings *source.Interner) *Interner {
	return &Interner{b: b, strings: strings, index: make(map[string]ast.NodeID, 256)}
}

// Intern computes (or reuses a cached) structural key for the user type
// node id and returns the canonical NodeID for that structure: either id
// itself (first time this structure is seen) or a pre-existing node with
// identical structure. Callers must replace any pointer/field they hold to
// id with the returned value (core spec §4.2).
//
// Preconditions: id's Kind.IsUserType() holds, and every type this node
// references (A, Children[*].Type, etc.) has already been interned —
// interning is bottom-up.
func (in *Interner) Intern(id ast.NodeID) ast.NodeID {
	n := in.b.Get(id)
	if !n.Kind.IsUserType() {
		return id // primitives (and anything already a singleton) are never interned
	}
	key := in.key(n)
	if existing, ok := in.index[key]; ok {
		return existing
	}
	n.TypeKey = key
	in.index[key] = id
	return id
}

// key computes the structural type-id for a user-type node. Composite
// type-ids are a single tag byte followed by the recursively-embedded
// type-ids of their children (core spec §6), with struct fields
// length-prefixed since their count varies.
func (in *Interner) key(n *ast.Node) string {
	switch n.Kind {
	case ast.KindArrayType:
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(n.IntVal))
		return "A" + in.elemKey(n.A) + string(lenBuf[:])
	case ast.KindPtr:
		return "P" + in.elemKey(n.A)
	case ast.KindRef:
		return "R" + in.elemKey(n.A)
	case ast.KindMutRef:
		return "M" + in.elemKey(n.A)
	case ast.KindSlice:
		return "S" + in.elemKey(n.A)
	case ast.KindMutSlice:
		return "s" + in.elemKey(n.A)
	case ast.KindOptional:
		return "O" + in.elemKey(n.A)
	case ast.KindAlias:
		return "L" + in.name(n.Sym) + "\x00" + in.elemKey(n.A)
	case ast.KindStruct:
		var sb strings.Builder
		sb.WriteByte('T')
		sb.WriteString(in.name(n.Sym))
		sb.WriteByte(0)
		sb.WriteString(strconv.Itoa(len(n.Children)))
		sb.WriteByte(0)
		for _, fid := range n.Children {
			f := in.b.Get(fid)
			sb.WriteString(in.name(f.Sym))
			sb.WriteByte(0)
			sb.WriteString(in.elemKey(f.A))
		}
		return sb.String()
	case ast.KindFunType, ast.KindFun:
		var sb strings.Builder
		sb.WriteByte('F')
		sb.WriteString(strconv.Itoa(len(n.Children)))
		sb.WriteByte(0)
		for _, pid := range n.Children {
			p := in.b.Get(pid)
			sb.WriteString(in.elemKey(p.A))
			sb.WriteByte(0)
		}
		sb.WriteString(in.elemKey(n.B))
		return sb.String()
	case ast.KindNamespace:
		return "N" + in.name(n.Sym)
	case ast.KindTemplate:
		return "G" + in.name(n.Sym) // generic templates are never structurally shared
	case ast.KindPlaceholder, ast.KindUnresolved:
		return "?" + in.name(n.Sym) // keyed by name only; reached via a template body's element types
	default:
		return "!" + n.Kind.String()
	}
}

// elemKey returns the cached type-id of a child type node, interning it
// first if it hasn't been (defensive: callers are expected to intern
// bottom-up already).
func (in *Interner) elemKey(id ast.NodeID) string {
	if id == ast.NilNode {
		return "\x00"
	}
	n := in.b.Get(id)
	if n.Kind.IsPrimitiveType() {
		return n.TypeKey
	}
	if n.TypeKey == "" {
		in.Intern(id)
		n = in.b.Get(id)
	}
	return n.TypeKey
}

func (in *Interner) name(sym source.StringID) string {
	if sym == source.NoStringID {
		return ""
	}
	return in.strings.MustLookup(sym)
}
