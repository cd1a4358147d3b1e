package ast

import "surge/internal/source"

// Hints sizes a Builder's backing arena up front, mirroring the teacher's
// Builder.Hints: a best-effort capacity guess avoids repeated slice growth
// while parsing/constructing a unit of realistic size.
type Hints struct {
	Nodes uint
}

// DefaultHints returns the capacity guess used when no Hints are supplied.
func DefaultHints() Hints { return Hints{Nodes: 256} }

// Builder owns the single node arena a checker run allocates from. Nodes
// are never freed individually; the whole Builder (and its arena) is
// dropped once the backend stage is done with the checked tree (core spec
// §3 Lifecycle).
type Builder struct {
	arena *Arena[Node]
}

// NewBuilder constructs a Builder with the given capacity hints.
func NewBuilder(h Hints) *Builder {
	if h.Nodes == 0 {
		h = DefaultHints()
	}
	return &Builder{arena: NewArena[Node](h.Nodes)}
}

// Get returns a pointer to the node at id. Mutating through the returned
// pointer is how the checker sets Flags/Type/Ref in place; callers must not
// retain the pointer past the Builder's lifetime.
func (b *Builder) Get(id NodeID) *Node { return b.arena.Get(uint32(id)) }

// Len returns the number of nodes allocated so far.
func (b *Builder) Len() uint32 { return b.arena.Len() }

// New allocates a node with the given kind/location and default-zero
// payload fields; callers fill in A/B/C/Children/Sym/etc. afterward.
func (b *Builder) New(kind Kind, loc source.Loc) NodeID {
	return NodeID(b.arena.Allocate(Node{Kind: kind, Loc: loc}))
}

// Clone allocates a shallow copy of the node at id, used by template
// instantiation (C7/C8) and optional-narrowing (C6) whenever a binding or
// subtree needs an independent mutable copy. The Children slice is copied
// so mutating the clone's children never aliases the original's.
func (b *Builder) Clone(id NodeID) NodeID {
	src := *b.Get(id)
	if src.Children != nil {
		src.Children = append([]NodeID(nil), src.Children...)
	}
	return NodeID(b.arena.Allocate(src))
}

// --- Convenience constructors -------------------------------------------------

// NewID allocates an ID expression referencing sym.
func (b *Builder) NewID(loc source.Loc, sym source.StringID) NodeID {
	id := b.New(KindID, loc)
	b.Get(id).Sym = sym
	return id
}

// NewIntLit allocates an integer literal.
func (b *Builder) NewIntLit(loc source.Loc, v int64) NodeID {
	id := b.New(KindIntLit, loc)
	b.Get(id).IntVal = v
	return id
}

// NewFloatLit allocates a floating-point literal.
func (b *Builder) NewFloatLit(loc source.Loc, v float64) NodeID {
	id := b.New(KindFloatLit, loc)
	b.Get(id).FloatVal = v
	return id
}

// NewStrLit allocates a string literal.
func (b *Builder) NewStrLit(loc source.Loc, v string) NodeID {
	id := b.New(KindStrLit, loc)
	b.Get(id).StrVal = v
	return id
}

// NewBoolLit allocates a boolean literal.
func (b *Builder) NewBoolLit(loc source.Loc, v bool) NodeID {
	id := b.New(KindBoolLit, loc)
	b.Get(id).BoolVal = v
	return id
}

// NewBinOp allocates a binary operator expression.
func (b *Builder) NewBinOp(loc source.Loc, op source.StringID, lhs, rhs NodeID) NodeID {
	id := b.New(KindBinOp, loc)
	n := b.Get(id)
	n.Sym, n.A, n.B = op, lhs, rhs
	return id
}

// NewAssign allocates an assignment expression.
func (b *Builder) NewAssign(loc source.Loc, lhs, rhs NodeID) NodeID {
	id := b.New(KindAssign, loc)
	n := b.Get(id)
	n.A, n.B = lhs, rhs
	return id
}

// NewBlock allocates a block expression/statement from a list of children.
func (b *Builder) NewBlock(loc source.Loc, children []NodeID) NodeID {
	id := b.New(KindBlock, loc)
	b.Get(id).Children = children
	return id
}

// NewCall allocates a call expression.
func (b *Builder) NewCall(loc source.Loc, callee NodeID, args []NodeID) NodeID {
	id := b.New(KindCall, loc)
	n := b.Get(id)
	n.A, n.Children = callee, args
	return id
}

// NewMember allocates a member-access expression `recv.sym`.
func (b *Builder) NewMember(loc source.Loc, recv NodeID, sym source.StringID) NodeID {
	id := b.New(KindMember, loc)
	n := b.Get(id)
	n.A, n.Sym = recv, sym
	return id
}

// NewIf allocates an if expression/statement.
func (b *Builder) NewIf(loc source.Loc, cond, then, els NodeID) NodeID {
	id := b.New(KindIf, loc)
	n := b.Get(id)
	n.A, n.B, n.C = cond, then, els
	return id
}

// NewReturn allocates a return statement; value may be NilNode for a bare
// return.
func (b *Builder) NewReturn(loc source.Loc, value NodeID) NodeID {
	id := b.New(KindReturn, loc)
	b.Get(id).A = value
	return id
}

// NewLocal allocates a VAR/LET/PARAM/FIELD declaration node.
func (b *Builder) NewLocal(kind Kind, loc source.Loc, sym source.StringID, declType, init NodeID) NodeID {
	id := b.New(kind, loc)
	n := b.Get(id)
	n.Sym, n.A, n.B = sym, declType, init
	return id
}

// NewFun allocates a function declaration/expression node.
func (b *Builder) NewFun(loc source.Loc, sym source.StringID, receiver NodeID, params []NodeID, result, body NodeID) NodeID {
	id := b.New(KindFun, loc)
	n := b.Get(id)
	n.Sym, n.A, n.Children, n.B, n.C = sym, receiver, params, result, body
	return id
}

// NewUnresolvedType allocates a type-syntax placeholder awaiting name
// resolution (C10's UNRESOLVED handling).
func (b *Builder) NewUnresolvedType(loc source.Loc, sym source.StringID) NodeID {
	id := b.New(KindUnresolved, loc)
	b.Get(id).Sym = sym
	return id
}

// NewPtrLike allocates one of PTR/REF/MUTREF/SLICE/MUTSLICE/OPTIONAL around
// an element type.
func (b *Builder) NewPtrLike(kind Kind, loc source.Loc, elem NodeID) NodeID {
	id := b.New(kind, loc)
	b.Get(id).A = elem
	return id
}

// NewArrayType allocates an `[T N]` array type node.
func (b *Builder) NewArrayType(loc source.Loc, elem NodeID, length int64) NodeID {
	id := b.New(KindArrayType, loc)
	n := b.Get(id)
	n.A, n.IntVal = elem, length
	return id
}

// NewStruct allocates a struct type node from a FIELD children list.
func (b *Builder) NewStruct(loc source.Loc, tag source.StringID, fields []NodeID) NodeID {
	id := b.New(KindStruct, loc)
	n := b.Get(id)
	n.Sym, n.Children = tag, fields
	return id
}
