package types

import "surge/internal/ast"

// Target carries the per-build facts the oracle needs to canonicalize
// `int`/`uint` onto a concrete width (core spec §3: "int/uint alias onto
// i32/i64 or u32/u64 per target").
type Target struct {
	IntWidth  int // 32 or 64
	UintWidth int // 32 or 64
}

// canonicalKind normalizes int/uint to their target-concrete integer kind;
// every other kind passes through unchanged.
func (t Target) canonicalKind(k ast.Kind) ast.Kind {
	switch k {
	case ast.KindInt:
		if t.IntWidth == 64 {
			return ast.KindI64
		}
		return ast.KindI32
	case ast.KindUint:
		if t.UintWidth == 64 {
			return ast.KindU64
		}
		return ast.KindU32
	default:
		return k
	}
}

// unwrapAlias follows ALIAS chains to the first non-alias element.
func unwrapAlias(b *ast.Builder, id ast.NodeID) ast.NodeID {
	for {
		n := b.Get(id)
		if n == nil || n.Kind != ast.KindAlias {
			return id
		}
		id = n.A
	}
}

// Oracle implements the four compatibility predicates of core spec §4.5
// over a shared Builder.
type Oracle struct {
	b      *ast.Builder
	target Target
}

// NewOracle binds an Oracle to a Builder and a target description.
func NewOracle(b *ast.Builder, target Target) *Oracle { return &Oracle{b: b, target: target} }

// Equivalent reports whether x and y are the same type after unwrapping
// aliases and canonicalizing int/uint.
func (o *Oracle) Equivalent(x, y ast.NodeID) bool {
	x, y = unwrapAlias(o.b, x), unwrapAlias(o.b, y)
	nx, ny := o.b.Get(x), o.b.Get(y)
	kx, ky := o.target.canonicalKind(nx.Kind), o.target.canonicalKind(ny.Kind)
	if kx != ky {
		return false
	}
	if kx.IsPrimitiveType() {
		return true
	}
	switch kx {
	case ast.KindArrayType:
		return nx.IntVal == ny.IntVal && o.Equivalent(nx.A, ny.A)
	case ast.KindPtr, ast.KindRef, ast.KindMutRef, ast.KindSlice, ast.KindMutSlice, ast.KindOptional:
		return o.Equivalent(nx.A, ny.A)
	case ast.KindStruct, ast.KindNamespace:
		return x == y // struct identity is interning identity
	case ast.KindFunType, ast.KindFun:
		if len(nx.Children) != len(ny.Children) {
			return false
		}
		for i := range nx.Children {
			px, py := o.b.Get(nx.Children[i]), o.b.Get(ny.Children[i])
			if !o.Equivalent(px.A, py.A) {
				return false
			}
		}
		return o.Equivalent(nx.B, ny.B)
	default:
		return x == y
	}
}

// Compatible is the symmetric predicate used for binary-operand checking;
// references may be auto-dereferenced on either side.
func (o *Oracle) Compatible(x, y ast.NodeID) bool {
	x = o.derefForOperand(x)
	y = o.derefForOperand(y)
	return o.Equivalent(x, y)
}

func (o *Oracle) derefForOperand(id ast.NodeID) ast.NodeID {
	n := o.b.Get(unwrapAlias(o.b, id))
	if n.Kind == ast.KindRef || n.Kind == ast.KindMutRef {
		return n.A
	}
	return id
}

// Assignable reports whether a value of type y can be assigned/bound to a
// target declared as x (`x ← y`). The source side may be dereferenced; the
// destination side may not.
func (o *Oracle) Assignable(x, y ast.NodeID) bool {
	ux, uy := unwrapAlias(o.b, x), unwrapAlias(o.b, y)
	nx, ny := o.b.Get(ux), o.b.Get(uy)
	kx := o.target.canonicalKind(nx.Kind)

	switch kx {
	case ast.KindOptional:
		// ?T ← T, ?T ← ?T
		if ny.Kind == ast.KindOptional {
			return o.Assignable(nx.A, ny.A)
		}
		return o.Assignable(nx.A, uy)
	case ast.KindPtr:
		if ny.Kind != ast.KindPtr {
			return false
		}
		return o.Assignable(nx.A, ny.A)
	case ast.KindRef:
		// &T ← *U iff T ← U (taking a reference to an owner is allowed on
		// the source side of a binding); &T ← &T plain match otherwise.
		if ny.Kind == ast.KindPtr {
			return o.Assignable(nx.A, ny.A)
		}
		if ny.Kind != ast.KindRef && ny.Kind != ast.KindMutRef {
			return false
		}
		return o.Assignable(nx.A, ny.A)
	case ast.KindMutRef:
		if ny.Kind != ast.KindMutRef {
			return false // never mut&T <- &T
		}
		return o.Assignable(nx.A, ny.A)
	case ast.KindSlice:
		if ny.Kind != ast.KindSlice && ny.Kind != ast.KindMutSlice && ny.Kind != ast.KindRef {
			return false
		}
		return o.Assignable(nx.A, o.sliceElem(ny))
	case ast.KindMutSlice:
		if ny.Kind != ast.KindMutSlice {
			return false
		}
		return o.Assignable(nx.A, ny.A)
	case ast.KindArrayType:
		if ny.Kind != ast.KindArrayType || nx.IntVal != ny.IntVal {
			return false
		}
		return o.Assignable(nx.A, ny.A)
	case ast.KindStruct:
		if ux != uy {
			return false
		}
		return !nx.IsOwnerType() // owner structs are move-only; never assignable
	default:
		return o.Equivalent(ux, uy)
	}
}

// sliceElem returns the element type for a SLICE/MUTSLICE/REF-to-array
// source so &[T] <- &[T N] (array reference decaying to a slice) can share
// the same recursive Assignable check.
func (o *Oracle) sliceElem(n *ast.Node) ast.NodeID {
	if n.Kind == ast.KindRef {
		elem := o.b.Get(n.A)
		if elem.Kind == ast.KindArrayType {
			return elem.A
		}
	}
	return n.A
}

// Convertible reports whether src can be explicitly cast to dst: any
// primitive-to-primitive cast, or same-type/reference-unwrapped-same.
func (o *Oracle) Convertible(dst, src ast.NodeID) bool {
	udst, usrc := unwrapAlias(o.b, dst), unwrapAlias(o.b, src)
	ndst, nsrc := o.b.Get(udst), o.b.Get(usrc)
	if ndst.Kind.IsPrimitiveType() && nsrc.Kind.IsPrimitiveType() {
		return true
	}
	if o.Equivalent(udst, usrc) {
		return true
	}
	return o.Equivalent(udst, o.derefForOperand(usrc))
}
