package ast

import "surge/internal/source"

// Primitives holds the fixed singleton type nodes for every primitive kind
// (core spec §4.2: "Primitive types are not interned... unique singletons
// from a fixed table"). A Builder allocates exactly one of these per kind at
// construction; every reference to e.g. `int` anywhere in a checked tree
// points at the same NodeID.
type Primitives struct {
	Void, Bool                           NodeID
	I8, I16, I32, I64, Int               NodeID
	U8, U16, U32, U64, Uint              NodeID
	F32, F64                             NodeID
	Unknown                              NodeID
}

var primitiveKindOrder = []Kind{
	KindVoid, KindBool,
	KindI8, KindI16, KindI32, KindI64, KindInt,
	KindU8, KindU16, KindU32, KindU64, KindUint,
	KindF32, KindF64,
	KindUnknown,
}

// NewPrimitives allocates the singleton table, sized per target (size/align
// in bytes; 0 for void/unknown).
func (b *Builder) NewPrimitives(intWidth, uintWidth uint32) Primitives {
	sizes := map[Kind]uint32{
		KindBool: 1,
		KindI8: 1, KindI16: 2, KindI32: 4, KindI64: 8, KindInt: intWidth / 8,
		KindU8: 1, KindU16: 2, KindU32: 4, KindU64: 8, KindUint: uintWidth / 8,
		KindF32: 4, KindF64: 8,
	}
	ids := make(map[Kind]NodeID, len(primitiveKindOrder))
	for _, k := range primitiveKindOrder {
		id := b.New(k, source.NoLoc)
		n := b.Get(id)
		n.Flags = n.Flags.Set(FlagChecked)
		n.Size = sizes[k]
		n.Align = sizes[k]
		n.TypeKey = string([]byte{primitiveTag(k)})
		ids[k] = id
	}
	return Primitives{
		Void: ids[KindVoid], Bool: ids[KindBool],
		I8: ids[KindI8], I16: ids[KindI16], I32: ids[KindI32], I64: ids[KindI64], Int: ids[KindInt],
		U8: ids[KindU8], U16: ids[KindU16], U32: ids[KindU32], U64: ids[KindU64], Uint: ids[KindUint],
		F32: ids[KindF32], F64: ids[KindF64],
		Unknown: ids[KindUnknown],
	}
}

// primitiveTag returns the single ASCII letter the type-id encoding (core
// spec §6) uses for a primitive kind.
func primitiveTag(k Kind) byte {
	switch k {
	case KindVoid:
		return 'v'
	case KindBool:
		return 'b'
	case KindI8:
		return '1'
	case KindI16:
		return '2'
	case KindI32:
		return '3'
	case KindI64:
		return '4'
	case KindInt:
		return 'i'
	case KindU8:
		return '5'
	case KindU16:
		return '6'
	case KindU32:
		return '7'
	case KindU64:
		return '8'
	case KindUint:
		return 'u'
	case KindF32:
		return 'p'
	case KindF64:
		return 'q'
	case KindUnknown:
		return '?'
	default:
		return '!'
	}
}

// ByKind returns the singleton for a primitive kind, or NilNode if k isn't
// one.
func (p Primitives) ByKind(k Kind) NodeID {
	switch k {
	case KindVoid:
		return p.Void
	case KindBool:
		return p.Bool
	case KindI8:
		return p.I8
	case KindI16:
		return p.I16
	case KindI32:
		return p.I32
	case KindI64:
		return p.I64
	case KindInt:
		return p.Int
	case KindU8:
		return p.U8
	case KindU16:
		return p.U16
	case KindU32:
		return p.U32
	case KindU64:
		return p.U64
	case KindUint:
		return p.Uint
	case KindF32:
		return p.F32
	case KindF64:
		return p.F64
	case KindUnknown:
		return p.Unknown
	default:
		return NilNode
	}
}
