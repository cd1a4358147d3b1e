package ast

// Kind tags every Node with its variant. Kinds are grouped into contiguous,
// closed ranges (nodes, statements, expressions, primitive types, user
// types) so membership tests are simple range checks rather than a switch
// over every individual tag (core spec §3.1).
type Kind uint16

const (
	// --- Nodes -------------------------------------------------------------

	KindBad Kind = iota + 1
	KindComment
	KindUnit

	nodeRangeEnd

	// --- Statements ----------------------------------------------------------

	KindTypedef Kind = iota + 100
	KindImport

	stmtRangeEnd

	// --- Expressions -----------------------------------------------------------

	KindFun Kind = iota + 200
	KindBlock
	KindCall
	KindTypecons
	KindID
	KindNS
	KindField
	KindParam
	KindVar
	KindLet
	KindMember
	KindSubscript
	KindPrefixOp
	KindPostfixOp
	KindDeref
	KindBinOp
	KindAssign
	KindIf
	KindFor
	KindReturn
	KindBoolLit
	KindIntLit
	KindFloatLit
	KindStrLit
	KindArrayLit

	exprRangeEnd

	// --- Primitive types -------------------------------------------------------

	KindVoid Kind = iota + 300
	KindBool
	KindI8
	KindI16
	KindI32
	KindI64
	KindInt
	KindU8
	KindU16
	KindU32
	KindU64
	KindUint
	KindF32
	KindF64
	KindUnknown // must-resolve sentinel

	primTypeRangeEnd

	// --- User types --------------------------------------------------------------

	KindArrayType Kind = iota + 400
	KindFunType
	KindPtr
	KindRef
	KindMutRef
	KindSlice
	KindMutSlice
	KindOptional
	KindStruct
	KindAlias
	KindNamespace
	KindTemplate
	KindPlaceholder
	KindUnresolved

	userTypeRangeEnd
)

func inRange(k, lo, hi Kind) bool { return k >= lo && k < hi }

// IsStmt reports whether k is one of the statement kinds.
func (k Kind) IsStmt() bool { return inRange(k, KindTypedef, stmtRangeEnd) }

// IsExpr reports whether k is one of the expression kinds.
func (k Kind) IsExpr() bool { return inRange(k, KindFun, exprRangeEnd) }

// IsPrimitiveType reports whether k names a built-in scalar or the unknown
// sentinel.
func (k Kind) IsPrimitiveType() bool { return inRange(k, KindVoid, primTypeRangeEnd) }

// IsUserType reports whether k is a structural/composite type kind.
func (k Kind) IsUserType() bool { return inRange(k, KindArrayType, userTypeRangeEnd) }

// IsType reports whether k denotes any type (primitive or user).
func (k Kind) IsType() bool { return k.IsPrimitiveType() || k.IsUserType() }

// IsIntegerPrimitive reports whether k is one of the signed/unsigned integer
// primitives (including the target-aliased int/uint).
func (k Kind) IsIntegerPrimitive() bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindInt, KindU8, KindU16, KindU32, KindU64, KindUint:
		return true
	default:
		return false
	}
}

// IsUnsignedPrimitive reports whether k is an unsigned integer primitive.
func (k Kind) IsUnsignedPrimitive() bool {
	switch k {
	case KindU8, KindU16, KindU32, KindU64, KindUint:
		return true
	default:
		return false
	}
}

// IsFloatPrimitive reports whether k is a floating-point primitive.
func (k Kind) IsFloatPrimitive() bool { return k == KindF32 || k == KindF64 }

var kindNames = map[Kind]string{
	KindBad:     "BAD",
	KindComment: "COMMENT",
	KindUnit:    "UNIT",

	KindTypedef: "TYPEDEF",
	KindImport:  "IMPORT",

	KindFun:       "FUN",
	KindBlock:     "BLOCK",
	KindCall:      "CALL",
	KindTypecons:  "TYPECONS",
	KindID:        "ID",
	KindNS:        "NS",
	KindField:     "FIELD",
	KindParam:     "PARAM",
	KindVar:       "VAR",
	KindLet:       "LET",
	KindMember:    "MEMBER",
	KindSubscript: "SUBSCRIPT",
	KindPrefixOp:  "PREFIXOP",
	KindPostfixOp: "POSTFIXOP",
	KindDeref:     "DEREF",
	KindBinOp:     "BINOP",
	KindAssign:    "ASSIGN",
	KindIf:        "IF",
	KindFor:       "FOR",
	KindReturn:    "RETURN",
	KindBoolLit:   "BOOLLIT",
	KindIntLit:    "INTLIT",
	KindFloatLit:  "FLOATLIT",
	KindStrLit:    "STRLIT",
	KindArrayLit:  "ARRAYLIT",

	KindVoid:    "void",
	KindBool:    "bool",
	KindI8:      "i8",
	KindI16:     "i16",
	KindI32:     "i32",
	KindI64:     "i64",
	KindInt:     "int",
	KindU8:      "u8",
	KindU16:     "u16",
	KindU32:     "u32",
	KindU64:     "u64",
	KindUint:    "uint",
	KindF32:     "f32",
	KindF64:     "f64",
	KindUnknown: "unknown",

	KindArrayType:   "ARRAY",
	KindFunType:     "FUN",
	KindPtr:         "PTR",
	KindRef:         "REF",
	KindMutRef:      "MUTREF",
	KindSlice:       "SLICE",
	KindMutSlice:    "MUTSLICE",
	KindOptional:    "OPTIONAL",
	KindStruct:      "STRUCT",
	KindAlias:       "ALIAS",
	KindNamespace:   "NS",
	KindTemplate:    "TEMPLATE",
	KindPlaceholder: "PLACEHOLDER",
	KindUnresolved:  "UNRESOLVED",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "<bad-kind>"
}
