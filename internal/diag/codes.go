package diag

import "fmt"

// Code is a compact, stable numeric diagnostic identifier. Ranges group the
// error taxonomy from core spec §7; within a range, codes are otherwise
// unordered (new codes are appended, never renumbered).
type Code uint16

const (
	// UnknownCode marks an uninitialized/erroneous diagnostic.
	UnknownCode Code = 0

	// --- §7.1 Lookup errors (1000s) ---------------------------------------

	LookupUnknownIdent  Code = 1001 // unknown identifier
	LookupUnknownMember Code = 1002 // unknown struct field / method
	LookupUnknownImport Code = 1003 // unknown import member

	// --- §7.2 Type errors (2000s) ------------------------------------------

	TypeIncompatible      Code = 2001 // operands not compatible
	TypeUnassignable      Code = 2002 // RHS not assignable to LHS
	TypeUnconvertible     Code = 2003 // cast not permitted
	TypeIndexOutOfBounds  Code = 2004 // constant index outside array bounds
	TypeIntOverflow       Code = 2005 // integer literal overflows target type
	TypeFloatOverflow     Code = 2006 // float literal overflows target type
	TypeOperatorNotOnType Code = 2007 // operator not defined for type
	TypeInvalidBoolCtx    Code = 2008 // condition is not bool/?T/narrowed
	TypeMismatchedIfArms  Code = 2009 // rvalue if branches disagree and neither wraps
	TypeMissingReturn     Code = 2010 // function declares non-void result but body falls through
	TypeInvalidResult     Code = 2011 // return value doesn't match declared result
	TypeOptionalUnchecked Code = 2012 // member/deref access through an un-narrowed optional
	TypeVoidValue         Code = 2013 // declaring a value of type void
	TypeNotImplemented    Code = 2014 // construct intentionally left unimplemented (EXPR_NS/EXPR_FOR/etc.)

	// --- §7.3 Arity / shape errors (3000s) ----------------------------------

	ArityCallArgs       Code = 3001 // wrong number of call arguments
	ArityTemplateArgs   Code = 3002 // wrong number of template arguments
	ArityPositionAfter  Code = 3003 // positional argument after a named one
	ArityNamedMisplaced Code = 3004 // named argument doesn't match any remaining parameter
	ArityFieldShape     Code = 3005 // struct construction: missing/duplicate/unknown field

	// --- §7.4 Declaration errors (4000s) ------------------------------------

	DeclDuplicate       Code = 4001 // duplicate definition in the same scope
	DeclZeroLengthArray Code = 4002 // array type with length 0
	DeclAliasCycle      Code = 4003 // alias refers to itself transitively
	DeclInvalidDrop     Code = 4004 // drop has the wrong signature
	DeclMainSignature   Code = 4005 // main takes parameters or returns non-void
	DeclVisibilityLeak  Code = 4006 // public declaration exposes a less-visible member
	DeclImportShadow    Code = 4007 // wildcard import shadows a prior import
	DeclTemplateArity   Code = 4008 // template declared with an invalid parameter list

	// --- §7.5 Mutability errors (5000s) --------------------------------------

	MutAssignImmutable  Code = 5001 // assignment to let/param/field
	MutAssignThroughRef Code = 5002 // assignment through a non-mutable reference
	MutAssignNarrowed   Code = 5003 // assignment to a type-narrowed binding
	MutDerefMovesOwner  Code = 5004 // dereferencing a borrowed owner would move it
	MutNarrowCombinator Code = 5005 // type-narrowing let/var combined with `||`/`!`

	// --- §7.6 Resource errors (6000s) -----------------------------------------

	ResourceOutOfMemory Code = 6001 // allocation failure; halts the pass

	// --- HELP codes (9000s) ---------------------------------------------------

	HelpDidYouMean        Code = 9001 // fuzzy "did you mean <candidate>"
	HelpImportRename      Code = 9002 // "X was imported as Y"
	HelpDeclaredHere      Code = 9003 // pointer at a relevant declaration
	HelpUnusedLocal       Code = 9004 // local never used, no side effects
	HelpUnusedOwnerResult Code = 9005 // call result is an owner and was discarded
)

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("DIAG%04d", uint16(c))
}

var codeNames = map[Code]string{
	UnknownCode: "UNKNOWN",

	LookupUnknownIdent:  "LOOKUP_UNKNOWN_IDENT",
	LookupUnknownMember: "LOOKUP_UNKNOWN_MEMBER",
	LookupUnknownImport: "LOOKUP_UNKNOWN_IMPORT",

	TypeIncompatible:      "TYPE_INCOMPATIBLE",
	TypeUnassignable:      "TYPE_UNASSIGNABLE",
	TypeUnconvertible:     "TYPE_UNCONVERTIBLE",
	TypeIndexOutOfBounds:  "TYPE_INDEX_OUT_OF_BOUNDS",
	TypeIntOverflow:       "TYPE_INT_OVERFLOW",
	TypeFloatOverflow:     "TYPE_FLOAT_OVERFLOW",
	TypeOperatorNotOnType: "TYPE_OPERATOR_NOT_ON_TYPE",
	TypeInvalidBoolCtx:    "TYPE_INVALID_BOOL_CONTEXT",
	TypeMismatchedIfArms:  "TYPE_MISMATCHED_IF_ARMS",
	TypeMissingReturn:     "TYPE_MISSING_RETURN",
	TypeInvalidResult:     "TYPE_INVALID_RESULT",
	TypeOptionalUnchecked: "TYPE_OPTIONAL_UNCHECKED",
	TypeVoidValue:         "TYPE_VOID_VALUE",
	TypeNotImplemented:    "TYPE_NOT_IMPLEMENTED",

	ArityCallArgs:       "ARITY_CALL_ARGS",
	ArityTemplateArgs:   "ARITY_TEMPLATE_ARGS",
	ArityPositionAfter:  "ARITY_POSITION_AFTER_NAMED",
	ArityNamedMisplaced: "ARITY_NAMED_MISPLACED",
	ArityFieldShape:     "ARITY_FIELD_SHAPE",

	DeclDuplicate:       "DECL_DUPLICATE",
	DeclZeroLengthArray: "DECL_ZERO_LENGTH_ARRAY",
	DeclAliasCycle:      "DECL_ALIAS_CYCLE",
	DeclInvalidDrop:     "DECL_INVALID_DROP",
	DeclMainSignature:   "DECL_MAIN_SIGNATURE",
	DeclVisibilityLeak:  "DECL_VISIBILITY_LEAK",
	DeclImportShadow:    "DECL_IMPORT_SHADOW",
	DeclTemplateArity:   "DECL_TEMPLATE_ARITY",

	MutAssignImmutable:  "MUT_ASSIGN_IMMUTABLE",
	MutAssignThroughRef: "MUT_ASSIGN_THROUGH_REF",
	MutAssignNarrowed:   "MUT_ASSIGN_NARROWED",
	MutDerefMovesOwner:  "MUT_DEREF_MOVES_OWNER",
	MutNarrowCombinator: "MUT_NARROW_COMBINATOR",

	ResourceOutOfMemory: "RESOURCE_OUT_OF_MEMORY",

	HelpDidYouMean:        "HELP_DID_YOU_MEAN",
	HelpImportRename:      "HELP_IMPORT_RENAME",
	HelpDeclaredHere:      "HELP_DECLARED_HERE",
	HelpUnusedLocal:       "HELP_UNUSED_LOCAL",
	HelpUnusedOwnerResult: "HELP_UNUSED_OWNER_RESULT",
}
