package diag

// AllCodes returns every known Code, in no particular order. Used by
// name-based lookup (a CLI "explain" command).
func AllCodes() []Code {
	out := make([]Code, 0, len(codeNames))
	for code := range codeNames {
		out = append(out, code)
	}
	return out
}

// Describe returns a one-line human description of code, suitable for a
// CLI "explain" command. Falls back to the bare code name when nothing
// more specific is on file.
func (c Code) Describe() string {
	if text, ok := codeDescriptions[c]; ok {
		return text
	}
	return c.String()
}

var codeDescriptions = map[Code]string{
	UnknownCode: "uninitialized or erroneous diagnostic",

	LookupUnknownIdent:  "reference to an identifier with no visible declaration",
	LookupUnknownMember: "reference to a struct field or method that doesn't exist on the receiver",
	LookupUnknownImport: "import names a member the source package doesn't export",

	TypeIncompatible:      "two operands are used together but their types aren't compatible",
	TypeUnassignable:      "right-hand side isn't assignable to the left-hand side's type",
	TypeUnconvertible:     "cast requested between two types with no defined conversion",
	TypeIndexOutOfBounds:  "constant array index falls outside the array's declared bounds",
	TypeIntOverflow:       "integer literal doesn't fit in the target type's width",
	TypeFloatOverflow:     "float literal overflows the target type's range",
	TypeOperatorNotOnType: "operator applied to a type that doesn't define it",
	TypeInvalidBoolCtx:    "condition is not bool, ?T, or a narrowed optional",
	TypeMismatchedIfArms:  "if-expression arms disagree on type and neither is void",
	TypeMissingReturn:     "function declares a non-void result but control falls off the end",
	TypeInvalidResult:     "return value's type doesn't match the function's declared result",
	TypeOptionalUnchecked: "member access or dereference through an optional that hasn't been narrowed",
	TypeVoidValue:         "a local or field was declared with type void",
	TypeNotImplemented:    "construct intentionally left unimplemented in this pass",

	ArityCallArgs:       "call supplies the wrong number of arguments for the callee's parameters",
	ArityTemplateArgs:   "template instantiation supplies the wrong number of type arguments",
	ArityPositionAfter:  "a positional argument appears after a named one",
	ArityNamedMisplaced: "named argument doesn't match any remaining parameter, or repeats one already supplied",
	ArityFieldShape:     "struct construction is missing a field, repeats one, or names one that doesn't exist",

	DeclDuplicate:       "name is already defined in this scope",
	DeclZeroLengthArray: "array type declared with length 0",
	DeclAliasCycle:      "alias refers to itself, directly or transitively",
	DeclInvalidDrop:     "drop method has a signature other than the one the owner contract requires",
	DeclMainSignature:   "main takes parameters or returns a non-void result",
	DeclVisibilityLeak:  "a public declaration exposes a member with narrower visibility",
	DeclImportShadow:    "a wildcard import shadows a name bound by an earlier import",
	DeclTemplateArity:   "template declared with an invalid parameter list",

	MutAssignImmutable:  "assignment target is a let binding, parameter, or field",
	MutAssignThroughRef: "assignment through a reference that isn't declared mutable",
	MutAssignNarrowed:   "assignment to a binding currently narrowed by a type guard",
	MutDerefMovesOwner:  "dereferencing a borrowed owner here would move it out from under the borrow",
	MutNarrowCombinator: "a narrowing let/var combined with || or !, which the narrowing rules don't support",

	ResourceOutOfMemory: "allocation failure; the checker halted the current pass",

	HelpDidYouMean:        "fuzzy match suggestion for a misspelled identifier",
	HelpImportRename:      "note that an imported name was bound under a different local name",
	HelpDeclaredHere:      "pointer at the declaration the diagnostic concerns",
	HelpUnusedLocal:       "local variable is never used and its initializer has no side effects",
	HelpUnusedOwnerResult: "call result owns a resource and was discarded without being bound or dropped",
}
