package ast

// Flags is the per-node bit set described in core spec §3. Bits 0-1 encode
// visibility as a small enum (UNIT < PKG < PUB); the remaining bits are
// independent booleans.
type Flags uint32

const (
	visibilityMask Flags = 0b11

	// Visibility levels, ordered so visibility(child) <= visibility(parent)
	// can be checked with a plain integer comparison.
	VisUnit Flags = 0
	VisPkg  Flags = 1
	VisPub  Flags = 2

	FlagChecked     Flags = 1 << 2  // node has been visited by the checker
	FlagRValue      Flags = 1 << 3  // used as a value
	FlagNarrowed    Flags = 1 << 4  // type is flow-narrowed from an optional
	FlagUnknown     Flags = 1 << 5  // contains an unresolved identifier
	FlagDrop        Flags = 1 << 6  // (type) has a custom drop method
	FlagSubowners   Flags = 1 << 7  // (type) transitively contains owning values
	FlagExit        Flags = 1 << 8  // (block) ends with return or unconditional exit
	FlagConst       Flags = 1 << 9  // compile-time constant
	FlagNamedParams Flags = 1 << 10 // call/construction used named arguments
	FlagPkgNS       Flags = 1 << 11 // namespace value backing a package API
	FlagTemplate    Flags = 1 << 12 // generic template definition
	FlagTemplateI   Flags = 1 << 13 // instantiated from a template
	FlagMark1       Flags = 1 << 14 // scratch bit, transformer/narrowing bookkeeping
	FlagMark2       Flags = 1 << 15 // scratch bit, transformer/narrowing bookkeeping
)

// Visibility extracts the visibility level from the flag set.
func (f Flags) Visibility() Flags { return f & visibilityMask }

// WithVisibility returns f with its visibility bits replaced by v.
func (f Flags) WithVisibility(v Flags) Flags { return (f &^ visibilityMask) | (v & visibilityMask) }

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Set returns f with mask's bits set.
func (f Flags) Set(mask Flags) Flags { return f | mask }

// Clear returns f with mask's bits cleared.
func (f Flags) Clear(mask Flags) Flags { return f &^ mask }

// VisibilityLeaks reports whether a child's visibility is narrower than its
// parent's, which core spec §3 invariants forbid for public declarations.
func VisibilityLeaks(parent, child Flags) bool {
	return child.Visibility() < parent.Visibility()
}
