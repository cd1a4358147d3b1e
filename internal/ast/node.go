// Package ast defines the checker's AST representation: a single closed
// Kind enum (kind.go), a bit-set of per-node flags (flags.go), and one
// arena-backed Node type shared by every statement, expression and type
// syntax tree the checker visits.
//
// Nodes do not embed one another through Go struct embedding the way the
// source compiler embeds Node ⊂ Stmt ⊂ Expr ⊂ Type via a C "struct prefix"
// convention (core spec §9). Instead every Node carries the union of fields
// any kind might need; which fields are meaningful is determined by Kind.
// This keeps Node trivially copyable (required for the clone-on-write
// narrowing/template-transform duties in internal/sema) and keeps the
// membership tests in kind.go cheap range checks instead of type switches.
package ast

import (
	"surge/internal/source"
)

// NodeID is a 1-based index into a Builder's arena; 0 (NilNode) means
// "no node".
type NodeID uint32

// NilNode is the zero NodeID: the checker's "no node / not yet resolved"
// value, analogous to a nil pointer in the source compiler.
const NilNode NodeID = 0

// Node is the checker's universal AST element. Field meaning by Kind:
//
//   - ID/NS/MEMBER/IMPORT: Sym is the referenced name; A (for MEMBER) is the
//     receiver; Ref is filled in once resolved.
//   - VAR/LET/PARAM/FIELD: Sym is the binding name, A is the declared type
//     node, B is the initializer (0 if absent).
//   - FUN: Sym is the function name, A is the receiver type (0 if free
//     function), Children is the parameter list, B is the result type node,
//     C is the body BLOCK.
//   - BLOCK: Children is the statement list; the last entry is the rvalue
//     expression when Flags has RValue set.
//   - CALL: A is the callee, Children is the argument list.
//   - BINOP/ASSIGN: A is LHS, B is RHS, Sym names the operator.
//   - PREFIXOP/POSTFIXOP/DEREF: A is the operand, Sym names the operator.
//   - IF: A is the condition, B is the then-BLOCK, C is the else-branch
//     (0, a BLOCK, or another IF for `else if`).
//   - FOR: A is the condition (0 for an infinite loop), B is the body BLOCK.
//   - RETURN: A is the return value (0 for a bare return).
//   - SUBSCRIPT: A is the receiver, B is the index expression.
//   - TYPECONS/ARRAYLIT: A is the type being constructed (0 to infer),
//     Children is the argument/element list.
//   - INTLIT/FLOATLIT/STRLIT/BOOLLIT: IntVal/FloatVal/StrVal/BoolVal holds
//     the literal payload.
//   - Type kinds (ARRAY, PTR, REF, MUTREF, SLICE, MUTSLICE, OPTIONAL):
//     A is the element type node; Size for ARRAY is read from IntVal.
//   - STRUCT: Sym is the tag name (0 for anonymous), Children is the FIELD
//     list, Size/Align are computed once the fields are checked.
//   - ALIAS: A is the aliased type node.
//   - TEMPLATE: Sym is the template name, Children is the placeholder
//     parameter list, A is the body type/decl.
//   - PLACEHOLDER: Sym is the placeholder's name; C holds its default (0 if
//     none).
//   - UNRESOLVED: Sym is the name awaiting lookup; Ref is filled in once
//     resolved, or the node is rewritten to `unknown` on failure.
type Node struct {
	Kind  Kind
	Flags Flags
	Loc   source.Loc
	NUse  uint32 // number of recorded uses (read accesses), for unused-binding diagnostics

	Sym source.StringID

	Type NodeID // expression's value type, or declared type for a local/field
	Ref  NodeID // resolved referent (ID/MEMBER/UNRESOLVED), 0 until resolved

	A, B, C  NodeID
	Children []NodeID

	IntVal   int64
	FloatVal float64
	StrVal   string
	BoolVal  bool

	// Populated only when Kind.IsType(): natural size/alignment in target
	// bytes, and the structural type-id this node was interned under (see
	// internal/types). TypeKey is empty until the first successful intern.
	Size, Align uint32
	TypeKey     string
}

// IsChecked reports whether the checker has already visited this node.
func (n *Node) IsChecked() bool { return n.Flags.Has(FlagChecked) }

// IsOwnerType reports whether a type node represents an owner: it has a
// custom drop, transitively owns another owner, is a raw pointer, or is an
// alias over an owner (core spec §3 invariants). Aliases of primitives are
// never owners.
func (n *Node) IsOwnerType() bool {
	if n == nil {
		return false
	}
	if n.Kind == KindPtr {
		return true
	}
	if n.Flags.Has(FlagDrop) || n.Flags.Has(FlagSubowners) {
		return true
	}
	return false
}
