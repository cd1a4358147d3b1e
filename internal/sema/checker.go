// Package sema implements the type checker and late identifier resolver:
// the semantic core described by core spec §2-§4 (C3 to C11; C1/C2 live in
// internal/source and internal/types, C4 in internal/diag).
//
// A single Checker is single-threaded (core spec §5): every exported method
// assumes synchronous, non-reentrant use. Running multiple packages in
// parallel means constructing one Checker per package and sharing only the
// process-wide string interner, which is read-write-mutex protected.
// source.FileSet has no locking of its own.
package sema

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/symbols"
	"surge/internal/types"
)

// Reserved bundles the pre-interned reserved words the checker special-cases
// (core spec §4.1).
type Reserved = source.Reserved

// Checker holds every piece of mutable state a single-pass check needs: the
// shared AST arena, the structural type interner, the compatibility oracle,
// the current lexical scope, the package being checked, and the diagnostic
// sink.
type Checker struct {
	B        *ast.Builder
	Strings  *source.Interner
	Types    *types.Interner
	Oracle   *types.Oracle
	Prims    ast.Primitives
	Reserved Reserved
	Reporter diag.Reporter

	Pkg   *symbols.Package
	Scope *symbols.Scope

	currentFun   ast.NodeID // enclosing FUN node, for RETURN/this checks
	templateNest int        // >0 while checking inside a template definition body

	postAnalysis  []ast.NodeID                         // struct/alias types awaiting owner-propagation fixed point
	importedNames map[source.StringID]ast.NodeID        // names bound by an import in the current unit, for shadow detection
	renameTable   map[source.StringID]source.StringID   // original name -> local name, for "X was imported as Y" suggestions
	instances     map[string]ast.NodeID                 // template instance cache, keyed by (template, arg type-ids)

	reportedError bool   // set once, suppresses further diagnostics (OOM, per §7)
	errCount      uint32 // mirrors diag.Bag.ErrCount when the Reporter is not bag-backed
}

// Options configures a checker run.
type Options struct {
	Target  types.Target
	Strings *source.Interner
}

// NewChecker constructs a Checker for a single package, wiring together a
// fresh AST builder, type interner and compatibility oracle.
func NewChecker(opts Options, pkg *symbols.Package, reporter diag.Reporter) *Checker {
	strings := opts.Strings
	if strings == nil {
		strings = source.NewInterner()
	}
	b := ast.NewBuilder(ast.DefaultHints())
	prims := b.NewPrimitives(safeWidth(opts.Target.IntWidth), safeWidth(opts.Target.UintWidth))
	return &Checker{
		B:             b,
		Strings:       strings,
		Types:         types.NewInterner(b, strings),
		Oracle:        types.NewOracle(b, opts.Target),
		Prims:         prims,
		Reserved:      source.InternReserved(strings),
		Reporter:      reporter,
		Pkg:           pkg,
		Scope:         symbols.NewScope(),
		importedNames: make(map[source.StringID]ast.NodeID),
		renameTable:   make(map[source.StringID]source.StringID),
		instances:     make(map[string]ast.NodeID),
	}
}

func safeWidth(w int) uint32 {
	if w != 32 && w != 64 {
		return 64
	}
	return uint32(w)
}

// Unknown returns the `unknown` sentinel type node.
func (c *Checker) Unknown() ast.NodeID { return c.Prims.Unknown }

// Void returns the `void` primitive type node.
func (c *Checker) Void() ast.NodeID { return c.Prims.Void }

// report emits a diagnostic unless a prior OOM already halted the pass.
func (c *Checker) report(sev diag.Severity, code diag.Code, loc source.Loc, msg string, notes ...diag.Note) {
	if c.reportedError && code != diag.ResourceOutOfMemory {
		return
	}
	if sev == diag.SevError {
		c.errCount++
	}
	c.Reporter.Report(code, sev, loc, msg, notes)
}

func (c *Checker) errorf(code diag.Code, loc source.Loc, msg string, notes ...diag.Note) {
	c.report(diag.SevError, code, loc, msg, notes...)
}

func (c *Checker) warnf(code diag.Code, loc source.Loc, msg string, notes ...diag.Note) {
	c.report(diag.SevWarning, code, loc, msg, notes...)
}

func (c *Checker) helpf(code diag.Code, loc source.Loc, msg string, notes ...diag.Note) {
	c.report(diag.SevHelp, code, loc, msg, notes...)
}

// ErrCount returns the number of SevError diagnostics reported so far
// (core spec §4.4: "errcount is atomically incremented on ERR"; reads here
// are only ever issued between synchronous checker calls).
func (c *Checker) ErrCount() uint32 { return c.errCount }

// HaltOnOOM marks the pass as having hit an unrecoverable allocation
// failure: every subsequent node visit becomes a no-op (core spec §7).
func (c *Checker) HaltOnOOM(loc source.Loc) {
	c.reportedError = true
	c.errorf(diag.ResourceOutOfMemory, loc, "out of memory")
}

// node is a tiny convenience so call sites read c.node(id) instead of
// c.B.Get(id) throughout the rest of the package.
func (c *Checker) node(id ast.NodeID) *ast.Node { return c.B.Get(id) }

// name renders a StringID through the shared interner.
func (c *Checker) name(sym source.StringID) string {
	if sym == source.NoStringID {
		return "_"
	}
	return c.Strings.MustLookup(sym)
}

// markChecked marks a node as visited; used by every CheckX entry point so
// re-running the checker on an already-checked node is a no-op (core spec
// §3 invariant, §8 "re-running the checker on the same AST is a no-op").
func (c *Checker) markChecked(id ast.NodeID) {
	n := c.node(id)
	n.Flags = n.Flags.Set(ast.FlagChecked)
}
