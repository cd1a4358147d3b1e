package symbols

import (
	"crypto/sha256"
	"fmt"
	"sort"

	"surge/internal/ast"
	"surge/internal/source"
)

// tfunKey keys a package's type-function table by (receiver type-id,
// method name) — core spec's "the package's type-function table keyed by
// the receiver's unwrapped-pointer type-id".
type tfunKey struct {
	receiverTypeID string
	method         source.StringID
}

// Package is a set of source units sharing a namespace (core spec §3). It
// owns the top-level symbol map, the type-function table, the namespace
// value exposing its public API once loaded, and the package's optional
// `main` entry point.
type Package struct {
	Name source.StringID

	defs     map[source.StringID]ast.NodeID
	tfundefs map[tfunKey]ast.NodeID

	// APINamespace is populated by the loader (an external collaborator,
	// core spec §6) before importers of this package are checked.
	APINamespace ast.NodeID

	MainFun ast.NodeID // NilNode if this package declares no `main`

	strings *source.Interner
}

// NewPackage constructs an empty Package.
func NewPackage(name source.StringID, strings *source.Interner) *Package {
	return &Package{
		Name:     name,
		defs:     make(map[source.StringID]ast.NodeID),
		tfundefs: make(map[tfunKey]ast.NodeID),
		strings:  strings,
	}
}

// Define records a top-level declaration. Returns false if name is already
// defined (the caller diagnoses DeclDuplicate); the existing definition is
// left untouched.
func (p *Package) Define(name source.StringID, node ast.NodeID) bool {
	if _, exists := p.defs[name]; exists {
		return false
	}
	p.defs[name] = node
	return true
}

// Lookup resolves a top-level name.
func (p *Package) Lookup(name source.StringID) (ast.NodeID, bool) {
	n, ok := p.defs[name]
	return n, ok
}

// DefineMethod records a type-function (method) under its receiver's
// canonical type-id and method name.
func (p *Package) DefineMethod(receiverTypeID string, method source.StringID, fn ast.NodeID) bool {
	key := tfunKey{receiverTypeID: receiverTypeID, method: method}
	if _, exists := p.tfundefs[key]; exists {
		return false
	}
	p.tfundefs[key] = fn
	return true
}

// LookupMethod resolves a method against a receiver's canonical type-id.
func (p *Package) LookupMethod(receiverTypeID string, method source.StringID) (ast.NodeID, bool) {
	fn, ok := p.tfundefs[tfunKey{receiverTypeID: receiverTypeID, method: method}]
	return fn, ok
}

// Names returns every top-level defined name, sorted by their interned
// string form for deterministic iteration (export digests, fuzzy-match
// candidate lists).
func (p *Package) Names() []source.StringID {
	out := make([]source.StringID, 0, len(p.defs))
	for name := range p.defs {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return p.strings.MustLookup(out[i]) < p.strings.MustLookup(out[j])
	})
	return out
}

// ExportDigest computes a stable SHA-256 over the package's public
// (PUB-visibility) top-level declaration names and kinds, used to detect
// whether a dependent package's emitted header needs regenerating without
// re-parsing it (core spec §3: "a SHA-256 digest of its emitted public
// header").
func (p *Package) ExportDigest(b *ast.Builder) [32]byte {
	h := sha256.New()
	for _, name := range p.Names() {
		node := b.Get(p.defs[name])
		if node.Flags.Visibility() != ast.VisPub {
			continue
		}
		fmt.Fprintf(h, "%s:%s\n", p.strings.MustLookup(name), node.Kind)
	}
	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
