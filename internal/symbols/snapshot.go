package symbols

import (
	"surge/internal/ast"

	"github.com/vmihailenco/msgpack/v5"
)

// ExportEntry is one public top-level declaration, as seen from outside the
// package: its name and the structural type-id of its recorded type (empty
// when the declaration has no recorded type and no type-id of its own).
type ExportEntry struct {
	Name   string
	TypeID string
}

// ExportSurface builds the list of public (PUB-visibility) declarations a
// dependent package's import binder (C11) would see, sorted by name for a
// deterministic snapshot.
func (p *Package) ExportSurface(b *ast.Builder) []ExportEntry {
	var out []ExportEntry
	for _, name := range p.Names() {
		node := b.Get(p.defs[name])
		if node.Flags.Visibility() != ast.VisPub {
			continue
		}
		typeID := node.TypeKey
		if node.Type != ast.NilNode {
			typeID = b.Get(node.Type).TypeKey
		}
		out = append(out, ExportEntry{Name: p.strings.MustLookup(name), TypeID: typeID})
	}
	return out
}

// MarshalExportSurface msgpack-encodes the package's public export surface,
// so a dependent package elsewhere (the out-of-scope loader/driver) can
// bind imports against it without re-checking this package's source (core
// spec §3/§6, SPEC_FULL §2 domain stack).
func (p *Package) MarshalExportSurface(b *ast.Builder) ([]byte, error) {
	return msgpack.Marshal(p.ExportSurface(b))
}

// UnmarshalExportSurface decodes a snapshot produced by
// MarshalExportSurface.
func UnmarshalExportSurface(data []byte) ([]ExportEntry, error) {
	var out []ExportEntry
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
