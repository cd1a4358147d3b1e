package sema

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
)

// ImportMember describes one entry in an external package's API namespace
// (core spec §6: "a sequence of (name, node) pairs" the loader exposes).
type ImportMember struct {
	Name source.StringID
	Node ast.NodeID
}

// CheckImport resolves an IMPORT statement against a namespace of
// ImportMembers supplied by the external package loader (core spec C11).
//
//   - alias != NoStringID: `import pkg as alias from "..."` — define alias
//     bound to nsValue in the current scope.
//   - names non-empty: `import a, b as c from "..."` — for each named
//     import, look up by original name in members, define locally.
//   - wildcard: `import * from "..."` — import every member not already
//     shadowed by a prior import.
func (c *Checker) CheckImport(id ast.NodeID, nsValue ast.NodeID, members []ImportMember, alias source.StringID, names []ImportSpec, wildcard bool) {
	n := c.node(id)

	if alias != source.NoStringID {
		c.Scope.Define(alias, nsValue)
	}

	byName := make(map[source.StringID]ast.NodeID, len(members))
	for _, m := range members {
		byName[m.Name] = m.Node
	}

	for _, spec := range names {
		memberNode, ok := byName[spec.Original]
		if !ok {
			c.errorf(diag.LookupUnknownImport, n.Loc,
				fmt.Sprintf("unknown import member %q", c.name(spec.Original)))
			continue
		}
		local := spec.Original
		if spec.Renamed != source.NoStringID {
			local = spec.Renamed
			c.helpf(diag.HelpImportRename, n.Loc,
				fmt.Sprintf("%s was imported as %s", c.name(spec.Original), c.name(local)))
			c.renameTable[spec.Original] = local
		}
		c.defineImportOrDiagnose(n.Loc, local, memberNode, true)
	}

	if wildcard {
		for _, m := range members {
			if _, taken := byName_taken(names, m.Name); taken {
				continue
			}
			c.defineImportOrDiagnose(n.Loc, m.Name, m.Node, false)
		}
	}

	n.Flags = n.Flags.Set(ast.FlagChecked)
}

// ImportSpec is one named-import clause within an IMPORT statement.
type ImportSpec struct {
	Original source.StringID
	Renamed  source.StringID // NoStringID if not renamed
}

func byName_taken(names []ImportSpec, name source.StringID) (ImportSpec, bool) {
	for _, s := range names {
		if s.Original == name {
			return s, true
		}
	}
	return ImportSpec{}, false
}

// defineImportOrDiagnose defines local <- node, reporting DeclImportShadow
// when a prior import already bound the name, or, for a wildcard import
// only, DeclDuplicate when the package already has a top-level definition
// of that name (core spec C11).
func (c *Checker) defineImportOrDiagnose(loc source.Loc, local source.StringID, node ast.NodeID, explicit bool) {
	if prevImport, ok := c.importedNames[local]; ok {
		_ = prevImport
		c.errorf(diag.DeclImportShadow, loc, fmt.Sprintf("importing %q shadows a previous import", c.name(local)))
		return
	}
	if !explicit {
		if _, exists := c.Pkg.Lookup(local); exists {
			c.errorf(diag.DeclDuplicate, loc, fmt.Sprintf("duplicate definition of %q", c.name(local)))
			return
		}
	}
	c.Scope.Define(local, node)
	c.importedNames[local] = node
}
