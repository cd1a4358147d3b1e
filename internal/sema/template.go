package sema

import (
	"fmt"
	"strconv"
	"strings"

	"surge/internal/ast"
	"surge/internal/diag"
)

// Instantiate substitutes template's placeholder parameters with args,
// deduplicating via the instance cache, and type-checks the result (core
// spec C7).
//
// Instantiation is skipped (returns the template itself, unchanged) while
// the checker is currently inside a template definition: a nested use of a
// template stays symbolic until an outer instantiation reaches it (core
// spec §4.7).
func (c *Checker) Instantiate(loc ast.NodeID, template ast.NodeID, args []ast.NodeID) ast.NodeID {
	if c.templateNest > 0 {
		return template
	}

	tn := c.node(template)
	params := tn.Children
	required := 0
	for _, p := range params {
		if c.node(p).C == ast.NilNode {
			required++
		}
	}
	if len(args) < required || len(args) > len(params) {
		c.errorf(diag.ArityTemplateArgs, c.node(loc).Loc,
			fmt.Sprintf("wrong number of template arguments: expected %d-%d, got %d", required, len(params), len(args)),
			diag.Note{Loc: tn.Loc, Msg: fmt.Sprintf("%s declared here", c.name(tn.Sym))})
		return c.Unknown()
	}

	full := make([]ast.NodeID, len(params))
	for i, p := range params {
		if i < len(args) {
			full[i] = args[i]
			continue
		}
		full[i] = c.node(p).C // default
	}

	key := c.instanceKey(template, full)
	if cached, ok := c.instances[key]; ok {
		return cached
	}

	sub := make(substitution, len(params))
	for i, p := range params {
		sub[p] = full[i]
	}

	instance := c.transform(tn.A, sub)
	if instance == tn.A {
		instance = c.B.Clone(tn.A) // no placeholder was reachable; clone once anyway
	}

	in := c.node(instance)
	in.Flags = in.Flags.Set(ast.FlagTemplateI)
	in.Flags = in.Flags.Clear(ast.FlagTemplate)
	in.Flags = in.Flags.Clear(ast.FlagChecked)

	// Register before checking so recursive references through this
	// instance's own fields find it already cached.
	c.instances[key] = instance
	return c.CheckType(instance)
}

// instanceKey computes the cache key `(template || typeid(arg1) || ...)`
// (core spec §4.7).
func (c *Checker) instanceKey(template ast.NodeID, args []ast.NodeID) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(template), 36))
	for _, a := range args {
		sb.WriteByte('|')
		sb.WriteString(c.node(a).TypeKey)
	}
	return sb.String()
}
