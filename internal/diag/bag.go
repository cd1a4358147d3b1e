package diag

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Bag holds a capped collection of diagnostics accumulated during a check.
type Bag struct {
	items   []Diagnostic
	maximum uint16
	errors  uint32
}

// NewBag creates a Bag with a capacity limit (0 selects a generous default).
func NewBag(maximum int) *Bag {
	if maximum <= 0 {
		maximum = 4096
	}
	capped, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("bag maximum overflow: %w", err))
	}
	return &Bag{items: make([]Diagnostic, 0, capped), maximum: capped}
}

// Add appends a diagnostic, honoring the capacity limit. Returns false if the
// bag is full. SevError diagnostics increment errcount (core spec §4.4).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.maximum) {
		return false
	}
	b.items = append(b.items, d)
	if d.Severity == SevError {
		b.errors++
	}
	return true
}

// Cap returns the maximum capacity of the bag.
func (b *Bag) Cap() uint16 { return b.maximum }

// Len returns the number of diagnostics recorded.
func (b *Bag) Len() int { return len(b.items) }

// ErrCount returns the running error count, readable at any point (§4.4/§6).
func (b *Bag) ErrCount() uint32 { return b.errors }

// HasErrors reports whether any SevError diagnostic was recorded.
func (b *Bag) HasErrors() bool { return b.errors > 0 }

// HasWarnings reports whether any SevWarning-or-worse diagnostic was recorded.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Items returns a read-only view; callers must not mutate the backing array.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends another Bag's diagnostics, growing capacity if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	total := len(b.items) + len(other.items)
	capped, err := safecast.Conv[uint16](total)
	if err != nil {
		panic(fmt.Errorf("bag merge overflow: %w", err))
	}
	if capped > b.maximum {
		b.maximum = capped
	}
	b.items = append(b.items, other.items...)
	b.errors += other.errors
}

// Sort orders diagnostics by file, line, col, severity (desc), code (asc).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File() != dj.Primary.File() {
			return di.Primary.File() < dj.Primary.File()
		}
		if di.Primary.Line() != dj.Primary.Line() {
			return di.Primary.Line() < dj.Primary.Line()
		}
		if di.Primary.Col() != dj.Primary.Col() {
			return di.Primary.Col() < dj.Primary.Col()
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics repeating an earlier (code, primary loc) pair —
// how the checker suppresses cascading diagnostics per core spec §7.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	out := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%d:%s", d.Code, d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}

// Filter keeps only diagnostics for which predicate returns true.
func (b *Bag) Filter(predicate func(Diagnostic) bool) {
	out := make([]Diagnostic, 0, len(b.items))
	errs := uint32(0)
	for _, d := range b.items {
		if predicate(d) {
			out = append(out, d)
			if d.Severity == SevError {
				errs++
			}
		}
	}
	b.items = out
	b.errors = errs
}
