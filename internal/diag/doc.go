// Package diag defines the diagnostic model shared by the checker and its
// presentation layers.
//
// # Purpose
//
//   - Provide deterministic data structures for findings produced by the
//     semantic checker (internal/sema).
//   - Offer light-weight utilities (Reporter, Bag, DedupReporter) that let the
//     checker emit diagnostics without coupling to storage or rendering.
//
// # Scope
//
// Package diag performs no formatting or IO — rendering lives in
// internal/diagfmt and internal/diagtui.
//
// # Data model
//
// Diagnostic is the central record (core spec §4.4):
//
//   - Severity — ERR/WARN/HELP, defined in severity.go.
//   - Code — a compact numeric identifier (see codes.go), grouped by the
//     error taxonomy in core spec §7.
//   - Message — short, actionable text.
//   - Primary — the canonical source.Loc pointing at the issue.
//   - Notes — optional secondary locations/messages (HELP suggestions,
//     "declared here" pointers).
//
// # Emitting diagnostics
//
// Producers use a diag.Reporter to decouple emission from storage: either
// call Reporter.Report(...) directly, or build one via NewReportBuilder (or
// the ReportError/ReportWarning/ReportHelp helpers), chain WithNote, and call
// Emit. diag.BagReporter aggregates into a *Bag, which supports sorting,
// deduplication, and filtering.
package diag
