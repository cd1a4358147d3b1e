package diag

import "surge/internal/source"

// Note attaches auxiliary context to a diagnostic — typically a HELP
// pointing at a declaration (core spec §4.4's "did you mean"/HELP notes).
type Note struct {
	Loc source.Loc
	Msg string
}

// Diagnostic captures a single issue along with its severity, code, and any
// HELP notes, per core spec §4.4: {kind, origin, short msg, contextual msg,
// source excerpt}. The contextual "file:line:col: kind:"-prefixed message and
// source excerpt are rendering concerns, produced on demand by internal/diagfmt
// rather than stored here.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Loc
	Notes    []Note
}

// New constructs a Diagnostic with no notes.
func New(sev Severity, code Code, primary source.Loc, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

// NewError is a shortcut for New(SevError, ...).
func NewError(code Code, primary source.Loc, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy of d with an additional HELP/context note.
func (d Diagnostic) WithNote(loc source.Loc, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Msg: msg})
	return d
}
