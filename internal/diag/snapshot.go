package diag

import (
	"surge/internal/source"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotNote and snapshotDiagnostic mirror Note/Diagnostic field-for-field;
// kept as separate wire types so the in-memory shapes stay free to evolve
// without silently changing the wire format.
type snapshotNote struct {
	Loc uint64
	Msg string
}

type snapshotDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Primary  uint64
	Notes    []snapshotNote
}

// MarshalBinary encodes every diagnostic in the bag as msgpack, so a caller
// outside this process (the out-of-scope backend/driver) can consume a
// checked package's diagnostics without re-running the checker (core spec
// §6 Output, SPEC_FULL §2 domain stack).
func (b *Bag) MarshalBinary() ([]byte, error) {
	out := make([]snapshotDiagnostic, len(b.items))
	for i, d := range b.items {
		notes := make([]snapshotNote, len(d.Notes))
		for j, n := range d.Notes {
			notes[j] = snapshotNote{Loc: uint64(n.Loc), Msg: n.Msg}
		}
		out[i] = snapshotDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Primary:  uint64(d.Primary),
			Notes:    notes,
		}
	}
	return msgpack.Marshal(out)
}

// UnmarshalBinary decodes a snapshot produced by MarshalBinary into a fresh
// set of diagnostics, replacing the bag's contents.
func (b *Bag) UnmarshalBinary(data []byte) error {
	var in []snapshotDiagnostic
	if err := msgpack.Unmarshal(data, &in); err != nil {
		return err
	}
	b.items = b.items[:0]
	b.errors = 0
	if cap(b.items) < len(in) {
		b.items = make([]Diagnostic, 0, len(in))
	}
	for _, sd := range in {
		notes := make([]Note, len(sd.Notes))
		for j, sn := range sd.Notes {
			notes[j] = Note{Loc: source.Loc(sn.Loc), Msg: sn.Msg}
		}
		b.Add(Diagnostic{
			Severity: Severity(sd.Severity),
			Code:     Code(sd.Code),
			Message:  sd.Message,
			Primary:  source.Loc(sd.Primary),
			Notes:    notes,
		})
	}
	return nil
}
