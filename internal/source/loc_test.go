package source

import "testing"

func TestLocRoundTrip(t *testing.T) {
	l := MakeLoc(FileID(3), 42, 7, 5)
	if l.File() != 3 || l.Line() != 42 || l.Col() != 7 || l.Width() != 5 {
		t.Fatalf("round trip mismatch: %+v", l)
	}
	if !l.IsValid() {
		t.Fatalf("expected valid loc")
	}
}

func TestNoLocIsInvalid(t *testing.T) {
	if NoLoc.IsValid() {
		t.Fatalf("NoLoc must be invalid")
	}
	if NoLoc.String() != "<unknown>" {
		t.Fatalf("unexpected NoLoc string: %q", NoLoc.String())
	}
}

func TestLocClampsOverflow(t *testing.T) {
	l := MakeLoc(FileID(1), 1<<30, 1<<20, 1<<20)
	if l.Line() != locLineMax || l.Col() != locColMax || l.Width() != locWidthMax {
		t.Fatalf("expected clamped fields, got %+v", l)
	}
}

func TestLocCoverSameLine(t *testing.T) {
	a := MakeLoc(1, 10, 5, 3)  // cols 5..8
	b := MakeLoc(1, 10, 12, 2) // cols 12..14
	c := a.Cover(b)
	if c.Col() != 5 || c.Width() != 9 {
		t.Fatalf("unexpected cover: col=%d width=%d", c.Col(), c.Width())
	}
}

func TestLocCoverDifferentLineReturnsFirst(t *testing.T) {
	a := MakeLoc(1, 10, 5, 3)
	b := MakeLoc(1, 11, 1, 1)
	if got := a.Cover(b); got != a {
		t.Fatalf("expected cover across lines to return l unchanged, got %v", got)
	}
}
