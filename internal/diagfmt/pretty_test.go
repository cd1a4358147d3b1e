package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"surge/internal/diag"
	"surge/internal/source"
)

func TestPretty_HeaderAndExcerpt(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.sg", []byte("let x int = 1\nlet y = x\n"))

	bag := diag.NewBag(0)
	loc := source.MakeLoc(id, 1, 5, 1)
	bag.Add(diag.NewError(diag.TypeUnassignable, loc, "cannot assign value"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, Context: 1, ShowNotes: true})

	out := buf.String()
	if !strings.Contains(out, "main.sg:1:5:") {
		t.Fatalf("expected header with file:line:col, got %q", out)
	}
	if !strings.Contains(out, "TYPE_UNASSIGNABLE") {
		t.Fatalf("expected the diagnostic code name, got %q", out)
	}
	if !strings.Contains(out, "let x int = 1") {
		t.Fatalf("expected source excerpt, got %q", out)
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("fun f() int { return true }\n"))

	bag := diag.NewBag(0)
	d := diag.NewError(diag.TypeInvalidResult, source.MakeLoc(id, 1, 1, 3), "bad result").
		WithNote(source.MakeLoc(id, 1, 10, 3), "f returns int")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})

	if !strings.Contains(buf.String(), "f returns int") {
		t.Fatalf("expected note text in output, got %q", buf.String())
	}
}
