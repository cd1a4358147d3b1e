package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"surge/internal/diag"
	"surge/internal/source"
)

func TestDiagViewCmd_RendersSnapshot(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "main.sg")
	if err := os.WriteFile(srcPath, []byte("let x int = 1\n"), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(srcPath)
	if err != nil {
		t.Fatalf("loading source: %v", err)
	}

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.TypeUnassignable, source.MakeLoc(id, 1, 5, 1), "cannot assign value"))

	data, err := bag.MarshalBinary()
	if err != nil {
		t.Fatalf("marshaling snapshot: %v", err)
	}
	snapPath := filepath.Join(dir, "snap.msgpack")
	if err := os.WriteFile(snapPath, data, 0o644); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	diagInteractive = false
	diagContext = 1
	var buf bytes.Buffer
	diagViewCmd.SetOut(&buf)
	if err := diagViewCmd.RunE(diagViewCmd, []string{snapPath, srcPath}); err != nil {
		t.Fatalf("diag view: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("TYPE_UNASSIGNABLE")) {
		t.Fatalf("expected diagnostic code in output, got %q", buf.String())
	}
}
