package main

import (
	"bytes"
	"testing"

	"surge/internal/diag"
)

func TestExplainCmd_ByName(t *testing.T) {
	var buf bytes.Buffer
	explainCmd.SetOut(&buf)
	explainCmd.SetArgs([]string{"TYPE_UNASSIGNABLE"})
	if err := explainCmd.RunE(explainCmd, []string{"TYPE_UNASSIGNABLE"}); err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("TYPE_UNASSIGNABLE")) {
		t.Fatalf("expected code name in output, got %q", buf.String())
	}
}

func TestExplainCmd_ByNumber(t *testing.T) {
	var buf bytes.Buffer
	explainCmd.SetOut(&buf)
	if err := explainCmd.RunE(explainCmd, []string{"2002"}); err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(diag.TypeUnassignable.String())) {
		t.Fatalf("expected %s in output, got %q", diag.TypeUnassignable.String(), buf.String())
	}
}

func TestExplainCmd_Unknown(t *testing.T) {
	if _, ok := lookupCode("NOT_A_REAL_CODE"); ok {
		t.Fatal("expected lookupCode to fail for an unknown name")
	}
}
