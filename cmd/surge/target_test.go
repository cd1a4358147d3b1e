package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestTargetValidateCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.toml")
	content := "[target]\nname = \"x86_64-linux\"\nint_bits = 64\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	var buf bytes.Buffer
	targetValidateCmd.SetOut(&buf)
	if err := targetValidateCmd.RunE(targetValidateCmd, []string{path}); err != nil {
		t.Fatalf("target validate: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("x86_64-linux")) {
		t.Fatalf("expected target name in output, got %q", buf.String())
	}
}
