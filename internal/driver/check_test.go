package driver

import (
	"context"
	"testing"

	"surge/internal/ast"
	"surge/internal/sema"
	"surge/internal/source"
	"surge/internal/types"
)

// constLoader builds one unit declaring `fun main() void { }`, enough to
// exercise a full Check() pass without needing a real parser.
type constLoader struct{}

func (constLoader) Load(b *ast.Builder, strings *source.Interner) ([]sema.Unit, error) {
	loc := source.MakeLoc(1, 1, 1, 1)
	mainSym := strings.Intern("main")
	body := b.NewBlock(loc, nil)
	fn := b.NewFun(loc, mainSym, ast.NilNode, nil, ast.NilNode, body)

	unit := b.New(ast.KindUnit, loc)
	b.Get(unit).Children = []ast.NodeID{fn}

	return []sema.Unit{{Node: unit}}, nil
}

func TestCheckAll_RunsEachJobConcurrently(t *testing.T) {
	strings := source.NewInterner()
	jobs := []Job{
		{Name: "pkg_a", Loader: constLoader{}},
		{Name: "pkg_b", Loader: constLoader{}},
	}

	results, err := CheckAll(context.Background(), types.Target{IntWidth: 64, UintWidth: 64}, strings, jobs)
	if err != nil {
		t.Fatalf("CheckAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("job %s failed: %v", r.Name, r.Err)
		}
		if r.Bag == nil {
			t.Fatalf("job %s has no bag", r.Name)
		}
	}

	merged := Merge(results)
	if merged.HasErrors() {
		t.Fatalf("expected no errors, got %d: %v", merged.ErrCount(), merged.Items())
	}
}
