package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/sema"
	"surge/internal/source"
	"surge/internal/symbols"
	"surge/internal/types"
)

// Loader supplies a package's already-parsed units against the Checker's
// own AST builder. The concrete implementation (reading `.sg` source,
// invoking the parser) lives outside this module; Loader is the seam a
// real driver plugs into.
type Loader interface {
	Load(b *ast.Builder, strings *source.Interner) ([]sema.Unit, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(b *ast.Builder, strings *source.Interner) ([]sema.Unit, error)

func (f LoaderFunc) Load(b *ast.Builder, strings *source.Interner) ([]sema.Unit, error) {
	return f(b, strings)
}

// Job is one package to check: its name and the Loader that builds its
// units.
type Job struct {
	Name   string
	Loader Loader
}

// Result is one package's outcome: its diagnostics and, once checked, its
// export surface.
type Result struct {
	Name string
	Pkg  *symbols.Package
	Bag  *diag.Bag
	B    *ast.Builder
	Err  error
}

// CheckAll runs one Checker per job concurrently, bounded by GOMAXPROCS
// (core spec §5: "a single Checker is single-threaded... running multiple
// packages in parallel means constructing one Checker per package").
// Results are returned in job order regardless of completion order.
func CheckAll(ctx context.Context, target types.Target, strings *source.Interner, jobs []Job) ([]Result, error) {
	if strings == nil {
		strings = source.NewInterner()
	}
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pkgName := strings.Intern(job.Name)
			pkg := symbols.NewPackage(pkgName, strings)
			bag := diag.NewBag(0)

			checker := sema.NewChecker(sema.Options{Target: target, Strings: strings}, pkg, diag.BagReporter{Bag: bag})

			units, err := job.Loader.Load(checker.B, strings)
			if err != nil {
				results[i] = Result{Name: job.Name, Err: fmt.Errorf("loading package %s: %w", job.Name, err)}
				return nil
			}

			checker.Check(units)
			results[i] = Result{Name: job.Name, Pkg: pkg, Bag: bag, B: checker.B}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Merge folds every result's diagnostics into one bag, sorted for stable
// output.
func Merge(results []Result) *diag.Bag {
	out := diag.NewBag(0)
	for _, r := range results {
		if r.Bag != nil {
			out.Merge(r.Bag)
		}
	}
	out.Sort()
	return out
}
