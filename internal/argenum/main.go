package argenuminternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

var Version string

// Main is the main entry point for argenum. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx
// can cancel the operation. wd is the path of the working directory. env is
// the environment variables to use when running the tool. tags is the build
// tags to use when loading packages. tests indicates whether to include test
// files. outFile is the name of the output file to generate in each package.
// And patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error
// occurs, it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		code, err := generate(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if len(code) == 0 {
			continue
		}

		outs[outPath(wd, pkg, outFile)] = code
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't
		// need to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// generate runs the Build and Generate phases for one package. It returns
// nil code when the package derives nothing.
func generate(pkg *packages.Package) ([]byte, error) {
	if len(pkg.Errors) != 0 {
		return nil, fmt.Errorf("pkg %q has errors", pkg.Name)
	}

	ag, err := New(pkg)
	if err != nil {
		return nil, err
	}
	if err := ag.Build(); err != nil {
		return nil, err
	}
	return ag.Generate(), nil
}

// outPath places the output file next to the package's sources, relative to
// the working directory when possible.
func outPath(wd string, pkg *packages.Package, outFile string) string {
	dir := filepath.Dir(pkg.GoFiles[0])
	if rel, err := filepath.Rel(wd, dir); err == nil {
		dir = rel
	}
	return filepath.Join(dir, outFile)
}

// load loads packages. Everything argenum inspects lives in the target
// package itself, so dependencies are left to export data instead of being
// loaded in full.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context: ctx,
		Dir:     wd,
		Env:     env,
		Tests:   tests,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Surface loading errors with paths relative to the working directory.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// reorderErrors sorts collected diagnostics by message so that the output
// is stable regardless of package walk order.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := flattenErrors(errs, nil)
	slices.SortFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}

// flattenErrors expands errors joined by [errors.Join] into a flat list.
func flattenErrors(err error, into []error) []error {
	if err == nil {
		return into
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range u.Unwrap() {
			into = flattenErrors(e, into)
		}
		return into
	}
	return append(into, err)
}
