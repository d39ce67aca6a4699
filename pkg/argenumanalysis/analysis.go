// Package argenumanalysis exposes argenum's generation-time checks as a
// standard analyzer so that editors and linters can report them inline.
package argenumanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	argenuminternal "github.com/lu-zero/argenum/internal/argenum"
	"github.com/lu-zero/argenum/internal/codefmt"
)

// Analyzer validates the usage of argenum in the package.
var Analyzer = &analysis.Analyzer{
	Name: "argenum",
	Doc:  "linter for argenum usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	ag, err := argenuminternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := ag.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
