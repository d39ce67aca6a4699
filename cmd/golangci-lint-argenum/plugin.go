// golangcilintargenum package provides a plugin for golangci-lint to
// integrate the argenum analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-argenum binary that you can use to lint
// your Go code with the argenum analyzer.
package golangcilintargenum

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/lu-zero/argenum/pkg/argenumanalysis"
)

func init() {
	register.Plugin("argenum", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return ArgenumLinter{}, nil
}

type ArgenumLinter struct{}

func (ArgenumLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{argenumanalysis.Analyzer}, nil
}

func (ArgenumLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
