// Package argenuminternal generates the text surface of enums: a
// case-insensitive parser, canonical rendering, text marshaling, and
// introspection over accepted spellings and documentation.
package argenuminternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"

	"golang.org/x/tools/go/packages"

	"github.com/lu-zero/argenum/internal/argenum/parse"
	"github.com/lu-zero/argenum/internal/codefmt"
)

// Argenum generates enum surface code for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Argenum struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	enums []*parse.Enum
}

// New creates a new [Argenum] for the given package. If the package does
// not satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Argenum, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, pkg)
	ns := codefmt.NewNS(pkg.Types.Scope())
	w.SetNS(ns)

	return &Argenum{
		p:   parser,
		ns:  ns,
		buf: &buf,
		w:   w,
	}, nil
}

// Build prepares code generation by parsing the enums of the package. All
// potential errors are returned by this method. It must be called before
// [Generate].
func (ag *Argenum) Build() error {
	enums, errs := ag.p.ParseEnums()
	errs = errors.Join(errs, ag.p.Validate())
	if errs != nil {
		return errs
	}
	if len(enums) == 0 {
		// No derived enums found
		return nil
	}

	for _, enum := range enums {
		errs = errors.Join(errs, ag.reserveNames(enum))
	}
	if errs != nil {
		return errs
	}

	ag.enums = enums
	return nil
}

// reserveNames claims every top-level name and method the generated code
// declares for the enum, failing on names the package already uses.
func (ag *Argenum) reserveNames(enum *parse.Enum) error {
	var errs error

	for _, name := range generatedNames(enum) {
		if !ag.ns.Reserve(name) {
			err := codefmt.Errorf(ag.p, enum, "generated name %s for %o conflicts with an existing declaration", name, enum)
			errs = errors.Join(errs, err)
		}
	}

	for i := range enum.Info.Named.NumMethods() {
		switch name := enum.Info.Named.Method(i).Name(); name {
		case "String", "MarshalText", "UnmarshalText":
			err := codefmt.Errorf(ag.p, enum, "cannot generate method %s for %o: the method is already declared", name, enum)
			errs = errors.Join(errs, err)
		}
	}

	return errs
}

// Generate generates enum surface code for the package. It must be called
// after [Build] succeeds.
func (ag *Argenum) Generate() []byte {
	for _, enum := range ag.enums {
		ag.writeEnumCode(enum)
	}
	if ag.buf.Len() == 0 {
		return nil
	}
	return ag.frameCode()
}

// frameCode wraps the generated declarations with the file header and the
// collected import block, then applies gofmt.
func (ag *Argenum) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/lu-zero/argenum%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", ag.p.Pkg().Name)

	if len(ag.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range ag.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, ag.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
