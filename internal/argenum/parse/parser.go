// Package parse collects the enums marked for derivation in one package: it
// scans for argenum directive comments, discovers enum members with their
// documentation, and builds each enum's spelling table.
package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/lu-zero/argenum/internal/argenum/nametable"
	"github.com/lu-zero/argenum/internal/codefmt"
	"github.com/lu-zero/argenum/internal/lcs"
	"github.com/lu-zero/argenum/internal/typeinfo"
)

// Parser parses an AST of the underlying package to collect argenum enums.
type Parser struct {
	pkg      *packages.Package
	consumed map[token.Pos]struct{}
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg, consumed: make(map[token.Pos]struct{})}, nil
}

// Enum is one type marked with //argenum:derive, with its members in
// declaration order and its fully built spelling table.
type Enum struct {
	Obj        *types.TypeName
	Info       typeinfo.Type
	TrimPrefix string
	Members    []*Member
	Table      *nametable.Table[*Member]

	spec *ast.TypeSpec
}

func (e *Enum) Name() string { return e.Obj.Name() }

func (e *Enum) Object() types.Object { return e.Obj }

func (e *Enum) Type() types.Type { return e.Info.T }

func (e *Enum) Pos() token.Pos { return e.spec.Pos() }

func (e *Enum) End() token.Pos { return e.spec.End() }

// Exported reports whether the enum type is exported. The generated
// functions follow the type's visibility.
func (e *Enum) Exported() bool { return e.Obj.Exported() }

// Member is one package-level constant of a derived enum type.
type Member struct {
	Const *types.Const
	Ident *ast.Ident

	// Doc holds the member's doc comment lines with the comment markers
	// stripped; directives are excluded. Empty but non-nil when the member
	// has no documentation.
	Doc []string

	modifiers []Modifier
}

func (m *Member) Name() string { return m.Const.Name() }

func (m *Member) Object() types.Object { return m.Const }

func (m *Member) Pos() token.Pos { return m.Ident.Pos() }

func (m *Member) End() token.Pos { return m.Ident.End() }

// ParseEnums scans the package for derived enum types and builds their
// spelling tables. It collects all errors instead of stopping at the first
// one; enums that parsed cleanly are returned even when others failed.
func (p *Parser) ParseEnums() ([]*Enum, error) {
	var enums []*Enum
	var errs error

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				enum, err := p.parseEnumDecl(ts, doc)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				if enum == nil {
					continue
				}
				enums = append(enums, enum)
			}
		}
	}

	for _, enum := range enums {
		if err := p.parseMembers(enum); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if err := p.buildTable(enum); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return enums, errs
}

// parseEnumDecl checks one type declaration for a derive directive. It
// returns nil if the type is not marked.
func (p *Parser) parseEnumDecl(ts *ast.TypeSpec, doc *ast.CommentGroup) (*Enum, error) {
	dir, err := p.takeDirective(doc)
	if err != nil {
		return nil, err
	}
	if dir == nil {
		return nil, nil
	}

	if dir.Word != WordDerive {
		return nil, codefmt.Errorf(p, dir, "argenum:%s directive cannot be attached to a type declaration", dir.Word)
	}

	obj, ok := p.pkg.TypesInfo.ObjectOf(ts.Name).(*types.TypeName)
	if !ok || obj.IsAlias() {
		return nil, codefmt.Errorf(p, ts, "cannot derive %s: not a defined type", ts.Name.Name)
	}

	info := typeinfo.TypeOf(obj.Type())
	if !info.IsEnum() {
		return nil, codefmt.Errorf(p, ts, "cannot derive %s: enum must be defined as an integer or string type, not %t", obj.Name(), info.T.Underlying())
	}

	enum := &Enum{Obj: obj, Info: info, spec: ts}

	for _, mod := range dir.Modifiers {
		switch mod.Key {
		case KeyTrimPrefix:
			enum.TrimPrefix = mod.Value
		default:
			return nil, codefmt.Errorf(p, mod, "unexpected key %q in argenum:derive directive", mod.Key)
		}
	}

	return enum, nil
}

// parseMembers discovers the package-level constants of the enum type in
// declaration order, together with their documentation and directives.
func (p *Parser) parseMembers(enum *Enum) error {
	var errs error

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			for _, spec := range gen.Specs {
				vs := spec.(*ast.ValueSpec)

				var members []*Member
				for _, id := range vs.Names {
					if id.Name == "_" {
						continue
					}

					con, ok := p.pkg.TypesInfo.ObjectOf(id).(*types.Const)
					if !ok || !types.Identical(con.Type(), enum.Info.T) {
						continue
					}

					members = append(members, &Member{Const: con, Ident: id})
				}
				if len(members) == 0 {
					continue
				}

				doc, mods, err := p.parseMemberComments(vs)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}

				if len(mods) != 0 && len(vs.Names) > 1 {
					err := codefmt.Errorf(p, vs, "cannot apply an argenum directive to a grouped constant declaration")
					errs = errors.Join(errs, err)
					continue
				}

				for _, m := range members {
					m.Doc = doc
					m.modifiers = mods
				}
				enum.Members = append(enum.Members, members...)
			}
		}
	}
	if errs != nil {
		return errs
	}

	if len(enum.Members) == 0 {
		return codefmt.Errorf(p, enum, "enum %s has no members", enum.Name())
	}

	return p.validateValues(enum)
}

// parseMemberComments extracts the doc lines and directive modifiers of one
// constant spec. Directives are accepted in the doc comment and in the
// trailing line comment; doc lines come from the doc comment only.
func (p *Parser) parseMemberComments(vs *ast.ValueSpec) ([]string, []Modifier, error) {
	doc := []string{}
	var mods []Modifier
	var errs error

	parseGroup := func(group *ast.CommentGroup, collectDoc bool) {
		if group == nil {
			return
		}

		for _, c := range group.List {
			if IsDirective(c) {
				dir, err := p.takeComment(c)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}

				if dir.Word != WordVariant {
					err := codefmt.Errorf(p, dir, "argenum:%s directive cannot be attached to an enum member", dir.Word)
					errs = errors.Join(errs, err)
					continue
				}

				for _, mod := range dir.Modifiers {
					switch mod.Key {
					case KeyAlias, KeyName:
						mods = append(mods, mod)
					default:
						err := codefmt.Errorf(p, mod, "unexpected key %q in argenum:variant directive", mod.Key)
						errs = errors.Join(errs, err)
					}
				}
				continue
			}

			if !collectDoc {
				continue
			}
			if line, ok := docLine(c); ok {
				doc = append(doc, line)
			}
		}
	}

	parseGroup(vs.Doc, true)
	parseGroup(vs.Comment, false)

	return doc, mods, errs
}

// docLine strips the comment marker from a doc comment line. Directives
// other than argenum's, such as //go:generate, are not documentation.
func docLine(c *ast.Comment) (string, bool) {
	text, ok := strings.CutPrefix(c.Text, "//")
	if !ok {
		// Block comments are not part of a member's documentation.
		return "", false
	}
	if isToolDirective(text) {
		return "", false
	}
	return strings.TrimPrefix(text, " "), true
}

// isToolDirective reports whether a //-comment body is a tool directive in
// the sense of go/ast: "//tool:directive" with no leading space.
func isToolDirective(c string) bool {
	if strings.HasPrefix(c, "line ") || strings.HasPrefix(c, "extern ") || strings.HasPrefix(c, "export ") {
		return true
	}

	colon := strings.Index(c, ":")
	if colon <= 0 || colon+1 >= len(c) {
		return false
	}
	for i := 0; i <= colon+1; i++ {
		if i == colon {
			continue
		}
		b := c[i]
		if !('a' <= b && b <= 'z' || '0' <= b && b <= '9') {
			return false
		}
	}
	return true
}

// buildTable resolves the trim prefix and applies the members' modifiers in
// declaration order to build the enum's spelling table.
func (p *Parser) buildTable(enum *Enum) error {
	prefix := enum.TrimPrefix
	if prefix == "auto" {
		var names []string
		for _, m := range enum.Members {
			names = append(names, m.Name())
		}
		prefix = lcs.CommonWordPrefix(names)
	}

	tb := nametable.New[*Member]()
	var errs error

	for _, m := range enum.Members {
		canonical := strings.TrimPrefix(m.Name(), prefix)
		if canonical == "" {
			// Never trim a member name to nothing.
			canonical = m.Name()
		}

		if owner, collided := tb.Add(m, canonical); collided {
			errs = errors.Join(errs, p.collisionError(m, owner, canonical))
			continue
		}

		// The name modifiers settle the canonical slot before any alias is
		// claimed. An alias may then re-add a spelling that a name modifier
		// dropped, in either modifier order.
		for _, mod := range m.modifiers {
			if mod.Key != KeyName {
				continue
			}
			if owner, collided := tb.Rename(m, mod.Value); collided {
				errs = errors.Join(errs, p.collisionError(m, owner, mod.Value))
			}
		}

		for _, mod := range m.modifiers {
			if mod.Key != KeyAlias {
				continue
			}
			if owner, collided := tb.AddAlias(m, mod.Value); collided {
				errs = errors.Join(errs, p.collisionError(m, owner, mod.Value))
			}
		}
	}
	if errs != nil {
		return errs
	}

	enum.Table = tb
	return nil
}

func (p *Parser) collisionError(m, owner *Member, spelling string) error {
	if owner == m {
		return codefmt.Errorf(p, m, "duplicate spelling %q for %o (matching is case-insensitive)", spelling, m)
	}
	return codefmt.Errorf(p, m, "duplicate spelling %q for %o and %o (matching is case-insensitive)", spelling, owner, m)
}

// validateValues rejects members sharing a constant value. The generated
// switch over members must have distinct cases.
func (p *Parser) validateValues(enum *Enum) error {
	var errs error
	for i, m := range enum.Members {
		for _, prev := range enum.Members[:i] {
			if constant.Compare(prev.Const.Val(), token.EQL, m.Const.Val()) {
				err := codefmt.Errorf(p, m, "%o and %o have the same value %s; enum members must be distinct", prev, m, m.Const.Val())
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

// takeDirective finds the argenum directive in a doc comment group and
// marks it consumed. It returns nil if the group carries none.
func (p *Parser) takeDirective(doc *ast.CommentGroup) (*Directive, error) {
	if doc == nil {
		return nil, nil
	}
	for _, c := range doc.List {
		if IsDirective(c) {
			return p.takeComment(c)
		}
	}
	return nil, nil
}

// takeComment parses one directive comment and marks it consumed, keeping
// it out of [Validate]'s orphan report even when malformed.
func (p *Parser) takeComment(c *ast.Comment) (*Directive, error) {
	p.consumed[c.Pos()] = struct{}{}
	return p.ParseDirective(c)
}
