// Package typeinfo wraps [types.Type] with the queries argenum needs to
// decide whether a type is derivable as an enum.
package typeinfo

import (
	"go/token"
	"go/types"
)

// Type describes a type from argenum's perspective. An enum is a named type
// whose underlying type is a basic integer or string.
type Type struct {
	T types.Type

	Basic *types.Basic
	Named *types.Named
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool { return t.Basic != nil }
func (t Type) IsNamed() bool { return t.Named != nil }

// IsEnum reports whether the type can be derived: a named type with a basic
// integer or string underlying type.
func (t Type) IsEnum() bool {
	return t.IsNamed() && t.IsBasic() && (t.IsInteger() || t.IsString())
}

// IsInteger reports whether the underlying basic type is an integer kind,
// signed or unsigned.
func (t Type) IsInteger() bool {
	return t.IsBasic() && t.Basic.Info()&types.IsInteger != 0
}

// IsUnsigned reports whether the underlying basic type is unsigned.
func (t Type) IsUnsigned() bool {
	return t.IsBasic() && t.Basic.Info()&types.IsUnsigned != 0
}

// IsString reports whether the underlying basic type is a string.
func (t Type) IsString() bool {
	return t.IsBasic() && t.Basic.Info()&types.IsString != 0
}

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	info := Type{T: t}

	if named, ok := types.Unalias(t).(*types.Named); ok {
		info.Named = named
	}
	if basic, ok := t.Underlying().(*types.Basic); ok {
		info.Basic = basic
	}
	return info
}

// Name returns the name of the named type. It returns "" if the type is not
// named.
func (t Type) Name() string {
	if !t.IsNamed() {
		return ""
	}
	return t.Named.Obj().Name()
}

// Pkg returns the package where the type is defined. It returns nil if the
// type is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns the position where the type is defined. It returns
// token.NoPos if the type is not a named type.
func (t Type) Pos() token.Pos {
	if !t.IsNamed() {
		return token.NoPos
	}
	return t.Named.Obj().Pos()
}
