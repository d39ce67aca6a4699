package typeinfo_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lu-zero/argenum/internal/typeinfo"
)

func parse(t *testing.T, code string) *types.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	require.NoError(t, err)

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	require.NoError(t, err)
	return pkg
}

func typeOf(t *testing.T, decl string) typeinfo.Type {
	t.Helper()

	pkg := parse(t, fmt.Sprintf("package p; %s", decl))
	obj := pkg.Scope().Lookup("T")
	require.NotNil(t, obj)
	return typeinfo.TypeOf(obj.Type())
}

func TestIntEnum(t *testing.T) {
	typ := typeOf(t, "type T int")
	assert.True(t, typ.IsNamed())
	assert.True(t, typ.IsBasic())
	assert.True(t, typ.IsInteger())
	assert.False(t, typ.IsUnsigned())
	assert.False(t, typ.IsString())
	assert.True(t, typ.IsEnum())
	assert.Equal(t, "T", typ.Name())
}

func TestUintEnum(t *testing.T) {
	typ := typeOf(t, "type T uint8")
	assert.True(t, typ.IsInteger())
	assert.True(t, typ.IsUnsigned())
	assert.True(t, typ.IsEnum())
}

func TestStringEnum(t *testing.T) {
	typ := typeOf(t, "type T string")
	assert.True(t, typ.IsString())
	assert.False(t, typ.IsInteger())
	assert.True(t, typ.IsEnum())
}

func TestStructIsNotEnum(t *testing.T) {
	typ := typeOf(t, "type T struct{ N int }")
	assert.True(t, typ.IsNamed())
	assert.False(t, typ.IsBasic())
	assert.False(t, typ.IsEnum())
}

func TestSliceIsNotEnum(t *testing.T) {
	typ := typeOf(t, "type T []int")
	assert.False(t, typ.IsEnum())
}

func TestFloatIsNotEnum(t *testing.T) {
	typ := typeOf(t, "type T float64")
	assert.True(t, typ.IsBasic())
	assert.False(t, typ.IsEnum())
}

func TestUnnamedIsNotEnum(t *testing.T) {
	typ := typeinfo.TypeOf(types.Typ[types.Int])
	assert.False(t, typ.IsNamed())
	assert.False(t, typ.IsEnum())
	assert.Equal(t, "", typ.Name())
	assert.Nil(t, typ.Pkg())
	assert.False(t, typ.Pos().IsValid())
}

func TestIdentical(t *testing.T) {
	typ := typeOf(t, "type T int")
	assert.True(t, typ.Identical(typ))
	assert.False(t, typ.Identical(typeinfo.TypeOf(types.Typ[types.Int])))
}
