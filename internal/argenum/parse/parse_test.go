package parse_test

import (
	"go/ast"
	"go/importer"
	goparser "go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/lu-zero/argenum/internal/argenum/parse"
)

func load(t *testing.T, src string) *parse.Parser {
	t.Helper()

	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, "enum.go", src, goparser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
		Types: make(map[ast.Expr]types.TypeAndValue),
	}
	conf := types.Config{Importer: importer.Default()}
	tpkg, err := conf.Check("example.com/enum", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	p, err := parse.New(&packages.Package{
		Name:      tpkg.Name(),
		PkgPath:   tpkg.Path(),
		Fset:      fset,
		Syntax:    []*ast.File{file},
		Types:     tpkg,
		TypesInfo: info,
	})
	require.NoError(t, err)
	return p
}

func TestParseBasic(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const (
	// Bar is the usual choice.
	Bar Foo = iota

	Baz
)
`)

	enums, err := p.ParseEnums()
	require.NoError(t, err)
	require.Len(t, enums, 1)

	enum := enums[0]
	assert.Equal(t, "Foo", enum.Name())
	require.Len(t, enum.Members, 2)

	assert.Equal(t, []string{"Bar is the usual choice."}, enum.Members[0].Doc)
	assert.Equal(t, []string{}, enum.Members[1].Doc)

	assert.Equal(t, []string{"Bar", "Baz"}, enum.Table.All())
	assert.NoError(t, p.Validate())
}

func TestParseSkipsUnmarkedTypes(t *testing.T) {
	p := load(t, `package enum

type Foo int

const Bar Foo = 0
`)

	enums, err := p.ParseEnums()
	require.NoError(t, err)
	assert.Empty(t, enums)
}

func TestParseAlias(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const (
	A Foo = iota
	B

	//argenum:variant(alias = "Cat")
	C
)
`)

	enums, err := p.ParseEnums()
	require.NoError(t, err)

	enum := enums[0]
	assert.Equal(t, []string{"A", "B", "C", "Cat"}, enum.Table.All())
	assert.Equal(t, "C", enum.Table.Canonical(enum.Members[2]))

	owner, ok := enum.Table.Lookup("cat")
	require.True(t, ok)
	assert.Same(t, enum.Members[2], owner)
}

func TestParseNameReplacesSpelling(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const (
	//argenum:variant(name = "Bar")
	A Foo = iota
)
`)

	enums, err := p.ParseEnums()
	require.NoError(t, err)

	enum := enums[0]
	assert.Equal(t, []string{"Bar"}, enum.Table.All())

	_, ok := enum.Table.Lookup("A")
	assert.False(t, ok, "the replaced spelling must not parse")
}

func TestParseAliasRestoresReplacedSpelling(t *testing.T) {
	sources := map[string]string{
		"alias first": `package enum

//argenum:derive
type Fruit int

const (
	//argenum:variant(alias = "Apple", name = "Pomme")
	Apple Fruit = iota
)
`,
		"name first": `package enum

//argenum:derive
type Fruit int

const (
	//argenum:variant(name = "Pomme", alias = "Apple")
	Apple Fruit = iota
)
`,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			p := load(t, src)

			enums, err := p.ParseEnums()
			require.NoError(t, err)

			enum := enums[0]
			assert.Equal(t, []string{"Pomme", "Apple"}, enum.Table.All())
			assert.Equal(t, "Pomme", enum.Table.Canonical(enum.Members[0]))

			owner, ok := enum.Table.Lookup("apple")
			require.True(t, ok)
			assert.Same(t, enum.Members[0], owner)
		})
	}
}

func TestParseTrailingDirective(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const (
	A Foo = iota //argenum:variant(alias = "Apple")
)
`)

	enums, err := p.ParseEnums()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Apple"}, enums[0].Table.All())
	assert.NoError(t, p.Validate())
}

func TestParseTrimPrefix(t *testing.T) {
	p := load(t, `package enum

//argenum:derive(trimprefix = "Kind")
type Kind int

const (
	KindFile Kind = iota
	KindDir
)
`)

	enums, err := p.ParseEnums()
	require.NoError(t, err)
	assert.Equal(t, []string{"File", "Dir"}, enums[0].Table.All())
}

func TestParseTrimPrefixAuto(t *testing.T) {
	p := load(t, `package enum

//argenum:derive(trimprefix = "auto")
type Kind int

const (
	KindFile Kind = iota
	KindFloat
)
`)

	enums, err := p.ParseEnums()
	require.NoError(t, err)
	assert.Equal(t, []string{"File", "Float"}, enums[0].Table.All())
}

func TestParseNotAnEnum(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo struct{ n int }
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, "enum must be defined as an integer or string type")
}

func TestParseNoMembers(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, "has no members")
}

func TestParseUnknownKey(t *testing.T) {
	p := load(t, `package enum

//argenum:derive(rename = "Bar")
type Foo int

const Bar Foo = 0
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, `unexpected key "rename"`)
}

func TestParseMalformedDirective(t *testing.T) {
	p := load(t, `package enum

//argenum:derive(trimprefix = Kind)
type Foo int

const Bar Foo = 0
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, `key "trimprefix" requires a quoted string value`)
}

func TestParseUnknownWord(t *testing.T) {
	p := load(t, `package enum

//argenum:generate
type Foo int

const Bar Foo = 0
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, `unknown argenum directive "generate"`)
}

func TestParseGroupedDirective(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const (
	//argenum:variant(alias = "Both")
	A, B Foo = 0, 1
)
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, "grouped constant declaration")
}

func TestParseDuplicateValue(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const (
	A Foo = 1
	B Foo = 1
)
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, "have the same value 1")
}

func TestParseDuplicateSpelling(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const (
	Apple Foo = iota

	//argenum:variant(name = "APPLE")
	Pear
)
`)

	_, err := p.ParseEnums()
	assert.ErrorContains(t, err, `duplicate spelling "APPLE"`)
	assert.ErrorContains(t, err, "case-insensitive")
}

func TestValidateMisplacedDirective(t *testing.T) {
	p := load(t, `package enum

//argenum:derive
type Foo int

const Bar Foo = 0

//argenum:variant(alias = "X")
var n int
`)

	_, err := p.ParseEnums()
	require.NoError(t, err)

	err = p.Validate()
	assert.ErrorContains(t, err, "misplaced argenum directive")
}
