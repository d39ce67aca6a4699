package argenuminternal

import (
	"github.com/lu-zero/argenum/internal/argenum/parse"
)

const (
	argenumPath = "github.com/lu-zero/argenum"
	errorsPath  = "github.com/lu-zero/argenum/pkg/argenumerrors"
)

// writeEnumCode writes every declaration generated for one enum: the
// backing tables, the parser, the renderer, the introspection accessors,
// and text marshaling.
func (ag *Argenum) writeEnumCode(enum *parse.Enum) {
	ag.w.Printf("// argenum: %o\n\n", enum)

	ag.writeTables(enum)
	ag.writeParse(enum)
	ag.writeString(enum)
	ag.writeVariants(enum)
	ag.writeDescriptions(enum)
	ag.writeTextMarshaling(enum)
}

// writeTables writes the fixed-size backing arrays: every accepted spelling
// in declaration order, the member owning each spelling, and one
// description per member.
func (ag *Argenum) writeTables(enum *parse.Enum) {
	all := enum.Table.All()
	owners := enum.Table.Owners()

	ag.w.Printf("var %s = [%d]string{", spellingsName(enum), len(all))
	for _, spelling := range all {
		ag.w.Printf("%q, ", spelling)
	}
	ag.w.Printf("}\n\n")

	ag.w.Printf("var %s = [%d]%o{", valuesName(enum), len(owners), enum)
	for _, m := range owners {
		ag.w.Printf("%o, ", m)
	}
	ag.w.Printf("}\n\n")

	argenumPkg := ag.w.Import(argenumPath, "argenum")

	ag.w.Printf("var %s = [%d]%s.Description{\n", descTableName(enum), enum.Table.Len(), argenumPkg)
	for _, m := range enum.Members {
		ag.w.Printf("{Spellings: []string{")
		for _, spelling := range enum.Table.Spellings(m) {
			ag.w.Printf("%q, ", spelling)
		}
		ag.w.Printf("}, Doc: []string{")
		for _, line := range m.Doc {
			ag.w.Printf("%q, ", line)
		}
		ag.w.Printf("}},\n")
	}
	ag.w.Printf("}\n\n")
}

// writeParse writes the parsing function. It scans the spelling table in
// declaration order so that the first match wins.
func (ag *Argenum) writeParse(enum *parse.Enum) {
	argenumPkg := ag.w.Import(argenumPath, "argenum")
	errorsPkg := ag.w.Import(errorsPath, "argenumerrors")
	name := parseFuncName(enum)

	ag.w.Printf("// %s parses s into a %o. Matching is ASCII case-insensitive\n", name, enum)
	ag.w.Printf("// over every accepted spelling in declaration order.\n")
	ag.w.Printf("func %s(s string) (%o, error) {\n", name, enum)
	ag.w.Printf("for i, spelling := range %s {\n", spellingsName(enum))
	ag.w.Printf("if %s.EqualFold(s, spelling) {\n", argenumPkg)
	ag.w.Printf("return %s[i], nil\n", valuesName(enum))
	ag.w.Printf("}\n")
	ag.w.Printf("}\n\n")
	ag.w.Printf("var zero %o\n", enum)
	ag.w.Printf("return zero, %s.NewParseError(%q, s, %s())\n", errorsPkg, enum.Name(), variantsFuncName(enum))
	ag.w.Printf("}\n\n")
}

// writeString writes the String method rendering the canonical spelling.
// Values outside the enum render in the stringer convention, Name(value).
func (ag *Argenum) writeString(enum *parse.Enum) {
	strconvPkg := ag.w.Import("strconv", "strconv")

	ag.w.Printf("// String returns the canonical spelling of v.\n")
	ag.w.Printf("func (v %o) String() string {\n", enum)
	ag.w.Printf("switch v {\n")
	for _, m := range enum.Members {
		ag.w.Printf("case %o:\n", m)
		ag.w.Printf("return %q\n", enum.Table.Canonical(m))
	}
	ag.w.Printf("}\n\n")

	switch {
	case enum.Info.IsString():
		ag.w.Printf("return %q + %s.Quote(string(v)) + \")\"\n", enum.Name()+"(", strconvPkg)
	case enum.Info.IsUnsigned():
		ag.w.Printf("return %q + %s.FormatUint(uint64(v), 10) + \")\"\n", enum.Name()+"(", strconvPkg)
	default:
		ag.w.Printf("return %q + %s.FormatInt(int64(v), 10) + \")\"\n", enum.Name()+"(", strconvPkg)
	}
	ag.w.Printf("}\n\n")
}

// writeVariants writes the accessor for the flattened spelling list. It
// returns a slice of a copy so that callers cannot corrupt the parse table.
func (ag *Argenum) writeVariants(enum *parse.Enum) {
	name := variantsFuncName(enum)

	ag.w.Printf("// %s returns every accepted spelling of %o in declaration\n", name, enum)
	ag.w.Printf("// order, aliases included.\n")
	ag.w.Printf("func %s() []string {\n", name)
	ag.w.Printf("spellings := %s\n", spellingsName(enum))
	ag.w.Printf("return spellings[:]\n")
	ag.w.Printf("}\n\n")
}

func (ag *Argenum) writeDescriptions(enum *parse.Enum) {
	argenumPkg := ag.w.Import(argenumPath, "argenum")
	name := enum.Name() + "Descriptions"

	ag.w.Printf("// %s returns one entry per member of %o pairing its\n", name, enum)
	ag.w.Printf("// accepted spellings with its documentation.\n")
	ag.w.Printf("func %s() []%s.Description {\n", name, argenumPkg)
	ag.w.Printf("descs := %s\n", descTableName(enum))
	ag.w.Printf("return descs[:]\n")
	ag.w.Printf("}\n\n")
}

func (ag *Argenum) writeTextMarshaling(enum *parse.Enum) {
	ag.w.Printf("// MarshalText implements [encoding.TextMarshaler] using the canonical\n")
	ag.w.Printf("// spelling.\n")
	ag.w.Printf("func (v %o) MarshalText() ([]byte, error) {\n", enum)
	ag.w.Printf("return []byte(v.String()), nil\n")
	ag.w.Printf("}\n\n")

	ag.w.Printf("// UnmarshalText implements [encoding.TextUnmarshaler] using [%s].\n", parseFuncName(enum))
	ag.w.Printf("func (v *%o) UnmarshalText(text []byte) error {\n", enum)
	ag.w.Printf("parsed, err := %s(string(text))\n", parseFuncName(enum))
	ag.w.Printf("if err != nil {\n")
	ag.w.Printf("return err\n")
	ag.w.Printf("}\n\n")
	ag.w.Printf("*v = parsed\n")
	ag.w.Printf("return nil\n")
	ag.w.Printf("}\n\n")
}

// generatedNames lists every top-level name the generated code declares for
// the enum.
func generatedNames(enum *parse.Enum) []string {
	return []string{
		spellingsName(enum),
		valuesName(enum),
		descTableName(enum),
		parseFuncName(enum),
		variantsFuncName(enum),
		enum.Name() + "Descriptions",
	}
}

func spellingsName(enum *parse.Enum) string { return "_" + enum.Name() + "Spellings" }

func valuesName(enum *parse.Enum) string { return "_" + enum.Name() + "Values" }

func descTableName(enum *parse.Enum) string { return "_" + enum.Name() + "Descriptions" }

func variantsFuncName(enum *parse.Enum) string { return enum.Name() + "Variants" }

// parseFuncName follows the enum's visibility: ParseFruit for an exported
// enum, parseFruit for an unexported one.
func parseFuncName(enum *parse.Enum) string {
	if enum.Exported() {
		return "Parse" + enum.Name()
	}
	return "parse" + titled(enum.Name())
}

func titled(name string) string {
	if name[0] >= 'a' && name[0] <= 'z' {
		return string(name[0]-'a'+'A') + name[1:]
	}
	return name
}
