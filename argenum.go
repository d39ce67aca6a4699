// Package argenum provides the runtime support types for the argenum code
// generator.
//
// Argenum derives the textual surface of a Go enum: a parse function, a
// String method, text marshaling, and introspection tables listing every
// accepted spelling and every member's documentation. Declare an enum as a
// defined type with a constant block, mark it for derivation, and the
// generator produces the rest:
//
//	//argenum:derive
//	type Fruit int
//
//	const (
//		Apple Fruit = iota
//		// Yellow and long.
//		//argenum:variant(alias = "Plantain")
//		Banana
//		// Red and round.
//		//argenum:variant(name = "Kirsche")
//		Cherry
//	)
//
// After marking the types, run the argenum command. It will generate
// argenum_gen.go for your package:
//
//	go run github.com/lu-zero/argenum/cmd/argenum
//
// The generated file provides:
//
//	func ParseFruit(s string) (Fruit, error)
//	func (v Fruit) String() string
//	func (v Fruit) MarshalText() ([]byte, error)
//	func (v *Fruit) UnmarshalText(text []byte) error
//	func FruitVariants() []string
//	func FruitDescriptions() []argenum.Description
//
// Parsing compares the input against every accepted spelling with ASCII
// case folding, in declaration order: a member's canonical name first, then
// its aliases. Rendering always emits the canonical name, never an alias.
// The `name` key replaces a member's canonical name entirely; the original
// identifier is no longer accepted unless re-added as an alias.
//
// # Directives
//
// A type is marked with //argenum:derive, optionally carrying a payload:
//
//	//argenum:derive(trimprefix = "Kind")
//	type Kind int
//
// trimprefix strips the given prefix from each member's default canonical
// name. The special value "auto" detects the common word prefix of all
// member identifiers. A name never trims to the empty string.
//
// Members are configured with //argenum:variant, carrying a parenthesized,
// comma-separated payload with the keys alias and name, each requiring a
// quoted string value:
//
//	//argenum:variant(alias = "Bar", name = "Baz")
//
// Any other key, or a key without the assignment, fails generation with a
// diagnostic at the offending byte of the comment.
package argenum

// Description pairs one enum member's accepted spellings with its doc
// comment lines. The spelling list holds the canonical name at index 0
// followed by the member's aliases in declaration order. The doc list holds
// the member's doc comment lines with the comment markers stripped; it is
// empty but non-nil for undocumented members.
type Description struct {
	Spellings []string
	Doc       []string
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// Unlike strings.EqualFold it never folds non-ASCII letters, so two
// spellings differing in a non-ASCII rune stay distinct. Generated parse
// functions match input against accepted spellings with this function.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if foldASCII(a[i]) != foldASCII(b[i]) {
			return false
		}
	}
	return true
}

func foldASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
