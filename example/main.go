// This example orders a fruit from the command line. The Fruit enum below
// is the only hand-written part; run go generate to produce the parsing,
// rendering, and introspection code in argenum_gen.go.
package main

import (
	"flag"
	"fmt"
	"strings"
)

//go:generate go run github.com/lu-zero/argenum/cmd/argenum ./...

//argenum:derive
type Fruit int

const (
	Apple Fruit = iota

	// Yellow and long.
	//argenum:variant(alias = "Plantain")
	Banana

	// Red and round.
	//argenum:variant(name = "Kirsche")
	Cherry
)

func main() {
	fruit := Apple
	usage := "fruit to order (" + strings.Join(FruitVariants(), ", ") + ")"
	flag.TextVar(&fruit, "fruit", Apple, usage)
	flag.Parse()

	fmt.Println("ordered:", fruit)

	for _, desc := range FruitDescriptions() {
		fmt.Printf("%s: %s\n", strings.Join(desc.Spellings, "/"), strings.Join(desc.Doc, " "))
	}
}
