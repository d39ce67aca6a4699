package main

import "fmt"

//argenum:derive
type Fruit int

const (
	Apple Fruit = iota

	// Yellow and long.
	//argenum:variant(alias = "Plantain")
	Banana

	// Red and round.
	// Sweet or sour.
	Cherry
)

func main() {
	for _, desc := range FruitDescriptions() {
		fmt.Println(desc.Spellings, desc.Doc, desc.Doc == nil)
	}
}
