package main

import "fmt"

//argenum:derive
type Fruit int

const (
	Apple Fruit = iota

	// Red and round.
	//argenum:variant(name = "Kirsche")
	Cherry
)

func main() {
	fmt.Println(FruitVariants())
	fmt.Println(Cherry)

	_, err := ParseFruit("Cherry")
	fmt.Println(err)

	v, err := ParseFruit("kirsche")
	fmt.Println(v, err)
}
