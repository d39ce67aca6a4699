package main

import "fmt"

//argenum:derive
type Letter int

const (
	A Letter = iota
	B

	//argenum:variant(alias = "Cat")
	C
)

func main() {
	fmt.Println(LetterVariants())

	v, err := ParseLetter("cat")
	fmt.Println(v, err)

	fmt.Println(C)
}
