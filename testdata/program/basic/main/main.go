package main

import "fmt"

//argenum:derive
type Foo int

const (
	Bar Foo = iota
	Baz
)

func main() {
	v, err := ParseFoo("bar")
	fmt.Println(v, err)

	v, err = ParseFoo("BAZ")
	fmt.Println(v, err)

	_, err = ParseFoo("Bang!")
	fmt.Println(err)

	fmt.Println(FooVariants())
	fmt.Println(Foo(42))
}
