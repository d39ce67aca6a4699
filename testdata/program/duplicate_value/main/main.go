package main

//argenum:derive
type Foo int

const (
	A Foo = 1
	B Foo = 1
)

func main() {}
