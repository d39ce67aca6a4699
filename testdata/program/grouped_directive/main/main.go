package main

//argenum:derive
type Foo int

const (
	//argenum:variant(alias = "Both")
	A, B Foo = 0, 1
)

func main() {}
