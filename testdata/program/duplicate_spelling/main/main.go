package main

//argenum:derive
type Foo int

const (
	Apple Foo = iota

	//argenum:variant(name = "APPLE")
	Pear
)

func main() {}
