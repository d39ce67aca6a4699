package main

//argenum:derive
type Foo int

const (
	//argenum:variant(color = "red")
	Bar Foo = iota
)

func main() {}
