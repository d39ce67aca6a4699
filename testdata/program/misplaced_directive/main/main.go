package main

//argenum:derive
type Foo int

const Bar Foo = 0

//argenum:variant(alias = "X")
func main() {}
