package main

//argenum:derive
type Foo int

const Bar Foo = 0

func ParseFoo(s string) {}

func main() {}
