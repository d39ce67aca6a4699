package main

//argenum:derive
type Foo int

const Bar Foo = 0

func (Foo) String() string { return "x" }

func main() {}
