package main

//argenum:derive
type Foo struct{}

func main() {}
