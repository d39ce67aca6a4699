package main

//argenum:derive
type Foo int

func main() {}
