package main

import "fmt"

//argenum:derive(trimprefix = "Kind")
type Kind int

const (
	KindFile Kind = iota
	KindDir

	//argenum:variant(alias = "KindSym")
	KindSymlink
)

func main() {
	fmt.Println(KindVariants())

	v, err := ParseKind("file")
	fmt.Println(v, err)
}
