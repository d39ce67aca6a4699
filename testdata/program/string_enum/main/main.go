package main

import "fmt"

//argenum:derive
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
)

func main() {
	v, err := ParseColor("RED")
	fmt.Println(v, string(v), err)

	fmt.Println(Color("pink"))
}
