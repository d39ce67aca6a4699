package main

import "fmt"

//argenum:derive(trimprefix = "auto")
type status int

const (
	STATUS_TODO status = iota
	STATUS_DONE
)

func main() {
	fmt.Println(statusVariants())

	v, err := parseStatus("todo")
	fmt.Println(v, err)
}
