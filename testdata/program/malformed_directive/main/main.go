package main

//argenum:derive(trimprefix = auto)
type Kind int

const KindA Kind = 0

func main() {}
