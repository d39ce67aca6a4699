package main

import (
	"encoding/json"
	"fmt"
)

//argenum:derive
type Fruit int

const (
	Apple Fruit = iota

	//argenum:variant(name = "Kirsche")
	Cherry
)

func main() {
	data, err := json.Marshal(map[string]Fruit{"fav": Cherry})
	fmt.Println(string(data), err)

	var v Fruit
	err = v.UnmarshalText([]byte("apple"))
	fmt.Println(v, err)

	err = v.UnmarshalText([]byte("nope"))
	fmt.Println(err)
}
