package duplicate

//argenum:derive
type Foo int

const (
	Apple Foo = iota

	//argenum:variant(name = "APPLE")
	Pear // want `duplicate spelling "APPLE" for Apple and Pear \(matching is case-insensitive\)`
)
