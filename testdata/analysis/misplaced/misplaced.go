package misplaced

//argenum:derive
type Foo int

const Bar Foo = 0

//argenum:variant(alias = "X") // want `misplaced argenum directive`
var n int
