package conflict

//argenum:derive
type Foo int // want `cannot generate method String for Foo: the method is already declared`

const Bar Foo = 0

func (Foo) String() string { return "" }
