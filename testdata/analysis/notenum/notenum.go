package notenum

//argenum:derive
type Foo struct{} // want `cannot derive Foo: enum must be defined as an integer or string type, not struct\{\}`
