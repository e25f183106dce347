package intent

import "swiftify/typesys"

// Signature describes a method/initializer/global-function's call shape
// (spec §3.1). Selector is the Objective-C-style colon-joined selector
// (e.g. "initWithName:age:"), kept alongside Name/Params for
// LookupMethodBySelector, which matches on it alone.
type Signature struct {
	IsStatic bool
	Name     string
	Selector string
	Params   []MethodParam
	Return   typesys.Type
}

// MethodParam is one parameter of a Signature.
type MethodParam struct {
	Name string
	Type typesys.Type
}

// Method is a method or initializer intention (spec §3.1); an initializer
// is a Method with IsInitializer set. A global function is the separate
// GlobalFunction type below, which has the same shape: a signature owning a
// single Body.
type Method struct {
	Base

	Signature     Signature
	Access        Access
	IsInitializer bool
	Body          *Body
}

// NewMethod creates a method intention with no body yet attached.
func NewMethod(sig Signature, access Access) *Method {
	return &Method{Signature: sig, Access: access}
}

// SetBody attaches (and reparents) this method's body.
func (m *Method) SetBody(b *Body) {
	if m.Body != nil {
		m.Body.setParent(nil)
	}
	m.Body = b
	if b != nil {
		b.setParent(m)
	}
}

var _ Intention = (*Method)(nil)

// GlobalFunction is a top-level function intention, owned directly by a
// File rather than by a Type.
type GlobalFunction struct {
	Base

	Signature Signature
	Access    Access
	Body      *Body
}

// NewGlobalFunction creates a global-function intention with no body yet
// attached.
func NewGlobalFunction(sig Signature, access Access) *GlobalFunction {
	return &GlobalFunction{Signature: sig, Access: access}
}

// SetBody attaches (and reparents) this function's body.
func (g *GlobalFunction) SetBody(b *Body) {
	if g.Body != nil {
		g.Body.setParent(nil)
	}
	g.Body = b
	if b != nil {
		b.setParent(g)
	}
}

var _ Intention = (*GlobalFunction)(nil)
