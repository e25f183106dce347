package intent

import (
	"swiftify/ast"
	"swiftify/typesys"
)

// PropertyMode enumerates the storage shapes a Property intention can take
// (spec §3.1): a plain stored field, a computed property with only a
// getter, or a full property with both getter and setter bodies.
type PropertyMode int

const (
	ModeField PropertyMode = iota
	ModeComputed
	ModeProperty
)

// Property is a property/field intention (spec §3.1).
type Property struct {
	Base

	Name       string
	Type       typesys.Type
	Mode       PropertyMode
	Ownership  ast.Ownership
	Attributes map[string]bool // e.g. {"readonly": true, "nonatomic": true}

	// Getter and Setter hold the accessor bodies for ModeComputed/
	// ModeProperty; both are nil for ModeField, which stores its value
	// directly rather than through accessor bodies.
	Getter *Body
	Setter *Body
}

// NewProperty creates a stored-field property intention.
func NewProperty(name string, typ typesys.Type) *Property {
	return &Property{Name: name, Type: typ, Mode: ModeField, Attributes: make(map[string]bool)}
}

// SetGetter attaches (and reparents) this property's getter body.
func (p *Property) SetGetter(b *Body) {
	if p.Getter != nil {
		p.Getter.setParent(nil)
	}
	p.Getter = b
	if b != nil {
		b.setParent(p)
	}
}

// SetSetter attaches (and reparents) this property's setter body.
func (p *Property) SetSetter(b *Body) {
	if p.Setter != nil {
		p.Setter.setParent(nil)
	}
	p.Setter = b
	if b != nil {
		b.setParent(p)
	}
}

var _ Intention = (*Property)(nil)
