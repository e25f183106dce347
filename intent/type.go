package intent

import "swiftify/typesys"

// TypeKind enumerates the Swift type-intention flavours spec §3.1 names.
type TypeKind int

const (
	TypeClass TypeKind = iota
	TypeStruct
	TypeEnum
	TypeProtocol
	TypeExtension
)

// Access enumerates Swift access levels relevant to a translated member.
type Access int

const (
	AccessInternal Access = iota
	AccessPublic
	AccessPrivate
	AccessFilePrivate
)

// Type is a class/struct/enum/protocol/extension intention (spec §3.1). Its
// identity across the whole graph is TypeName, not any single owning File:
// an Objective-C category or class-extension fragment lowers to a second
// Type intention with the same TypeName, which pass 1 (merge duplicate type
// fragments) folds into one.
type Type struct {
	Base

	Kind             TypeKind
	TypeName         string
	Supertype        string
	Access           Access
	InNonnullContext bool

	Properties   []*Property
	Methods      []*Method
	Conformances []*ProtocolConformance
}

// NewType creates an empty type intention. inNonnullContext is captured at
// construction time from the enclosing NS_ASSUME_NONNULL span and is never
// recomputed afterwards (spec §3.1 invariant).
func NewType(kind TypeKind, name string, inNonnullContext bool) *Type {
	return &Type{Kind: kind, TypeName: name, InNonnullContext: inNonnullContext}
}

// AddProperty appends (or inserts) a property intention.
func (t *Type) AddProperty(p *Property, at *int) {
	t.Properties = insertChild(t.Properties, p, at, t)
}

// RemoveProperty removes a property intention.
func (t *Type) RemoveProperty(p *Property) {
	t.Properties = removeChild(t.Properties, p)
}

// AddMethod appends (or inserts) a method intention.
func (t *Type) AddMethod(m *Method, at *int) {
	t.Methods = insertChild(t.Methods, m, at, t)
}

// RemoveMethod removes a method intention.
func (t *Type) RemoveMethod(m *Method) {
	t.Methods = removeChild(t.Methods, m)
}

// AddConformance appends (or inserts) a protocol-conformance intention.
func (t *Type) AddConformance(c *ProtocolConformance, at *int) {
	t.Conformances = insertChild(t.Conformances, c, at, t)
}

// RemoveConformance removes a protocol-conformance intention.
func (t *Type) RemoveConformance(c *ProtocolConformance) {
	t.Conformances = removeChild(t.Conformances, c)
}

// LookupProperty finds a property by name (spec §4.2).
func (t *Type) LookupProperty(name string) (*Property, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// LookupMethodBySelector finds a method whose selector matches, ignoring
// parameter/return types and parameter variable names (spec §4.2).
func (t *Type) LookupMethodBySelector(selector string) (*Method, bool) {
	for _, m := range t.Methods {
		if m.Signature.Selector == selector {
			return m, true
		}
	}
	return nil, false
}

// LookupMethodBySignature finds a method whose signature matches with
// nullability dropped from every parameter/return type (spec §4.2).
func (t *Type) LookupMethodBySignature(sig Signature) (*Method, bool) {
	for _, m := range t.Methods {
		if signaturesEquivalent(m.Signature, sig) {
			return m, true
		}
	}
	return nil, false
}

// LookupConformance finds a declared conformance to the named protocol.
func (t *Type) LookupConformance(protocolName string) (*ProtocolConformance, bool) {
	for _, c := range t.Conformances {
		if c.ProtocolName == protocolName {
			return c, true
		}
	}
	return nil, false
}

func signaturesEquivalent(a, b Signature) bool {
	if a.Name != b.Name || a.IsStatic != b.IsStatic || len(a.Params) != len(b.Params) {
		return false
	}
	if !typeEquivalentModuloNullability(a.Return, b.Return) {
		return false
	}
	for i := range a.Params {
		if !typeEquivalentModuloNullability(a.Params[i].Type, b.Params[i].Type) {
			return false
		}
	}
	return true
}

// typeEquivalentModuloNullability compares two Swift types ignoring any
// Optional wrapping, the Swift-side marker of Objective-C nullability.
func typeEquivalentModuloNullability(a, b typesys.Type) bool {
	sa, sb := stripOptional(a), stripOptional(b)
	if sa == nil || sb == nil {
		return sa == nil && sb == nil
	}
	return sa.Equal(sb)
}

func stripOptional(t typesys.Type) typesys.Type {
	if o, ok := t.(typesys.Optional); ok {
		return o.Wrapped
	}
	return t
}

var _ Intention = (*Type)(nil)
