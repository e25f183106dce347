package intent

import "swiftify/typesys"

// KnownProperty is the read-only view of a property intention exposed to
// passes that must not mutate the graph directly (spec glossary: "Known-X
// view"). It is also the abstract descriptor a pass can hand to
// GenerateProperty to materialise a concrete Property intention. No pass in
// StandardCatalogue calls GenerateProperty.
type KnownProperty struct {
	Name string
	Type typesys.Type
	Mode PropertyMode
}

// KnownMethod is the read-only/abstract view of a method intention, used
// the same way as KnownProperty.
type KnownMethod struct {
	Signature Signature
	Access    Access
}

// KnownType is the read-only view of a type intention.
type KnownType struct {
	TypeName     string
	Properties   []KnownProperty
	Methods      []KnownMethod
	Conformances []string
}

// AsKnown snapshots t into its read-only view.
func (t *Type) AsKnown() KnownType {
	kt := KnownType{TypeName: t.TypeName}
	for _, p := range t.Properties {
		kt.Properties = append(kt.Properties, KnownProperty{Name: p.Name, Type: p.Type, Mode: p.Mode})
	}
	for _, m := range t.Methods {
		kt.Methods = append(kt.Methods, KnownMethod{Signature: m.Signature, Access: m.Access})
	}
	for _, c := range t.Conformances {
		kt.Conformances = append(kt.Conformances, c.ProtocolName)
	}
	return kt
}

// GenerateProperty materialises a concrete Property intention from an
// abstract descriptor and adds it to t (spec §4.2: "Generate a member from
// an abstract KnownMethod/KnownProperty descriptor"). The generated
// property has no getter/setter body yet -- a caller that needs one
// (e.g. to synthesise a trivial accessor) attaches it afterwards with
// SetGetter/SetSetter.
func (t *Type) GenerateProperty(desc KnownProperty) *Property {
	p := NewProperty(desc.Name, desc.Type)
	p.Mode = desc.Mode
	t.AddProperty(p, nil)
	return p
}

// GenerateMethod materialises a concrete Method intention from an abstract
// descriptor and adds it to t.
func (t *Type) GenerateMethod(desc KnownMethod) *Method {
	m := NewMethod(desc.Signature, desc.Access)
	t.AddMethod(m, nil)
	return m
}
