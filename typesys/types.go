// Package typesys implements the type mapper (spec §4.5): a pure function
// from a parsed Objective-C type expression to a Swift type, plus the Swift
// type model itself. It is the one piece of the pipeline that is a fixed,
// hard-coded table rather than an inference engine -- the intention passes'
// bottom-up expression-type inference (spec §4.4 item 5) is built on top of
// it, not the other way around.
package typesys

import "strings"

// Type is the closed sum type for every Swift type this translator can
// produce. New variants are added here, never via an external interface
// implementation, so that Repr and Equal stay exhaustive.
type Type interface {
	// Repr renders the type the way it would appear in emitted Swift source,
	// e.g. "[String]", "String?", "(Int) -> Bool".
	Repr() string

	// Equal reports whether two types are the same Swift type. Optionality
	// is significant: String and String? are not Equal.
	Equal(Type) bool
}

// Named is a nominal type: a Swift standard-library type (String, Int,
// Bool, AnyObject, ...) or a user-defined class/struct/protocol name carried
// through unchanged because the mapper found no rule for it.
type Named struct {
	Name string
}

func (n Named) Repr() string { return n.Name }
func (n Named) Equal(other Type) bool {
	o, ok := other.(Named)
	return ok && o.Name == n.Name
}

// Optional wraps a type that may be absent. The mapper never produces it;
// expression inference does (for `as?` casts and dictionary subscripts),
// and the nullability pass unwraps it inside NS_ASSUME_NONNULL regions.
type Optional struct {
	Wrapped Type
}

func (o Optional) Repr() string { return o.Wrapped.Repr() + "?" }
func (o Optional) Equal(other Type) bool {
	v, ok := other.(Optional)
	return ok && o.Wrapped.Equal(v.Wrapped)
}

// Array is Swift's `[Element]`, mapped from `NSArray<T> *`.
type Array struct {
	Elem Type
}

func (a Array) Repr() string { return "[" + a.Elem.Repr() + "]" }
func (a Array) Equal(other Type) bool {
	v, ok := other.(Array)
	return ok && a.Elem.Equal(v.Elem)
}

// Dictionary is Swift's `[Key: Value]`, mapped from `NSDictionary<K, V> *`.
type Dictionary struct {
	Key, Value Type
}

func (d Dictionary) Repr() string { return "[" + d.Key.Repr() + ": " + d.Value.Repr() + "]" }
func (d Dictionary) Equal(other Type) bool {
	v, ok := other.(Dictionary)
	return ok && d.Key.Equal(v.Key) && d.Value.Equal(v.Value)
}

// Pointer is Swift's `UnsafeMutablePointer<T>`, mapped from a pointer to a
// primitive type (e.g. `int *`).
type Pointer struct {
	Pointee Type
}

func (p Pointer) Repr() string { return "UnsafeMutablePointer<" + p.Pointee.Repr() + ">" }
func (p Pointer) Equal(other Type) bool {
	v, ok := other.(Pointer)
	return ok && p.Pointee.Equal(v.Pointee)
}

// Function is a Swift closure type, mapped from an Objective-C block type.
type Function struct {
	Params []Type
	Return Type
}

func (f Function) Repr() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Repr()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + f.Return.Repr()
}

func (f Function) Equal(other Type) bool {
	v, ok := other.(Function)
	if !ok || len(f.Params) != len(v.Params) || !f.Return.Equal(v.Return) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equal(v.Params[i]) {
			return false
		}
	}
	return true
}

// Common named types referenced directly by rules in mapper.go and by passes
// that need to compare against them (e.g. constraining an `if` condition to
// Bool).
var (
	Bool      = Named{"Bool"}
	Int       = Named{"Int"}
	UInt      = Named{"UInt"}
	Double    = Named{"Double"}
	Float     = Named{"Float"}
	String    = Named{"String"}
	Void      = Named{"Void"}
	AnyObject = Named{"AnyObject"}
)
