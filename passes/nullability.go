package passes

import (
	"swiftify/intent"
	"swiftify/report"
	"swiftify/typesys"
)

// PropagateNullability implements spec §4.4 item 7: inside an
// `NS_ASSUME_NONNULL` region, an object pointer with no explicit
// `nullable` qualifier is non-optional by default, the inverse of
// Objective-C's ordinary nullable-by-default pointer. The type mapper
// itself has no notion of the enclosing nonnull region (spec §4.5: it is a
// pure function of the type expression alone), so a property/parameter it
// mapped to an Optional before the region was known gets unwrapped here,
// once per type carrying InNonnullContext, unless a property explicitly
// opted back out with the `nullable` attribute (the only place this model
// carries a per-declaration nullable override; Method parameters and
// return types have no equivalent attribute slot, so every Optional
// parameter/return type of an InNonnullContext type's methods is treated
// as an implicit default and unwrapped).
type PropagateNullability struct{}

func (PropagateNullability) Name() string { return "propagate-nullability" }

func (PropagateNullability) Run(g *intent.Graph, _ *report.Reporter) bool {
	changed := false
	for _, t := range g.Types() {
		if !t.InNonnullContext {
			continue
		}
		for _, p := range t.Properties {
			if p.Attributes["nullable"] {
				continue
			}
			if unwrapped, ok := stripImplicitOptional(p.Type); ok {
				p.Type = unwrapped
				changed = true
			}
		}
		for _, m := range t.Methods {
			if unwrapped, ok := stripImplicitOptional(m.Signature.Return); ok {
				m.Signature.Return = unwrapped
				changed = true
			}
			for i, param := range m.Signature.Params {
				if unwrapped, ok := stripImplicitOptional(param.Type); ok {
					m.Signature.Params[i].Type = unwrapped
					changed = true
				}
			}
		}
	}
	return changed
}

func stripImplicitOptional(t typesys.Type) (typesys.Type, bool) {
	o, ok := t.(typesys.Optional)
	if !ok {
		return t, false
	}
	return o.Wrapped, true
}
