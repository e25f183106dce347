package typesys

// MapperContext carries the per-pipeline-run state the mapper needs beyond
// the fixed tables below: the set of protocol and class names declared in
// the program being translated (spec §4.5). Map itself does not consult
// these tables: `id<P>` maps to `P` whether or not `P` is listed in
// Protocols. A MapperContext is
// created once per run and passed explicitly -- it is never a package-level
// singleton (spec §9's "Shared mutable state across passes" note).
type MapperContext struct {
	Protocols map[string]bool
	Classes   map[string]bool
}

// NewMapperContext creates an empty context; callers populate it as type
// intentions are collected.
func NewMapperContext() *MapperContext {
	return &MapperContext{
		Protocols: make(map[string]bool),
		Classes:   make(map[string]bool),
	}
}

// primitiveMap covers the fixed, hard-coded Objective-C -> Swift scalar
// mappings (spec §4.5).
var primitiveMap = map[string]Named{
	"BOOL":         Bool,
	"bool":         Bool,
	"NSInteger":    Int,
	"int":          Int,
	"long":         Int,
	"short":        Named{"Int16"},
	"NSUInteger":   UInt,
	"unsigned":     UInt,
	"double":       Double,
	"float":        Float,
	"CGFloat":      Double,
	"void":         Void,
	"char":         Named{"Int8"},
	"id":           AnyObject,
	"instancetype": AnyObject,
}

// objectPointerMap covers Foundation object types whose pointer form maps to
// a Swift standard-library type, independent of generics (spec §4.5:
// `NSString* -> String`).
var objectPointerMap = map[string]Named{
	"NSString": String,
}

// Map implements the type-mapper contract: a pure function of an Objective-C
// type expression (and the run's name tables) to a Swift type. Unknown names
// pass through unchanged as a Named type, per spec §4.5's last rule.
func (ctx *MapperContext) Map(expr *ObjCTypeExpr) Type {
	if expr.Block != nil {
		return ctx.mapBlock(expr.Block)
	}

	if expr.BaseName == "id" && len(expr.Protocols) == 1 {
		return Named{expr.Protocols[0]}
	}
	if expr.BaseName == "id" && len(expr.Protocols) > 1 {
		// Swift has no direct multi-protocol existential syntax pre-`any
		// P1 & P2`; represent it with the composed name so emission can
		// decide how to render it, rather than silently dropping protocols.
		name := expr.Protocols[0]
		for _, p := range expr.Protocols[1:] {
			name += " & " + p
		}
		return Named{name}
	}

	if expr.BaseName == "NSArray" && expr.PointerDepth >= 1 {
		if len(expr.GenericArgs) == 1 {
			return Array{Elem: ctx.Map(expr.GenericArgs[0])}
		}
		return Array{Elem: AnyObject}
	}

	if expr.BaseName == "NSDictionary" && expr.PointerDepth >= 1 {
		if len(expr.GenericArgs) == 2 {
			return Dictionary{Key: ctx.Map(expr.GenericArgs[0]), Value: ctx.Map(expr.GenericArgs[1])}
		}
		return Dictionary{Key: AnyObject, Value: AnyObject}
	}

	if named, ok := objectPointerMap[expr.BaseName]; ok && expr.PointerDepth >= 1 {
		return named
	}

	if prim, ok := primitiveMap[expr.BaseName]; ok {
		if expr.PointerDepth >= 1 {
			// A pointer to a primitive scalar, e.g. `int *`, becomes an
			// unsafe pointer; a pointer to an object type (the `id`/class
			// cases above) does not reach this branch.
			inner := *expr
			inner.PointerDepth--
			return Pointer{Pointee: ctx.Map(&inner)}
		}
		return prim
	}

	if expr.PointerDepth >= 1 {
		// Unknown class pointer: the class/protocol name itself is the
		// Swift type, regardless of pointer depth.
		return Named{expr.BaseName}
	}

	return Named{expr.BaseName}
}

func (ctx *MapperContext) mapBlock(sig *BlockSignature) Function {
	params := make([]Type, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = ctx.Map(p)
	}
	return Function{Params: params, Return: ctx.Map(sig.Return)}
}
