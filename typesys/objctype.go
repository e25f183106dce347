package typesys

import "strings"

// ObjCTypeExpr is a parsed Objective-C type expression, re-parsed from the
// spelled-out type string a variable declarator or method signature carries
// (spec §4.1: "re-parse the spelled-out type via the type system"). This is
// not a general C type grammar -- the Objective-C grammar itself is out of
// scope (spec §1) -- it only covers the shapes that show up in declarator
// and signature positions: pointers, light-weight generics, protocol
// qualification, and block signatures.
type ObjCTypeExpr struct {
	BaseName     string
	PointerDepth int
	Const        bool
	GenericArgs  []*ObjCTypeExpr
	Protocols    []string

	// Block, if non-nil, means this expression is a block type; BaseName and
	// PointerDepth are unused in that case.
	Block *BlockSignature
}

// BlockSignature is the parsed shape of `returnType (^)(paramTypes...)`.
type BlockSignature struct {
	Return *ObjCTypeExpr
	Params []*ObjCTypeExpr
}

// ParseTypeExpr parses a spelled-out Objective-C type. It never fails: any
// text it cannot make sense of becomes a bare named type so that the mapper
// can still pass it through unchanged, matching lowering's "never fail,
// degrade" contract (spec §4.1).
func ParseTypeExpr(spelled string) *ObjCTypeExpr {
	s := strings.TrimSpace(spelled)

	if blk, ok := parseBlockType(s); ok {
		return &ObjCTypeExpr{Block: blk}
	}

	expr := &ObjCTypeExpr{}

	s = trimQualifier(s, "const", &expr.Const)
	s = strings.TrimSpace(s)

	for strings.HasSuffix(s, "*") {
		expr.PointerDepth++
		s = strings.TrimSpace(strings.TrimSuffix(s, "*"))
	}

	s = trimQualifier(s, "const", &expr.Const)
	s = strings.TrimSpace(s)

	if i := strings.IndexByte(s, '<'); i >= 0 && strings.HasSuffix(s, ">") {
		expr.BaseName = strings.TrimSpace(s[:i])
		inner := s[i+1 : len(s)-1]
		args := splitTopLevel(inner, ',')

		if expr.BaseName == "id" {
			for _, a := range args {
				expr.Protocols = append(expr.Protocols, strings.TrimSpace(a))
			}
		} else {
			for _, a := range args {
				expr.GenericArgs = append(expr.GenericArgs, ParseTypeExpr(a))
			}
		}
	} else {
		expr.BaseName = s
	}

	return expr
}

// trimQualifier removes a leading or trailing C qualifier keyword (e.g.
// "const") from s, setting *flag if found.
func trimQualifier(s, qualifier string, flag *bool) string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if f == qualifier {
			*flag = true
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside <...>.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseBlockType recognizes `<return> (^)(<params>)`, the only block-type
// shape the translator needs to lower (spec §4.1's block-typed variable
// declarators and parameters).
func parseBlockType(s string) (*BlockSignature, bool) {
	marker := "(^)"
	i := strings.Index(s, "(^)")
	if i < 0 {
		// named block pointer, e.g. "void (^block)(int)" -- the name sits
		// inside the carets instead of being empty.
		if oi := strings.Index(s, "(^"); oi >= 0 {
			if ci := strings.Index(s[oi:], ")"); ci >= 0 {
				i = oi
				marker = s[oi : oi+ci+1]
			}
		}
		if i < 0 {
			return nil, false
		}
	}

	returnPart := strings.TrimSpace(s[:i])
	rest := strings.TrimSpace(s[i+len(marker):])

	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, false
	}
	paramsPart := rest[1 : len(rest)-1]

	sig := &BlockSignature{Return: ParseTypeExpr(returnPart)}
	if strings.TrimSpace(paramsPart) != "" && strings.TrimSpace(paramsPart) != "void" {
		for _, p := range splitTopLevel(paramsPart, ',') {
			sig.Params = append(sig.Params, ParseTypeExpr(p))
		}
	}
	return sig, true
}
