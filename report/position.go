package report

// TextSpan represents a range of source text that an intention, AST node, or
// CFG node can carry as provenance. It is used purely for diagnostics: the
// core never re-reads the bytes a span points at. Lines and columns are
// zero-indexed, matching how the Objective-C parse-tree reader reports them.
type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// NewSpanOver returns the span that encloses both given spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}
