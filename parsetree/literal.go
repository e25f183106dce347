package parsetree

import "swiftify/report"

// Literal is an in-memory Node, used by tests to build small parse trees
// without a real Objective-C grammar front end. It is not a production
// parser -- it exists only so lowering can be exercised against literal,
// hand-built trees the way the concrete scenarios in spec §8 describe them.
type Literal struct {
	rule     string
	text     string
	span     *report.TextSpan
	children []*Literal
}

// NewLiteral creates a leaf literal node.
func NewLiteral(rule, text string, span *report.TextSpan) *Literal {
	return &Literal{rule: rule, text: text, span: span}
}

// WithChildren appends children and returns the receiver for chaining.
func (l *Literal) WithChildren(children ...*Literal) *Literal {
	l.children = append(l.children, children...)
	return l
}

func (l *Literal) Rule() string { return l.rule }
func (l *Literal) Text() string { return l.text }
func (l *Literal) Span() *report.TextSpan { return l.span }

func (l *Literal) Child(rule string) Node {
	for _, c := range l.children {
		if c.rule == rule {
			return c
		}
	}
	return nil
}

func (l *Literal) Children(rule string) []Node {
	var out []Node
	for _, c := range l.children {
		if c.rule == rule {
			out = append(out, c)
		}
	}
	return out
}

func (l *Literal) FirstChild() Node {
	if len(l.children) == 0 {
		return nil
	}
	return l.children[0]
}

var _ Node = (*Literal)(nil)
