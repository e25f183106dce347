package report

import "fmt"

// LocalCompileError is raised with Raise and caught with CatchErrors. It lets
// deeply nested lowering/pass code abort the current unit of work (one
// method body, one file) without threading an error return through every
// call in the chain -- translation gaps are never supposed to reach this
// path (spec §7 category 1 degrades to `unknown` in-band instead), so a
// LocalCompileError always indicates a genuine, reportable compile error in
// the input, not a translator bug.
type LocalCompileError struct {
	Message string
	Span    *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise constructs a LocalCompileError for use with panic.
func Raise(span *TextSpan, format string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(format, args...), Span: span}
}

// CatchErrors recovers a panic started by Raise and folds it into the
// reporter as a compile error. It must
// always be deferred, never called directly. Per spec §7 category 3,
// structural violations (nesting a CFG in itself, cross-graph edges) are
// programmer errors: CatchErrors re-panics those so they surface during
// development instead of being silently swallowed.
func (r *Reporter) CatchErrors() {
	if x := recover(); x != nil {
		if cerr, ok := x.(*LocalCompileError); ok {
			r.ReportCompileError(cerr.Span, cerr.Message)
			return
		}

		panic(x)
	}
}

// ReportCompileError records an error diagnostic.
func (r *Reporter) ReportCompileError(span *TextSpan, format string, args ...interface{}) {
	if r.logLevel > LogLevelSilent {
		r.record(Message{IsError: true, Span: span, Text: fmt.Sprintf(format, args...)})
	}
}

// ReportCompileWarning records a warning diagnostic.
func (r *Reporter) ReportCompileWarning(span *TextSpan, format string, args ...interface{}) {
	if r.logLevel >= LogLevelWarn {
		r.record(Message{IsError: false, Span: span, Text: fmt.Sprintf(format, args...)})
	}
}

// ReportICE reports an internal compiler error: a structural invariant the
// core is supposed to maintain on its own (e.g. a parent back-edge pointing
// at the wrong intention) was found broken. These should never happen in a
// correct build and are always displayed regardless of log level.
func (r *Reporter) ReportICE(format string, args ...interface{}) {
	panic(fmt.Sprintf("internal error: %s", fmt.Sprintf(format, args...)))
}
