package report

import "sync"

// Enumeration of log levels, ordered from least to most verbose. A level N
// reporter displays everything at level <= N.
const (
	LogLevelSilent = iota
	LogLevelError
	LogLevelWarn
	LogLevelVerbose
)

// Reporter accumulates diagnostics produced while lowering and running passes
// over one intention graph. It is the core's sole channel for communicating
// translation gaps and type-resolution misses to a caller (spec §6/§7):
// nothing in the core panics or returns an error for these -- they are
// reported here and execution continues. Reporter is safe for concurrent use
// because coarse-grained per-file lowering (spec §5) may run on several
// goroutines that all report into the same run.
type Reporter struct {
	m        sync.Mutex
	logLevel int
	isErr    bool

	messages []Message
	events   []Event
}

// NewReporter creates a reporter at the given log level.
func NewReporter(logLevel int) *Reporter {
	return &Reporter{logLevel: logLevel}
}

// AnyErrors reports whether any compile error has been recorded.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()
	return r.isErr
}

// Messages returns a snapshot of every message recorded so far, in report
// order. The slice is a copy: callers may not mutate the reporter through it.
func (r *Reporter) Messages() []Message {
	r.m.Lock()
	defer r.m.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Message is a single human-facing diagnostic: an error or a warning tied to
// a source span (span may be nil for diagnostics with no useful position,
// e.g. "module file missing").
type Message struct {
	IsError bool
	Span    *TextSpan
	Text    string
}

func (r *Reporter) record(msg Message) {
	r.m.Lock()
	defer r.m.Unlock()

	if msg.IsError {
		r.isErr = true
	}
	r.messages = append(r.messages, msg)
}
