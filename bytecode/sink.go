package bytecode

import "github.com/sirupsen/logrus"

// Sink receives a single line of progress or warning text from the core.
// The core never logs globally; every stage that needs to report something
// takes a Sink from its caller. A nil Sink is valid and discards lines.
type Sink interface {
	Line(s string)
}

// NopSink discards every line. Useful as a default in tests.
type NopSink struct{}

// Line implements Sink.
func (NopSink) Line(string) {}

// LogrusSink adapts a *logrus.Logger to Sink, logging each line at Info
// level. Callers that want warnings distinguished should use WarnSink
// instead, or wrap the logger themselves.
type LogrusSink struct {
	Log *logrus.Logger
}

// Line implements Sink.
func (s LogrusSink) Line(line string) {
	if s.Log == nil {
		return
	}
	s.Log.Info(line)
}

// WarnSink is a LogrusSink variant that logs at Warn level, used where the
// core reports a degraded-but-continuing condition (unresolved labels,
// per-file batch failures).
type WarnSink struct {
	Log *logrus.Logger
}

// Line implements Sink.
func (s WarnSink) Line(line string) {
	if s.Log == nil {
		return
	}
	s.Log.Warn(line)
}
