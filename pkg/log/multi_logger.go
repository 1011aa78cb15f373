package log

// MultiLogger sends events to multiple loggers, e.g. a FileLogger for
// the session record plus an in-memory logger for a live console view.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that fans out to all provided loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log sends the event to all configured loggers.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
