package log

// MultiLogger fans events out to several loggers.
// Nil entries are skipped, so callers can pass optional sinks directly.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a logger that forwards each event to every
// non-nil logger in order.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	kept := make([]Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return &MultiLogger{loggers: kept}
}

// Log forwards the event to every logger.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
