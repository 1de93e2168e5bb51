package log

import (
	"time"

	"github.com/google/uuid"

	"github.com/arinc-protocol/arinc429-go/pkg/word"
)

// Session stamps capture events with a session ID and timestamps, so
// callers only supply the per-word fields. A nil logger disables capture
// without further checks at the call sites.
type Session struct {
	id     string
	logger Logger
	now    func() time.Time
}

// NewSession creates a capture session with a fresh UUID.
func NewSession(logger Logger) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Session{
		id:     uuid.NewString(),
		logger: logger,
		now:    time.Now,
	}
}

// ID returns the session's UUID.
func (s *Session) ID() string {
	return s.id
}

// Record captures one word, noting its parity verdict at capture time.
func (s *Session) Record(channel string, direction Direction, m word.Message) {
	s.logger.Log(Event{
		Timestamp: s.now(),
		SessionID: s.id,
		Channel:   channel,
		Direction: direction,
		Bits:      m.Bits(),
		ParityOK:  m.CheckParity() == nil,
	})
}
