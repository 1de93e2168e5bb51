package commands

import (
	"fmt"
	"io"

	"github.com/arinc-protocol/arinc429-go/pkg/log"
	"github.com/arinc-protocol/arinc429-go/pkg/word"
)

// View renders a capture file as a table, one line per matching event.
// It returns the number of events written.
func View(w io.Writer, path string, filter log.Filter) (int, error) {
	r, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("opening capture file: %w", err)
	}
	defer r.Close()

	count := 0
	for {
		event, err := r.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("reading capture file: %w", err)
		}

		formatEvent(w, event)
		count++
	}
}

// formatEvent writes one capture event as a table line.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	m := word.MessageFromBits(event.Bits)

	parity := "OK"
	if !event.ParityOK {
		parity = "BAD"
	}

	fmt.Fprintf(w, "%s [session:%s] %-8s %-3s 0x%08x label %s parity %s\n",
		ts, shortenSessionID(event.SessionID), event.Channel,
		event.Direction, event.Bits, m.Label(), parity)
}

// shortenSessionID returns the first 8 characters of the session UUID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
