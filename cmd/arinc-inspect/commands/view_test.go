package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arinc-protocol/arinc429-go/pkg/log"
)

func writeCapture(t *testing.T, events ...log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.wlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, ev := range events {
		logger.Log(ev)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestView(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 32, 123456000, time.UTC)
	path := writeCapture(t,
		log.Event{
			Timestamp: ts,
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Channel:   "rx1",
			Direction: log.DirectionRx,
			Bits:      0x84000109,
			ParityOK:  true,
		},
		log.Event{
			Timestamp: ts.Add(time.Second),
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Channel:   "tx1",
			Direction: log.DirectionTx,
			Bits:      0x22443300,
			ParityOK:  false,
		},
	)

	var buf bytes.Buffer
	count, err := View(&buf, path, log.Filter{})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 events, got %d", count)
	}
	output := buf.String()

	if !strings.Contains(output, "2026-08-29T10:15:32.123456Z") {
		t.Errorf("expected formatted timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[session:abc12345]") {
		t.Errorf("expected shortened session ID, got: %s", output)
	}
	if !strings.Contains(output, "0x84000109 label 0o220 parity OK") {
		t.Errorf("expected decoded rx word, got: %s", output)
	}
	if !strings.Contains(output, "0x22443300") || !strings.Contains(output, "parity BAD") {
		t.Errorf("expected failing tx word, got: %s", output)
	}
}

func TestViewFiltered(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 32, 0, time.UTC)
	path := writeCapture(t,
		log.Event{Timestamp: ts, SessionID: "s", Channel: "rx1", Direction: log.DirectionRx, Bits: 0x1, ParityOK: true},
		log.Event{Timestamp: ts, SessionID: "s", Channel: "rx2", Direction: log.DirectionRx, Bits: 0x2, ParityOK: false},
	)

	var buf bytes.Buffer
	count, err := View(&buf, path, log.Filter{BadParityOnly: true})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 matching event, got %d", count)
	}
	if !strings.Contains(buf.String(), "rx2") {
		t.Errorf("expected only rx2 event, got: %s", buf.String())
	}
}

func TestViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if _, err := View(&buf, filepath.Join(t.TempDir(), "absent.wlog"), log.Filter{}); err == nil {
		t.Error("expected error for missing capture file")
	}
}
