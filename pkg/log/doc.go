// Package log provides structured capture logging for ARINC 429 words.
//
// This package defines the Logger interface and the Event record for
// capturing every word an application decodes or encodes, together with the
// channel it was seen on and its parity verdict. A capture is a complete
// machine-readable trace for later analysis; it is separate from any
// operational logging an application does.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// Write to a binary capture file
//	logger, _ := log.NewFileLogger("bus.wlog")
//
//	// Fan out to several sinks
//	logger = log.NewMultiLogger(logger, recorder)
//
//	// Stamp events with a session ID and timestamps
//	session := log.NewSession(logger)
//	session.Record("rx1", log.DirectionRx, msg)
//
// # File Format
//
// Capture files hold a stream of CBOR-encoded events with integer keys,
// by convention with a .wlog extension. The arinc-inspect CLI tool views
// and filters them.
package log
