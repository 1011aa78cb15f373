// Package log provides structured SCPI traffic logging.
//
// This package defines the Logger interface and Event type for
// capturing every command, query and response exchanged with an
// instrument. It is separate from operational logging - a traffic
// trace is a complete machine-readable record of the wire dialogue,
// useful for debugging firmware quirks and for replaying sessions.
//
// # Basic Usage
//
// Transports accept an optional Logger:
//
//	logger, _ := log.NewFileLogger("session.slog")
//	tr, _ := transport.Dial("192.168.1.50:5555",
//	    transport.WithLogger(logger))
//
// Use MultiLogger to fan events out to several sinks at once, and
// Reader to iterate a recorded file, optionally filtered.
//
// # File Format
//
// Log files are a concatenation of CBOR-encoded events (integer keys,
// nanosecond timestamps), one per round trip leg.
package log
