// Package transport carries SCPI command strings to and from an
// instrument.
//
// The property-binding core in pkg/scope talks to the instrument
// exclusively through the Transport interface: one Write or one Query
// per property access, blocking, no retries. This package provides the
// LXI raw-socket implementation (TCP port 5555, newline-terminated
// ASCII) used by DS1000Z-series scopes on the network; other media
// (USBTMC, GPIB adapters) can be plugged in by implementing Transport.
//
// SCPI over a single physical link has no multiplexing, so callers
// must serialize access: at most one in-flight command per connection.
// Timeouts are a transport concern and surface to the core only as
// scpi.ErrCommunication.
package transport
