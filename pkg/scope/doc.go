// Package scope provides a typed object model for the Rigol DS1000Z
// oscilloscope family, bound live to the instrument over SCPI.
//
// The entry point is Instrument, constructed over a transport.Transport
// with New (which probes *IDN? and selects a capability profile) or
// NewWithProfile. Subsystems mirror the instrument's command tree:
// Channel, Timebase, Trigger, Display, Cursor, Measure, Waveform,
// Acquire and Reference. Each attribute is exposed as a property whose
// Get issues one query and whose Set issues one write. Nothing is
// cached on the host; the instrument stays the single source of truth,
// so front-panel changes are always visible to the next Get.
//
// Values that fail validation (range bounds, enum membership) are
// rejected before any byte reaches the wire.
package scope
