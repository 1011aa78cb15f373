package scpi

import (
	"errors"
	"fmt"
)

// Error taxonomy for the SCPI property-binding core.
// Every error raised by codecs, subsystems or transports wraps one of
// these sentinels so callers can classify failures with errors.Is.
var (
	// ErrInvalidValue indicates a value outside a codec's declared
	// enumeration. The write never reaches the wire.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange indicates a numeric value outside the declared
	// [min, max] bound. The write never reaches the wire.
	ErrOutOfRange = errors.New("value out of range")

	// ErrMalformedResponse indicates an instrument response that the
	// expected codec cannot parse. Firmware drift across hardware
	// revisions surfaces here rather than passing raw strings through.
	ErrMalformedResponse = errors.New("malformed instrument response")

	// ErrInvalidIndex indicates a 1-based index outside an indexed
	// collection's valid range. Indices are never clamped.
	ErrInvalidIndex = errors.New("index out of range")

	// ErrInvalidChannel is the channel-specific form of ErrInvalidIndex.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrCommunication indicates a transport-level failure (timeout,
	// disconnect). Opaque to this core; retry policy belongs to the
	// transport collaborator.
	ErrCommunication = errors.New("communication error")

)

// ErrMeasureError indicates the instrument answered "MEASURE ERROR!" to a
// measurement query. It wraps ErrMalformedResponse so generic callers can
// still match the taxonomy.
var ErrMeasureError = fmt.Errorf("%w: instrument reported a measure error", ErrMalformedResponse)
