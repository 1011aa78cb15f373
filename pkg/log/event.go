package log

import "time"

// Event represents one leg of a SCPI exchange: a command or query sent
// to the instrument, a response received from it, or a transport error.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the transport session (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"4,keyasint"`

	// Payload is the command or response text, without terminator.
	Payload string `cbor:"5,keyasint,omitempty"`

	// RemoteAddr is the instrument address (host:port or resource name).
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// Err is the error text for KindError events.
	Err string `cbor:"7,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates data received from the instrument.
	DirectionIn Direction = 0
	// DirectionOut indicates data sent to the instrument.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Kind classifies a traffic event.
type Kind uint8

const (
	// KindCommand is a write with no expected response.
	KindCommand Kind = 0
	// KindQuery is a command that expects a response.
	KindQuery Kind = 1
	// KindResponse is the instrument's answer to a query.
	KindResponse Kind = 2
	// KindError is a transport-level failure.
	KindError Kind = 3
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "COMMAND"
	case KindQuery:
		return "QUERY"
	case KindResponse:
		return "RESPONSE"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
