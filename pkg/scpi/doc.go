// Package scpi provides the value codecs and command path helpers for
// the SCPI command surface of Rigol DS1000Z-series oscilloscopes.
//
// SCPI commands are hierarchical colon-separated ASCII paths. A query
// appends "?" to the path; a write appends a space and the encoded
// value. Responses are ASCII text: enumeration tokens (compared
// case-insensitively), booleans as "0"/"1" or "ON"/"OFF", and numbers
// in the instrument's fixed or scientific notation.
//
// # Codecs
//
// Codecs are pure mappings between Go values and wire tokens:
//   - Enum: a closed bidirectional table of named values and tokens
//   - Bool: strict encode, permissive decode (firmware is inconsistent)
//   - Int/Float: strconv-backed, with the instrument's sentinel values
//   - IntRange/FloatRange/FloatSet: bound validation before encode
//
// Every codec upholds the round-trip law decode(encode(x)) == x for
// valid x, and encoding a value outside its declared domain fails
// before anything reaches the transport.
//
// # Errors
//
// The error taxonomy shared by all layers lives here: ErrInvalidValue,
// ErrOutOfRange, ErrMalformedResponse, ErrInvalidIndex and
// ErrCommunication. Match with errors.Is; wrapped errors carry the
// attribute name, offending value and bound where applicable.
package scpi
