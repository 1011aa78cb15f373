package scpi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric sentinel tokens the instrument uses for values that have no
// finite representation (see the DS1000Z programming guide).
const (
	tokenNaN    = "9.91E37"
	tokenPosInf = "9.9E37"
	tokenNegInf = "-9.9E37"

	// tokenMeasureError is returned by measurement queries when the
	// instrument cannot produce a result.
	tokenMeasureError = "MEASURE ERROR!"
)

// BoolFormat selects the wire form used when encoding booleans.
// Decoding is always permissive: the firmware answers "0"/"1" on some
// subsystems and "ON"/"OFF" on others, case varying by revision.
type BoolFormat uint8

const (
	// BoolNumeric encodes to "1"/"0".
	BoolNumeric BoolFormat = iota

	// BoolWord encodes to "ON"/"OFF".
	BoolWord
)

// EncodeBool encodes a boolean in the given wire form.
func EncodeBool(v bool, format BoolFormat) string {
	if format == BoolWord {
		if v {
			return "ON"
		}
		return "OFF"
	}
	if v {
		return "1"
	}
	return "0"
}

// DecodeBool decodes any of "0", "1", "ON", "OFF" case-insensitively.
// Anything else fails with ErrMalformedResponse.
func DecodeBool(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", "ON":
		return true, nil
	case "0", "OFF":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrMalformedResponse, s)
	}
}

// EncodeInt encodes an integer in decimal notation.
func EncodeInt(v int) string {
	return strconv.Itoa(v)
}

// DecodeInt parses an integer response. Responses in scientific
// notation (the instrument emits some counts that way) are accepted as
// long as they are integral.
func DecodeInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := DecodeFloat(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedResponse, s)
	}
	return int(f), nil
}

// EncodeFloat encodes a float the way the instrument itself emits
// values, so a value written and immediately re-read is stable.
func EncodeFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', 4, 64)
}

// DecodeFloat parses a numeric response. The instrument's sentinel
// tokens decode to NaN and ±Inf; "MEASURE ERROR!" fails with
// ErrMeasureError; anything unparseable fails with ErrMalformedResponse.
func DecodeFloat(s string) (float64, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case tokenNaN:
		return math.NaN(), nil
	case tokenPosInf:
		return math.Inf(1), nil
	case tokenNegInf:
		return math.Inf(-1), nil
	case tokenMeasureError:
		return 0, ErrMeasureError
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedResponse, s)
	}
	return v, nil
}

// IntRange validates an integer against a static or capability-derived
// [Min, Max] bound before encode.
type IntRange struct {
	// Name is the attribute name used in error messages.
	Name string

	Min int
	Max int
}

// Validate returns ErrOutOfRange naming the attribute, value and bound
// if v lies outside [Min, Max].
func (r IntRange) Validate(v int) error {
	if v < r.Min || v > r.Max {
		return fmt.Errorf("%w: %s = %d, allowed [%d, %d]", ErrOutOfRange, r.Name, v, r.Min, r.Max)
	}
	return nil
}

// FloatRange validates a float against a [Min, Max] bound before encode.
type FloatRange struct {
	// Name is the attribute name used in error messages.
	Name string

	Min float64
	Max float64
}

// Validate returns ErrOutOfRange naming the attribute, value and bound
// if v lies outside [Min, Max]. NaN never validates.
func (r FloatRange) Validate(v float64) error {
	if math.IsNaN(v) || v < r.Min || v > r.Max {
		return fmt.Errorf("%w: %s = %v, allowed [%v, %v]", ErrOutOfRange, r.Name, v, r.Min, r.Max)
	}
	return nil
}

// FloatSet validates a float against a closed set of legal values
// (e.g. the probe ratio steps 0.01x to 1000x).
type FloatSet struct {
	// Name is the attribute name used in error messages.
	Name string

	Values []float64
}

// Validate returns ErrOutOfRange naming the attribute and the legal set
// if v is not an exact member.
func (s FloatSet) Validate(v float64) error {
	for _, allowed := range s.Values {
		if v == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %s = %v, allowed one of %v", ErrOutOfRange, s.Name, v, s.Values)
}
