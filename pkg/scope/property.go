package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// floatRule validates a float before it is encoded. Both
// scpi.FloatRange and scpi.FloatSet satisfy it.
type floatRule interface {
	Validate(v float64) error
}

// BoolProperty binds a boolean attribute to its command path.
type BoolProperty struct {
	tr     transport.Transport
	path   string
	format scpi.BoolFormat
}

func newBoolProperty(tr transport.Transport, path string) BoolProperty {
	return BoolProperty{tr: tr, path: path, format: scpi.BoolNumeric}
}

// Get queries the current value from the instrument.
func (p BoolProperty) Get() (bool, error) {
	resp, err := p.tr.Query(scpi.Query(p.path))
	if err != nil {
		return false, err
	}
	return scpi.DecodeBool(resp)
}

// Set writes a new value to the instrument.
func (p BoolProperty) Set(v bool) error {
	return p.tr.Write(scpi.Set(p.path, scpi.EncodeBool(v, p.format)))
}

// IntProperty binds an integer attribute to its command path,
// optionally validated against a range before writing.
type IntProperty struct {
	tr     transport.Transport
	path   string
	bounds *scpi.IntRange
}

func newIntProperty(tr transport.Transport, path string) IntProperty {
	return IntProperty{tr: tr, path: path}
}

func newRangedIntProperty(tr transport.Transport, path string, bounds scpi.IntRange) IntProperty {
	return IntProperty{tr: tr, path: path, bounds: &bounds}
}

// Get queries the current value from the instrument.
func (p IntProperty) Get() (int, error) {
	resp, err := p.tr.Query(scpi.Query(p.path))
	if err != nil {
		return 0, err
	}
	return scpi.DecodeInt(resp)
}

// Set validates v against the property's bounds and writes it. An
// out-of-range value fails with scpi.ErrOutOfRange before any
// transport call.
func (p IntProperty) Set(v int) error {
	if p.bounds != nil {
		if err := p.bounds.Validate(v); err != nil {
			return err
		}
	}
	return p.tr.Write(scpi.Set(p.path, scpi.EncodeInt(v)))
}

// FloatProperty binds a float attribute to its command path,
// optionally validated against a range or value set before writing.
type FloatProperty struct {
	tr   transport.Transport
	path string
	rule floatRule
}

func newFloatProperty(tr transport.Transport, path string) FloatProperty {
	return FloatProperty{tr: tr, path: path}
}

func newRangedFloatProperty(tr transport.Transport, path string, rule floatRule) FloatProperty {
	return FloatProperty{tr: tr, path: path, rule: rule}
}

// Get queries the current value from the instrument. The instrument's
// numeric sentinels decode to NaN and ±Inf.
func (p FloatProperty) Get() (float64, error) {
	resp, err := p.tr.Query(scpi.Query(p.path))
	if err != nil {
		return 0, err
	}
	return scpi.DecodeFloat(resp)
}

// Set validates v against the property's rule and writes it in the
// instrument's own notation.
func (p FloatProperty) Set(v float64) error {
	if p.rule != nil {
		if err := p.rule.Validate(v); err != nil {
			return err
		}
	}
	return p.tr.Write(scpi.Set(p.path, scpi.EncodeFloat(v)))
}

// EnumProperty binds an enumerated attribute to its command path. The
// enum table validates on Set and decodes on Get.
type EnumProperty[T comparable] struct {
	tr   transport.Transport
	path string
	enum *scpi.Enum[T]
}

func newEnumProperty[T comparable](tr transport.Transport, path string, enum *scpi.Enum[T]) EnumProperty[T] {
	return EnumProperty[T]{tr: tr, path: path, enum: enum}
}

// Get queries the current value and decodes the token
// case-insensitively.
func (p EnumProperty[T]) Get() (T, error) {
	resp, err := p.tr.Query(scpi.Query(p.path))
	if err != nil {
		var zero T
		return zero, err
	}
	return p.enum.Decode(resp)
}

// Set writes the token for v. A value outside the declared set fails
// with scpi.ErrInvalidValue before any transport call.
func (p EnumProperty[T]) Set(v T) error {
	tok, err := p.enum.Encode(v)
	if err != nil {
		return err
	}
	return p.tr.Write(scpi.Set(p.path, tok))
}

// Tokens returns the wire tokens this property accepts, sorted.
func (p EnumProperty[T]) Tokens() []string {
	return p.enum.Tokens()
}

// RawProperty exposes an attribute in its wire form, for attributes
// whose value set is mixed (:ACQuire:MDEPth answers a point count or
// AUTO).
type RawProperty struct {
	tr   transport.Transport
	path string
}

func newRawProperty(tr transport.Transport, path string) RawProperty {
	return RawProperty{tr: tr, path: path}
}

// Get queries the current value as the instrument sent it.
func (p RawProperty) Get() (string, error) {
	return p.tr.Query(scpi.Query(p.path))
}

// Set writes the value verbatim.
func (p RawProperty) Set(v string) error {
	return p.tr.Write(scpi.Set(p.path, v))
}

// BoolReading binds a query-only boolean attribute.
type BoolReading struct {
	tr   transport.Transport
	path string
}

func newBoolReading(tr transport.Transport, path string) BoolReading {
	return BoolReading{tr: tr, path: path}
}

// Get queries the current value from the instrument.
func (r BoolReading) Get() (bool, error) {
	resp, err := r.tr.Query(scpi.Query(r.path))
	if err != nil {
		return false, err
	}
	return scpi.DecodeBool(resp)
}

// IntReading binds a query-only integer attribute.
type IntReading struct {
	tr   transport.Transport
	path string
}

func newIntReading(tr transport.Transport, path string) IntReading {
	return IntReading{tr: tr, path: path}
}

// Get queries the current value from the instrument.
func (r IntReading) Get() (int, error) {
	resp, err := r.tr.Query(scpi.Query(r.path))
	if err != nil {
		return 0, err
	}
	return scpi.DecodeInt(resp)
}

// FloatReading binds a query-only float attribute.
type FloatReading struct {
	tr   transport.Transport
	path string
}

func newFloatReading(tr transport.Transport, path string) FloatReading {
	return FloatReading{tr: tr, path: path}
}

// Get queries the current value from the instrument.
func (r FloatReading) Get() (float64, error) {
	resp, err := r.tr.Query(scpi.Query(r.path))
	if err != nil {
		return 0, err
	}
	return scpi.DecodeFloat(resp)
}

// EnumReading binds a query-only enumerated attribute.
type EnumReading[T comparable] struct {
	tr   transport.Transport
	path string
	enum *scpi.Enum[T]
}

func newEnumReading[T comparable](tr transport.Transport, path string, enum *scpi.Enum[T]) EnumReading[T] {
	return EnumReading[T]{tr: tr, path: path, enum: enum}
}

// Get queries the current value and decodes the token
// case-insensitively.
func (r EnumReading[T]) Get() (T, error) {
	resp, err := r.tr.Query(scpi.Query(r.path))
	if err != nil {
		var zero T
		return zero, err
	}
	return r.enum.Decode(resp)
}

// Action binds a parameterless command, typically mirroring a front
// panel key.
type Action struct {
	tr   transport.Transport
	path string
}

func newAction(tr transport.Transport, path string) Action {
	return Action{tr: tr, path: path}
}

// Invoke sends the command. Exactly one write, no query.
func (a Action) Invoke() error {
	return a.tr.Write(a.path)
}
