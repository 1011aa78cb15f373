package scpi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slope uint8

const (
	slopeRise slope = iota
	slopeFall
	slopeBoth
)

func slopeEnum() *Enum[slope] {
	return NewEnum("slope", map[slope]string{
		slopeRise: "POS",
		slopeFall: "NEG",
		slopeBoth: "RFAL",
	})
}

func TestEnumRoundTrip(t *testing.T) {
	e := slopeEnum()

	// decode(encode(v)) == v for every declared member.
	for _, v := range []slope{slopeRise, slopeFall, slopeBoth} {
		tok, err := e.Encode(v)
		require.NoError(t, err)
		got, err := e.Decode(tok)
		require.NoError(t, err)
		assert.Equal(t, v, got, "round trip via %q", tok)
	}
}

func TestEnumDecodeCaseInsensitive(t *testing.T) {
	e := slopeEnum()
	for _, in := range []string{"POS", "pos", "Pos", " POS\n"} {
		got, err := e.Decode(in)
		require.NoError(t, err, "Decode(%q)", in)
		assert.Equal(t, slopeRise, got)
	}
}

func TestEnumEncodeInvalidValue(t *testing.T) {
	e := slopeEnum()
	_, err := e.Encode(slope(99))
	assert.True(t, errors.Is(err, ErrInvalidValue), "error = %v", err)
}

func TestEnumDecodeUnknownToken(t *testing.T) {
	e := slopeEnum()
	_, err := e.Decode("SIDEWAYS")
	assert.True(t, errors.Is(err, ErrMalformedResponse), "error = %v", err)
}

func TestEnumRestrict(t *testing.T) {
	e := slopeEnum()
	narrow := e.Restrict("edge slope", slopeRise, slopeFall)

	_, err := narrow.Encode(slopeBoth)
	assert.True(t, errors.Is(err, ErrInvalidValue), "restricted member must not encode, got %v", err)

	tok, err := narrow.Encode(slopeRise)
	require.NoError(t, err)
	assert.Equal(t, "POS", tok)

	// The parent table is unchanged.
	assert.True(t, e.Contains(slopeBoth))
}

func TestEnumRestrictTokens(t *testing.T) {
	e := slopeEnum()
	narrow := e.RestrictTokens("edge slope", []string{"pos", "NEG"})

	assert.True(t, narrow.Contains(slopeRise))
	assert.True(t, narrow.Contains(slopeFall))
	assert.False(t, narrow.Contains(slopeBoth))
}

func TestEnumToken(t *testing.T) {
	e := slopeEnum()
	assert.Equal(t, "RFAL", e.Token(slopeBoth))
	assert.Equal(t, "UNKNOWN", e.Token(slope(42)))
}

func TestEnumTokensSorted(t *testing.T) {
	e := slopeEnum()
	assert.Equal(t, []string{"NEG", "POS", "RFAL"}, e.Tokens())
}
