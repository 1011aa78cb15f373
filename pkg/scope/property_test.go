package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigol-kit/rigol-go/internal/scpitest"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
)

func TestBoolPropertyRoundTrip(t *testing.T) {
	tr := scpitest.New()
	p := newBoolProperty(tr, ":CHAN1:DISP")

	require.NoError(t, p.Set(true))
	assert.Equal(t, []string{":CHAN1:DISP 1"}, tr.Writes())

	tr.Stub(":CHAN1:DISP?", "1")
	got, err := p.Get()
	require.NoError(t, err)
	assert.True(t, got)

	// The firmware answers word form on some subsystems.
	tr.Stub(":CHAN1:DISP?", "OFF")
	got, err = p.Get()
	require.NoError(t, err)
	assert.False(t, got)
}

func TestIntPropertyRejectsOutOfRangeBeforeTransport(t *testing.T) {
	tr := scpitest.New()
	p := newRangedIntProperty(tr, ":DISP:WBR", scpi.IntRange{Name: "waveform brightness", Min: 0, Max: 100})

	err := p.Set(101)
	assert.True(t, errors.Is(err, scpi.ErrOutOfRange), "error = %v", err)
	assert.Zero(t, tr.Calls(), "no command may reach the wire")

	require.NoError(t, p.Set(50))
	assert.Equal(t, []string{":DISP:WBR 50"}, tr.Writes())
}

func TestFloatPropertyEncodesInstrumentNotation(t *testing.T) {
	tr := scpitest.New()
	p := newFloatProperty(tr, ":TIM:SCAL")

	require.NoError(t, p.Set(5e-9))
	assert.Equal(t, []string{":TIM:SCAL 5.0000e-09"}, tr.Writes())
	assert.Empty(t, tr.Queries(), "a write must not trigger a read back")
}

func TestFloatPropertyDecodesSentinels(t *testing.T) {
	tr := scpitest.New()
	p := newFloatProperty(tr, ":MEAS:COUN:VAL")

	tr.Stub(":MEAS:COUN:VAL?", "9.91E37")
	got, err := p.Get()
	require.NoError(t, err)
	assert.True(t, got != got, "sentinel must decode to NaN")
}

func TestEnumPropertyRejectsInvalidValueBeforeTransport(t *testing.T) {
	tr := scpitest.New()
	p := newEnumProperty(tr, ":TRIG:EDG:SLOP", triggerSlopes)

	err := p.Set(TriggerSlope(99))
	assert.True(t, errors.Is(err, scpi.ErrInvalidValue), "error = %v", err)
	assert.Zero(t, tr.Calls(), "no command may reach the wire")

	require.NoError(t, p.Set(SlopeEither))
	assert.Equal(t, []string{":TRIG:EDG:SLOP RFAL"}, tr.Writes())
}

func TestEnumPropertyDecodesCaseInsensitively(t *testing.T) {
	tr := scpitest.New()
	p := newEnumProperty(tr, ":TRIG:EDG:SLOP", triggerSlopes)

	tr.Stub(":TRIG:EDG:SLOP?", "pos")
	got, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, SlopeRising, got)

	tr.Stub(":TRIG:EDG:SLOP?", "BOTH")
	_, err = p.Get()
	assert.True(t, errors.Is(err, scpi.ErrMalformedResponse), "error = %v", err)
}

func TestActionIssuesSingleWrite(t *testing.T) {
	tr := scpitest.New()
	a := newAction(tr, ":RUN")

	require.NoError(t, a.Invoke())
	assert.Equal(t, []string{":RUN"}, tr.Writes())
	assert.Equal(t, 1, tr.Calls())
}

func TestPropertyPropagatesTransportFailure(t *testing.T) {
	tr := scpitest.New()
	tr.FailWith(scpi.ErrCommunication)
	p := newBoolProperty(tr, ":CHAN1:DISP")

	_, err := p.Get()
	assert.True(t, errors.Is(err, scpi.ErrCommunication), "error = %v", err)
	assert.True(t, errors.Is(p.Set(true), scpi.ErrCommunication))
}
