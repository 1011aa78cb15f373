package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigol-kit/rigol-go/internal/scpitest"
	"github.com/rigol-kit/rigol-go/pkg/capability"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
)

func TestChannelScaleWrite(t *testing.T) {
	tr := scpitest.New()
	ch := newChannel(tr, 1, capability.Default())

	require.NoError(t, ch.Scale.Set(1))
	assert.Equal(t, []string{":CHAN1:SCAL 1.0000e+00"}, tr.Writes())
	assert.Empty(t, tr.Queries())
}

func TestChannelPathsCarryIndex(t *testing.T) {
	tr := scpitest.New()
	ch := newChannel(tr, 3, capability.Default())

	require.NoError(t, ch.Coupling.Set(CouplingAC))
	require.NoError(t, ch.Invert.Set(true))
	assert.Equal(t, []string{":CHAN3:COUP AC", ":CHAN3:INV 1"}, tr.Writes())
}

func TestChannelScaleOutOfRange(t *testing.T) {
	tr := scpitest.New()
	ch := newChannel(tr, 1, capability.Default())

	err := ch.Scale.Set(500)
	assert.True(t, errors.Is(err, scpi.ErrOutOfRange), "error = %v", err)
	assert.Zero(t, tr.Calls())
}

func TestChannelProbeStepsOnly(t *testing.T) {
	tr := scpitest.New()
	ch := newChannel(tr, 2, capability.Default())

	err := ch.Probe.Set(3)
	assert.True(t, errors.Is(err, scpi.ErrOutOfRange), "error = %v", err)
	assert.Zero(t, tr.Calls())

	require.NoError(t, ch.Probe.Set(10))
	assert.Equal(t, []string{":CHAN2:PROB 1.0000e+01"}, tr.Writes())
}

func TestChannelBandwidthLimitFollowsProfile(t *testing.T) {
	tr := scpitest.New()
	p := capability.Default()
	p.BandwidthLimits = []string{"OFF"}
	ch := newChannel(tr, 1, p)

	err := ch.BandwidthLimit.Set(BandwidthLimit20M)
	assert.True(t, errors.Is(err, scpi.ErrInvalidValue), "error = %v", err)
	assert.Zero(t, tr.Calls())

	require.NoError(t, ch.BandwidthLimit.Set(BandwidthLimitOff))
	assert.Equal(t, []string{":CHAN1:BWL OFF"}, tr.Writes())
}

func TestChannelDisplayRead(t *testing.T) {
	tr := scpitest.New()
	ch := newChannel(tr, 1, capability.Default())

	tr.Stub(":CHAN1:DISP?", "1")
	on, err := ch.Display.Get()
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{":CHAN1:DISP?"}, tr.Queries())
}
