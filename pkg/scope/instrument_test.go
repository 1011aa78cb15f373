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

const idnDS1054Z = "RIGOL TECHNOLOGIES,DS1054Z,DS1ZA0000001,00.04.04.SP4"

func TestNewProbesIdentityOnce(t *testing.T) {
	tr := scpitest.New()
	tr.Stub("*IDN?", idnDS1054Z)

	inst, err := New(tr)
	require.NoError(t, err)

	assert.Equal(t, 1, tr.Calls(), "construction issues exactly one query")
	assert.Equal(t, "DS1054Z", inst.Identity().Model)
	assert.Equal(t, "RIGOL TECHNOLOGIES", inst.Identity().Vendor)
	assert.Equal(t, 50, inst.Profile().BandwidthMHz)
	assert.Equal(t, 4, inst.Channels())
	assert.Equal(t, 10, inst.ReferenceSlots())
}

func TestNewFallsBackToDefaultProfile(t *testing.T) {
	tr := scpitest.New()
	tr.Stub("*IDN?", "RIGOL TECHNOLOGIES,DS9999Z,DS1ZA0000002,99.99")

	inst, err := New(tr)
	require.NoError(t, err)
	assert.Equal(t, "DS9999Z", inst.Identity().Model)
	assert.Equal(t, capability.Default().Model, inst.Profile().Model)
	assert.Equal(t, 4, inst.Channels())
}

func TestNewRejectsMalformedIdentity(t *testing.T) {
	tr := scpitest.New()
	tr.Stub("*IDN?", "not an identification")

	_, err := New(tr)
	assert.True(t, errors.Is(err, scpi.ErrMalformedResponse), "error = %v", err)
}

func TestChannelIndexBounds(t *testing.T) {
	inst := NewWithProfile(scpitest.New(), capability.Default())

	for _, n := range []int{0, -1, 5} {
		_, err := inst.Channel(n)
		assert.True(t, errors.Is(err, scpi.ErrInvalidChannel), "channel %d: error = %v", n, err)
	}

	ch, err := inst.Channel(4)
	require.NoError(t, err)
	assert.Equal(t, 4, ch.Index())
}

func TestReferenceSlotBounds(t *testing.T) {
	inst := NewWithProfile(scpitest.New(), capability.Default())

	for _, n := range []int{0, 11} {
		_, err := inst.Reference(n)
		assert.True(t, errors.Is(err, scpi.ErrInvalidIndex), "slot %d: error = %v", n, err)
	}

	ref, err := inst.Reference(10)
	require.NoError(t, err)
	assert.Equal(t, 10, ref.Slot())
}

func TestFrontPanelActions(t *testing.T) {
	tr := scpitest.New()
	inst := NewWithProfile(tr, capability.Default())

	require.NoError(t, inst.Run.Invoke())
	require.NoError(t, inst.Stop.Invoke())
	require.NoError(t, inst.Single.Invoke())
	require.NoError(t, inst.ForceTrigger.Invoke())
	require.NoError(t, inst.Autoscale.Invoke())
	assert.Equal(t, []string{":RUN", ":STOP", ":SING", ":TFOR", ":AUT"}, tr.Writes())
}

func TestCommonCommands(t *testing.T) {
	tr := scpitest.New()
	inst := NewWithProfile(tr, capability.Default())

	require.NoError(t, inst.Reset.Invoke())
	require.NoError(t, inst.ClearStatus.Invoke())
	require.NoError(t, inst.EventStatusEnable.Set(32))
	assert.Equal(t, []string{"*RST", "*CLS", "*ESE 32"}, tr.Writes())

	err := inst.ServiceRequestEnable.Set(300)
	assert.True(t, errors.Is(err, scpi.ErrOutOfRange), "error = %v", err)

	tr.Stub("*OPC?", "1")
	done, err := inst.OperationComplete.Get()
	require.NoError(t, err)
	assert.True(t, done)

	tr.Stub("*STB?", "64")
	stb, err := inst.StatusByte.Get()
	require.NoError(t, err)
	assert.Equal(t, 64, stb)
}

func TestCloseClosesTransport(t *testing.T) {
	tr := scpitest.New()
	inst := NewWithProfile(tr, capability.Default())

	require.NoError(t, inst.Close())
	assert.True(t, tr.Closed())
}
