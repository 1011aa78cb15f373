package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		model        string
		wantFound    bool
		wantChannels int
		wantMHz      int
	}{
		{"DS1054Z", true, 4, 50},
		{"ds1104z", true, 4, 100},
		{" DS1074Z Plus ", true, 4, 70},
		{"MSO1104Z", true, 4, 100},
		{"DS2072A", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			p, ok := Lookup(tt.model)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantChannels, p.Channels)
				assert.Equal(t, tt.wantMHz, p.BandwidthMHz)
				assert.Equal(t, 10, p.ReferenceSlots)
			}
		})
	}
}

func TestDefaultProfileIsUsable(t *testing.T) {
	p := Default()
	assert.Equal(t, 4, p.Channels)
	assert.Equal(t, 10, p.ReferenceSlots)
	assert.NotEmpty(t, p.BandwidthLimits)
	assert.NotEmpty(t, p.ProbeRatios)
}

func TestParseProfiles(t *testing.T) {
	data := []byte(`
profiles:
  - model: DS1054Z-EDU
    description: education variant
    channels: 4
    bandwidthMHz: 50
    referenceSlots: 10
    bandwidthLimits: [OFF, 20M]
    probeRatios: [1, 10]
    verticalScaleMin: 0.001
    verticalScaleMax: 100
    verticalOffsetMax: 1000
    holdoffMin: 16e-9
    holdoffMax: 10
`)

	profiles, err := ParseProfiles(data)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "DS1054Z-EDU", p.Model)
	assert.Equal(t, []string{"OFF", "20M"}, p.BandwidthLimits)
	assert.Equal(t, []float64{1, 10}, p.ProbeRatios)
	assert.Equal(t, 16e-9, p.HoldoffMin)
}

func TestParseProfilesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing model", "profiles:\n  - channels: 4\n    referenceSlots: 10\n"},
		{"zero channels", "profiles:\n  - model: X\n    channels: 0\n    referenceSlots: 10\n"},
		{"zero slots", "profiles:\n  - model: X\n    channels: 4\n    referenceSlots: 0\n"},
		{"bad yaml", "profiles: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfiles([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
