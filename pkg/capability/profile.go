package capability

import "strings"

// Profile holds the model-dependent constants for one instrument model.
// Numeric bounds are in base units (volts, seconds) at 1X probe ratio.
type Profile struct {
	// Model is the model field of the *IDN? response, e.g. "DS1054Z".
	Model string `yaml:"model"`

	// Description is a human-readable summary.
	Description string `yaml:"description,omitempty"`

	// Channels is the number of analog input channels.
	Channels int `yaml:"channels"`

	// BandwidthMHz is the analog bandwidth in MHz.
	BandwidthMHz int `yaml:"bandwidthMHz"`

	// ReferenceSlots is the number of reference waveform slots.
	ReferenceSlots int `yaml:"referenceSlots"`

	// BandwidthLimits are the legal :CHANnel<n>:BWLimit tokens.
	BandwidthLimits []string `yaml:"bandwidthLimits,flow"`

	// ProbeRatios are the legal :CHANnel<n>:PROBe steps.
	ProbeRatios []float64 `yaml:"probeRatios,flow"`

	// VerticalScaleMin/Max bound :CHANnel<n>:SCALe in V/div.
	VerticalScaleMin float64 `yaml:"verticalScaleMin"`
	VerticalScaleMax float64 `yaml:"verticalScaleMax"`

	// VerticalOffsetMax bounds :CHANnel<n>:OFFSet to ±VerticalOffsetMax
	// volts (the widest case, 10X probe at coarse scale).
	VerticalOffsetMax float64 `yaml:"verticalOffsetMax"`

	// HoldoffMin/Max bound :TRIGger:HOLDoff in seconds.
	HoldoffMin float64 `yaml:"holdoffMin"`
	HoldoffMax float64 `yaml:"holdoffMax"`
}

// defaultProbeRatios are the probe steps shared by the whole family.
var defaultProbeRatios = []float64{
	0.01, 0.02, 0.05, 0.1, 0.2, 0.5,
	1, 2, 5, 10, 20, 50, 100, 200, 500, 1000,
}

func family(model, description string, bandwidthMHz int) Profile {
	return Profile{
		Model:             model,
		Description:       description,
		Channels:          4,
		BandwidthMHz:      bandwidthMHz,
		ReferenceSlots:    10,
		BandwidthLimits:   []string{"OFF", "20M"},
		ProbeRatios:       defaultProbeRatios,
		VerticalScaleMin:  1e-3,
		VerticalScaleMax:  100,
		VerticalOffsetMax: 1000,
		HoldoffMin:        16e-9,
		HoldoffMax:        10,
	}
}

// builtin profiles, keyed by upper-cased model name.
var builtin = func() map[string]Profile {
	profiles := []Profile{
		family("DS1054Z", "4-channel 50 MHz", 50),
		family("DS1074Z", "4-channel 70 MHz", 70),
		family("DS1074Z Plus", "4-channel 70 MHz, MSO-upgradable", 70),
		family("DS1104Z", "4-channel 100 MHz", 100),
		family("DS1104Z Plus", "4-channel 100 MHz, MSO-upgradable", 100),
		family("MSO1074Z", "4-channel 70 MHz mixed-signal", 70),
		family("MSO1104Z", "4-channel 100 MHz mixed-signal", 100),
	}
	m := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		m[strings.ToUpper(p.Model)] = p
	}
	return m
}()

// Lookup returns the builtin profile for a model name (as reported in
// the *IDN? model field), compared case-insensitively.
func Lookup(model string) (Profile, bool) {
	p, ok := builtin[strings.ToUpper(strings.TrimSpace(model))]
	return p, ok
}

// Default returns the fallback profile used when the model is not
// recognized. Construction must not fail on unknown firmware; errors
// then surface lazily, per access.
func Default() Profile {
	p := family("DS1000Z", "unrecognized DS1000Z-family model", 100)
	return p
}

// Models returns the builtin model names.
func Models() []string {
	out := make([]string, 0, len(builtin))
	for _, p := range builtin {
		out = append(out, p.Model)
	}
	return out
}
