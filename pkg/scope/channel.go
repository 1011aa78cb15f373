package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/capability"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Channel binds one analog input channel (:CHANnel<n>). Numeric bounds
// come from the capability profile; they describe the instrument's
// widest case, the firmware further narrows some of them depending on
// the probe ratio and scale currently set.
type Channel struct {
	index int

	// BandwidthLimit is the analog bandwidth limit (:BWLimit).
	BandwidthLimit EnumProperty[BandwidthLimit]

	// Coupling is the input coupling (:COUPling).
	Coupling EnumProperty[Coupling]

	// Display enables the channel on screen (:DISPlay).
	Display BoolProperty

	// Invert enables waveform invert (:INVert).
	Invert BoolProperty

	// Offset is the vertical offset in volts (:OFFSet).
	Offset FloatProperty

	// Range is the full vertical range in volts, eight divisions
	// (:RANGe).
	Range FloatProperty

	// DelayCalibration is the deskew time in seconds (:TCAL).
	DelayCalibration FloatProperty

	// Scale is the vertical scale in volts per division (:SCALe).
	Scale FloatProperty

	// Probe is the probe attenuation ratio (:PROBe). Only the
	// instrument's discrete steps are accepted.
	Probe FloatProperty

	// Unit is the amplitude display unit (:UNITs).
	Unit EnumProperty[VerticalUnit]

	// Vernier enables fine adjustment of the vertical scale
	// (:VERNier).
	Vernier BoolProperty
}

func newChannel(tr transport.Transport, index int, p capability.Profile) *Channel {
	prefix := scpi.Join(scpi.Indexed("CHAN", index))

	bwl := bandwidthLimits
	if len(p.BandwidthLimits) > 0 {
		bwl = bandwidthLimits.RestrictTokens("bandwidth limit", p.BandwidthLimits)
	}

	return &Channel{
		index:          index,
		BandwidthLimit: newEnumProperty(tr, scpi.Join(prefix, "BWL"), bwl),
		Coupling:       newEnumProperty(tr, scpi.Join(prefix, "COUP"), couplings),
		Display:        newBoolProperty(tr, scpi.Join(prefix, "DISP")),
		Invert:         newBoolProperty(tr, scpi.Join(prefix, "INV")),
		Offset: newRangedFloatProperty(tr, scpi.Join(prefix, "OFFS"), scpi.FloatRange{
			Name: "vertical offset",
			Min:  -p.VerticalOffsetMax,
			Max:  p.VerticalOffsetMax,
		}),
		Range: newRangedFloatProperty(tr, scpi.Join(prefix, "RANG"), scpi.FloatRange{
			Name: "vertical range",
			Min:  8 * p.VerticalScaleMin,
			Max:  8 * p.VerticalScaleMax,
		}),
		DelayCalibration: newFloatProperty(tr, scpi.Join(prefix, "TCAL")),
		Scale: newRangedFloatProperty(tr, scpi.Join(prefix, "SCAL"), scpi.FloatRange{
			Name: "vertical scale",
			Min:  p.VerticalScaleMin,
			Max:  p.VerticalScaleMax,
		}),
		Probe: newRangedFloatProperty(tr, scpi.Join(prefix, "PROB"), scpi.FloatSet{
			Name:   "probe ratio",
			Values: p.ProbeRatios,
		}),
		Unit:    newEnumProperty(tr, scpi.Join(prefix, "UNIT"), verticalUnits),
		Vernier: newBoolProperty(tr, scpi.Join(prefix, "VERN")),
	}
}

// Index returns the 1-based channel number.
func (c *Channel) Index() int { return c.index }
