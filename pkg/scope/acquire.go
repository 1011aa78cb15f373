package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Acquire binds the acquisition subsystem (:ACQuire).
type Acquire struct {
	// Type is the acquisition mode (:TYPE).
	Type EnumProperty[AcquireType]

	// Averages is the average count in average mode (:AVERages). The
	// firmware accepts powers of two only.
	Averages IntProperty

	// SampleRate is the current sample rate in Sa/s (:SRATe, query
	// only).
	SampleRate FloatReading

	// MemoryDepth is the memory depth in points (:MDEPth). The value
	// set depends on the number of enabled channels and includes the
	// token AUTO, so it is exposed in wire form.
	MemoryDepth RawProperty
}

func newAcquire(tr transport.Transport) *Acquire {
	prefix := ":ACQ"
	return &Acquire{
		Type: newEnumProperty(tr, scpi.Join(prefix, "TYPE"), acquireTypes),
		Averages: newRangedIntProperty(tr, scpi.Join(prefix, "AVER"), scpi.IntRange{
			Name: "average count",
			Min:  2,
			Max:  1024,
		}),
		SampleRate:  newFloatReading(tr, scpi.Join(prefix, "SRAT")),
		MemoryDepth: newRawProperty(tr, scpi.Join(prefix, "MDEP")),
	}
}
