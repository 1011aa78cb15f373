package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/capability"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Trigger binds the trigger subsystem (:TRIGger).
type Trigger struct {
	// Mode is the trigger type (:MODE).
	Mode EnumProperty[TriggerMode]

	// Coupling is the trigger coupling (:COUPling).
	Coupling EnumProperty[TriggerCoupling]

	// Status is the current acquisition state (:STATus, query only).
	Status EnumReading[TriggerStatus]

	// Sweep is the sweep mode (:SWEep).
	Sweep EnumProperty[TriggerSweep]

	// Holdoff is the trigger holdoff time in seconds (:HOLDoff).
	Holdoff FloatProperty

	// NoiseReject enables noise rejection (:NREJect).
	NoiseReject BoolProperty

	// Position is the trigger position in internal memory
	// (:POSition, query only). -2 means not triggered, -1 means
	// triggered outside the internal memory.
	Position IntReading

	// Edge is the edge trigger (:EDGe).
	Edge TriggerEdge
}

// TriggerEdge binds the edge trigger (:TRIGger:EDGe).
type TriggerEdge struct {
	// Source is the trigger source (:SOURce).
	Source EnumProperty[Source]

	// Slope is the edge type (:SLOPe).
	Slope EnumProperty[TriggerSlope]

	// Level is the trigger level in the amplitude unit of the source
	// (:LEVel). The legal window depends on the source's current
	// scale and offset, so the firmware has the final say.
	Level FloatProperty
}

func newTrigger(tr transport.Transport, p capability.Profile) *Trigger {
	prefix := ":TRIG"
	edge := scpi.Join(prefix, "EDG")
	return &Trigger{
		Mode:     newEnumProperty(tr, scpi.Join(prefix, "MODE"), triggerModes),
		Coupling: newEnumProperty(tr, scpi.Join(prefix, "COUP"), triggerCouplings),
		Status:   newEnumReading(tr, scpi.Join(prefix, "STAT"), triggerStatuses),
		Sweep:    newEnumProperty(tr, scpi.Join(prefix, "SWE"), triggerSweeps),
		Holdoff: newRangedFloatProperty(tr, scpi.Join(prefix, "HOLD"), scpi.FloatRange{
			Name: "trigger holdoff",
			Min:  p.HoldoffMin,
			Max:  p.HoldoffMax,
		}),
		NoiseReject: newBoolProperty(tr, scpi.Join(prefix, "NREJ")),
		Position:    newIntReading(tr, scpi.Join(prefix, "POS")),
		Edge: TriggerEdge{
			Source: newEnumProperty(tr, scpi.Join(edge, "SOUR"), edgeTriggerSources),
			Slope:  newEnumProperty(tr, scpi.Join(edge, "SLOP"), triggerSlopes),
			Level:  newFloatProperty(tr, scpi.Join(edge, "LEV")),
		},
	}
}
