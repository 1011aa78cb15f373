package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Timebase binds the horizontal timebase (:TIMebase).
type Timebase struct {
	// Mode is the horizontal timebase mode (:MODE).
	Mode EnumProperty[TimebaseMode]

	// Offset is the main timebase offset in seconds (:OFFSet).
	Offset FloatProperty

	// Scale is the main timebase scale in seconds per division
	// (:SCALe).
	Scale FloatProperty

	// Delay is the delayed sweep (:DELay).
	Delay TimebaseDelay
}

// TimebaseDelay binds the delayed sweep (:TIMebase:DELay).
type TimebaseDelay struct {
	// Enable switches the delayed sweep on (:ENABle).
	Enable BoolProperty

	// Offset is the delayed timebase offset in seconds (:OFFSet).
	Offset FloatProperty

	// Scale is the delayed timebase scale in seconds per division
	// (:SCALe).
	Scale FloatProperty
}

func newTimebase(tr transport.Transport) *Timebase {
	prefix := ":TIM"
	delay := scpi.Join(prefix, "DEL")
	return &Timebase{
		Mode:   newEnumProperty(tr, scpi.Join(prefix, "MODE"), timebaseModes),
		Offset: newFloatProperty(tr, scpi.Join(prefix, "OFFS")),
		Scale:  newFloatProperty(tr, scpi.Join(prefix, "SCAL")),
		Delay: TimebaseDelay{
			Enable: newBoolProperty(tr, scpi.Join(delay, "ENAB")),
			Offset: newFloatProperty(tr, scpi.Join(delay, "OFFS")),
			Scale:  newFloatProperty(tr, scpi.Join(delay, "SCAL")),
		},
	}
}
