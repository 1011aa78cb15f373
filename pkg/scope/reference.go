package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Reference binds one reference waveform slot (:REF<n>).
type Reference struct {
	slot int

	// Enable switches the slot on (:ENABle).
	Enable BoolProperty

	// VerticalScale is the slot's vertical scale (:VSCale).
	VerticalScale FloatProperty

	// VerticalOffset is the slot's vertical offset (:VOFFset).
	VerticalOffset FloatProperty

	// Color is the slot's display color (:COLor).
	Color EnumProperty[ReferenceColor]

	// Save stores the currently selected source into the slot
	// (:SAVe). Exactly one write.
	Save Action

	// Reset restores the slot's vertical scale and offset (:RESet).
	Reset Action

	// Current makes this the current slot (:CURRent).
	Current Action
}

func newReference(tr transport.Transport, slot int) *Reference {
	prefix := scpi.Join(scpi.Indexed("REF", slot))
	return &Reference{
		slot:           slot,
		Enable:         newBoolProperty(tr, scpi.Join(prefix, "ENAB")),
		VerticalScale:  newFloatProperty(tr, scpi.Join(prefix, "VSC")),
		VerticalOffset: newFloatProperty(tr, scpi.Join(prefix, "VOFF")),
		Color:          newEnumProperty(tr, scpi.Join(prefix, "COL"), referenceColors),
		Save:           newAction(tr, scpi.Join(prefix, "SAV")),
		Reset:          newAction(tr, scpi.Join(prefix, "RES")),
		Current:        newAction(tr, scpi.Join(prefix, "CURR")),
	}
}

// Slot returns the 1-based slot number.
func (r *Reference) Slot() int { return r.slot }
