package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Display binds the display subsystem (:DISPlay).
type Display struct {
	// Clear clears all waveforms on the screen (:CLEar).
	Clear Action

	// Type is the waveform drawing mode (:TYPE).
	Type EnumProperty[DisplayType]

	// Persistence is the persistence time (:GRADing:TIME).
	Persistence EnumProperty[DisplayPersistence]

	// WaveformBrightness is the waveform brightness in percent
	// (:WBRightness).
	WaveformBrightness IntProperty

	// Grid is the screen grid style (:GRID).
	Grid EnumProperty[DisplayGrid]

	// GridBrightness is the grid brightness in percent
	// (:GBRightness).
	GridBrightness IntProperty
}

func newDisplay(tr transport.Transport) *Display {
	prefix := ":DISP"
	return &Display{
		Clear:       newAction(tr, scpi.Join(prefix, "CLE")),
		Type:        newEnumProperty(tr, scpi.Join(prefix, "TYPE"), displayTypes),
		Persistence: newEnumProperty(tr, scpi.Join(prefix, "GRAD"), displayPersistences),
		WaveformBrightness: newRangedIntProperty(tr, scpi.Join(prefix, "WBR"), scpi.IntRange{
			Name: "waveform brightness",
			Min:  0,
			Max:  100,
		}),
		Grid: newEnumProperty(tr, scpi.Join(prefix, "GRID"), displayGrids),
		GridBrightness: newRangedIntProperty(tr, scpi.Join(prefix, "GBR"), scpi.IntRange{
			Name: "grid brightness",
			Min:  0,
			Max:  100,
		}),
	}
}
