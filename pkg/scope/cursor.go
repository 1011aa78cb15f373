package scope

import (
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Cursor position bounds in screen pixels.
var (
	cursorXBounds = scpi.IntRange{Name: "cursor horizontal position", Min: 5, Max: 594}
	cursorYBounds = scpi.IntRange{Name: "cursor vertical position", Min: 5, Max: 394}
)

// Cursor binds the cursor subsystem (:CURSor).
type Cursor struct {
	// Mode is the cursor measurement mode (:MODE).
	Mode EnumProperty[CursorMode]

	// Manual is the manual cursor mode (:MANual).
	Manual CursorManual

	// Track is the track cursor mode (:TRACk).
	Track CursorTrack
}

// CursorManual binds the manual cursor mode (:CURSor:MANual). Position
// setters place cursors in screen pixels; the value readings report
// the measurement in the unit currently selected.
type CursorManual struct {
	// Type selects horizontal or vertical cursors (:TYPE).
	Type EnumProperty[CursorType]

	// Source is the measured channel (:SOURce).
	Source EnumProperty[Source]

	// HorizontalUnit is the unit of X values (:TUNit).
	HorizontalUnit EnumProperty[CursorHorizontalUnit]

	// VerticalUnit is the unit of Y values (:VUNit).
	VerticalUnit EnumProperty[CursorVerticalUnit]

	// AX and BX are the horizontal cursor positions (:AX, :BX).
	AX IntProperty
	BX IntProperty

	// AY and BY are the vertical cursor positions (:AY, :BY).
	AY IntProperty
	BY IntProperty

	// AXValue, AYValue, BXValue and BYValue are the measured cursor
	// values (:AXValue, :AYValue, :BXValue, :BYValue, query only).
	AXValue FloatReading
	AYValue FloatReading
	BXValue FloatReading
	BYValue FloatReading

	// XDelta is BX-AX (:XDELta, query only).
	XDelta FloatReading

	// XDeltaInverse is 1/|BX-AX| (:IXDELta, query only).
	XDeltaInverse FloatReading

	// YDelta is BY-AY (:YDELta, query only).
	YDelta FloatReading
}

// CursorTrack binds the track cursor mode (:CURSor:TRACk).
type CursorTrack struct {
	// Source1 and Source2 are the channels cursor A and B follow
	// (:SOURce1, :SOURce2).
	Source1 EnumProperty[Source]
	Source2 EnumProperty[Source]

	// AX and BX are the horizontal cursor positions (:AX, :BX).
	AX IntProperty
	BX IntProperty

	// AY and BY are the vertical cursor positions (:AY, :BY).
	AY IntProperty
	BY IntProperty

	// AXValue, AYValue, BXValue and BYValue are the measured cursor
	// values (query only).
	AXValue FloatReading
	AYValue FloatReading
	BXValue FloatReading
	BYValue FloatReading

	// XDelta is BX-AX (query only).
	XDelta FloatReading

	// XDeltaInverse is 1/|BX-AX| (query only).
	XDeltaInverse FloatReading

	// YDelta is BY-AY (query only).
	YDelta FloatReading
}

func newCursor(tr transport.Transport) *Cursor {
	prefix := ":CURS"
	manual := scpi.Join(prefix, "MAN")
	track := scpi.Join(prefix, "TRAC")
	return &Cursor{
		Mode: newEnumProperty(tr, scpi.Join(prefix, "MODE"), cursorModes),
		Manual: CursorManual{
			Type:           newEnumProperty(tr, scpi.Join(manual, "TYPE"), cursorTypes),
			Source:         newEnumProperty(tr, scpi.Join(manual, "SOUR"), manualCursorSources),
			HorizontalUnit: newEnumProperty(tr, scpi.Join(manual, "TUN"), cursorHorizontalUnits),
			VerticalUnit:   newEnumProperty(tr, scpi.Join(manual, "VUN"), cursorVerticalUnits),
			AX:             newRangedIntProperty(tr, scpi.Join(manual, "AX"), cursorXBounds),
			BX:             newRangedIntProperty(tr, scpi.Join(manual, "BX"), cursorXBounds),
			AY:             newRangedIntProperty(tr, scpi.Join(manual, "AY"), cursorYBounds),
			BY:             newRangedIntProperty(tr, scpi.Join(manual, "BY"), cursorYBounds),
			AXValue:        newFloatReading(tr, scpi.Join(manual, "AXV")),
			AYValue:        newFloatReading(tr, scpi.Join(manual, "AYV")),
			BXValue:        newFloatReading(tr, scpi.Join(manual, "BXV")),
			BYValue:        newFloatReading(tr, scpi.Join(manual, "BYV")),
			XDelta:         newFloatReading(tr, scpi.Join(manual, "XDEL")),
			XDeltaInverse:  newFloatReading(tr, scpi.Join(manual, "IXDEL")),
			YDelta:         newFloatReading(tr, scpi.Join(manual, "YDEL")),
		},
		Track: CursorTrack{
			Source1:       newEnumProperty(tr, scpi.Join(track, "SOUR1"), trackCursorSources),
			Source2:       newEnumProperty(tr, scpi.Join(track, "SOUR2"), trackCursorSources),
			AX:            newRangedIntProperty(tr, scpi.Join(track, "AX"), cursorXBounds),
			BX:            newRangedIntProperty(tr, scpi.Join(track, "BX"), cursorXBounds),
			AY:            newRangedIntProperty(tr, scpi.Join(track, "AY"), cursorYBounds),
			BY:            newRangedIntProperty(tr, scpi.Join(track, "BY"), cursorYBounds),
			AXValue:       newFloatReading(tr, scpi.Join(track, "AXV")),
			AYValue:       newFloatReading(tr, scpi.Join(track, "AYV")),
			BXValue:       newFloatReading(tr, scpi.Join(track, "BXV")),
			BYValue:       newFloatReading(tr, scpi.Join(track, "BYV")),
			XDelta:        newFloatReading(tr, scpi.Join(track, "XDEL")),
			XDeltaInverse: newFloatReading(tr, scpi.Join(track, "IXDEL")),
			YDelta:        newFloatReading(tr, scpi.Join(track, "YDEL")),
		},
	}
}
