package scope

import (
	"fmt"
	"strings"

	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// maxMemoryPoints is the deepest memory of the family (24 Mpts).
const maxMemoryPoints = 24000000

// Waveform binds the waveform readout subsystem (:WAVeform). The
// scaling parameters and the preamble are exposed; bulk sample
// transfer is out of scope.
type Waveform struct {
	tr     transport.Transport
	prefix string

	// Source is the channel whose data is read (:SOURce).
	Source EnumProperty[Source]

	// Mode is the reading mode (:MODE).
	Mode EnumProperty[WaveformMode]

	// Format is the data format (:FORMat).
	Format EnumProperty[WaveformFormat]

	// XIncrement is the time between neighboring points (:XINCrement,
	// query only).
	XIncrement FloatReading

	// XOrigin is the start time of the data (:XORigin, query only).
	XOrigin FloatReading

	// XReference is the reference time (:XREFerence, query only).
	XReference FloatReading

	// YIncrement is the amplitude per level step (:YINCrement, query
	// only).
	YIncrement FloatReading

	// YOrigin is the vertical offset relative to the reference
	// position (:YORigin, query only).
	YOrigin FloatReading

	// YReference is the vertical reference position (:YREFerence,
	// query only).
	YReference IntReading

	// Start is the first point of a data read (:STARt).
	Start IntProperty

	// Stop is the last point of a data read (:STOP).
	Stop IntProperty
}

func newWaveform(tr transport.Transport) *Waveform {
	prefix := ":WAV"
	points := scpi.IntRange{Name: "waveform point", Min: 1, Max: maxMemoryPoints}
	return &Waveform{
		tr:         tr,
		prefix:     prefix,
		Source:     newEnumProperty(tr, scpi.Join(prefix, "SOUR"), waveformSources),
		Mode:       newEnumProperty(tr, scpi.Join(prefix, "MODE"), waveformModes),
		Format:     newEnumProperty(tr, scpi.Join(prefix, "FORM"), waveformFormats),
		XIncrement: newFloatReading(tr, scpi.Join(prefix, "XINC")),
		XOrigin:    newFloatReading(tr, scpi.Join(prefix, "XOR")),
		XReference: newFloatReading(tr, scpi.Join(prefix, "XREF")),
		YIncrement: newFloatReading(tr, scpi.Join(prefix, "YINC")),
		YOrigin:    newFloatReading(tr, scpi.Join(prefix, "YOR")),
		YReference: newIntReading(tr, scpi.Join(prefix, "YREF")),
		Start:      newRangedIntProperty(tr, scpi.Join(prefix, "STAR"), points),
		Stop:       newRangedIntProperty(tr, scpi.Join(prefix, "STOP"), points),
	}
}

// Preamble holds the waveform parameters of the selected source, as
// reported in one shot by :WAVeform:PREamble?.
type Preamble struct {
	Format WaveformFormat
	Mode   WaveformMode

	// Points is the number of points in the selected record.
	Points int

	// Count is the number of averages in average mode, 1 otherwise.
	Count int

	XIncrement float64
	XOrigin    float64
	XReference float64
	YIncrement float64
	YOrigin    float64

	// YReference is the vertical reference position.
	YReference int
}

// preamble field positions.
var preambleFormats = map[string]WaveformFormat{
	"0": FormatByte,
	"1": FormatWord,
	"2": FormatASCII,
}

var preambleModes = map[string]WaveformMode{
	"0": WaveformNormal,
	"1": WaveformMaximum,
	"2": WaveformRaw,
}

// Preamble queries all waveform parameters in one round trip
// (:PREamble?).
func (w *Waveform) Preamble() (Preamble, error) {
	resp, err := w.tr.Query(scpi.Query(scpi.Join(w.prefix, "PRE")))
	if err != nil {
		return Preamble{}, err
	}
	fields := strings.Split(resp, ",")
	if len(fields) != 10 {
		return Preamble{}, fmt.Errorf("%w: preamble has %d fields, want 10", scpi.ErrMalformedResponse, len(fields))
	}

	var p Preamble
	var ok bool
	if p.Format, ok = preambleFormats[strings.TrimSpace(fields[0])]; !ok {
		return Preamble{}, fmt.Errorf("%w: unknown preamble format %q", scpi.ErrMalformedResponse, fields[0])
	}
	if p.Mode, ok = preambleModes[strings.TrimSpace(fields[1])]; !ok {
		return Preamble{}, fmt.Errorf("%w: unknown preamble mode %q", scpi.ErrMalformedResponse, fields[1])
	}
	if p.Points, err = scpi.DecodeInt(fields[2]); err != nil {
		return Preamble{}, err
	}
	if p.Count, err = scpi.DecodeInt(fields[3]); err != nil {
		return Preamble{}, err
	}
	if p.XIncrement, err = scpi.DecodeFloat(fields[4]); err != nil {
		return Preamble{}, err
	}
	if p.XOrigin, err = scpi.DecodeFloat(fields[5]); err != nil {
		return Preamble{}, err
	}
	if p.XReference, err = scpi.DecodeFloat(fields[6]); err != nil {
		return Preamble{}, err
	}
	if p.YIncrement, err = scpi.DecodeFloat(fields[7]); err != nil {
		return Preamble{}, err
	}
	if p.YOrigin, err = scpi.DecodeFloat(fields[8]); err != nil {
		return Preamble{}, err
	}
	if p.YReference, err = scpi.DecodeInt(fields[9]); err != nil {
		return Preamble{}, err
	}
	return p, nil
}
