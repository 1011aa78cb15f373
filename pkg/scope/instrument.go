package scope

import (
	"fmt"
	"strings"

	"github.com/rigol-kit/rigol-go/pkg/capability"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// Identity is the parsed *IDN? response.
type Identity struct {
	Vendor   string
	Model    string
	Serial   string
	Firmware string
}

// String returns the identity in *IDN? form.
func (id Identity) String() string {
	return strings.Join([]string{id.Vendor, id.Model, id.Serial, id.Firmware}, ",")
}

func parseIdentity(s string) (Identity, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return Identity{}, fmt.Errorf("%w: identification %q has %d fields, want 4", scpi.ErrMalformedResponse, s, len(fields))
	}
	return Identity{
		Vendor:   strings.TrimSpace(fields[0]),
		Model:    strings.TrimSpace(fields[1]),
		Serial:   strings.TrimSpace(fields[2]),
		Firmware: strings.TrimSpace(fields[3]),
	}, nil
}

// Instrument is the root of the object model. All subsystems share the
// instrument's transport, which serializes command traffic, so an
// Instrument is safe for concurrent use; read-modify-write sequences
// across multiple properties still need coordination by the caller.
type Instrument struct {
	tr       transport.Transport
	profile  capability.Profile
	identity Identity

	channels   []*Channel
	references []*Reference

	// Acquire, Cursor, Display, Measure, Timebase, Trigger and
	// Waveform are the singleton subsystems.
	Acquire  *Acquire
	Cursor   *Cursor
	Display  *Display
	Measure  *Measure
	Timebase *Timebase
	Trigger  *Trigger
	Waveform *Waveform

	// ReferenceDisplay enables the reference waveform overlay
	// (:REFerence:DISPlay).
	ReferenceDisplay BoolProperty

	// Front panel key equivalents.
	Autoscale    Action // :AUToscale
	ClearScreen  Action // :CLEar
	Run          Action // :RUN
	Stop         Action // :STOP
	Single       Action // :SINGle
	ForceTrigger Action // :TFORce

	// IEEE 488.2 common commands.
	Reset                Action      // *RST
	ClearStatus          Action      // *CLS
	SetOperationComplete Action      // *OPC
	Wait                 Action      // *WAI
	OperationComplete    BoolReading // *OPC?
	SelfTest             IntReading  // *TST?
	EventStatusEnable    IntProperty // *ESE
	EventStatusRegister  IntReading  // *ESR?
	ServiceRequestEnable IntProperty // *SRE
	StatusByte           IntReading  // *STB?
}

// New connects the object model to an instrument. It issues a single
// *IDN? to identify the model and select a capability profile; an
// unrecognized model gets the family default so construction does not
// fail on new firmware.
func New(tr transport.Transport) (*Instrument, error) {
	resp, err := tr.Query(scpi.Query("*IDN"))
	if err != nil {
		return nil, err
	}
	id, err := parseIdentity(resp)
	if err != nil {
		return nil, err
	}
	p, ok := capability.Lookup(id.Model)
	if !ok {
		p = capability.Default()
	}
	inst := NewWithProfile(tr, p)
	inst.identity = id
	return inst, nil
}

// NewWithProfile connects the object model with an explicit capability
// profile and no identification round trip.
func NewWithProfile(tr transport.Transport, p capability.Profile) *Instrument {
	statusBits := scpi.IntRange{Name: "status enable mask", Min: 0, Max: 255}

	inst := &Instrument{
		tr:      tr,
		profile: p,

		Acquire:  newAcquire(tr),
		Cursor:   newCursor(tr),
		Display:  newDisplay(tr),
		Measure:  newMeasure(tr),
		Timebase: newTimebase(tr),
		Trigger:  newTrigger(tr, p),
		Waveform: newWaveform(tr),

		ReferenceDisplay: newBoolProperty(tr, scpi.Join("REF", "DISP")),

		Autoscale:    newAction(tr, ":AUT"),
		ClearScreen:  newAction(tr, ":CLE"),
		Run:          newAction(tr, ":RUN"),
		Stop:         newAction(tr, ":STOP"),
		Single:       newAction(tr, ":SING"),
		ForceTrigger: newAction(tr, ":TFOR"),

		Reset:                newAction(tr, "*RST"),
		ClearStatus:          newAction(tr, "*CLS"),
		SetOperationComplete: newAction(tr, "*OPC"),
		Wait:                 newAction(tr, "*WAI"),
		OperationComplete:    newBoolReading(tr, "*OPC"),
		SelfTest:             newIntReading(tr, "*TST"),
		EventStatusEnable:    newRangedIntProperty(tr, "*ESE", statusBits),
		EventStatusRegister:  newIntReading(tr, "*ESR"),
		ServiceRequestEnable: newRangedIntProperty(tr, "*SRE", statusBits),
		StatusByte:           newIntReading(tr, "*STB"),
	}

	inst.channels = make([]*Channel, p.Channels)
	for i := range inst.channels {
		inst.channels[i] = newChannel(tr, i+1, p)
	}
	inst.references = make([]*Reference, p.ReferenceSlots)
	for i := range inst.references {
		inst.references[i] = newReference(tr, i+1)
	}
	return inst
}

// Identity returns the identification captured at connect time. It is
// zero when the instrument was constructed with NewWithProfile.
func (i *Instrument) Identity() Identity { return i.identity }

// Profile returns the capability profile in effect.
func (i *Instrument) Profile() capability.Profile { return i.profile }

// Channel returns the 1-based analog channel n.
func (i *Instrument) Channel(n int) (*Channel, error) {
	if n < 1 || n > len(i.channels) {
		return nil, fmt.Errorf("%w: channel %d, instrument has %d", scpi.ErrInvalidChannel, n, len(i.channels))
	}
	return i.channels[n-1], nil
}

// Channels returns the number of analog channels.
func (i *Instrument) Channels() int { return len(i.channels) }

// Reference returns the 1-based reference waveform slot n.
func (i *Instrument) Reference(n int) (*Reference, error) {
	if n < 1 || n > len(i.references) {
		return nil, fmt.Errorf("%w: reference slot %d, instrument has %d", scpi.ErrInvalidIndex, n, len(i.references))
	}
	return i.references[n-1], nil
}

// ReferenceSlots returns the number of reference waveform slots.
func (i *Instrument) ReferenceSlots() int { return len(i.references) }

// Close closes the underlying transport.
func (i *Instrument) Close() error { return i.tr.Close() }
