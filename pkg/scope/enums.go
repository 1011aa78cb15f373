package scope

import (
	"strconv"

	"github.com/rigol-kit/rigol-go/pkg/scpi"
)

// BandwidthLimit selects the analog bandwidth limit of a channel.
type BandwidthLimit uint8

const (
	BandwidthLimitOff BandwidthLimit = iota
	BandwidthLimit20M
)

var bandwidthLimits = scpi.NewEnum("bandwidth limit", map[BandwidthLimit]string{
	BandwidthLimitOff: "OFF",
	BandwidthLimit20M: "20M",
})

func (v BandwidthLimit) String() string { return bandwidthLimits.Token(v) }

// Coupling selects the input coupling of a channel.
type Coupling uint8

const (
	CouplingAC Coupling = iota
	CouplingDC
	CouplingGND
)

var couplings = scpi.NewEnum("coupling", map[Coupling]string{
	CouplingAC:  "AC",
	CouplingDC:  "DC",
	CouplingGND: "GND",
})

func (v Coupling) String() string { return couplings.Token(v) }

// VerticalUnit selects the amplitude display unit of a channel.
type VerticalUnit uint8

const (
	UnitVolt VerticalUnit = iota
	UnitWatt
	UnitAmpere
	UnitUnknown
)

var verticalUnits = scpi.NewEnum("vertical unit", map[VerticalUnit]string{
	UnitVolt:    "VOLT",
	UnitWatt:    "WATT",
	UnitAmpere:  "AMP",
	UnitUnknown: "UNKN",
})

func (v VerticalUnit) String() string { return verticalUnits.Token(v) }

// Source identifies a signal source: an analog channel, a digital
// channel, the math trace, or one of the special selections some
// subsystems accept. Each subsystem restricts the full table to the
// subset its command grammar allows.
type Source uint8

const (
	SourceD0 Source = iota
	SourceD1
	SourceD2
	SourceD3
	SourceD4
	SourceD5
	SourceD6
	SourceD7
	SourceD8
	SourceD9
	SourceD10
	SourceD11
	SourceD12
	SourceD13
	SourceD14
	SourceD15
	SourceChannel1
	SourceChannel2
	SourceChannel3
	SourceChannel4
	SourceMath
	SourceAC
	SourceOff
	SourceLA
)

var sources = func() *scpi.Enum[Source] {
	tokens := map[Source]string{
		SourceChannel1: "CHAN1",
		SourceChannel2: "CHAN2",
		SourceChannel3: "CHAN3",
		SourceChannel4: "CHAN4",
		SourceMath:     "MATH",
		SourceAC:       "AC",
		SourceOff:      "OFF",
		SourceLA:       "LA",
	}
	for i := 0; i < 16; i++ {
		tokens[SourceD0+Source(i)] = "D" + strconv.Itoa(i)
	}
	return scpi.NewEnum("source", tokens)
}()

func (v Source) String() string { return sources.Token(v) }

func digitalSources() []Source {
	out := make([]Source, 16)
	for i := range out {
		out[i] = SourceD0 + Source(i)
	}
	return out
}

func analogSources() []Source {
	return []Source{SourceChannel1, SourceChannel2, SourceChannel3, SourceChannel4}
}

var (
	measureSources = sources.Restrict("measure source",
		append(append(digitalSources(), analogSources()...), SourceMath)...)

	counterSources = sources.Restrict("counter source",
		append(append(digitalSources(), analogSources()...), SourceOff)...)

	edgeTriggerSources = sources.Restrict("edge trigger source",
		append(append(digitalSources(), analogSources()...), SourceAC)...)

	waveformSources = sources.Restrict("waveform source",
		append(append(digitalSources(), analogSources()...), SourceMath)...)

	manualCursorSources = sources.Restrict("manual cursor source",
		SourceChannel1, SourceChannel2, SourceChannel3, SourceChannel4, SourceMath, SourceLA)

	trackCursorSources = sources.Restrict("track cursor source",
		SourceOff, SourceChannel1, SourceChannel2, SourceChannel3, SourceChannel4, SourceMath)
)

// CursorMode selects the cursor measurement mode.
type CursorMode uint8

const (
	CursorOff CursorMode = iota
	CursorManualMode
	CursorTrackMode
	CursorAuto
	CursorXY
)

var cursorModes = scpi.NewEnum("cursor mode", map[CursorMode]string{
	CursorOff:        "OFF",
	CursorManualMode: "MAN",
	CursorTrackMode:  "TRAC",
	CursorAuto:       "AUTO",
	CursorXY:         "XY",
})

func (v CursorMode) String() string { return cursorModes.Token(v) }

// CursorType selects horizontal or vertical manual cursors.
type CursorType uint8

const (
	CursorX CursorType = iota
	CursorY
)

var cursorTypes = scpi.NewEnum("cursor type", map[CursorType]string{
	CursorX: "X",
	CursorY: "Y",
})

func (v CursorType) String() string { return cursorTypes.Token(v) }

// CursorHorizontalUnit selects the unit of manual cursor X values.
type CursorHorizontalUnit uint8

const (
	CursorUnitSecond CursorHorizontalUnit = iota
	CursorUnitHertz
	CursorUnitDegree
	CursorUnitPercentX
)

var cursorHorizontalUnits = scpi.NewEnum("cursor horizontal unit", map[CursorHorizontalUnit]string{
	CursorUnitSecond:   "S",
	CursorUnitHertz:    "HZ",
	CursorUnitDegree:   "DEG",
	CursorUnitPercentX: "PER",
})

func (v CursorHorizontalUnit) String() string { return cursorHorizontalUnits.Token(v) }

// CursorVerticalUnit selects the unit of manual cursor Y values.
type CursorVerticalUnit uint8

const (
	CursorUnitPercentY CursorVerticalUnit = iota
	CursorUnitSource
)

var cursorVerticalUnits = scpi.NewEnum("cursor vertical unit", map[CursorVerticalUnit]string{
	CursorUnitPercentY: "PER",
	CursorUnitSource:   "SOUR",
})

func (v CursorVerticalUnit) String() string { return cursorVerticalUnits.Token(v) }

// DisplayType selects how sample points are drawn.
type DisplayType uint8

const (
	DisplayVectors DisplayType = iota
	DisplayDots
)

var displayTypes = scpi.NewEnum("display type", map[DisplayType]string{
	DisplayVectors: "VECT",
	DisplayDots:    "DOTS",
})

func (v DisplayType) String() string { return displayTypes.Token(v) }

// DisplayPersistence selects the waveform persistence time.
type DisplayPersistence uint8

const (
	PersistenceMinimum DisplayPersistence = iota
	Persistence100ms
	Persistence200ms
	Persistence500ms
	Persistence1s
	Persistence5s
	Persistence10s
	PersistenceInfinite
)

var displayPersistences = scpi.NewEnum("persistence time", map[DisplayPersistence]string{
	PersistenceMinimum:  "MIN",
	Persistence100ms:    "0.1",
	Persistence200ms:    "0.2",
	Persistence500ms:    "0.5",
	Persistence1s:       "1",
	Persistence5s:       "5",
	Persistence10s:      "10",
	PersistenceInfinite: "INF",
})

func (v DisplayPersistence) String() string { return displayPersistences.Token(v) }

// DisplayGrid selects the screen grid style.
type DisplayGrid uint8

const (
	GridFull DisplayGrid = iota
	GridHalf
	GridNone
)

var displayGrids = scpi.NewEnum("grid", map[DisplayGrid]string{
	GridFull: "FULL",
	GridHalf: "HALF",
	GridNone: "NONE",
})

func (v DisplayGrid) String() string { return displayGrids.Token(v) }

// MeasureItem identifies a waveform parameter of the automatic
// measurement subsystem.
type MeasureItem uint8

const (
	ItemVMax MeasureItem = iota
	ItemVMin
	ItemVPP
	ItemVTop
	ItemVBase
	ItemVAmplitude
	ItemVAverage
	ItemVRMS
	ItemOvershoot
	ItemPreshoot
	ItemArea
	ItemPeriodArea
	ItemPeriod
	ItemFrequency
	ItemRiseTime
	ItemFallTime
	ItemPositivePulseWidth
	ItemNegativePulseWidth
	ItemPositiveDutyCycle
	ItemNegativeDutyCycle
	ItemRisingEdgeDelay
	ItemFallingEdgeDelay
	ItemRisingEdgePhase
	ItemFallingEdgePhase
	ItemTimeAtVMax
	ItemTimeAtVMin
	ItemPositiveSlewRate
	ItemNegativeSlewRate
	ItemVUpper
	ItemVMid
	ItemVLower
	ItemVariance
	ItemPeriodVRMS
	ItemPositivePulses
	ItemNegativePulses
	ItemPositiveEdges
	ItemNegativeEdges
)

var measureItems = scpi.NewEnum("measure item", map[MeasureItem]string{
	ItemVMax:               "VMAX",
	ItemVMin:               "VMIN",
	ItemVPP:                "VPP",
	ItemVTop:               "VTOP",
	ItemVBase:              "VBAS",
	ItemVAmplitude:         "VAMP",
	ItemVAverage:           "VAVG",
	ItemVRMS:               "VRMS",
	ItemOvershoot:          "OVER",
	ItemPreshoot:           "PRES",
	ItemArea:               "MAR",
	ItemPeriodArea:         "MPAR",
	ItemPeriod:             "PER",
	ItemFrequency:          "FREQ",
	ItemRiseTime:           "RTIM",
	ItemFallTime:           "FTIM",
	ItemPositivePulseWidth: "PWID",
	ItemNegativePulseWidth: "NWID",
	ItemPositiveDutyCycle:  "PDUT",
	ItemNegativeDutyCycle:  "NDUT",
	ItemRisingEdgeDelay:    "RDEL",
	ItemFallingEdgeDelay:   "FDEL",
	ItemRisingEdgePhase:    "RPH",
	ItemFallingEdgePhase:   "FPH",
	ItemTimeAtVMax:         "TVMAX",
	ItemTimeAtVMin:         "TVMIN",
	ItemPositiveSlewRate:   "PSLEW",
	ItemNegativeSlewRate:   "NSLEW",
	ItemVUpper:             "VUP",
	ItemVMid:               "VMID",
	ItemVLower:             "VLOW",
	ItemVariance:           "VARI",
	ItemPeriodVRMS:         "PVRMS",
	ItemPositivePulses:     "PPUL",
	ItemNegativePulses:     "NPUL",
	ItemPositiveEdges:      "PEDG",
	ItemNegativeEdges:      "NEDG",
})

func (v MeasureItem) String() string { return measureItems.Token(v) }

// dualSourceItems are the measurements defined between two sources.
var dualSourceItems = map[MeasureItem]bool{
	ItemRisingEdgeDelay:  true,
	ItemFallingEdgeDelay: true,
	ItemRisingEdgePhase:  true,
	ItemFallingEdgePhase: true,
}

// StatisticMode selects how measurement statistics are displayed.
type StatisticMode uint8

const (
	StatisticDifference StatisticMode = iota
	StatisticExtremum
)

var statisticModes = scpi.NewEnum("statistic mode", map[StatisticMode]string{
	StatisticDifference: "DIFF",
	StatisticExtremum:   "EXTR",
})

func (v StatisticMode) String() string { return statisticModes.Token(v) }

// StatisticType selects which aggregate of a statistic item to read.
type StatisticType uint8

const (
	StatisticMaximum StatisticType = iota
	StatisticMinimum
	StatisticCurrent
	StatisticAverage
	StatisticDeviation
)

var statisticTypes = scpi.NewEnum("statistic type", map[StatisticType]string{
	StatisticMaximum:   "MAX",
	StatisticMinimum:   "MIN",
	StatisticCurrent:   "CURR",
	StatisticAverage:   "AVER",
	StatisticDeviation: "DEV",
})

func (v StatisticType) String() string { return statisticTypes.Token(v) }

// TimebaseMode selects the horizontal timebase mode.
type TimebaseMode uint8

const (
	TimebaseMain TimebaseMode = iota
	TimebaseXY
	TimebaseRoll
)

var timebaseModes = scpi.NewEnum("timebase mode", map[TimebaseMode]string{
	TimebaseMain: "MAIN",
	TimebaseXY:   "XY",
	TimebaseRoll: "ROLL",
})

func (v TimebaseMode) String() string { return timebaseModes.Token(v) }

// TriggerMode selects the trigger type.
type TriggerMode uint8

const (
	TriggerEdgeMode TriggerMode = iota
	TriggerPulse
	TriggerRunt
	TriggerWindow
	TriggerNthEdge
	TriggerSlopeMode
	TriggerVideo
	TriggerPattern
	TriggerDelay
	TriggerTimeout
	TriggerDuration
	TriggerSetupHold
	TriggerRS232
	TriggerI2C
	TriggerSPI
)

var triggerModes = scpi.NewEnum("trigger mode", map[TriggerMode]string{
	TriggerEdgeMode:  "EDGE",
	TriggerPulse:     "PULS",
	TriggerRunt:      "RUNT",
	TriggerWindow:    "WIND",
	TriggerNthEdge:   "NEDG",
	TriggerSlopeMode: "SLOP",
	TriggerVideo:     "VID",
	TriggerPattern:   "PATT",
	TriggerDelay:     "DEL",
	TriggerTimeout:   "TIM",
	TriggerDuration:  "DUR",
	TriggerSetupHold: "SHOL",
	TriggerRS232:     "RS232",
	TriggerI2C:       "IIC",
	TriggerSPI:       "SPI",
})

func (v TriggerMode) String() string { return triggerModes.Token(v) }

// TriggerCoupling selects the trigger coupling.
type TriggerCoupling uint8

const (
	TriggerCouplingAC TriggerCoupling = iota
	TriggerCouplingDC
	TriggerCouplingLFReject
	TriggerCouplingHFReject
)

var triggerCouplings = scpi.NewEnum("trigger coupling", map[TriggerCoupling]string{
	TriggerCouplingAC:       "AC",
	TriggerCouplingDC:       "DC",
	TriggerCouplingLFReject: "LFR",
	TriggerCouplingHFReject: "HFR",
})

func (v TriggerCoupling) String() string { return triggerCouplings.Token(v) }

// TriggerStatus is the instrument's acquisition state.
type TriggerStatus uint8

const (
	StatusTriggered TriggerStatus = iota
	StatusWaiting
	StatusRunning
	StatusAuto
	StatusStopped
)

var triggerStatuses = scpi.NewEnum("trigger status", map[TriggerStatus]string{
	StatusTriggered: "TD",
	StatusWaiting:   "WAIT",
	StatusRunning:   "RUN",
	StatusAuto:      "AUTO",
	StatusStopped:   "STOP",
})

func (v TriggerStatus) String() string { return triggerStatuses.Token(v) }

// TriggerSweep selects the trigger sweep mode.
type TriggerSweep uint8

const (
	SweepAuto TriggerSweep = iota
	SweepNormal
	SweepSingle
)

var triggerSweeps = scpi.NewEnum("trigger sweep", map[TriggerSweep]string{
	SweepAuto:   "AUTO",
	SweepNormal: "NORM",
	SweepSingle: "SING",
})

func (v TriggerSweep) String() string { return triggerSweeps.Token(v) }

// TriggerSlope selects the edge type of the edge trigger.
type TriggerSlope uint8

const (
	SlopeRising TriggerSlope = iota
	SlopeFalling
	SlopeEither
)

var triggerSlopes = scpi.NewEnum("trigger slope", map[TriggerSlope]string{
	SlopeRising:  "POS",
	SlopeFalling: "NEG",
	SlopeEither:  "RFAL",
})

func (v TriggerSlope) String() string { return triggerSlopes.Token(v) }

// WaveformMode selects the reading mode of the waveform subsystem.
type WaveformMode uint8

const (
	WaveformNormal WaveformMode = iota
	WaveformMaximum
	WaveformRaw
)

var waveformModes = scpi.NewEnum("waveform mode", map[WaveformMode]string{
	WaveformNormal:  "NORM",
	WaveformMaximum: "MAX",
	WaveformRaw:     "RAW",
})

func (v WaveformMode) String() string { return waveformModes.Token(v) }

// WaveformFormat selects the return format of waveform data.
type WaveformFormat uint8

const (
	FormatWord WaveformFormat = iota
	FormatByte
	FormatASCII
)

var waveformFormats = scpi.NewEnum("waveform format", map[WaveformFormat]string{
	FormatWord:  "WORD",
	FormatByte:  "BYTE",
	FormatASCII: "ASC",
})

func (v WaveformFormat) String() string { return waveformFormats.Token(v) }

// AcquireType selects the acquisition mode.
type AcquireType uint8

const (
	AcquireNormal AcquireType = iota
	AcquireAverages
	AcquirePeak
	AcquireHighResolution
)

var acquireTypes = scpi.NewEnum("acquire type", map[AcquireType]string{
	AcquireNormal:         "NORM",
	AcquireAverages:       "AVER",
	AcquirePeak:           "PEAK",
	AcquireHighResolution: "HRES",
})

func (v AcquireType) String() string { return acquireTypes.Token(v) }

// ReferenceColor selects the display color of a reference waveform.
type ReferenceColor uint8

const (
	ColorGray ReferenceColor = iota
	ColorGreen
	ColorLightBlue
	ColorMagenta
	ColorOrange
)

var referenceColors = scpi.NewEnum("reference color", map[ReferenceColor]string{
	ColorGray:      "GRAY",
	ColorGreen:     "GRE",
	ColorLightBlue: "LBL",
	ColorMagenta:   "MAG",
	ColorOrange:    "ORAN",
})

func (v ReferenceColor) String() string { return referenceColors.Token(v) }
