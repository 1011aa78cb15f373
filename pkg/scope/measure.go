package scope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rigol-kit/rigol-go/pkg/scpi"
	"github.com/rigol-kit/rigol-go/pkg/transport"
)

// measureSlots bounds the five on-screen measurement slots.
var measureSlots = scpi.IntRange{Name: "measurement slot", Min: 1, Max: 5}

// Measure binds the automatic measurement subsystem (:MEASure).
type Measure struct {
	tr     transport.Transport
	prefix string

	// Source is the default source of measurement parameters
	// (:SOURce).
	Source EnumProperty[Source]

	// CounterSource is the source of the frequency counter, or
	// SourceOff to disable it (:COUNter:SOURce).
	CounterSource EnumProperty[Source]

	// CounterValue is the frequency counter result in Hz
	// (:COUNter:VALue, query only).
	CounterValue FloatReading

	// AllDisplay enables the all-measurement overlay (:ADISplay).
	AllDisplay BoolProperty

	// ThresholdMax, ThresholdMid and ThresholdMin are the measurement
	// thresholds in percent of amplitude (:SETup:MAX, :MID, :MIN).
	ThresholdMax IntProperty
	ThresholdMid IntProperty
	ThresholdMin IntProperty

	// StatisticDisplay enables the statistic function
	// (:STATistic:DISPlay).
	StatisticDisplay BoolProperty

	// StatisticMode is the statistic display mode
	// (:STATistic:MODE).
	StatisticMode EnumProperty[StatisticMode]

	// ResetStatistics clears the history data and restarts the
	// statistics (:STATistic:RESet).
	ResetStatistics Action
}

func newMeasure(tr transport.Transport) *Measure {
	prefix := ":MEAS"
	return &Measure{
		tr:            tr,
		prefix:        prefix,
		Source:        newEnumProperty(tr, scpi.Join(prefix, "SOUR"), measureSources),
		CounterSource: newEnumProperty(tr, scpi.Join(prefix, "COUN", "SOUR"), counterSources),
		CounterValue:  newFloatReading(tr, scpi.Join(prefix, "COUN", "VAL")),
		AllDisplay:    newBoolProperty(tr, scpi.Join(prefix, "ADIS")),
		ThresholdMax: newRangedIntProperty(tr, scpi.Join(prefix, "SET", "MAX"), scpi.IntRange{
			Name: "threshold max", Min: 7, Max: 95,
		}),
		ThresholdMid: newRangedIntProperty(tr, scpi.Join(prefix, "SET", "MID"), scpi.IntRange{
			Name: "threshold mid", Min: 6, Max: 94,
		}),
		ThresholdMin: newRangedIntProperty(tr, scpi.Join(prefix, "SET", "MIN"), scpi.IntRange{
			Name: "threshold min", Min: 5, Max: 93,
		}),
		StatisticDisplay: newBoolProperty(tr, scpi.Join(prefix, "STAT", "DISP")),
		StatisticMode:    newEnumProperty(tr, scpi.Join(prefix, "STAT", "MODE"), statisticModes),
		ResetStatistics:  newAction(tr, scpi.Join(prefix, "STAT", "RES")),
	}
}

// itemArgs encodes a measurement item with its sources as the
// comma-separated argument list of the ITEM commands. Delay and phase
// measurements are defined between two sources and require exactly
// two; all others take up to two, falling back to the subsystem's
// current source when none is given.
func itemArgs(item MeasureItem, srcs []Source) (string, error) {
	tok, err := measureItems.Encode(item)
	if err != nil {
		return "", err
	}
	if len(srcs) > 2 {
		return "", fmt.Errorf("%w: at most two sources, got %d", scpi.ErrInvalidValue, len(srcs))
	}
	if dualSourceItems[item] && len(srcs) != 2 {
		return "", fmt.Errorf("%w: %s is measured between exactly two sources", scpi.ErrInvalidValue, item)
	}
	parts := []string{tok}
	for _, s := range srcs {
		st, err := measureSources.Encode(s)
		if err != nil {
			return "", err
		}
		parts = append(parts, st)
	}
	return strings.Join(parts, ","), nil
}

// Add enables the on-screen measurement of item on the given sources
// (:ITEM).
func (m *Measure) Add(item MeasureItem, srcs ...Source) error {
	args, err := itemArgs(item, srcs)
	if err != nil {
		return err
	}
	return m.tr.Write(scpi.Set(scpi.Join(m.prefix, "ITEM"), args))
}

// Read queries the measurement result of item on the given sources
// (:ITEM?). An unmeasurable result fails with scpi.ErrMeasureError.
func (m *Measure) Read(item MeasureItem, srcs ...Source) (float64, error) {
	args, err := itemArgs(item, srcs)
	if err != nil {
		return 0, err
	}
	resp, err := m.tr.Query(scpi.Query(scpi.Join(m.prefix, "ITEM")) + " " + args)
	if err != nil {
		return 0, err
	}
	return scpi.DecodeFloat(resp)
}

// AddStatistic enables the statistic function of item on the given
// sources (:STATistic:ITEM).
func (m *Measure) AddStatistic(item MeasureItem, srcs ...Source) error {
	args, err := itemArgs(item, srcs)
	if err != nil {
		return err
	}
	return m.tr.Write(scpi.Set(scpi.Join(m.prefix, "STAT", "ITEM"), args))
}

// ReadStatistic queries one aggregate of the statistic function of
// item on the given sources (:STATistic:ITEM?).
func (m *Measure) ReadStatistic(stat StatisticType, item MeasureItem, srcs ...Source) (float64, error) {
	statTok, err := statisticTypes.Encode(stat)
	if err != nil {
		return 0, err
	}
	args, err := itemArgs(item, srcs)
	if err != nil {
		return 0, err
	}
	resp, err := m.tr.Query(scpi.Query(scpi.Join(m.prefix, "STAT", "ITEM")) + " " + statTok + "," + args)
	if err != nil {
		return 0, err
	}
	return scpi.DecodeFloat(resp)
}

// ClearSlot clears one of the five enabled measurement slots (:CLEar).
func (m *Measure) ClearSlot(slot int) error {
	if err := measureSlots.Validate(slot); err != nil {
		return err
	}
	return m.tr.Write(scpi.Set(scpi.Join(m.prefix, "CLE"), "ITEM"+strconv.Itoa(slot)))
}

// ClearAll clears all enabled measurement slots (:CLEar ALL).
func (m *Measure) ClearAll() error {
	return m.tr.Write(scpi.Set(scpi.Join(m.prefix, "CLE"), "ALL"))
}

// RecoverSlot recovers a cleared measurement slot (:RECover).
func (m *Measure) RecoverSlot(slot int) error {
	if err := measureSlots.Validate(slot); err != nil {
		return err
	}
	return m.tr.Write(scpi.Set(scpi.Join(m.prefix, "REC"), "ITEM"+strconv.Itoa(slot)))
}

// RecoverAll recovers all cleared measurement slots (:RECover ALL).
func (m *Measure) RecoverAll() error {
	return m.tr.Write(scpi.Set(scpi.Join(m.prefix, "REC"), "ALL"))
}
