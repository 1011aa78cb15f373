package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigol-kit/rigol-go/internal/scpitest"
	"github.com/rigol-kit/rigol-go/pkg/capability"
	"github.com/rigol-kit/rigol-go/pkg/scpi"
)

func TestTimebasePaths(t *testing.T) {
	tr := scpitest.New()
	tb := newTimebase(tr)

	require.NoError(t, tb.Mode.Set(TimebaseRoll))
	require.NoError(t, tb.Scale.Set(1e-3))
	require.NoError(t, tb.Delay.Enable.Set(true))
	require.NoError(t, tb.Delay.Scale.Set(5e-6))
	assert.Equal(t, []string{
		":TIM:MODE ROLL",
		":TIM:SCAL 1.0000e-03",
		":TIM:DEL:ENAB 1",
		":TIM:DEL:SCAL 5.0000e-06",
	}, tr.Writes())
}

func TestTriggerStatusAndHoldoff(t *testing.T) {
	tr := scpitest.New()
	trig := newTrigger(tr, capability.Default())

	tr.Stub(":TRIG:STAT?", "TD")
	st, err := trig.Status.Get()
	require.NoError(t, err)
	assert.Equal(t, StatusTriggered, st)

	err = trig.Holdoff.Set(1e-9)
	assert.True(t, errors.Is(err, scpi.ErrOutOfRange), "error = %v", err)

	require.NoError(t, trig.Holdoff.Set(1e-6))
	require.NoError(t, trig.Edge.Source.Set(SourceAC))
	assert.Equal(t, []string{":TRIG:HOLD 1.0000e-06", ":TRIG:EDG:SOUR AC"}, tr.Writes())
}

func TestTriggerPosition(t *testing.T) {
	tr := scpitest.New()
	trig := newTrigger(tr, capability.Default())

	tr.Stub(":TRIG:POS?", "-2")
	pos, err := trig.Position.Get()
	require.NoError(t, err)
	assert.Equal(t, -2, pos)
}

func TestDisplayPersistenceTokens(t *testing.T) {
	tr := scpitest.New()
	d := newDisplay(tr)

	require.NoError(t, d.Persistence.Set(Persistence100ms))
	require.NoError(t, d.Grid.Set(GridHalf))
	require.NoError(t, d.Clear.Invoke())
	assert.Equal(t, []string{":DISP:GRAD 0.1", ":DISP:GRID HALF", ":DISP:CLE"}, tr.Writes())

	tr.Stub(":DISP:GRAD?", "INF")
	p, err := d.Persistence.Get()
	require.NoError(t, err)
	assert.Equal(t, PersistenceInfinite, p)
}

func TestCursorPositionsAndValues(t *testing.T) {
	tr := scpitest.New()
	c := newCursor(tr)

	require.NoError(t, c.Mode.Set(CursorManualMode))
	require.NoError(t, c.Manual.AX.Set(100))
	assert.Equal(t, []string{":CURS:MODE MAN", ":CURS:MAN:AX 100"}, tr.Writes())

	err := c.Manual.AY.Set(400)
	assert.True(t, errors.Is(err, scpi.ErrOutOfRange), "error = %v", err)

	tr.Stub(":CURS:MAN:XDEL?", "2.0000e-03")
	dx, err := c.Manual.XDelta.Get()
	require.NoError(t, err)
	assert.Equal(t, 2e-03, dx)
}

func TestCursorTrackSources(t *testing.T) {
	tr := scpitest.New()
	c := newCursor(tr)

	require.NoError(t, c.Track.Source1.Set(SourceChannel1))
	require.NoError(t, c.Track.Source2.Set(SourceOff))
	assert.Equal(t, []string{":CURS:TRAC:SOUR1 CHAN1", ":CURS:TRAC:SOUR2 OFF"}, tr.Writes())

	// Digital channels are not selectable in track mode.
	err := c.Track.Source1.Set(SourceD0)
	assert.True(t, errors.Is(err, scpi.ErrInvalidValue), "error = %v", err)
}

func TestAcquireSubsystem(t *testing.T) {
	tr := scpitest.New()
	a := newAcquire(tr)

	require.NoError(t, a.Type.Set(AcquireAverages))
	require.NoError(t, a.Averages.Set(64))
	require.NoError(t, a.MemoryDepth.Set("AUTO"))
	assert.Equal(t, []string{":ACQ:TYPE AVER", ":ACQ:AVER 64", ":ACQ:MDEP AUTO"}, tr.Writes())

	err := a.Averages.Set(2048)
	assert.True(t, errors.Is(err, scpi.ErrOutOfRange), "error = %v", err)

	tr.Stub(":ACQ:SRAT?", "1.0000e+09")
	sr, err := a.SampleRate.Get()
	require.NoError(t, err)
	assert.Equal(t, 1e+09, sr)

	tr.Stub(":ACQ:MDEP?", "AUTO")
	depth, err := a.MemoryDepth.Get()
	require.NoError(t, err)
	assert.Equal(t, "AUTO", depth)
}

func TestReferenceSlot(t *testing.T) {
	tr := scpitest.New()
	ref := newReference(tr, 3)

	require.NoError(t, ref.Save.Invoke())
	assert.Equal(t, []string{":REF3:SAV"}, tr.Writes())
	assert.Equal(t, 1, tr.Calls(), "save is a single write")

	require.NoError(t, ref.Enable.Set(true))
	require.NoError(t, ref.Color.Set(ColorOrange))
	require.NoError(t, ref.Reset.Invoke())
	assert.Equal(t, []string{":REF3:SAV", ":REF3:ENAB 1", ":REF3:COL ORAN", ":REF3:RES"}, tr.Writes())
}
