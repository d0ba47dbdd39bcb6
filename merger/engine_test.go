package merger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/duopad/duopad/bridge"
	"github.com/duopad/duopad/merger"
	"github.com/duopad/duopad/output"
	"github.com/duopad/duopad/pad"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) (*merger.Engine, *bridge.Recorder) {
	t.Helper()

	rec := bridge.NewRecorder()
	drv := output.New(rec, output.Config{
		DeviceName:  "test-pad",
		Tick:        time.Millisecond,
		JoinTimeout: time.Second,
	}, nil)
	if err := drv.Initialize(); err != nil {
		t.Fatalf("initialize driver: %v", err)
	}

	e := merger.New(drv, merger.Config{Tick: time.Millisecond, JoinTimeout: time.Second}, nil)
	return e, rec
}

func TestEngineMergesAssignedSources(t *testing.T) {
	e, _ := newTestEngine(t)

	s1 := merger.NewStreamSource()
	s2 := merger.NewStreamSource()
	assert.NoError(t, e.SetSource(1, s1))
	assert.NoError(t, e.SetSource(2, s2))

	var in1, in2 pad.Snapshot
	in1.Buttons[pad.ButtonCross] = true
	in1.Axes[pad.AxisLX] = 0.05
	in2.Buttons[pad.ButtonCircle] = true
	in2.Axes[pad.AxisLX] = -0.8
	s1.Update(in1)
	s2.Update(in2)

	assert.NoError(t, e.Start())
	defer e.Stop()

	assert.Eventually(t, func() bool {
		m := e.MergedState()
		return m.Buttons[pad.ButtonCross] && m.Buttons[pad.ButtonCircle] && m.Axes[pad.AxisLX] == -0.8
	}, time.Second, time.Millisecond)

	assert.Equal(t, in1, e.PlayerState(1))
	assert.Equal(t, in2, e.PlayerState(2))
}

func TestEngineUnassignedPlayersAreNeutral(t *testing.T) {
	e, rec := newTestEngine(t)

	assert.NoError(t, e.Start())
	defer e.Stop()

	assert.Eventually(t, func() bool {
		return rec.LastSend() != nil
	}, time.Second, time.Millisecond)

	assert.Equal(t, pad.Snapshot{}, e.MergedState())
	assert.Equal(t, pad.EncodeReport(pad.Snapshot{}), rec.LastSend())
}

func TestEnginePollErrorDegradesToNeutral(t *testing.T) {
	e, _ := newTestEngine(t)

	failing := merger.SourceFunc(func() (pad.Snapshot, error) {
		return pad.Snapshot{}, errors.New("controller unplugged")
	})
	healthy := merger.NewStreamSource()
	var in pad.Snapshot
	in.Buttons[pad.ButtonTriangle] = true
	healthy.Update(in)

	assert.NoError(t, e.SetSource(1, failing))
	assert.NoError(t, e.SetSource(2, healthy))

	assert.NoError(t, e.Start())
	defer e.Stop()

	assert.Eventually(t, func() bool {
		return e.MergedState().Buttons[pad.ButtonTriangle]
	}, time.Second, time.Millisecond)
	assert.Equal(t, pad.Snapshot{}, e.PlayerState(1))
}

func TestEngineStartIdempotent(t *testing.T) {
	e, rec := newTestEngine(t)

	assert.NoError(t, e.Start())
	assert.NoError(t, e.Start())
	defer e.Stop()

	assert.Len(t, rec.Creates(), 1)
	assert.True(t, e.Running())
}

func TestEngineStopBeforeStartIsNoOp(t *testing.T) {
	e, rec := newTestEngine(t)
	e.Stop()
	assert.Empty(t, rec.Destroys())
	assert.False(t, e.Running())
}

func TestEngineStopHaltsDriver(t *testing.T) {
	e, rec := newTestEngine(t)

	assert.NoError(t, e.Start())
	e.Stop()

	assert.False(t, e.Running())
	assert.False(t, e.Driver().Running())
	assert.False(t, rec.Live("test-pad"))
}

func TestEngineRejectsInvalidPlayer(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.Error(t, e.SetSource(0, merger.NewStreamSource()))
	assert.Error(t, e.SetSource(3, merger.NewStreamSource()))
	assert.False(t, e.SourceAssigned(0))
}
