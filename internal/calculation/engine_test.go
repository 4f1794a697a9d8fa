package calculation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
	debug int
}

func (r *recordingLogger) Debugf(string, ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debug++
}
func (r *recordingLogger) Infof(string, ...any) {}
func (r *recordingLogger) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Errorf(string, ...any) {}

var scenarioInstant = time.Date(2025, 7, 13, 16, 26, 0, 0, time.UTC)

func TestEngineComputeReport(t *testing.T) {
	e := NewEngine()
	report, err := e.ComputeReport(scenarioInstant)
	require.NoError(t, err)

	assert.Equal(t, scenarioInstant, report.Instant)
	assert.Equal(t, "乙巳", report.LunarDate.YearPillar.String())
	assert.Equal(t, "癸未", report.LunarDate.MonthPillar.String())
	assert.Equal(t, "癸未", report.LunarDate.DayPillar.String())
	assert.Equal(t, "庚申", report.LunarDate.HourPillar.String())
	require.NotNil(t, report.QiMen)
	require.NotNil(t, report.Taiyi)
	assert.Equal(t, 3, report.QiMen.DutyChiefPalace)
	assert.Equal(t, report.LunarDate, report.QiMen.LunarDate)
	assert.Equal(t, report.LunarDate, report.Taiyi.LunarDate)
	assert.Equal(t, []domain.Element{domain.Water}, report.Composition.Dominant)

	chart, err := e.ComputeQiMenChart(scenarioInstant)
	require.NoError(t, err)
	if diff := cmp.Diff(report.QiMen, chart); diff != "" {
		t.Errorf("report chart differs from direct chart (-report +direct):\n%s", diff)
	}
	div, err := e.ComputeTaiyiDivination(scenarioInstant)
	require.NoError(t, err)
	if diff := cmp.Diff(report.Taiyi, div); diff != "" {
		t.Errorf("report divination differs from direct divination (-report +direct):\n%s", diff)
	}
}

func TestEngineDeterministicOutput(t *testing.T) {
	first, err := NewEngine().ComputeReport(scenarioInstant)
	require.NoError(t, err)
	second, err := NewEngine().ComputeReport(scenarioInstant)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEngineLocationDoesNotChangeInstantSemantics(t *testing.T) {
	e := NewEngine()
	shanghai := time.FixedZone("CST", 8*3600)

	// 00:26 on July 14 local is a different civil day from 16:26 UTC on July 13.
	utc, err := e.Lunar(scenarioInstant)
	require.NoError(t, err)
	local, err := e.Lunar(scenarioInstant.In(shanghai))
	require.NoError(t, err)

	assert.Equal(t, 19, utc.Day)
	assert.Equal(t, 20, local.Day)
	assert.Equal(t, utc.DayPillar.Next(1), local.DayPillar)
	assert.InDelta(t, utc.SolarLongitude, local.SolarLongitude, 1e-12)
}

func TestEngineTimeFrame(t *testing.T) {
	e := NewEngine()
	e.TimeFrame = domain.DayFrame
	report, err := e.ComputeReport(scenarioInstant)
	require.NoError(t, err)
	assert.Equal(t, domain.DayFrame, report.QiMen.TimeFrame)
	assert.Equal(t, 6, report.QiMen.DutyChiefPalace)
}

func TestEngineErrors(t *testing.T) {
	e := NewEngine()
	early := time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := e.ComputeReport(early)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInstant)
	assert.Contains(t, err.Error(), "lunar date for 1850-01-01T00:00:00Z")

	_, err = e.ComputeQiMenChart(early)
	assert.ErrorIs(t, err, ErrInvalidInstant)
	assert.Contains(t, err.Error(), "qi men chart")

	_, err = e.ComputeTaiyiDivination(time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInstant)
	assert.Contains(t, err.Error(), "taiyi divination")
}

func TestEngineLogging(t *testing.T) {
	rec := &recordingLogger{}
	e := NewEngine()
	e.SetLogger(rec)

	_, err := e.ComputeQiMenChart(scenarioInstant)
	require.NoError(t, err)
	_, err = e.ComputeTaiyiDivination(scenarioInstant)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.debug)

	conv := &ConvergenceError{Op: "solar term", Target: 270, Last: 2460665.9, Iterations: 50}
	err = e.fail("qi men chart", scenarioInstant, conv)
	assert.ErrorIs(t, err, ErrConvergence)
	var ce *ConvergenceError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 50, ce.Iterations)
	require.Len(t, rec.warns, 1)
	assert.Contains(t, rec.warns[0], "solar term")

	// range errors are the caller's problem and are not logged
	_ = e.fail("qi men chart", scenarioInstant, ErrInvalidInstant)
	assert.Len(t, rec.warns, 1)

	e.SetLogger(nil)
	assert.Equal(t, NopLogger{}, e.Logger)
}

func TestZapLogger(t *testing.T) {
	assert.Equal(t, NopLogger{}, NewZapLogger(nil))

	core, logs := observer.New(zapcore.DebugLevel)
	e := NewEngine()
	e.SetLogger(NewZapLogger(zap.New(core)))

	_, err := e.ComputeQiMenChart(scenarioInstant)
	require.NoError(t, err)
	entries := logs.FilterLoggerName("engine").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "duty chief 3")
}

func TestNowFunc(t *testing.T) {
	fixed := time.Date(2025, 7, 13, 16, 26, 0, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	t.Cleanup(func() { SetNowFunc(time.Now) })

	shanghai := time.FixedZone("CST", 8*3600)
	now := Now(shanghai)
	assert.True(t, now.Equal(fixed))
	assert.Equal(t, shanghai, now.Location())
	assert.Equal(t, time.UTC, Now(nil).Location())
}
