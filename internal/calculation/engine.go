package calculation

import (
	"errors"
	"fmt"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// Engine orchestrates the calendar and both chart calculators.
type Engine struct {
	Calendar  *LunarCalendar
	QiMen     *QiMenCalculator
	Taiyi     *TaiyiCalculator
	TimeFrame domain.TimeFrame // frame used for Qi Men charts, hour by default
	Logger    Logger
}

// NewEngine creates an engine sharing one calendar between the calculators.
func NewEngine() *Engine {
	cal := NewLunarCalendar()
	return &Engine{
		Calendar:  cal,
		QiMen:     NewQiMenCalculator(cal),
		Taiyi:     NewTaiyiCalculator(cal),
		TimeFrame: domain.HourFrame,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Lunar converts t to its lunar date.
func (e *Engine) Lunar(t time.Time) (*domain.LunarDate, error) {
	ld, err := e.Calendar.GregorianToLunar(t)
	if err != nil {
		return nil, e.fail("lunar date", t, err)
	}
	return ld, nil
}

// ComputeQiMenChart builds the Qi Men chart for t.
func (e *Engine) ComputeQiMenChart(t time.Time) (*domain.QiMenChart, error) {
	chart, err := e.QiMen.CalculateFrame(t, e.TimeFrame)
	if err != nil {
		return nil, e.fail("qi men chart", t, err)
	}
	e.Logger.Debugf("qi men %s: duty chief %d, %s", t.Format(time.RFC3339), chart.DutyChiefPalace, chart.Pattern)
	return chart, nil
}

// ComputeTaiyiDivination builds the Taiyi reading for t.
func (e *Engine) ComputeTaiyiDivination(t time.Time) (*domain.TaiyiDivination, error) {
	div, err := e.Taiyi.Divine(t)
	if err != nil {
		return nil, e.fail("taiyi divination", t, err)
	}
	e.Logger.Debugf("taiyi %s: master %s in %d, guest %s in %d", t.Format(time.RFC3339),
		div.MasterStar.Star, div.MasterStar.Palace, div.GuestStar.Star, div.GuestStar.Palace)
	return div, nil
}

// ComputeReport converts t once and derives every reading from that lunar date.
func (e *Engine) ComputeReport(t time.Time) (*domain.Report, error) {
	ld, err := e.Lunar(t)
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		Instant:     t,
		LunarDate:   *ld,
		Composition: AnalyzePillars(ld),
		QiMen:       BuildQiMenChart(ld, e.TimeFrame),
		Taiyi:       BuildTaiyiDivination(ld),
	}, nil
}

func (e *Engine) fail(op string, t time.Time, err error) error {
	if errors.Is(err, ErrConvergence) {
		e.Logger.Warnf("%s for %s: %v", op, t.Format(time.RFC3339), err)
	}
	return fmt.Errorf("%s for %s: %w", op, t.Format(time.RFC3339), err)
}
