package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// CSVDetailedExporter writes one row per report: lunar date, pillars, chart
// summary and both Taiyi stars. Ranges become a timeline.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

var detailedHeader = []string{
	"Instant", "LunarDate", "LeapMonth", "YearPillar", "MonthPillar", "DayPillar", "HourPillar",
	"SolarTerm", "SolarLongitude", "YangDun", "DutyChief", "Auspicious", "Pattern",
	"MasterStar", "MasterPalace", "MasterStrength", "GuestStar", "GuestPalace", "GuestStrength", "ActivePalace",
}

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	return c.FormatAll([]*domain.Report{report})
}

func (c CSVDetailedExporter) FormatAll(reports []*domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	for _, r := range reports {
		if r == nil {
			return nil, fmt.Errorf("nil report")
		}
		ld := r.LunarDate
		row := []string{
			r.Instant.Format(time.RFC3339),
			ld.Numeric(),
			boolToString(ld.IsLeapMonth),
			ld.YearPillar.String(),
			ld.MonthPillar.String(),
			ld.DayPillar.String(),
			ld.HourPillar.String(),
			ld.SolarTerm.String(),
			fmt.Sprintf("%.4f", ld.SolarLongitude),
		}
		row = append(row, qimenColumns(r.QiMen)...)
		row = append(row, taiyiColumns(r.Taiyi)...)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// qimenColumns and taiyiColumns leave their columns empty when a command
// computed only the other reading.
func qimenColumns(q *domain.QiMenChart) []string {
	if q == nil {
		return make([]string, 4)
	}
	return []string{
		boolToString(q.IsYangDun),
		intToString(q.DutyChiefPalace),
		intToString(q.AuspiciousCount()),
		q.Pattern.String(),
	}
}

func taiyiColumns(t *domain.TaiyiDivination) []string {
	if t == nil {
		return make([]string, 7)
	}
	return []string{
		t.MasterStar.Star.String(),
		intToString(t.MasterStar.Palace),
		FormatStrength(t.MasterStar.InfluenceStrength),
		t.GuestStar.Star.String(),
		intToString(t.GuestStar.Palace),
		FormatStrength(t.GuestStar.InfluenceStrength),
		intToString(t.ActivePalace),
	}
}
