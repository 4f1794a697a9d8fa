package output

import (
	"bytes"
	"fmt"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// ConsoleLiteFormatter prints one line per report, suited to ranges.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *domain.Report) ([]byte, error) {
	return c.FormatAll([]*domain.Report{report})
}

func (c ConsoleLiteFormatter) FormatAll(reports []*domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range reports {
		if r == nil {
			return nil, fmt.Errorf("nil report")
		}
		ld := r.LunarDate
		fmt.Fprintf(&buf, "%s  %s  %s %s %s %s",
			r.Instant.Format("2006-01-02T15:04Z07:00"), ld.Numeric(),
			ld.YearPillar, ld.MonthPillar, ld.DayPillar, ld.HourPillar)
		if q := r.QiMen; q != nil {
			dun := "陽"
			if !q.IsYangDun {
				dun = "陰"
			}
			fmt.Fprintf(&buf, "  %s遁 duty=%d %d/9 %s", dun, q.DutyChiefPalace, q.AuspiciousCount(), q.Pattern)
		}
		if t := r.Taiyi; t != nil {
			fmt.Fprintf(&buf, "  %s@%d %s@%d active=%d", t.MasterStar.Star, t.MasterStar.Palace,
				t.GuestStar.Star, t.GuestStar.Palace, t.ActivePalace)
		}
		if rec := AnalyzeReport(r); rec.Palace != 0 {
			fmt.Fprintf(&buf, "  best=%d(%s)", rec.Palace, rec.Direction.English())
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
