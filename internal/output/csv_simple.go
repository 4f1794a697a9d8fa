package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// CSVPalaceExporter writes one row per palace of each Qi Men chart.
type CSVPalaceExporter struct{}

func (c CSVPalaceExporter) Name() string { return "csv" }

var palaceHeader = []string{"Instant", "Palace", "Direction", "Gate", "Star", "LodgedStar", "Spirit", "Element", "Stem", "Branch", "Score", "Auspicious", "DutyChief"}

func (c CSVPalaceExporter) Format(report *domain.Report) ([]byte, error) {
	return c.FormatAll([]*domain.Report{report})
}

func (c CSVPalaceExporter) FormatAll(reports []*domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(palaceHeader); err != nil {
		return nil, err
	}
	for _, r := range reports {
		if r == nil || r.QiMen == nil {
			return nil, fmt.Errorf("report without a qi men chart")
		}
		for n := 1; n <= 9; n++ {
			cfg := r.QiMen.Configurations[n]
			row := []string{
				r.Instant.Format(time.RFC3339),
				intToString(n),
				domain.MustPalace(n).Direction.English(),
				optionalName(cfg.Gate),
				cfg.Star.String(),
				optionalName(cfg.LodgedStar),
				optionalName(cfg.Spirit),
				cfg.Element.English(),
				cfg.HeavenlyStem.String(),
				cfg.EarthlyBranch.String(),
				intToString(cfg.Score),
				boolToString(cfg.IsAuspicious),
				boolToString(n == r.QiMen.DutyChiefPalace),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
