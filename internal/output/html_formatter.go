package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// HTMLFormatter produces a standalone HTML page with the chart grid.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"score":    FormatScore,
	"strength": FormatStrength,
}).Parse(htmlTemplateSource))

type htmlCell struct {
	Number     int
	Name       string
	Direction  string
	Gate       string
	Star       string
	Spirit     string
	StemBranch string
	Element    string
	Score      int
	Auspicious bool
	Duty       bool
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	var buf bytes.Buffer
	data := struct {
		Report *domain.Report
		Grid   [3][3]htmlCell
		Notes  []string
	}{report, htmlGrid(report.QiMen), GenerateNotes(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func htmlGrid(chart *domain.QiMenChart) [3][3]htmlCell {
	var grid [3][3]htmlCell
	if chart == nil {
		return grid
	}
	for i, row := range domain.LoShuGrid {
		for j, n := range row {
			p := domain.MustPalace(n)
			cfg := chart.Configurations[n]
			grid[i][j] = htmlCell{
				Number:     n,
				Name:       p.Name,
				Direction:  FormatDirection(p.Direction),
				Gate:       optionalName(cfg.Gate),
				Star:       cfg.Star.String(),
				Spirit:     optionalName(cfg.Spirit),
				StemBranch: cfg.HeavenlyStem.String() + cfg.EarthlyBranch.String(),
				Element:    cfg.Element.String(),
				Score:      cfg.Score,
				Auspicious: cfg.IsAuspicious,
				Duty:       n == chart.DutyChiefPalace,
			}
		}
	}
	return grid
}
